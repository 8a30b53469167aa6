package stager_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomvibe/staging-agent/pkg/stager"
	"github.com/roomvibe/staging-agent/pkg/stager/vibe"
	"github.com/roomvibe/staging-agent/pkg/stager/vision"
)

type mockGenerator struct {
	generateText func(ctx context.Context, image vision.Image, prompt string) (string, error)
	calls        int
}

func (m *mockGenerator) GenerateText(ctx context.Context, image vision.Image, prompt string) (string, error) {
	m.calls++
	if m.generateText == nil {
		return "a staged room", nil
	}
	return m.generateText(ctx, image, prompt)
}

func setupTestStager(t *testing.T, opts ...func(*stager.StagerConfig)) (*stager.Stager, *mockGenerator) {
	generator := &mockGenerator{}

	stagerConfig := &stager.StagerConfig{
		Generator: generator,
		Catalog:   vibe.DefaultCatalog(),
		ApiIpPort: "",
	}

	for _, opt := range opts {
		opt(stagerConfig)
	}

	testStager, err := stager.NewStager(stagerConfig)
	require.NoError(t, err)
	return testStager, generator
}

func writeTestImage(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "room.jpg")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0xff, 0xe0}, 0o644))
	return path
}

func TestNewStager(t *testing.T) {
	tests := []struct {
		name         string
		stagerConfig *stager.StagerConfig
		wantErr      bool
	}{
		{
			name: "valid config",
			stagerConfig: &stager.StagerConfig{
				Generator: &mockGenerator{},
			},
		},
		{
			name:         "nil config",
			stagerConfig: nil,
			wantErr:      true,
		},
		{
			name:         "nil generator",
			stagerConfig: &stager.StagerConfig{},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testStager, err := stager.NewStager(tt.stagerConfig)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, testStager.Catalog())
		})
	}
}

func TestAnalyzeRoom(t *testing.T) {
	t.Run("returns model text", func(t *testing.T) {
		testStager, generator := setupTestStager(t)
		generator.generateText = func(ctx context.Context, image vision.Image, prompt string) (string, error) {
			assert.Equal(t, "image/jpeg", image.MimeType)
			assert.NotEmpty(t, image.Data)
			assert.Contains(t, prompt, "Japanese-Scandinavian Minimalist")
			return "A photorealistic eye-level wide shot of a staged living room.", nil
		}

		result, err := testStager.AnalyzeRoom(context.Background(), writeTestImage(t), "Purist")
		require.NoError(t, err)

		assert.NotEmpty(t, result)
		assert.Equal(t, 1, generator.calls)
	})

	t.Run("missing image fails before any model call", func(t *testing.T) {
		testStager, generator := setupTestStager(t)

		_, err := testStager.AnalyzeRoom(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"), "Purist")
		require.Error(t, err)

		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Zero(t, generator.calls)
	})

	t.Run("unknown style fails before any model call", func(t *testing.T) {
		testStager, generator := setupTestStager(t)

		_, err := testStager.AnalyzeRoom(context.Background(), writeTestImage(t), "Minimalist2000")
		require.Error(t, err)

		assert.ErrorIs(t, err, vibe.ErrUnknownStyle)
		assert.Zero(t, generator.calls)
	})

	t.Run("generator error is propagated", func(t *testing.T) {
		testStager, generator := setupTestStager(t)
		generator.generateText = func(ctx context.Context, image vision.Image, prompt string) (string, error) {
			return "", assert.AnError
		}

		_, err := testStager.AnalyzeRoom(context.Background(), writeTestImage(t), "Monarch")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAnalyzeImage(t *testing.T) {
	testStager, generator := setupTestStager(t)
	generator.generateText = func(ctx context.Context, image vision.Image, prompt string) (string, error) {
		assert.Equal(t, "image/png", image.MimeType)
		return "staged", nil
	}

	result, err := testStager.AnalyzeImage(context.Background(), vision.Image{
		Data:     []byte{0x89, 0x50, 0x4e, 0x47},
		MimeType: "image/png",
	}, "Nomad")
	require.NoError(t, err)

	assert.Equal(t, "staged", result)
}
