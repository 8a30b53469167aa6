package stager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/roomvibe/staging-agent/pkg/stager/debug"
	"github.com/roomvibe/staging-agent/pkg/stager/setup"
	"github.com/roomvibe/staging-agent/pkg/stager/vibe"
	"github.com/roomvibe/staging-agent/pkg/stager/vision"
)

const defaultMimeType = "image/jpeg"

// Stager turns an empty-room photo plus a named vibe into a staging
// prompt by composing the architect instruction and issuing one call to
// the vision generator.
type Stager struct {
	generator vision.Generator
	catalog   *vibe.Catalog
	apiRouter *gin.Engine
	apiIpPort string
}

type StagerConfig struct {
	Generator vision.Generator
	Catalog   *vibe.Catalog
	ApiIpPort string
}

func NewStager(config *StagerConfig) (*Stager, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.Generator == nil {
		return nil, errors.New("generator is nil")
	}

	catalog := config.Catalog
	if catalog == nil {
		catalog = vibe.DefaultCatalog()
	}

	stager := &Stager{
		generator: config.Generator,
		catalog:   catalog,
		apiIpPort: config.ApiIpPort,
	}

	stager.apiRouter = stager.generateRouter()

	return stager, nil
}

func NewStagerConfigFromSetupResult(setupResult *setup.SetupResult) (*StagerConfig, error) {
	if setupResult == nil {
		return nil, errors.New("setup result is nil")
	}

	return &StagerConfig{
		Generator: setupResult.Generator,
		Catalog:   vibe.DefaultCatalog(),
		ApiIpPort: setupResult.ApiIpPort,
	}, nil
}

// AnalyzeRoom reads the image at imagePath and returns the model's
// staging prompt for the given style. A missing file fails before any
// network call; errors.Is(err, os.ErrNotExist) holds in that case.
func (s *Stager) AnalyzeRoom(ctx context.Context, imagePath string, styleName string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image %s: %w", imagePath, err)
	}

	return s.AnalyzeImage(ctx, vision.Image{Data: data, MimeType: defaultMimeType}, styleName)
}

// AnalyzeImage is the in-memory variant of AnalyzeRoom, used by the API.
func (s *Stager) AnalyzeImage(ctx context.Context, image vision.Image, styleName string) (string, error) {
	prompt, err := s.catalog.ComposePrompt(styleName)
	if err != nil {
		return "", err
	}

	if debug.IsDebugShowPrompt() {
		slog.Info("composed staging prompt", "style", styleName, "prompt", prompt)
	}

	text, err := s.generator.GenerateText(ctx, image, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate staging prompt: %w", err)
	}

	return text, nil
}

func (s *Stager) Catalog() *vibe.Catalog {
	return s.catalog
}

func (s *Stager) ApiIpPort() string {
	return s.apiIpPort
}
