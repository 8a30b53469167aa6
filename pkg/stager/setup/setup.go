package setup

import (
	"context"
	"fmt"

	"github.com/roomvibe/staging-agent/pkg/stager/vision"
)

type SetupResult struct {
	Generator vision.Generator
	ApiIpPort string
}

// Setup validates the environment configuration and constructs the
// vision generator for the selected backend. Configuration errors are
// surfaced here, before any model call is attempted.
func Setup(ctx context.Context) (*SetupResult, error) {
	config, err := NewConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get config from env: %w", err)
	}

	generator, err := newGenerator(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision generator: %w", err)
	}

	return &SetupResult{
		Generator: generator,
		ApiIpPort: config.ApiIpPort,
	}, nil
}

func newGenerator(ctx context.Context, config *Config) (vision.Generator, error) {
	switch config.VisionBackend {
	case BackendGemini:
		return vision.NewGeminiGenerator(ctx, config.GeminiApiKey, config.StagingModel)
	case BackendVertex:
		return vision.NewVertexGeminiGenerator(ctx, config.GoogleCredentialsJson, config.GcpProjectId, config.GcpLocation, config.StagingModel)
	case BackendOpenAi:
		return vision.NewOpenAiGenerator(config.OpenAiApiKey, config.StagingModel), nil
	default:
		return nil, fmt.Errorf("unknown vision backend: %s", config.VisionBackend)
	}
}
