package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
	BackendOpenAi = "openai"

	defaultGcpLocation = "us-central1"
)

type Config struct {
	VisionBackend         string
	GeminiApiKey          string
	GoogleCredentialsJson string
	GcpProjectId          string
	GcpLocation           string
	OpenAiApiKey          string
	StagingModel          string
	ApiIpPort             string
}

func NewConfigFromEnv() (*Config, error) {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	config := &Config{
		VisionBackend:         os.Getenv(EnvVisionBackend),
		GeminiApiKey:          os.Getenv(EnvGeminiApiKey),
		GoogleCredentialsJson: os.Getenv(EnvGoogleCredentialsJson),
		GcpProjectId:          os.Getenv(EnvGcpProjectId),
		GcpLocation:           os.Getenv(EnvGcpLocation),
		OpenAiApiKey:          os.Getenv(EnvOpenAiApiKey),
		StagingModel:          os.Getenv(EnvStagingModel),
		ApiIpPort:             os.Getenv(EnvApiIpPort),
	}

	if config.VisionBackend == "" {
		config.VisionBackend = BackendGemini
	}
	if config.GcpLocation == "" {
		config.GcpLocation = defaultGcpLocation
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	switch c.VisionBackend {
	case BackendGemini:
		if c.GeminiApiKey == "" {
			return errors.New("GEMINI_API_KEY is required")
		}
	case BackendVertex:
		if c.GoogleCredentialsJson == "" {
			return errors.New("GOOGLE_CREDENTIALS_JSON is required")
		}
		if c.GcpProjectId == "" {
			return errors.New("GCP_PROJECT_ID is required")
		}
	case BackendOpenAi:
		if c.OpenAiApiKey == "" {
			return errors.New("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown vision backend: %s", c.VisionBackend)
	}

	return nil
}
