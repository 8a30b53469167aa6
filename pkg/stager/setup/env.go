package setup

const (
	EnvVisionBackend         = "VISION_BACKEND"
	EnvGeminiApiKey          = "GEMINI_API_KEY"
	EnvGoogleCredentialsJson = "GOOGLE_CREDENTIALS_JSON"
	EnvGcpProjectId          = "GCP_PROJECT_ID"
	EnvGcpLocation           = "GCP_LOCATION"
	EnvOpenAiApiKey          = "OPENAI_API_KEY"
	EnvStagingModel          = "STAGING_MODEL"
	EnvApiIpPort             = "API_IP_PORT"
)
