package vision

import (
	"context"
	"fmt"

	"cloud.google.com/go/auth/credentials"
	"google.golang.org/genai"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// VertexGeminiGenerator calls Gemini through Vertex AI, authenticating
// with a JSON service-account credential blob instead of an API key.
type VertexGeminiGenerator struct {
	model  string
	client *genai.Client
}

var _ Generator = (*VertexGeminiGenerator)(nil)

func NewVertexGeminiGenerator(ctx context.Context, credentialsJson string, project string, location string, model string) (*VertexGeminiGenerator, error) {
	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		CredentialsJSON: []byte(credentialsJson),
		Scopes:          []string{cloudPlatformScope},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load service account credentials: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     project,
		Location:    location,
		Credentials: creds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &VertexGeminiGenerator{
		model:  normalizeModel(model),
		client: client,
	}, nil
}

func (g *VertexGeminiGenerator) GenerateText(ctx context.Context, image Image, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image.Data, image.MimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return textFromResponse(resp)
}
