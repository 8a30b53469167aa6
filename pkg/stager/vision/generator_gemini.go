package vision

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// GeminiGenerator calls the Gemini Developer API with an API key.
type GeminiGenerator struct {
	model  string
	client *genai.Client
}

var _ Generator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, apiKey string, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiGenerator{
		model:  normalizeModel(model),
		client: client,
	}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, image Image, prompt string) (string, error) {
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

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no candidates returned")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no text returned")
	}

	return sb.String(), nil
}

func normalizeModel(model string) string {
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if model == "" {
		model = DefaultGeminiModel
	}

	return model
}
