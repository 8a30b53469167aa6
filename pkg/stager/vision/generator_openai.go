package vision

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAiGenerator calls an OpenAI vision-capable chat model.
type OpenAiGenerator struct {
	model  string
	client *openai.Client
}

var _ Generator = (*OpenAiGenerator)(nil)

func NewOpenAiGenerator(apiKey string, model string) *OpenAiGenerator {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAiGenerator{
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

func (g *OpenAiGenerator) GenerateText(ctx context.Context, image Image, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: dataUrl(image),
						},
					},
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
				},
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion returned")
	}

	return resp.Choices[0].Message.Content, nil
}

func dataUrl(image Image) string {
	return fmt.Sprintf("data:%s;base64,%s", image.MimeType, base64.StdEncoding.EncodeToString(image.Data))
}
