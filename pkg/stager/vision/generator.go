package vision

import "context"

// Image is a raw encoded photo plus its MIME type.
type Image struct {
	Data     []byte
	MimeType string
}

// Generator issues a single synchronous call to a hosted vision-language
// model and returns its text completion.
type Generator interface {
	GenerateText(ctx context.Context, image Image, prompt string) (string, error)
}
