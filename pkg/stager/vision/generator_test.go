package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeModel(t *testing.T) {
	assert.Equal(t, DefaultGeminiModel, normalizeModel(""))
	assert.Equal(t, DefaultGeminiModel, normalizeModel("  "))
	assert.Equal(t, "gemini-1.5-pro", normalizeModel("models/gemini-1.5-pro"))
	assert.Equal(t, "gemini-2.0-flash", normalizeModel("gemini-2.0-flash"))
}

func TestDataUrl(t *testing.T) {
	url := dataUrl(Image{Data: []byte{0xff, 0xd8}, MimeType: "image/jpeg"})

	assert.Equal(t, "data:image/jpeg;base64,/9g=", url)
}
