package advisor

import (
	"context"

	"google.golang.org/genai"
)

// Image is an opaque picture handed to the generation service alongside a
// prompt. The backend never inspects or transforms the bytes.
type Image struct {
	Data []byte
	MIME string
}

// Client is the single gateway to the Gemini generation service.
// Each call is independent: no retry, no caching, at most once.
type Client struct {
	apiKey string
	model  string
}

func New(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model}
}

// Configured reports whether a credential is present. Callers check this
// before invoking Generate, or accept ErrUnconfigured.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Generate sends one prompt (optionally with an image) and returns the raw
// response text. It fails with ErrUnconfigured when no key is set and wraps
// every service-side failure in a RequestError.
func (c *Client) Generate(ctx context.Context, prompt string, image *Image) (string, error) {
	if !c.Configured() {
		return "", ErrUnconfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &RequestError{Err: err}
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if image != nil && len(image.Data) > 0 {
		mime := image.MIME
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, genai.NewPartFromBytes(image.Data, mime))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", &RequestError{Err: err}
	}
	return resp.Text(), nil
}
