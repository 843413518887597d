package studio

import (
	"context"

	"imagestudio/internal/domain"
)

// RemoteService is the boundary with the external generation and translation
// endpoints.
type RemoteService interface {
	GenerateEdit(ctx context.Context, images []domain.EncodedImage, prompt string) (*EditResponse, error)
	GenerateTextToImage(ctx context.Context, prompt string, opts TextToImageOptions) (*TextToImageResponse, error)
	Translate(ctx context.Context, text, systemInstruction string) (string, error)
}

// ContentPart is one returned part of an edit response. InlineImage is nil
// for parts that carry no image payload.
type ContentPart struct {
	Text        string
	InlineImage *domain.EncodedImage
}

// EditResponse lists the content parts returned for an edit call.
type EditResponse struct {
	Parts []ContentPart
}

// TextToImageOptions tunes a text-to-image call.
type TextToImageOptions struct {
	Count          int
	OutputMIMEType string
}

// TextToImageResponse lists the generated images, base64 encoded.
type TextToImageResponse struct {
	Images []domain.EncodedImage
}
