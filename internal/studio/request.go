package studio

import (
	"iter"
	"slices"

	"imagestudio/internal/domain"
)

// GenerationRequest is either an EditRequest or a TextToImageRequest.
type GenerationRequest interface {
	generationRequest()
	PromptText() string
}

// EditRequest asks the remote service to edit or combine one or two images.
type EditRequest struct {
	Images []domain.EncodedImage
	Prompt string
}

// TextToImageRequest asks the remote service to synthesize an image from text.
type TextToImageRequest struct {
	Prompt string
}

func (EditRequest) generationRequest()        {}
func (TextToImageRequest) generationRequest() {}

func (r EditRequest) PromptText() string        { return r.Prompt }
func (r TextToImageRequest) PromptText() string { return r.Prompt }

// SelectRequest builds an EditRequest carrying every present slot in slot
// order, or a TextToImageRequest when no slot is present. Nothing but the
// slots and the prompt influences the choice.
func SelectRequest(slots iter.Seq[domain.EncodedImage], prompt string) GenerationRequest {
	images := slices.Collect(slots)
	if len(images) == 0 {
		return TextToImageRequest{Prompt: prompt}
	}
	return EditRequest{Images: images, Prompt: prompt}
}
