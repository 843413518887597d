package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"imagestudio/internal/domain"
	"imagestudio/internal/infra"
	"imagestudio/internal/studio"
)

const (
	DefaultEditModel  = "gemini-2.5-flash-image"
	DefaultImageModel = "imagen-4.0-generate-001"
	DefaultTextModel  = "gemini-2.5-flash"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	EditModel  string
	ImageModel string
	TextModel  string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// models is the subset of *genai.Models the client calls.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// Client implements studio.RemoteService on top of the Gemini API.
type Client struct {
	models     models
	editModel  string
	imageModel string
	textModel  string
	logger     *infra.Logger
}

var _ studio.RemoteService = (*Client)(nil)

// NewClient constructs a Gemini client. The API key is required; models fall
// back to the package defaults.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if baseURL := strings.TrimSpace(opts.BaseURL); baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	sdk, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newClient(sdk.Models, opts), nil
}

func newClient(m models, opts Options) *Client {
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		logger = &discard
	}

	return &Client{
		models:     m,
		editModel:  firstNonEmpty(opts.EditModel, DefaultEditModel),
		imageModel: firstNonEmpty(opts.ImageModel, DefaultImageModel),
		textModel:  firstNonEmpty(opts.TextModel, DefaultTextModel),
		logger:     logger,
	}
}

// GenerateEdit sends the images followed by the prompt as one user turn and
// returns every content part of the first candidate.
func (c *Client) GenerateEdit(ctx context.Context, images []domain.EncodedImage, prompt string) (*studio.EditResponse, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	for i, img := range images {
		data, err := studio.Decode(img)
		if err != nil {
			return nil, fmt.Errorf("gemini generate edit: image %d: %w", i, err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, img.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage), string(genai.ModalityText)},
	}

	c.logger.Debug().
		Str("model", c.editModel).
		Int("images", len(images)).
		Msg("gemini: generate edit")

	resp, err := c.models.GenerateContent(ctx, c.editModel, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, config)
	if err != nil {
		return nil, c.apiError("generate_edit", err)
	}
	return toEditResponse(resp), nil
}

// GenerateTextToImage synthesizes images from the prompt alone.
func (c *Client) GenerateTextToImage(ctx context.Context, prompt string, opts studio.TextToImageOptions) (*studio.TextToImageResponse, error) {
	count := opts.Count
	if count <= 0 {
		count = 1
	}
	config := &genai.GenerateImagesConfig{
		NumberOfImages: int32(count),
		OutputMIMEType: opts.OutputMIMEType,
	}

	c.logger.Debug().
		Str("model", c.imageModel).
		Int("count", count).
		Msg("gemini: generate images")

	resp, err := c.models.GenerateImages(ctx, c.imageModel, prompt, config)
	if err != nil {
		return nil, c.apiError("generate_images", err)
	}
	return toTextToImageResponse(resp, opts.OutputMIMEType), nil
}

// Translate asks the text model to translate under systemInstruction and
// returns the concatenated text parts of the first candidate.
func (c *Client) Translate(ctx context.Context, text, systemInstruction string) (string, error) {
	config := &genai.GenerateContentConfig{}
	if strings.TrimSpace(systemInstruction) != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(text), config)
	if err != nil {
		return "", c.apiError("translate", err)
	}
	return extractText(resp), nil
}

func toEditResponse(resp *genai.GenerateContentResponse) *studio.EditResponse {
	out := &studio.EditResponse{}
	if resp == nil || len(resp.Candidates) == 0 {
		return out
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return out
	}
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		cp := studio.ContentPart{Text: part.Text}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			cp.InlineImage = &domain.EncodedImage{
				MIMEType: part.InlineData.MIMEType,
				Data:     base64.StdEncoding.EncodeToString(part.InlineData.Data),
			}
		}
		out.Parts = append(out.Parts, cp)
	}
	return out
}

func toTextToImageResponse(resp *genai.GenerateImagesResponse, requestedMIME string) *studio.TextToImageResponse {
	out := &studio.TextToImageResponse{}
	if resp == nil {
		return out
	}
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		out.Images = append(out.Images, domain.EncodedImage{
			MIMEType: firstNonEmpty(generated.Image.MIMEType, requestedMIME),
			Data:     base64.StdEncoding.EncodeToString(generated.Image.ImageBytes),
		})
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
