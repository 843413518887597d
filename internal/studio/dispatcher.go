package studio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"imagestudio/internal/infra"
)

// DefaultOutputMIMEType is requested from text-to-image calls when no other
// type is configured.
const DefaultOutputMIMEType = "image/jpeg"

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	OutputMIMEType string
	Logger         *infra.Logger
}

// Dispatcher decides which remote operation a workspace needs, issues exactly
// one call, and normalizes the response into a Result. It keeps no state of
// its own; single-flight protection belongs to the caller (see Workspace).
type Dispatcher struct {
	remote     RemoteService
	outputMIME string
	logger     *infra.Logger
}

// NewDispatcher wires a Dispatcher to the remote service.
func NewDispatcher(remote RemoteService, opts DispatcherOptions) (*Dispatcher, error) {
	if remote == nil {
		return nil, errors.New("studio: remote service is required")
	}
	outputMIME := opts.OutputMIMEType
	if outputMIME == "" {
		outputMIME = DefaultOutputMIMEType
	}
	return &Dispatcher{
		remote:     remote,
		outputMIME: outputMIME,
		logger:     loggerOrDiscard(opts.Logger),
	}, nil
}

// Dispatch reads the workspace slots and prompt, selects the request variant
// and executes it.
func (d *Dispatcher) Dispatch(ctx context.Context, ws *Workspace) Result {
	req := SelectRequest(ws.Images().PresentSlots(), ws.Prompt())
	return d.Execute(ctx, req)
}

// Execute issues the remote call matching req. Remote errors, and panics
// raised by the remote client, come back as Failure.
func (d *Dispatcher) Execute(ctx context.Context, req GenerationRequest) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error().Interface("panic", rec).Msg("studio: remote client panicked")
			res = Failure{Message: fmt.Sprint(rec)}
		}
	}()

	switch r := req.(type) {
	case EditRequest:
		res = d.executeEdit(ctx, r)
	case TextToImageRequest:
		res = d.executeTextToImage(ctx, r)
	default:
		res = Failure{Message: fmt.Sprintf("unsupported request %T", req)}
	}

	d.logOutcome(req, res)
	return res
}

func (d *Dispatcher) executeEdit(ctx context.Context, req EditRequest) Result {
	d.logger.Debug().
		Int("images", len(req.Images)).
		Msg("studio: dispatching edit request")

	resp, err := d.remote.GenerateEdit(ctx, req.Images, req.Prompt)
	if err != nil {
		return Failure{Message: err.Error()}
	}
	if resp == nil {
		return NoImageProduced{}
	}
	for _, part := range resp.Parts {
		if part.InlineImage == nil || part.InlineImage.IsZero() {
			continue
		}
		return ImageResult{MIMEType: part.InlineImage.MIMEType, Data: part.InlineImage.Data}
	}
	return NoImageProduced{}
}

func (d *Dispatcher) executeTextToImage(ctx context.Context, req TextToImageRequest) Result {
	d.logger.Debug().Msg("studio: dispatching text-to-image request")

	resp, err := d.remote.GenerateTextToImage(ctx, req.Prompt, TextToImageOptions{
		Count:          1,
		OutputMIMEType: d.outputMIME,
	})
	if err != nil {
		return Failure{Message: err.Error()}
	}
	if resp == nil || len(resp.Images) == 0 {
		return NoImageProduced{}
	}
	first := resp.Images[0]
	mimeType := first.MIMEType
	if mimeType == "" {
		mimeType = d.outputMIME
	}
	return ImageResult{MIMEType: mimeType, Data: first.Data}
}

func (d *Dispatcher) logOutcome(req GenerationRequest, res Result) {
	variant := "text_to_image"
	if _, ok := req.(EditRequest); ok {
		variant = "edit"
	}
	switch r := res.(type) {
	case ImageResult:
		d.logger.Info().Str("variant", variant).Str("mime_type", r.MIMEType).Msg("studio: image produced")
	case NoImageProduced:
		d.logger.Info().Str("variant", variant).Msg("studio: no image produced")
	case Failure:
		d.logger.Warn().Str("variant", variant).Str("error", r.Message).Msg("studio: generation failed")
	}
}

func loggerOrDiscard(l *infra.Logger) *infra.Logger {
	if l != nil {
		return l
	}
	discard := zerolog.New(io.Discard)
	return &discard
}
