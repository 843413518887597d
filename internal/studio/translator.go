package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"imagestudio/internal/domain"
	"imagestudio/internal/infra"
)

// TranslatorOptions configures a Translator.
type TranslatorOptions struct {
	// TargetLanguage is a BCP 47 tag; empty means English.
	TargetLanguage string
	Logger         *infra.Logger
}

// Translator rewrites prompt text into the configured target language through
// the remote service.
type Translator struct {
	remote      RemoteService
	target      language.Tag
	instruction string
	logger      *infra.Logger
}

// NewTranslator wires a Translator to the remote service.
func NewTranslator(remote RemoteService, opts TranslatorOptions) (*Translator, error) {
	if remote == nil {
		return nil, errors.New("studio: remote service is required")
	}
	target := language.English
	if raw := strings.TrimSpace(opts.TargetLanguage); raw != "" {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("studio: parse target language %q: %w", raw, err)
		}
		target = tag
	}
	return &Translator{
		remote:      remote,
		target:      target,
		instruction: SystemInstruction(target),
		logger:      loggerOrDiscard(opts.Logger),
	}, nil
}

// Target returns the configured target language.
func (t *Translator) Target() language.Tag {
	return t.target
}

// Translate validates text locally, then issues one remote call. Blank input
// fails with domain.ErrEmptyInput before any network traffic.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyInput
	}

	out, err := t.remote.Translate(ctx, text, t.instruction)
	if err != nil {
		t.logger.Warn().Err(err).Str("target", t.target.String()).Msg("studio: translation failed")
		return "", &domain.RemoteError{Message: err.Error()}
	}

	translated := strings.TrimSpace(out)
	t.logger.Debug().
		Str("target", t.target.String()).
		Int("chars", len(translated)).
		Msg("studio: translation completed")
	return translated, nil
}

// SystemInstruction builds the instruction sent alongside translated text.
func SystemInstruction(target language.Tag) string {
	name := display.English.Tags().Name(target)
	if name == "" {
		name = target.String()
	}
	return fmt.Sprintf(
		"You translate prompts for an image generation model. Translate the user's text into %s. "+
			"If it is already in %s, return it unchanged. Reply with the translated text only, "+
			"without quotes or commentary.", name, name)
}
