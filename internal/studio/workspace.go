package studio

import (
	"context"
	"sync"
)

// Workspace is the per-session UI state: the image slots, the prompt text and
// the latches guarding generation and translation. Slots stay populated after
// a generation; nothing clears them implicitly.
type Workspace struct {
	images *ImageStore

	mu     sync.RWMutex
	prompt string

	generation  *Latch
	translation *Latch
}

// NewWorkspace returns an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		images:      NewImageStore(),
		generation:  NewLatch(),
		translation: NewLatch(),
	}
}

// Images exposes the slot store.
func (w *Workspace) Images() *ImageStore {
	return w.images
}

// Prompt returns the current prompt text.
func (w *Workspace) Prompt() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.prompt
}

// SetPrompt replaces the prompt text. The last write wins.
func (w *Workspace) SetPrompt(prompt string) {
	w.mu.Lock()
	w.prompt = prompt
	w.mu.Unlock()
}

// Generating reports whether a dispatch is in flight.
func (w *Workspace) Generating() bool {
	return w.generation.Held()
}

// Translating reports whether a translation is in flight.
func (w *Workspace) Translating() bool {
	return w.translation.Held()
}

// Generate runs one dispatch unless another is already in flight, in which
// case it returns domain.ErrBusy without touching the remote service.
func (w *Workspace) Generate(ctx context.Context, d *Dispatcher) (Result, error) {
	var res Result
	err := w.generation.TryDo(func() error {
		res = d.Dispatch(ctx, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Translate translates text and, on success, makes the trimmed translation the
// new prompt.
func (w *Workspace) Translate(ctx context.Context, t *Translator, text string) (string, error) {
	var translated string
	err := w.translation.TryDo(func() error {
		out, err := t.Translate(ctx, text)
		if err != nil {
			return err
		}
		translated = out
		w.SetPrompt(out)
		return nil
	})
	if err != nil {
		return "", err
	}
	return translated, nil
}
