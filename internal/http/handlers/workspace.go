package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"imagestudio/internal/domain"
	"imagestudio/internal/studio"
)

type slotView struct {
	Index    int    `json:"index"`
	Present  bool   `json:"present"`
	MIMEType string `json:"mime_type,omitempty"`
	Preview  string `json:"preview"`
}

type workspaceView struct {
	Prompt      string     `json:"prompt"`
	Generating  bool       `json:"generating"`
	Translating bool       `json:"translating"`
	Slots       []slotView `json:"slots"`
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

// Workspace reports the session state. A request without a live session gets
// the empty view and no session is created.
func (a *App) Workspace(w http.ResponseWriter, r *http.Request) {
	ws, ok := a.Sessions.Lookup(r)
	if !ok {
		ws = studio.NewWorkspace()
	}
	view := workspaceView{
		Prompt:      ws.Prompt(),
		Generating:  ws.Generating(),
		Translating: ws.Translating(),
		Slots:       make([]slotView, 0, domain.SlotCount),
	}
	for i := 0; i < domain.SlotCount; i++ {
		view.Slots = append(view.Slots, slotPreview(ws, i))
	}
	a.json(w, http.StatusOK, view)
}

func (a *App) SetPrompt(w http.ResponseWriter, r *http.Request) {
	ws := a.Sessions.Resolve(w, r)
	var req promptRequest
	if !a.decode(w, r, &req) {
		return
	}
	ws.SetPrompt(req.Prompt)
	a.json(w, http.StatusOK, promptRequest{Prompt: ws.Prompt()})
}

func (a *App) UploadSlot(w http.ResponseWriter, r *http.Request) {
	ws := a.Sessions.Resolve(w, r)
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= domain.SlotCount {
		a.error(w, r, http.StatusBadRequest, "invalid_slot", "slot index must be 0 or 1")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.Encoder.MaxBytes()+(1<<20))
	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.error(w, r, http.StatusRequestEntityTooLarge, "too_large", "image exceeds the upload limit")
			return
		}
		a.error(w, r, http.StatusBadRequest, "bad_request", "multipart field \"image\" is required")
		return
	}
	defer file.Close()

	img, err := a.Encoder.Encode(r.Context(), file, header.Header.Get("Content-Type"))
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Int("slot", index).Msg("upload rejected")
		switch {
		case errors.Is(err, domain.ErrUnsupportedMedia):
			a.error(w, r, http.StatusUnsupportedMediaType, "unsupported_media", err.Error())
		default:
			a.error(w, r, http.StatusUnprocessableEntity, "read_error", err.Error())
		}
		return
	}
	if err := ws.Images().SetSlot(index, img); err != nil {
		a.error(w, r, http.StatusBadRequest, "invalid_slot", err.Error())
		return
	}
	a.json(w, http.StatusOK, slotView{Index: index, Present: true, MIMEType: img.MIMEType, Preview: img.DataURI()})
}

func slotPreview(ws *studio.Workspace, index int) slotView {
	if img, ok := ws.Images().Slot(index); ok {
		return slotView{Index: index, Present: true, MIMEType: img.MIMEType, Preview: img.DataURI()}
	}
	return slotView{Index: index, Preview: studio.Placeholder(index).DataURI()}
}
