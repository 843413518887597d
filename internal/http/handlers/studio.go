package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"imagestudio/internal/domain"
	"imagestudio/internal/studio"
)

type generateRequest struct {
	Prompt *string `json:"prompt"`
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Text string `json:"text"`
}

// Generate updates the prompt if one is supplied, then runs one dispatch for
// the session. Remote failures are rendered into the view, not reported as
// HTTP errors. The remote call is detached from client cancellation.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	ws := a.Sessions.Resolve(w, r)
	var req generateRequest
	if r.ContentLength != 0 && !a.decode(w, r, &req) {
		return
	}
	if req.Prompt != nil {
		ws.SetPrompt(*req.Prompt)
	}
	if strings.TrimSpace(ws.Prompt()) == "" {
		a.error(w, r, http.StatusUnprocessableEntity, "empty_prompt", domain.ErrEmptyInput.Error())
		return
	}

	res, err := ws.Generate(context.WithoutCancel(r.Context()), a.Dispatcher)
	if err != nil {
		if errors.Is(err, domain.ErrBusy) {
			a.error(w, r, http.StatusConflict, "busy", "a generation is already in progress")
			return
		}
		a.error(w, r, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	a.json(w, http.StatusOK, studio.Render(res))
}

func (a *App) Translate(w http.ResponseWriter, r *http.Request) {
	ws := a.Sessions.Resolve(w, r)
	var req translateRequest
	if !a.decode(w, r, &req) {
		return
	}

	text, err := ws.Translate(context.WithoutCancel(r.Context()), a.Translator, req.Text)
	switch {
	case err == nil:
		a.json(w, http.StatusOK, translateResponse{Text: text})
	case errors.Is(err, domain.ErrEmptyInput):
		a.error(w, r, http.StatusBadRequest, "empty_input", "text to translate is empty")
	case errors.Is(err, domain.ErrBusy):
		a.error(w, r, http.StatusConflict, "busy", "a translation is already in progress")
	case errors.Is(err, domain.ErrRemoteService):
		a.error(w, r, http.StatusBadGateway, "remote_error", err.Error())
	default:
		a.error(w, r, http.StatusInternalServerError, "internal", err.Error())
	}
}
