package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"imagestudio/internal/middleware"
	"imagestudio/internal/studio"
)

// App bundles the dependencies shared by every handler.
type App struct {
	Sessions   *SessionStore
	Dispatcher *studio.Dispatcher
	Translator *studio.Translator
	Encoder    *studio.Encoder
}

// NewApp validates and assembles the handler dependencies.
func NewApp(sessions *SessionStore, dispatcher *studio.Dispatcher, translator *studio.Translator, encoder *studio.Encoder) (*App, error) {
	if sessions == nil {
		return nil, errors.New("handlers: session store is required")
	}
	if dispatcher == nil {
		return nil, errors.New("handlers: dispatcher is required")
	}
	if translator == nil {
		return nil, errors.New("handlers: translator is required")
	}
	if encoder == nil {
		encoder = studio.NewEncoder(0)
	}
	return &App{
		Sessions:   sessions,
		Dispatcher: dispatcher,
		Translator: translator,
		Encoder:    encoder,
	}, nil
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// error writes the JSON error envelope, tagged with the request id so a
// failure shown in the page can be matched to its log line.
func (a *App) error(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	a.json(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   message,
		RequestID: middleware.RequestIDFromContext(r.Context()),
	}})
}

func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, r, http.StatusBadRequest, "bad_request", "invalid payload")
		return false
	}
	return true
}
