package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"imagestudio/internal/http/handlers"
	"imagestudio/internal/infra"
	"imagestudio/internal/middleware"
	"imagestudio/internal/web"
)

// Options tunes the cross-cutting middleware.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, logger infra.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(logger),
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger,
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: opts.AllowedOrigins}),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/workspace", app.Workspace)

		// Routes that create sessions or reach the remote service are rate
		// limited per client.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
			r.Put("/prompt", app.SetPrompt)
			r.Post("/slots/{index}", app.UploadSlot)
			r.Post("/generate", app.Generate)
			r.Post("/translate", app.Translate)
		})
	})

	r.Handle("/*", web.Handler())

	return r
}
