package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/termilink/termilink/internal"
	"github.com/termilink/termilink/internal/noteservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(cfg *internal.Config, svc *noteservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(cfg, svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Post("/notes/append", h.AppendNote)
	r.Post("/notes", h.CreateNote)
	r.Get("/notes/recent", h.RecentNotes)
	r.Get("/daily", h.DailyNote)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
