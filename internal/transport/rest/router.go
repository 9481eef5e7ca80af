package rest

import (
	"net/http"

	"github.com/heartmarshall/restoration-backend/internal/transport/middleware"
)

// NewRouter mounts the health probes unauthenticated and the board API
// behind api.
func NewRouter(health *HealthHandler, items *RestorationHandler, api middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	board := http.NewServeMux()
	board.HandleFunc("GET /api/restorations", items.List)
	board.HandleFunc("POST /api/restorations", items.Create)
	board.HandleFunc("GET /api/restorations/{id}", items.Get)
	board.HandleFunc("PATCH /api/restorations/{id}", items.Update)
	board.HandleFunc("POST /api/restorations/{id}/archive", items.Archive)
	board.HandleFunc("DELETE /api/restorations/{id}/archive", items.Unarchive)
	board.HandleFunc("POST /api/restorations/{id}/photos/upload-url", items.PhotoUploadURL)

	mux.Handle("/api/", api(board))

	return mux
}
