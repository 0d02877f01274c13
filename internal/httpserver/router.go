package httpserver

import (
	"net/http"

	"drugdiscovery/internal/middleware"

	"log/slog"

	"github.com/go-chi/chi/v5"
)

// AnalyzePath путь endpoint-а анализа.
const AnalyzePath = "/drug-discovery"

type RouterDeps struct {
	Logger         *slog.Logger
	AnalyzeHandler http.Handler
}

// NewRouter собирает chi-роутер с общими middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.CORS)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Post(AnalyzePath, deps.AnalyzeHandler.ServeHTTP)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, "Not found")
	})

	return r
}
