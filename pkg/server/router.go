package server

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NVIDIA/hafacts/pkg/errors"
	"github.com/NVIDIA/hafacts/pkg/serializer"
)

// setupRoutes registers the system endpoints and the configured handlers.
// Configured handlers are wrapped with middleware; /health, /ready and
// /metrics are not rate limited.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for path, handler := range s.config.Handlers {
		mux.HandleFunc(path, s.withMiddleware(handler))
	}

	return mux
}

// rootHandler lists the served routes.
func (s *Server) rootHandler(routes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
				"Method not allowed", false, map[string]any{"method": r.Method})
			return
		}
		if r.URL.Path != "/" {
			WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
				"Route not found", false, map[string]any{"path": r.URL.Path})
			return
		}

		slog.Debug("handling default route",
			"method", r.Method,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		serializer.RespondJSON(w, http.StatusOK, struct {
			Name      string   `json:"name"`
			Version   string   `json:"version"`
			Ready     bool     `json:"ready"`
			Timestamp string   `json:"timestamp"`
			Routes    []string `json:"routes"`
		}{
			Name:      s.config.Name,
			Version:   s.config.Version,
			Ready:     s.isReady(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Routes:    routes,
		})
	}
}

// routeList returns the sorted paths of the configured and system routes.
func routeList(handlers map[string]http.HandlerFunc) []string {
	routes := []string{"/health", "/ready", "/metrics"}
	for path := range handlers {
		if path != "/" {
			routes = append(routes, path)
		}
	}
	sort.Strings(routes)
	return routes
}
