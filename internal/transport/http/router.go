package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"lead-assessment-service/internal/app"
)

// NewRouter wires the REST and websocket endpoints.
func NewRouter(service *app.AssessmentService, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(loggingMiddleware(logger))

	rest := NewRESTHandler(service, logger)
	ws := NewWSHandler(service, logger)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/ws", ws.ServeWS).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/assessments", rest.Create).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/assessments/{id}", rest.Get).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/assessments/{id}", rest.Delete).Methods(http.MethodDelete, http.MethodOptions)
	v1.HandleFunc("/assessments/{id}/answers", rest.Answer).Methods(http.MethodPut, http.MethodOptions)
	v1.HandleFunc("/assessments/{id}/advance", rest.Advance).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/assessments/{id}/retreat", rest.Retreat).Methods(http.MethodPost, http.MethodOptions)
	v1.HandleFunc("/assessments/{id}/result", rest.Result).Methods(http.MethodGet, http.MethodOptions)
	v1.HandleFunc("/assessments/{id}/submit", rest.Submit).Methods(http.MethodPost, http.MethodOptions)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// websocket upgrades need the raw writer for hijacking
			if r.URL.Path == "/ws" {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
