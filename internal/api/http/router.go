package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter wires the API routes ahead of the static file fallback, which
// serves publicDir for any other GET path.
func NewRouter(handler *Handler, publicDir string) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	if publicDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(publicDir))).Methods("GET", "HEAD")
	}
	r.Use(requestLogger)
	return cors.Default().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	log.Printf("Cafe Rater starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %s -> %d (%s)", requestID, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
