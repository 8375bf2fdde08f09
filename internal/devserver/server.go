package devserver

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// requestIDHeader carries the per-request ID back to the client so a browser
// report can be matched to a log line.
const requestIDHeader = "X-Request-ID"

// NewRouter builds the dev server's route table: health check, index page,
// and static serving of the WASM bundle from cfg.WebDir.
func NewRouter(cfg Config, logger *Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogging(logger))

	indexPath := filepath.Join(cfg.WebDir, "index.html")
	// ServeFile 301-redirects any request path ending in "/index.html", so
	// the index is served through ServeContent instead.
	serveIndex := func(w http.ResponseWriter, req *http.Request) {
		f, err := os.Open(indexPath)
		if err != nil {
			http.NotFound(w, req)
			return
		}
		defer f.Close()
		fi, err := f.Stat()
		if err != nil {
			http.NotFound(w, req)
			return
		}
		http.ServeContent(w, req, "index.html", fi.ModTime(), f)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/", serveIndex).Methods("GET")
	r.HandleFunc("/index.html", serveIndex).Methods("GET")

	// Everything else comes from the web dir. ServeContent only sniffs a
	// content type for unknown extensions, so .wasm needs an explicit one
	// or instantiateStreaming refuses the response.
	fileServer := http.FileServer(http.Dir(cfg.WebDir))
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasSuffix(req.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		fileServer.ServeHTTP(w, req)
	})

	return r
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// requestLogging tags each request with a UUID and logs one line per request
// with method, path, status and duration.
func requestLogging(logger *Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := uuid.NewString()
			w.Header().Set(requestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, req)

			logger.Info(fmt.Sprintf("%s %s %s %d %s", id, req.Method, req.URL.Path, rec.status, time.Since(start)))
		})
	}
}
