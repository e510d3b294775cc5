package sanipath

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const contentTypeHeader = "Content-Type"

// Server exposes the sanitizer over HTTP so non-Go callers can share one
// implementation of the rules
type Server struct {
	addr   string
	policy PolicyConfig
}

// NewServer creates a new server instance with a default policy
func NewServer(addr string, policy PolicyConfig) *Server {
	return &Server{addr: addr, policy: policy}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	router := mux.NewRouter()
	router.HandleFunc("/sanitize", s.sanitizeHandler).Methods("GET")
	router.HandleFunc("/node", s.nodeHandler).Methods("GET")
	router.HandleFunc("/health", s.healthHandler).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	log.Infof("Starting server on %s", s.addr)
	return http.ListenAndServe(s.addr, handlers.LoggingHandler(os.Stdout, router))
}

// healthHandler handles the /health endpoint
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if _, err := fmt.Fprintln(w, "OK"); err != nil {
		log.Errorf("Failed to write health response: %v", err)
	}
}

// sanitizeHandler handles the /sanitize endpoint
func (s *Server) sanitizeHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSONError(w, "missing required 'path' query parameter", http.StatusBadRequest)
		return
	}

	opts := s.policy.Options()
	var parseErr error
	opts.IsFile = queryHint(r, "file", &parseErr)
	opts.FATCompatible = queryBool(r, "fat", opts.FATCompatible, &parseErr)
	opts.TrimToLimit = queryBool(r, "trim", opts.TrimToLimit, &parseErr)
	if parseErr != nil {
		writeJSONError(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	var warnings []string
	if !s.policy.Quiet {
		opts.Warn = func(msg string) { warnings = append(warnings, msg) }
	}

	sanitized, err := SanitizePath(path, opts)
	if err != nil {
		errorsTotalMetric.Inc()
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}
	sanitizedTotalMetric.Inc()
	if sanitized != path {
		changedTotalMetric.Inc()
	}

	writeJSON(w, SanitizeResponse{
		Original:  path,
		Sanitized: sanitized,
		Changed:   sanitized != path,
		Warnings:  warnings,
	})
}

// nodeHandler handles the /node endpoint for single-segment sanitization
func (s *Server) nodeHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := r.URL.Query()["name"]
	if !ok || len(name) == 0 {
		writeJSONError(w, "missing required 'name' query parameter", http.StatusBadRequest)
		return
	}

	opts := NodeOptions{
		FATCompatible: s.policy.FATCompatible,
		TrimToLimit:   s.policy.TrimToLimit,
	}
	var parseErr error
	opts.IsFile = queryHint(r, "file", &parseErr)
	opts.IsRootOrDrive = queryHint(r, "root", &parseErr)
	opts.FATCompatible = queryBool(r, "fat", opts.FATCompatible, &parseErr)
	opts.TrimToLimit = queryBool(r, "trim", opts.TrimToLimit, &parseErr)
	if parseErr != nil {
		writeJSONError(w, parseErr.Error(), http.StatusBadRequest)
		return
	}

	sanitized, err := SanitizeNode(name[0], opts)
	if err != nil {
		errorsTotalMetric.Inc()
		writeJSONError(w, err.Error(), statusForError(err))
		return
	}
	sanitizedTotalMetric.Inc()
	if sanitized != name[0] {
		changedTotalMetric.Inc()
	}

	writeJSON(w, NodeResponse{
		Original:  name[0],
		Sanitized: sanitized,
		Changed:   sanitized != name[0],
	})
}

// statusForError maps sanitizer failures onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrNodeTooLong):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// queryHint parses an optional tri-state boolean query parameter
func queryHint(r *http.Request, key string, parseErr *error) Hint {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return HintUnknown
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*parseErr = fmt.Errorf("invalid boolean value %q for parameter %q", raw, key)
		return HintUnknown
	}
	return HintFromBool(v)
}

// queryBool parses an optional boolean query parameter, falling back to the
// configured default
func queryBool(r *http.Request, key string, fallback bool, parseErr *error) bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*parseErr = fmt.Errorf("invalid boolean value %q for parameter %q", raw, key)
		return fallback
	}
	return v
}

// writeJSON writes a JSON response body
func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set(contentTypeHeader, "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("Failed to write JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set(contentTypeHeader, "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		log.Errorf("Failed to write JSON error response: %v", err)
	}
}
