package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alexiusacademia/gopier/internal/tower"
	"github.com/ansel1/merry"
	"github.com/google/uuid"
	"github.com/powerman/structlog"
)

// DefaultLevelLimit caps how far a calculate request may extend the dataset
const DefaultLevelLimit uint16 = 2000

// Request bodies larger than this are rejected
const maxBodyBytes = 1 << 20

// Server serves the engine operations over HTTP. It owns the dataset built
// at startup and only ever reads it.
type Server struct {
	data       *tower.Dataset
	port       int
	levelLimit uint16
	log        *structlog.Logger
}

// New creates a server for a dataset. levelLimit 0 selects DefaultLevelLimit.
func New(data *tower.Dataset, port int, levelLimit uint16) *Server {
	if levelLimit == 0 {
		levelLimit = DefaultLevelLimit
	}
	return &Server{
		data:       data,
		port:       port,
		levelLimit: levelLimit,
		log:        structlog.New(structlog.KeyUnit, "server"),
	}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/sections", s.handleSections)
	mux.HandleFunc("GET /api/forces", s.handleForces)
	mux.HandleFunc("GET /api/stress", s.handleStress)
	mux.HandleFunc("POST /api/stress/calculate", s.handleCalculate)
	mux.HandleFunc("GET /api/summary", s.handleSummary)

	return s.logRequests(mux)
}

// Start launches the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("gopier server starting", "addr", "http://localhost"+addr, "levels", s.data.MaxLevel)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
		s.log.Debug(r.Method+" "+r.URL.Path, "req", id, "dur", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"maxLevel": s.data.MaxLevel,
	})
}

func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.data.Sections)
}

func (s *Server) handleForces(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.data.Forces)
}

func (s *Server) handleStress(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.data.Stress)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, tower.Summarize(s.data.Stress))
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	params, err := s.decodeParams(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tower.Recompute(s.data, params))
}

// decodeParams reads and validates a calculate request. Unset factors default
// to 1.0 and an unset range covers the whole dataset.
func (s *Server) decodeParams(w http.ResponseWriter, r *http.Request) (tower.StressParams, error) {
	params := tower.DefaultStressParams(s.data.MaxLevel)

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		return params, merry.WithHTTPCode(merry.Prepend(err, "invalid request body"), http.StatusBadRequest)
	}
	if err := params.Validate(s.levelLimit); err != nil {
		return params, merry.WithHTTPCode(err, http.StatusUnprocessableEntity)
	}
	return params, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := merry.HTTPCode(err)
	if code >= http.StatusInternalServerError {
		s.log.PrintErr(err)
	} else {
		s.log.Debug("request rejected", "code", code, "err", err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
