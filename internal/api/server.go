package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/pogoda/internal/entity"
	"github.com/lox/pogoda/internal/metrics"
	"github.com/lox/pogoda/internal/store"
)

type Server struct {
	store   *store.Store
	builder *entity.Builder
	addr    string
	clock   clockwork.Clock
}

// NewServer wires the API. store may be nil, in which case unknown codes
// and built states are not persisted.
func NewServer(st *store.Store, builder *entity.Builder, addr string) *Server {
	return &Server{
		store:   st,
		builder: builder,
		addr:    addr,
		clock:   clockwork.NewRealClock(),
	}
}

// SetClock replaces the clock used for day part lookups.
func (s *Server) SetClock(c clockwork.Clock) {
	s.clock = c
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.instrument("health", s.handleHealth))
	mux.HandleFunc("GET /api/condition", s.instrument("condition", s.handleCondition))
	mux.HandleFunc("GET /api/icon", s.instrument("icon", s.handleIcon))
	mux.HandleFunc("GET /api/wind-direction", s.instrument("wind_direction", s.handleWindDirection))
	mux.HandleFunc("GET /api/convert", s.instrument("convert", s.handleConvert))
	mux.HandleFunc("GET /api/daypart", s.instrument("daypart", s.handleDayPart))
	mux.HandleFunc("POST /api/state", s.instrument("state", s.handleBuildState))
	mux.HandleFunc("GET /api/state", s.instrument("latest_state", s.handleLatestState))
	mux.HandleFunc("GET /api/unknown-codes", s.instrument("unknown_codes", s.handleUnknownCodes))
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		metrics.APIRequests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
		metrics.APILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("api: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
