// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thleu-ethz-ch/ngp-dag-layout/layered"
)

// Config configures a Server's backing services.
type Config struct {
	// RedisAddr is the cache's Redis address. Empty disables caching.
	RedisAddr string
	// CacheTTL is how long a cached result is trusted.
	CacheTTL time.Duration
	// Mongo is a connected client for run-record persistence. Nil disables
	// persistence.
	Mongo *mongo.Client
	// MongoDatabase names the database runRecords are written to.
	MongoDatabase string
	// Logger receives request-handling errors; a nil Logger uses log.Default().
	Logger *log.Logger
}

// Server wraps layered.Optimize as an HTTP service.
type Server struct {
	router *chi.Mux
	cache  *resultCache
	store  *runStore
	logger *log.Logger
}

// NewServer builds a Server and wires its routes.
func NewServer(cfg Config) *Server {
	s := &Server{logger: cfg.Logger}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if cfg.RedisAddr != "" {
		ttl := cfg.CacheTTL
		if ttl == 0 {
			ttl = time.Hour
		}
		s.cache = newResultCache(cfg.RedisAddr, ttl)
	}
	if cfg.Mongo != nil {
		s.store = newRunStore(cfg.Mongo, cfg.MongoDatabase)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/v1/layouts", s.handleCreateLayout)
	r.Get("/v1/runs", s.handleRecentRuns)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// layoutRequest is the POST /v1/layouts request body: a wire-format-
// equivalent JSON graph description.
type layoutRequest struct {
	Ranks                [][]int        `json:"ranks"`
	Edges                []layered.Edge `json:"edges"`
	RejectWorseningSouth bool           `json:"reject_worsening_south,omitempty"`
}

// layoutResponse is the POST /v1/layouts response body.
type layoutResponse struct {
	Orders   [][]int        `json:"orders"`
	Report   layered.Report `json:"report"`
	CacheHit bool           `json:"cache_hit"`
	RunID    string         `json:"run_id,omitempty"`
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	desc := &layered.Description{Ranks: req.Ranks, Edges: req.Edges}

	resp, err := s.layout(r.Context(), desc, req.RejectWorseningSouth, start)
	if err != nil {
		var invalid *layered.InvalidGraphError
		if errors.As(err, &invalid) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.logger.Errorf("optimize: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleRecentRuns serves GET /v1/runs, the most recently recorded
// optimize invocations, newest first. It responds with an empty list
// (rather than an error) when run persistence is disabled.
func (s *Server) handleRecentRuns(w http.ResponseWriter, r *http.Request) {
	limit := int64(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	runs := []runRecord{}
	if s.store != nil {
		recent, err := s.store.recent(r.Context(), limit)
		if err != nil {
			s.logger.Errorf("recent runs: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		runs = recent
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

func (s *Server) layout(ctx context.Context, desc *layered.Description, rejectWorseningSouth bool, start time.Time) (*layoutResponse, error) {
	digest := digest(desc)
	key := digest
	if rejectWorseningSouth {
		key += ":reject-worsening-south"
	}

	if s.cache != nil {
		if cached, hit, err := s.cache.get(ctx, key); err == nil && hit {
			return &layoutResponse{Orders: cached.Orders, Report: cached.Report, CacheHit: true}, nil
		}
	}

	initial, err := layered.Evaluate(desc.Ranks, desc.Edges)
	if err != nil {
		return nil, err
	}

	orders, report, err := layered.Optimize(desc.Ranks, desc.Edges, layered.Options{RejectWorseningSouth: rejectWorseningSouth})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.set(ctx, key, &cachedResult{Orders: orders, Report: report})
	}

	var runID string
	if s.store != nil {
		runID, _ = s.store.record(ctx, runRecord{
			Digest:      digest,
			NumRanks:    len(desc.Ranks),
			NumEdges:    len(desc.Edges),
			TotalBefore: initial.Total,
			TotalAfter:  report.Total,
			Duration:    time.Since(start).Milliseconds(),
		})
	}

	return &layoutResponse{Orders: orders, Report: report, RunID: runID}, nil
}

