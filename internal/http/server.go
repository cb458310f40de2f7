package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/catalog"
	"github.com/denisok6893-rgb/brew-matching/internal/domain"
	"github.com/denisok6893-rgb/brew-matching/internal/matching"
	"github.com/denisok6893-rgb/brew-matching/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	Engine *matching.Engine
	// Store is nil when saved equipment is disabled.
	Store EquipmentStore

	limits  matching.Limits
	logger  *zap.Logger
	metrics *metrics.Recorder
	rps     float64
	burst   int
	now     func() time.Time
}

type Option func(*Server)

func WithLimits(l matching.Limits) Option {
	return func(s *Server) { s.limits = l }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics instruments every route and mounts GET /metrics.
func WithMetrics(m *metrics.Recorder) Option {
	return func(s *Server) { s.metrics = m }
}

// WithRateLimit throttles each client address to rps requests per second
// with the given burst. A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rps = rps
		s.burst = burst
	}
}

func NewServer(engine *matching.Engine, store EquipmentStore, opts ...Option) *Server {
	s := &Server{
		Engine: engine,
		Store:  store,
		limits: matching.DefaultLimits(),
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	s.handle(mux, "GET /health", s.handleHealth)

	s.handle(mux, "GET /machines", s.handleMachinesList)
	s.handle(mux, "GET /machines/{id}", s.handleMachineGet)
	s.handle(mux, "GET /grinders", s.handleGrindersList)
	s.handle(mux, "GET /grinders/{id}", s.handleGrinderGet)
	s.handle(mux, "GET /beans", s.handleBeansList)
	s.handle(mux, "GET /beans/roasters", s.handleRoasters)
	s.handle(mux, "GET /beans/{id}", s.handleBeanGet)

	s.handle(mux, "POST /recommendations/equipment", s.handleRecommendEquipment)
	s.handle(mux, "GET /recommendations/best", s.handleBestMatch)
	s.handle(mux, "POST /beans/match", s.handleBeanMatch)
	s.handle(mux, "GET /beans/categories/{category}", s.handleBeansByCategory)

	s.handle(mux, "GET /equipment", s.handleEquipmentList)
	s.handle(mux, "POST /equipment", s.handleEquipmentCreate)
	s.handle(mux, "GET /equipment/beans", s.handleEquipmentBeans)
	s.handle(mux, "GET /equipment/{id}", s.handleEquipmentGet)
	s.handle(mux, "DELETE /equipment/{id}", s.handleEquipmentDelete)
	s.handle(mux, "POST /equipment/{id}/favorites", s.handleFavoriteAdd)
	s.handle(mux, "DELETE /equipment/{id}/favorites/{beanId}", s.handleFavoriteRemove)
	s.handle(mux, "POST /equipment/{id}/maintenance", s.handleMaintenance)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	if s.rps > 0 {
		return newRateLimiter(s.rps, s.burst, s.logger).Handler(mux)
	}
	return mux
}

func (s *Server) handle(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	var handler http.Handler = h
	if s.metrics != nil {
		handler = s.metrics.Instrument(pattern, handler)
	}
	mux.Handle(pattern, handler)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Catalog API (read-only) ----

type ListResponse[T any] struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
	Items  []T `json:"items"`
}

func page[T any](items []T, limit, offset int) ListResponse[T] {
	total := len(items)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return ListResponse[T]{Limit: limit, Offset: offset, Total: total, Items: out}
}

func (s *Server) handleMachinesList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	writeJSON(w, http.StatusOK, page(s.Engine.Catalog().Machines, limit, offset))
}

func (s *Server) handleMachineGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	m, ok := s.Engine.Catalog().MachineByID(id)
	if !ok {
		notFound(w, r, fmt.Sprintf("machine %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleGrindersList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	writeJSON(w, http.StatusOK, page(s.Engine.Catalog().Grinders, limit, offset))
}

func (s *Server) handleGrinderGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	g, ok := s.Engine.Catalog().GrinderByID(id)
	if !ok {
		notFound(w, r, fmt.Sprintf("grinder %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleBeansList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := catalog.BeanQuery{
		Roaster:    q.Get("roaster"),
		Origin:     q.Get("origin"),
		FlavorNote: q.Get("flavor"),
	}
	if v := q.Get("roast"); v != "" {
		roast, err := domain.ParseRoastLevel(v)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		query.Roast = roast
	}
	if v := q.Get("method"); v != "" {
		method, err := domain.ParseBrewMethod(v)
		if err != nil {
			badRequest(w, r, err.Error())
			return
		}
		query.Method = method
	}
	if v := q.Get("in_stock"); v != "" {
		inStock, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(w, r, fmt.Sprintf("in_stock must be a boolean, got %q", v))
			return
		}
		query.InStockOnly = inStock
	}

	limit, offset := parseLimitOffset(r, 20, 0)
	beans := catalog.FilterBeans(s.Engine.Catalog().Beans, query)
	writeJSON(w, http.StatusOK, page(beans, limit, offset))
}

func (s *Server) handleRoasters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"roasters": catalog.Roasters(s.Engine.Catalog().Beans)})
}

func (s *Server) handleBeanGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b, ok := s.Engine.Catalog().BeanByID(id)
	if !ok {
		notFound(w, r, fmt.Sprintf("bean %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}
