package chi

import (
	"encoding/json"
	"net/http"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/bonfire/internal/domain"
	gen "github.com/kailas-cloud/bonfire/internal/transport/generated"
	analyticsuc "github.com/kailas-cloud/bonfire/internal/usecase/analytics"
	cataloguc "github.com/kailas-cloud/bonfire/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/bonfire/internal/usecase/health"
	joinuc "github.com/kailas-cloud/bonfire/internal/usecase/join"
)

// Server implements generated.ServerInterface for the oapi-codegen chi router.
type Server struct {
	gen.Unimplemented
	catalog   *cataloguc.Service
	join      *joinuc.Service
	analytics *analyticsuc.Service
	health    *healthuc.Service
	logger    *zap.Logger
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	join *joinuc.Service,
	analytics *analyticsuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		catalog:   catalog,
		join:      join,
		analytics: analytics,
		health:    health,
		logger:    logger,
	}
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, gen.HealthResponse{Status: gen.HealthResponseStatus(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) log(r *http.Request) *zap.Logger {
	return s.logger.With(zap.String("request_id", chiMiddleware.GetReqID(r.Context())))
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// intParam dereferences an optional bound parameter; absent means 0.
func intParam(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// writeDeleted answers a delete: 204, or 200 with the warnings when the graph side failed.
func writeDeleted(w http.ResponseWriter, warnings domain.Warnings) {
	if len(warnings) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, gen.DeleteResult{Warnings: warnings})
}
