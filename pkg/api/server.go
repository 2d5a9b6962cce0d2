// Package api exposes the orchestrator over HTTP: intake, planner views,
// escalation resolution, and operational endpoints.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/database"
	"github.com/crewforge/crewforge/pkg/queue"
	"github.com/crewforge/crewforge/pkg/scheduler"
	"github.com/crewforge/crewforge/pkg/scope"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/stack"
	"github.com/crewforge/crewforge/pkg/workflow"
)

// healthCheckTimeout bounds the database ping in the health handler.
const healthCheckTimeout = 5 * time.Second

// Server wires the HTTP surface to the service layer.
type Server struct {
	db          *database.Client
	swarms      *services.SwarmService
	tasks       *services.TaskService
	escalations *services.EscalationService
	events      *services.EventService
	extractor   *scope.Extractor
	inferencer  *stack.Inferencer
	sched       *scheduler.Scheduler
	resolver    *conflict.Resolver
	engine      *workflow.Engine
	pool        *queue.WorkerPool
	metrics     http.Handler
	logger      *slog.Logger

	httpServer *http.Server
}

// NewServer creates the API server. metricsHandler may be nil, in which case
// the /metrics route is not registered.
func NewServer(
	db *database.Client,
	swarms *services.SwarmService,
	tasks *services.TaskService,
	escalations *services.EscalationService,
	events *services.EventService,
	extractor *scope.Extractor,
	inferencer *stack.Inferencer,
	sched *scheduler.Scheduler,
	resolver *conflict.Resolver,
	engine *workflow.Engine,
	pool *queue.WorkerPool,
	metricsHandler http.Handler,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:          db,
		swarms:      swarms,
		tasks:       tasks,
		escalations: escalations,
		events:      events,
		extractor:   extractor,
		inferencer:  inferencer,
		sched:       sched,
		resolver:    resolver,
		engine:      engine,
		pool:        pool,
		metrics:     metricsHandler,
		logger:      logger.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.POST("/orchestrator/process", s.ProcessMessage)

	planner := router.Group("/api/planner/:swarm_id")
	{
		planner.GET("", s.GetTaskTree)
		planner.GET("/progress", s.GetProgress)
		planner.GET("/escalations", s.ListEscalations)
		planner.POST("/escalations/:escalation_id/resolve", s.ResolveEscalation)
	}

	router.GET("/swarms", s.ListSwarms)
	router.POST("/swarms/:swarm_id/cancel", s.CancelSwarm)

	router.GET("/healthz", s.Health)
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics))
	}
	return router
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger emits one structured log line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
