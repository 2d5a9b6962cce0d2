// CrewForge orchestrator server — accepts project requests over HTTP,
// plans and dispatches agent crews, and self-heals running swarms.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crewforge/crewforge/pkg/agent"
	"github.com/crewforge/crewforge/pkg/api"
	"github.com/crewforge/crewforge/pkg/config"
	"github.com/crewforge/crewforge/pkg/conflict"
	"github.com/crewforge/crewforge/pkg/database"
	"github.com/crewforge/crewforge/pkg/events"
	"github.com/crewforge/crewforge/pkg/llm"
	"github.com/crewforge/crewforge/pkg/metrics"
	"github.com/crewforge/crewforge/pkg/monitor"
	"github.com/crewforge/crewforge/pkg/planner"
	"github.com/crewforge/crewforge/pkg/queue"
	"github.com/crewforge/crewforge/pkg/scheduler"
	"github.com/crewforge/crewforge/pkg/scope"
	"github.com/crewforge/crewforge/pkg/services"
	"github.com/crewforge/crewforge/pkg/slo"
	"github.com/crewforge/crewforge/pkg/stack"
	"github.com/crewforge/crewforge/pkg/tools"
	"github.com/crewforge/crewforge/pkg/tracing"
	"github.com/crewforge/crewforge/pkg/version"
	"github.com/crewforge/crewforge/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()
	logger := slog.Default()

	slog.Info("Starting CrewForge",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Tracing (no-op without an endpoint)
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		if err := tracing.Init(version.AppName, endpoint); err != nil {
			slog.Error("Failed to initialize tracing", "error", err)
			os.Exit(1)
		}
	}

	// 3. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 4. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Metrics and LLM gateway
	sink := metrics.NewPrometheusSink()
	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	if apiKey == "" {
		slog.Warn("LLM API key not set; gateway calls will fail", "env", cfg.LLM.APIKeyEnv)
	}
	llmClient := llm.NewHTTPClient(cfg.LLM, apiKey, sink)

	// 6. Domain services
	swarmService := services.NewSwarmService(dbClient.Client)
	taskService := services.NewTaskService(dbClient.Client)
	escalationService := services.NewEscalationService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	templateService := services.NewTemplateService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.Client)
	slog.Info("Services initialized")

	// 7. Seed stack templates (idempotent upsert)
	if err := stack.Seed(ctx, llmClient, templateService, logger); err != nil {
		slog.Warn("Stack template seeding incomplete; inference falls back to LLM", "error", err)
	}

	// 8. Orchestration components
	extractor := scope.NewExtractor(llmClient, logger)
	inferencer := stack.NewInferencer(llmClient, templateService, *cfg.Stack, sink, logger)
	resolver := conflict.NewResolver(llmClient, publisher, *cfg.Conflict, *cfg.FileLock, *cfg.Workflow, sink, logger)

	registry := tools.NewRegistry()
	tools.RegisterBuiltins(registry, resolver, publisher)

	executor := agent.NewExecutor(llmClient, registry, taskService, swarmService,
		escalationService, resolver, publisher, *cfg.LLM, logger)
	crewPlanner := planner.New(swarmService, taskService, logger)
	sched := scheduler.New(taskService, resolver)
	gate := slo.NewGate(*cfg.SLO, cfg.LLM.RatePerKTokens, publisher, sink, logger)

	engine := workflow.NewEngine(swarmService, taskService, escalationService,
		crewPlanner, sched, executor, resolver, gate, llmClient, publisher,
		*cfg.Workflow, sink, logger)

	// 9. Worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, engine)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 10. Self-healing monitor
	mon := monitor.New(taskService, escalationService, resolver, publisher,
		*cfg.Monitor, *cfg.Task, sink, logger)
	mon.Start(ctx)

	// 11. HTTP server
	httpServer := api.NewServer(dbClient, swarmService, taskService,
		escalationService, eventService, extractor, inferencer, sched,
		resolver, engine, workerPool, sink.Handler(), logger)

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("CrewForge started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown
	mon.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete swarms will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
