// Maestro orchestration server: exposes the chat HTTP API, runs the
// agent orchestrator against the LLM sidecar and Google connectors, and
// manages session persistence in PostgreSQL.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sundialhq/maestro/pkg/agent"
	"github.com/sundialhq/maestro/pkg/agent/calendar"
	"github.com/sundialhq/maestro/pkg/agent/email"
	"github.com/sundialhq/maestro/pkg/agent/file"
	"github.com/sundialhq/maestro/pkg/agent/general"
	"github.com/sundialhq/maestro/pkg/agent/notes"
	"github.com/sundialhq/maestro/pkg/api"
	"github.com/sundialhq/maestro/pkg/cleanup"
	"github.com/sundialhq/maestro/pkg/compiler"
	"github.com/sundialhq/maestro/pkg/config"
	"github.com/sundialhq/maestro/pkg/connectors/google"
	"github.com/sundialhq/maestro/pkg/database"
	"github.com/sundialhq/maestro/pkg/events"
	"github.com/sundialhq/maestro/pkg/llm"
	"github.com/sundialhq/maestro/pkg/notify"
	"github.com/sundialhq/maestro/pkg/orchestrator"
	"github.com/sundialhq/maestro/pkg/services"
	"github.com/sundialhq/maestro/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("Starting maestro", "version", version.Full())

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to PostgreSQL and run migrations
	dbClient, err := database.NewClient(ctx, cfg.Database)
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

	// 3. Domain services
	messageService := services.NewMessageService(dbClient.Client)
	draftService := services.NewDraftService(dbClient.Client)
	noteService := services.NewNoteService(dbClient.Client)
	fileService := services.NewFileService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. LLM gateway over the gRPC sidecar
	// Note: grpc.NewClient dials lazily; the connection happens on first RPC
	grpcClient, err := llm.NewGRPCClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	gateway := llm.NewGateway(grpcClient, cfg.LLM.MaxConcurrent)
	defer func() {
		if err := gateway.Close(); err != nil {
			slog.Error("Error closing LLM gateway", "error", err)
		}
	}()
	slog.Info("LLM gateway initialized",
		"addr", cfg.LLM.Addr, "max_concurrent", cfg.LLM.MaxConcurrent)

	// 5. Event streaming infrastructure
	publisher := events.NewPublisher(dbClient.DB())
	broker := events.NewBroker()
	listener := events.NewNotifyListener(cfg.Database.ConnString(), broker)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	broker.AttachListener(listener)
	slog.Info("Event streaming initialized")

	// 6. Approval notifications (disabled when unconfigured)
	notifier := notify.NewService(notify.ServiceConfig{
		Token:        cfg.Notify.SlackToken,
		Channel:      cfg.Notify.SlackChannel,
		DashboardURL: cfg.Notify.DashboardURL,
	})
	if notifier == nil {
		slog.Info("Approval notifications disabled")
	}

	// 7. Agents, registry, orchestrator
	provider := google.NewProvider()
	registry := agent.NewRegistry(
		calendar.New(gateway, provider),
		email.New(gateway, provider, draftService, notifier, logger),
		notes.New(gateway, provider, noteService, logger),
		file.New(gateway, fileService, logger),
		general.New(gateway),
	)
	comp := compiler.New(gateway)
	orch := orchestrator.New(gateway, registry, messageService, comp, publisher, logger)

	// 8. Retention janitors
	janitor := cleanup.NewService(cleanup.Config{
		Interval:       cfg.Retention.CleanupInterval,
		DraftRetention: cfg.Retention.DraftRetention,
		EventTTL:       cfg.Retention.EventTTL,
	}, draftService, dbClient.DB())
	janitor.Start(ctx)
	defer janitor.Stop()

	// 9. HTTP server
	server := api.NewServer(api.Config{
		ListenAddr:   cfg.ListenAddr,
		Orchestrator: orch,
		Messages:     messageService,
		Drafts:       draftService,
		Files:        fileService,
		Broker:       broker,
		Publisher:    publisher,
		Notifier:     notifier,
		DB:           dbClient,
		Logger:       logger,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully", "addr", cfg.ListenAddr)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain HTTP first so no new requests start
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
