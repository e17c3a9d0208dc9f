package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/rahad-campaign/assistant"
	"github.com/danielhkuo/rahad-campaign/cliparse"
	"github.com/danielhkuo/rahad-campaign/db"
	"github.com/danielhkuo/rahad-campaign/middleware"
	"github.com/danielhkuo/rahad-campaign/router"
	"github.com/danielhkuo/rahad-campaign/sheets"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The assistant answers with its fallback text when no key is set
	var gen assistant.Generator
	if cfg.GenAIAPIKey != "" {
		g, err := assistant.NewGenAIGenerator(ctx, cfg.GenAIAPIKey, cfg.GenAIModel)
		if err != nil {
			slog.Error("genai client failed", "error", err)
			os.Exit(1)
		}
		gen = g
		slog.Info("Assistant enabled", "model", cfg.GenAIModel)
	} else {
		slog.Warn("no genai API key set, assistant will use fallback replies")
	}

	forwarder := sheets.NewForwarder(sheets.NewClient(cfg.SheetURL, cfg.SheetTimeout))

	// Create router
	mux := router.NewRouter(dbConn, cfg, gen, forwarder)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()

	// Let in-flight spreadsheet syncs finish
	forwarder.Wait()

	if err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
