// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quizhost/cliparse"
	"github.com/danielhkuo/quizhost/middleware"
	"github.com/danielhkuo/quizhost/quiz"
	"github.com/danielhkuo/quizhost/router"
	"github.com/danielhkuo/quizhost/state"
	"github.com/danielhkuo/quizhost/store"
	"github.com/danielhkuo/quizhost/tracker"
)

func main() {
	// Load .env first: team credentials (TEAM_ID_*) and secrets live there
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the document store
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store setup failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("Document store ready", "type", cfg.StoreType)

	// Application state and components
	app := state.New(cfg.SignalTTL)
	trk := tracker.New(st, app)
	qm := quiz.New(st, trk, app, cfg.QuestionDir)

	// Create router
	mux := router.NewRouter(trk, qm, app, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "round", app.Round())
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

func openStore(cfg cliparse.Config) (store.Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreSQLite:
		return store.OpenSQL("sqlite", cfg.DatabaseURL)
	case cliparse.StorePostgres:
		return store.OpenSQL("postgres", cfg.DatabaseURL)
	default:
		return store.OpenFile(cfg.DataDir)
	}
}
