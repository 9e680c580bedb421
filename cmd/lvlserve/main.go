// Command lvlserve serves level generation over a websocket at /ws.
//
// Environment:
//
//	PORT          listen port (8080)
//	STORE         json, postgres, gdata or none (json)
//	STORE_FILE    JSON store path (levels.json)
//	DATABASE_URL  PostgreSQL connection string
//	GDATA_APP     gdata application name (lvlgen)
//	LOG_LEVEL     debug for verbose logs
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/katalvlaran/lvlgen/server"
	"github.com/katalvlaran/lvlgen/store"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []server.Option{server.WithLogger(logger)}

	kind := envOr("STORE", store.KindJSON)
	if kind != "none" {
		dsn := os.Getenv("DATABASE_URL")
		if kind == store.KindPostgres && dsn == "" {
			dsn = "host=localhost user=lvlgen password=lvlgen dbname=lvlgen sslmode=disable"
		}
		st, err := store.Open(context.Background(), store.Config{
			Kind: kind,
			File: envOr("STORE_FILE", "levels.json"),
			DSN:  dsn,
			App:  envOr("GDATA_APP", "lvlgen"),
		})
		if err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		defer st.Close()
		opts = append(opts, server.WithStore(st))
		logger.Info("store ready", "kind", kind)
	}

	srv := server.New(opts...)
	port := envOr("PORT", "8080")
	logger.Info("server starting", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, srv.Handler()))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
