// Package main issues bearer tokens for the Goal Tracker API.
//
// Usage:
//
//	go run ./cmd/token -subject owner -ttl 720h
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/goal-tracker/backend/config"
	"github.com/goal-tracker/backend/internal/integration/adapters"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	subject := flag.String("subject", "owner", "token subject")
	ttl := flag.Duration("ttl", cfg.Auth.TokenExpiry, "token lifetime")
	flag.Parse()

	if cfg.Auth.Secret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	tokens := adapters.NewTokenService(cfg.Auth.Secret, *ttl)
	token, expiresAt, err := tokens.GenerateToken(context.Background(), *subject)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
}
