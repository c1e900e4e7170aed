package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/cinetix/booking-engine/internal/app"
	"github.com/cinetix/booking-engine/internal/vcs"
)

var (
	version = vcs.Version()
)

func main() {
	// A missing .env is fine; flags below still carry defaults.
	_ = godotenv.Load()

	var cfg app.Config

	flag.StringVar(&cfg.Env, "env", envOr("CINEMA_ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.Currency, "currency", envOr("CINEMA_CURRENCY", "USD"), "Currency label for displayed prices")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	application := app.New(cfg, logger)

	if err := application.Run(os.Stdin, os.Stdout); err != nil {
		logger.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
