package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"WordWatch/internal/config"
	"WordWatch/internal/detect"
	"WordWatch/internal/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Environment overrides take precedence over the config file.
	cfg.Addr = getEnv("WORDWATCH_ADDR", cfg.Addr)
	cfg.DictionaryDir = getEnv("WORDWATCH_DICT_DIR", cfg.DictionaryDir)
	cfg.LogLevel = getEnv("WORDWATCH_LOG_LEVEL", cfg.LogLevel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	logger.Info("starting WordWatch",
		"version", Version,
		"addr", cfg.Addr,
		"dictionary_dir", cfg.DictionaryDir,
		"config", *configPath,
	)

	// The automaton is built exactly once, before the listener starts;
	// every request shares the same immutable detector.
	det, err := detect.FromDirectory(cfg.DictionaryDir, detect.Options{
		CaseFold:        cfg.CaseFold,
		StripDiacritics: cfg.StripDiacritics,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dictionary: %v\n", err)
		os.Exit(1)
	}

	router := httprouter.New()
	handler := server.NewHandler(det, cfg.DefaultMaxSkip, logger)
	handler.RegisterRoutes(router)

	// Health check endpoint.
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"version": Version,
			"words":   det.Stats().Words,
		})
	})

	// Readiness probe.
	router.GET("/ready", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "ready",
		})
	})

	// Root info endpoint.
	router.GET("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"name":    "WordWatch",
			"version": Version,
		})
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout),
		WriteTimeout: time.Duration(cfg.WriteTimeout),
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
