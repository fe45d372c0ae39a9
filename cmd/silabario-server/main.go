package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"slices"
	"strconv"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/silabario/internal/bootstrap"
	"github.com/at-ishikawa/silabario/internal/config"
	"github.com/at-ishikawa/silabario/internal/server"
	"github.com/at-ishikawa/silabario/internal/vocabulary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	repo, closeRepo, err := vocabulary.OpenRepository(cfg)
	if err != nil {
		return fmt.Errorf("vocabulary.OpenRepository() > %w", err)
	}

	app := bootstrap.New()
	app.OnShutdown("vocabulary", func(ctx context.Context) error {
		return closeRepo()
	})

	path, h := server.NewAnalysisServiceHandler(server.NewAnalysisHandler(repo))
	mux := http.NewServeMux()
	mux.Handle(path, h)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: corsMiddleware(cfg.Server.CORS.AllowedOrigins, h2c.NewHandler(mux, &http2.Server{})),
	}
	app.OnShutdown("http", srv.Shutdown)

	return app.Run(context.Background(), func(ctx context.Context) error {
		slog.Info("starting server", slog.String("addr", srv.Addr), slog.String("backend", cfg.Vocabulary.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("SILABARIO_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func corsMiddleware(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && slices.Contains(allowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
