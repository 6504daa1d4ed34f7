package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"davisbacon/internal/analysis"
	"davisbacon/internal/api"
	"davisbacon/internal/api/middleware"
	"davisbacon/internal/cache"
	"davisbacon/internal/config"
	"davisbacon/internal/costmodel"
	"davisbacon/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the housing-cost engine over HTTP",
	Long: `Starts the HTTP API. Settings come from the embedded defaults, the
optional --config file, then API_PORT / API_ENV / STATIC_DIR.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(configPath, verbose)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config (optional; embedded defaults otherwise)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Server.Env, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	base, err := cfg.BaseParams()
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	results := cache.New(costmodel.New(), cfg.Server.CacheTTL)
	defer results.Close()

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		defer limiter.Stop()
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	router := api.NewRouter(api.Deps{
		Config:    cfg,
		Analyzer:  analysis.New(results, catalog),
		Base:      base,
		Logger:    log,
		Limiter:   limiter,
		StaticDir: staticDir,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting API server",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.Server.Env),
			zap.Int("scenarios", catalog.Len()),
			zap.Duration("cache_ttl", cfg.Server.CacheTTL),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	}

	log.Info("server exited", zap.Int("cached_results", results.Len()))
	return nil
}
