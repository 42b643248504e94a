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

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/roboshow/internal/api"
	"github.com/rohits-web03/roboshow/internal/api/handlers"
	"github.com/rohits-web03/roboshow/internal/api/services"
	"github.com/rohits-web03/roboshow/internal/config"
	"github.com/rohits-web03/roboshow/internal/repositories"
)

// @title RoboShow API
// @version 1.0
// @description Student robotics showcase: projects, ratings and accounts.
// @host localhost:8080
// @BasePath /

const shutdownTimeout = 10 * time.Second

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "roboshow",
	Short: "RoboShow - a showcase for student robotics projects",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), serve)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample projects into an empty store",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
			seeded, err := a.projects.SeedIfEmpty(ctx)
			if err != nil {
				return err
			}
			if seeded {
				a.log.Info("sample projects loaded")
			} else {
				a.log.Info("store already has projects, nothing to do")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.AddCommand(serveCmd, seedCmd)
}

type app struct {
	cfg      *config.Config
	log      *zap.Logger
	projects *repositories.ProjectRepository
	accounts *repositories.AccountRepository
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if !cfg.IsProduction() {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zcfg.Level = level
	return zcfg.Build()
}

// withApp loads config, opens the store and runs fn with the repositories.
func withApp(ctx context.Context, fn func(context.Context, *app) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if !cfg.EnvFileLoaded {
		logger.Info("no env file found, using environment variables", zap.String("file", cfg.EnvFile))
	}

	store, closer, err := repositories.OpenStore(ctx, cfg.Storage)
	if err != nil {
		logger.Error("failed to open store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()
	logger.Info("store opened", zap.String("driver", cfg.Storage.Driver))

	return fn(ctx, &app{
		cfg:      cfg,
		log:      logger,
		projects: repositories.NewProjectRepository(store),
		accounts: repositories.NewAccountRepository(store),
	})
}

func serve(ctx context.Context, a *app) error {
	h := &handlers.Handler{
		Config:   a.cfg,
		Log:      a.log,
		Projects: a.projects,
		Accounts: a.accounts,
		OAuth:    services.NewGoogleOAuth(a.cfg.Google),
	}
	if r2 := a.cfg.R2; r2.Enabled() {
		h.Images = repositories.NewR2Store(r2.AccessKeyID, r2.SecretAccessKey, r2.AccountID, r2.BucketName, r2.Region, r2.PublicBaseURL)
	} else {
		a.log.Info("R2 not configured, image uploads disabled")
	}
	if h.OAuth == nil {
		a.log.Info("Google credentials not configured, Google sign-in disabled")
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.cfg.Port),
		Handler: api.SetupRouter(h),
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("starting RoboShow server", zap.String("port", a.cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not listen on port %s: %w", a.cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
