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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/blogem/shift-cycles/cache"
	"github.com/blogem/shift-cycles/config"
	"github.com/blogem/shift-cycles/controllers"
	"github.com/blogem/shift-cycles/database"
	"github.com/blogem/shift-cycles/layout"
	"github.com/blogem/shift-cycles/logging"
	"github.com/blogem/shift-cycles/repositories"
	"github.com/blogem/shift-cycles/schedulefile"
	"github.com/blogem/shift-cycles/services"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCommand builds the cycles command tree; running it bare serves the API
func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "cycles",
		Short:        "Cyclic shift schedule service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "path to config.toml")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), configPath)
			},
		},
		newLayoutCommand(),
	)

	return root
}

func newLayoutCommand() *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute the layout of a YAML schedule definition",
		Long: `Compute the per-day visual blocks for a schedule defined in a YAML file.

The file carries its own patterns and is not stored in the database.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := schedulefile.ReadFile(file)
			if err != nil {
				return err
			}

			out := schedulefile.NewLayout(schedule, layout.ComputeCycleLayout(schedule))
			return out.Write(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "schedule definition (YAML)")
	cmd.Flags().StringVar(&format, "format", schedulefile.FormatJSON, "output format: json, yaml")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// setup loads configuration and the process logger
func setup(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading config: %w", err)
	}

	logger := logging.Setup(cfg.Server.Environment, cfg.Log.Level)
	return cfg, logger, nil
}

func runMigrate(ctx context.Context, configPath string) error {
	cfg, logger, err := setup(configPath)
	if err != nil {
		return err
	}

	db, err := database.InitializeDatabase(ctx, cfg.Storage.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return db.Close()
}

func runServe(ctx context.Context, configPath string) error {
	cfg, logger, err := setup(configPath)
	if err != nil {
		return err
	}

	// Initialize database
	db, err := database.InitializeDatabase(ctx, cfg.Storage.DBPath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	layoutCache, err := cache.New(cfg.LayoutCache(), logger)
	if err != nil {
		return fmt.Errorf("failed to initialize layout cache: %w", err)
	}
	defer layoutCache.Close()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, layoutCache, logger)
	ctrl := controllers.NewControllers(srvs, repos.Audit, logger)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           controllers.NewRouter(ctrl, repos.Audit, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Str("database", cfg.Storage.DBPath).
			Str("cache", cfg.Cache.Backend).
			Msg("shift cycles starting")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
