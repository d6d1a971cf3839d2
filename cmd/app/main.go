package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/config"
	"github.com/BuzzLyutic/todo-api/internal/database"
	"github.com/BuzzLyutic/todo-api/internal/handler"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/server"
	"github.com/BuzzLyutic/todo-api/internal/service"
)

const Version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todoapp",
		Short: "REST backend for the todo list",
		Long: `todoapp serves the todo list REST API on /api, backed by MongoDB.
Every flag can also be set via environment variables in the form TODOAPP_<FLAG>
(e.g. TODOAPP_MONGODB_URI), or in a .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	config.RegisterFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of todoapp",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "todoapp v%s\n", Version)
		},
	})
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return cfg.Build()
}

func run(ctx context.Context, cfg config.Config) error {
	// Подключаем логгер
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Подключаем БД, без нее дальнейшая работа теряет смысл
	client, db, err := database.Connect(ctx, database.Options{
		URI:         cfg.MongoURI,
		Database:    cfg.Database,
		MaxAttempts: cfg.ConnectAttempts,
		RetryDelay:  cfg.ConnectRetryDelay,
		PingTimeout: cfg.ConnectPingTimeout,
	}, logger)
	if err != nil {
		if errors.Is(err, database.ErrConnectExhausted) {
			logger.Error("FATAL: failed to connect to database", zap.Error(err))
		}
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()

	todoService := service.NewTodoService(repo.NewTodoRepo(db), repo.NewCategoryRepo(db))
	router := server.NewRouter(server.Deps{
		Todos:  handler.NewTodoHandler(todoService, logger),
		DB:     client,
		Logger: logger,
	})

	return server.New(cfg.Port, router, logger).Run(ctx, cfg.ShutdownTimeout)
}
