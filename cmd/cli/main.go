package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/adapter/idgen"
	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/adapter/repository/fskv"
	redisRepo "github.com/sri-sai-lakshmi/personal-expense-tracker/internal/adapter/repository/redis"
	sqliteRepo "github.com/sri-sai-lakshmi/personal-expense-tracker/internal/adapter/repository/sqlite"
	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/infrastructure/config"
	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/infrastructure/logger"
	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/infrastructure/notify"
	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/infrastructure/redis"
	"github.com/sri-sai-lakshmi/personal-expense-tracker/internal/usecase"
)

const defaultDataDirName = ".expense-tracker"

var (
	appLogger zerolog.Logger
	tracker   *usecase.ExpenseUseCase
	closers   []func() error
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "expense-tracker",
		Short: "Personal expense tracker",
		Long:  `Track personal expenses on-device: log expenditures, tag them with a category, and view spending summaries.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return teardown()
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newUpdateCmd(),
		newDeleteCmd(),
		newCategoriesCmd(),
		newStatsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setup(ctx context.Context) error {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	appLogger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	hub := notify.NewHub()
	hub.Subscribe(func() {
		appLogger.Debug().Msg("data changed")
	})

	tracker = usecase.NewExpenseUseCase(store, idgen.NewULIDGenerator(), hub, appLogger)
	return nil
}

func teardown() error {
	for _, closeFn := range closers {
		if err := closeFn(); err != nil {
			appLogger.Error().Err(err).Msg("closing storage backend")
		}
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (usecase.KVStore, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		dir := cfg.DataDir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve home directory: %w", err)
			}
			dir = filepath.Join(home, defaultDataDirName)
		}
		return fskv.NewStore(dir)

	case config.BackendSQLite:
		path := cfg.SQLitePath
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve home directory: %w", err)
			}
			path = filepath.Join(home, defaultDataDirName, "expenses.db")
		}
		store, err := sqliteRepo.NewStore(path)
		if err != nil {
			return nil, err
		}
		closers = append(closers, store.Close)
		return store, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		closers = append(closers, client.Close)
		return redisRepo.NewStore(client), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
