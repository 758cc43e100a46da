package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/example/wordslearning/internal/config"
	"github.com/example/wordslearning/internal/database"
	"github.com/example/wordslearning/internal/defaults"
	"github.com/example/wordslearning/internal/logger"
	"github.com/example/wordslearning/internal/storage"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "wordslearning",
	Short:        "Vocabulary trainer that asks the words you know worst more often",
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the dependencies shared by the commands
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *sqlx.DB
	storage *storage.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Env)

	db, err := database.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	words, err := defaults.Words(cfg.Storage.DefaultsFile, time.Now())
	if err != nil {
		db.Close()
		return nil, err
	}

	var backend storage.WordStorage = database.NewWordRepository(db)
	if cfg.Storage.Backend == config.BackendKeyValue {
		backend = storage.NewKeyValueStore(database.NewKeyValueRepository(db))
	}
	log.Info("storage ready",
		zap.String("db", cfg.DB.Type),
		zap.String("backend", cfg.Storage.Backend),
		zap.Int("default_words", len(words)),
	)

	return &app{
		cfg:     cfg,
		logger:  log,
		db:      db,
		storage: storage.NewService(backend, words, log),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}
