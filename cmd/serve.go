package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/wordslearning/internal/bot"
	"github.com/example/wordslearning/internal/quiz"
	"github.com/example/wordslearning/internal/scheduler"
	"github.com/example/wordslearning/internal/spaced_repetition"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Telegram bot with periodic autosave",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		words, err := a.storage.ReadWords(ctx)
		if err != nil {
			return err
		}

		selector := spaced_repetition.NewSelector(nil)
		selector.TopSlice = a.cfg.Quiz.TopSlice
		quizService := quiz.NewService(quiz.Settings{
			RightAnswerDelta: a.cfg.Quiz.RightAnswerDelta,
			WrongAnswerDelta: a.cfg.Quiz.WrongAnswerDelta,
		}, selector, a.logger)
		quizService.SetWords(words)

		autosave := scheduler.New(quizService, a.storage, a.cfg.Autosave.Interval, a.logger)
		if err := autosave.Start(); err != nil {
			return err
		}

		allowed, err := a.cfg.Bot.AllowedUserIDs()
		if err != nil {
			return err
		}
		botConfig := bot.DefaultConfig()
		botConfig.AllowedUserIDs = allowed
		if a.cfg.Bot.Timeout > 0 {
			botConfig.UpdateTimeout = int(a.cfg.Bot.Timeout / time.Second)
		}
		botConfig.Debug = a.cfg.Env == "development"

		b, err := bot.New(a.cfg.Bot.Token, botConfig, quizService, a.storage, autosave, a.logger)
		if err != nil {
			return fmt.Errorf("create bot: %w", err)
		}

		a.logger.Info("bot started", zap.Int("words", len(words)))
		runErr := b.Start(ctx)

		// Give pending changes time to reach storage
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := autosave.Stop(shutdownCtx); err != nil {
			a.logger.Error("final save failed", zap.Error(err))
		}

		return runErr
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
