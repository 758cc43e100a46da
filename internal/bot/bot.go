package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/example/wordslearning/internal/quiz"
	"github.com/example/wordslearning/internal/storage"
	"github.com/example/wordslearning/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bot.go -destination=mock/store_mock.go -package=mock_bot

// BotSender is the part of the Telegram API the handlers use
type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Store persists edits and word lists
type Store interface {
	UpdateWord(ctx context.Context, foreign string, edit models.WordEdit) error
	Lists() (storage.ListStorage, error)
}

// Flusher writes pending vocabulary changes to storage
type Flusher interface {
	Flush(ctx context.Context) error
}

// Bot represents the Telegram bot application
type Bot struct {
	api     *tgbotapi.BotAPI
	sender  BotSender
	quiz    *quiz.Service
	store   Store
	flusher Flusher
	config  *Config
	logger  *zap.Logger

	adminUserIDs map[int64]bool

	mu       sync.Mutex
	sessions map[int64]*quiz.Session
}

// New creates a new bot instance connected to the Telegram API
func New(token string, config *Config, quizService *quiz.Service, store Store, flusher Flusher, logger *zap.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %w", err)
	}
	api.Debug = config.Debug
	logger.Info("authorized on account", zap.String("username", api.Self.UserName))

	b := newBot(api, config, quizService, store, flusher, logger)
	b.api = api
	return b, nil
}

func newBot(sender BotSender, config *Config, quizService *quiz.Service, store Store, flusher Flusher, logger *zap.Logger) *Bot {
	admins := make(map[int64]bool, len(config.AllowedUserIDs))
	for _, id := range config.AllowedUserIDs {
		admins[id] = true
	}

	return &Bot{
		sender:       sender,
		quiz:         quizService,
		store:        store,
		flusher:      flusher,
		config:       config,
		logger:       logger,
		adminUserIDs: admins,
		sessions:     make(map[int64]*quiz.Session),
	}
}

// Start receives updates until ctx is cancelled
func (b *Bot) Start(ctx context.Context) error {
	if b.api == nil {
		return fmt.Errorf("bot is not connected to Telegram")
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.config.UpdateTimeout
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate handles one incoming update from Telegram
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		if update.Message.From == nil || update.Message.Chat == nil {
			return
		}
		if !b.isAllowed(update.Message.From.ID) {
			b.reply(update.Message.Chat.ID, "⛔ Доступ запрещён")
			return
		}
		var err error
		if update.Message.IsCommand() {
			err = b.HandleCommand(ctx, update.Message)
		} else {
			err = b.handleAnswer(update.Message.Chat.ID, update.Message.Text)
		}
		if err != nil {
			b.logger.Error("failed to handle message",
				zap.Int64("chat_id", update.Message.Chat.ID),
				zap.Error(err),
			)
		}
	case update.CallbackQuery != nil:
		if err := b.HandleCallback(ctx, update.CallbackQuery); err != nil {
			b.logger.Error("failed to handle callback", zap.Error(err))
		}
	}
}

// isAllowed checks the user against the allow list
func (b *Bot) isAllowed(userID int64) bool {
	return len(b.adminUserIDs) == 0 || b.adminUserIDs[userID]
}

func (b *Bot) session(chatID int64) *quiz.Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.sessions[chatID]
	if !ok {
		s = quiz.NewSession(b.quiz)
		b.sessions[chatID] = s
	}
	return s
}

func (b *Bot) sessionsSnapshot() []*quiz.Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	sessions := make([]*quiz.Session, 0, len(b.sessions))
	for _, s := range b.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Warn("failed to send message", zap.Error(err))
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}
