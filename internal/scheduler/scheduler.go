package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/wordslearning/pkg/models"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// saveTimeout bounds one autosave run
const saveTimeout = 30 * time.Second

// Snapshotter provides the vocabulary to persist
type Snapshotter interface {
	Snapshot() ([]models.Word, bool)
	MarkDirty()
}

// Saver persists the vocabulary
type Saver interface {
	SaveWords(ctx context.Context, words []models.Word) error
}

// Scheduler periodically saves the quiz vocabulary when it has changed
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    Snapshotter
	saver     Saver
	interval  time.Duration
	logger    *zap.Logger

	mu sync.Mutex
}

// New creates a new scheduler instance
func New(source Snapshotter, saver Saver, interval time.Duration, logger *zap.Logger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		source:    source,
		saver:     saver,
		interval:  interval,
		logger:    logger,
	}
}

// Start begins running the autosave job
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.autosave); err != nil {
		return fmt.Errorf("failed to schedule autosave: %w", err)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	s.logger.Info("autosave started", zap.Duration("interval", s.interval))
	return nil
}

// Stop terminates the job and saves pending changes
func (s *Scheduler) Stop(ctx context.Context) error {
	s.scheduler.Stop()
	return s.Flush(ctx)
}

// Flush saves the vocabulary if it changed since the last save.
// On failure the change flag is restored so the next run retries.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	words, dirty := s.source.Snapshot()
	if !dirty {
		return nil
	}

	if err := s.saver.SaveWords(ctx, words); err != nil {
		s.source.MarkDirty()
		return fmt.Errorf("failed to autosave words: %w", err)
	}

	s.logger.Debug("words autosaved", zap.Int("count", len(words)))
	return nil
}

func (s *Scheduler) autosave() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.Flush(ctx); err != nil {
		s.logger.Error("autosave failed", zap.Error(err))
	}
}
