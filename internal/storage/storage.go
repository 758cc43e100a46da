package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/example/wordslearning/internal/database"
	"github.com/example/wordslearning/pkg/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock

var (
	// ErrListsNotSupported is returned when the backend cannot keep word lists
	ErrListsNotSupported = errors.New("words lists are not supported by the storage backend")
	// ErrWordNotFound is returned when an edited or removed word is not stored
	ErrWordNotFound = errors.New("word not found")
)

// WordStorage persists the whole vocabulary
type WordStorage interface {
	SaveWords(ctx context.Context, words []models.Word) error
	ReadWords(ctx context.Context) ([]models.Word, error)
}

// WordEditor edits a single stored word in place
type WordEditor interface {
	UpdateWord(ctx context.Context, foreign string, edit models.WordEdit) error
}

// ListStorage keeps named word lists
type ListStorage interface {
	LoadWordsLists(ctx context.Context) ([]models.WordsList, error)
	CreateWordsList(ctx context.Context, list models.WordsList) error
	DeleteWordsList(ctx context.Context, name string) error
	UpdateWordsList(ctx context.Context, origName string, list models.WordsList) error
}

// Service reads and writes the vocabulary through one backend and merges
// the bootstrap words into every read
type Service struct {
	backend  WordStorage
	defaults []models.Word
	clock    func() time.Time
	logger   *zap.Logger
}

// NewService creates a storage service
func NewService(backend WordStorage, defaults []models.Word, logger *zap.Logger) *Service {
	return &Service{
		backend:  backend,
		defaults: defaults,
		clock:    time.Now,
		logger:   logger,
	}
}

// ReadWords returns the stored words united with the bootstrap words,
// sorted by foreign text. Stored entries win over bootstrap ones.
func (s *Service) ReadWords(ctx context.Context) ([]models.Word, error) {
	stored, err := s.backend.ReadWords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}

	words := mergeDefaults(stored, s.defaults, s.clock())
	s.logger.Debug("words loaded",
		zap.Int("stored", len(stored)),
		zap.Int("total", len(words)),
	)
	return words, nil
}

func mergeDefaults(stored, defaults []models.Word, now time.Time) []models.Word {
	known := lo.KeyBy(stored, func(w models.Word) string { return w.Foreign })

	words := make([]models.Word, 0, len(stored)+len(defaults))
	words = append(words, stored...)
	for _, d := range defaults {
		if _, ok := known[d.Foreign]; ok {
			continue
		}
		d.ForeignToNative = models.NewWordStatistic(now)
		d.NativeToForeign = models.NewWordStatistic(now)
		known[d.Foreign] = d
		words = append(words, d)
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Foreign < words[j].Foreign
	})
	return words
}

// SaveWords replaces the stored vocabulary
func (s *Service) SaveWords(ctx context.Context, words []models.Word) error {
	if err := s.backend.SaveWords(ctx, words); err != nil {
		return fmt.Errorf("failed to save words: %w", err)
	}
	s.logger.Debug("words saved", zap.Int("count", len(words)))
	return nil
}

// UpdateWord edits one word. Backends that cannot edit in place, or that
// do not hold the word yet, get a read-modify-save.
func (s *Service) UpdateWord(ctx context.Context, foreign string, edit models.WordEdit) error {
	if editor, ok := s.backend.(WordEditor); ok {
		err := editor.UpdateWord(ctx, foreign, edit)
		if err == nil {
			return nil
		}
		if !errors.Is(err, database.ErrNotFound) {
			return fmt.Errorf("failed to update word: %w", err)
		}
	}

	words, err := s.ReadWords(ctx)
	if err != nil {
		return err
	}
	_, idx, found := lo.FindIndexOf(words, func(w models.Word) bool { return w.Foreign == foreign })
	if !found {
		return fmt.Errorf("%q: %w", foreign, ErrWordNotFound)
	}
	words[idx].Apply(edit)
	return s.SaveWords(ctx, words)
}

// DeleteWord removes one word from the stored vocabulary.
// A bootstrap word comes back with fresh statistics on the next read.
func (s *Service) DeleteWord(ctx context.Context, foreign string) error {
	words, err := s.ReadWords(ctx)
	if err != nil {
		return err
	}
	rest := lo.Reject(words, func(w models.Word, _ int) bool { return w.Foreign == foreign })
	if len(rest) == len(words) {
		return fmt.Errorf("%q: %w", foreign, ErrWordNotFound)
	}
	return s.SaveWords(ctx, rest)
}

// Lists returns the list capability of the backend
func (s *Service) Lists() (ListStorage, error) {
	lists, ok := s.backend.(ListStorage)
	if !ok {
		return nil, ErrListsNotSupported
	}
	return lists, nil
}
