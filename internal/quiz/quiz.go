package quiz

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/example/wordslearning/internal/spaced_repetition"
	"github.com/example/wordslearning/pkg/models"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrNoQuestion is returned when there are no active words to ask
	ErrNoQuestion = errors.New("no words to ask")
	// ErrWordNotFound is returned when a word is not in the collection
	ErrWordNotFound = errors.New("word not found")
	// ErrWordExists is returned when an edit would duplicate a foreign text
	ErrWordExists = errors.New("word already exists")
)

// Settings holds the mastery deltas applied to answers
type Settings struct {
	RightAnswerDelta int
	WrongAnswerDelta int
}

// Service holds the vocabulary being learned and applies answers to it.
// It is safe for concurrent use.
type Service struct {
	mu       sync.Mutex
	words    []*models.Word
	active   map[string]struct{} // nil means every word is active
	dirty    bool
	settings Settings
	selector *spaced_repetition.Selector
	logger   *zap.Logger
}

// NewService creates a quiz service
func NewService(settings Settings, selector *spaced_repetition.Selector, logger *zap.Logger) *Service {
	return &Service{
		settings: settings,
		selector: selector,
		logger:   logger,
	}
}

// SetWords replaces the vocabulary and activates every word
func (s *Service) SetWords(words []models.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make([]*models.Word, 0, len(words))
	for i := range words {
		w := words[i]
		s.words = append(s.words, &w)
	}
	s.active = nil
	s.dirty = false
}

// Words returns a copy of the whole vocabulary
func (s *Service) Words() []models.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyWords()
}

// Snapshot returns a copy of the vocabulary and whether it changed since
// the previous snapshot. The change flag is cleared.
func (s *Service) Snapshot() ([]models.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty := s.dirty
	s.dirty = false
	return s.copyWords(), dirty
}

// MarkDirty flags the vocabulary as changed, e.g. after a failed save
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = true
}

// UseWords restricts questions to the given foreign texts.
// It returns how many of them are in the vocabulary.
func (s *Service) UseWords(foreigns []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := lo.SliceToMap(foreigns, func(f string) (string, struct{}) { return f, struct{}{} })
	s.active = make(map[string]struct{}, len(wanted))
	for _, w := range s.words {
		if _, ok := wanted[w.Foreign]; ok {
			s.active[w.Foreign] = struct{}{}
		}
	}
	return len(s.active)
}

// UseAll makes every word available for questions again
func (s *Service) UseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Find returns a copy of the word with the foreign text
func (s *Service) Find(foreign string) (models.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(foreign)
	if w == nil {
		return models.Word{}, false
	}
	return *w, true
}

// NextByRating draws the next question from the highest rated active words
func (s *Service) NextByRating(direction models.Direction) (models.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := s.activeWords()
	if ce := s.logger.Check(zapcore.DebugLevel, "ranked words"); ce != nil {
		ranked := s.selector.Rank(words, direction)
		table := make([]string, 0, len(ranked))
		for _, r := range ranked {
			table = append(table, fmt.Sprintf("%s\tFtoN: %.0f\tNtoF: %.0f\trating: %.3f",
				r.Word.Foreign, r.Word.ForeignToNative.MasteryPercent, r.Word.NativeToForeign.MasteryPercent, r.Rating))
		}
		ce.Write(
			zap.Stringer("direction", direction),
			zap.Int("total", len(ranked)),
			zap.Strings("words", table),
		)
	}

	w, ok := s.selector.ByRating(words, direction)
	if !ok {
		return models.Word{}, ErrNoQuestion
	}
	return *w, nil
}

// NextByShuffle draws the next question uniformly from the active words
func (s *Service) NextByShuffle() (models.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.selector.ByShuffle(s.activeWords())
	if !ok {
		return models.Word{}, ErrNoQuestion
	}
	return *w, nil
}

// AssertAnswer checks answer against the accepted forms of the word for the
// direction. With putInStatistics the direction statistic is updated by the
// right or wrong delta.
func (s *Service) AssertAnswer(foreign, answer string, direction models.Direction, putInStatistics bool) (bool, models.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(foreign)
	if w == nil {
		return false, models.Word{}, fmt.Errorf("%q: %w", foreign, ErrWordNotFound)
	}

	correct := IsAccepted(w.AcceptedAnswers(direction), answer)
	if putInStatistics {
		delta := s.settings.RightAnswerDelta
		if !correct {
			delta = -s.settings.WrongAnswerDelta
		}
		w.Statistic(direction).Update(correct, delta, s.Now())
		s.dirty = true

		s.logger.Debug("answer counted",
			zap.String("word", w.Foreign),
			zap.Stringer("direction", direction),
			zap.Bool("correct", correct),
			zap.Float64("mastery", w.Statistic(direction).MasteryPercent),
		)
	}
	return correct, *w, nil
}

// IsAccepted reports whether answer matches one of the accepted forms,
// ignoring surrounding spaces and letter case
func IsAccepted(accepted []string, answer string) bool {
	answer = strings.TrimSpace(answer)
	return lo.ContainsBy(accepted, func(form string) bool {
		return strings.EqualFold(strings.TrimSpace(form), answer)
	})
}

// MarkStudied moves the direction mastery of the word to 100
func (s *Service) MarkStudied(foreign string, direction models.Direction) (models.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(foreign)
	if w == nil {
		return models.Word{}, fmt.Errorf("%q: %w", foreign, ErrWordNotFound)
	}

	n, err := w.Statistic(direction).MarkStudied(s.settings.RightAnswerDelta, s.Now())
	if err != nil {
		return models.Word{}, err
	}
	s.dirty = true

	s.logger.Info("word marked as studied",
		zap.String("word", w.Foreign),
		zap.Stringer("direction", direction),
		zap.Int("answers", n),
	)
	return *w, nil
}

// EditWord applies the edit to the word, keeping its statistics
func (s *Service) EditWord(foreign string, edit models.WordEdit) (models.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.find(foreign)
	if w == nil {
		return models.Word{}, fmt.Errorf("%q: %w", foreign, ErrWordNotFound)
	}
	if edit.Foreign != foreign && s.find(edit.Foreign) != nil {
		return models.Word{}, fmt.Errorf("%q: %w", edit.Foreign, ErrWordExists)
	}

	w.Apply(edit)
	if _, ok := s.active[foreign]; ok {
		delete(s.active, foreign)
		s.active[edit.Foreign] = struct{}{}
	}
	s.dirty = true
	return *w, nil
}

// AddWord adds a new word with fresh statistics
func (s *Service) AddWord(w models.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(w.Foreign) != nil {
		return fmt.Errorf("%q: %w", w.Foreign, ErrWordExists)
	}
	s.words = append(s.words, &w)
	if s.active != nil {
		s.active[w.Foreign] = struct{}{}
	}
	s.dirty = true
	return nil
}

// RemoveWord deletes the word from the vocabulary
func (s *Service) RemoveWord(foreign string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, idx, found := lo.FindIndexOf(s.words, func(w *models.Word) bool { return w.Foreign == foreign })
	if !found {
		return fmt.Errorf("%q: %w", foreign, ErrWordNotFound)
	}
	s.words = append(s.words[:idx], s.words[idx+1:]...)
	delete(s.active, foreign)
	s.dirty = true
	return nil
}

// Now returns the service clock time
func (s *Service) Now() time.Time {
	return s.selector.Clock()
}

// Intn draws a random index below n
func (s *Service) Intn(n int) int {
	return s.selector.Intn(n)
}

func (s *Service) find(foreign string) *models.Word {
	w, ok := lo.Find(s.words, func(w *models.Word) bool { return w.Foreign == foreign })
	if !ok {
		return nil
	}
	return w
}

func (s *Service) activeWords() []*models.Word {
	if s.active == nil {
		return s.words
	}
	return lo.Filter(s.words, func(w *models.Word, _ int) bool {
		_, ok := s.active[w.Foreign]
		return ok
	})
}

func (s *Service) copyWords() []models.Word {
	words := make([]models.Word, 0, len(s.words))
	for _, w := range s.words {
		words = append(words, *w)
	}
	return words
}
