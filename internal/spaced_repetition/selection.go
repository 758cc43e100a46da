package spaced_repetition

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/example/wordslearning/pkg/models"
)

// DefaultTopSlice is how many of the highest rated words take part in a draw
const DefaultTopSlice = 11

// RankedWord is a word together with its rating for one direction
type RankedWord struct {
	Word   *models.Word
	Rating float64
}

// Selector picks the next word to ask
type Selector struct {
	// Number of best rated words the next question is drawn from
	TopSlice int
	// Clock used for the staleness factor
	Clock func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSelector creates a selector with the default top slice
func NewSelector(rnd *rand.Rand) *Selector {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{
		TopSlice: DefaultTopSlice,
		Clock:    time.Now,
		rnd:      rnd,
	}
}

// Rank returns the words sorted by rating for the direction, best first.
// Equal ratings keep the input order.
func (s *Selector) Rank(words []*models.Word, direction models.Direction) []RankedWord {
	now := s.Clock()
	ranked := make([]RankedWord, 0, len(words))
	for _, w := range words {
		ranked = append(ranked, RankedWord{
			Word:   w,
			Rating: Rating(*w.Statistic(direction), now),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	return ranked
}

// ByRating draws uniformly from the top slice of the ranked words.
// It returns false when there is nothing to ask.
func (s *Selector) ByRating(words []*models.Word, direction models.Direction) (*models.Word, bool) {
	if len(words) == 0 {
		return nil, false
	}

	ranked := s.Rank(words, direction)

	top := s.TopSlice
	if top <= 0 {
		top = DefaultTopSlice
	}
	upper := len(ranked) - 1
	if upper > top-1 {
		upper = top - 1
	}

	return ranked[s.intn(upper+1)].Word, true
}

// ByShuffle ignores ratings and draws uniformly from all words
func (s *Selector) ByShuffle(words []*models.Word) (*models.Word, bool) {
	if len(words) == 0 {
		return nil, false
	}
	return words[s.intn(len(words))], true
}

// Intn exposes the selector's random source for callers picking among forms
func (s *Selector) Intn(n int) int {
	return s.intn(n)
}

func (s *Selector) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
