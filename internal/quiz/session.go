package quiz

import (
	"errors"
	"fmt"
	"sync"

	"github.com/example/wordslearning/pkg/models"
	"github.com/samber/lo"
)

// ErrNoCurrentWord is returned when an action needs an asked word
var ErrNoCurrentWord = errors.New("no question has been asked")

// Question is what the learner is shown
type Question struct {
	Word           models.Word
	Direction      models.Direction
	Text           string
	Remark         string
	MasteryPercent float64
}

// AnswerResult describes how an answer was judged
type AnswerResult struct {
	Correct bool
	// Counted is set when the answer changed the statistics
	Counted  bool
	Word     models.Word
	Expected []string
	// Next is the following question, asked after a correct answer unless repeat mode is on
	Next *Question
}

// Session is one learner's conversation with the quiz
type Session struct {
	mu      sync.Mutex
	service *Service

	direction           models.Direction
	shuffle             bool
	repeat              bool
	current             string
	hasCurrent          bool
	text                string
	firstAnswerReceived bool
}

// NewSession starts a session asking foreign to native by rating
func NewSession(service *Service) *Session {
	return &Session{
		service:   service,
		direction: models.ForeignToNative,
	}
}

// Direction returns the direction questions are asked in
func (s *Session) Direction() models.Direction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.direction
}

// Ask draws the next question
func (s *Session) Ask() (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ask()
}

// Current returns the question currently asked
func (s *Session) Current() (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.currentWord()
	if err != nil {
		return Question{}, err
	}
	return s.question(w), nil
}

// Answer judges the answer to the current question. Only the first answer
// to a question is counted, and nothing is counted in repeat mode.
func (s *Session) Answer(answer string) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCurrent {
		return AnswerResult{}, ErrNoCurrentWord
	}

	counted := !s.repeat && !s.firstAnswerReceived
	correct, w, err := s.service.AssertAnswer(s.current, answer, s.direction, counted)
	if err != nil {
		return AnswerResult{}, err
	}
	s.firstAnswerReceived = true

	result := AnswerResult{
		Correct:  correct,
		Counted:  counted,
		Word:     w,
		Expected: w.AcceptedAnswers(s.direction),
	}

	if correct && !s.repeat {
		next, err := s.ask()
		if err != nil && !errors.Is(err, ErrNoQuestion) {
			return result, err
		}
		if err == nil {
			result.Next = &next
		}
	}
	return result, nil
}

// ReverseDirection switches the translation direction and asks anew
func (s *Session) ReverseDirection() (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.direction = s.direction.Reverse()
	return s.ask()
}

// ToggleShuffle switches between rating and uniform draws
func (s *Session) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shuffle = !s.shuffle
	return s.shuffle
}

// ToggleRepeat switches repeat mode, in which answers are only checked
func (s *Session) ToggleRepeat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repeat = !s.repeat
	return s.repeat
}

// MarkStudied marks the current word as studied for the session direction
// and asks the next question
func (s *Session) MarkStudied() (models.Word, Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCurrent {
		return models.Word{}, Question{}, ErrNoCurrentWord
	}

	w, err := s.service.MarkStudied(s.current, s.direction)
	if err != nil {
		return models.Word{}, Question{}, err
	}

	q, err := s.ask()
	return w, q, err
}

// EditCurrent edits the current word and shows it again
func (s *Session) EditCurrent(edit models.WordEdit) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCurrent {
		return Question{}, ErrNoCurrentWord
	}

	w, err := s.service.EditWord(s.current, edit)
	if err != nil {
		return Question{}, err
	}
	s.current = w.Foreign
	return s.question(w), nil
}

// Forget drops the current question when it is about foreign
func (s *Session) Forget(foreign string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCurrent || s.current != foreign {
		return false
	}
	s.current, s.hasCurrent = "", false
	return true
}

func (s *Session) ask() (Question, error) {
	var (
		w   models.Word
		err error
	)
	if s.shuffle {
		w, err = s.service.NextByShuffle()
	} else {
		w, err = s.service.NextByRating(s.direction)
	}
	if err != nil {
		return Question{}, err
	}

	s.current = w.Foreign
	s.hasCurrent = true
	s.firstAnswerReceived = false
	s.text = ""
	return s.question(w), nil
}

func (s *Session) currentWord() (models.Word, error) {
	if !s.hasCurrent {
		return models.Word{}, ErrNoCurrentWord
	}
	w, ok := s.service.Find(s.current)
	if !ok {
		return models.Word{}, fmt.Errorf("%q: %w", s.current, ErrWordNotFound)
	}
	return w, nil
}

// question renders the word for the session direction. Native to foreign
// questions show one native form picked at random, kept until the next
// question or until an edit removes it.
func (s *Session) question(w models.Word) Question {
	text := w.Foreign
	if s.direction == models.NativeToForeign && len(w.Native) > 0 {
		if !lo.Contains(w.Native, s.text) {
			s.text = w.Native[s.service.Intn(len(w.Native))]
		}
		text = s.text
	}
	return Question{
		Word:           w,
		Direction:      s.direction,
		Text:           text,
		Remark:         w.Remark(s.direction),
		MasteryPercent: w.Statistic(s.direction).MasteryPercent,
	}
}
