package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordStatistic(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewWordStatistic(now)

	assert.Equal(t, 0.0, s.MasteryPercent)
	assert.True(t, s.LastAnswerCorrect)
	assert.Equal(t, now, s.LastAnswerAt)
	assert.Equal(t, 0, s.TotalAnswers())
	assert.Equal(t, 0.0, s.SuccessRate())
}

func TestWordStatistic_Update(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		start       float64
		correct     bool
		delta       int
		wantPercent float64
	}{
		{name: "inside range", start: 40, correct: true, delta: 10, wantPercent: 50},
		{name: "exactly 100", start: 90, correct: true, delta: 10, wantPercent: 100},
		{name: "above 100 clamps", start: 95, correct: true, delta: 10, wantPercent: 100},
		{name: "wrong answer lowers", start: 50, correct: false, delta: -20, wantPercent: 30},
		{name: "exactly zero", start: 20, correct: false, delta: -20, wantPercent: 0},
		{name: "below zero clamps", start: 10, correct: false, delta: -20, wantPercent: 0},
		{name: "zero delta on zero stays zero", start: 0, correct: true, delta: 0, wantPercent: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := WordStatistic{MasteryPercent: tt.start, CorrectCount: 3, IncorrectCount: 2, LastAnswerCorrect: !tt.correct}
			s.Update(tt.correct, tt.delta, now)

			assert.Equal(t, tt.wantPercent, s.MasteryPercent)
			assert.Equal(t, tt.correct, s.LastAnswerCorrect)
			assert.Equal(t, now, s.LastAnswerAt)
			if tt.correct {
				assert.Equal(t, 4, s.CorrectCount)
				assert.Equal(t, 2, s.IncorrectCount)
			} else {
				assert.Equal(t, 3, s.CorrectCount)
				assert.Equal(t, 3, s.IncorrectCount)
			}
		})
	}
}

func TestWordStatistic_UpdateStaysInRange(t *testing.T) {
	t.Parallel()

	now := time.Now()
	for start := 0; start <= 100; start += 5 {
		for delta := -100; delta <= 100; delta += 7 {
			s := WordStatistic{MasteryPercent: float64(start)}
			s.Update(delta > 0, delta, now)

			require.GreaterOrEqual(t, s.MasteryPercent, 0.0, "start=%d delta=%d", start, delta)
			require.LessOrEqual(t, s.MasteryPercent, 100.0, "start=%d delta=%d", start, delta)
			require.Equal(t, 1, s.TotalAnswers(), "start=%d delta=%d", start, delta)
		}
	}
}

func TestWordStatistic_SuccessRate(t *testing.T) {
	t.Parallel()

	s := WordStatistic{CorrectCount: 2, IncorrectCount: 1}
	assert.Equal(t, 66.0, s.SuccessRate())

	s = WordStatistic{CorrectCount: 5, IncorrectCount: 5}
	assert.Equal(t, 50.0, s.SuccessRate())
}

func TestWordStatistic_MarkStudied(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("fresh statistic with delta 10", func(t *testing.T) {
		t.Parallel()

		s := NewWordStatistic(now.Add(-48 * time.Hour))
		iterations, err := s.MarkStudied(10, now)
		require.NoError(t, err)

		assert.Equal(t, 11, iterations)
		assert.Equal(t, 100.0, s.MasteryPercent)
		assert.Equal(t, 11, s.CorrectCount)
		assert.Equal(t, 0, s.IncorrectCount)
		assert.True(t, s.LastAnswerCorrect)
		assert.Equal(t, now, s.LastAnswerAt)
	})

	t.Run("fractional start", func(t *testing.T) {
		t.Parallel()

		s := WordStatistic{MasteryPercent: 37.5, IncorrectCount: 1}
		iterations, err := s.MarkStudied(30, now)
		require.NoError(t, err)

		// floor(37.5) = 37, (100-37)/30 = 2, +1
		assert.Equal(t, 3, iterations)
		assert.Equal(t, 100.0, s.MasteryPercent)
		assert.Equal(t, 3, s.CorrectCount)
		assert.Equal(t, 1, s.IncorrectCount)
	})

	t.Run("already studied still records one answer", func(t *testing.T) {
		t.Parallel()

		s := WordStatistic{MasteryPercent: 100}
		iterations, err := s.MarkStudied(10, now)
		require.NoError(t, err)
		assert.Equal(t, 1, iterations)
		assert.Equal(t, 100.0, s.MasteryPercent)
	})

	for _, delta := range []int{0, -10} {
		delta := delta
		t.Run("rejects non positive delta", func(t *testing.T) {
			t.Parallel()

			s := WordStatistic{MasteryPercent: 20}
			_, err := s.MarkStudied(delta, now)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNonPositiveDelta))
			assert.Equal(t, 20.0, s.MasteryPercent)
			assert.Equal(t, 0, s.TotalAnswers())
		})
	}
}
