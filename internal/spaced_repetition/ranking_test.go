package spaced_repetition

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/example/wordslearning/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

func TestRating_FreshWord(t *testing.T) {
	t.Parallel()

	stat := models.NewWordStatistic(testNow)
	want := 101 * 1.01 * 1 * 1 * (math.Log10(5) + 1)

	assert.InDelta(t, want, Rating(stat, testNow), 1e-9)
}

func TestRating_Scenario(t *testing.T) {
	t.Parallel()

	struggling := models.WordStatistic{
		MasteryPercent:    50,
		CorrectCount:      5,
		IncorrectCount:    5,
		LastAnswerCorrect: false,
		LastAnswerAt:      testNow.AddDate(0, 0, -3),
	}
	known := struggling
	known.MasteryPercent = 90
	known.LastAnswerCorrect = true
	known.LastAnswerAt = testNow

	strugglingRating := Rating(struggling, testNow)
	knownRating := Rating(known, testNow)

	want := 51 * 0.51 * math.Exp(-0.7) * 1.5 * (math.Log10(8) + 1)
	assert.InDelta(t, want, strugglingRating, 1e-9)
	assert.Greater(t, strugglingRating, knownRating)
}

func TestRating_NeverBelowFloor(t *testing.T) {
	t.Parallel()

	for mastery := 0.0; mastery <= 100; mastery += 10 {
		for correct := 0; correct <= 200; correct += 25 {
			for incorrect := 0; incorrect <= 50; incorrect += 10 {
				for _, last := range []bool{true, false} {
					stat := models.WordStatistic{
						MasteryPercent:    mastery,
						CorrectCount:      correct,
						IncorrectCount:    incorrect,
						LastAnswerCorrect: last,
						LastAnswerAt:      testNow,
					}
					require.GreaterOrEqual(t, Rating(stat, testNow), MinRating)
				}
			}
		}
	}

	mastered := models.WordStatistic{MasteryPercent: 100, CorrectCount: 500, LastAnswerCorrect: true, LastAnswerAt: testNow}
	assert.Equal(t, MinRating, Rating(mastered, testNow))
}

func TestRating_Monotonicity(t *testing.T) {
	t.Parallel()

	base := models.WordStatistic{
		MasteryPercent:    60,
		CorrectCount:      3,
		IncorrectCount:    3,
		LastAnswerCorrect: true,
		LastAnswerAt:      testNow.AddDate(0, 0, -2),
	}

	t.Run("lower mastery never lowers rating", func(t *testing.T) {
		t.Parallel()

		prev := Rating(base, testNow)
		for m := 55.0; m >= 0; m -= 5 {
			stat := base
			stat.MasteryPercent = m
			r := Rating(stat, testNow)
			require.GreaterOrEqual(t, r, prev)
			prev = r
		}
	})

	t.Run("more days never lower rating", func(t *testing.T) {
		t.Parallel()

		prev := 0.0
		for days := 0; days <= 400; days += 7 {
			stat := base
			stat.LastAnswerAt = testNow.AddDate(0, 0, -days)
			r := Rating(stat, testNow)
			require.GreaterOrEqual(t, r, prev)
			prev = r
		}
	})

	t.Run("more answers at the same success rate never raise rating", func(t *testing.T) {
		t.Parallel()

		prev := math.Inf(1)
		for pairs := 0; pairs <= 40; pairs++ {
			stat := base
			stat.CorrectCount = pairs
			stat.IncorrectCount = pairs
			r := Rating(stat, testNow)
			if pairs > 0 {
				require.LessOrEqual(t, r, prev)
			}
			prev = r
		}
	})
}

func TestRating_SurvivesJSONRoundTrip(t *testing.T) {
	t.Parallel()

	word := models.NewWord("house", []string{"дом"}, "haʊs", testNow.AddDate(0, 0, -10))
	word.ForeignToNative.Update(false, -20, testNow.AddDate(0, 0, -4))
	word.NativeToForeign.Update(true, 10, testNow.AddDate(0, 0, -1))

	data, err := json.Marshal(word)
	require.NoError(t, err)

	var reloaded models.Word
	require.NoError(t, json.Unmarshal(data, &reloaded))

	for _, dir := range []models.Direction{models.ForeignToNative, models.NativeToForeign} {
		assert.Equal(t, Rating(*word.Statistic(dir), testNow), Rating(*reloaded.Statistic(dir), testNow))
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	msk := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2024, 5, 15, 0, 1, 0, 0, time.UTC),
			to:   time.Date(2024, 5, 15, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "midnight crossing counts as a day",
			from: time.Date(2024, 5, 14, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2024, 5, 15, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "three days",
			from: time.Date(2024, 5, 12, 18, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "calendar of the target location",
			from: time.Date(2024, 5, 14, 22, 0, 0, 0, time.UTC), // 01:00 on the 15th in MSK
			to:   time.Date(2024, 5, 15, 10, 0, 0, 0, msk),
			want: 0,
		},
		{
			name: "future clamps to zero",
			from: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
			to:   time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC),
			want: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}
