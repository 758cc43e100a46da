package spaced_repetition

import (
	"math"
	"time"

	"github.com/example/wordslearning/pkg/models"
)

const (
	// MinRating keeps every word drawable
	MinRating = 0.1

	repetitionDecay      = 0.07
	wrongAnswerBoost     = 1.5
	staleDaysOffset      = 5
	maxMasteryBaseOffset = 101
	wrongAnswersCeiling  = 1.01
)

// Rating computes the draw priority of a word direction. Poorly known,
// often failed, rarely drilled and long neglected words score higher.
func Rating(stat models.WordStatistic, now time.Time) float64 {
	// 1..101, lower mastery gives a higher base
	rating := maxMasteryBaseOffset - stat.MasteryPercent

	// more wrong answers in history give a higher rating
	rating *= wrongAnswersCeiling - math.Min(math.Max(stat.SuccessRate()/100, 0), 1)

	// heavily drilled words fade out
	rating *= math.Exp(-float64(stat.TotalAnswers()) * repetitionDecay)

	if !stat.LastAnswerCorrect {
		rating *= wrongAnswerBoost
	}

	days := DaysBetween(stat.LastAnswerAt, now)
	rating *= math.Log10(float64(days+staleDaysOffset)) + 1

	return math.Max(rating, MinRating)
}

// DaysBetween counts calendar days from one instant to another in the
// location of to. 23:59 and 00:01 of the next day are one day apart.
// A from in the future yields 0.
func DaysBetween(from, to time.Time) int {
	loc := to.Location()
	from = from.In(loc)

	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, loc)

	days := int(math.Round(toDay.Sub(fromDay).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
