package lifecycle

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
)

const hoursPerDay = 24

// ElapsedDays returns the whole days from ref to now, rounded down.
// A reference date after now is an error: elapsed time is never negative.
func ElapsedDays(ref, now time.Time) (int, error) {
	diff := now.Sub(ref)
	if diff < 0 {
		return 0, fmt.Errorf("reference %s is after now %s: %w",
			ref.Format(domain.DateLayout), now.Format(domain.DateLayout), domain.ErrInvalidDateOrder)
	}
	return int(math.Floor(diff.Hours() / hoursPerDay)), nil
}

// DaysUntil returns the signed days from now to target, rounded up.
// Negative values mean target has passed.
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / hoursPerDay))
}

// DueDate returns the expected birth date for a conception on ref.
func DueDate(ref time.Time, species domain.Species) (time.Time, error) {
	days, err := domain.GestationDays(species)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(ref).AddDate(0, 0, days), nil
}

// ProgressPercent returns elapsed/gestation*100. The value is not clamped:
// anything above 100 means the dam is past her due date.
func ProgressPercent(elapsedDays int, species domain.Species) (float64, error) {
	days, err := domain.GestationDays(species)
	if err != nil {
		return 0, err
	}
	return float64(elapsedDays) / float64(days) * 100, nil
}

// DisplayPercent clamps progress to [0,100] and rounds it for display.
func DisplayPercent(progress float64) int {
	return int(math.Round(math.Max(0, math.Min(100, progress))))
}
