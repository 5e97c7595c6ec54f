// Package scores computes the time-decayed court score. The score is a pure
// read-side fold over ratified accusations; nothing here is persisted.
package scores

import (
	"time"

	"ferry/pkg/domain"
)

// Weights in hundredths per academic-year bucket: current year, then one,
// two, three years back. Older accusations score nothing.
const (
	weightCurrent = 100
	weightOneOld  = 75
	weightTwoOld  = 50
	weightThree   = 25
)

// Cutoff returns the start of the current academic year: September 1 at local
// midnight, in now's location. Before September the cutoff falls in the
// previous calendar year.
func Cutoff(now time.Time) time.Time {
	year := now.Year()
	if now.Month() < time.September {
		year--
	}
	return time.Date(year, time.September, 1, 0, 0, 0, 0, now.Location())
}

// Weight returns the decay weight, in hundredths, of a ratified accusation
// created at createdAt when evaluated at now. The current-year boundary is
// inclusive: an accusation created exactly at the September 1 cutoff counts
// at full weight. Older bucket boundaries are exclusive.
func Weight(createdAt, now time.Time) int {
	cutoff := Cutoff(now)
	switch {
	case !createdAt.Before(cutoff):
		return weightCurrent
	case createdAt.After(cutoff.AddDate(-1, 0, 0)):
		return weightOneOld
	case createdAt.After(cutoff.AddDate(-2, 0, 0)):
		return weightTwoOld
	case createdAt.After(cutoff.AddDate(-3, 0, 0)):
		return weightThree
	default:
		return 0
	}
}

// Fold sums decay weights for the given accusation creation times into a
// fixed-point score. An empty slice folds to 0.00.
func Fold(createdAts []time.Time, now time.Time) domain.Score {
	total := 0
	for _, createdAt := range createdAts {
		total += Weight(createdAt, now)
	}
	return domain.ScoreFromHundredths(total)
}
