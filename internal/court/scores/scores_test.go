package scores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ferry/pkg/domain"
)

func TestCutoff(t *testing.T) {
	t.Run("after september uses current year", func(t *testing.T) {
		now := time.Date(2022, time.October, 15, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2022, time.September, 1, 0, 0, 0, 0, time.UTC), Cutoff(now))
	})

	t.Run("before september uses previous year", func(t *testing.T) {
		now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2022, time.September, 1, 0, 0, 0, 0, time.UTC), Cutoff(now))
	})

	t.Run("september first rolls forward", func(t *testing.T) {
		now := time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC), Cutoff(now))
	})
}

func TestWeight_BoundaryBuckets(t *testing.T) {
	// Evaluated on 2023-01-01; the academic year started 2022-09-01.
	now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{"created now", now, 100},
		{"exactly at cutoff counts full", time.Date(2022, time.September, 1, 0, 0, 0, 0, time.UTC), 100},
		{"just before cutoff", time.Date(2022, time.August, 31, 23, 59, 59, 0, time.UTC), 75},
		{"one year back", time.Date(2021, time.December, 25, 0, 0, 0, 0, time.UTC), 75},
		{"two years back", time.Date(2020, time.October, 1, 0, 0, 0, 0, time.UTC), 50},
		{"three years back", time.Date(2019, time.November, 11, 0, 0, 0, 0, time.UTC), 25},
		{"exactly four cutoffs back scores nothing", time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC), 0},
		{"ancient history", time.Date(2010, time.June, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Weight(tt.createdAt, now))
		})
	}
}

func TestFold(t *testing.T) {
	now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty folds to zero", func(t *testing.T) {
		assert.Equal(t, domain.ScoreFromHundredths(0), Fold(nil, now))
	})

	t.Run("mixed buckets sum exactly", func(t *testing.T) {
		createdAts := []time.Time{
			time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC), // 1.00
			time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),    // 0.75
			time.Date(2020, time.October, 1, 0, 0, 0, 0, time.UTC),  // 0.50
			time.Date(2019, time.October, 1, 0, 0, 0, 0, time.UTC),  // 0.25
			time.Date(2015, time.October, 1, 0, 0, 0, 0, time.UTC),  // 0.00
		}
		score := Fold(createdAts, now)
		assert.Equal(t, domain.ScoreFromHundredths(250), score)
		assert.Equal(t, "2.50", score.String())
	})

	t.Run("fixed point avoids float drift", func(t *testing.T) {
		// 12 quarter-weight entries sum to exactly 3.00.
		createdAts := make([]time.Time, 12)
		for i := range createdAts {
			createdAts[i] = time.Date(2019, time.October, 1, 0, 0, 0, 0, time.UTC)
		}
		assert.Equal(t, "3.00", Fold(createdAts, now).String())
	})
}
