package domain

import (
	"fmt"
	"strconv"
)

// Score is a fixed-point value in hundredths. Decay weights are multiples of
// 0.25, so integer hundredths represent every reachable score exactly and
// avoid float accumulation drift.
type Score int

// ScoreFromHundredths wraps a raw hundredths count.
func ScoreFromHundredths(h int) Score { return Score(h) }

// Hundredths returns the raw fixed-point value.
func (s Score) Hundredths() int { return int(s) }

// String renders the score with exactly two decimal places, e.g. "2.00".
func (s Score) String() string {
	sign := ""
	v := int(s)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON emits the score as a JSON number with two decimal places.
func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalJSON accepts a JSON number and stores it as hundredths.
func (s *Score) UnmarshalJSON(b []byte) error {
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("parse score: %w", err)
	}
	*s = Score(int(f*100 + 0.5))
	return nil
}
