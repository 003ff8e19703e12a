package coverage

import "fmt"

// Validator decides whether a target year has enough published player
// ratings to support season simulation. Thresholds are configuration
// inputs; the zero value accepts any counts.
type Validator struct {
	MinBatting  int
	MinPitching int
}

// Validate checks the distinct rated-player counts for a year against the
// configured minimums. It returns one human-readable reason per unmet
// threshold; ok is true only when both counts meet their minimums.
func (v Validator) Validate(battingCount, pitchingCount int) (ok bool, reasons []string) {
	if battingCount < v.MinBatting {
		reasons = append(reasons, fmt.Sprintf(
			"only %d players have batting ratings for this year (need at least %d)",
			battingCount, v.MinBatting))
	}
	if pitchingCount < v.MinPitching {
		reasons = append(reasons, fmt.Sprintf(
			"only %d players have pitching ratings for this year (need at least %d)",
			pitchingCount, v.MinPitching))
	}
	return len(reasons) == 0, reasons
}
