package scoring

import "time"

// neutralRecency is used when an entry carries no parseable start date.
const neutralRecency = 0.5

// recencyScore computes the linear-decay recency component relative to a
// fixed reference time. Entries at the reference score 1.0, decaying to
// floor at windowYears; nothing ever drops below floor, so age alone never
// fully excludes an entry.
func recencyScore(startDate string, ref time.Time, windowYears, floor float64) float64 {
	if startDate == "" || windowYears <= 0 {
		return neutralRecency
	}

	date, err := time.Parse("2006-01", startDate)
	if err != nil {
		// Tolerate full dates ("2006-01-02") from hand-edited profiles.
		date, err = time.Parse("2006-01-02", startDate)
		if err != nil {
			return neutralRecency
		}
	}

	yearsSince := ref.Sub(date).Hours() / (24 * 365.25)
	if yearsSince < 0 {
		return 1.0
	}
	if yearsSince >= windowYears {
		return floor
	}

	score := 1.0 - yearsSince/windowYears*(1.0-floor)
	if score < floor {
		return floor
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
