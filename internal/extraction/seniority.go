package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mikael/cv-tailor/internal/types"
)

var yearsRe = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)

// EstimateSeniority infers a seniority level from title phrases and
// years-of-experience figures in the posting. Explicit title signals win
// over year counts.
func EstimateSeniority(text string) types.Seniority {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "principal") || strings.Contains(lower, "staff engineer") ||
		strings.Contains(lower, "staff software"):
		return types.SeniorityStaff
	case strings.Contains(lower, "lead engineer") || strings.Contains(lower, "tech lead") ||
		strings.Contains(lower, "team lead") || strings.Contains(lower, "engineering lead"):
		return types.SeniorityLead
	case strings.Contains(lower, "senior") || strings.Contains(lower, "sr."):
		return types.SenioritySenior
	case strings.Contains(lower, "junior") || strings.Contains(lower, "jr.") ||
		strings.Contains(lower, "entry level") || strings.Contains(lower, "entry-level") ||
		strings.Contains(lower, "graduate") || strings.Contains(lower, "intern"):
		return types.SeniorityJunior
	}

	// Fall back to the largest years-of-experience figure mentioned.
	maxYears := 0
	for _, m := range yearsRe.FindAllStringSubmatch(lower, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > maxYears {
			maxYears = n
		}
	}
	switch {
	case maxYears >= 8:
		return types.SeniorityStaff
	case maxYears >= 5:
		return types.SenioritySenior
	case maxYears >= 2:
		return types.SeniorityMid
	case maxYears >= 1:
		return types.SeniorityJunior
	}

	return types.SeniorityUnspecified
}
