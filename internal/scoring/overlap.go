package scoring

import "strings"

// stopwords excluded from responsibility-phrase token sets so that overlap
// reflects content words, not connective tissue.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "in": true, "is": true,
	"it": true, "of": true, "on": true, "or": true, "our": true, "the": true,
	"to": true, "will": true, "with": true, "you": true, "your": true,
	"we": true, "this": true, "that": true,
}

// containmentThreshold is the fraction of a responsibility phrase's content
// tokens that must appear in the entry for the phrase to count as matched.
const containmentThreshold = 0.5

// responsibilityOverlap measures approximate textual overlap between an
// entry's text and the posting's responsibility phrases: the fraction of
// phrases at least half-contained (by content tokens) in the entry text.
// Containment rather than symmetric similarity, since entries are typically
// much longer than a single responsibility phrase. Returns 0 when there are
// no responsibility phrases.
func responsibilityOverlap(entryText string, responsibilities []string) float64 {
	if len(responsibilities) == 0 {
		return 0
	}

	entryTokens := contentTokens(entryText)
	if len(entryTokens) == 0 {
		return 0
	}

	matched := 0
	for _, phrase := range responsibilities {
		if phraseContainment(contentTokens(phrase), entryTokens) >= containmentThreshold {
			matched++
		}
	}

	return float64(matched) / float64(len(responsibilities))
}

// phraseContainment returns the fraction of phrase tokens present in the
// entry token set.
func phraseContainment(phrase, entry map[string]bool) float64 {
	if len(phrase) == 0 {
		return 0
	}

	found := 0
	for tok := range phrase {
		if entry[tok] {
			found++
		}
	}
	return float64(found) / float64(len(phrase))
}

// contentTokens lowercases, tokenizes, and drops stopwords.
func contentTokens(text string) map[string]bool {
	tokens := make(map[string]bool)
	for _, field := range strings.Fields(strings.ToLower(text)) {
		tok := strings.Trim(field, ".,;:()[]\"'!?")
		if len(tok) < 2 || stopwords[tok] {
			continue
		}
		tokens[tok] = true
	}
	return tokens
}
