package extraction

import (
	"regexp"
	"strings"
)

// Segment is one candidate requirement line extracted from posting text.
type Segment struct {
	Text   string
	Bullet bool // originated from a bullet/list line
}

var (
	bulletPrefixRe   = regexp.MustCompile(`^\s*([-*•·▪‣]|\d+[.)])\s+`)
	sentenceSplitRe  = regexp.MustCompile(`(?:[.!?;])\s+`)
	whitespaceRunsRe = regexp.MustCompile(`\s+`)
)

// SegmentText splits raw posting text into candidate requirement segments.
// Bullet lines become one segment each; prose paragraphs are split on
// sentence boundaries. Very short fragments are dropped.
func SegmentText(text string) []Segment {
	const minSegmentWords = 2

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	segments := make([]Segment, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if bulletPrefixRe.MatchString(trimmed) {
			body := bulletPrefixRe.ReplaceAllString(trimmed, "")
			body = collapseWhitespace(body)
			if wordCount(body) >= minSegmentWords {
				segments = append(segments, Segment{Text: body, Bullet: true})
			}
			continue
		}

		for _, sentence := range sentenceSplitRe.Split(trimmed, -1) {
			sentence = collapseWhitespace(strings.TrimRight(sentence, ".!?;"))
			if wordCount(sentence) >= minSegmentWords {
				segments = append(segments, Segment{Text: sentence})
			}
		}
	}

	return segments
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunsRe.ReplaceAllString(s, " "))
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
