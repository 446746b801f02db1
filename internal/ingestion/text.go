// Package ingestion loads job posting text from files and URLs and
// normalizes it before requirement extraction.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// CleanText cleans and normalizes posting text while preserving structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

var multiSpaceRe = regexp.MustCompile(`\s+`)

// cleanLine cleans a single line while preserving headings and bullets.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ") {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	leadingSpace := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2.
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// noisePatterns match job-board clutter that surrounds web postings. Each is
// anchored to cut from the match to the end of the text.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)apply now.*$`),
	regexp.MustCompile(`(?is)share this job.*$`),
	regexp.MustCompile(`(?is)cookie policy.*$`),
	regexp.MustCompile(`(?is)privacy policy.*$`),
	regexp.MustCompile(`(?is)join to apply.*?join now`),
	regexp.MustCompile(`(?is)similar jobs.*$`),
	regexp.MustCompile(`(?is)people also viewed.*$`),
	regexp.MustCompile(`(?is)show more.*show less.*$`),
}

// descriptionMarkers locate the start of the actual posting body inside a
// cluttered page dump.
var descriptionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)about the role`),
	regexp.MustCompile(`(?i)in this role you will`),
	regexp.MustCompile(`(?i)job description`),
	regexp.MustCompile(`(?i)we are looking for`),
	regexp.MustCompile(`(?i)required experience`),
	regexp.MustCompile(`(?i)qualifications`),
}

// StripBoardNoise removes job-board chrome (apply buttons, related-jobs
// sections, legal footers) from posting text fetched off the web.
func StripBoardNoise(text string) string {
	body := text
	for _, marker := range descriptionMarkers {
		if loc := marker.FindStringIndex(body); loc != nil {
			body = body[loc[0]:]
			break
		}
	}
	for _, pattern := range noisePatterns {
		body = pattern.ReplaceAllString(body, "")
	}
	return strings.TrimSpace(body)
}

// FromFile reads a posting from a local text file and cleans it.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
