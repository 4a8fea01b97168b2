package probe

import (
	"regexp"
	"strings"
)

// changeIndicators are the phrases that mark a role or affiliation change in
// profile or bio text. This is an intentionally coarse heuristic, not a
// classifier; the probe contract keeps it replaceable.
var changeIndicators = []string{
	"joined",
	"new position",
	"now at",
	"excited to announce",
	"starting a new role",
	"moved to",
}

// recencyPhrases mark a post as published within roughly the last day.
var recencyPhrases = []string{
	"minutes ago",
	"minute ago",
	"hours ago",
	"hour ago",
	"today",
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags crudely removes HTML markup so phrase matching sees prose.
func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, " ")
}

// matchChangeIndicator reports the first change-indicator phrase found in the
// text, case-insensitively.
func matchChangeIndicator(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range changeIndicators {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	return "", false
}

// extractNewValue returns a short snapshot of the text following the matched
// phrase, for audit/diff display. At most maxWords words are kept.
func extractNewValue(text, phrase string) string {
	const maxWords = 4

	lower := strings.ToLower(text)
	idx := strings.Index(lower, phrase)
	if idx < 0 {
		return ""
	}
	rest := text[idx+len(phrase):]
	words := strings.Fields(rest)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Trim(strings.Join(words, " "), " .,;:!?\"'")
}

// countRecencyMentions counts recency-phrase occurrences in a feed page.
func countRecencyMentions(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range recencyPhrases {
		count += strings.Count(lower, phrase)
	}
	return count
}
