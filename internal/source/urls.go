package source

import "regexp"

var urlPattern = regexp.MustCompile(`https?://[^\s<>"')\]]+`)

// extractURLs finds http(s) URLs embedded in free-form text. Used by the
// DOCX and PDF readers, whose formats carry no structured link markup worth
// trusting.
func extractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}
