package bookmark

import "strings"

// DefaultSeparator is the folder separator used by the export files this
// service ingests. Forward slashes are always accepted as well.
const DefaultSeparator = "\\"

// SplitPath tokenizes a raw folder path into its segment names. Doubled
// backslashes are collapsed first (some exports escape the separator), then
// both separator styles are split, segments are trimmed and empties dropped.
// A blank or whitespace-only path yields nil: the bookmark belongs to the
// root. Malformed input degrades to fewer segments, never to an error.
func SplitPath(raw, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	raw = strings.ReplaceAll(raw, sep+sep, sep)
	raw = strings.ReplaceAll(raw, "/", sep)

	var parts []string
	for _, p := range strings.Split(raw, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// JoinPath is the inverse display form of SplitPath, used for node identity
// keys and view labels.
func JoinPath(parts []string) string {
	return strings.Join(parts, "/")
}
