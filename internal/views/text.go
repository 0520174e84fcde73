package views

import (
	"fmt"
	"strings"
)

// DefaultIndent is the indentation unit for the text rendering.
const DefaultIndent = "  "

// RenderText formats a nested tree as one line per folder, indented by
// depth, in the tree's deterministic order. The synthetic root gets no line
// of its own; its children start at one indent unit. Pure formatting, no
// aggregation.
func RenderText(tree *NestedNode, indentUnit string) string {
	if indentUnit == "" {
		indentUnit = DefaultIndent
	}
	var lines []string
	renderLines(tree, 0, indentUnit, &lines)
	return strings.Join(lines, "\n")
}

func renderLines(n *NestedNode, depth int, indentUnit string, lines *[]string) {
	if depth > 0 {
		prefix := strings.Repeat(indentUnit, depth)
		*lines = append(*lines, fmt.Sprintf("%s├─ %s (urls: %d, subfolders: %d)",
			prefix, n.Name, n.URLCount, n.SubfolderCount))
	}
	for _, child := range n.Children {
		renderLines(child, depth+1, indentUnit, lines)
	}
}
