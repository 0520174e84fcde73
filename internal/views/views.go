// Package views projects an aggregated folder tree into the shapes consumed
// by the charting layer: parallel-array treemap/sunburst data, a nested tree,
// a folder-by-month heatmap matrix, and an indented text rendering. Every
// projection is a pure read of the tree; field names and array parallelism
// are a stable contract with the renderer.
package views

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for caller parameters outside their domain
// (negative depth, negative top-n, unknown mode). It is the only error class
// the projections raise; malformed data degrades instead.
var ErrInvalidArgument = errors.New("invalid argument")

// Mode selects how the treemap/sunburst arrays are shaped.
type Mode string

const (
	// ModeHierarchical preserves folder lineage.
	ModeHierarchical Mode = "hierarchical"
	// ModeGrouped collapses folders into one group per depth level,
	// discarding lineage, to show how much content lives at each level.
	ModeGrouped Mode = "grouped"
)

// ParseMode validates a mode string. Empty means hierarchical.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeHierarchical:
		return ModeHierarchical, nil
	case ModeGrouped:
		return ModeGrouped, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}

// Options controls the treemap/sunburst projections.
type Options struct {
	// MaxDepth bounds the emitted hierarchy; 0 means unlimited. Folders
	// deeper than MaxDepth are folded into their ancestor at MaxDepth so
	// that emitted totals stay conserved. Negative values are invalid.
	MaxDepth int
	Mode     Mode
}

func (o Options) validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d is negative", ErrInvalidArgument, o.MaxDepth)
	}
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	return nil
}

// HierarchyView is the parallel-array shape consumed by treemap and sunburst
// chart primitives. Entry i describes one emitted folder: Labels[i] is its
// unique display label (the full path), Parents[i] the label of its emitted
// parent ("" for top-level entries), Values[i] its count contribution, and
// Text[i] a human-readable annotation.
type HierarchyView struct {
	Labels  []string `json:"labels"`
	Parents []string `json:"parents"`
	Values  []int    `json:"values"`
	Text    []string `json:"text"`
}

// TotalValue sums every emitted value. With the conserving value semantics
// this equals the number of records with a non-empty folder path, whatever
// the depth bound.
func (v HierarchyView) TotalValue() int {
	total := 0
	for _, n := range v.Values {
		total += n
	}
	return total
}

// NestedNode is the recursive tree shape for tree widgets and the text
// renderer. URLCount is the folder's direct bookmark count only, not the
// subtree aggregate; callers wanting subtree totals sum the subtree.
type NestedNode struct {
	Name           string        `json:"name"`
	Children       []*NestedNode `json:"children"`
	URLCount       int           `json:"url_count"`
	SubfolderCount int           `json:"subfolder_count"`
}

// HeatmapView is a rectangular folder-by-month activity matrix.
// Values[row][col] counts the direct bookmarks of RowLabels[row] created in
// ColLabels[col]; cells with no activity are zero, never omitted.
type HeatmapView struct {
	RowLabels []string `json:"row_labels"`
	ColLabels []string `json:"col_labels"`
	Values    [][]int  `json:"values"`
}
