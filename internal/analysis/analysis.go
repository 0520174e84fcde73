// Package analysis ties the engine together: records in, every projection
// out. One call owns one tree; the tree is discarded when the call returns,
// so concurrent analyses never share state.
package analysis

import (
	"fmt"

	"github.com/marklens/marklens/internal/bookmark"
	"github.com/marklens/marklens/internal/hierarchy"
	"github.com/marklens/marklens/internal/preprocess"
	"github.com/marklens/marklens/internal/stats"
	"github.com/marklens/marklens/internal/views"
)

// DefaultHeatmapTopN bounds the heatmap rows when the caller does not say.
const DefaultHeatmapTopN = 20

// Options are the per-request projection parameters.
type Options struct {
	// MaxDepth bounds the treemap/sunburst hierarchy; 0 means unlimited.
	MaxDepth int `json:"max_depth"`
	// Mode shapes the treemap (hierarchical or grouped).
	Mode views.Mode `json:"mode"`
	// HeatmapTopN selects how many folders the heatmap ranks.
	HeatmapTopN int `json:"heatmap_top_n"`
	// IndentUnit for the text rendering; empty uses the default.
	IndentUnit string `json:"indent_unit,omitempty"`
}

// Result bundles every projection of one analysis.
type Result struct {
	Stats    stats.Summary      `json:"stats"`
	Treemap  views.HierarchyView `json:"treemap"`
	Sunburst views.HierarchyView `json:"sunburst"`
	Tree     *views.NestedNode  `json:"tree"`
	Heatmap  views.HeatmapView  `json:"heatmap"`
	TreeText string             `json:"tree_text"`
	Warnings []string           `json:"warnings,omitempty"`
}

// Validate checks the options' domains. Out-of-domain values are the only
// way an analysis can fail.
func (o Options) Validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d is negative", views.ErrInvalidArgument, o.MaxDepth)
	}
	if o.HeatmapTopN < 0 {
		return fmt.Errorf("%w: heatmap_top_n %d is negative", views.ErrInvalidArgument, o.HeatmapTopN)
	}
	if _, err := views.ParseMode(string(o.Mode)); err != nil {
		return err
	}
	return nil
}

// Run validates, enriches and analyzes a record set. Only out-of-domain
// options fail the call; malformed records degrade into warnings. Options
// are checked up front, before any tree is built.
func Run(records []bookmark.Record, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.HeatmapTopN == 0 {
		opts.HeatmapTopN = DefaultHeatmapTopN
	}

	kept, warnings := preprocess.Validate(records)
	kept = preprocess.Enrich(kept)

	tree := hierarchy.Build(kept)
	tree.Aggregate()

	treemap, err := views.Treemap(tree, views.Options{MaxDepth: opts.MaxDepth, Mode: opts.Mode})
	if err != nil {
		return nil, err
	}
	sunburst, err := views.Sunburst(tree, opts.MaxDepth)
	if err != nil {
		return nil, err
	}
	heatmap, err := views.Heatmap(tree, opts.HeatmapTopN)
	if err != nil {
		return nil, err
	}

	nested := views.NestedTree(tree)
	return &Result{
		Stats:    stats.Collect(tree, kept),
		Treemap:  treemap,
		Sunburst: sunburst,
		Tree:     nested,
		Heatmap:  heatmap,
		TreeText: views.RenderText(nested, opts.IndentUnit),
		Warnings: warnings,
	}, nil
}
