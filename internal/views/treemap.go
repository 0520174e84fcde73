package views

import (
	"fmt"
	"sort"

	"github.com/marklens/marklens/internal/hierarchy"
)

// Treemap projects the tree into treemap arrays. In hierarchical mode every
// folder within the depth bound is emitted in deterministic order (parent
// before children); a folder sitting exactly at the bound absorbs its whole
// subtree's count. Branch folders carry only their direct contribution, so
// each record is attributed to exactly one entry.
func Treemap(t *hierarchy.Tree, opts Options) (HierarchyView, error) {
	if err := opts.validate(); err != nil {
		return HierarchyView{}, err
	}
	t.Aggregate()

	if opts.Mode == ModeGrouped {
		return groupedTreemap(t), nil
	}
	return hierarchicalTreemap(t, opts.MaxDepth), nil
}

// Sunburst projects the tree into sunburst arrays. The sunburst shares the
// treemap's hierarchical shape and value semantics so the two charts always
// agree; grouped mode does not apply to a radial chart.
func Sunburst(t *hierarchy.Tree, maxDepth int) (HierarchyView, error) {
	return Treemap(t, Options{MaxDepth: maxDepth, Mode: ModeHierarchical})
}

func hierarchicalTreemap(t *hierarchy.Tree, maxDepth int) HierarchyView {
	view := HierarchyView{
		Labels:  []string{},
		Parents: []string{},
		Values:  []int{},
		Text:    []string{},
	}

	var emit func(n *hierarchy.Node, parentLabel string)
	emit = func(n *hierarchy.Node, parentLabel string) {
		truncated := maxDepth > 0 && n.Depth >= maxDepth
		value := n.DirectCount
		if truncated || n.SubfolderCount == 0 {
			value = n.AggregateCount
		}

		label := n.Key()
		view.Labels = append(view.Labels, label)
		view.Parents = append(view.Parents, parentLabel)
		view.Values = append(view.Values, value)
		view.Text = append(view.Text, fmt.Sprintf("%s (%d)", n.Name, value))

		if truncated {
			return
		}
		for _, child := range n.SortedChildren() {
			emit(child, label)
		}
	}

	for _, child := range t.Root.SortedChildren() {
		emit(child, "")
	}
	return view
}

// groupedTreemap flattens the hierarchy into one synthetic group per depth
// level, each a child of the implicit top. A group's value is the sum of
// direct counts across every folder at that depth, so lineage is discarded
// but the total is still conserved.
func groupedTreemap(t *hierarchy.Tree) HierarchyView {
	byDepth := map[int]int{}
	t.Walk(func(n *hierarchy.Node) {
		if n.IsRoot() {
			return
		}
		byDepth[n.Depth] += n.DirectCount
	})

	depths := make([]int, 0, len(byDepth))
	for d := range byDepth {
		depths = append(depths, d)
	}
	sort.Ints(depths)

	view := HierarchyView{
		Labels:  []string{},
		Parents: []string{},
		Values:  []int{},
		Text:    []string{},
	}
	for _, d := range depths {
		view.Labels = append(view.Labels, fmt.Sprintf("Level %d", d))
		view.Parents = append(view.Parents, "")
		view.Values = append(view.Values, byDepth[d])
		view.Text = append(view.Text, fmt.Sprintf("Level %d (%d)", d, byDepth[d]))
	}
	return view
}
