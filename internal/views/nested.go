package views

import "github.com/marklens/marklens/internal/hierarchy"

// RootLabel names the synthetic root in the nested tree view.
const RootLabel = "Root"

// NestedTree projects the full tree into the recursive widget shape. No
// depth truncation is applied here; callers wanting a shallower tree slice
// it themselves. Counts are direct per folder, deliberately not the subtree
// aggregate.
func NestedTree(t *hierarchy.Tree) *NestedNode {
	t.Aggregate()
	root := nested(t.Root)
	root.Name = RootLabel
	return root
}

func nested(n *hierarchy.Node) *NestedNode {
	out := &NestedNode{
		Name:           n.Name,
		Children:       []*NestedNode{},
		URLCount:       n.DirectCount,
		SubfolderCount: n.SubfolderCount,
	}
	for _, child := range n.SortedChildren() {
		out.Children = append(out.Children, nested(child))
	}
	return out
}
