package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNestedTree_DirectCounts(t *testing.T) {
	tree := buildTree(t, []string{"A"}, []string{"A", "B"}, []string{"A", "B"})

	root := NestedTree(tree)
	require.Equal(t, RootLabel, root.Name)
	require.Equal(t, 0, root.URLCount)
	require.Len(t, root.Children, 1)

	a := root.Children[0]
	require.Equal(t, "A", a.Name)
	// Direct count, not the subtree aggregate.
	require.Equal(t, 1, a.URLCount)
	require.Equal(t, 1, a.SubfolderCount)

	ab := a.Children[0]
	require.Equal(t, "B", ab.Name)
	require.Equal(t, 2, ab.URLCount)
	require.Equal(t, 0, ab.SubfolderCount)
}

// The nested tree's direct counts summed over a subtree must equal that
// subtree root's aggregate count from the hierarchy.
func TestNestedTree_SumMatchesAggregate(t *testing.T) {
	tree := buildTree(t,
		[]string{"A"}, []string{"A", "B"}, []string{"A", "B", "C"},
		[]string{"D"}, nil,
	)

	root := NestedTree(tree)
	var sum func(n *NestedNode) int
	sum = func(n *NestedNode) int {
		total := n.URLCount
		for _, c := range n.Children {
			total += sum(c)
		}
		return total
	}
	require.Equal(t, tree.Root.AggregateCount, sum(root))

	a := tree.Lookup([]string{"A"})
	require.Equal(t, a.AggregateCount, sum(root.Children[0]))
}

func TestNestedTree_NeverTruncated(t *testing.T) {
	tree := buildTree(t, []string{"A", "B", "C", "D", "E"})

	root := NestedTree(tree)
	depth := 0
	for n := root; len(n.Children) > 0; n = n.Children[0] {
		depth++
	}
	require.Equal(t, 5, depth)
}

func TestNestedTree_Empty(t *testing.T) {
	tree := buildTree(t)
	root := NestedTree(tree)
	require.Empty(t, root.Children)
	require.Equal(t, 0, root.URLCount)
}

func TestRenderText(t *testing.T) {
	tree := buildTree(t, []string{"A"}, []string{"A", "B"}, []string{"A", "B"})

	out := RenderText(NestedTree(tree), "  ")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "  ├─ A (urls: 1, subfolders: 1)", lines[0])
	require.Equal(t, "    ├─ B (urls: 2, subfolders: 0)", lines[1])
}

func TestRenderText_CustomIndent(t *testing.T) {
	tree := buildTree(t, []string{"A", "B"})

	out := RenderText(NestedTree(tree), "\t")
	lines := strings.Split(out, "\n")
	require.True(t, strings.HasPrefix(lines[0], "\t├─ A"))
	require.True(t, strings.HasPrefix(lines[1], "\t\t├─ B"))
}

func TestRenderText_EmptyTree(t *testing.T) {
	tree := buildTree(t)
	require.Equal(t, "", RenderText(NestedTree(tree), ""))
}
