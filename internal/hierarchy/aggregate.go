package hierarchy

import (
	"sort"
	"time"

	"github.com/marklens/marklens/internal/bookmark"
)

// Aggregate populates the derived fields on every node: direct and subtree
// counts, subfolder counts, and first/last created timestamps. Children are
// aggregated before their parent, so each node only reads already-final
// child values. It also fixes the child iteration order used by every
// projection: aggregate count descending, name ascending on ties. Calling it
// twice is a no-op.
func (t *Tree) Aggregate() {
	if t.aggregated {
		return
	}
	aggregate(t.Root)
	t.aggregated = true
}

func aggregate(n *Node) {
	n.DirectCount = len(n.Direct)
	n.AggregateCount = n.DirectCount
	n.SubfolderCount = len(n.Children)
	n.FirstSeen, n.LastSeen = timeBounds(n.Direct)

	for _, child := range n.Children {
		aggregate(child)
		n.AggregateCount += child.AggregateCount
		n.FirstSeen = minTime(n.FirstSeen, child.FirstSeen)
		n.LastSeen = maxTime(n.LastSeen, child.LastSeen)
	}

	n.sorted = make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		n.sorted = append(n.sorted, child)
	}
	sort.Slice(n.sorted, func(i, j int) bool {
		a, b := n.sorted[i], n.sorted[j]
		if a.AggregateCount != b.AggregateCount {
			return a.AggregateCount > b.AggregateCount
		}
		return a.Name < b.Name
	})
}

// SortedChildren returns the children in the deterministic projection order.
// Valid only after Aggregate.
func (n *Node) SortedChildren() []*Node {
	return n.sorted
}

func timeBounds(records []bookmark.Record) (first, last *time.Time) {
	for _, rec := range records {
		if !rec.HasCreated() {
			continue
		}
		ts := rec.Created
		first = minTime(first, &ts)
		last = maxTime(last, &ts)
	}
	return first, last
}

// minTime and maxTime treat nil as "no bound": a subtree with no timestamped
// bookmarks contributes nothing, it never drags the bound to a sentinel date.
func minTime(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Before(*a):
		return b
	default:
		return a
	}
}

func maxTime(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.After(*a):
		return b
	default:
		return a
	}
}
