// Package hierarchy turns a flat set of bookmark records into an explicit
// folder tree and computes per-folder aggregates. The tree is built once per
// analysis, aggregated once, and read by every projection; it is never
// mutated afterwards.
package hierarchy

import (
	"strings"
	"time"

	"github.com/marklens/marklens/internal/bookmark"
)

// Node is a single folder in the tree. The zero-depth root is synthetic: its
// Name is empty and its FullPath is nil.
type Node struct {
	Name     string
	FullPath []string
	Depth    int

	Parent   *Node
	Children map[string]*Node

	// Bookmarks whose folder path equals FullPath exactly.
	Direct []bookmark.Record

	// Populated by Aggregate.
	DirectCount    int
	AggregateCount int
	SubfolderCount int
	FirstSeen      *time.Time
	LastSeen       *time.Time

	sorted []*Node
}

// Key is the node's display label: its full path joined with "/". Folder
// names may themselves contain "/", so Key is not unique; identity goes
// through indexKey.
func (n *Node) Key() string {
	return bookmark.JoinPath(n.FullPath)
}

// indexKey encodes a segment sequence collision-free: segments are joined
// with NUL, which cannot appear inside a folder name coming out of any
// reader. ["A/B"] and ["A","B"] map to distinct keys.
func indexKey(path []string) string {
	return strings.Join(path, "\x00")
}

// IsRoot reports whether this is the synthetic root node.
func (n *Node) IsRoot() bool {
	return n.Depth == 0
}

// Tree is the canonical folder hierarchy: one synthetic root plus one node
// per distinct folder path, with a flat index for O(1) lookup by path key.
type Tree struct {
	Root  *Node
	index map[string]*Node

	// TotalRecords counts every ingested record, including those attached
	// directly to the root (empty folder path).
	TotalRecords int

	aggregated bool
}

// Lookup returns the node for a segment path, or nil if absent.
func (t *Tree) Lookup(path []string) *Node {
	return t.index[indexKey(path)]
}

// FolderCount returns the number of folders in the tree, excluding the root.
func (t *Tree) FolderCount() int {
	return len(t.index) - 1
}

// Height returns the maximum node depth in the tree (0 for a root-only tree).
func (t *Tree) Height() int {
	max := 0
	t.Walk(func(n *Node) {
		if n.Depth > max {
			max = n.Depth
		}
	})
	return max
}

// Walk visits every node in no particular order.
func (t *Tree) Walk(fn func(*Node)) {
	for _, n := range t.index {
		fn(n)
	}
}
