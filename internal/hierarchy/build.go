package hierarchy

import "github.com/marklens/marklens/internal/bookmark"

// Build constructs the folder tree for a record set. Each record's path is
// walked from the root, creating missing intermediate folders on the way;
// revisiting an existing prefix reuses the existing node, so two records with
// identical paths always land on the same node. Nothing here can fail: a
// record with no path attaches to the root, one with a missing timestamp is
// attached all the same.
func Build(records []bookmark.Record) *Tree {
	root := &Node{Children: make(map[string]*Node)}
	t := &Tree{
		Root:  root,
		index: map[string]*Node{"": root},
	}

	for _, rec := range records {
		node := root
		for _, segment := range rec.Path {
			child, ok := node.Children[segment]
			if !ok {
				child = &Node{
					Name:     segment,
					FullPath: append(append([]string(nil), node.FullPath...), segment),
					Depth:    node.Depth + 1,
					Parent:   node,
					Children: make(map[string]*Node),
				}
				node.Children[segment] = child
				t.index[indexKey(child.FullPath)] = child
			}
			node = child
		}
		node.Direct = append(node.Direct, rec)
		t.TotalRecords++
	}

	return t
}
