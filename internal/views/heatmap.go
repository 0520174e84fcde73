package views

import (
	"fmt"
	"sort"

	"github.com/marklens/marklens/internal/hierarchy"
)

// Heatmap projects folder activity over time. The top-N folders by aggregate
// count become the rows; the columns are every year-month bucket with at
// least one timestamped record anywhere in the tree, so a quiet folder still
// gets a full zero-filled row and the matrix stays rectangular. Folders
// tying on aggregate count are ordered by their full-path label, not the
// bare folder name, so the ranking is total across the whole tree. topN of
// 0 means all folders; negative is invalid.
func Heatmap(t *hierarchy.Tree, topN int) (HeatmapView, error) {
	if topN < 0 {
		return HeatmapView{}, fmt.Errorf("%w: top_n %d is negative", ErrInvalidArgument, topN)
	}
	t.Aggregate()

	folders := make([]*hierarchy.Node, 0, t.FolderCount())
	t.Walk(func(n *hierarchy.Node) {
		if !n.IsRoot() {
			folders = append(folders, n)
		}
	})
	sort.Slice(folders, func(i, j int) bool {
		a, b := folders[i], folders[j]
		if a.AggregateCount != b.AggregateCount {
			return a.AggregateCount > b.AggregateCount
		}
		return a.Key() < b.Key()
	})
	if topN > 0 && len(folders) > topN {
		folders = folders[:topN]
	}

	// Buckets come from the whole record set, not just the selected rows.
	bucketSet := map[string]bool{}
	t.Walk(func(n *hierarchy.Node) {
		for _, rec := range n.Direct {
			if rec.HasCreated() {
				bucketSet[rec.Created.Format("2006-01")] = true
			}
		}
	})
	buckets := make([]string, 0, len(bucketSet))
	for b := range bucketSet {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)

	bucketIdx := make(map[string]int, len(buckets))
	for i, b := range buckets {
		bucketIdx[b] = i
	}

	view := HeatmapView{
		RowLabels: []string{},
		ColLabels: buckets,
		Values:    [][]int{},
	}
	for _, folder := range folders {
		row := make([]int, len(buckets))
		for _, rec := range folder.Direct {
			if rec.HasCreated() {
				row[bucketIdx[rec.Created.Format("2006-01")]]++
			}
		}
		view.RowLabels = append(view.RowLabels, folder.Key())
		view.Values = append(view.Values, row)
	}
	return view, nil
}
