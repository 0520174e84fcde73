package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marklens/marklens/internal/bookmark"
	"github.com/marklens/marklens/internal/hierarchy"
)

func TestHeatmap_TopNAndZeroFill(t *testing.T) {
	jan := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)

	tree := hierarchy.Build([]bookmark.Record{
		{URL: "u", Path: []string{"A"}, Created: jan},
		{URL: "u", Path: []string{"A", "B"}, Created: mar},
		{URL: "u", Path: []string{"A", "B"}, Created: mar},
	})
	tree.Aggregate()

	view, err := Heatmap(tree, 1)
	require.NoError(t, err)

	// A ranks first on aggregate count (3 vs 2).
	require.Equal(t, []string{"A"}, view.RowLabels)
	// Columns cover every bucket in the record set, zero-filled where the
	// folder had no activity.
	require.Equal(t, []string{"2023-01", "2023-03"}, view.ColLabels)
	require.Equal(t, [][]int{{1, 0}}, view.Values)
}

func TestHeatmap_AllFolders(t *testing.T) {
	jan := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)

	tree := hierarchy.Build([]bookmark.Record{
		{URL: "u", Path: []string{"A"}, Created: jan},
		{URL: "u", Path: []string{"A"}, Created: jan},
		{URL: "u", Path: []string{"B"}, Created: feb},
	})
	tree.Aggregate()

	view, err := Heatmap(tree, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, view.RowLabels)
	require.Equal(t, [][]int{{2, 0}, {0, 1}}, view.Values)

	// Rectangular: every row has one cell per column.
	for _, row := range view.Values {
		require.Len(t, row, len(view.ColLabels))
	}
}

func TestHeatmap_TieBreakOnFullPathLabel(t *testing.T) {
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// A/Z and B/A tie on aggregate count; the full-path label orders them,
	// so A/Z ranks ahead of B/A even though Z sorts after A by bare name.
	tree := hierarchy.Build([]bookmark.Record{
		{URL: "u", Path: []string{"A", "Z"}, Created: jan},
		{URL: "u", Path: []string{"B", "A"}, Created: jan},
	})
	tree.Aggregate()

	view, err := Heatmap(tree, 0)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "A/Z", "B", "B/A"}, view.RowLabels)
}

func TestHeatmap_UntimestampedRecordsContributeNothing(t *testing.T) {
	tree := hierarchy.Build([]bookmark.Record{
		{URL: "u", Path: []string{"A"}},
	})
	tree.Aggregate()

	view, err := Heatmap(tree, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, view.RowLabels)
	require.Empty(t, view.ColLabels)
	require.Equal(t, [][]int{{}}, view.Values)
}

func TestHeatmap_NegativeTopN(t *testing.T) {
	tree := hierarchy.Build(nil)
	_, err := Heatmap(tree, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHeatmap_EmptyTree(t *testing.T) {
	tree := hierarchy.Build(nil)
	view, err := Heatmap(tree, 20)
	require.NoError(t, err)
	require.Empty(t, view.RowLabels)
	require.Empty(t, view.ColLabels)
	require.Empty(t, view.Values)
}
