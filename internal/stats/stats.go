// Package stats computes collection-level statistics over an aggregated
// folder tree and its records: sizes, depth distribution, browser and domain
// breakdowns, and created-count time series.
package stats

import (
	"sort"
	"time"

	"github.com/marklens/marklens/internal/bookmark"
	"github.com/marklens/marklens/internal/hierarchy"
)

// Count is a labeled tally used by the distribution lists.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary is the point-in-time statistics snapshot for one analysis.
type Summary struct {
	TotalBookmarks int `json:"total_bookmarks"`
	TotalFolders   int `json:"total_folders"`
	TotalModified  int `json:"total_modified"`

	DateRangeStart *time.Time `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time `json:"date_range_end,omitempty"`

	MinDepth int     `json:"min_hierarchy_depth"`
	MaxDepth int     `json:"max_hierarchy_depth"`
	AvgDepth float64 `json:"avg_hierarchy_depth"`

	Browsers   []Count `json:"browsers,omitempty"`
	TopDomains []Count `json:"top_domains,omitempty"`

	DailyCounts   []Count `json:"daily_counts,omitempty"`
	MonthlyCounts []Count `json:"monthly_counts,omitempty"`
	YearlyCounts  []Count `json:"yearly_counts,omitempty"`

	// CumulativeCounts is the running total per month: how many bookmarks
	// existed by the end of each month in the series.
	CumulativeCounts []Count `json:"cumulative_counts,omitempty"`
}

// TopDomainLimit bounds the domain distribution.
const TopDomainLimit = 20

// Collect builds the summary. Depth statistics are over records (each record
// at its folder's depth), matching how the folder views weigh content.
func Collect(tree *hierarchy.Tree, records []bookmark.Record) Summary {
	tree.Aggregate()

	s := Summary{
		TotalBookmarks: tree.TotalRecords,
		TotalFolders:   tree.FolderCount(),
		DateRangeStart: tree.Root.FirstSeen,
		DateRangeEnd:   tree.Root.LastSeen,
	}

	browsers := map[string]int{}
	domains := map[string]int{}
	days := map[string]int{}
	months := map[string]int{}
	years := map[string]int{}

	depthSum := 0
	first := true
	for _, rec := range records {
		depth := len(rec.Path)
		depthSum += depth
		if first || depth < s.MinDepth {
			s.MinDepth = depth
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		first = false

		if rec.Modified {
			s.TotalModified++
		}
		if rec.Browser != "" {
			browsers[rec.Browser]++
		}
		if rec.Domain != "" {
			domains[rec.Domain]++
		}
		if rec.HasCreated() {
			days[rec.Created.Format("2006-01-02")]++
			months[rec.Created.Format("2006-01")]++
			years[rec.Created.Format("2006")]++
		}
	}
	if len(records) > 0 {
		s.AvgDepth = float64(depthSum) / float64(len(records))
	}

	s.Browsers = byCountDesc(browsers, 0)
	s.TopDomains = byCountDesc(domains, TopDomainLimit)
	s.DailyCounts = byLabelAsc(days)
	s.MonthlyCounts = byLabelAsc(months)
	s.YearlyCounts = byLabelAsc(years)
	s.CumulativeCounts = runningTotal(s.MonthlyCounts)
	return s
}

func runningTotal(series []Count) []Count {
	if len(series) == 0 {
		return nil
	}
	out := make([]Count, len(series))
	total := 0
	for i, c := range series {
		total += c.Count
		out[i] = Count{Label: c.Label, Count: total}
	}
	return out
}

func byCountDesc(m map[string]int, limit int) []Count {
	out := make([]Count, 0, len(m))
	for label, n := range m {
		out = append(out, Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func byLabelAsc(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for label, n := range m {
		out = append(out, Count{Label: label, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
