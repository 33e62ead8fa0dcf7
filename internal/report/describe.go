package report

import (
	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/stats"
)

// SummaryGroup holds field summaries for one group of records.
type SummaryGroup struct {
	Group     string          `json:"group,omitempty" yaml:"group,omitempty"`
	Matches   int             `json:"matches" yaml:"matches"`
	Summaries []stats.Summary `json:"summaries" yaml:"summaries"`
}

// DescribeReport summarizes numeric fields, optionally per categorical group.
type DescribeReport struct {
	GroupBy filter.Field   `json:"group_by,omitempty" yaml:"group_by,omitempty"`
	Groups  []SummaryGroup `json:"groups" yaml:"groups"`
}

// Describe summarizes fields (all when empty) over all. With a non-empty
// groupBy there is one group per distinct value, in sorted order.
func Describe(all match.Subset, groupBy filter.Field, fields ...stats.Field) *DescribeReport {
	rep := &DescribeReport{GroupBy: groupBy}
	if groupBy == "" {
		rep.Groups = []SummaryGroup{{Matches: all.Len(), Summaries: stats.Summarize(all, fields...)}}
		return rep
	}
	for _, v := range filter.Distinct(all, groupBy) {
		sub := filter.ByEquality(all, groupBy, v)
		rep.Groups = append(rep.Groups, SummaryGroup{Group: v, Matches: sub.Len(), Summaries: stats.Summarize(sub, fields...)})
	}
	return rep
}
