package render

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/report"
	"github.com/KaramelBytes/statloom-cli/internal/workspace"
)

// List is a titled list of names, such as leagues or teams.
type List struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

func (r *Renderer) text(v any) (string, bool) {
	var b strings.Builder
	switch x := v.(type) {
	case *report.HeadToHeadReport:
		writeHeadToHead(&b, x)
	case *report.TeamProfileReport:
		writeTeamProfile(&b, x)
	case *report.LeagueReport:
		r.writeLeague(&b, x)
	case []*report.LeagueReport:
		for i, rep := range x {
			if i > 0 {
				b.WriteString("\n")
			}
			r.writeLeague(&b, rep)
		}
	case *report.CorrelationReport:
		writeCorrelationReport(&b, x)
	case *report.DescribeReport:
		writeDescribe(&b, x)
	case match.Subset:
		writeMatches(&b, x)
	case List:
		writeList(&b, x)
	case []*workspace.Entry:
		writeDatasets(&b, x)
	default:
		return "", false
	}
	return b.String(), true
}

func section(b *strings.Builder, name string) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n\n") {
		b.WriteString("\n")
	}
	b.WriteString("[" + name + "]\n")
}

func writeHeadToHead(b *strings.Builder, h *report.HeadToHeadReport) {
	section(b, "HEAD-TO-HEAD")
	fmt.Fprintf(b, "%s vs %s\n", h.HomeTeam, h.AwayTeam)
	fmt.Fprintf(b, "Matches: %d\n", h.Count)
	fmt.Fprintf(b, "%s wins at home: %d\n", h.HomeTeam, h.HomeWins)
	fmt.Fprintf(b, "Draws: %d\n", h.Draws)
	fmt.Fprintf(b, "%s wins away: %d\n", h.AwayTeam, h.AwayWins)
	fmt.Fprintf(b, "Wins at any venue: %s %d, %s %d\n", h.HomeTeam, h.HomeTeamWins, h.AwayTeam, h.AwayTeamWins)

	section(b, "AVERAGES")
	fmt.Fprintf(b, "- Home Goals: %.2f\n", h.AvgHomeGoals)
	fmt.Fprintf(b, "- Away Goals: %.2f\n", h.AvgAwayGoals)
	fmt.Fprintf(b, "- First Half Goals: %.2f\n", h.AvgFirstHalfGoals)
	fmt.Fprintf(b, "- Home Ball Possession: %s\n", optional(h.AvgHomePossession, "%"))
	fmt.Fprintf(b, "- Away Ball Possession: %s\n", optional(h.AvgAwayPossession, "%"))

	writeMatches(b, h.Matches)
}

func writeTeamProfile(b *strings.Builder, t *report.TeamProfileReport) {
	section(b, "TEAM PROFILE")
	fmt.Fprintf(b, "Team: %s (%s)\n", t.Team, t.Role)
	fmt.Fprintf(b, "Matches: %d\n", t.Matches)
	fmt.Fprintf(b, "- Average Goals Scored: %.2f\n", t.AvgScored)
	fmt.Fprintf(b, "- Average Goals Conceded: %.2f\n", t.AvgConceded)
	fmt.Fprintf(b, "- Average First Half Goals Scored: %.2f\n", t.AvgFirstHalfScored)
	fmt.Fprintf(b, "- Win %%: %.2f%%\n", t.WinPct)
	fmt.Fprintf(b, "- Draw %%: %.2f%%\n", t.DrawPct)
	fmt.Fprintf(b, "- Loss %%: %.2f%% (by %s)\n", t.LossPct, t.LossSource)
	if t.Opponent != "" {
		fmt.Fprintf(b, "- Loss %% vs %s: %s\n", t.Opponent, optional(t.LossPctVsOpponent, "%"))
	}
	fmt.Fprintf(b, "- Goals Std Dev: %s\n", optional(t.GoalsStdDev, ""))
	fmt.Fprintf(b, "- Goals Variance: %s\n", optional(t.GoalsVariance, ""))
}

func (r *Renderer) writeLeague(b *strings.Builder, l *report.LeagueReport) {
	section(b, "LEAGUE COMPARISON")
	fmt.Fprintf(b, "League: %s (%d of %d matches)\n", l.League, l.Matches, l.TotalMatches)
	for _, c := range l.Comparisons {
		if !c.Available {
			fmt.Fprintf(b, "- %s: %s\n", c.Label, Placeholder)
			continue
		}
		fmt.Fprintf(b, "- %s: %.2f%s (overall %s) %s\n", c.Label, c.LeagueValue, c.Unit, c.FormattedOverall, Diff(c, r.Color))
	}
	if l.Correlation != nil {
		section(b, "CORRELATIONS")
		writeMatrix(b, &report.CorrelationReport{Matrix: l.Correlation, Pairs: report.TopPairs(l.Correlation)})
	} else if l.CorrelationNote != "" {
		section(b, "CORRELATIONS")
		b.WriteString(Placeholder + "\n")
	}
}

func writeCorrelationReport(b *strings.Builder, c *report.CorrelationReport) {
	section(b, "CORRELATIONS")
	scope := "all leagues"
	if c.League != "" {
		scope = c.League
	}
	if c.Season != "" {
		scope += ", " + c.Season
	}
	fmt.Fprintf(b, "Scope: %s (%d matches)\n", scope, c.Matches)
	writeMatrix(b, c)
}

func writeMatrix(b *strings.Builder, c *report.CorrelationReport) {
	m := c.Matrix
	fmt.Fprintf(b, "Rows used: %d (excluded %d with missing values)\n", m.N, m.Excluded)
	width := 0
	for _, f := range m.Fields {
		width = max(width, len(f.Label()))
	}
	fmt.Fprintf(b, "%-*s", width, "")
	for i := range m.Fields {
		fmt.Fprintf(b, " %7s", fmt.Sprintf("[%d]", i+1))
	}
	b.WriteString("\n")
	for i, f := range m.Fields {
		fmt.Fprintf(b, "%-*s", width, f.Label())
		for j := range m.Fields {
			fmt.Fprintf(b, " %7.3f", m.Values[i][j])
		}
		fmt.Fprintf(b, "  [%d]\n", i+1)
	}
	if len(m.Constant) > 0 {
		names := make([]string, len(m.Constant))
		for i, f := range m.Constant {
			names[i] = f.Label()
		}
		fmt.Fprintf(b, "Constant (r reported as 0): %s\n", strings.Join(names, ", "))
	}
	lim := min(len(c.Pairs), 5)
	for _, p := range c.Pairs[:lim] {
		fmt.Fprintf(b, "- %s ~ %s: r=%.3f\n", p.A.Label(), p.B.Label(), p.R)
	}
}

func writeDescribe(b *strings.Builder, d *report.DescribeReport) {
	for _, g := range d.Groups {
		section(b, "SUMMARY")
		if g.Group != "" {
			fmt.Fprintf(b, "%s: %s (n=%d)\n", d.GroupBy, g.Group, g.Matches)
		} else {
			fmt.Fprintf(b, "Matches: %d\n", g.Matches)
		}
		for _, s := range g.Summaries {
			if s.Count == 0 {
				fmt.Fprintf(b, "- %s: %s\n", s.Label, Placeholder)
				continue
			}
			fmt.Fprintf(b, "- %s: n=%d, mean %.4g, min %.4g, max %.4g, std %s\n",
				s.Label, s.Count, s.Mean, s.Min, s.Max, optionalG(s.StdDev))
		}
	}
}

func writeMatches(b *strings.Builder, s match.Subset) {
	section(b, "MATCHES")
	if len(s) == 0 {
		b.WriteString("No matches found.\n")
		return
	}
	for _, rec := range s {
		fmt.Fprintf(b, "- %s %s: %s\n", rec.League, rec.Season, rec.String())
	}
}

func writeList(b *strings.Builder, l List) {
	section(b, strings.ToUpper(l.Title))
	if len(l.Items) == 0 {
		b.WriteString("(none)\n")
		return
	}
	for _, it := range l.Items {
		b.WriteString("- " + it + "\n")
	}
}

func writeDatasets(b *strings.Builder, es []*workspace.Entry) {
	section(b, "DATASETS")
	if len(es) == 0 {
		b.WriteString("No datasets registered.\n")
		return
	}
	for _, e := range es {
		fmt.Fprintf(b, "- %s: %s", e.Name, e.Path)
		if e.Sheet != "" {
			fmt.Fprintf(b, " (sheet %s)", e.Sheet)
		}
		id := e.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(b, " [%s]\n", id)
	}
}
