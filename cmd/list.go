package cmd

import (
	"slices"

	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/render"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var listLeague string

var listCmd = &cobra.Command{
	Use:       "list <leagues|seasons|teams>",
	Short:     "List leagues, seasons or teams in the dataset",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"leagues", "seasons", "teams"},
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := loadMatches()
		if err != nil {
			return err
		}
		if listLeague != "" {
			if err := filter.Require(all, filter.League, listLeague); err != nil {
				return softFail(cmd, err)
			}
			all = filter.ByEquality(all, filter.League, listLeague)
		}
		var l render.List
		switch args[0] {
		case "leagues":
			l = render.List{Title: "Leagues", Items: filter.Distinct(all, filter.League)}
		case "seasons":
			l = render.List{Title: "Seasons", Items: filter.Distinct(all, filter.Season)}
		case "teams":
			l = render.List{Title: "Teams", Items: teams(all)}
		default:
			return errors.Newf("unknown list %q (use leagues, seasons or teams)", args[0])
		}
		r, err := newRenderer(cmd)
		if err != nil {
			return err
		}
		return r.Render(l)
	},
}

// teams returns every team that played at home or away, sorted.
func teams(s match.Subset) []string {
	out := append(filter.Distinct(s, filter.HomeTeam), filter.Distinct(s, filter.AwayTeam)...)
	slices.Sort(out)
	return slices.Compact(out)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listLeague, "league", "l", "", "restrict to one league")
}
