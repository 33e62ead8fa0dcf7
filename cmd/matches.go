package cmd

import (
	"github.com/KaramelBytes/statloom-cli/internal/report"
	"github.com/spf13/cobra"
)

var matchesQuery report.MatchQuery

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List matches filtered by league, season and teams",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := loadMatches()
		if err != nil {
			return err
		}
		out, err := report.Matches(all, matchesQuery)
		if err != nil {
			return softFail(cmd, err)
		}
		r, err := newRenderer(cmd)
		if err != nil {
			return err
		}
		return r.Render(out)
	},
}

func init() {
	rootCmd.AddCommand(matchesCmd)
	matchesCmd.Flags().StringVarP(&matchesQuery.League, "league", "l", "", "league name")
	matchesCmd.Flags().StringVarP(&matchesQuery.Season, "season", "s", "", "season")
	matchesCmd.Flags().StringVar(&matchesQuery.HomeTeam, "home", "", "home team")
	matchesCmd.Flags().StringVar(&matchesQuery.AwayTeam, "away", "", "away team")
}
