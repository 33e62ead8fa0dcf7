package cmd

import (
	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/report"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	h2hHome string
	h2hAway string
)

var h2hCmd = &cobra.Command{
	Use:   "h2h",
	Short: "Head-to-head record of two teams",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if h2hHome == "" || h2hAway == "" {
			return errors.New("--home and --away are required")
		}
		if h2hHome == h2hAway {
			return errors.New("--home and --away must name different teams")
		}
		all, err := loadMatches()
		if err != nil {
			return err
		}
		for _, team := range []string{h2hHome, h2hAway} {
			if err := filter.RequireTeam(all, team); err != nil {
				return softFail(cmd, err)
			}
		}
		rep, err := report.HeadToHead(all, h2hHome, h2hAway)
		if err != nil {
			return softFail(cmd, err)
		}
		r, err := newRenderer(cmd)
		if err != nil {
			return err
		}
		return r.Render(rep)
	},
}

func init() {
	rootCmd.AddCommand(h2hCmd)
	h2hCmd.Flags().StringVar(&h2hHome, "home", "", "home team")
	h2hCmd.Flags().StringVar(&h2hAway, "away", "", "away team")
}
