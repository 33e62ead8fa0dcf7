package cmd

import (
	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/report"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	teamName     string
	teamRole     string
	teamOpponent string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Profile of a team playing at home or away",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if teamName == "" {
			return errors.New("--team is required")
		}
		role, err := filter.ParseRole(teamRole)
		if err != nil {
			return err
		}
		all, err := loadMatches()
		if err != nil {
			return err
		}
		if err := filter.RequireTeam(all, teamName); err != nil {
			return softFail(cmd, err)
		}
		rep, err := report.TeamProfile(all, teamName, role, teamOpponent)
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
	rootCmd.AddCommand(teamCmd)
	teamCmd.Flags().StringVarP(&teamName, "team", "t", "", "team name")
	teamCmd.Flags().StringVarP(&teamRole, "role", "r", "home", "role: home or away")
	teamCmd.Flags().StringVar(&teamOpponent, "opponent", "", "also report the loss share against this opponent")
}
