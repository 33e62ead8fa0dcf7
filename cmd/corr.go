package cmd

import (
	"github.com/KaramelBytes/statloom-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	corrLeague string
	corrSeason string
)

var corrCmd = &cobra.Command{
	Use:   "corr",
	Short: "Correlation matrix of goals and ball possession",
	Long: `Pearson correlation between home/away goals, first half goals and ball possession.
Rows with a missing possession value are left out of the whole matrix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := loadMatches()
		if err != nil {
			return err
		}
		rep, err := report.Correlation(all, corrLeague, corrSeason)
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
	rootCmd.AddCommand(corrCmd)
	corrCmd.Flags().StringVarP(&corrLeague, "league", "l", "", "restrict to one league")
	corrCmd.Flags().StringVarP(&corrSeason, "season", "s", "", "restrict to one season")
}
