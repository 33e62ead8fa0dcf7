package cmd

import (
	"time"

	"github.com/KaramelBytes/statloom-cli/internal/logging"
	"github.com/KaramelBytes/statloom-cli/internal/report"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	leagueName    string
	leagueAll     bool
	leagueWorkers int
)

var leagueCmd = &cobra.Command{
	Use:   "league",
	Short: "Compare a league against the whole dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (leagueName == "") == !leagueAll {
			return errors.New("specify exactly one of --league or --all")
		}
		all, err := loadMatches()
		if err != nil {
			return err
		}
		r, err := newRenderer(cmd)
		if err != nil {
			return err
		}
		cmp := report.NewComparer(all)
		if !leagueAll {
			rep, err := cmp.League(leagueName)
			if err != nil {
				return softFail(cmd, err)
			}
			return r.Render(rep)
		}
		workers := cfg.Workers
		if cmd.Flags().Changed("workers") {
			workers = leagueWorkers
		}
		start := time.Now()
		reps, err := cmp.All(workers)
		if err != nil {
			return err
		}
		logging.Default().Debug("compared leagues", "leagues", len(reps), "workers", workers, "elapsed", time.Since(start))
		return r.Render(reps)
	},
}

func init() {
	rootCmd.AddCommand(leagueCmd)
	leagueCmd.Flags().StringVarP(&leagueName, "league", "l", "", "league name")
	leagueCmd.Flags().BoolVar(&leagueAll, "all", false, "compare every league")
	leagueCmd.Flags().IntVar(&leagueWorkers, "workers", 0, "parallel league comparisons (0 = GOMAXPROCS; overrides config)")
}
