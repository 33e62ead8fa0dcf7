package cmd

import (
	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/report"
	"github.com/KaramelBytes/statloom-cli/internal/stats"
	"github.com/spf13/cobra"
)

var (
	describeFields  []string
	describeGroupBy string
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Count, mean, min, max and spread of numeric fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := make([]stats.Field, 0, len(describeFields))
		for _, s := range describeFields {
			f, err := stats.ParseField(s)
			if err != nil {
				return err
			}
			fields = append(fields, f)
		}
		var groupBy filter.Field
		if describeGroupBy != "" {
			f, err := filter.ParseField(describeGroupBy)
			if err != nil {
				return err
			}
			groupBy = f
		}
		all, err := loadMatches()
		if err != nil {
			return err
		}
		r, err := newRenderer(cmd)
		if err != nil {
			return err
		}
		return r.Render(report.Describe(all, groupBy, fields...))
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringSliceVar(&describeFields, "field", nil, "numeric field to summarize (repeatable; default all)")
	describeCmd.Flags().StringVar(&describeGroupBy, "group-by", "", "summarize per league, season, home_team, away_team or winner")
}
