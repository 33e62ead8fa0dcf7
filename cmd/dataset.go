package cmd

import (
	"fmt"

	"github.com/KaramelBytes/statloom-cli/internal/dataset"
	"github.com/KaramelBytes/statloom-cli/internal/workspace"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	dsDelimiter string
	dsSheet     string
	dsNoCheck   bool
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage named datasets",
}

var datasetAddCmd = &cobra.Command{
	Use:   "add <name> <file>",
	Short: "Register a match file under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := workspace.Open(cfg.DatasetsDir)
		if err != nil {
			return err
		}
		e, err := reg.Add(args[0], args[1], dsDelimiter, dsSheet)
		if err != nil {
			return err
		}
		rows := -1
		if !dsNoCheck {
			delim, err := dataset.ParseDelimiter(e.Delimiter)
			if err != nil {
				return err
			}
			col, err := dataset.Load(e.Path, dataset.Options{Delimiter: delim, Sheet: e.Sheet})
			if err != nil {
				return errors.Wrapf(err, "dataset %s does not load", e.Name)
			}
			rows = col.Len()
		}
		if err := reg.Save(); err != nil {
			return err
		}
		if rows >= 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added dataset %s (%d matches) -> %s\n", e.Name, rows, e.Path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added dataset %s -> %s\n", e.Name, e.Path)
		}
		return nil
	},
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := workspace.Open(cfg.DatasetsDir)
		if err != nil {
			return err
		}
		r, err := newRenderer(cmd)
		if err != nil {
			return err
		}
		return r.Render(reg.List())
	},
}

var datasetRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Forget a registered dataset (the file is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := workspace.Open(cfg.DatasetsDir)
		if err != nil {
			return err
		}
		if err := reg.Remove(args[0]); err != nil {
			return err
		}
		if err := reg.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed dataset %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetAddCmd)
	datasetCmd.AddCommand(datasetListCmd)
	datasetCmd.AddCommand(datasetRemoveCmd)

	datasetAddCmd.Flags().StringVar(&dsDelimiter, "csv-delimiter", "", "CSV delimiter stored with the dataset")
	datasetAddCmd.Flags().StringVar(&dsSheet, "xlsx-sheet", "", "XLSX sheet stored with the dataset")
	datasetAddCmd.Flags().BoolVar(&dsNoCheck, "no-check", false, "register without loading the file")
}
