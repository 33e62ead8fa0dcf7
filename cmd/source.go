package cmd

import (
	"fmt"

	"github.com/KaramelBytes/statloom-cli/internal/dataset"
	"github.com/KaramelBytes/statloom-cli/internal/logging"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/render"
	"github.com/KaramelBytes/statloom-cli/internal/utils"
	"github.com/KaramelBytes/statloom-cli/internal/workspace"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var errNoSource = errors.New("no data source: pass --file or --dataset, or set data_file with 'statloom config set'")

// resolveSource picks the data file and read options. Precedence:
// --file > --dataset > data_file. Explicit --delimiter/--sheet win over
// registered and configured values.
func resolveSource() (string, dataset.Options, error) {
	path := cfg.DataFile
	opts := dataset.Options{Delimiter: cfg.DelimiterRune(), Sheet: cfg.Sheet}
	switch {
	case flagFile != "":
		path = flagFile
	case flagDataset != "":
		reg, err := workspace.Open(cfg.DatasetsDir)
		if err != nil {
			return "", dataset.Options{}, err
		}
		e, err := reg.Get(flagDataset)
		if err != nil {
			return "", dataset.Options{}, err
		}
		path = e.Path
		if e.Delimiter != "" {
			if opts.Delimiter, err = dataset.ParseDelimiter(e.Delimiter); err != nil {
				return "", dataset.Options{}, errors.Wrapf(err, "dataset %s", e.Name)
			}
		}
		if e.Sheet != "" {
			opts.Sheet = e.Sheet
		}
	}
	if path == "" {
		return "", dataset.Options{}, errNoSource
	}
	path, err := utils.ExpandHome(path)
	if err != nil {
		return "", dataset.Options{}, err
	}
	if flagDelimiter != "" {
		if opts.Delimiter, err = dataset.ParseDelimiter(flagDelimiter); err != nil {
			return "", dataset.Options{}, err
		}
	}
	if flagSheet != "" {
		opts.Sheet = flagSheet
	}
	return path, opts, nil
}

// loadMatches loads the selected source and returns all of its records.
func loadMatches() (match.Subset, error) {
	path, opts, err := resolveSource()
	if err != nil {
		return nil, err
	}
	col, err := dataset.NewStore(path, opts).Get()
	if err != nil {
		return nil, err
	}
	logging.Default().Debug("using dataset", "id", col.ID(), "source", col.Source(),
		"rows", col.Len(), "loaded_at", col.LoadedAt())
	return col.All(), nil
}

// softFail turns recoverable query errors into a warning on stderr: missing
// data prints the placeholder, an unknown value is reported as an empty
// result. Anything else is returned.
func softFail(cmd *cobra.Command, err error) error {
	switch {
	case err == nil:
		return nil
	case match.IsNoData(err):
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠ %s: %v\n", render.Placeholder, err)
		return nil
	case errors.Is(err, match.ErrInvalidFilter):
		fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %v\n", err)
		return nil
	default:
		return err
	}
}
