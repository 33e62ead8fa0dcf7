package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/statloom-cli/internal/config"
	"github.com/KaramelBytes/statloom-cli/internal/logging"
	"github.com/KaramelBytes/statloom-cli/internal/render"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagFile      string
	flagDataset   string
	flagDelimiter string
	flagSheet     string
	flagFormat    string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "statloom",
	Short: "Statloom CLI: explore football match statistics",
	Long: `Statloom loads a table of football matches (CSV or XLSX) and answers questions about it:
head-to-head records, team profiles, league versus overall comparisons and correlations
between in-match statistics.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	err := rootCmd.Execute()
	_ = logging.Default().Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.SilenceErrors = true
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ~/.statloom/config.yaml)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")
	pf.StringVarP(&flagFile, "file", "f", "", "match data file (.csv or .xlsx)")
	pf.StringVarP(&flagDataset, "dataset", "d", "", "registered dataset name (see 'statloom dataset')")
	pf.StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter (overrides config)")
	pf.StringVar(&flagSheet, "sheet", "", "XLSX sheet name (default first sheet)")
	pf.StringVarP(&flagFormat, "format", "o", "", "output format: text, json or yaml (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so commands can still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c
	setupLogger()
}

func setupLogger() {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.LevelWarn
	}
	if debug {
		level = logging.LevelDebug
	}
	l, err := logging.New(logging.Options{Level: level, Format: cfg.LogFormat, Writer: rootCmd.ErrOrStderr()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v\n", err)
		return
	}
	logging.SetDefault(l)
}

// newRenderer returns a renderer on the command's stdout honoring --format.
func newRenderer(cmd *cobra.Command) (*render.Renderer, error) {
	name := cfg.OutputFormat
	if flagFormat != "" {
		name = flagFormat
	}
	f, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	color := cfg.Color && f == render.Text && os.Getenv("NO_COLOR") == ""
	return render.New(cmd.OutOrStdout(), f, color), nil
}
