package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/santaviz/app"
	"github.com/kilianp07/santaviz/config"
	"github.com/kilianp07/santaviz/infra/logger"
)

type options struct {
	config   string
	index    int
	families string
	output   string
	html     bool
	noExport bool
}

// NewRootCmd builds the santaviz command.
func NewRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "santaviz <input_file>",
		Short: "Plot day occupancy and choice ranks of a family assignment",
		Long: `santaviz reads one assignment of families to days from a results file,
joins it with the family preference table and writes occupancy.pdf and
choices.pdf into the output directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, opts, args[0])
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.index, "index", "i", 0, "zero-based line of the record to plot")
	f.StringVar(&opts.families, "families", "family_data.csv", "family preference table")
	f.StringVarP(&opts.output, "output", "o", "fig", "output directory")
	f.BoolVar(&opts.html, "html", false, "also write interactive HTML charts")
	f.BoolVar(&opts.noExport, "no-export", false, "skip summary.json and occupancy.csv")
	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "configuration file (yaml or json)")
	return cmd
}

// Execute runs the CLI.
func Execute() error { return NewRootCmd().Execute() }

// resolve loads the configuration and applies the flags set on the command
// line on top of it.
func resolve(cmd *cobra.Command, opts options, input string) (*config.Config, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.Input.Path = input
	f := cmd.Flags()
	if f.Changed("index") {
		cfg.Input.Index = opts.index
	}
	if f.Changed("families") {
		cfg.Input.Families = opts.families
	}
	if f.Changed("output") {
		cfg.Output.Dir = opts.output
	}
	if f.Changed("html") {
		cfg.Output.HTML = opts.html
	}
	if f.Changed("no-export") {
		cfg.Output.SkipExport = opts.noExport
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	if err := logger.Setup(cfg.Logging); err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	r, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.New("main").Errorf("runner close: %v", err)
		}
	}()
	_, err = r.Run()
	return err
}
