package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/san-kum/mechcalc/internal/config"
	"github.com/san-kum/mechcalc/internal/export"
	"github.com/san-kum/mechcalc/internal/mech"
	"github.com/san-kum/mechcalc/internal/viz"
)

var (
	configFile string
	preset     string
	noColor    bool
	theme      string

	// output flags shared by the calculator commands
	plotTerm bool
	outFile  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mechcalc",
		Short:        "mechanical engineering calculators",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				viz.DisableColor()
			}
			if cmd.Flags().Changed("theme") {
				if !slices.Contains(viz.ThemeNames(), theme) {
					return fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
				}
				viz.SetTheme(theme)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "blueprint", "color theme")

	rootCmd.AddCommand(
		newCrankCmd(),
		newCycleCmd(),
		newShaftCmd(),
		newBeamCmd(),
		newTransCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

// addOutputFlags registers --plot and --out on a calculator command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&plotTerm, "plot", false, "print terminal charts")
	cmd.Flags().StringVar(&outFile, "out", "", "write data or chart to file (.csv .json .xlsx .png .svg .pdf)")
}

// resolveConfig layers defaults, --preset and --config for calculator.
func resolveConfig(calculator string) (*config.Config, error) {
	cfg, err := config.Resolve(configFile, calculator, preset)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// overrideFloat copies flag name into dst when it was set explicitly.
func overrideFloat(cmd *cobra.Command, name string, dst *float64) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func overrideInt(cmd *cobra.Command, name string, dst *int) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func overrideFloats(cmd *cobra.Command, targets map[string]*float64) error {
	for name, dst := range targets {
		if err := overrideFloat(cmd, name, dst); err != nil {
			return err
		}
	}
	return nil
}

func plotOptions(cfg *config.Config) viz.PlotOptions {
	opts := viz.DefaultPlotOptions()
	if cfg.Plot.Width > 0 {
		opts.Width = cfg.Plot.Width
	}
	if cfg.Plot.Height > 0 {
		opts.Height = cfg.Plot.Height
	}
	opts.Color = !noColor
	return opts
}

// writeOutputs handles --plot and --out once the report is printed. chart
// renders the terminal view of series; opts lays out file charts.
func writeOutputs(w io.Writer, series []mech.Series, chart func(io.Writer) error, opts export.ChartOptions) error {
	if plotTerm {
		fmt.Fprintln(w)
		if err := chart(w); err != nil {
			return err
		}
	}
	if outFile != "" {
		if err := export.Save(outFile, opts.Title, series, opts); err != nil {
			return err
		}
		fmt.Fprintf(w, "wrote %s\n", outFile)
	}
	return nil
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [calculator]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			calculators := config.Calculators()
			if len(args) == 1 {
				calculators = []string{presetKey(args[0])}
			}
			for _, calc := range calculators {
				presets := config.ListPresets(calc)
				if len(presets) == 0 {
					fmt.Fprintf(w, "no presets for calculator: %s\n", calc)
					continue
				}
				fmt.Fprintf(w, "presets for %s:\n", calc)
				for _, p := range presets {
					fmt.Fprintf(w, "  %s\n", p)
				}
			}
			return nil
		},
	}
}

// presetKey maps command names onto preset sections.
func presetKey(name string) string {
	if name == "trans" {
		return "transmission"
	}
	return name
}
