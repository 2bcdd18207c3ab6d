package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/san-kum/mechcalc/internal/crank"
	"github.com/san-kum/mechcalc/internal/export"
	"github.com/san-kum/mechcalc/internal/viz"
)

var (
	crankTheta   float64
	crankCSV     bool
	crankJSON    bool
	crankExplore bool
)

func newCrankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crank",
		Short: "slider-crank piston kinematics",
		Args:  cobra.NoArgs,
		RunE:  runCrank,
	}
	cmd.Flags().Float64("radius", 0, "crank radius r (m)")
	cmd.Flags().Float64("rod", 0, "connecting rod length L (m)")
	cmd.Flags().Float64("omega", 0, "angular velocity (rad/s)")
	cmd.Flags().Int("samples", 0, "number of samples")
	cmd.Flags().Float64("cycles", 0, "crank revolutions to sample")
	cmd.Flags().Float64Var(&crankTheta, "theta", 0, "evaluate a single crank angle (rad)")
	cmd.Flags().BoolVar(&crankCSV, "csv", false, "write samples as CSV to stdout")
	cmd.Flags().BoolVar(&crankJSON, "json", false, "write samples as JSON to stdout")
	cmd.Flags().BoolVar(&crankExplore, "explore", false, "open the interactive explorer")
	cmd.MarkFlagsMutuallyExclusive("csv", "json")
	addOutputFlags(cmd)
	return cmd
}

func runCrank(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("crank")
	if err != nil {
		return err
	}
	c := &cfg.Crank
	if err := overrideFloats(cmd, map[string]*float64{
		"radius": &c.CrankRadius,
		"rod":    &c.RodLength,
		"omega":  &c.Omega,
		"cycles": &c.Cycles,
	}); err != nil {
		return err
	}
	if err := overrideInt(cmd, "samples", &c.Samples); err != nil {
		return err
	}

	m, err := c.Model()
	if err != nil {
		return err
	}
	if crankExplore {
		return viz.RunExplorer(m)
	}

	w := cmd.OutOrStdout()
	if cmd.Flags().Changed("theta") {
		return crankPoint(m, crankTheta).Render(w)
	}

	samples, err := m.Samples(c.Samples, c.Cycles)
	if err != nil {
		return err
	}
	series := crank.Series(samples)

	switch {
	case crankCSV:
		t, err := export.SeriesTable(series)
		if err != nil {
			return err
		}
		return export.WriteCSV(w, t)
	case crankJSON:
		return export.WriteJSON(w, samples)
	}

	if err := crankReport(m, samples).Render(w); err != nil {
		return err
	}
	chart := func(w io.Writer) error {
		return viz.Plot(w, series, plotOptions(cfg))
	}
	return writeOutputs(w, series, chart, export.DefaultChartOptions("Slider-crank"))
}

func crankReport(m *crank.Model, samples []crank.Sample) *viz.Report {
	peaks := crank.Peaks(samples)
	positions := make([]float64, len(samples))
	for i, s := range samples {
		positions[i] = s.Position
	}
	r := viz.NewReport("Slider-crank").
		Value("Crank radius", m.CrankRadius(), "m").
		Value("Rod length", m.RodLength(), "m").
		Value("Ratio r/L", m.Ratio(), "").
		Value("Angular velocity", m.AngularVelocity(), "rad/s").
		Value("Stroke", m.Stroke(), "m").
		Text("Samples", fmt.Sprint(len(samples)), "").
		Value("Min position", peaks.MinPos, "m").
		Value("Max position", peaks.MaxPos, "m").
		Value("Max |velocity|", peaks.MaxSpeed, "m/s").
		Value("Max |acceleration|", peaks.MaxAccel, "m/s²").
		Text("Position trace", viz.SparklineChart(positions, 40), "")
	if m.AngularVelocity() == 0 {
		r.Warn("angular velocity is zero; velocity and acceleration vanish")
	}
	return r
}

func crankPoint(m *crank.Model, theta float64) *viz.Report {
	s := m.At(theta)
	return viz.NewReport("Slider-crank").
		Value("Crank angle", s.Theta, "rad").
		Value("Position", s.Position, "m").
		Value("Velocity", s.Velocity, "m/s").
		Value("Acceleration", s.Acceleration, "m/s²")
}
