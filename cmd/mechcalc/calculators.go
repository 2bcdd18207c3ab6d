package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/san-kum/mechcalc/internal/config"
	"github.com/san-kum/mechcalc/internal/export"
	"github.com/san-kum/mechcalc/internal/mech"
	"github.com/san-kum/mechcalc/internal/thermo"
	"github.com/san-kum/mechcalc/internal/viz"
)

// sweepSamples is the point count for shaft and transmission sweeps.
const sweepSamples = 100

var (
	shaftDiameter float64
	beamX         float64
	transKind     string
)

func newCycleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "cycle [otto|diesel]",
		Short:     "ideal Otto and Diesel air-standard cycles",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(thermo.Otto), string(thermo.Diesel)},
		RunE:      runCycle,
	}
	cmd.Flags().Float64("v1", 0, "volume at start of compression (m³)")
	cmd.Flags().Float64("t1", 0, "temperature at start of compression (K)")
	cmd.Flags().Float64("p1", 0, "pressure at start of compression (Pa)")
	cmd.Flags().Float64("rc", 0, "compression ratio")
	cmd.Flags().Float64("q", 0, "heat added, Otto (J/kg)")
	cmd.Flags().Float64("cutoff", 0, "cut-off ratio, Diesel")
	cmd.Flags().Int("samples", 0, "points per isentrope")
	addOutputFlags(cmd)
	return cmd
}

func runCycle(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("cycle")
	if err != nil {
		return err
	}
	c := &cfg.Cycle
	if len(args) == 1 {
		c.Kind = args[0]
	}
	if err := overrideFloats(cmd, map[string]*float64{
		"v1":     &c.V1,
		"t1":     &c.T1,
		"p1":     &c.P1,
		"rc":     &c.CompressionRatio,
		"q":      &c.Heat,
		"cutoff": &c.CutoffRatio,
	}); err != nil {
		return err
	}
	if err := overrideInt(cmd, "samples", &c.Samples); err != nil {
		return err
	}

	cycle, err := c.Cycle()
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s cycle", cycle.Kind)
	r := viz.NewReport(title).Value("Compression ratio", cycle.CompressionRatio, "")
	if cycle.Kind == thermo.Diesel {
		r.Value("Cut-off ratio", cycle.CutoffRatio, "")
	}
	for i, s := range cycle.States {
		r.Text(fmt.Sprintf("State %d", i+1), fmt.Sprintf("V=%.4g T=%.1f P=%.4g", s.V, s.T, s.P), "m³ K Pa")
	}
	r.Value("Heat in", cycle.HeatIn(), "J/kg").
		Value("Heat out", cycle.HeatOut(), "J/kg").
		Value("Net work", cycle.Work(), "J/kg").
		Value("Efficiency", cycle.Efficiency, "")

	w := cmd.OutOrStdout()
	if err := r.Render(w); err != nil {
		return err
	}
	if !plotTerm && outFile == "" {
		return nil
	}

	series, err := cycle.Series(c.Samples)
	if err != nil {
		return err
	}
	return writeOutputs(w, series, chartAll(cfg, series, true), pvChartOptions(title))
}

func newShaftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shaft",
		Short: "solid shaft sizing in torsion",
		Args:  cobra.NoArgs,
		RunE:  runShaft,
	}
	cmd.Flags().Float64("torque", 0, "applied torque (N·m)")
	cmd.Flags().Float64("yield", 0, "yield strength Re (Pa)")
	cmd.Flags().Float64("safety", 0, "safety factor")
	cmd.Flags().Float64Var(&shaftDiameter, "d", 0, "check shear stress at this diameter (m)")
	addOutputFlags(cmd)
	return cmd
}

func runShaft(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("shaft")
	if err != nil {
		return err
	}
	c := &cfg.Shaft
	if err := overrideFloats(cmd, map[string]*float64{
		"torque": &c.Torque,
		"yield":  &c.Yield,
		"safety": &c.Safety,
	}); err != nil {
		return err
	}

	s, err := c.Shaft()
	if err != nil {
		return err
	}
	d := s.MinDiameter()
	r := viz.NewReport("Shaft").
		Value("Torque", s.Torque(), "N·m").
		Value("Yield strength", s.Yield(), "Pa").
		Value("Safety factor", s.Safety(), "").
		Value("Allowable shear", s.AllowableShear(), "Pa").
		Value("Minimum diameter", d*1000, "mm")
	if cmd.Flags().Changed("d") {
		tau, err := s.ShearStress(shaftDiameter)
		if err != nil {
			return err
		}
		r.Value("Shear stress", tau, "Pa")
		if tau > s.AllowableShear() {
			r.Warn(fmt.Sprintf("diameter %.4g m is below the minimum", shaftDiameter))
		}
	}

	w := cmd.OutOrStdout()
	if err := r.Render(w); err != nil {
		return err
	}
	if !plotTerm && outFile == "" {
		return nil
	}

	series, err := s.Series(d/2, 2*d, sweepSamples)
	if err != nil {
		return err
	}
	return writeOutputs(w, series, chartAll(cfg, series, false), overlayChartOptions("Shaft"))
}

func newBeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beam",
		Short: "simply supported beam under uniform load",
		Args:  cobra.NoArgs,
		RunE:  runBeam,
	}
	cmd.Flags().Float64("length", 0, "span L (m)")
	cmd.Flags().Float64("young", 0, "Young's modulus E (Pa)")
	cmd.Flags().Float64("width", 0, "section width b (m)")
	cmd.Flags().Float64("height", 0, "section height h (m)")
	cmd.Flags().Float64("load", 0, "distributed load q (N/m)")
	cmd.Flags().Int("samples", 0, "points along the span")
	cmd.Flags().Float64Var(&beamX, "x", 0, "evaluate deflection at this position (m)")
	addOutputFlags(cmd)
	return cmd
}

func runBeam(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("beam")
	if err != nil {
		return err
	}
	c := &cfg.Beam
	if err := overrideFloats(cmd, map[string]*float64{
		"length": &c.Length,
		"young":  &c.Young,
		"width":  &c.Width,
		"height": &c.Height,
		"load":   &c.Load,
	}); err != nil {
		return err
	}
	if err := overrideInt(cmd, "samples", &c.Samples); err != nil {
		return err
	}

	b, err := c.Beam()
	if err != nil {
		return err
	}
	stress, err := b.MaxStress(c.Height)
	if err != nil {
		return err
	}
	r := viz.NewReport("Beam").
		Value("Span", b.Length(), "m").
		Value("Second moment", b.Inertia(), "m⁴").
		Value("Max deflection", b.MaxDeflection()*1000, "mm").
		Value("Max moment", b.MaxMoment(), "N·m").
		Value("Max stress", stress, "Pa")
	if cmd.Flags().Changed("x") {
		y, err := b.Deflection(beamX)
		if err != nil {
			return err
		}
		r.Value(fmt.Sprintf("Deflection at %.4g m", beamX), y*1000, "mm")
	}

	w := cmd.OutOrStdout()
	if err := r.Render(w); err != nil {
		return err
	}
	if !plotTerm && outFile == "" {
		return nil
	}

	series, err := b.Series(c.Samples)
	if err != nil {
		return err
	}
	return writeOutputs(w, series, chartAll(cfg, series, false), export.DefaultChartOptions("Beam"))
}

func newTransCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trans",
		Aliases: []string{"transmission"},
		Short:   "belt and chain drives",
		Args:    cobra.NoArgs,
		RunE:    runTrans,
	}
	cmd.Flags().Float64("d1", 0, "driving pulley/sprocket diameter")
	cmd.Flags().Float64("d2", 0, "driven pulley/sprocket diameter")
	cmd.Flags().StringVar(&transKind, "kind", "", "drive kind (belt, chain)")
	cmd.Flags().Float64("n1", 0, "input speed (rpm)")
	cmd.Flags().Float64("c1", 0, "input torque (N·m)")
	cmd.Flags().Float64("eff", 0, "efficiency (0, 1]")
	cmd.Flags().Float64("nmin", 0, "sweep start speed (rpm)")
	cmd.Flags().Float64("nmax", 0, "sweep end speed (rpm)")
	addOutputFlags(cmd)
	return cmd
}

func runTrans(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig("transmission")
	if err != nil {
		return err
	}
	c := &cfg.Transmission
	if cmd.Flags().Changed("kind") {
		c.Kind = transKind
	}
	if err := overrideFloats(cmd, map[string]*float64{
		"d1":   &c.D1,
		"d2":   &c.D2,
		"n1":   &c.InputSpeed,
		"c1":   &c.Torque,
		"eff":  &c.Efficiency,
		"nmin": &c.SpeedMin,
		"nmax": &c.SpeedMax,
	}); err != nil {
		return err
	}

	d, err := c.Drive()
	if err != nil {
		return err
	}
	torque, err := d.OutputTorque(c.Torque, c.Efficiency)
	if err != nil {
		return err
	}
	power, err := d.Power(c.InputSpeed, c.Torque, c.Efficiency)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s drive", d.Kind())
	r := viz.NewReport(title).
		Value("Ratio", d.Ratio(), "").
		Value("Input speed", c.InputSpeed, "rpm").
		Value("Output speed", d.OutputSpeed(c.InputSpeed), "rpm").
		Value("Output torque", torque, "N·m").
		Value("Power", power, "W")

	w := cmd.OutOrStdout()
	if err := r.Render(w); err != nil {
		return err
	}
	if !plotTerm && outFile == "" {
		return nil
	}

	series, err := d.Series(c.SpeedMin, c.SpeedMax, sweepSamples)
	if err != nil {
		return err
	}
	return writeOutputs(w, series, chartAll(cfg, series, false), export.DefaultChartOptions(title))
}

// chartAll overlays every series in one XY frame.
func chartAll(cfg *config.Config, series []mech.Series, logAxes bool) func(io.Writer) error {
	opts := plotOptions(cfg)
	scatter := viz.ScatterOptions{Width: opts.Width, Height: opts.Height * 2, LogX: logAxes, LogY: logAxes}
	return func(w io.Writer) error {
		_, err := io.WriteString(w, viz.Scatter(series, scatter)+"\n")
		return err
	}
}

// overlayChartOptions draws all series in one panel with a legend, for a
// curve shown against its limit.
func overlayChartOptions(title string) export.ChartOptions {
	opts := export.DefaultChartOptions(title)
	opts.Overlay = true
	return opts
}

// pvChartOptions draws the four legs of a cycle as one log-log PV diagram.
func pvChartOptions(title string) export.ChartOptions {
	opts := overlayChartOptions(title)
	opts.LogX = true
	opts.LogY = true
	return opts
}
