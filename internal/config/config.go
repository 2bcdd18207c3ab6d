package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mechcalc/internal/beam"
	"github.com/san-kum/mechcalc/internal/crank"
	"github.com/san-kum/mechcalc/internal/shaft"
	"github.com/san-kum/mechcalc/internal/thermo"
	"github.com/san-kum/mechcalc/internal/transmission"
)

const (
	DefaultSamples     = 1000
	DefaultCrankRadius = 0.05
	DefaultRodLength   = 0.2
	DefaultOmega       = 50.0
	DefaultChartWidth  = 80
	DefaultChartHeight = 10
)

type Config struct {
	Crank        CrankConfig        `yaml:"crank"`
	Cycle        CycleConfig        `yaml:"cycle"`
	Shaft        ShaftConfig        `yaml:"shaft"`
	Beam         BeamConfig         `yaml:"beam"`
	Transmission TransmissionConfig `yaml:"transmission"`
	Plot         PlotConfig         `yaml:"plot"`
}

type CrankConfig struct {
	CrankRadius float64 `yaml:"crank_radius"`
	RodLength   float64 `yaml:"rod_length"`
	Omega       float64 `yaml:"omega"`
	Samples     int     `yaml:"samples"`
	Cycles      float64 `yaml:"cycles"`
}

type CycleConfig struct {
	Kind             string  `yaml:"kind"`
	V1               float64 `yaml:"v1"`
	T1               float64 `yaml:"t1"`
	P1               float64 `yaml:"p1"`
	CompressionRatio float64 `yaml:"compression_ratio"`
	Heat             float64 `yaml:"heat"`
	CutoffRatio      float64 `yaml:"cutoff_ratio"`
	Samples          int     `yaml:"samples"`
}

type ShaftConfig struct {
	Torque float64 `yaml:"torque"`
	Yield  float64 `yaml:"yield"`
	Safety float64 `yaml:"safety"`
}

type BeamConfig struct {
	Length  float64 `yaml:"length"`
	Young   float64 `yaml:"young"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Load    float64 `yaml:"load"`
	Samples int     `yaml:"samples"`
}

type TransmissionConfig struct {
	Kind       string  `yaml:"kind"`
	D1         float64 `yaml:"d1"`
	D2         float64 `yaml:"d2"`
	InputSpeed float64 `yaml:"input_speed"`
	Torque     float64 `yaml:"torque"`
	Efficiency float64 `yaml:"efficiency"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Crank: CrankConfig{
			CrankRadius: DefaultCrankRadius,
			RodLength:   DefaultRodLength,
			Omega:       DefaultOmega,
			Samples:     DefaultSamples,
			Cycles:      crank.DefaultCycles,
		},
		Cycle: CycleConfig{
			Kind:             string(thermo.Otto),
			V1:               0.0005,
			T1:               300,
			P1:               101325,
			CompressionRatio: 8,
			Heat:             1000,
			CutoffRatio:      2,
			Samples:          100,
		},
		Shaft: ShaftConfig{
			Torque: 1000,
			Yield:  400e6,
			Safety: shaft.DefaultSafety,
		},
		Beam: BeamConfig{
			Length:  2.0,
			Young:   210e9,
			Width:   0.05,
			Height:  0.1,
			Load:    1000,
			Samples: 100,
		},
		Transmission: TransmissionConfig{
			Kind:       string(transmission.Belt),
			D1:         100,
			D2:         200,
			InputSpeed: 1500,
			Torque:     50,
			Efficiency: transmission.DefaultEfficiency,
			SpeedMin:   500,
			SpeedMax:   3000,
		},
		Plot: PlotConfig{
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
	}
}

// Load reads a YAML file over the defaults; sections or keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve layers the sources for one calculator: defaults, then the named
// preset (if any), then the config file at path (if any).
func Resolve(path, calculator, preset string) (*Config, error) {
	cfg := DefaultConfig()
	if preset != "" {
		p := GetPreset(calculator, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown %s preset %q (available: %s)", calculator, preset, strings.Join(ListPresets(calculator), ", "))
		}
		cfg.Apply(calculator, p)
	}
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c CrankConfig) Model() (*crank.Model, error) {
	return crank.New(c.CrankRadius, c.RodLength, c.Omega)
}

func (c CycleConfig) Cycle() (*thermo.Cycle, error) {
	kind, err := thermo.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	in := thermo.Inlet{V: c.V1, T: c.T1, P: c.P1}
	if kind == thermo.Diesel {
		return thermo.NewDiesel(in, c.CompressionRatio, c.CutoffRatio)
	}
	return thermo.NewOtto(in, c.CompressionRatio, c.Heat)
}

func (c ShaftConfig) Shaft() (*shaft.Shaft, error) {
	return shaft.New(c.Torque, c.Yield, c.Safety)
}

func (c BeamConfig) Beam() (*beam.Beam, error) {
	inertia, err := beam.RectangleInertia(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	return beam.New(c.Length, c.Young, inertia, c.Load)
}

func (c TransmissionConfig) Drive() (*transmission.Drive, error) {
	kind, err := transmission.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	return transmission.New(c.D1, c.D2, kind)
}
