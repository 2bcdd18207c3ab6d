package config

import "sort"

// Presets holds named parameter sets per calculator. Each preset carries a
// complete section for its calculator; other sections are ignored.
var Presets = map[string]map[string]*Config{
	"crank": {
		"engine": {
			Crank: CrankConfig{CrankRadius: 0.05, RodLength: 0.2, Omega: 50, Samples: 1000, Cycles: 2},
		},
		"motorcycle": {
			Crank: CrankConfig{CrankRadius: 0.03, RodLength: 0.11, Omega: 1047, Samples: 1000, Cycles: 2},
		},
		"compressor": {
			Crank: CrankConfig{CrankRadius: 0.04, RodLength: 0.1, Omega: 150, Samples: 720, Cycles: 1},
		},
		"short_rod": {
			Crank: CrankConfig{CrankRadius: 0.1, RodLength: 0.15, Omega: 10, Samples: 1000, Cycles: 2},
		},
	},
	"cycle": {
		"otto": {
			Cycle: CycleConfig{Kind: "otto", V1: 0.0005, T1: 300, P1: 101325, CompressionRatio: 8, Heat: 1000, Samples: 100},
		},
		"otto_high": {
			Cycle: CycleConfig{Kind: "otto", V1: 0.0005, T1: 300, P1: 101325, CompressionRatio: 11, Heat: 1.8e6, Samples: 100},
		},
		"diesel": {
			Cycle: CycleConfig{Kind: "diesel", V1: 0.0005, T1: 300, P1: 101325, CompressionRatio: 8, CutoffRatio: 2, Samples: 100},
		},
		"diesel_truck": {
			Cycle: CycleConfig{Kind: "diesel", V1: 0.002, T1: 310, P1: 100e3, CompressionRatio: 18, CutoffRatio: 2.5, Samples: 100},
		},
	},
	"shaft": {
		"steel": {
			Shaft: ShaftConfig{Torque: 1000, Yield: 400e6, Safety: 2},
		},
		"aluminium": {
			Shaft: ShaftConfig{Torque: 200, Yield: 270e6, Safety: 3},
		},
	},
	"beam": {
		"steel": {
			Beam: BeamConfig{Length: 2, Young: 210e9, Width: 0.05, Height: 0.1, Load: 1000, Samples: 100},
		},
		"timber": {
			Beam: BeamConfig{Length: 4, Young: 11e9, Width: 0.075, Height: 0.225, Load: 1500, Samples: 100},
		},
	},
	"transmission": {
		"belt": {
			Transmission: TransmissionConfig{Kind: "belt", D1: 100, D2: 200, InputSpeed: 1500, Torque: 50, Efficiency: 0.95, SpeedMin: 500, SpeedMax: 3000},
		},
		"chain": {
			Transmission: TransmissionConfig{Kind: "chain", D1: 80, D2: 240, InputSpeed: 900, Torque: 120, Efficiency: 0.97, SpeedMin: 300, SpeedMax: 1800},
		},
	},
}

func GetPreset(calculator, preset string) *Config {
	calcPresets, ok := Presets[calculator]
	if !ok {
		return nil
	}
	cfg, ok := calcPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns preset names in sorted order.
func ListPresets(calculator string) []string {
	calcPresets, ok := Presets[calculator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(calcPresets))
	for name := range calcPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculators lists calculators that have presets.
func Calculators() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's section for calculator into c.
func (c *Config) Apply(calculator string, preset *Config) {
	switch calculator {
	case "crank":
		c.Crank = preset.Crank
	case "cycle":
		c.Cycle = preset.Cycle
	case "shaft":
		c.Shaft = preset.Shaft
	case "beam":
		c.Beam = preset.Beam
	case "transmission":
		c.Transmission = preset.Transmission
	}
}
