package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/mechcalc/internal/config"
)

var forceInit bool

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "create or check config files",
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !forceInit {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing file")

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "load a config file and validate every section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			return checkSections(cmd, cfg)
		},
	}

	configCmd.AddCommand(initCmd, checkCmd)
	return configCmd
}

// checkSections builds each calculator from cfg and reports the first
// section that fails validation.
func checkSections(cmd *cobra.Command, cfg *config.Config) error {
	sections := []struct {
		name  string
		build func() error
	}{
		{"crank", func() error { _, err := cfg.Crank.Model(); return err }},
		{"cycle", func() error { _, err := cfg.Cycle.Cycle(); return err }},
		{"shaft", func() error { _, err := cfg.Shaft.Shaft(); return err }},
		{"beam", func() error { _, err := cfg.Beam.Beam(); return err }},
		{"transmission", func() error { _, err := cfg.Transmission.Drive(); return err }},
	}
	for _, s := range sections {
		if err := s.build(); err != nil {
			return fmt.Errorf("section %s: %w", s.name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-13s ok\n", s.name)
	}
	return nil
}
