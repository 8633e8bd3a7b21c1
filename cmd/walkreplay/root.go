// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wuc656/walkctl"
	"github.com/wuc656/walkctl/internal/replay"
)

var version = "dev" // set with -ldflags at build time

// errFailed reports failed expectations after the report has been printed.
var errFailed = errors.New("expectations failed")

// Config holds the values of the persistent flags.
type Config struct {
	SettingsPath string
	Verbose      bool
	NoColor      bool
}

func configFromFlags(cmd *cobra.Command) (*Config, error) {
	flags := cmd.Flags()

	settingsPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return nil, err
	}

	return &Config{SettingsPath: settingsPath, Verbose: verbose, NoColor: noColor}, nil
}

// settings loads the configured settings file. The verbose flag overrides
// the file.
func (cfg *Config) settings() (walkctl.Settings, error) {
	s, err := walkctl.LoadSettings(cfg.SettingsPath)
	if err != nil {
		return s, err
	}
	if cfg.Verbose {
		s.Log.Verbose = true
	}
	return s, nil
}

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "walkreplay",
		Short:         "walkreplay - replay input scenarios against simulated controls",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.PersistentFlags().StringP("config", "c", "walkctl.toml", "settings file")
	root.PersistentFlags().BoolP("verbose", "V", false, "enable verbose output")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")

	root.AddCommand(newRunCmd(), newCheckCmd(), newLogsCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>...",
		Short: "Replay scenarios and check their expectations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			return runScenarios(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args)
		},
	}
}

func runScenarios(out, errOut io.Writer, cfg *Config, paths []string) error {
	settings, err := cfg.settings()
	if err != nil {
		return err
	}

	log, closeLog, err := walkctl.OpenLog(settings.Log, errOut)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer closeLog()

	failed := 0
	for _, path := range paths {
		sc, err := replay.Load(path)
		if err != nil {
			log.Error("failed to load scenario", "path", path, "error", err)
			return err
		}

		log.Debug("running scenario", "name", sc.Name, "path", filepath.Clean(path))
		report, err := replay.Run(sc, replay.Options{Settings: settings, Logger: log})
		if err != nil {
			log.Error("scenario aborted", "name", sc.Name, "error", err)
			return fmt.Errorf("%s: %w", sc.Name, err)
		}

		report.Print(out)
		if !report.Passed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios: %w", failed, len(paths), errFailed)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Validate scenarios without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				if _, err := replay.Load(path); err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s ok\n", path)
			}
			return errors.Join(errs...)
		},
	}
}

func newLogsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Print the current log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			settings, err := cfg.settings()
			if err != nil {
				return err
			}
			return walkctl.DumpLog(cmd.OutOrStdout(), settings.Log)
		},
	}
}
