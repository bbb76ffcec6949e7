// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"animdocs/internal/config"
)

// ConfigFileEnv names a config file when --config is not given.
const ConfigFileEnv = config.EnvPrefix + "_CONFIG_FILE"

// app carries the state shared by every subcommand once the root's
// PersistentPreRunE has run.
type app struct {
	configFile string
	v          *viper.Viper
	cfg        *config.Config
	level      *slog.LevelVar
}

// flagKeys maps command-line flags to config keys. Only flags the running
// command defines are bound.
var flagKeys = map[string]string{
	"host":      "host",
	"port":      "port",
	"log-level": "log_level",
	"env":       "env",
}

func newRootCmd() *cobra.Command {
	a := &app{level: new(slog.LevelVar)}

	root := &cobra.Command{
		Use:   "animdocs",
		Short: "Documentation site for the animation library",
		Long: `AnimDocs serves the documentation site for the animation library:
homepage, API reference, guides, examples gallery and search.

Configuration is read, in order of priority, from command-line flags,
ANIMDOCS_* environment variables and an optional YAML file given with
--config or ANIMDOCS_CONFIG_FILE.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (YAML); also "+ConfigFileEnv)
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(a),
		newExportCmd(a),
		newRoutesCmd(a),
		newVersionCmd(),
	)
	return root
}

// load reads the configuration and installs the default logger.
func (a *app) load(cmd *cobra.Command) error {
	file := a.configFile
	if file == "" {
		file = os.Getenv(ConfigFileEnv)
	}

	v, err := config.NewViper(file)
	if err != nil {
		return err
	}
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.v, a.cfg = v, cfg

	level, _ := config.ParseLevel(cfg.LogLevel)
	a.level.Set(level)
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg.IsDev(), a.level))
	return nil
}

// newLogger outputs text in development and JSON otherwise.
func newLogger(w io.Writer, dev bool, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if dev {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
