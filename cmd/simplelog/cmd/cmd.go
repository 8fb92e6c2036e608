// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ethersphere/simplelog/pkg/log"
)

const (
	optionNameVerbosity       = "verbosity"
	optionNameModuleLevel     = "module-level"
	optionNameColors          = "colors"
	optionNameColorPolicy     = "color-policy"
	optionNameTimestamps      = "timestamps"
	optionNameTimestampFormat = "timestamp-format"
	optionNameLocalTime       = "local-time"
	optionNameThreads         = "threads"
	optionNameGoroutineIDs    = "goroutine-ids"
	optionNameStderr          = "stderr"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	cfgFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "simplelog",
			Short:         "Console logging showcase",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	for _, o := range opts {
		o(c)
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()

	if err := c.initDemoCmd(); err != nil {
		return nil, err
	}

	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.simplelog.yaml)")
}

func (c *command) initConfig() (err error) {
	config := viper.New()
	configName := ".simplelog"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".simplelog" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("simplelog")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if c.homeDir != "" && c.cfgFile == "" {
		c.cfgFile = filepath.Join(c.homeDir, configName+".yaml")
	}

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

func (c *command) setAllFlags(cmd *cobra.Command) {
	cmd.Flags().String(optionNameVerbosity, "info", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
	cmd.Flags().StringSlice(optionNameModuleLevel, nil, "per module verbosity override, format target=level, can be repeated")
	cmd.Flags().Bool(optionNameColors, true, "color the level labels when the terminal supports it")
	cmd.Flags().String(optionNameColorPolicy, "stdout", "stream whose terminal capability gates colors, stdout or output")
	cmd.Flags().Bool(optionNameTimestamps, true, "start every line with a timestamp")
	cmd.Flags().String(optionNameTimestampFormat, "", "timestamp layout in Go time format syntax")
	cmd.Flags().Bool(optionNameLocalTime, false, "render timestamps in the local time zone instead of UTC")
	cmd.Flags().Bool(optionNameThreads, false, "include the emitting goroutine name in every line")
	cmd.Flags().Bool(optionNameGoroutineIDs, false, "fall back to the numeric goroutine id for unnamed goroutines")
	cmd.Flags().Bool(optionNameStderr, false, "write lines to standard error instead of standard output")
}

// newLoggerBuilder assembles a logger configuration from the command's
// resolved settings. The sink is bound to the command's output so tests can
// capture the emitted lines.
func newLoggerBuilder(cmd *cobra.Command, config *viper.Viper) (log.Builder, error) {
	b := log.New()

	verbosity := strings.ToLower(config.GetString(optionNameVerbosity))
	level, err := log.ParseLevel(verbosity)
	if err != nil {
		return b, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
	b = b.WithLevel(level)

	for _, pair := range config.GetStringSlice(optionNameModuleLevel) {
		target, value, found := strings.Cut(pair, "=")
		if !found || target == "" {
			return b, fmt.Errorf("invalid module level %q, expected format target=level", pair)
		}
		moduleLevel, err := log.ParseLevel(strings.ToLower(value))
		if err != nil {
			return b, fmt.Errorf("invalid module level %q: %w", pair, err)
		}
		b = b.WithModuleLevel(target, moduleLevel)
	}

	b = b.WithColors(config.GetBool(optionNameColors))
	switch policy := config.GetString(optionNameColorPolicy); policy {
	case "stdout":
		b = b.WithColorPolicy(log.ColorAlwaysCheckStdout)
	case "output":
		b = b.WithColorPolicy(log.ColorCheckOutputStream)
	default:
		return b, fmt.Errorf("unknown color policy %q, expected stdout or output", policy)
	}

	b = b.WithTimestamps(config.GetBool(optionNameTimestamps))
	if layout := config.GetString(optionNameTimestampFormat); layout != "" {
		b = b.WithTimestampFormat(layout)
	}
	if config.GetBool(optionNameLocalTime) {
		b = b.WithLocalTimestamps()
	}
	b = b.WithThreads(config.GetBool(optionNameThreads))
	b = b.WithGoroutineIDs(config.GetBool(optionNameGoroutineIDs))

	sink := cmd.OutOrStdout()
	if config.GetBool(optionNameStderr) {
		sink = cmd.ErrOrStderr()
	}
	return b.WithSink(sink), nil
}
