// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fastchart renders candlestick charts from CSV files, either
// once to an image or continuously while the file grows.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func main() {
	cmd := newRootCmd()
	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fastchart.yaml)")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads the config file and FASTCHART_ environment
// variables, which viper merges under the command line flags.
func initConfig() {
	viper.SetEnvPrefix("fastchart")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			slog.Warn("no home directory for the config file", "err", err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".fastchart")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &nf) {
			fmt.Fprintln(os.Stderr, "Can't read config:", err)
			os.Exit(1)
		}
	}
}

// setupLogging installs a charmbracelet logger as the slog default.
func setupLogging(level string) error {
	lv, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lv,
		ReportTimestamp: true,
		Prefix:          "fastchart",
	})
	slog.SetDefault(slog.New(logger))
	return nil
}
