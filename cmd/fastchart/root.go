// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/core/base/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fastchart",
		Short:        "Render candlestick charts from CSV files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(viper.GetString("log-level"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("theme", "light", "built-in theme name or theme file (.toml, .yaml)")
	pf.Int("width", 1280, "image width in pixels")
	pf.Int("height", 720, "image height in pixels")
	pf.Int("visible", 120, "number of candles in view")
	pf.String("date-layout", "01-02", "time layout of the date labels")
	pf.StringP("output", "o", "chart.png", "output image; the format follows the extension")
	errors.Log(viper.BindPFlags(pf))

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newWatchCmd())
	return cmd
}

// optionsFromConfig returns the chart options from flags, environment
// and config file.
func optionsFromConfig() chartOptions {
	return chartOptions{
		Width:      viper.GetInt("width"),
		Height:     viper.GetInt("height"),
		Visible:    viper.GetInt("visible"),
		Theme:      viper.GetString("theme"),
		DateLayout: viper.GetString("date-layout"),
	}
}
