// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file.csv>",
		Short: "Render the candles of a CSV file to an image",
		Long: `Render the candles of a CSV file to an image.

Rows are time,open,high,low,close[,volume]; time is unix seconds,
RFC 3339, "2006-01-02 15:04:05" or "2006-01-02".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cursor *image.Point
			if cmd.Flags().Changed("cursor") {
				pt, _ := cmd.Flags().GetIntSlice("cursor")
				if len(pt) == 2 {
					cursor = &image.Point{pt[0], pt[1]}
				}
			}
			return runRender(args[0], viper.GetString("output"), optionsFromConfig(), cursor)
		},
	}
	cmd.Flags().IntSlice("cursor", nil, "draw the cross-hair at pixel x,y")
	return cmd
}

func runRender(input, output string, opts chartOptions, cursor *image.Point) error {
	cs, err := readCandles(input)
	if err != nil {
		return err
	}
	cc, err := newCandleChart(opts)
	if err != nil {
		return err
	}
	if err := cc.append(cs...); err != nil {
		return err
	}
	if err := cc.showLast(); err != nil {
		return err
	}
	if cursor != nil {
		cc.group.Layout(image.Rectangle{Max: cc.size()})
		cc.group.PointerMove(*cursor)
	}
	if err := cc.render(output); err != nil {
		return err
	}
	slog.Info("wrote chart", "file", output, "candles", len(cs))
	return nil
}
