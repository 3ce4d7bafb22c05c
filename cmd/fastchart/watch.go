// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/fastchart/metrics"
	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file.csv>",
		Short: "Re-render the chart whenever candles are appended to a CSV file",
		Long: `Watch a CSV file and re-render the chart whenever candles are appended
to it. The view follows the newest candle while it is in view.
Render metrics are served for Prometheus if --listen is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			w := &watcher{
				input:  args[0],
				output: viper.GetString("output"),
				listen: viper.GetString("listen"),
				opts:   optionsFromConfig(),
			}
			return w.run(ctx)
		},
	}
	cmd.Flags().String("listen", "", "address to serve /metrics on, such as :9090")
	errors.Log(viper.BindPFlag("listen", cmd.Flags().Lookup("listen")))
	return cmd
}

// watcher appends the lines added to input to a chart and renders
// it to output after each change. All chart calls happen on the
// goroutine running [watcher.run].
type watcher struct {
	input, output, listen string
	opts                  chartOptions

	chart  *candleChart
	tail   *tailer
	reader candleReader
}

func (w *watcher) run(ctx context.Context) error {
	cc, err := newCandleChart(w.opts)
	if err != nil {
		return err
	}
	w.chart = cc
	cc.follow()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics.New(reg).Observe(cc.group)
	if w.listen != "" {
		srv := &http.Server{Addr: w.listen, Handler: metrics.Handler(reg)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server", "err", err)
			}
		}()
		defer srv.Close()
		slog.Info("serving metrics", "addr", w.listen)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	// watch the directory, so that files replaced by editors keep
	// being followed
	if err := fw.Add(filepath.Dir(w.input)); err != nil {
		return err
	}

	w.tail = &tailer{path: w.input}
	if err := w.update(); err != nil {
		return err
	}
	if err := cc.showLast(); err != nil {
		return err
	}
	if err := w.render(); err != nil {
		return err
	}

	target := filepath.Clean(w.input)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := w.update(); err != nil {
				slog.Error("reading new candles", "file", w.input, "err", err)
				continue
			}
			if cc.group.NeedsRender() {
				if err := w.render(); err != nil {
					slog.Error("rendering", "err", err)
				}
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching", "file", w.input, "err", err)
		}
	}
}

// update appends the complete lines added to the input since the
// last update.
func (w *watcher) update() error {
	b, err := w.tail.next()
	if err != nil || len(b) == 0 {
		return err
	}
	cs, err := w.reader.read(bytes.NewReader(b))
	if len(cs) > 0 {
		if err := w.chart.append(cs...); err != nil {
			return err
		}
		slog.Debug("appended candles", "count", len(cs), "total", w.chart.candles.Len())
	}
	return err
}

func (w *watcher) render() error {
	start := time.Now()
	if err := w.chart.render(w.output); err != nil {
		return err
	}
	slog.Info("rendered", "file", w.output, "candles", w.chart.candles.Len(), "took", time.Since(start))
	return nil
}
