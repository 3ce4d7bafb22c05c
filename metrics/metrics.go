// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exports chart frame statistics to Prometheus.
package metrics

import (
	"net/http"

	"cogentcore.org/fastchart/chart"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a [chart.FrameObserver] recording the frames of every
// panel it observes, labelled by panel name.
type Metrics struct {
	Frames         *prometheus.CounterVec
	RenderErrors   *prometheus.CounterVec
	FrameDuration  *prometheus.HistogramVec
	Primitives     *prometheus.GaugeVec
	VisibleRecords *prometheus.GaugeVec
}

// New returns new metrics registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastchart_frames_total",
			Help: "Total frames rendered",
		}, []string{"panel"}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastchart_render_errors_total",
			Help: "Total frames that failed to render",
		}, []string{"panel"}),
		FrameDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fastchart_frame_duration_seconds",
			Help:    "Time to prepare and draw a frame",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.002, 0.005, 0.01, 0.02, 0.05},
		}, []string{"panel"}),
		Primitives: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fastchart_frame_primitives",
			Help: "Primitives drawn by the last frame",
		}, []string{"panel"}),
		VisibleRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fastchart_visible_records",
			Help: "Records in the visible index range of the last frame",
		}, []string{"panel"}),
	}
	reg.MustRegister(m.Frames, m.RenderErrors, m.FrameDuration, m.Primitives, m.VisibleRecords)
	return m
}

// ObserveFrame records the stats of one frame.
func (m *Metrics) ObserveFrame(st chart.FrameStats) {
	m.Frames.WithLabelValues(st.Panel).Inc()
	if st.Err != nil {
		m.RenderErrors.WithLabelValues(st.Panel).Inc()
		return
	}
	m.FrameDuration.WithLabelValues(st.Panel).Observe(st.Duration.Seconds())
	m.Primitives.WithLabelValues(st.Panel).Set(float64(st.Primitives))
	m.VisibleRecords.WithLabelValues(st.Panel).Set(float64(st.Visible.Len()))
}

// Observe makes m the frame observer of every panel in the group.
func (m *Metrics) Observe(pg *chart.PanelGroup) {
	for _, p := range pg.Panels() {
		p.Observer = m
	}
}

// Handler returns an HTTP handler serving the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
