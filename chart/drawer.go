// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"log/slog"
	"reflect"
)

// Layer groups drawers in a [Panel]. Layers are drawn in order, and
// drawers in the same layer are drawn in the order they were added.
type Layer int32

const (
	// Background drawers, such as grids, are drawn first.
	Background Layer = iota

	// Data drawers draw the series.
	Data

	// Overlay drawers, such as axis labels, are drawn last.
	Overlay
)

// Drawer renders the visible slice of one data source onto a [Surface].
// Rendering is split into two phases so that a [Panel] can prepare all
// of its drawers before drawing any of them.
type Drawer interface {
	// Bind checks the element type of the data source and subscribes
	// to its changes. It is called by [Panel.AddDrawer] and returns a
	// [*TypeMismatchError] if the source cannot be drawn.
	Bind() error

	// Source returns the bound data source, or nil for drawers that
	// derive their content from the axes.
	Source() Source

	// Prepare converts the records in the visible index range to pixel
	// geometry, reading only the records inside vr. The returned
	// geometry is owned by the drawer and stays valid until the next
	// call to Prepare. y may be nil for drawers that only use x.
	Prepare(vr IndexRange, x, y *Axis) (*Geometry, error)

	// Draw emits the prepared geometry onto the surface.
	Draw(s Surface, g *Geometry)

	// Layer returns the layer the drawer is drawn in.
	Layer() Layer
}

// ValueRanger is implemented by drawers that can report the value
// range of their visible records, used to fit value axes.
type ValueRanger interface {
	ValueRange(vr IndexRange) (lo, hi float64, ok bool)
}

// Records is a [Source] with typed access to its records.
// [DataSource] implements it.
type Records[T any] interface {
	Source
	At(i int) T
	Slice(i, j int) []T
}

// prepKey identifies the inputs of a prepared geometry. S holds the
// drawer settings that affect the output.
type prepKey[S comparable] struct {
	vr     IndexRange
	x, y   *Axis
	xv, yv uint64
	set    S
}

// drawerBase has the binding and caching shared by all drawers.
type drawerBase[S comparable] struct {
	kind string
	src  Source

	// indexed is set when record i is drawn at index i.
	indexed bool

	sub   *Subscription
	n     int
	geom  Geometry
	key   prepKey[S]
	valid bool
}

func (db *drawerBase[S]) Source() Source { return db.src }

// Invalidate drops the prepared geometry, for changes the drawer
// cannot detect, such as a new formatting function.
func (db *drawerBase[S]) Invalidate() {
	db.valid = false
}

// Unbind cancels the data source subscription.
func (db *drawerBase[S]) Unbind() {
	db.sub.Cancel()
	db.sub = nil
	db.valid = false
}

func (db *drawerBase[S]) subscribe() {
	if db.src == nil || db.sub != nil {
		return
	}
	db.n = db.src.Len()
	db.sub = db.src.Subscribe(db.changed)
}

func (db *drawerBase[S]) changed(n int) {
	if n < db.n {
		slog.Warn("chart: data source shrank", "drawer", db.kind, "from", db.n, "to", n)
		db.valid = false
	}
	db.n = n
}

// cached returns the drawer geometry and whether it is valid for the
// given key. On a miss the geometry is reset and the key recorded,
// so the caller must fill it.
func (db *drawerBase[S]) cached(key prepKey[S]) (*Geometry, bool) {
	if db.valid && db.key == key {
		return &db.geom, true
	}
	db.geom.Reset()
	db.key = key
	db.valid = true
	return &db.geom, false
}

// makeKey returns the key for a prepare call. For index addressed
// sources vr is clamped to the bound records, so appends past the
// visible range keep the cache.
func (db *drawerBase[S]) makeKey(vr IndexRange, x, y *Axis, set S) prepKey[S] {
	if db.indexed {
		vr = vr.Clamp(db.n)
	}
	k := prepKey[S]{vr: vr, x: x, y: y, set: set}
	if x != nil {
		k.xv = x.Version()
	}
	if y != nil {
		k.yv = y.Version()
	}
	return k
}

func (db *drawerBase[S]) Draw(s Surface, g *Geometry) {
	g.Draw(s)
}

// bindRecords checks that the source of db holds T records and
// subscribes to it.
func bindRecords[T any, S comparable](db *drawerBase[S]) (Records[T], error) {
	want := reflect.TypeFor[T]()
	if db.src == nil {
		return nil, &TypeMismatchError{Drawer: db.kind, Want: want}
	}
	rec, ok := db.src.(Records[T])
	if !ok || db.src.ElemType() != want {
		return nil, &TypeMismatchError{Drawer: db.kind, Want: want, Got: db.src.ElemType()}
	}
	db.subscribe()
	return rec, nil
}

// checkAxes returns an error if a required axis is missing.
func checkAxes(kind string, x, y *Axis, needY bool) error {
	if x == nil || (needY && y == nil) {
		return &AxisError{Drawer: kind}
	}
	return nil
}
