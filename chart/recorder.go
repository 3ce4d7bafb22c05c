// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
)

// OpKind is the kind of a recorded [Surface] call.
type OpKind int32

const (
	OpClear OpKind = iota
	OpLine
	OpRect
	OpText
)

// Op is one recorded [Surface] call; only the fields of its Kind are set.
type Op struct {
	Kind OpKind

	// Region and Background are set for OpClear.
	Region     image.Rectangle
	Background color.Color

	// From, To and Line are set for OpLine.
	From, To math32.Vector2
	Line     LineStyle

	// Box and Fill are set for OpRect.
	Box  math32.Box2
	Fill FillStyle

	// Pos, Text and TextStyle are set for OpText.
	Pos       math32.Vector2
	Text      string
	TextStyle TextStyle
}

// Recorder is a [Surface] that records the calls made to it,
// for headless use and tests.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear(rg image.Rectangle, bg color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Region: rg, Background: bg})
}

func (r *Recorder) DrawLine(from, to math32.Vector2, st LineStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, From: from, To: to, Line: st})
}

func (r *Recorder) DrawRect(b math32.Box2, st FillStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Box: b, Fill: st})
}

func (r *Recorder) DrawText(pos math32.Vector2, text string, st TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Pos: pos, Text: text, TextStyle: st})
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded text strings in call order.
func (r *Recorder) Texts() []string {
	var txt []string
	for i := range r.Ops {
		if r.Ops[i].Kind == OpText {
			txt = append(txt, r.Ops[i].Text)
		}
	}
	return txt
}
