// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a [chart.Surface] that draws into an
// [image.RGBA], with anti-aliased lines and the basic bitmap font.
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"cogentcore.org/fastchart/chart"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Surface is a [chart.Surface] backed by an [image.RGBA].
type Surface struct {
	// Image is the image drawn into.
	Image *image.RGBA

	// Face is the font used for text, drawn scaled from FaceHeight
	// to the requested size.
	Face font.Face

	// FaceHeight is the pixel height Face is designed at.
	FaceHeight float32

	ras vector.Rasterizer
}

// New returns a new surface drawing into a new transparent image of
// the given size.
func New(size image.Point) *Surface {
	return NewForImage(image.NewRGBA(image.Rectangle{Max: size}))
}

// NewForImage returns a new surface drawing into img.
func NewForImage(img *image.RGBA) *Surface {
	return &Surface{Image: img, Face: basicfont.Face7x13, FaceHeight: 13}
}

// Bounds returns the image bounds, for laying out panels.
func (s *Surface) Bounds() image.Rectangle {
	return s.Image.Bounds()
}

// Save saves the image to filename, in the format of its extension.
func (s *Surface) Save(filename string) error {
	return imagex.Save(s.Image, filename)
}

func (s *Surface) Clear(r image.Rectangle, bg color.Color) {
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(s.Image, r.Intersect(s.Image.Rect), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (s *Surface) DrawLine(from, to math32.Vector2, st chart.LineStyle) {
	if st.Color == nil {
		return
	}
	w := st.Width
	if w <= 0 {
		w = 1
	}
	from, to = snap(from, to, w)
	pat := st.Dash.Pattern()
	if pat == nil {
		s.stroke(from, to, w, st.Color)
		return
	}
	d := to.Sub(from)
	ln := d.Length()
	if ln == 0 {
		return
	}
	dir := d.DivScalar(ln)
	on := true
	for pos, k := float32(0), 0; pos < ln; k++ {
		seg := min(pat[k%len(pat)], ln-pos)
		if on {
			s.stroke(from.Add(dir.MulScalar(pos)), from.Add(dir.MulScalar(pos+seg)), w, st.Color)
		}
		pos += seg
		on = !on
	}
}

// snap moves axis-aligned lines of odd integer width onto pixel
// centers, so they cover whole pixels.
func snap(from, to math32.Vector2, w float32) (math32.Vector2, math32.Vector2) {
	if int(w)%2 == 0 || w != math32.Floor(w) {
		return from, to
	}
	switch {
	case from.X == to.X:
		from.X += 0.5
		to.X += 0.5
	case from.Y == to.Y:
		from.Y += 0.5
		to.Y += 0.5
	}
	return from, to
}

// stroke fills the quad covering a line of width w from a to b.
func (s *Surface) stroke(a, b math32.Vector2, w float32, c color.Color) {
	d := b.Sub(a)
	ln := d.Length()
	if ln == 0 {
		return
	}
	n := math32.Vec2(-d.Y, d.X).MulScalar(w / 2 / ln)
	s.fill(c, []math32.Vector2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

// fill rasterizes the closed polygons given as point lists.
// Polygons of opposite winding cut holes.
func (s *Surface) fill(c color.Color, polys ...[]math32.Vector2) {
	b := s.Image.Rect
	s.ras.Reset(b.Dx(), b.Dy())
	o := math32.Vec2(float32(b.Min.X), float32(b.Min.Y))
	for _, pts := range polys {
		for i, p := range pts {
			p = p.Sub(o)
			if i == 0 {
				s.ras.MoveTo(p.X, p.Y)
			} else {
				s.ras.LineTo(p.X, p.Y)
			}
		}
		s.ras.ClosePath()
	}
	s.ras.Draw(s.Image, b, image.NewUniform(c), image.Point{})
}

func (s *Surface) DrawRect(box math32.Box2, st chart.FillStyle) {
	if st.Fill != nil {
		r := image.Rect(round(box.Min.X), round(box.Min.Y), round(box.Max.X), round(box.Max.Y))
		if r.Empty() {
			r.Max = r.Max.Add(image.Pt(max(0, 1-r.Dx()), max(0, 1-r.Dy())))
		}
		draw.Draw(s.Image, r, image.NewUniform(st.Fill), image.Point{}, draw.Over)
	}
	if st.Stroke == nil || st.Width <= 0 {
		return
	}
	h := st.Width / 2
	mn, mx := box.Min, box.Max
	if st.Width == math32.Floor(st.Width) && int(st.Width)%2 == 1 {
		mn = mn.AddScalar(0.5)
		mx = mx.AddScalar(0.5)
	}
	out := []math32.Vector2{
		mn.SubScalar(h), math32.Vec2(mx.X+h, mn.Y-h), mx.AddScalar(h), math32.Vec2(mn.X-h, mx.Y+h),
	}
	imn, imx := mn.AddScalar(h), mx.SubScalar(h)
	if imn.X >= imx.X || imn.Y >= imx.Y {
		s.fill(st.Stroke, out)
		return
	}
	in := []math32.Vector2{
		imn, math32.Vec2(imn.X, imx.Y), imx, math32.Vec2(imx.X, imn.Y),
	}
	s.fill(st.Stroke, out, in)
}

// DrawText draws text with its upper left corner at pos. Glyphs are
// scaled from the face size with bilinear filtering.
func (s *Surface) DrawText(pos math32.Vector2, text string, st chart.TextStyle) {
	if st.Color == nil || text == "" {
		return
	}
	sc := float32(1)
	if s.FaceHeight > 0 && st.Size > 0 {
		sc = st.Size / s.FaceHeight
	}
	d := &font.Drawer{
		Dst:  s.Image,
		Src:  image.NewUniform(st.Color),
		Face: s.Face,
		Dot:  fixed.Point26_6{Y: s.Face.Metrics().Ascent},
	}
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			d.Dot.X += d.Face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := d.Face.Glyph(d.Dot, r)
		if !ok {
			continue
		}
		s2d := f64.Aff3{
			float64(sc), 0, float64(pos.X + float32(dr.Min.X)*sc),
			0, float64(sc), float64(pos.Y + float32(dr.Min.Y)*sc),
		}
		draw.BiLinear.Transform(d.Dst, s2d, d.Src, dr.Sub(dr.Min), draw.Over, &draw.Options{
			SrcMask:  mask,
			SrcMaskP: maskp,
		})
		d.Dot.X += advance
		prev = r
	}
}

func round(v float32) int {
	return int(math32.Round(v))
}
