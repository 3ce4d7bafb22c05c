// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme loads chart color themes from TOML or YAML files
// and applies them to panels and their drawers.
package theme

import (
	"embed"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Theme has the colors and sizes of a chart. Colors are hex values
// such as "#e03030" or color names such as "white". Empty fields keep
// the chart defaults.
type Theme struct {
	Name string `toml:"name" yaml:"name"`

	Background string `toml:"background" yaml:"background"`
	Border     string `toml:"border" yaml:"border"`
	Text       string `toml:"text" yaml:"text"`
	Grid       string `toml:"grid" yaml:"grid"`
	Cursor     string `toml:"cursor" yaml:"cursor"`
	Bull       string `toml:"bull" yaml:"bull"`
	Bear       string `toml:"bear" yaml:"bear"`

	// GridDash is one of solid, dashed or dotted.
	GridDash string `toml:"grid_dash" yaml:"grid_dash"`

	// HollowBull outlines bull candles instead of filling them.
	HollowBull bool `toml:"hollow_bull" yaml:"hollow_bull"`

	// FontSize is the label size in pixels; 0 keeps the default.
	FontSize float32 `toml:"font_size" yaml:"font_size"`
}

// Format is a theme file format.
type Format int32

const (
	TOML Format = iota
	YAML
)

// FormatOf returns the format for the extension of filename.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("theme: unsupported file type %q", filepath.Ext(filename))
}

//go:embed themes
var builtin embed.FS

// Names returns the names of the built-in themes.
func Names() []string {
	des := errors.Log1(builtin.ReadDir("themes"))
	nms := make([]string, 0, len(des))
	for _, de := range des {
		nms = append(nms, strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())))
	}
	slices.Sort(nms)
	return nms
}

// Builtin returns the built-in theme with the given name.
func Builtin(name string) (*Theme, error) {
	des, err := builtin.ReadDir("themes")
	if err != nil {
		return nil, err
	}
	for _, de := range des {
		fn := de.Name()
		if strings.TrimSuffix(fn, filepath.Ext(fn)) != name {
			continue
		}
		b, err := builtin.ReadFile("themes/" + fn)
		if err != nil {
			return nil, err
		}
		f, err := FormatOf(fn)
		if err != nil {
			return nil, err
		}
		return Read(b, f)
	}
	return nil, fmt.Errorf("theme: no built-in theme %q", name)
}

// Open reads a theme from a .toml, .yaml or .yml file.
func Open(filename string) (*Theme, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	th, err := Read(b, f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", filename, err)
	}
	if th.Name == "" {
		th.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return th, nil
}

// Read decodes a theme and checks its colors.
func Read(b []byte, f Format) (*Theme, error) {
	th := &Theme{}
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(b, th)
	default:
		err = toml.Unmarshal(b, th)
	}
	if err != nil {
		return nil, err
	}
	if _, err := th.Palette(); err != nil {
		return nil, err
	}
	return th, nil
}

// Save writes the theme to a .toml, .yaml or .yml file.
func (th *Theme) Save(filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	var b []byte
	if f == YAML {
		b, err = yaml.Marshal(th)
	} else {
		b, err = toml.Marshal(th)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// Palette is a [Theme] with its colors parsed. Nil colors keep the
// chart defaults.
type Palette struct {
	Background, Border, Text, Grid, Cursor, Bull, Bear color.Color
}

// Palette parses the theme colors.
func (th *Theme) Palette() (*Palette, error) {
	pl := &Palette{}
	var errs []error
	parse := func(field, s string, c *color.Color) {
		if s == "" {
			return
		}
		v, err := ParseColor(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
			return
		}
		*c = v
	}
	parse("background", th.Background, &pl.Background)
	parse("border", th.Border, &pl.Border)
	parse("text", th.Text, &pl.Text)
	parse("grid", th.Grid, &pl.Grid)
	parse("cursor", th.Cursor, &pl.Cursor)
	parse("bull", th.Bull, &pl.Bull)
	parse("bear", th.Bear, &pl.Bear)
	if _, err := ParseDash(th.GridDash); err != nil {
		errs = append(errs, err)
	}
	return pl, errors.Join(errs...)
}

// ParseColor parses a hex color (with a leading #) or a color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return colors.FromHex(s)
	}
	return colors.FromName(strings.ToLower(s))
}
