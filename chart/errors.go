// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"reflect"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrInvalidRange is returned when a range has lo > hi or a
	// non-finite bound.
	ErrInvalidRange = errors.New("chart: invalid range")

	// ErrUnsupportedCapability is returned at render time when a
	// cross-hair is drawn on an axis that does not support a cursor.
	ErrUnsupportedCapability = errors.New("chart: unsupported capability")

	// ErrTypeMismatch is returned when a drawer is bound to a data
	// source whose element type it cannot draw.
	ErrTypeMismatch = errors.New("chart: data source type mismatch")

	// ErrMalformedRecord is returned when a record fails validation
	// on append.
	ErrMalformedRecord = errors.New("chart: malformed record")

	// ErrInvalidShare is returned for a non-positive or non-finite
	// panel space share.
	ErrInvalidShare = errors.New("chart: invalid space share")

	// ErrMissingAxis is returned when a drawer is prepared without
	// the axes it maps through.
	ErrMissingAxis = errors.New("chart: missing axis")

	// ErrUnbound is returned when a drawer is prepared before [Drawer.Bind].
	ErrUnbound = errors.New("chart: drawer is not bound")
)

// RangeError describes a rejected range.
type RangeError struct {
	// Axis is the name of the axis, if known.
	Axis string

	Lo, Hi float64
}

func (e *RangeError) Error() string {
	if e.Axis == "" {
		return fmt.Sprintf("%v [%g, %g]", ErrInvalidRange, e.Lo, e.Hi)
	}
	return fmt.Sprintf("%v [%g, %g] on axis %q", ErrInvalidRange, e.Lo, e.Hi, e.Axis)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// TypeMismatchError describes a drawer bound to an incompatible source.
type TypeMismatchError struct {
	// Drawer is the kind of drawer, e.g. "HistogramDrawer".
	Drawer string

	// Want is the element type the drawer draws.
	Want reflect.Type

	// Got is the element type of the source, nil if there is no source.
	Got reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: %s needs %v elements, got %v", ErrTypeMismatch, e.Drawer, e.Want, e.Got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// CapabilityError describes a capability requested from an axis
// that does not provide it.
type CapabilityError struct {
	Axis       string
	Capability string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%v: axis %q does not support %s", ErrUnsupportedCapability, e.Axis, e.Capability)
}

func (e *CapabilityError) Unwrap() error { return ErrUnsupportedCapability }

// AxisError describes a drawer prepared without a required axis.
type AxisError struct {
	Drawer string
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%v for %s", ErrMissingAxis, e.Drawer)
}

func (e *AxisError) Unwrap() error { return ErrMissingAxis }
