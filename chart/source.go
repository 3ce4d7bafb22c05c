// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"reflect"
)

// Source is the element-type independent view of a [DataSource]
// that drawers and panels hold on to.
type Source interface {
	// Len returns the number of records.
	Len() int

	// ElemType returns the type of the records.
	ElemType() reflect.Type

	// Subscribe registers fn to be called with the new length
	// after every mutation.
	Subscribe(fn func(n int)) *Subscription
}

// Validator is implemented by record types that can check
// themselves. [DataSource.Append] rejects records that fail it.
type Validator interface {
	Validate() error
}

// DataSource is an append-only, index addressable sequence of records.
// Indexes are stable: once a record is appended at index i, i always
// refers to it. Subscribers are notified synchronously, in subscription
// order, after every Append or Extend, at which point Len already
// reports the new length.
type DataSource[T any] struct {
	items []T
	subs  []*Subscription
}

// Subscription is a registered change callback of a [DataSource].
type Subscription struct {
	fn     func(n int)
	remove func(s *Subscription)
}

// Cancel stops further notifications. It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.remove == nil {
		return
	}
	s.remove(s)
	s.remove = nil
}

// NewDataSource returns a new empty data source.
func NewDataSource[T any]() *DataSource[T] {
	return &DataSource[T]{}
}

// Len returns the number of records.
func (ds *DataSource[T]) Len() int {
	return len(ds.items)
}

// ElemType returns the type T.
func (ds *DataSource[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

// At returns the record at index i. It panics if i is out of range.
func (ds *DataSource[T]) At(i int) T {
	return ds.items[i]
}

// Slice returns the records in the half-open range [i, j), with both
// bounds clamped to [0, Len()]. The result shares storage with the
// source and must be treated as read-only.
func (ds *DataSource[T]) Slice(i, j int) []T {
	n := len(ds.items)
	i = clampInt(i, 0, n)
	j = clampInt(j, 0, n)
	if j <= i {
		return nil
	}
	return ds.items[i:j:j]
}

// Append adds a record and notifies subscribers. Records implementing
// [Validator] are checked first; a failing record is not added.
func (ds *DataSource[T]) Append(item T) error {
	if err := validate(len(ds.items), item); err != nil {
		return err
	}
	ds.items = append(ds.items, item)
	ds.notify()
	return nil
}

// Extend adds all the given records and notifies subscribers once.
// It is all or nothing: if any record fails validation, none is added.
// The observable effect equals calling Append for each record.
func (ds *DataSource[T]) Extend(items ...T) error {
	if len(items) == 0 {
		return nil
	}
	n := len(ds.items)
	for k, it := range items {
		if err := validate(n+k, it); err != nil {
			return err
		}
	}
	ds.items = append(ds.items, items...)
	ds.notify()
	return nil
}

// Subscribe registers fn to be called with the new length after
// every mutation.
func (ds *DataSource[T]) Subscribe(fn func(n int)) *Subscription {
	s := &Subscription{fn: fn}
	s.remove = ds.unsubscribe
	ds.subs = append(ds.subs, s)
	return s
}

// Spans reports whether n records are covered by the source, which is
// the invariant drawers check after each notification.
func (ds *DataSource[T]) Spans(n int) bool {
	return n >= 0 && n <= len(ds.items)
}

func (ds *DataSource[T]) unsubscribe(s *Subscription) {
	for i, sb := range ds.subs {
		if sb == s {
			ds.subs = append(ds.subs[:i:i], ds.subs[i+1:]...)
			return
		}
	}
}

func (ds *DataSource[T]) notify() {
	n := len(ds.items)
	// a callback may cancel its own subscription
	subs := ds.subs
	for _, s := range subs {
		s.fn(n)
	}
}

func validate(index int, item any) error {
	v, ok := item.(Validator)
	if !ok {
		return nil
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w at index %d: %w", ErrMalformedRecord, index, err)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
