// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/fastchart/chart"
)

// candleReader decodes candles from CSV rows of
// time,open,high,low,close[,volume]. Lines starting with # are
// skipped, and so is a header row at the start of the input.
type candleReader struct {
	started bool

	// line is the line of the last record of earlier reads, so that
	// errors in appended data report file lines.
	line int
}

func (cr *candleReader) read(r io.Reader) ([]chart.Candle, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1
	rd.TrimLeadingSpace = true
	rd.Comment = '#'
	var cs []chart.Candle
	last := 0
	defer func() { cr.line += last }()
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return cs, nil
		}
		if err != nil {
			return cs, err
		}
		last, _ = rd.FieldPos(0)
		first := !cr.started
		cr.started = true
		if first && isHeader(rec) {
			continue
		}
		c, err := parseCandle(rec)
		if err != nil {
			return cs, fmt.Errorf("line %d: %w", cr.line+last, err)
		}
		cs = append(cs, c)
	}
}

func isHeader(rec []string) bool {
	switch strings.ToLower(strings.TrimSpace(rec[0])) {
	case "time", "date", "timestamp":
		return true
	}
	return false
}

func parseCandle(rec []string) (chart.Candle, error) {
	var c chart.Candle
	if len(rec) < 5 {
		return c, fmt.Errorf("%d fields, need time,open,high,low,close", len(rec))
	}
	t, err := parseTime(rec[0])
	if err != nil {
		return c, err
	}
	c.Time = t
	vals := []*float64{&c.Open, &c.High, &c.Low, &c.Close}
	if len(rec) > 5 {
		vals = append(vals, &c.Volume)
	}
	for i, v := range vals {
		f, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil {
			return c, err
		}
		*v = f
	}
	return c, nil
}

var timeLayouts = []string{time.RFC3339, time.DateTime, time.DateOnly}

// parseTime parses unix seconds or one of timeLayouts.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}

// readCandles reads all candles in the file.
func readCandles(filename string) ([]chart.Candle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := &candleReader{}
	cs, err := cr.read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cs, nil
}

// tailer reads the complete lines appended to a file since the
// previous call.
type tailer struct {
	path string
	off  int64
	rest []byte
}

func (t *tailer) next() ([]byte, error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() < t.off {
		slog.Warn("file was truncated; waiting for new lines", "file", t.path, "size", st.Size())
		t.off, t.rest = st.Size(), nil
		return nil, nil
	}
	if _, err := f.Seek(t.off, io.SeekStart); err != nil {
		return nil, err
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	t.off += int64(len(b))
	b = append(t.rest, b...)
	i := bytes.LastIndexByte(b, '\n')
	if i < 0 {
		t.rest = b
		return nil, nil
	}
	t.rest = bytes.Clone(b[i+1:])
	return b[:i+1], nil
}
