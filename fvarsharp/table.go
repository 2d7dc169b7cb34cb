// SPDX-License-Identifier: MIT
// Package: fvarsharp
//
// table.go - packed tri-state storage.
//
// Layout:
//   - stride = ceil(channels/16) words per row.
//   - channel ch of row r lives in words[r*stride + ch/16] at bit 2*(ch%16).

package fvarsharp

import (
	"github.com/pkg/errors"
)

var (
	// ErrBadShape indicates NewTable received a negative dimension.
	ErrBadShape = errors.New("fvarsharp: rows and channels must be non-negative")

	// ErrIllegalCode indicates the reserved code 2 was found in a slot.
	ErrIllegalCode = errors.New("fvarsharp: illegal tri-state code")
)

// State is the cached verdict for one channel of one edge.
type State uint8

const (
	// NotSharp means the facevarying data is continuous across the edge.
	NotSharp State = 0
	// Sharp means the edge is a facevarying discontinuity.
	Sharp State = 1
	// illegal is never written.
	illegal State = 2
	// Unknown means the verdict has not been computed.
	Unknown State = 3
)

const (
	channelsPerWord = 16
	bitsPerChannel  = 2
	codeMask        = uint32(0x3)
	allUnknown      = ^uint32(0)
)

// FromBool maps a computed verdict to Sharp or NotSharp.
func FromBool(sharp bool) State {
	if sharp {
		return Sharp
	}
	return NotSharp
}

// Known reports whether s carries a computed verdict.
func (s State) Known() bool { return s == Sharp || s == NotSharp }

// String renders the state for diagnostics.
func (s State) String() string {
	switch s {
	case NotSharp:
		return "not-sharp"
	case Sharp:
		return "sharp"
	case Unknown:
		return "unknown"
	}
	return "illegal"
}

// WordsPerRow returns the number of uint32 words needed for channels codes.
func WordsPerRow(channels int) int {
	return (channels + channelsPerWord - 1) / channelsPerWord
}

// Table is a rows×channels matrix of 2-bit States.
// The zero value is an empty table; use NewTable.
type Table struct {
	rows     int
	channels int
	stride   int
	words    []uint32
}

// NewTable allocates a table with every slot set to Unknown.
// Complexity: O(rows * ceil(channels/16)).
func NewTable(rows, channels int) (*Table, error) {
	if rows < 0 || channels < 0 {
		return nil, errors.Wrapf(ErrBadShape, "rows=%d channels=%d", rows, channels)
	}
	stride := WordsPerRow(channels)
	t := &Table{
		rows:     rows,
		channels: channels,
		stride:   stride,
		words:    make([]uint32, rows*stride),
	}
	for i := range t.words {
		t.words[i] = allUnknown
	}
	return t, nil
}

// Rows returns the number of edge slots.
func (t *Table) Rows() int { return t.rows }

// Channels returns the number of channels per row.
func (t *Table) Channels() int { return t.channels }

// locate returns the word index and bit shift of (row, ch).
func (t *Table) locate(row, ch int) (int, uint) {
	if row < 0 || row >= t.rows || ch < 0 || ch >= t.channels {
		panic(errors.Errorf("fvarsharp: slot (%d,%d) outside %dx%d table", row, ch, t.rows, t.channels))
	}
	return row*t.stride + ch/channelsPerWord, uint(ch%channelsPerWord) * bitsPerChannel
}

// Get returns the State stored at (row, ch).
// It panics if the slot holds the illegal code 2.
func (t *Table) Get(row, ch int) State {
	w, shift := t.locate(row, ch)
	s := State((t.words[w] >> shift) & codeMask)
	if s == illegal {
		panic(errors.Wrapf(ErrIllegalCode, "row %d channel %d", row, ch))
	}
	return s
}

// Set stores s at (row, ch). Storing the illegal code panics.
func (t *Table) Set(row, ch int, s State) {
	if s == illegal || s > Unknown {
		panic(errors.Wrapf(ErrIllegalCode, "refusing to store %d at row %d channel %d", s, row, ch))
	}
	w, shift := t.locate(row, ch)
	t.words[w] = (t.words[w] &^ (codeMask << shift)) | uint32(s)<<shift
}

// ResetRow marks every channel of row as Unknown.
func (t *Table) ResetRow(row int) {
	start := row * t.stride
	for i := start; i < start+t.stride; i++ {
		t.words[i] = allUnknown
	}
}

// CopyRow overwrites row with srcRow of src. Both tables must have the same
// channel count.
func (t *Table) CopyRow(row int, src *Table, srcRow int) {
	if src.channels != t.channels {
		panic(errors.Errorf("fvarsharp: channel mismatch %d != %d", src.channels, t.channels))
	}
	copy(t.words[row*t.stride:(row+1)*t.stride], src.words[srcRow*src.stride:(srcRow+1)*src.stride])
}

// Any reports whether any channel of row holds Sharp.
// Unknown slots are skipped.
func (t *Table) Any(row int) bool {
	for ch := 0; ch < t.channels; ch++ {
		if t.Get(row, ch) == Sharp {
			return true
		}
	}
	return false
}
