package fvarsharp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordsPerRow(t *testing.T) {
	cases := []struct {
		channels int
		want     int
	}{
		{0, 0}, {1, 1}, {15, 1}, {16, 1}, {17, 2}, {32, 2}, {33, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WordsPerRow(tc.channels), "channels=%d", tc.channels)
	}
}

func TestNewTable_BadShape(t *testing.T) {
	_, err := NewTable(-1, 2)
	assert.True(t, errors.Is(err, ErrBadShape))
	_, err = NewTable(2, -1)
	assert.True(t, errors.Is(err, ErrBadShape))
}

func TestNewTable_StartsUnknown(t *testing.T) {
	tbl, err := NewTable(3, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 20, tbl.Channels())
	for r := 0; r < 3; r++ {
		for ch := 0; ch < 20; ch++ {
			assert.Equal(t, Unknown, tbl.Get(r, ch))
		}
	}
}

func TestTable_SetGetIsolated(t *testing.T) {
	tbl, err := NewTable(2, 18)
	require.NoError(t, err)

	tbl.Set(1, 0, Sharp)
	tbl.Set(1, 15, NotSharp)
	tbl.Set(1, 17, Sharp)

	assert.Equal(t, Sharp, tbl.Get(1, 0))
	assert.Equal(t, NotSharp, tbl.Get(1, 15))
	assert.Equal(t, Sharp, tbl.Get(1, 17))
	// neighbours untouched
	assert.Equal(t, Unknown, tbl.Get(1, 1))
	assert.Equal(t, Unknown, tbl.Get(1, 16))
	assert.Equal(t, Unknown, tbl.Get(0, 0))

	// overwrite a decided slot in both directions
	tbl.Set(1, 0, NotSharp)
	assert.Equal(t, NotSharp, tbl.Get(1, 0))
	tbl.Set(1, 0, Unknown)
	assert.Equal(t, Unknown, tbl.Get(1, 0))
}

func TestTable_ResetAndCopyRow(t *testing.T) {
	a, err := NewTable(2, 4)
	require.NoError(t, err)
	b, err := NewTable(3, 4)
	require.NoError(t, err)

	a.Set(0, 0, Sharp)
	a.Set(0, 3, NotSharp)
	b.CopyRow(2, a, 0)
	assert.Equal(t, Sharp, b.Get(2, 0))
	assert.Equal(t, Unknown, b.Get(2, 1))
	assert.Equal(t, NotSharp, b.Get(2, 3))
	assert.True(t, b.Any(2))

	b.ResetRow(2)
	for ch := 0; ch < 4; ch++ {
		assert.Equal(t, Unknown, b.Get(2, ch))
	}
	assert.False(t, b.Any(2))
}

func TestTable_CopyRowChannelMismatch(t *testing.T) {
	a, _ := NewTable(1, 2)
	b, _ := NewTable(1, 3)
	assert.Panics(t, func() { b.CopyRow(0, a, 0) })
}

func TestTable_IllegalCodePanics(t *testing.T) {
	tbl, err := NewTable(1, 3)
	require.NoError(t, err)

	assert.Panics(t, func() { tbl.Set(0, 0, illegal) })

	// Force code 2 into channel 1 behind the table's back.
	tbl.words[0] = (tbl.words[0] &^ (codeMask << 2)) | uint32(illegal)<<2
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrIllegalCode))
	}()
	tbl.Get(0, 1)
}

func TestTable_OutOfRangePanics(t *testing.T) {
	tbl, _ := NewTable(2, 2)
	assert.Panics(t, func() { tbl.Get(2, 0) })
	assert.Panics(t, func() { tbl.Get(0, 2) })
	assert.Panics(t, func() { tbl.Set(-1, 0, Sharp) })
}

func TestState_Helpers(t *testing.T) {
	assert.Equal(t, Sharp, FromBool(true))
	assert.Equal(t, NotSharp, FromBool(false))
	assert.True(t, Sharp.Known())
	assert.True(t, NotSharp.Known())
	assert.False(t, Unknown.Known())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "illegal", illegal.String())
}
