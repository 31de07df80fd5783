// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/gomix/pkg/machine"
)

func TestNewWord(t *testing.T) {
	assert := assert.New(t)

	w, overflow := machine.NewWord(0)
	assert.False(overflow)
	assert.Equal(machine.Word{}, w)
	assert.Equal(int64(0), w.Int())

	w, overflow = machine.NewWord(1)
	assert.False(overflow)
	assert.Equal(machine.Word{0, 0, 0, 0, 0, 1}, w)

	w, overflow = machine.NewWord(-1)
	assert.False(overflow)
	assert.Equal(machine.Word{1, 0, 0, 0, 0, 1}, w)
	assert.Equal(int64(-1), w.Int())

	w, overflow = machine.NewWord(int64(machine.MaxMagnitude))
	assert.False(overflow)
	assert.Equal(machine.Word{0, 0xff, 0xff, 0xff, 0xff, 0xff}, w)

	// One past the cap wraps to zero magnitude and reports overflow.
	w, overflow = machine.NewWord(int64(machine.MaxMagnitude) + 1)
	assert.True(overflow)
	assert.Equal(uint64(0), w.Magnitude())

	w, overflow = machine.NewWord(int64(machine.MaxMagnitude) + 5)
	assert.True(overflow)
	assert.Equal(uint64(4), w.Magnitude())
}

func TestWordRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int64{
		0, 1, -1, 63, 64, 255, 256, -4095,
		1 << 20, -(1 << 30), int64(machine.MaxMagnitude),
		-int64(machine.MaxMagnitude),
	} {
		w, overflow := machine.NewWord(value)
		assert.False(overflow, "value %d", value)
		assert.Equal(value, w.Int(), "value %d", value)
	}
}

func TestNegativeZero(t *testing.T) {
	assert := assert.New(t)

	minusZero := machine.Word{machine.SignNeg}

	// Both zeroes collapse to the same integer but keep their signs.
	assert.Equal(int64(0), minusZero.Int())
	assert.Equal(int64(-1), minusZero.Sign())

	plusZero := minusZero
	plusZero.Negate()
	assert.Equal(machine.Word{}, plusZero)

	plusZero.Negate()
	assert.Equal(minusZero, plusZero)
}

func TestSlice(t *testing.T) {
	assert := assert.New(t)

	w := machine.Word{machine.SignNeg, 1, 2, 3, 4, 5}

	full, ok := machine.Slice(w, 5)
	assert.True(ok)
	assert.Equal(w, full)

	// Excluding the sign right-justifies a positive value.
	magnitude, ok := machine.Slice(w, 13)
	assert.True(ok)
	assert.Equal(machine.Word{0, 1, 2, 3, 4, 5}, magnitude)

	// (0:0) is the bare sign.
	sign, ok := machine.Slice(w, 0)
	assert.True(ok)
	assert.Equal(machine.Word{machine.SignNeg}, sign)

	// (4:4) is a single interior byte.
	interior, ok := machine.Slice(w, 36)
	assert.True(ok)
	assert.Equal(machine.Word{0, 0, 0, 0, 0, 4}, interior)

	// (0:2) takes the sign and the two high bytes.
	head, ok := machine.Slice(w, 2)
	assert.True(ok)
	assert.Equal(machine.Word{machine.SignNeg, 0, 0, 0, 1, 2}, head)

	// L > R and R > 5 are malformed.
	_, ok = machine.Slice(w, 5*8+4)
	assert.False(ok)
	_, ok = machine.Slice(w, 6)
	assert.False(ok)
}

func TestSplice(t *testing.T) {
	assert := assert.New(t)

	dst := machine.Word{machine.SignNeg, 1, 2, 3, 4, 5}
	src := machine.Word{machine.SignPos, 9, 8, 7, 6, 5}

	cell := dst
	assert.True(machine.Splice(&cell, src, 5))
	assert.Equal(src, cell)

	// (1:2) receives the two low bytes of the source; sign survives.
	cell = dst
	assert.True(machine.Splice(&cell, src, 8+2))
	assert.Equal(machine.Word{machine.SignNeg, 6, 5, 3, 4, 5}, cell)

	// (0:0) replaces the sign alone.
	cell = dst
	assert.True(machine.Splice(&cell, src, 0))
	assert.Equal(machine.Word{machine.SignPos, 1, 2, 3, 4, 5}, cell)

	cell = dst
	assert.False(machine.Splice(&cell, src, 6))
	assert.Equal(dst, cell)
}

// Splicing a word's own slice back into the same field is an identity
// for every valid field.
func TestSpliceSliceIdentity(t *testing.T) {
	assert := assert.New(t)

	w := machine.Word{machine.SignNeg, 0xfa, 0x00, 0x35, 0x81, 0x3c}

	for l := 0; l <= 5; l++ {
		for r := l; r <= 5; r++ {
			field := byte(8*l + r)

			sliced, ok := machine.Slice(w, field)
			assert.True(ok)

			cell := w
			assert.True(machine.Splice(&cell, sliced, field))
			assert.Equal(w, cell, "field (%d:%d)", l, r)
		}
	}
}

func TestField(t *testing.T) {
	assert := assert.New(t)

	w := machine.Word{machine.SignNeg, 0, 0, 0, 1, 2}

	value, ok := w.Field(5)
	assert.True(ok)
	assert.Equal(int64(-258), value)

	value, ok = w.Field(13)
	assert.True(ok)
	assert.Equal(int64(258), value)

	value, ok = w.Field(8*5 + 5)
	assert.True(ok)
	assert.Equal(int64(2), value)

	_, ok = w.Field(7)
	assert.False(ok)
}

func TestIndex(t *testing.T) {
	assert := assert.New(t)

	x, overflow := machine.NewIndex(-300)
	assert.False(overflow)
	assert.Equal(int64(-300), x.Int())

	_, overflow = machine.NewIndex(1 << 16)
	assert.True(overflow)

	assert.Equal(
		machine.Word{machine.SignNeg, 0, 0, 0, 1, 44},
		x.Word(),
	)
}
