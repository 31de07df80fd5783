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

package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/gomix/pkg/encoding"
)

func TestToRune(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(' ', encoding.ToRune(0))
	assert.Equal('A', encoding.ToRune(1))
	assert.Equal('I', encoding.ToRune(9))
	assert.Equal('\'', encoding.ToRune(10))
	assert.Equal('J', encoding.ToRune(11))
	assert.Equal('R', encoding.ToRune(19))
	assert.Equal('°', encoding.ToRune(20))
	assert.Equal('"', encoding.ToRune(21))
	assert.Equal('S', encoding.ToRune(22))
	assert.Equal('Z', encoding.ToRune(29))
	assert.Equal('0', encoding.ToRune(30))
	assert.Equal('9', encoding.ToRune(39))
	assert.Equal(':', encoding.ToRune(54))
	assert.Equal('‚', encoding.ToRune(55))
}

// Output stays total over the whole byte range: the unassigned codes
// render as the placeholder.
func TestToRunePlaceholder(t *testing.T) {
	assert := assert.New(t)

	for code := 56; code <= 255; code++ {
		assert.Equal(encoding.Placeholder, encoding.ToRune(byte(code)))
	}
}

func TestFromRune(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(byte(0), encoding.FromRune(' '))
	assert.Equal(byte(4), encoding.FromRune('D'))
	assert.Equal(byte(33), encoding.FromRune('3'))
	assert.Equal(byte(42), encoding.FromRune('('))
	assert.Equal(byte(45), encoding.FromRune('-'))
	assert.Equal(byte(52), encoding.FromRune('@'))
	assert.Equal(byte(55), encoding.FromRune('‚'))

	// Unmappable input collapses to blank.
	assert.Equal(encoding.Blank, encoding.FromRune('a'))
	assert.Equal(encoding.Blank, encoding.FromRune('!'))
	assert.Equal(encoding.Blank, encoding.FromRune('\t'))
	assert.Equal(encoding.Blank, encoding.FromRune('文'))
}

// Every assigned code survives the round trip through the host
// character set.
func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for code := byte(0); code <= 55; code++ {
		assert.Equal(code, encoding.FromRune(encoding.ToRune(code)))
	}
}
