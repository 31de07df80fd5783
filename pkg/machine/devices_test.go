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
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/gomix/pkg/machine"
)

// block renders text into one typewriter/paper-tape block, padded
// with blanks.
func block(t *testing.T, text string) []machine.Word {
	t.Helper()

	tape := machine.NewPaperTape(bufio.NewReader(strings.NewReader(text + "\n")))

	words := make([]machine.Word, tape.BlockSize())

	if err := tape.Read(words); err != nil {
		t.Fatal(err)
	}

	return words
}

func TestTypewriter(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tty := machine.NewTypewriter(bufio.NewWriter(&out))

	assert.Equal(14, tty.BlockSize())
	assert.Error(tty.Read(make([]machine.Word, 14)))
	assert.Error(tty.Write(make([]machine.Word, 3)))

	assert.NoError(tty.Write(block(t, "HELLO, W0RLD")))

	// Nothing reaches the host until the flush command.
	assert.Equal("", out.String())
	assert.True(tty.Busy())
	assert.False(tty.Busy())

	assert.NoError(tty.Control(machine.ControlFlush))
	assert.Equal("HELLO, W0RLD\n", out.String())

	// Flushing an empty line emits nothing.
	assert.NoError(tty.Control(machine.ControlFlush))
	assert.Equal("HELLO, W0RLD\n", out.String())

	// A rewind discards the pending line.
	assert.NoError(tty.Write(block(t, "DISCARDED")))
	assert.NoError(tty.Control(machine.ControlRewind))
	assert.NoError(tty.Control(machine.ControlFlush))
	assert.Equal("HELLO, W0RLD\n", out.String())

	assert.Error(tty.Control(7))
}

func TestTypewriterKeepsInteriorBlanks(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	tty := machine.NewTypewriter(bufio.NewWriter(&out))

	assert.NoError(tty.Write(block(t, "A  B")))
	assert.NoError(tty.Control(machine.ControlFlush))

	assert.Equal("A  B\n", out.String())
}

func TestPaperTape(t *testing.T) {
	assert := assert.New(t)

	tape := machine.NewPaperTape(
		bufio.NewReader(strings.NewReader("AAAA\n")),
	)

	assert.Equal(14, tape.BlockSize())
	assert.Error(tape.Write(make([]machine.Word, 14)))
	assert.Error(tape.Read(make([]machine.Word, 2)))

	words := make([]machine.Word, tape.BlockSize())
	assert.NoError(tape.Read(words))

	// Four characters, then blank fill to the end of the block.
	assert.Equal(machine.Word{0, 1, 1, 1, 1, 0}, words[0])

	for _, w := range words[1:] {
		assert.Equal(machine.Word{}, w)
	}

	assert.True(tape.Busy())
	assert.False(tape.Busy())

	assert.NoError(tape.Control(machine.ControlRewind))
	assert.Error(tape.Control(9))
}

func TestPaperTapeUnmappable(t *testing.T) {
	assert := assert.New(t)

	tape := machine.NewPaperTape(
		bufio.NewReader(strings.NewReader("A!B\n")),
	)

	words := make([]machine.Word, tape.BlockSize())
	assert.NoError(tape.Read(words))

	assert.Equal(machine.Word{0, 1, 0, 2, 0, 0}, words[0])
}

func TestPaperTapeLongLine(t *testing.T) {
	assert := assert.New(t)

	tape := machine.NewPaperTape(
		bufio.NewReader(strings.NewReader(strings.Repeat("Z", 80) + "\n")),
	)

	words := make([]machine.Word, tape.BlockSize())
	assert.NoError(tape.Read(words))

	// Exactly one block is kept; the overhang is dropped.
	for _, w := range words {
		assert.Equal(machine.Word{0, 29, 29, 29, 29, 29}, w)
	}
}

func TestPaperTapeWithoutNewline(t *testing.T) {
	assert := assert.New(t)

	tape := machine.NewPaperTape(
		bufio.NewReader(strings.NewReader("ABC")),
	)

	words := make([]machine.Word, tape.BlockSize())
	assert.NoError(tape.Read(words))
	assert.Equal(machine.Word{0, 1, 2, 3, 0, 0}, words[0])

	// The stream is exhausted now.
	assert.Error(tape.Read(words))
}
