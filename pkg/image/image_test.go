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

package image_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lassandro/gomix/pkg/image"
	"github.com/lassandro/gomix/pkg/machine"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	assert := assert.New(t)

	var mem [machine.MemSize]machine.Word
	image.Builtin(&mem)

	var buf bytes.Buffer
	assert.NoError(image.Dump(&buf, &mem))
	assert.Equal(machine.MemSize*6, buf.Len())

	var loaded [machine.MemSize]machine.Word
	assert.NoError(image.Load(&buf, &loaded))
	assert.Equal(mem, loaded)
}

func TestLoadShortImage(t *testing.T) {
	assert := assert.New(t)

	var mem [machine.MemSize]machine.Word

	// Two serialized words; everything beyond stays zero.
	data := []byte{
		1, 0, 0, 0, 1, 2,
		0, 0, 0, 0, 0, 7,
	}

	assert.NoError(image.Load(bytes.NewReader(data), &mem))
	assert.Equal(machine.Word{1, 0, 0, 0, 1, 2}, mem[0])
	assert.Equal(machine.Word{0, 0, 0, 0, 0, 7}, mem[1])
	assert.Equal(machine.Word{}, mem[2])
}

func TestLoadNormalizesSign(t *testing.T) {
	assert := assert.New(t)

	var mem [machine.MemSize]machine.Word

	data := []byte{0xff, 0, 0, 0, 0, 9}

	assert.NoError(image.Load(bytes.NewReader(data), &mem))
	assert.Equal(machine.Word{machine.SignNeg, 0, 0, 0, 0, 9}, mem[0])
}

func TestLoadTruncated(t *testing.T) {
	assert := assert.New(t)

	var mem [machine.MemSize]machine.Word

	data := []byte{0, 0, 0, 0, 9}

	assert.Error(image.Load(bytes.NewReader(data), &mem))
}

func TestLoadOversized(t *testing.T) {
	assert := assert.New(t)

	var mem [machine.MemSize]machine.Word
	data := make([]byte, machine.MemSize*6+1)

	assert.Error(image.Load(bytes.NewReader(data), &mem))
}

func TestBuiltinLayout(t *testing.T) {
	assert := assert.New(t)

	var mem [machine.MemSize]machine.Word
	entry := image.Builtin(&mem)

	assert.Equal(uint16(80), entry)

	// The subroutine entry stores the return address into its own
	// last word.
	assert.Equal(machine.Word{0, 0, 79, 0, 2, machine.OpStJ}, mem[0])

	// The call site must sit at 100: its saved return address is
	// patched into word 79, which doubles as key material.
	assert.Equal(machine.Word{0, 0, 0, 0, 0, machine.OpJmp}, mem[100])
	assert.Equal(machine.Word{0, 0x0f, 0x9f, 0, 0, machine.OpJmp}, mem[79])

	// The last driver word halts the machine.
	assert.Equal(
		machine.Word{0, 0, 0, 0, 2, machine.OpSpecial},
		mem[123],
	)

	// Round constant and pair count.
	assert.Equal(machine.Word{0, 0x9e, 0x38, 0x53, 0x8a, 0x49}, mem[3001])
	assert.Equal(machine.Word{0, 0, 0, 0, 0, 6}, mem[3030])
}

// runChallenge boots the resident image against the given host input
// and returns everything the typewriter printed.
func runChallenge(t *testing.T, input string) string {
	t.Helper()

	var mem [machine.MemSize]machine.Word
	entry := image.Builtin(&mem)

	var mc machine.Machine
	var printed bytes.Buffer

	mc.Devices[machine.DevTypewriter] = machine.NewTypewriter(
		bufio.NewWriter(&printed),
	)
	mc.Devices[machine.DevPaperTape] = machine.NewPaperTape(
		bufio.NewReader(strings.NewReader(input)),
	)

	mc.LoadImage(&mem, entry)

	for steps := 0; !mc.State.Halted; steps++ {
		if steps > 10_000_000 {
			t.Fatal("resident program did not halt")
		}

		if err := mc.Step(); err != nil {
			t.Fatalf("resident program trapped: %v", err)
		}
	}

	return printed.String()
}

func TestChallengeGreets(t *testing.T) {
	assert := assert.New(t)

	output := runChallenge(t, strings.Repeat("A", 35)+"\n")

	assert.Contains(output, "EXPL0RE 1960S' PAST 1N 4 PRESENT W0RLD")
	assert.Contains(output, "WHAT DID YOU UNCOVER, ELITE RUSTACEAN >>")
}

func TestChallengeAcceptsFlag(t *testing.T) {
	assert := assert.New(t)

	output := runChallenge(t, "D3CTF(TECH-EV0LVE,EMBR@C3-PR0GR3SS)\n")

	assert.Contains(output, "NOW MARCH BEYOND, AND REVIVE THE LEGACY.")
	assert.NotContains(output, "THAT IS NOT CORRECT")
}

func TestChallengeRejectsWrongFlag(t *testing.T) {
	assert := assert.New(t)

	output := runChallenge(t, "MMIXMMIXMMIXMMIXMMIXMMIXMMIXMMIXMMI\n")

	assert.Contains(output, "THAT IS NOT CORRECT. TRY AGAIN :D")
	assert.NotContains(output, "NOW MARCH BEYOND")
}

func TestChallengeShortInput(t *testing.T) {
	assert := assert.New(t)

	output := runChallenge(t, "AAAA\n")

	assert.Contains(output, "THAT IS NOT CORRECT. TRY AGAIN :D")
}
