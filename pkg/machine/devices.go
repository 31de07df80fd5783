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

package machine

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/lassandro/gomix/pkg/encoding"
)

// blockWords is the transfer unit of both stock devices: 14 words of
// five characters each, one 70-column line.
const blockWords = 14

// Typewriter is the console output device. Writes accumulate
// characters; an IOC flush command terminates the pending line,
// dropping the trailing blank padding, and a rewind command discards
// it ("new page").
type Typewriter struct {
	out  *bufio.Writer
	line []rune
	busy bool
}

func NewTypewriter(out *bufio.Writer) *Typewriter {
	return &Typewriter{out: out}
}

func (t *Typewriter) BlockSize() int {
	return blockWords
}

func (t *Typewriter) Read(block []Word) error {
	return errors.New("typewriter cannot read")
}

func (t *Typewriter) Write(block []Word) error {
	if len(block) != t.BlockSize() {
		return errors.New("typewriter wants whole blocks")
	}

	for _, w := range block {
		for _, code := range w[1:] {
			t.line = append(t.line, encoding.ToRune(code))
		}
	}

	t.busy = true

	return nil
}

func (t *Typewriter) Control(command int64) error {
	switch command {
	case ControlRewind:
		t.line = t.line[:0]
		return nil

	case ControlFlush:
		if len(t.line) == 0 {
			return nil
		}

		return t.Flush()

	default:
		return errors.New("typewriter does not understand the command")
	}
}

// Flush emits the pending line, trailing blanks trimmed, followed by
// a line terminator.
func (t *Typewriter) Flush() error {
	n := len(t.line)

	for n > 0 && t.line[n-1] == ' ' {
		n--
	}

	if _, err := t.out.WriteString(string(t.line[:n])); err != nil {
		return err
	}

	t.line = t.line[:0]

	if err := t.out.WriteByte('\n'); err != nil {
		return err
	}

	return t.out.Flush()
}

func (t *Typewriter) Busy() bool {
	busy := t.busy
	t.busy = false
	return busy
}

// PaperTape is the console input device. A read blocks for one host
// line, trims the terminator, translates through the alphabet and
// pads the block out with blanks. Characters beyond the block are
// dropped.
type PaperTape struct {
	in   *bufio.Reader
	busy bool
}

func NewPaperTape(in *bufio.Reader) *PaperTape {
	return &PaperTape{in: in}
}

func (pt *PaperTape) BlockSize() int {
	return blockWords
}

func (pt *PaperTape) Read(block []Word) error {
	if len(block) != pt.BlockSize() {
		return errors.New("paper tape wants whole blocks")
	}

	line, err := pt.in.ReadString('\n')

	if err != nil && (err != io.EOF || len(line) == 0) {
		return err
	}

	line = strings.TrimRight(line, "\r\n")

	codes := make([]byte, 5*len(block))

	for i, r := range []rune(line) {
		if i >= len(codes) {
			break
		}

		codes[i] = encoding.FromRune(r)
	}

	for i := range block {
		block[i] = Word{
			SignPos,
			codes[5*i+0],
			codes[5*i+1],
			codes[5*i+2],
			codes[5*i+3],
			codes[5*i+4],
		}
	}

	pt.busy = true

	return nil
}

func (pt *PaperTape) Write(block []Word) error {
	return errors.New("paper tape cannot write")
}

func (pt *PaperTape) Control(command int64) error {
	if command == ControlRewind {
		// The host stream has no position to rewind.
		return nil
	}

	return errors.New("paper tape does not understand the command")
}

func (pt *PaperTape) Busy() bool {
	busy := pt.busy
	pt.busy = false
	return busy
}
