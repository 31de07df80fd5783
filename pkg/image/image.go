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

package image

import (
	"errors"
	"io"

	"github.com/lassandro/gomix/pkg/machine"
)

// Serialized form: six bytes per word, sign byte first (zero for
// positive, non-zero for negative), magnitude bytes most significant
// first. Words run from address 0; a short image leaves the rest of
// memory zeroed.

// Load fills mem from the serialized form until EOF.
func Load(reader io.Reader, mem *[machine.MemSize]machine.Word) error {
	for i := range mem {
		mem[i] = machine.Word{}
	}

	scratch := make([]byte, 6)
	index := 0

	for index < machine.MemSize {
		_, err := io.ReadFull(reader, scratch)

		if err == io.EOF {
			return nil
		} else if err == io.ErrUnexpectedEOF {
			return errors.New("image truncated mid-word")
		} else if err != nil {
			return err
		}

		var w machine.Word
		copy(w[:], scratch)

		if w[0] != machine.SignPos {
			w[0] = machine.SignNeg
		}

		mem[index] = w
		index++
	}

	// Memory is full; any trailing byte means the image is oversized.
	if n, err := reader.Read(scratch[:1]); n > 0 {
		return errors.New("image longer than memory")
	} else if err != io.EOF && err != nil {
		return err
	}

	return nil
}

// Dump writes mem in the serialized form.
func Dump(writer io.Writer, mem *[machine.MemSize]machine.Word) error {
	for i := range mem {
		if _, err := writer.Write(mem[i][:]); err != nil {
			return err
		}
	}

	return nil
}
