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

package encoding

// Blank is the character code of the space character, and the code any
// unmappable host character collapses to on input.
const Blank byte = 0

// Placeholder is emitted for the unassigned codes 56..63.
const Placeholder rune = '?'

// The MIX character alphabet, indexed by character code 0..55.
var alphabet = [56]rune{
	' ', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I',
	'\'', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R',
	'°', '"', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'.', ',', '(', ')', '+', '-', '*', '/', '=', '$',
	'<', '>', '@', ';', ':', '‚',
}

var inverse map[rune]byte

func init() {
	inverse = make(map[rune]byte, len(alphabet))
	for code, r := range alphabet {
		inverse[r] = byte(code)
	}
}

// ToRune converts a character code to its host code point. Total: codes
// without an assigned character render as Placeholder.
func ToRune(code byte) rune {
	if int(code) < len(alphabet) {
		return alphabet[code]
	}

	return Placeholder
}

// FromRune converts a host code point to a character code. Total: runes
// outside the alphabet collapse to Blank.
func FromRune(r rune) byte {
	if code, exists := inverse[r]; exists {
		return code
	}

	return Blank
}
