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
	"github.com/lassandro/gomix/pkg/encoding"
	"github.com/lassandro/gomix/pkg/machine"
)

// The resident program. An encryption subroutine sits at 0..79 and a
// driver at 80..123. The driver greets on the typewriter, reads one
// paper-tape block, runs the input through the cipher and divides by
// the mismatch count, so only a perfect match trips the overflow
// toggle that selects the success message.
//
// The subroutine stores its return address into word 79 via STJ, and
// words 76..79 double as the cipher key schedule, so the call site
// must stay at address 100: moving it would change the key material.

const (
	locEncrypt     = 0
	locEncryptLoop = 4
	locEncryptRet  = 79
	locKey         = 76

	locMain = 80
	locCall = 100

	locMaskEq3 = 3000
	locDelta   = 3001
	locWelcome = 3002
	locRounds  = 3030
	locCipher  = 3031
	locWrong   = 3038
	locRight   = 3052

	locSum  = 3100
	locIter = 3101
	locT1   = 3102
	locT2   = 3103
	locT3   = 3104
	locT4   = 3105
	locT5   = 3106
	locT6   = 3107
	locT7   = 3108
	locT8   = 3109
	locT9   = 3110

	locInput = 3200

	cipherWords = 7
)

// ins packs an instruction word from its signed address, index, field
// and operation parts.
func ins(addr int, index, field, op byte) machine.Word {
	sign := machine.SignPos
	magnitude := addr

	if addr < 0 {
		sign = machine.SignNeg
		magnitude = -addr
	}

	return machine.Word{
		sign,
		byte(magnitude >> 8),
		byte(magnitude),
		index,
		field,
		op,
	}
}

// line encodes a message into one device block: 14 words of five
// character codes, blank padded.
func line(text string) []machine.Word {
	codes := make([]byte, 70)

	for i, r := range []rune(text) {
		codes[i] = encoding.FromRune(r)
	}

	words := make([]machine.Word, 14)

	for i := range words {
		words[i] = machine.Word{
			machine.SignPos,
			codes[5*i+0],
			codes[5*i+1],
			codes[5*i+2],
			codes[5*i+3],
			codes[5*i+4],
		}
	}

	return words
}

var program = []machine.Word{
	// Encryption subroutine. Called with rI1 holding the block index;
	// 32 Feistel-ish rounds over adjacent input words, keyed from
	// words 76..79 of this very routine.
	ins(locEncryptRet, 0, 2, machine.OpStJ),
	ins(32, 0, 2, machine.OpModifyX),
	ins(0, 0, 2, machine.OpModifyA),
	ins(locSum, 0, 13, machine.OpStA),
	ins(locIter, 0, 5, machine.OpStX),
	ins(0, 0, 2, machine.OpModifyX),
	ins(1, 0, 0, machine.OpModify1),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(4, 0, 6, machine.OpShift),
	ins(locT1, 0, 13, machine.OpStA),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(5, 0, 7, machine.OpShift),
	ins(locT2, 0, 13, machine.OpStA),
	ins(0, 0, 2, machine.OpModifyX),
	ins(0, 0, 2, machine.OpModifyA),
	ins(locT1, 0, 13, machine.OpLdA),
	ins(locT2, 0, 12, machine.OpSpecial),
	ins(locT3, 0, 13, machine.OpStA),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(locT3, 0, 13, machine.OpAdd),
	ins(locT4, 0, 13, machine.OpStA),
	ins(locSum, 0, 13, machine.OpLdA),
	ins(locMaskEq3, 0, 10, machine.OpSpecial),
	ins(locT5, 0, 45, machine.OpStA),
	ins(locT5, 0, 45, machine.OpLd2),
	ins(locKey, 2, 13, machine.OpLdA),
	ins(locT6, 0, 13, machine.OpStA),
	ins(locT6, 0, 13, machine.OpLdA),
	ins(locSum, 0, 13, machine.OpAdd),
	ins(locT7, 0, 13, machine.OpStA),
	ins(locT7, 0, 13, machine.OpLdA),
	ins(locT4, 0, 12, machine.OpSpecial),
	ins(locT8, 0, 13, machine.OpStA),
	ins(1, 0, 1, machine.OpModify1),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(locT8, 0, 13, machine.OpAdd),
	ins(locInput, 1, 13, machine.OpStA),
	ins(locSum, 0, 13, machine.OpLdA),
	ins(locDelta, 0, 13, machine.OpAdd),
	ins(locSum, 0, 13, machine.OpStA),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(4, 0, 6, machine.OpShift),
	ins(locT1, 0, 13, machine.OpStA),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(5, 0, 7, machine.OpShift),
	ins(locT2, 0, 13, machine.OpStA),
	ins(0, 0, 2, machine.OpModifyX),
	ins(0, 0, 2, machine.OpModifyA),
	ins(locT1, 0, 13, machine.OpLdA),
	ins(locT2, 0, 12, machine.OpSpecial),
	ins(locT3, 0, 13, machine.OpStA),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(locT3, 0, 13, machine.OpAdd),
	ins(locT4, 0, 13, machine.OpStA),
	ins(locSum, 0, 13, machine.OpLdA),
	ins(11, 0, 7, machine.OpShift),
	ins(locT5, 0, 13, machine.OpStA),
	ins(0, 0, 2, machine.OpModifyX),
	ins(0, 0, 2, machine.OpModifyA),
	ins(locT5, 0, 13, machine.OpLdA),
	ins(locMaskEq3, 0, 10, machine.OpSpecial),
	ins(locT6, 0, 45, machine.OpStA),
	ins(locT6, 0, 45, machine.OpLd2),
	ins(locKey, 2, 13, machine.OpLdA),
	ins(locT7, 0, 13, machine.OpStA),
	ins(locT7, 0, 13, machine.OpLdA),
	ins(locSum, 0, 13, machine.OpAdd),
	ins(locT8, 0, 13, machine.OpStA),
	ins(locT8, 0, 13, machine.OpLdA),
	ins(locT4, 0, 12, machine.OpSpecial),
	ins(locT9, 0, 13, machine.OpStA),
	ins(1, 0, 0, machine.OpModify1),
	ins(locInput, 1, 13, machine.OpLdA),
	ins(locT9, 0, 13, machine.OpAdd),
	ins(locInput, 1, 13, machine.OpStA),
	ins(1, 0, 1, machine.OpModify1),
	ins(locIter, 0, 5, machine.OpLdX),
	ins(1, 0, 1, machine.OpModifyX),
	ins(locEncryptLoop, 0, 2, machine.OpJX),
	ins(3999, 0, 0, machine.OpJmp),

	// Driver. Greets with two typewriter blocks, reads one paper-tape
	// block, encrypts, verifies against the baked cipher words and
	// prints the verdict.
	ins(0, 0, 2, machine.OpModifyA),
	ins(2, 0, 2, machine.OpModifyX),
	ins(0, 0, 2, machine.OpModify3),
	ins(0, 0, 18, machine.OpIoc),
	ins(84, 0, 18, machine.OpJbus),
	ins(locWelcome, 3, 18, machine.OpOut),
	ins(0x4433, 0x11, 0x22, machine.OpNop),
	ins(87, 0, 18, machine.OpJbus),
	ins(2, 0, 18, machine.OpIoc),
	ins(14, 0, 0, machine.OpModify3),
	ins(1, 0, 1, machine.OpModifyX),
	ins(85, 0, 2, machine.OpJX),
	ins(locInput, 0, 19, machine.OpIn),
	ins(93, 0, 19, machine.OpJbus),
	ins(0, 0, 19, machine.OpIoc),
	ins(97, 0, 18, machine.OpJred),
	ins(95, 0, 0, machine.OpJmp),
	ins(locSum, 0, 5, machine.OpStZ),
	ins(locIter, 0, 5, machine.OpStZ),
	ins(0, 0, 2, machine.OpModify1),
	ins(locEncrypt, 0, 0, machine.OpJmp),
	ins(1, 0, 0, machine.OpModify1),
	ins(locRounds, 0, 5, machine.OpCmp1),
	ins(locCall, 0, 4, machine.OpJmp),
	ins(cipherWords, 0, 2, machine.OpModifyX),
	ins(cipherWords-1, 0, 2, machine.OpModify2),
	ins(locInput, 2, 13, machine.OpLdA),
	ins(locCipher, 2, 12, machine.OpSpecial),
	ins(110, 0, 4, machine.OpJA),
	ins(1, 0, 1, machine.OpModifyX),
	ins(1, 0, 1, machine.OpModify2),
	ins(106, 0, 3, machine.OpJ2),
	ins(2560, 0, 2, machine.OpModifyA),
	ins(locT1, 0, 5, machine.OpStX),
	ins(115, 0, 2, machine.OpJmp),
	ins(1, 0, 2, machine.OpModifyX),
	ins(0, 0, 2, machine.OpModifyA),
	ins(locT1, 0, 5, machine.OpDiv),
	ins(0, 0, 2, machine.OpModify1),
	ins(121, 0, 3, machine.OpJmp),
	ins(14, 0, 0, machine.OpModify1),
	ins(locWrong, 1, 18, machine.OpOut),
	ins(2, 0, 18, machine.OpIoc),
	ins(0, 0, 2, machine.OpSpecial),
}

var cipher = [cipherWords]machine.Word{
	{0, 5, 139, 14, 94, 218},
	{0, 244, 138, 250, 182, 187},
	{0, 244, 123, 251, 140, 191},
	{0, 95, 176, 194, 183, 102},
	{0, 138, 101, 40, 247, 89},
	{0, 122, 206, 163, 121, 181},
	{0, 192, 133, 13, 8, 206},
}

var welcome = []string{
	"EXPL0RE 1960S' PAST 1N 4 PRESENT W0RLD",
	"WHAT DID YOU UNCOVER, ELITE RUSTACEAN >>",
}

const (
	wrongText = "THAT IS NOT CORRECT. TRY AGAIN :D"
	rightText = "NOW MARCH BEYOND, AND REVIVE THE LEGACY."
)

// Builtin fills mem with the resident image and returns its entry
// address.
func Builtin(mem *[machine.MemSize]machine.Word) uint16 {
	for i := range mem {
		mem[i] = machine.Word{}
	}

	copy(mem[locEncrypt:], program)

	mem[locMaskEq3] = machine.Word{0, 0, 0, 0, 0, 3}
	mem[locDelta] = machine.Word{0, 0x9e, 0x38, 0x53, 0x8a, 0x49}
	mem[locRounds] = machine.Word{0, 0, 0, 0, 0, cipherWords - 1}

	for i, text := range welcome {
		copy(mem[locWelcome+14*i:], line(text))
	}

	copy(mem[locCipher:], cipher[:])
	copy(mem[locWrong:], line(wrongText))
	copy(mem[locRight:], line(rightText))

	return locMain
}
