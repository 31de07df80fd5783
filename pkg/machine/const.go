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

const (
	// MemSize is the number of addressable words.
	MemSize = 4000

	// DeviceCount is the number of peripheral slots.
	DeviceCount = 21

	// MaxMagnitude is the largest magnitude a word can hold.
	MaxMagnitude uint64 = (1 << 40) - 1

	// MaxIndex is the largest magnitude an index register can hold.
	MaxIndex uint64 = (1 << 16) - 1
)

// Sign byte values. The sign byte is byte 0 of every word.
const (
	SignPos byte = 0
	SignNeg byte = 1
)

// Peripheral slots populated by the stock machine.
const (
	DevTypewriter = 18
	DevPaperTape  = 19
)

const (
	OpNop     byte = 0
	OpAdd     byte = 1
	OpSub     byte = 2
	OpMul     byte = 3
	OpDiv     byte = 4
	OpSpecial byte = 5
	OpShift   byte = 6
	OpMove    byte = 7

	OpLdA byte = 8
	OpLd1 byte = 9
	OpLd2 byte = 10
	OpLd3 byte = 11
	OpLd4 byte = 12
	OpLd5 byte = 13
	OpLd6 byte = 14
	OpLdX byte = 15

	OpLdAN byte = 16
	OpLd1N byte = 17
	OpLd2N byte = 18
	OpLd3N byte = 19
	OpLd4N byte = 20
	OpLd5N byte = 21
	OpLd6N byte = 22
	OpLdXN byte = 23

	OpStA byte = 24
	OpSt1 byte = 25
	OpSt2 byte = 26
	OpSt3 byte = 27
	OpSt4 byte = 28
	OpSt5 byte = 29
	OpSt6 byte = 30
	OpStX byte = 31
	OpStJ byte = 32
	OpStZ byte = 33

	OpJbus byte = 34
	OpIoc  byte = 35
	OpIn   byte = 36
	OpOut  byte = 37
	OpJred byte = 38
	OpJmp  byte = 39

	OpJA byte = 40
	OpJ1 byte = 41
	OpJ2 byte = 42
	OpJ3 byte = 43
	OpJ4 byte = 44
	OpJ5 byte = 45
	OpJ6 byte = 46
	OpJX byte = 47

	OpModifyA byte = 48
	OpModify1 byte = 49
	OpModify2 byte = 50
	OpModify3 byte = 51
	OpModify4 byte = 52
	OpModify5 byte = 53
	OpModify6 byte = 54
	OpModifyX byte = 55

	OpCmpA byte = 56
	OpCmp1 byte = 57
	OpCmp2 byte = 58
	OpCmp3 byte = 59
	OpCmp4 byte = 60
	OpCmp5 byte = 61
	OpCmp6 byte = 62
	OpCmpX byte = 63
)

// F values selecting the sub-operations of OpSpecial.
const (
	SpecialNum  byte = 0
	SpecialChar byte = 1
	SpecialHlt  byte = 2
	SpecialNot  byte = 9
	SpecialAnd  byte = 10
	SpecialOr   byte = 11
	SpecialXor  byte = 12
)

// F values selecting the sub-operations of OpShift.
const (
	ShiftSLA  byte = 0
	ShiftSRA  byte = 1
	ShiftSLAX byte = 2
	ShiftSRAX byte = 3
	ShiftSLC  byte = 4
	ShiftSRC  byte = 5
	ShiftSLB  byte = 6
	ShiftSRB  byte = 7
)

// F values selecting the sub-operations of OpJmp.
const (
	JmpAlways       byte = 0
	JmpSaveless     byte = 1
	JmpOverflow     byte = 2
	JmpNoOverflow   byte = 3
	JmpLess         byte = 4
	JmpEqual        byte = 5
	JmpGreater      byte = 6
	JmpGreaterEqual byte = 7
	JmpNotEqual     byte = 8
	JmpLessEqual    byte = 9
)

// F values selecting the conditions of the register jumps OpJA..OpJX.
const (
	RegJmpNegative    byte = 0
	RegJmpZero        byte = 1
	RegJmpPositive    byte = 2
	RegJmpNonNegative byte = 3
	RegJmpNonZero     byte = 4
	RegJmpNonPositive byte = 5
	RegJmpEven        byte = 6
	RegJmpOdd         byte = 7
)

// F values selecting the sub-operations of OpModifyA..OpModifyX.
const (
	ModifyInc byte = 0
	ModifyDec byte = 1
	ModifyEnt byte = 2
	ModifyEnn byte = 3
)

// IOC commands understood by the stock devices.
const (
	ControlRewind int64 = 0
	ControlFlush  int64 = 2
)
