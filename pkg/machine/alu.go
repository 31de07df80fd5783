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
	"math/bits"
)

// ADD  rA <- rA + V
// SUB  rA <- rA - V
// MUL  rAX <- rA * V
// DIV  rA <- rAX / V; rX <- rAX % V
func (mc *Machine) arith(in *instruction) error {
	value, err := mc.operand(in)

	if err != nil {
		return err
	}

	switch in.op {
	case OpAdd, OpSub:
		if in.op == OpSub {
			value = -value
		}

		result, overflow := NewWord(mc.State.RA.Int() + value)
		mc.State.RA = result

		if overflow {
			mc.State.Overflow = true
		}

	case OpMul:
		sign := SignPos

		if (mc.State.RA[0] == SignPos) != (value >= 0) {
			sign = SignNeg
		}

		magnitude := uint64(value)
		if value < 0 {
			magnitude = uint64(-value)
		}

		// The 80-bit product splits into the high bytes in rA and
		// the low bytes in rX, both carrying the product sign.
		hi, lo := bits.Mul64(mc.State.RA.Magnitude(), magnitude)

		mc.State.RA[0] = sign
		mc.State.RA.SetMagnitude(hi<<24 | lo>>40)
		mc.State.RX[0] = sign
		mc.State.RX.SetMagnitude(lo)

	case OpDiv:
		mc.div(value)
	}

	return nil
}

// div divides the 80-bit pair (rA,rX) by V. A zero divisor, or a
// dividend too wide for the quotient to fit a word, sets the overflow
// toggle and leaves deterministic zero magnitudes behind; the sign
// rules apply on both paths: rX takes the old sign of rA, rA takes the
// algebraic quotient sign.
func (mc *Machine) div(value int64) {
	divisor := uint64(value)

	if value < 0 {
		divisor = uint64(-value)
	}

	quotientSign := SignPos

	if (mc.State.RA[0] == SignPos) != (value >= 0) {
		quotientSign = SignNeg
	}

	aMag := mc.State.RA.Magnitude()
	xMag := mc.State.RX.Magnitude()

	mc.State.RX[0] = mc.State.RA[0]
	mc.State.RA[0] = quotientSign

	if divisor == 0 || aMag >= divisor {
		mc.State.Overflow = true
		mc.State.RA.SetMagnitude(0)
		mc.State.RX.SetMagnitude(0)
		return
	}

	// dividend = aMag * 2^40 + xMag, laid out as a 128-bit value.
	quotient, remainder := bits.Div64(aMag>>24, aMag<<40|xMag, divisor)

	mc.State.RA.SetMagnitude(quotient)
	mc.State.RX.SetMagnitude(remainder)
}

// NUM   rA <- decimal value of the ten digit bytes in rAX
// CHAR  rAX <- digit bytes of |rA|
// HLT   stop
// NOT/AND/OR/XOR  bitwise on the 40-bit magnitude of rA
func (mc *Machine) special(in *instruction) error {
	switch in.field {
	case SpecialNum:
		var result int64

		for _, b := range mc.State.RA[1:] {
			result = result*10 + int64(b%10)
		}
		for _, b := range mc.State.RX[1:] {
			result = result*10 + int64(b%10)
		}

		// Ten digit bytes cannot exceed the magnitude range, and the
		// sign of rA is kept.
		mc.State.RA.SetMagnitude(uint64(result))

	case SpecialChar:
		source := mc.State.RA.Magnitude()

		for i := 5; i >= 1; i-- {
			mc.State.RX[i] = byte(source%10) + 30
			source /= 10
		}
		for i := 5; i >= 1; i-- {
			mc.State.RA[i] = byte(source%10) + 30
			source /= 10
		}

	case SpecialHlt:
		mc.State.Halted = true

	case SpecialNot:
		mc.State.RA.SetMagnitude(^mc.State.RA.Magnitude() & MaxMagnitude)

	case SpecialAnd, SpecialOr, SpecialXor:
		addr, err := mc.effectiveAddr(in)

		if err != nil {
			return err
		}

		operand := mc.read(addr).Magnitude()
		magnitude := mc.State.RA.Magnitude()

		switch in.field {
		case SpecialAnd:
			magnitude &= operand
		case SpecialOr:
			magnitude |= operand
		case SpecialXor:
			magnitude ^= operand
		}

		// The sign of rA is untouched.
		mc.State.RA.SetMagnitude(magnitude)

	default:
		return mc.trap(TrapIllegalInstruction, in)
	}

	return nil
}

// SLA/SRA    shift the bytes of rA
// SLAX/SRAX  shift the bytes of the pair (rA,rX)
// SLC/SRC    rotate the bytes of the pair
// SLB/SRB    shift the bits of the pair
// The shift count is M and must be non-negative. Signs never move.
func (mc *Machine) shift(in *instruction) error {
	m, err := mc.effective(in)

	if err != nil {
		return err
	}

	if m < 0 {
		return mc.trap(TrapBadAddress, in)
	}

	count := uint(m)

	switch in.field {
	case ShiftSLA:
		mc.State.RA.SetMagnitude(shiftLeft40(mc.State.RA.Magnitude(), 8*count))

	case ShiftSRA:
		mc.State.RA.SetMagnitude(shiftRight40(mc.State.RA.Magnitude(), 8*count))

	case ShiftSLAX, ShiftSRAX, ShiftSLB, ShiftSRB:
		n := count
		if in.field == ShiftSLAX || in.field == ShiftSRAX {
			n = 8 * count
		}

		left := in.field == ShiftSLAX || in.field == ShiftSLB
		aMag, xMag := shift80(mc.State.RA.Magnitude(), mc.State.RX.Magnitude(), n, left)

		mc.State.RA.SetMagnitude(aMag)
		mc.State.RX.SetMagnitude(xMag)

	case ShiftSLC, ShiftSRC:
		var bytes [10]byte

		copy(bytes[0:], mc.State.RA[1:])
		copy(bytes[5:], mc.State.RX[1:])

		offset := int(count % 10)
		if in.field == ShiftSRC {
			offset = (10 - offset) % 10
		}

		var rotated [10]byte

		for i := range rotated {
			rotated[i] = bytes[(i+offset)%10]
		}

		copy(mc.State.RA[1:], rotated[0:5])
		copy(mc.State.RX[1:], rotated[5:10])

	default:
		return mc.trap(TrapIllegalInstruction, in)
	}

	return nil
}

func shiftLeft40(magnitude uint64, n uint) uint64 {
	if n >= 40 {
		return 0
	}

	return magnitude << n & MaxMagnitude
}

func shiftRight40(magnitude uint64, n uint) uint64 {
	if n >= 40 {
		return 0
	}

	return magnitude >> n
}

// shift80 shifts the 80-bit magnitude aMag:xMag by n bits, dropping
// bits shifted out of either end.
func shift80(aMag, xMag uint64, n uint, left bool) (uint64, uint64) {
	if n >= 80 {
		return 0, 0
	}

	hi := aMag >> 24
	lo := aMag<<40 | xMag

	if left {
		if n >= 64 {
			hi, lo = lo<<(n-64), 0
		} else {
			hi = hi<<n | lo>>(64-n)
			lo <<= n
		}
	} else {
		if n >= 64 {
			lo, hi = hi>>(n-64), 0
		} else {
			lo = lo>>n | hi<<(64-n)
			hi >>= n
		}
	}

	return (hi<<24 | lo>>40) & MaxMagnitude, lo & MaxMagnitude
}
