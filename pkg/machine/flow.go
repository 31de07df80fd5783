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

// LDA/LD1..LD6/LDX    register <- V(M,F)
// LDAN/LD1N..LDXN     register <- -V(M,F)
// Index registers keep only the sign and the two low magnitude bytes.
func (mc *Machine) load(in *instruction) error {
	addr, err := mc.effectiveAddr(in)

	if err != nil {
		return err
	}

	value, ok := Slice(mc.read(addr), in.field)

	if !ok {
		return mc.trap(TrapBadField, in)
	}

	if in.op >= OpLdAN {
		value.Negate()
	}

	switch (in.op - OpLdA) % 8 {
	case 0:
		mc.State.RA = value
	case 7:
		mc.State.RX = value
	default:
		mc.State.RI[(in.op-OpLdA)%8] = indexFrom(value)
	}

	return nil
}

// STA/ST1..ST6/STX/STJ/STZ  field of memory[M] <- register
func (mc *Machine) store(in *instruction) error {
	addr, err := mc.effectiveAddr(in)

	if err != nil {
		return err
	}

	var source Word

	switch in.op {
	case OpStA:
		source = mc.State.RA
	case OpStX:
		source = mc.State.RX
	case OpStJ:
		source = mc.State.RJ.Word()
	case OpStZ:
		source = Word{}
	default:
		source = mc.State.RI[in.op-OpSt1+1].Word()
	}

	cell := mc.read(addr)

	if !Splice(&cell, source, in.field) {
		return mc.trap(TrapBadField, in)
	}

	mc.write(addr, cell)

	return nil
}

// MOVE  copy F words from M to the address in rI1; rI1 <- rI1 + F
func (mc *Machine) move(in *instruction) error {
	from, err := mc.effectiveAddr(in)

	if err != nil {
		return err
	}

	count := int64(in.field)
	to := mc.State.RI[1].Int()

	if count > 0 {
		if to < 0 || to+count > MemSize || int64(from)+count > MemSize {
			return mc.trap(TrapBadAddress, in)
		}

		for i := int64(0); i < count; i++ {
			mc.write(uint16(to+i), mc.read(from+uint16(i)))
		}
	}

	updated, overflow := NewIndex(to + count)
	mc.State.RI[1] = updated

	if overflow {
		mc.State.Overflow = true
	}

	return nil
}

// JMP/JSJ/JOV/JNOV and the comparison jumps. Every taken jump except
// JSJ records the address of the following instruction in rJ; that
// address is what a called routine stores back with STJ to patch its
// own return jump.
func (mc *Machine) jump(in *instruction) error {
	if in.op != OpJmp {
		return mc.registerJump(in)
	}

	taken := false

	switch in.field {
	case JmpAlways, JmpSaveless:
		taken = true
	case JmpOverflow:
		taken = mc.State.Overflow
	case JmpNoOverflow:
		taken = !mc.State.Overflow
	case JmpLess:
		taken = mc.State.Comp == Less
	case JmpEqual:
		taken = mc.State.Comp == Equal
	case JmpGreater:
		taken = mc.State.Comp == Greater
	case JmpGreaterEqual:
		taken = mc.State.Comp != Less
	case JmpNotEqual:
		taken = mc.State.Comp != Equal
	case JmpLessEqual:
		taken = mc.State.Comp != Greater
	default:
		return mc.trap(TrapIllegalInstruction, in)
	}

	// JOV and JNOV consume the toggle whether or not they jump.
	if in.field == JmpOverflow || in.field == JmpNoOverflow {
		mc.State.Overflow = false
	}

	if taken {
		target, err := mc.effectiveAddr(in)

		if err != nil {
			return err
		}

		mc.jumpTo(target, in.field != JmpSaveless)
	}

	return nil
}

// JA*/J1*..J6*/JX*  conditional jumps on a register's sign and value.
func (mc *Machine) registerJump(in *instruction) error {
	var value int64

	switch in.op {
	case OpJA:
		value = mc.State.RA.Int()
	case OpJX:
		value = mc.State.RX.Int()
	default:
		value = mc.State.RI[in.op-OpJ1+1].Int()
	}

	taken := false

	switch in.field {
	case RegJmpNegative:
		taken = value < 0
	case RegJmpZero:
		taken = value == 0
	case RegJmpPositive:
		taken = value > 0
	case RegJmpNonNegative:
		taken = value >= 0
	case RegJmpNonZero:
		taken = value != 0
	case RegJmpNonPositive:
		taken = value <= 0
	case RegJmpEven, RegJmpOdd:
		if in.op != OpJA && in.op != OpJX {
			return mc.trap(TrapIllegalInstruction, in)
		}

		taken = (value&1 == 0) == (in.field == RegJmpEven)
	default:
		return mc.trap(TrapIllegalInstruction, in)
	}

	if taken {
		target, err := mc.effectiveAddr(in)

		if err != nil {
			return err
		}

		mc.jumpTo(target, true)
	}

	return nil
}

// INC/DEC/ENT/ENN on rA, rI1..rI6 and rX. ENT preserves the sign of a
// zero M, so ENTA with a negative instruction sign loads -0.
func (mc *Machine) modify(in *instruction) error {
	m, err := mc.effective(in)

	if err != nil {
		return err
	}

	full := in.op == OpModifyA || in.op == OpModifyX

	var current int64

	switch {
	case in.op == OpModifyA:
		current = mc.State.RA.Int()
	case in.op == OpModifyX:
		current = mc.State.RX.Int()
	default:
		current = mc.State.RI[in.op-OpModify1+1].Int()
	}

	var value int64
	enter := false

	switch in.field {
	case ModifyInc:
		value = current + m
	case ModifyDec:
		value = current - m
	case ModifyEnt:
		value = m
		enter = true
	case ModifyEnn:
		value = -m
		enter = true
	default:
		return mc.trap(TrapIllegalInstruction, in)
	}

	if full {
		result, overflow := NewWord(value)

		if enter && value == 0 {
			result[0] = enterSign(in)
		}

		if in.op == OpModifyA {
			mc.State.RA = result
		} else {
			mc.State.RX = result
		}

		if !enter && overflow {
			mc.State.Overflow = true
		}
	} else {
		result, overflow := NewIndex(value)

		if enter && value == 0 {
			result[0] = enterSign(in)
		}

		mc.State.RI[in.op-OpModify1+1] = result

		if !enter && overflow {
			mc.State.Overflow = true
		}
	}

	return nil
}

// enterSign is the sign an ENT/ENN gives a zero result: the sign of
// the instruction word, inverted for ENN.
func enterSign(in *instruction) byte {
	sign := in.word[0]

	if in.field == ModifyEnn {
		if sign == SignPos {
			return SignNeg
		}

		return SignPos
	}

	if sign == SignPos {
		return SignPos
	}

	return SignNeg
}

// CMPA/CMP1..CMP6/CMPX  compare a register field against V(M,F).
// Both zeroes compare equal regardless of sign.
func (mc *Machine) compare(in *instruction) error {
	value, err := mc.operand(in)

	if err != nil {
		return err
	}

	var reg Word

	switch in.op {
	case OpCmpA:
		reg = mc.State.RA
	case OpCmpX:
		reg = mc.State.RX
	default:
		reg = mc.State.RI[in.op-OpCmp1+1].Word()
	}

	regValue, ok := reg.Field(in.field)

	if !ok {
		return mc.trap(TrapBadField, in)
	}

	switch {
	case regValue < value:
		mc.State.Comp = Less
	case regValue > value:
		mc.State.Comp = Greater
	default:
		mc.State.Comp = Equal
	}

	return nil
}

// JBUS/IOC/IN/OUT/JRED. F names the device slot. Transfers move one
// whole block and complete before the instruction retires; the device
// then reports busy for a single poll, which is how the wait loops in
// resident programs settle.
func (mc *Machine) deviceOp(in *instruction) error {
	if int(in.field) >= DeviceCount {
		return mc.trap(TrapNoDevice, in)
	}

	dev := mc.Devices[in.field]

	if dev == nil {
		return mc.trap(TrapNoDevice, in)
	}

	switch in.op {
	case OpJbus, OpJred:
		busy := dev.Busy()

		if (in.op == OpJbus && busy) || (in.op == OpJred && !busy) {
			target, err := mc.effectiveAddr(in)

			if err != nil {
				return err
			}

			mc.jumpTo(target, true)
		}

	case OpIoc:
		m, err := mc.effective(in)

		if err != nil {
			return err
		}

		if err := dev.Control(m); err != nil {
			return mc.trap(TrapHostIO, in)
		}

	case OpIn, OpOut:
		start, err := mc.effectiveAddr(in)

		if err != nil {
			return err
		}

		size := dev.BlockSize()

		if int(start)+size > MemSize {
			return mc.trap(TrapBadAddress, in)
		}

		block := make([]Word, size)

		if in.op == OpOut {
			for i := range block {
				block[i] = mc.read(start + uint16(i))
			}

			if err := dev.Write(block); err != nil {
				return mc.trap(TrapHostIO, in)
			}
		} else {
			if err := dev.Read(block); err != nil {
				return mc.trap(TrapHostIO, in)
			}

			for i := range block {
				mc.write(start+uint16(i), block[i])
			}
		}
	}

	return nil
}
