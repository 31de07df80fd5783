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
	"errors"
)

// ErrHalted is returned by Step once the machine has halted.
var ErrHalted = errors.New("machine is halted")

func (mc *MachineState) Reset() {
	mc.RA = Word{}
	mc.RX = Word{}

	for i := range mc.RI {
		mc.RI[i] = Index{}
	}

	mc.RJ = Index{}
	mc.Comp = Equal
	mc.Overflow = false
	mc.Halted = false
	mc.Program = 0

	for i := range mc.Memory {
		mc.Memory[i] = Word{}
	}
}

// LoadImage installs a memory image and entry point on a reset
// machine, ready to run.
func (mc *Machine) LoadImage(mem *[MemSize]Word, entry uint16) {
	mc.State.Reset()
	mc.State.Memory = *mem
	mc.State.Program = entry
}

// instruction is one decoded word plus its provenance, carried so any
// handler can name the faulting word in a trap.
type instruction struct {
	pc    uint16
	word  Word
	addr  int64
	index byte
	field byte
	op    byte
}

func decode(pc uint16, w Word) instruction {
	return instruction{
		pc:    pc,
		word:  w,
		addr:  w.Sign() * int64(uint64(w[1])<<8|uint64(w[2])),
		index: w[3],
		field: w[4],
		op:    w[5],
	}
}

func (mc *Machine) trap(kind TrapKind, in *instruction) error {
	return &Trap{Kind: kind, Addr: in.pc, Instr: in.word}
}

func (mc *Machine) read(addr uint16) Word {
	if mc.Debugger != nil {
		mc.Debugger.Read(addr, mc)
	}

	return mc.State.Memory[addr]
}

func (mc *Machine) write(addr uint16, value Word) {
	mc.State.Memory[addr] = value

	if mc.Debugger != nil {
		mc.Debugger.Write(addr, mc)
	}
}

// effective resolves M = A + rIi as a signed value.
func (mc *Machine) effective(in *instruction) (int64, error) {
	if in.index > 6 {
		return 0, mc.trap(TrapIllegalInstruction, in)
	}

	return in.addr + mc.State.RI[in.index].Int(), nil
}

// effectiveAddr resolves M and requires it to be a memory address.
func (mc *Machine) effectiveAddr(in *instruction) (uint16, error) {
	m, err := mc.effective(in)

	if err != nil {
		return 0, err
	}

	if m < 0 || m >= MemSize {
		return 0, mc.trap(TrapBadAddress, in)
	}

	return uint16(m), nil
}

// operand resolves V(M,F), the field-selected memory operand.
func (mc *Machine) operand(in *instruction) (int64, error) {
	addr, err := mc.effectiveAddr(in)

	if err != nil {
		return 0, err
	}

	value, ok := mc.read(addr).Field(in.field)

	if !ok {
		return 0, mc.trap(TrapBadField, in)
	}

	return value, nil
}

// jumpTo installs a jump target, recording the return address in rJ
// unless the jump is the save-less variant.
func (mc *Machine) jumpTo(target uint16, saveJ bool) {
	if saveJ {
		mc.State.RJ = Index{SignPos, byte(mc.State.Program >> 8), byte(mc.State.Program)}
	}

	mc.State.Program = target
}

// Step fetches, decodes and executes a single instruction. A non-nil
// error is either ErrHalted or a *Trap; after a trap the machine is
// halted.
func (mc *Machine) Step() error {
	if mc.State.Halted {
		return ErrHalted
	}

	if mc.Debugger != nil {
		mc.Debugger.Step(mc)
	}

	if mc.State.Program >= MemSize {
		mc.State.Halted = true
		return &Trap{Kind: TrapBadProgram, Addr: mc.State.Program}
	}

	pc := mc.State.Program
	in := decode(pc, mc.read(pc))

	mc.State.Program++

	var err error

	switch {
	case in.op == OpNop:
		// All fields ignored.

	case in.op <= OpDiv:
		err = mc.arith(&in)

	case in.op == OpSpecial:
		err = mc.special(&in)

	case in.op == OpShift:
		err = mc.shift(&in)

	case in.op == OpMove:
		err = mc.move(&in)

	case in.op <= OpLdXN:
		err = mc.load(&in)

	case in.op <= OpStZ:
		err = mc.store(&in)

	case in.op <= OpJred:
		err = mc.deviceOp(&in)

	case in.op <= OpJX:
		err = mc.jump(&in)

	case in.op <= OpModifyX:
		err = mc.modify(&in)

	case in.op <= OpCmpX:
		err = mc.compare(&in)

	default:
		err = mc.trap(TrapIllegalInstruction, &in)
	}

	if err != nil {
		mc.State.Halted = true
		return err
	}

	return nil
}

// Run steps the machine until it halts. A clean HLT returns nil; a
// trap is returned as-is.
func (mc *Machine) Run() error {
	for !mc.State.Halted {
		if err := mc.Step(); err != nil {
			if errors.Is(err, ErrHalted) {
				return nil
			}
			return err
		}
	}

	return nil
}
