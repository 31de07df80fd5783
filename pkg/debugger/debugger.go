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

package debugger

import (
	"fmt"

	"github.com/lassandro/gomix/pkg/machine"
)

func (dbg *Debugger) Step(mc *machine.Machine) {
	if dbg.Break {
		dbg.HandleBreak(dbg, mc)
		return
	}

	for _, breakpoint := range dbg.Breakpoints {
		if mc.State.Program == breakpoint.Addr {
			dbg.HandleBreak(dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Read(addr uint16, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == WriteWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleRead(addr, dbg, mc)
			break
		}
	}
}

func (dbg *Debugger) Write(addr uint16, mc *machine.Machine) {
	for _, watchpoint := range dbg.Watchpoints {
		if watchpoint.Type == ReadWatch {
			continue
		}

		if addr == watchpoint.Addr {
			dbg.HandleWrite(addr, dbg, mc)
			break
		}
	}
}

// PrintMem dumps count words starting at addr, one word per line as
// sign, magnitude bytes and the collapsed value; an all-zero (+0) word
// is printed dimmed and without the value.
func (dbg *Debugger) PrintMem(mc *machine.MachineState, addr, count uint16) {
	for i := addr; i < addr+count && i < machine.MemSize; i++ {
		w := mc.Memory[i]

		sign := "+"
		if w[0] != machine.SignPos {
			sign = "-"
		}

		if w == (machine.Word{}) {
			fmt.Printf(
				"\033[1m[%04d]\033[0m \033[1;30m%s %02x %02x %02x %02x %02x\033[0m\n",
				i, sign, w[1], w[2], w[3], w[4], w[5],
			)
		} else {
			fmt.Printf(
				"\033[1m[%04d]\033[0m %s %02x %02x %02x %02x %02x (%d)\n",
				i, sign, w[1], w[2], w[3], w[4], w[5], w.Int(),
			)
		}
	}
}

// PrintRegisters dumps the whole register file and the indicators.
func (dbg *Debugger) PrintRegisters(mc *machine.MachineState) {
	fmt.Printf(
		"\033[1mrA:\033[0m %x (%d)\t\033[1mrX:\033[0m %x (%d)\n",
		mc.RA[:], mc.RA.Int(), mc.RX[:], mc.RX.Int(),
	)

	for i := 1; i <= 6; i++ {
		fmt.Printf("\033[1mrI%d:\033[0m %d\t", i, mc.RI[i].Int())
		if i == 3 {
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Printf(
		"\033[1mrJ:\033[0m %d\t\033[1mPC:\033[0m %04d\t\033[1mCI:\033[0m %s\t\033[1mOV:\033[0m %t\n",
		mc.RJ.Int(), mc.Program, mc.Comp, mc.Overflow,
	)
}
