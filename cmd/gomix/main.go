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

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lassandro/gomix/pkg/debugger"
	"github.com/lassandro/gomix/pkg/image"
	"github.com/lassandro/gomix/pkg/machine"
)

var helpvar bool
var debugvar bool
var tracevar bool
var shouldexit bool

const usage = "gomix [image]"

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(&debugvar, "debug", false, "Runs the machine in a debug CLI")
	flag.BoolVar(&tracevar, "trace", false, "Logs every executed instruction")
	flag.Parse()
}

func gomix() int {
	if helpvar {
		fmt.Println(usage)
		return 0
	}

	args := flag.Args()

	if len(args) > 1 {
		log.Println(usage)
		return 1
	}

	var mem [machine.MemSize]machine.Word
	var entry uint16

	if len(args) == 1 {
		file, err := os.Open(args[0])

		if err != nil {
			log.Println(err)
			return 1
		}

		err = image.Load(file, &mem)
		file.Close()

		if err != nil {
			log.Println(err)
			return 1
		}
	} else {
		entry = image.Builtin(&mem)
	}

	var mc machine.Machine
	tty := machine.NewTypewriter(bufio.NewWriter(os.Stdout))
	mc.Devices[machine.DevTypewriter] = tty
	mc.Devices[machine.DevPaperTape] = machine.NewPaperTape(
		bufio.NewReader(os.Stdin),
	)

	mc.LoadImage(&mem, entry)

	enterLineTerm()
	defer exitLineTerm()

	if debugvar {
		var dbg debugger.Debugger
		dbg.HandleBreak = handleBreak
		dbg.HandleRead = handleRead
		dbg.HandleWrite = handleWrite
		mc.Debugger = &dbg

		debugREPL(&dbg, &mc)
	} else if tracevar {
		mc.Debugger = debugger.NewTracer()
	}

	for !mc.State.Halted && !shouldexit {
		if err := mc.Step(); err != nil {
			if errors.Is(err, machine.ErrHalted) {
				break
			}

			tty.Control(machine.ControlFlush)
			log.Println(err)
			return 1
		}
	}

	// A resident program normally flushes its last line itself; this
	// catches output abandoned mid-line.
	if err := tty.Control(machine.ControlFlush); err != nil {
		log.Println(err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(gomix())
}
