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
	"github.com/sirupsen/logrus"

	"github.com/lassandro/gomix/pkg/machine"
)

// Tracer logs one structured line per executed instruction. It hooks
// the same machine callbacks the interactive debugger does, so either
// can be installed.
type Tracer struct {
	Log *logrus.Logger
}

func NewTracer() *Tracer {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)

	return &Tracer{Log: log}
}

func (t *Tracer) Step(mc *machine.Machine) {
	if mc.State.Program >= machine.MemSize {
		return
	}

	w := mc.State.Memory[mc.State.Program]

	fields := logrus.Fields{
		"pc": mc.State.Program,
		"a":  w.Sign() * int64(uint64(w[1])<<8|uint64(w[2])),
		"i":  w[3],
		"f":  w[4],
		"c":  w[5],
	}

	t.Log.WithFields(fields).Debug("step")
}

func (t *Tracer) Read(addr uint16, mc *machine.Machine) {}

func (t *Tracer) Write(addr uint16, mc *machine.Machine) {
	fields := logrus.Fields{
		"addr":  addr,
		"value": mc.State.Memory[addr].Int(),
	}

	t.Log.WithFields(fields).Debug("write")
}
