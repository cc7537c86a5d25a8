// This file is part of duet - https://github.com/db47h/duet
//
// Copyright 2017 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import "github.com/pkg/errors"

// Run executes instructions until the machine blocks on input or terminates.
//
// Calling Run on a machine that is not Ready is a driver bug and returns an
// error: a Blocked machine needs EnqueueInput first, a Terminated machine
// can never run again. Silently returning instead would desynchronize the
// driver's view of the machine, so the failure is loud.
//
// A program that never blocks nor terminates will keep Run busy forever;
// there is no watchdog.
func (i *Instance) Run() error {
	if i.state != Ready {
		return errors.Errorf("cannot run: VM is %v", i.state)
	}
	for i.state == Ready {
		i.step()
	}
	return nil
}

// step executes the instruction under PC. Each opcode manages the PC itself:
// plain instructions increment it, jumps add their offset verbatim with no
// implicit increment on top.
func (i *Instance) step() {
	ins := i.prog[i.PC]
	switch ins.Op {
	case OpSet:
		*i.target(ins.X) = i.value(ins.Y)
		i.PC++
	case OpAdd:
		*i.target(ins.X) += i.value(ins.Y)
		i.PC++
	case OpSub:
		*i.target(ins.X) -= i.value(ins.Y)
		i.PC++
	case OpMul:
		*i.target(ins.X) *= i.value(ins.Y)
		i.PC++
	case OpMod:
		*i.target(ins.X) %= i.value(ins.Y)
		i.PC++
	case OpHlf:
		*i.target(ins.X) /= 2
		i.PC++
	case OpTpl:
		*i.target(ins.X) *= 3
		i.PC++
	case OpInc:
		*i.target(ins.X)++
		i.PC++
	case OpJmp:
		i.PC += int(i.value(ins.X))
	case OpJgz:
		if i.value(ins.X) > 0 {
			i.PC += int(i.value(ins.Y))
		} else {
			i.PC++
		}
	case OpJnz:
		if i.value(ins.X) != 0 {
			i.PC += int(i.value(ins.Y))
		} else {
			i.PC++
		}
	case OpJie:
		if i.value(ins.X)&1 == 0 {
			i.PC += int(i.value(ins.Y))
		} else {
			i.PC++
		}
	case OpJio:
		if i.value(ins.X) == 1 {
			i.PC += int(i.value(ins.Y))
		} else {
			i.PC++
		}
	case OpSnd:
		i.ops.send(i, ins.X)
	case OpRcv:
		i.ops.receive(i, ins.X)
		if i.state == Blocked {
			// PC untouched, nothing executed: the same rcv runs again
			// once input shows up.
			return
		}
	}
	i.insCount++
	if i.state == Ready && (i.PC < 0 || i.PC >= len(i.prog)) {
		i.state = Terminated
	}
}

// dialectOps is the strategy implementing the dialect-specific snd and rcv
// instructions, keeping the executor itself dialect agnostic.
type dialectOps interface {
	send(i *Instance, x Operand)
	receive(i *Instance, x Operand)
}

// duetOps is the queue-based operation set.
type duetOps struct{}

func (duetOps) send(i *Instance, x Operand) {
	i.output = append(i.output, i.value(x))
	i.sndCount++
	i.PC++
}

func (duetOps) receive(i *Instance, x Operand) {
	if len(i.input) == 0 {
		i.state = Blocked
		return
	}
	*i.target(x) = i.input[0]
	i.input = i.input[1:]
	i.PC++
}

// legacyOps is the single-slot operation set: snd overwrites the last-value
// slot, rcv with a non-zero operand value stops the machine and delivers
// that slot as the result.
type legacyOps struct{}

func (legacyOps) send(i *Instance, x Operand) {
	i.last = i.value(x)
	i.sndCount++
	i.PC++
}

func (legacyOps) receive(i *Instance, x Operand) {
	if i.value(x) != 0 {
		i.output = append(i.output, i.last)
		i.state = Terminated
		return
	}
	i.PC++
}
