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

// Word is the integer type held in registers and I/O queues.
type Word int64

// RegCount is the size of the register bank, one slot per register 'a'-'z'.
const RegCount = 26

// Operand is a single instruction operand: either an integer literal or a
// register reference.
type Operand struct {
	Reg bool // Val is a register index rather than a literal
	Val Word
}

// Lit returns a literal operand.
func Lit(v Word) Operand { return Operand{Val: v} }

// Ref returns a register operand. The name must be in 'a'-'z'.
func Ref(name rune) Operand { return Operand{Reg: true, Val: Word(name - 'a')} }

// Instruction is a single decoded machine instruction. The X operand of
// every writing operation is guaranteed by the loader to be a register
// reference; the executor does not re-check this.
type Instruction struct {
	Op   Op
	X, Y Operand
}

// Program is an immutable sequence of instructions. It is never mutated by
// the machine and may safely be shared between instances.
type Program []Instruction

// State is the lifecycle state of a machine instance.
type State int

// Machine lifecycle states. Terminated is final.
const (
	Ready State = iota
	Blocked
	Terminated
)

var stateNames = [...]string{"ready", "blocked", "terminated"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// DialectVersion selects the operation-set variant of the snd and rcv
// instructions. It is fixed at construction time.
type DialectVersion int

const (
	// Duet is the queue-based dialect: snd appends to the output queue,
	// rcv dequeues from the input queue and blocks when it is empty.
	Duet DialectVersion = iota
	// Legacy is the single-slot dialect: snd overwrites the last-value
	// slot, rcv with a non-zero operand value terminates the machine and
	// delivers that slot to the output queue.
	Legacy
)

// Instance represents a Duet VM instance.
type Instance struct {
	PC       int // Program Counter (aka. Instruction Pointer)
	prog     Program
	reg      [RegCount]Word
	state    State
	ops      dialectOps
	input    []Word
	output   []Word
	last     Word // last transmitted value (Legacy dialect)
	insCount int64
	sndCount int64
}

// Option interface
type Option func(*Instance) error

// Dialect selects the operation-set variant. The default is Duet.
func Dialect(v DialectVersion) Option {
	return func(i *Instance) error {
		switch v {
		case Duet:
			i.ops = duetOps{}
		case Legacy:
			i.ops = legacyOps{}
		default:
			return errors.Errorf("unknown dialect version %d", v)
		}
		return nil
	}
}

// Seed sets the initial value of a register, e.g. the machine identity
// register in paired setups.
func Seed(name rune, v Word) Option {
	return func(i *Instance) error {
		if name < 'a' || name > 'z' {
			return errors.Errorf("invalid register name %q", name)
		}
		i.reg[name-'a'] = v
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Duet Virtual Machine instance running the given program.
//
// All registers start at 0 unless seeded with the Seed option. An empty
// program yields an instance that is already Terminated.
func New(p Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		prog: p,
		ops:  duetOps{},
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		i.state = Terminated
	}
	return i, nil
}

// State returns the current lifecycle state of the machine.
func (i *Instance) State() State {
	return i.state
}

// Register returns the current value of the named register. Registers that
// were never written read as 0.
func (i *Instance) Register(name rune) Word {
	return i.reg[name-'a']
}

// SetRegister sets the named register to v.
func (i *Instance) SetRegister(name rune, v Word) {
	i.reg[name-'a'] = v
}

// InstructionCount returns the number of instructions executed so far. It is
// cumulative across Run calls, since a blocked machine resumes mid-program.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// SendCount returns the number of snd instructions executed so far.
func (i *Instance) SendCount() int64 {
	return i.sndCount
}

// value resolves an operand to the value it reads: the literal itself, or
// the current content of the referenced register.
func (i *Instance) value(o Operand) Word {
	if o.Reg {
		return i.reg[o.Val]
	}
	return o.Val
}

// target resolves a write operand to its register slot. Only valid for
// operands the loader validated as register references.
func (i *Instance) target(o Operand) *Word {
	return &i.reg[o.Val]
}
