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

// Op identifies a Duet machine operation.
type Op int

// Duet Virtual Machine Opcodes.
const (
	OpSet Op = iota // set X Y: X := Y
	OpAdd           // add X Y: X += Y
	OpSub           // sub X Y: X -= Y
	OpMul           // mul X Y: X *= Y
	OpMod           // mod X Y: X %= Y
	OpJgz           // jgz X Y: if X > 0, jump Y
	OpJnz           // jnz X Y: if X != 0, jump Y
	OpSnd           // snd X: send X (dialect dependent)
	OpRcv           // rcv X: receive into X (dialect dependent)
	OpHlf           // hlf X: X /= 2
	OpTpl           // tpl X: X *= 3
	OpInc           // inc X: X++
	OpJmp           // jmp X: jump X
	OpJie           // jie X Y: if X is even, jump Y
	OpJio           // jio X Y: if X == 1, jump Y
)

var opNames = [...]string{
	"set",
	"add",
	"sub",
	"mul",
	"mod",
	"jgz",
	"jnz",
	"snd",
	"rcv",
	"hlf",
	"tpl",
	"inc",
	"jmp",
	"jie",
	"jio",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "???"
	}
	return opNames[op]
}

// Arity returns the operand count of op.
func (op Op) Arity() int {
	switch op {
	case OpSet, OpAdd, OpSub, OpMul, OpMod, OpJgz, OpJnz, OpJie, OpJio:
		return 2
	default:
		return 1
	}
}

var opcodeIndex = make(map[string]Op)

func init() {
	for i, v := range opNames {
		opcodeIndex[v] = Op(i)
	}
}

// LookupOp returns the opcode for the given mnemonic.
func LookupOp(name string) (op Op, ok bool) {
	op, ok = opcodeIndex[name]
	return op, ok
}
