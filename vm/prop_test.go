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

package vm_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/db47h/duet/vm"
)

// linearProgram derives a jump-free arithmetic program from raw integers:
// opcode, destination register and literal operand all come from the same
// value, which keeps the generator a plain int64 slice.
func linearProgram(ws []int64) vm.Program {
	ops := []vm.Op{vm.OpSet, vm.OpAdd, vm.OpSub, vm.OpMul}
	p := make(vm.Program, len(ws))
	for i, w := range ws {
		op := ops[((w%4)+4)%4]
		dst := vm.Ref(rune('a' + ((w%26)+26)%26))
		p[i] = vm.Instruction{Op: op, X: dst, Y: vm.Lit(vm.Word(w))}
	}
	return p
}

func TestProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("jump-free programs run each instruction once, in order", prop.ForAll(
		func(ws []int64) bool {
			p := linearProgram(ws)
			i, err := vm.New(p)
			if err != nil {
				return false
			}
			if len(p) == 0 {
				return i.State() == vm.Terminated
			}
			if err = i.Run(); err != nil {
				return false
			}
			return i.State() == vm.Terminated &&
				i.PC == len(p) &&
				i.InstructionCount() == int64(len(p))
		},
		gen.SliceOf(gen.Int64Range(-1000, 1000)),
	))

	properties.Property("identical runs leave identical registers", prop.ForAll(
		func(ws []int64) bool {
			p := linearProgram(ws)
			a, err := vm.New(p)
			if err != nil {
				return false
			}
			b, err := vm.New(p)
			if err != nil {
				return false
			}
			if a.State() == vm.Ready {
				if err = a.Run(); err != nil {
					return false
				}
			}
			if b.State() == vm.Ready {
				if err = b.Run(); err != nil {
					return false
				}
			}
			for n := 'a'; n <= 'z'; n++ {
				if a.Register(n) != b.Register(n) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64Range(-1000, 1000)),
	))

	properties.Property("drain returns every sent value exactly once", prop.ForAll(
		func(ws []int64) bool {
			p := make(vm.Program, len(ws))
			for i, w := range ws {
				p[i] = vm.Instruction{Op: vm.OpSnd, X: vm.Lit(vm.Word(w))}
			}
			i, err := vm.New(p)
			if err != nil {
				return false
			}
			if i.State() == vm.Ready {
				if err = i.Run(); err != nil {
					return false
				}
			}
			out := i.DrainOutput()
			if len(out) != len(ws) {
				return false
			}
			for k, v := range out {
				if v != vm.Word(ws[k]) {
					return false
				}
			}
			return len(i.DrainOutput()) == 0
		},
		gen.SliceOf(gen.Int64Range(-1000, 1000)),
	))

	properties.TestingRun(t)
}
