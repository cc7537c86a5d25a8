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

package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/duet/vm"
	"github.com/pkg/errors"
)

// maxErrors is the cap on collected parse errors before the parser gives up
// reporting further ones.
const maxErrors = 10

// Error is a single parse error with its source position.
type Error struct {
	Name string // source name, as passed to Assemble
	Line int
	Msg  string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 entries.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// regOperands flags the operand positions that must be register references,
// bit 0 for X, bit 1 for Y. The rcv operand is register-only in both
// dialects: the Duet dialect writes into it and every known Legacy program
// reads a register there.
var regOperands = map[vm.Op]uint{
	vm.OpSet: 1,
	vm.OpAdd: 1,
	vm.OpSub: 1,
	vm.OpMul: 1,
	vm.OpMod: 1,
	vm.OpRcv: 1,
	vm.OpHlf: 1,
	vm.OpTpl: 1,
	vm.OpInc: 1,
	vm.OpJie: 1,
	vm.OpJio: 1,
}

type parser struct {
	name string
	line int
	prog vm.Program
	errs ErrAsm
}

func (p *parser) errorf(format string, args ...interface{}) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, Error{p.name, p.line, fmt.Sprintf(format, args...)})
	}
}

func isSep(r rune) bool {
	return r == ' ' || r == '\t' || r == ','
}

// Parse reads source text from r and compiles it.
func (p *parser) Parse(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		line := s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, isSep)
		if len(fields) == 0 {
			continue
		}
		p.instruction(fields)
	}
	return errors.Wrap(s.Err(), "read program")
}

func (p *parser) instruction(fields []string) {
	op, ok := vm.LookupOp(fields[0])
	if !ok {
		p.errorf("unknown instruction %q", fields[0])
		return
	}
	if len(fields)-1 != op.Arity() {
		p.errorf("%v: want %d operand(s), got %d", op, op.Arity(), len(fields)-1)
		return
	}
	ins := vm.Instruction{Op: op}
	reg := regOperands[op]
	ins.X, ok = p.operand(fields[1], reg&1 != 0)
	if op.Arity() == 2 {
		var okY bool
		ins.Y, okY = p.operand(fields[2], reg&2 != 0)
		ok = ok && okY
	}
	if ok {
		p.prog = append(p.prog, ins)
	}
}

func (p *parser) operand(s string, mustReg bool) (vm.Operand, bool) {
	if len(s) == 1 && 'a' <= s[0] && s[0] <= 'z' {
		return vm.Ref(rune(s[0])), true
	}
	if mustReg {
		p.errorf("operand %q: register required", s)
		return vm.Operand{}, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.errorf("operand %q: not a register or integer literal", s)
		return vm.Operand{}, false
	}
	return vm.Lit(vm.Word(v)), true
}
