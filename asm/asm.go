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
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/duet/internal/dvi"
	"github.com/db47h/duet/vm"
)

// Assemble compiles assembly read from the supplied io.Reader and returns
// the resulting program and error if any.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil and not an I/O failure of r, can safely be
// cast to an ErrAsm value that will contain up to 10 entries.
func Assemble(name string, r io.Reader) (p vm.Program, err error) {
	pr := &parser{name: name}
	if err = pr.Parse(r); err != nil {
		return nil, err
	}
	if len(pr.errs) > 0 {
		return nil, pr.errs
	}
	return pr.prog, nil
}

// Disassemble writes a source form of the instruction at position pc in the
// given program to the specified io.Writer and returns any write error.
func Disassemble(p vm.Program, pc int, w io.Writer) error {
	ew, _ := w.(*dvi.ErrWriter)
	if ew == nil {
		ew = dvi.NewErrWriter(w)
	}
	ins := p[pc]
	ew.WriteString(ins.Op.String())
	ew.WriteString(" ")
	ew.WriteString(formatOperand(ins.X))
	if ins.Op.Arity() == 2 {
		ew.WriteString(" ")
		ew.WriteString(formatOperand(ins.Y))
	}
	return ew.Err
}

// DisassembleAll writes a disassembly of the whole program to the specified
// io.Writer, one instruction per line prefixed with its index. It will
// return any write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := dvi.NewErrWriter(w)
	for pc := range p {
		fmt.Fprintf(ew, "% 6d\t", pc)
		Disassemble(p, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

func formatOperand(o vm.Operand) string {
	if o.Reg {
		return string(rune('a' + o.Val))
	}
	return strconv.FormatInt(int64(o.Val), 10)
}
