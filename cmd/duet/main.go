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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/duet/asm"
	"github.com/db47h/duet/relay"
	"github.com/db47h/duet/vm"
	"github.com/pkg/errors"
)

type regSeed struct {
	name rune
	v    vm.Word
}

// regList accumulates repeated -reg name=value flags.
type regList []regSeed

func (l *regList) String() string { return "" }
func (l *regList) Set(s string) error {
	name, val, ok := strings.Cut(s, "=")
	if !ok || len(name) != 1 || name[0] < 'a' || name[0] > 'z' {
		return errors.Errorf("expected name=value with a register name in 'a'-'z', got %q", s)
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, regSeed{rune(name[0]), vm.Word(n)})
	return nil
}

// wordList accumulates repeated -in value flags.
type wordList []vm.Word

func (l *wordList) String() string { return "" }
func (l *wordList) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, vm.Word(n))
	return nil
}

var (
	legacy bool
	pair   bool
	disasm bool
	debug  bool
	seeds  regList
	inputs wordList
)

func atExit(err error) {
	if err == nil {
		return
	}
	if debug {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(1)
}

func load() (vm.Program, error) {
	var src io.Reader = bufio.NewReader(os.Stdin)
	name := "stdin"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			return nil, errors.Wrap(err, "open program")
		}
		defer f.Close()
		src = bufio.NewReader(f)
	}
	return asm.Assemble(name, src)
}

func run() error {
	prog, err := load()
	if err != nil {
		return err
	}
	if disasm {
		return asm.DisassembleAll(prog, os.Stdout)
	}

	var opts []vm.Option
	if legacy {
		opts = append(opts, vm.Dialect(vm.Legacy))
	}
	for _, s := range seeds {
		opts = append(opts, vm.Seed(s.name, s.v))
	}

	if pair {
		if legacy {
			return errors.New("-pair requires the queue-based dialect")
		}
		p, err := relay.New(prog, opts...)
		if err != nil {
			return err
		}
		if err = p.Run(); err != nil {
			return err
		}
		fmt.Println(p.B.SendCount())
		return nil
	}

	i, err := vm.New(prog, opts...)
	if err != nil {
		return err
	}
	for _, v := range inputs {
		if err = i.EnqueueInput(v); err != nil {
			return err
		}
	}
	if i.State() == vm.Ready {
		if err = i.Run(); err != nil {
			return err
		}
	}
	for _, v := range i.DrainOutput() {
		fmt.Println(v)
	}
	if debug {
		fmt.Fprintf(os.Stderr, "state: %v, pc: %d, instructions: %d\n",
			i.State(), i.PC, i.InstructionCount())
	}
	return nil
}

func main() {
	flag.BoolVar(&legacy, "legacy", false, "use the legacy dialect: single-slot snd, terminal rcv")
	flag.BoolVar(&pair, "pair", false, "run two coupled machines and print machine B's send count")
	flag.BoolVar(&disasm, "d", false, "disassemble the program and exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Var(&seeds, "reg", "seed register `name=value` (can be specified multiple times)")
	flag.Var(&inputs, "in", "append `value` to the machine input queue (can be specified multiple times)")
	flag.Parse()

	atExit(run())
}
