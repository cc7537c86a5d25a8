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

// Package relay couples two Duet VM instances so that one machine's sends
// become the other machine's input.
package relay

import (
	"github.com/db47h/duet/vm"
	"github.com/pkg/errors"
)

// IDRegister is the register seeded with the machine identity: 0 on machine
// A, 1 on machine B.
const IDRegister = 'p'

// Pair drives two machines running the same program in round-robin fashion,
// relaying each machine's output into the other's input queue.
type Pair struct {
	A, B *vm.Instance
}

// New builds a machine pair running prog. Both machines get the provided
// options; machine B additionally has its identity register seeded to 1.
func New(prog vm.Program, opts ...vm.Option) (*Pair, error) {
	a, err := vm.New(prog, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "machine A")
	}
	// re-slice with a hard cap so the append cannot scribble over a
	// caller-owned backing array
	opts = append(opts[:len(opts):len(opts)], vm.Seed(IDRegister, 1))
	b, err := vm.New(prog, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "machine B")
	}
	return &Pair{A: a, B: b}, nil
}

// Run alternates between the two machines until neither is Ready, i.e. both
// are blocked waiting on each other with nothing in flight, or terminated.
// After each machine's turn its output is drained and fed, in order, to the
// other machine; a machine blocked on input becomes Ready again as soon as
// its peer sends.
//
// Progress is guaranteed only by the program itself: a pair exchanging
// values forever will keep Run busy forever.
func (p *Pair) Run() error {
	for p.A.State() == vm.Ready || p.B.State() == vm.Ready {
		if err := turn(p.A, p.B); err != nil {
			return errors.Wrap(err, "machine A")
		}
		if err := turn(p.B, p.A); err != nil {
			return errors.Wrap(err, "machine B")
		}
	}
	return nil
}

// turn runs m if it can make progress and relays its pending output to peer.
func turn(m, peer *vm.Instance) error {
	if m.State() != vm.Ready {
		return nil
	}
	if err := m.Run(); err != nil {
		return err
	}
	for _, v := range m.DrainOutput() {
		if peer.State() == vm.Terminated {
			// a halted machine reads nothing; the remaining values
			// can never be consumed
			break
		}
		if err := peer.EnqueueInput(v); err != nil {
			return err
		}
	}
	return nil
}
