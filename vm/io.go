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

// EnqueueInput appends v to the input queue. A machine blocked on rcv
// becomes Ready again (the pending rcv will consume the value on the next
// Run). Feeding a Terminated machine is an error.
func (i *Instance) EnqueueInput(v Word) error {
	if i.state == Terminated {
		return errors.New("cannot enqueue input: VM is terminated")
	}
	i.input = append(i.input, v)
	if i.state == Blocked {
		i.state = Ready
	}
	return nil
}

// DrainOutput returns the entire output queue in FIFO order and clears it.
// Draining twice without intervening execution yields nil the second time.
func (i *Instance) DrainOutput() []Word {
	out := i.output
	i.output = nil
	return out
}

// PeekLastOutput returns the most recently transmitted value without
// clearing it. Meaningful for the Legacy dialect, whose snd keeps a single
// last-value slot instead of queuing.
func (i *Instance) PeekLastOutput() Word {
	return i.last
}

// PendingInput returns the number of values waiting in the input queue.
func (i *Instance) PendingInput() int {
	return len(i.input)
}
