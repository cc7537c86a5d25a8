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
	"strings"
	"testing"

	"github.com/db47h/duet/vm"
)

func drainEqual(t *testing.T, i *vm.Instance, expected []vm.Word) {
	t.Helper()
	out := i.DrainOutput()
	if len(out) != len(expected) {
		t.Errorf("output %v, expected %v", out, expected)
		return
	}
	for k := range expected {
		if out[k] != expected[k] {
			t.Errorf("output %v, expected %v", out, expected)
			return
		}
	}
}

func TestQueueOrder(t *testing.T) {
	i := setup(t, "fifo", "rcv a\nrcv b\nsnd b\nsnd a")
	for _, v := range []vm.Word{1, 2} {
		if err := i.EnqueueInput(v); err != nil {
			t.Fatalf("%+v", err)
		}
	}
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if i.State() != vm.Terminated {
		t.Fatalf("state %v, expected %v", i.State(), vm.Terminated)
	}
	// inputs consumed in order, outputs produced in order
	if a, b := i.Register('a'), i.Register('b'); a != 1 || b != 2 {
		t.Errorf("a, b = %d, %d, expected 1, 2", a, b)
	}
	drainEqual(t, i, []vm.Word{2, 1})
}

func TestDrainIdempotent(t *testing.T) {
	i := setup(t, "drain", "snd 1\nsnd 2\nsnd 3")
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	drainEqual(t, i, []vm.Word{1, 2, 3})
	drainEqual(t, i, nil)
}

func TestInputBeforeRun(t *testing.T) {
	// a pre-filled queue means rcv never blocks
	i := setup(t, "prefill", "rcv a")
	if err := i.EnqueueInput(11); err != nil {
		t.Fatalf("%+v", err)
	}
	if n := i.PendingInput(); n != 1 {
		t.Errorf("pending input %d, expected 1", n)
	}
	check(t, "prefill", i, 1, R{'a': 11})
	if n := i.PendingInput(); n != 0 {
		t.Errorf("pending input %d, expected 0", n)
	}
}

func TestBlockedResumesSameInstruction(t *testing.T) {
	i := setup(t, "resume", "snd 1\nrcv a")
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	drainEqual(t, i, []vm.Word{1})
	if i.State() != vm.Blocked || i.PC != 1 {
		t.Fatalf("state %v at PC %d, expected %v at 1", i.State(), i.PC, vm.Blocked)
	}
	if n := i.InstructionCount(); n != 1 {
		t.Errorf("instruction count %d while blocked, expected 1", n)
	}
	if err := i.EnqueueInput(5); err != nil {
		t.Fatalf("%+v", err)
	}
	check(t, "resume", i, 2, R{'a': 5})
}

func TestEnqueueInputTerminated(t *testing.T) {
	i := setup(t, "halted", "inc a")
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	err := i.EnqueueInput(1)
	if err == nil || !strings.Contains(err.Error(), "terminated") {
		t.Errorf("EnqueueInput on terminated VM: got %v", err)
	}
}

func TestLegacySendDoesNotQueue(t *testing.T) {
	i := setup(t, "legacy snd", "snd 40\nsnd 42", vm.Dialect(vm.Legacy))
	if err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	drainEqual(t, i, nil)
	if v := i.PeekLastOutput(); v != 42 {
		t.Errorf("last output %d, expected 42", v)
	}
	if n := i.SendCount(); n != 2 {
		t.Errorf("send count %d, expected 2", n)
	}
}
