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

// Package vm implements the Duet register machine.
//
// A machine instance executes a fixed Program over a bank of 26 integer
// registers named 'a' through 'z'. Registers read as 0 until written; there
// is no undefined-register error. Besides registers, an instance owns two
// unbounded FIFO queues of integers: an input queue fed by the driver and an
// output queue produced by the program.
//
// Scheduling is cooperative and single threaded. An instance is always in
// one of three states: Ready, Blocked or Terminated. Run executes
// instructions until the machine leaves the Ready state. A receive
// instruction finding the input queue empty parks the machine in Blocked
// without advancing the instruction pointer, so execution resumes on the
// same instruction once the driver has called EnqueueInput. The machine
// terminates when the instruction pointer leaves the program, and
// Terminated is final.
//
// Run and EnqueueInput report misuse (running a machine that cannot make
// progress, feeding a halted machine) as errors instead of ignoring it;
// anything else - overflow, pathological jumps - is executed as written.
//
// Two operation-set dialects exist, selected once at construction with the
// Dialect option. The default Duet dialect queues snd values and blocks rcv
// on an empty input queue. The Legacy dialect predates the queue model: snd
// overwrites a single last-value slot and rcv with a non-zero operand value
// stops the machine, delivering that slot as the result. See the asm package
// documentation for per-instruction semantics.
//
// Note that for performance reasons, the instruction pointer is not
// incremented in a single place; each opcode deals with the pointer as
// needed. This only matters when hacking the executor itself.
//
// TODO:
//   - add a Reset func: clear registers and queues, reset the pointer to 0.
package vm
