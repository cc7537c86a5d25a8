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

// Package asm provides utility functions to assemble and disassemble Duet
// VM code.
//
// Source text holds one instruction per line: a mnemonic followed by its
// operands, separated by spaces, tabs and/or commas. An operand is either a
// register name ('a' through 'z') or an integer literal with an optional
// sign. Everything from '#' to the end of the line is a comment.
//
// Supported assembler mnemonics:
//
//	R denotes an operand that must be a register, V an operand that may be
//	a register (read as its current value) or a literal.
//
//	mnemonic	description
//	--------	------------------------------------------------------------
//	set R V		R := V
//	add R V		R += V
//	sub R V		R -= V
//	mul R V		R *= V
//	mod R V		R %= V
//	jgz V V		if first V > 0, jump by second V
//	jnz V V		if first V != 0, jump by second V
//	snd V		send V: queued output in the Duet dialect, last-value
//			slot in the Legacy dialect
//	rcv R		Duet dialect: dequeue input into R, blocking when the
//			queue is empty. Legacy dialect: if R != 0, stop and
//			deliver the last sent value
//	hlf R		R /= 2
//	tpl R		R *= 3
//	inc R		R++
//	jmp V		jump by V
//	jie R V		if R is even, jump by V
//	jio R V		if R == 1, jump by V
//
// Jump offsets are relative to the jumping instruction and are applied
// verbatim: the machine does not add the usual post-instruction increment on
// a taken jump. Programs authored for a machine that increments the pointer
// after every instruction, jumps included, must have their offsets reduced
// by one.
//
// The assembler validates arity and operand kinds, so the machine never sees
// an instruction with a literal in a register-only position. Errors carry
// the source name and line; Assemble collects up to 10 of them before
// giving up.
package asm
