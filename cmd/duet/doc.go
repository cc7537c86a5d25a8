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

// The duet command line tool assembles and runs Duet VM programs using the
// package github.com/db47h/duet/vm.
//
// Usage:
//
//	duet [options] [program-file]
//
// The program is read from program-file, or from standard input when no file
// is given. In the default solo mode the machine runs until it blocks or
// terminates and the drained output is printed one value per line. With
// -pair, two machines run the program coupled through the relay coordinator
// and the send count of machine B is printed instead.
//
//	-d	disassemble the program and exit
//	-debug
//		  enable debug diagnostics
//	-in value
//		  append value to the machine input queue (can be specified multiple times)
//	-legacy
//		  use the legacy dialect: single-slot snd, terminal rcv
//	-pair
//		  run two coupled machines and print machine B's send count
//	-reg name=value
//		  seed register name with value (can be specified multiple times)
package main
