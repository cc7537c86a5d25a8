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

package relay_test

import (
	"fmt"
	"strings"

	"github.com/db47h/duet/asm"
	"github.com/db47h/duet/relay"
)

// Two machines run the same program, each sending three values (the last
// one its own identity) and then waiting for four. Only three ever arrive,
// so the pair deadlocks and Run returns; machine B sent 3 values by then.
func ExamplePair() {
	const src = `snd 1
snd 2
snd p
rcv a
rcv b
rcv c
rcv d`

	prog, err := asm.Assemble("pair", strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	p, err := relay.New(prog)
	if err != nil {
		panic(err)
	}
	if err = p.Run(); err != nil {
		panic(err)
	}

	fmt.Println(p.B.SendCount())

	// Output:
	// 3
}
