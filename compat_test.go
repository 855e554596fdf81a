/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package snowflake_test

import (
	"testing"

	bw "github.com/bwmarrin/snowflake"
	"github.com/fogfish/it/v2"
	"github.com/fogfish/snowflake"
)

// The layout is bit-compatible with bwmarrin/snowflake (41/10/12) where
// its 10-bit node is ⟨𝒅⟩ << 5 | ⟨𝒎⟩.

func TestCompatDecode(t *testing.T) {
	bw.Epoch = snowflake.Epoch

	gen := snowflake.Must(snowflake.New(2, 3))
	for i := 0; i < 100; i++ {
		id := gen.MustNextID()
		x := bw.ParseInt64(int64(id))

		it.Then(t).Should(
			it.Equal(x.Node(), int64(2<<snowflake.MachineBits|3)),
			it.Equal(x.Step(), int64(snowflake.Seq(id))),
			it.Equal(x.Time(), snowflake.Time(id).UnixMilli()),
		)
	}
}

func TestCompatEncode(t *testing.T) {
	bw.Epoch = snowflake.Epoch

	node, err := bw.NewNode(21<<snowflake.MachineBits | 9)
	it.Then(t).Should(
		it.True(err == nil),
	)

	for i := 0; i < 100; i++ {
		x := node.Generate()
		id := snowflake.ID(x.Int64())

		it.Then(t).Should(
			it.Equal(snowflake.Datacenter(id), 21),
			it.Equal(snowflake.Machine(id), 9),
			it.Equal(int64(snowflake.Seq(id)), x.Step()),
			it.Equal(snowflake.Time(id).UnixMilli(), x.Time()),
		)
	}
}
