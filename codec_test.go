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
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/snowflake"
)

func TestCodecString(t *testing.T) {
	gen := snowflake.Must(snowflake.New(2, 3))

	for i := 0; i < 1000; i++ {
		a := gen.MustNextID()
		b, err := snowflake.FromString(snowflake.String(a))

		it.Then(t).Should(
			it.True(err == nil),
			it.Equal(a, b),
			it.Equal(len(a.String()), 11),
		)
	}
}

func TestCodecStringBounds(t *testing.T) {
	for _, id := range []snowflake.ID{0, 1, 1 << 62, -1, -1 << 63} {
		b, err := snowflake.FromString(id.String())

		it.Then(t).Should(
			it.True(err == nil),
			it.Equal(id, b),
		)
	}

	it.Then(t).Should(
		it.Equal(snowflake.String(0), "..........."),
	)
}

func TestCodecStringSortable(t *testing.T) {
	gen := snowflake.Must(snowflake.New(2, 3))

	strs := make([]string, 0, 10000)
	for i := 0; i < 10000; i++ {
		id := gen.MustNextID()
		strs = append(strs, snowflake.String(id))
	}

	it.Then(t).Should(
		it.True(sort.StringsAreSorted(strs)),
	)

	// the ordering is preserved across fractions and across years
	a := snowflake.Compose(snowflake.Epoch+1, 31, 31, snowflake.MaxSequence)
	b := snowflake.Compose(snowflake.Epoch+2, 0, 0, 0)
	c := snowflake.Compose(snowflake.Epoch+1<<40, 0, 0, 0)

	it.Then(t).Should(
		it.True(snowflake.String(a) < snowflake.String(b)),
		it.True(snowflake.String(b) < snowflake.String(c)),
	)
}

func TestCodecStringMalformed(t *testing.T) {
	for _, val := range []string{"", "abc", "z..........", "....-......", "............"} {
		_, err := snowflake.FromString(val)

		it.Then(t).Should(
			it.True(errors.Is(err, snowflake.ErrMalformed)),
		)
	}
}

func TestCodecBytes(t *testing.T) {
	id := snowflake.Compose(t0, 2, 3, 4)
	b, err := snowflake.FromBytes(snowflake.Bytes(id))

	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(id, b),
		it.Equal(len(snowflake.Bytes(id)), 8),
		it.Equal(snowflake.Bytes(id)[7], byte(4)),
	)

	_, err = snowflake.FromBytes([]byte{1, 2, 3})
	it.Then(t).Should(
		it.True(errors.Is(err, snowflake.ErrMalformed)),
	)
}

func TestParse(t *testing.T) {
	id := snowflake.Compose(t0, 2, 3, 4)

	a, errA := snowflake.Parse(strconv.FormatInt(int64(id), 10))
	b, errB := snowflake.Parse(id.String())
	_, errC := snowflake.Parse("not an id")

	it.Then(t).Should(
		it.True(errA == nil),
		it.Equal(a, id),
		it.True(errB == nil),
		it.Equal(b, id),
		it.True(errors.Is(errC, snowflake.ErrMalformed)),
	)
}

func TestCodecJSON(t *testing.T) {
	type Event struct {
		ID snowflake.ID `json:"id"`
	}

	id := snowflake.Compose(t0, 2, 3, 4)
	bytes, err := json.Marshal(Event{ID: id})
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(string(bytes), `{"id":"`+id.String()+`"}`),
	)

	var a Event
	err = json.Unmarshal(bytes, &a)
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(a.ID, id),
	)

	var b Event
	err = json.Unmarshal([]byte(`{"id":`+strconv.FormatInt(int64(id), 10)+`}`), &b)
	it.Then(t).Should(
		it.True(err == nil),
		it.Equal(b.ID, id),
	)

	var c Event
	err = json.Unmarshal([]byte(`{"id":"!"}`), &c)
	it.Then(t).Should(
		it.True(errors.Is(err, snowflake.ErrMalformed)),
	)
}
