//
//   Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

package snowflake

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"
)

// length of string encoding, 11 cells of 6 bits
const size64 = 11

var alphabet = [64]byte{
	'.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E',
	'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U',
	'V', 'W', 'X', 'Y', 'Z', '_', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
	'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
}

func encode64(val uint64) string {
	b := make([]byte, size64)
	for i := 0; i < size64; i++ {
		b[i] = alphabet[val>>(6*(size64-1-i))&0x3f]
	}
	return string(b)
}

func decode64(val string) (uint64, bool) {
	if len(val) != size64 {
		return 0, false
	}

	x := uint64(0)
	for i := 0; i < size64; i++ {
		var c uint64
		switch ch := val[i]; {
		case ch == '.':
			c = 0
		case ch >= '0' && ch <= '9':
			c = uint64(ch-'0') + 1
		case ch >= 'A' && ch <= 'Z':
			c = uint64(ch-'A') + 11
		case ch == '_':
			c = 37
		case ch >= 'a' && ch <= 'z':
			c = uint64(ch-'a') + 38
		default:
			return 0, false
		}

		// first cell carries 4 bits only
		if i == 0 && c > 0x0f {
			return 0, false
		}
		x = x<<6 | c
	}

	return x, true
}

/*

String encodes identifier to lexicographically sortable string. The
lexical order of strings is the numeric order of non-negative identifiers.
*/
func String(id ID) string {
	return encode64(uint64(id))
}

/*

FromString decodes identifier from lexicographically sortable string
*/
func FromString(val string) (ID, error) {
	x, ok := decode64(val)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, val)
	}
	return ID(x), nil
}

/*

Parse decodes identifier either from sortable string (11 chars) or
from decimal notation.
*/
func Parse(val string) (ID, error) {
	if len(val) == size64 {
		if id, err := FromString(val); err == nil {
			return id, nil
		}
	}

	x, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, val)
	}
	return ID(x), nil
}

// Bytes encodes identifier to 8 bytes, big-endian
func Bytes(id ID) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id))
	return b
}

// FromBytes decodes identifier from 8 bytes, big-endian
func FromBytes(val []byte) (ID, error) {
	if len(val) != 8 {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, val)
	}
	return ID(binary.BigEndian.Uint64(val)), nil
}

// String encoding of identifier
func (id ID) String() string {
	return String(id)
}

// MarshalJSON encodes identifier to lexicographically sortable JSON string
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(String(id))
}

// UnmarshalJSON decodes identifier from sortable JSON string or JSON number
func (id *ID) UnmarshalJSON(b []byte) (err error) {
	if len(b) > 0 && b[0] != '"' {
		var val int64
		if err = json.Unmarshal(b, &val); err != nil {
			return fmt.Errorf("%w: %s", ErrMalformed, b)
		}
		*id = ID(val)
		return
	}

	var val string
	if err = json.Unmarshal(b, &val); err != nil {
		return
	}
	*id, err = FromString(val)
	return
}
