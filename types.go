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

package snowflake

import "errors"

/*

Epoch is the zero point ⟨𝒕⟩ of identifiers, milliseconds since Unix epoch
(2016-11-26T13:21:05.631Z). Changing it re-bases every identifier issued
before and breaks their ordering against new ones.
*/
const Epoch int64 = 1480166465631

// Width of identifier fractions
const (
	SequenceBits   = 12
	MachineBits    = 5
	DatacenterBits = 5
)

// Maximum value of each fraction
const (
	MaxSequence   = -1 ^ (-1 << SequenceBits)
	MaxMachine    = -1 ^ (-1 << MachineBits)
	MaxDatacenter = -1 ^ (-1 << DatacenterBits)
)

// Left shift of each fraction
const (
	MachineShift    = SequenceBits
	DatacenterShift = SequenceBits + MachineBits
	TimeShift       = SequenceBits + MachineBits + DatacenterBits
)

/*

ID is 64-bit k-ordered identifier

  41 bit (and above)      5 bit  5 bit  12 bit
  |----------------------|-----|-----|--------|
          ⟨𝒕⟩              ⟨𝒅⟩   ⟨𝒎⟩     ⟨𝒔⟩

The type is signed so that the value fits SQL BIGINT columns as-is.
*/
type ID int64

/*

Chronos is an abstraction of wall clock used by the generator.
*/
type Chronos interface {
	// Milliseconds since Unix epoch
	T() int64
}

// Errors
var (
	// ErrInvalidConfiguration is returned when datacenter or machine id is
	// out of its range
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrClockMovedBackwards is returned when the clock reads a value below
	// the last issued timestamp
	ErrClockMovedBackwards = errors.New("clock moved backwards")

	// ErrMalformed is returned when identifier cannot be decoded
	ErrMalformed = errors.New("malformed identifier")
)
