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

import "time"

/*

Compose packs fractions into identifier. The timestamp t is milliseconds
since Unix epoch, other fractions are truncated to their width.
*/
func Compose(t int64, datacenter, machine, seq int) ID {
	return mkID(t-Epoch,
		int64(datacenter)&MaxDatacenter,
		int64(machine)&MaxMachine,
		int64(seq)&MaxSequence,
	)
}

/*

FromTime returns the smallest identifier issued at the time t.
It is a lower bound of range queries over k-ordered keys.
*/
func FromTime(t time.Time) ID {
	return Compose(t.UnixMilli(), 0, 0, 0)
}

/*******************************************************************************

Lenses of identifier

*******************************************************************************/

// Elapsed returns ⟨𝒕⟩ fraction, milliseconds since Epoch
func Elapsed(id ID) int64 {
	return int64(id) >> TimeShift
}

// Time returns ⟨𝒕⟩ fraction as wall clock time
func Time(id ID) time.Time {
	return time.UnixMilli(Elapsed(id) + Epoch).UTC()
}

// Datacenter returns ⟨𝒅⟩ fraction
func Datacenter(id ID) int {
	return int(int64(id) >> DatacenterShift & MaxDatacenter)
}

// Machine returns ⟨𝒎⟩ fraction
func Machine(id ID) int {
	return int(int64(id) >> MachineShift & MaxMachine)
}

// Seq returns ⟨𝒔⟩ fraction, the value of sequence at the time of ID creation.
func Seq(id ID) int {
	return int(int64(id) & MaxSequence)
}

// Before checks if a is issued before b
func Before(a, b ID) bool { return a < b }

// After checks if a is issued after b
func After(a, b ID) bool { return a > b }
