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

/*

Package snowflake implements the Twitter Snowflake scheme of 64-bit
identifiers for Golang applications. Identifiers are allocated without a
central authority: each node owns a distinct ⟨𝒅, 𝒎⟩ location and
issues time-ordered values from the local wall clock.

Key features

↣ IDs allocation does not require coordination with other nodes, as long as
locations are provisioned uniquely.

↣ IDs issued by a generator strictly increase with time, they are usable as
database primary keys with good index locality.

↣ IDs fit into signed 64-bit integer (SQL BIGINT).

Identity Schema

Identifier is a quadruple ⟨𝒕, 𝒅, 𝒎, 𝒔⟩ packed into 64 bits

  41 bit (and above)      5 bit  5 bit  12 bit
  |----------------------|-----|-----|--------|
          ⟨𝒕⟩              ⟨𝒅⟩   ⟨𝒎⟩     ⟨𝒔⟩

↣ ⟨𝒕⟩ is milliseconds elapsed since Epoch (2016-11-26T13:21:05.631Z).

↣ ⟨𝒅⟩ is datacenter id in the range [0, 31].

↣ ⟨𝒎⟩ is machine id in the range [0, 31].

↣ ⟨𝒔⟩ is 12-bit sequence, it disambiguates identifiers issued within the
same millisecond. The generator allows 4096 allocations per millisecond,
the next allocation waits for the clock to advance.

The generator refuses to issue identifiers if the clock moves backwards
(e.g. NTP correction), it returns ErrClockMovedBackwards.

Usage

	gen, err := snowflake.New(2, 3)
	if err != nil {
		// out of range location
	}

	id, err := gen.NextID()
	if errors.Is(err, snowflake.ErrClockMovedBackwards) {
		// ...
	}

	snowflake.Time(id)
	snowflake.Datacenter(id)
	snowflake.String(id)

*/
package snowflake
