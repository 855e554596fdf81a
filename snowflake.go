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

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

/*

Generator of k-ordered identifiers for one ⟨𝒅, 𝒎⟩ location. Single
instance is shared by all goroutines of the process that issue
identifiers on behalf of the location.
*/
type Generator struct {
	mu         sync.Mutex
	datacenter int64
	machine    int64

	// last issued ⟨𝒕⟩, -1 if nothing is issued yet
	lastT    int64
	sequence int64

	clock  Chronos
	spin   time.Duration
	logger *slog.Logger
}

/*

New creates generator for the datacenter and machine, both ids are in the
range [0, 31].
*/
func New(datacenter, machine int, opts ...Config) (*Generator, error) {
	if datacenter < 0 || datacenter > MaxDatacenter {
		return nil, fmt.Errorf("%w: datacenter id %d is out of range [0, %d]",
			ErrInvalidConfiguration, datacenter, MaxDatacenter)
	}

	if machine < 0 || machine > MaxMachine {
		return nil, fmt.Errorf("%w: machine id %d is out of range [0, %d]",
			ErrInvalidConfiguration, machine, MaxMachine)
	}

	gen := &Generator{
		datacenter: int64(datacenter),
		machine:    int64(machine),
		lastT:      -1,
		sequence:   0,
		clock:      Unix,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(gen)
	}

	return gen, nil
}

// Must panics if generator is not created
func Must(gen *Generator, err error) *Generator {
	if err != nil {
		panic(err)
	}
	return gen
}

// Datacenter id of the generator
func (gen *Generator) Datacenter() int { return int(gen.datacenter) }

// Machine id of the generator
func (gen *Generator) Machine() int { return int(gen.machine) }

/*

NextID issues next identifier. The call blocks while the sequence of
current millisecond is exhausted. It fails with ErrClockMovedBackwards if
clock reads a value below the last issued timestamp, the generator state is
not changed in this case.
*/
func (gen *Generator) NextID() (ID, error) {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	t := gen.clock.T()
	if t < gen.lastT {
		gen.logger.Warn("clock moved backwards, refusing to generate id",
			slog.Int64("last", gen.lastT),
			slog.Int64("now", t),
			slog.Int64("datacenter", gen.datacenter),
			slog.Int64("machine", gen.machine),
		)
		return 0, fmt.Errorf("%w: refusing to generate id for %d ms (last %d, now %d)",
			ErrClockMovedBackwards, gen.lastT-t, gen.lastT, t)
	}

	if t == gen.lastT {
		gen.sequence = (gen.sequence + 1) & MaxSequence
		if gen.sequence == 0 {
			gen.logger.Debug("sequence exhausted, waiting for next millisecond",
				slog.Int64("last", gen.lastT),
			)
			t = gen.nextT()
		}
	} else {
		gen.sequence = 0
	}

	gen.lastT = t

	return mkID(t-Epoch, gen.datacenter, gen.machine, gen.sequence), nil
}

// MustNextID issues next identifier, it panics on error
func (gen *Generator) MustNextID() ID {
	id, err := gen.NextID()
	if err != nil {
		panic(err)
	}
	return id
}

// spins until clock is strictly after last issued ⟨𝒕⟩
func (gen *Generator) nextT() int64 {
	t := gen.clock.T()
	for t <= gen.lastT {
		if gen.spin > 0 {
			time.Sleep(gen.spin)
		}
		t = gen.clock.T()
	}
	return t
}

func mkID(t, datacenter, machine, seq int64) ID {
	return ID(t<<TimeShift |
		datacenter<<DatacenterShift |
		machine<<MachineShift |
		seq)
}
