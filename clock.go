//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package snowflake

import (
	"log/slog"
	"time"
)

// Clock is wall clock with millisecond resolution
type Clock func() int64

// T implements Chronos
func (f Clock) T() int64 { return f() }

// Unix is the system wall clock
var Unix Chronos = Clock(unixtime)

func unixtime() int64 {
	return time.Now().UnixMilli()
}

// Config option of generator behavior.
type Config func(*Generator)

// WithChronos configures custom clock
func WithChronos(clock Chronos) Config {
	return func(gen *Generator) {
		gen.clock = clock
	}
}

// WithClock configures a custom timestamp generator function, it must
// return milliseconds since Unix epoch.
func WithClock(ticker func() int64) Config {
	return WithChronos(Clock(ticker))
}

// WithClockUnix configures time.Now().UnixMilli() as generator function
func WithClockUnix() Config {
	return WithChronos(Unix)
}

// WithSpin configures the pause between clock reads while generator waits
// for next millisecond after the sequence is exhausted. Zero is busy-wait.
func WithSpin(spin time.Duration) Config {
	return func(gen *Generator) {
		if spin > 0 {
			gen.spin = spin
		}
	}
}

// WithLogger configures logger
func WithLogger(logger *slog.Logger) Config {
	return func(gen *Generator) {
		if logger != nil {
			gen.logger = logger
		}
	}
}
