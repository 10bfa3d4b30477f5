// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
)

// Error taxonomy for network construction and lifecycle.  All errors
// returned by configuration and build operations wrap one of these
// sentinels, so callers can classify with errors.Is.
var (
	// ErrConfig is an invalid group or connection parameter, detected at
	// construction time.  Fatal to that configuration call only.
	ErrConfig = errors.New("spikenet: invalid configuration")

	// ErrCapacity is a fan-in / fan-out or count limit exceeded at
	// finalize time.  The simulation cannot proceed.
	ErrCapacity = errors.New("spikenet: capacity exceeded")

	// ErrState is an operation invoked out of lifecycle order, e.g.,
	// connecting after the network has been built.
	ErrState = errors.New("spikenet: invalid lifecycle state")
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

func capacityErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCapacity, fmt.Sprintf(format, args...))
}

func stateErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrState, fmt.Sprintf(format, args...))
}

// Warnings counts recoverable numeric events (clamped weights, clamped
// conductances).  These never stop the simulation; they are silent
// unless Verbose is set.  Counters use atomic increments so parallel
// phase workers can record them without locking.
type Warnings struct {

	// log each warning as it happens (otherwise just counted)
	Verbose bool

	// number of weight values clamped into [0, MaxWt]
	WtClamped int64

	// number of conductance values clamped at zero
	GClamped int64
}

// ClampWt records one weight clamp event.
func (wr *Warnings) ClampWt(si int32, wt float32) {
	atomic.AddInt64(&wr.WtClamped, 1)
	if wr.Verbose {
		log.Printf("spikenet: weight clamped at synapse %d: %g\n", si, wt)
	}
}

// ClampG records one conductance clamp event.
func (wr *Warnings) ClampG(ni int, g float32) {
	atomic.AddInt64(&wr.GClamped, 1)
	if wr.Verbose {
		log.Printf("spikenet: conductance clamped at neuron %d: %g\n", ni, g)
	}
}

// Reset zeroes the counters.
func (wr *Warnings) Reset() {
	atomic.StoreInt64(&wr.WtClamped, 0)
	atomic.StoreInt64(&wr.GClamped, 0)
}
