// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

// DelayCut splits synaptic events between the short and long delay
// tables: delays <= DelayCut go to the short table, which stays small
// and hot in cache because most synapses use minimal delay.
const DelayCut = 1

// delayRing is a circular buffer of event buckets indexed by
// step modulo length.  Length is maxDelay+1 so that an event enqueued
// for the maximum delay during step t (after bucket t has already
// drained) does not land back in bucket t.
type delayRing struct {
	buckets [][]int32
}

func newDelayRing(n int) delayRing {
	return delayRing{buckets: make([][]int32, n)}
}

func (dr *delayRing) add(step int32, si int32) {
	bi := int(step) % len(dr.buckets)
	dr.buckets[bi] = append(dr.buckets[bi], si)
}

func (dr *delayRing) due(step int32) []int32 {
	return dr.buckets[int(step)%len(dr.buckets)]
}

func (dr *delayRing) clear(step int32) {
	bi := int(step) % len(dr.buckets)
	dr.buckets[bi] = dr.buckets[bi][:0]
}

func (dr *delayRing) reset() {
	for bi := range dr.buckets {
		dr.buckets[bi] = dr.buckets[bi][:0]
	}
}

// SpikeQueue schedules synapse activation events for future steps.
// Each enqueued synapse index is delivered exactly once, at
// enqueue step + delay.  Within one delivery step, short-table events
// drain before long-table events, and events within a bucket drain in
// enqueue order.
type SpikeQueue struct {

	// events with delay <= DelayCut
	Short delayRing

	// events with longer delays
	Long delayRing
}

// NewSpikeQueue returns a queue able to hold delays up to maxDelay.
func NewSpikeQueue(maxDelay int) *SpikeQueue {
	if maxDelay < DelayCut {
		maxDelay = DelayCut
	}
	return &SpikeQueue{
		Short: newDelayRing(DelayCut + 1),
		Long:  newDelayRing(maxDelay + 1),
	}
}

// Enqueue schedules synapse si for delivery at step + delay.
func (sq *SpikeQueue) Enqueue(delay int, step int32, si int32) {
	at := step + int32(delay)
	if delay <= DelayCut {
		sq.Short.add(at, si)
	} else {
		sq.Long.add(at, si)
	}
}

// Due returns the synapse indices due at the given step, short table
// first.  The slices are valid until Clear.
func (sq *SpikeQueue) Due(step int32) (short, long []int32) {
	return sq.Short.due(step), sq.Long.due(step)
}

// Clear empties the buckets for the given step, after draining.
func (sq *SpikeQueue) Clear(step int32) {
	sq.Short.clear(step)
	sq.Long.clear(step)
}

// Reset discards all pending events.
func (sq *SpikeQueue) Reset() {
	sq.Short.reset()
	sq.Long.reset()
}
