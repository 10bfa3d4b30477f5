// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"context"
	"sync"

	"cogentcore.org/core/base/randx"
)

// Network owns all simulation state and drives the step cycle.
// Configure with AddGroup and ConnectGroups, then Build once, then
// Step repeatedly.  With NThreads > 1 the neuron-indexed phases run on
// range-partitioned workers; spike detection stays sequential in index
// order so results are identical at any thread count.
type Network struct {

	// network name, for logs
	Name string

	// group registry
	Groups Groups

	// per-neuron state
	Neurons NeuronStore

	// synapse table
	Conns Connectivity

	// receptor conductances and short-term plasticity
	Syn SynDyn

	// spike-timing plasticity
	Plast Plasticity

	// neuromodulator concentrations
	NM Neuromod

	// pending synaptic events
	Queue *SpikeQueue

	// host / device state tracking
	Mirror Mirror

	// recoverable numeric event counters
	Warns Warnings

	// random seed for build and simulation
	RandSeed int64

	// random source, created at Build from RandSeed
	Rand *randx.SysRand

	// number of worker goroutines for partitioned phases (1 = sequential)
	NThreads int `default:"1"`

	// neurons that fired on the most recent step, in index order
	fired []NeuronID

	// externally forced spikes for the next step
	forced []NeuronID

	built bool
}

// NewNetwork returns a network with defaults set.
func NewNetwork(name string) *Network {
	nt := &Network{Name: name}
	nt.Defaults()
	return nt
}

func (nt *Network) Defaults() {
	nt.Plast.Defaults()
	nt.Syn.Conductances = true
	nt.NThreads = 1
}

// AddGroup registers a group of neurons.
func (nt *Network) AddGroup(spec GroupSpec) (*Group, error) {
	if nt.built {
		return nil, stateErrorf("AddGroup: network already built")
	}
	return nt.Groups.Add(spec)
}

// ConnectGroups registers a projection from send to recv.  The
// descriptor's Send and Recv fields are set from the group arguments.
func (nt *Network) ConnectGroups(send, recv *Group, desc ConnDesc) (*ConnDesc, error) {
	if nt.built {
		return nil, stateErrorf("ConnectGroups: network already built")
	}
	desc.Send = send.ID
	desc.Recv = recv.ID
	return nt.Conns.Connect(&nt.Groups, desc)
}

// Build finalizes groups, expands connectivity, and allocates all
// state.  After Build the topology is immutable.
func (nt *Network) Build() error {
	if nt.built {
		return stateErrorf("Build: network already built")
	}
	if _, err := nt.Groups.Finalize(); err != nil {
		return err
	}
	nt.Rand = randx.NewSysRand(nt.RandSeed)
	nt.Neurons.Build(&nt.Groups, nt.Rand)
	if err := nt.Conns.Build(&nt.Groups, nt.Rand); err != nil {
		return err
	}
	nt.Syn.Warns = &nt.Warns
	nt.Syn.Build(&nt.Groups, &nt.Conns)
	nt.NM.Build(&nt.Groups)
	nt.Queue = NewSpikeQueue(nt.Conns.MaxDelay)
	if nt.Plast.Interval == 0 {
		nt.Plast.Defaults()
	}
	nt.Mirror.MarkHost(DirtyAll)
	nt.built = true
	return nil
}

// Init resets all dynamic state (membranes, conductances, queue,
// neuromodulators) without touching weights or topology.
func (nt *Network) Init() {
	nt.Neurons.Init(&nt.Groups)
	nt.Syn.Init(&nt.Groups)
	nt.NM.Init(&nt.Groups)
	nt.Queue.Reset()
	nt.fired = nt.fired[:0]
	nt.forced = nt.forced[:0]
	nt.Warns.Reset()
	nt.Mirror.MarkHost(DirtyAll)
}

// ForceFire queues the given neurons to spike on the next Step,
// bypassing membrane integration.
func (nt *Network) ForceFire(ids ...NeuronID) {
	nt.forced = append(nt.forced, ids...)
}

// Fired returns the neurons that spiked on the most recent step, in
// index order.  The slice is valid until the next Step.
func (nt *Network) Fired() []NeuronID {
	return nt.fired
}

// Step advances the simulation one step: integrate membranes, detect
// and emit spikes, deliver due synaptic events, consolidate weights at
// cadence, decay conductances and neuromodulators, and advance the
// clock.  Cancellation is honored only at step entry: once a step has
// started it runs to completion, so the state is always consistent at
// a step boundary.
func (nt *Network) Step(cx context.Context, ctx *Context) error {
	if !nt.built {
		return stateErrorf("Step: network not built")
	}
	if err := cx.Err(); err != nil {
		return err
	}
	if err := nt.Mirror.SyncToHost(); err != nil {
		return err
	}
	ns := &nt.Neurons
	n := nt.Groups.NNeurons

	for ni := 0; ni < n; ni++ {
		ns.Fired[ni] = false
	}

	nt.thrRange(n, func(lo, hi int) {
		ns.IntegrateRange(ctx, &nt.Syn, &nt.Groups, lo, hi)
	})
	nt.generate(ctx)
	for _, ni := range nt.forced {
		if int(ni) < n {
			ns.Fired[ni] = true
		}
	}
	nt.forced = nt.forced[:0]

	nt.detect(ctx)
	nt.deliver(ctx)

	if !ctx.Testing() && nt.Plast.Interval > 0 && ctx.Step > 0 && int(ctx.Step)%nt.Plast.Interval == 0 {
		nt.thrRange(n, func(lo, hi int) {
			nt.Plast.RatesUpdate(&nt.Groups, ns, lo, hi)
		})
		nt.thrRange(nt.Conns.NSyns, func(lo, hi int) {
			nt.Plast.Consolidate(&nt.Conns, &nt.Groups, ns, &nt.Warns, lo, hi)
		})
	}

	nt.NM.DecayStep(&nt.Groups)
	nt.thrRange(n, func(lo, hi int) {
		nt.Syn.DecayStep(lo, hi)
	})
	nt.Mirror.MarkHost(DirtyAll)
	ctx.StepInc()
	return nil
}

// generate runs the spike generators of Generator groups, setting
// Fired flags directly.
func (nt *Network) generate(ctx *Context) {
	ns := &nt.Neurons
	for _, gp := range nt.Groups.All {
		if !gp.Generator || gp.Gen == nil {
			continue
		}
		gp.Gen.Generate(gp, ctx, func(ni NeuronID) {
			if gp.Contains(ni) {
				ns.Fired[ni] = true
			}
		})
	}
}

// detect walks the Fired flags in index order, applying potentiation,
// updating short-term plasticity, and enqueueing the outgoing fan of
// each spike.  Sequential so event order never depends on threading.
func (nt *Network) detect(ctx *Context) {
	ns := &nt.Neurons
	ct := &nt.Conns
	nt.fired = nt.fired[:0]
	for ni := int32(0); ni < int32(nt.Groups.NNeurons); ni++ {
		if !ns.Fired[ni] {
			continue
		}
		nt.fired = append(nt.fired, NeuronID(ni))
		nt.Plast.OnPostSpike(ct, &nt.Groups, ns, &nt.NM, ni, ctx.Step, ctx.Testing())
		nt.Syn.PreSpike(&nt.Groups, ns, ni, ctx.Step)
		nc := ct.SConN[ni]
		st := ct.SConIndexSt[ni]
		for si := st; si < st+nc; si++ {
			nt.Queue.Enqueue(int(ct.Delay[si]), ctx.Step, si)
		}
		ns.LastSpike[ni] = ctx.Step
		ns.SpikeCnt[ni]++
	}
}

// deliver drains the synaptic events due this step.  In parallel mode
// every worker scans all due events but applies only those targeting
// neurons it owns, so no two workers write the same accumulator.
func (nt *Network) deliver(ctx *Context) {
	short, long := nt.Queue.Due(ctx.Step)
	if len(short)+len(long) > 0 {
		ct := &nt.Conns
		arrive := func(si int32) {
			nt.Syn.SpikeArrival(ct, &nt.Groups, &nt.Neurons, si, ctx.Step)
			nt.Plast.OnArrival(ct, &nt.Groups, &nt.Neurons, &nt.NM, si, ctx.Step, ctx.Testing())
		}
		if nt.NThreads <= 1 {
			for _, si := range short {
				arrive(si)
			}
			for _, si := range long {
				arrive(si)
			}
		} else {
			nt.thrRange(nt.Groups.NNeurons, func(lo, hi int) {
				for _, si := range short {
					if post := ct.SConIndex[si]; int(post) >= lo && int(post) < hi {
						arrive(si)
					}
				}
				for _, si := range long {
					if post := ct.SConIndex[si]; int(post) >= lo && int(post) < hi {
						arrive(si)
					}
				}
			})
		}
	}
	nt.Queue.Clear(ctx.Step)
}

// thrRange partitions [0, n) across NThreads workers and waits for
// all of them.  With one thread it just calls fun inline.
func (nt *Network) thrRange(n int, fun func(lo, hi int)) {
	if nt.NThreads <= 1 || n < nt.NThreads {
		fun(0, n)
		return
	}
	var wg sync.WaitGroup
	chunk := (n + nt.NThreads - 1) / nt.NThreads
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			fun(lo, hi)
			wg.Done()
		}(lo, hi)
	}
	wg.Wait()
}
