// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"cogentcore.org/core/math32"
	"github.com/ccnlab/spikenet/chans"
)

// gFlush is the threshold below which a decaying conductance is
// flushed to exactly zero.
const gFlush = 1.0e-9

// SynDyn holds the per-neuron receptor conductances and the per-neuron
// short-term plasticity state, and converts spike arrivals into
// membrane current.  In current mode (Conductances off) arrivals
// inject their weight directly as current for one step.
type SynDyn struct {

	// receptor channel time constants and reversal potentials
	Chans chans.Params

	// clamp event counters, optional
	Warns *Warnings

	// conductance-based synapses -- off means direct current injection
	Conductances bool

	// fast excitatory conductance per neuron
	GAMPA []float32

	// slow excitatory conductance, single-exponential mode
	GNMDA []float32

	// slow excitatory rise trace, bi-exponential mode
	GNMDAr []float32

	// slow excitatory decay trace, bi-exponential mode
	GNMDAd []float32

	// fast inhibitory conductance per neuron
	GGABAa []float32

	// slow inhibitory conductance, single-exponential mode
	GGABAb []float32

	// slow inhibitory rise trace, bi-exponential mode
	GGABAbr []float32

	// slow inhibitory decay trace, bi-exponential mode
	GGABAbd []float32

	// short-term facilitation variable per sending neuron
	StpU []float32

	// short-term depression variable per sending neuron
	StpX []float32

	// direct current injected this step, current mode only
	Inj []float32

	// efficacy at emission time, ring-buffered per sending neuron so
	// delayed arrivals release at the strength the spike left with
	stpEff []float32

	// ring length, MaxDelay+1
	ringN int
}

// Build allocates state for the finalized groups and connectivity.
func (sd *SynDyn) Build(gs *Groups, ct *Connectivity) {
	n := gs.NNeurons
	sd.GAMPA = make([]float32, n)
	sd.GNMDA = make([]float32, n)
	sd.GNMDAr = make([]float32, n)
	sd.GNMDAd = make([]float32, n)
	sd.GGABAa = make([]float32, n)
	sd.GGABAb = make([]float32, n)
	sd.GGABAbr = make([]float32, n)
	sd.GGABAbd = make([]float32, n)
	sd.StpU = make([]float32, n)
	sd.StpX = make([]float32, n)
	sd.Inj = make([]float32, n)
	sd.ringN = ct.MaxDelay + 1
	sd.stpEff = make([]float32, n*sd.ringN)
	if sd.Chans == (chans.Params{}) {
		sd.Chans.Defaults()
	}
	sd.Chans.Update(1) // decay happens once per step
	sd.Init(gs)
}

// Init resets conductances and short-term plasticity to rest.
func (sd *SynDyn) Init(gs *Groups) {
	for ni := range sd.GAMPA {
		sd.GAMPA[ni] = 0
		sd.GNMDA[ni] = 0
		sd.GNMDAr[ni] = 0
		sd.GNMDAd[ni] = 0
		sd.GGABAa[ni] = 0
		sd.GGABAb[ni] = 0
		sd.GGABAbr[ni] = 0
		sd.GGABAbd[ni] = 0
		sd.Inj[ni] = 0
	}
	for _, gp := range gs.All {
		u, x := gp.STP.Init()
		for ni := gp.StartN; ni < gp.EndN; ni++ {
			sd.StpU[ni] = u
			sd.StpX[ni] = x
		}
	}
	for i := range sd.stpEff {
		sd.stpEff[i] = 1
	}
}

// PreSpike updates the sending neuron's short-term plasticity state at
// spike emission and records the release efficacy for this step, so
// arrivals after the conduction delay use the emission-time value.
func (sd *SynDyn) PreSpike(gs *Groups, ns *NeuronStore, pre int32, step int32) {
	sg := gs.All[ns.Group[pre]]
	if !sg.STP.On {
		return
	}
	u, x := sd.StpU[pre], sd.StpX[pre]
	if last := ns.LastSpike[pre]; last != neverSpiked {
		u, x = sg.STP.Recover(u, x, float32(step-last))
	}
	nu, nx, eff := sg.STP.OnSpike(u, x)
	sd.StpU[pre] = nu
	sd.StpX[pre] = nx
	sd.stpEff[int(pre)*sd.ringN+int(step)%sd.ringN] = eff
}

// SpikeArrival applies one synapse delivery at the given step, adding
// to the receptor conductances of the receiving neuron (or injecting
// current in current mode).  Inhibitory source groups drive the GABA
// channels, excitatory sources the AMPA / NMDA channels, scaled by the
// projection's fast and slow multipliers.
func (sd *SynDyn) SpikeArrival(ct *Connectivity, gs *Groups, ns *NeuronStore, si int32, step int32) {
	pre := ct.Src[si]
	post := ct.SConIndex[si]
	w := ct.Wt[si]
	sg := gs.All[ns.Group[pre]]
	if sg.STP.On {
		emit := step - int32(ct.Delay[si])
		if emit >= 0 {
			w *= sd.stpEff[int(pre)*sd.ringN+int(emit)%sd.ringN]
		}
	}
	cd := ct.Descs[ct.SynConn[si]]
	cp := &sd.Chans
	if !sd.Conductances {
		if sg.Inhib {
			sd.Inj[post] -= cd.MulFast * w
		} else {
			sd.Inj[post] += cd.MulFast * w
		}
		return
	}
	if sg.Inhib {
		sd.GGABAa[post] += cd.MulFast * w
		if cp.GABAbRise() {
			sd.GGABAbr[post] += cd.MulSlow * w
			sd.GGABAbd[post] += cd.MulSlow * w
		} else {
			sd.GGABAb[post] += cd.MulSlow * w
		}
	} else {
		sd.GAMPA[post] += cd.MulFast * w
		if cp.NMDARise() {
			sd.GNMDAr[post] += cd.MulSlow * w
			sd.GNMDAd[post] += cd.MulSlow * w
		} else {
			sd.GNMDA[post] += cd.MulSlow * w
		}
	}
}

// NeuronCurrent returns the total synaptic current onto neuron ni at
// membrane potential vm.  Conductance currents use the receptor
// reversal potentials; the NMDA channel is additionally gated by the
// voltage dependence.
func (sd *SynDyn) NeuronCurrent(vm float32, ni int) float32 {
	if !sd.Conductances {
		return sd.Inj[ni]
	}
	cp := &sd.Chans
	gn := sd.GNMDA[ni]
	if cp.NMDARise() {
		gn = math32.Max(cp.SNMDA*(sd.GNMDAd[ni]-sd.GNMDAr[ni]), 0)
	}
	gb := sd.GGABAb[ni]
	if cp.GABAbRise() {
		gb = math32.Max(cp.SGABAb*(sd.GGABAbd[ni]-sd.GGABAbr[ni]), 0)
	}
	cur := sd.GAMPA[ni] * (vm - cp.ErevE)
	cur += gn * cp.NMDAVDep(vm) * (vm - cp.ErevE)
	cur += sd.GGABAa[ni] * (vm - cp.ErevGABAa)
	cur += gb * (vm - cp.ErevGABAb)
	return -cur
}

// DecayStep applies one step of exponential decay to the conductances
// of neurons in [lo, hi), flushing vanishing values to zero and
// clamping (and counting) any negative value.
func (sd *SynDyn) DecayStep(lo, hi int) {
	cp := &sd.Chans
	for ni := lo; ni < hi; ni++ {
		sd.GAMPA[ni] = sd.decay(sd.GAMPA[ni], cp.DAMPA, ni)
		sd.GNMDA[ni] = sd.decay(sd.GNMDA[ni], cp.DNMDA, ni)
		sd.GNMDAr[ni] = sd.decay(sd.GNMDAr[ni], cp.RNMDA, ni)
		sd.GNMDAd[ni] = sd.decay(sd.GNMDAd[ni], cp.DNMDA, ni)
		sd.GGABAa[ni] = sd.decay(sd.GGABAa[ni], cp.DGABAa, ni)
		sd.GGABAb[ni] = sd.decay(sd.GGABAb[ni], cp.DGABAb, ni)
		sd.GGABAbr[ni] = sd.decay(sd.GGABAbr[ni], cp.RGABAb, ni)
		sd.GGABAbd[ni] = sd.decay(sd.GGABAbd[ni], cp.DGABAb, ni)
	}
}

func (sd *SynDyn) decay(g, mult float32, ni int) float32 {
	g *= mult
	if g < 0 {
		if sd.Warns != nil {
			sd.Warns.ClampG(ni, g)
		}
		return 0
	}
	if g < gFlush {
		return 0
	}
	return g
}
