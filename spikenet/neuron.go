// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"fmt"

	"cogentcore.org/core/base/randx"
	"github.com/ccnlab/spikenet/izhi"
)

// neverSpiked is the LastSpike / SynSpike sentinel for "no spike yet",
// far enough in the past that any timing window evaluates to zero.
const neverSpiked = int32(-1 << 30)

// NeuronVars are the per-neuron variables accessible by name through
// monitoring calls.
var NeuronVars = []string{"Vm", "Recovery", "Current", "ExtCurrent", "CompCurrent", "AvgRate"}

// NeuronVarsMap maps variable name to index in NeuronVars.
var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

// NeuronStore holds all per-neuron state in parallel arrays indexed by
// global neuron index.  The struct-of-arrays layout keeps each variable
// contiguous for the integration loops and lets the device mirror copy
// whole arrays at once.
type NeuronStore struct {

	// group index per neuron
	Group []int32

	// membrane potential (mV)
	Vm []float32

	// recovery variable of the membrane model
	Recovery []float32

	// per-neuron membrane parameters, drawn from the group parameters
	// perturbed by the group's heterogeneity SDs
	Params []izhi.Params

	// total input current last computed (synaptic + external + compartment)
	Current []float32

	// externally injected current, persists until changed
	ExtCurrent []float32

	// current from coupled compartments, persists until changed
	CompCurrent []float32

	// fired this step
	Fired []bool

	// step of most recent spike, neverSpiked if none
	LastSpike []int32

	// step until which spike detection is suppressed
	RefracUntil []int32

	// running average firing rate (Hz), updated at consolidation cadence
	AvgRate []float32

	// spikes since the last rate update
	SpikeCnt []int32

	// refractory period per group, in steps
	refracSteps []int32
}

// Build allocates and initializes all arrays for the finalized groups,
// drawing per-neuron membrane parameters with the given RNG.
func (ns *NeuronStore) Build(gs *Groups, rnd *randx.SysRand) {
	n := gs.NNeurons
	ns.Group = make([]int32, n)
	ns.Vm = make([]float32, n)
	ns.Recovery = make([]float32, n)
	ns.Params = make([]izhi.Params, n)
	ns.Current = make([]float32, n)
	ns.ExtCurrent = make([]float32, n)
	ns.CompCurrent = make([]float32, n)
	ns.Fired = make([]bool, n)
	ns.LastSpike = make([]int32, n)
	ns.RefracUntil = make([]int32, n)
	ns.AvgRate = make([]float32, n)
	ns.SpikeCnt = make([]int32, n)
	ns.refracSteps = make([]int32, len(gs.All))
	norm := func() float32 { return float32(rnd.NormFloat64()) }
	for gi, gp := range gs.All {
		ns.refracSteps[gi] = int32(gp.Refract)
		for ni := gp.StartN; ni < gp.EndN; ni++ {
			ns.Group[ni] = int32(gi)
			ns.Params[ni] = gp.IzhiSD.Gen(gp.Izhi, norm)
		}
	}
	ns.Init(gs)
}

// Init resets all dynamic state to resting values, leaving parameters
// and external currents as configured.
func (ns *NeuronStore) Init(gs *Groups) {
	for ni := range ns.Vm {
		pr := &ns.Params[ni]
		ns.Vm[ni] = pr.InitVm()
		ns.Recovery[ni] = pr.InitRecovery(ns.Vm[ni])
		ns.Current[ni] = 0
		ns.Fired[ni] = false
		ns.LastSpike[ni] = neverSpiked
		ns.RefracUntil[ni] = 0
		ns.AvgRate[ni] = gs.All[ns.Group[ni]].Homeo.BaseRate
		ns.SpikeCnt[ni] = 0
	}
}

// IntegrateRange advances the membrane equations for neurons in
// [lo, hi) by one step of SubSteps ODE sub-steps, setting Fired on the
// first threshold crossing.  Generator group neurons are skipped.
// During the refractory period integration continues but threshold
// crossings reset the membrane without registering a spike.
func (ns *NeuronStore) IntegrateRange(ctx *Context, sd *SynDyn, gs *Groups, lo, hi int) {
	dt := ctx.DtMs()
	for ni := lo; ni < hi; ni++ {
		gp := gs.All[ns.Group[ni]]
		if gp.Generator {
			continue
		}
		cur := sd.NeuronCurrent(ns.Vm[ni], ni) + ns.ExtCurrent[ni] + ns.CompCurrent[ni]
		ns.Current[ni] = cur
		sd.Inj[ni] = 0 // one-step impulse, consumed here
		refrac := ctx.Step < ns.RefracUntil[ni]
		pr := &ns.Params[ni]
		vm := ns.Vm[ni]
		u := ns.Recovery[ni]
		for s := 0; s < ctx.SubSteps; s++ {
			vm, u = pr.Step(vm, u, cur, dt, ctx.Method)
			if pr.Fired(vm) {
				if !refrac && !ns.Fired[ni] {
					ns.Fired[ni] = true
					ns.RefracUntil[ni] = ctx.Step + 1 + ns.refracSteps[ns.Group[ni]]
				}
				vm, u = pr.Reset(u)
			}
		}
		ns.Vm[ni] = vm
		ns.Recovery[ni] = u
	}
}

// UnitValue returns the named variable for the given neuron index.
func (ns *NeuronStore) UnitValue(varNm string, ni NeuronID) (float32, error) {
	vi, ok := NeuronVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("spikenet.NeuronStore: variable named: %s not found", varNm)
	}
	return ns.varSlice(vi)[ni], nil
}

func (ns *NeuronStore) varSlice(vi int) []float32 {
	switch vi {
	case 0:
		return ns.Vm
	case 1:
		return ns.Recovery
	case 2:
		return ns.Current
	case 3:
		return ns.ExtCurrent
	case 4:
		return ns.CompCurrent
	default:
		return ns.AvgRate
	}
}
