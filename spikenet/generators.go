// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"cogentcore.org/core/tensor"
	"cogentcore.org/core/base/randx"
	"github.com/emer/emergent/v2/paths"
)

// ConnectionGenerator decides per-pair connectivity for UserDefined
// projections: given group-local send and recv indices, it returns
// whether to connect, the initial and maximum weight, and the delay.
type ConnectionGenerator interface {
	Connect(send, recv *Group, si, ri int) (con bool, wt, maxWt float32, delay int)
}

// SpikeGenerator produces spikes for a Generator group each step,
// calling fire with the global index of each neuron to fire.  Fire
// calls for neurons outside the group, or repeat calls for the same
// neuron within one step, are ignored.
type SpikeGenerator interface {
	Generate(gp *Group, ctx *Context, fire func(ni NeuronID))
}

// RateProvider supplies a target firing rate in Hz per group-local
// neuron, for rate-driven generators.
type RateProvider interface {
	Rate(gp *Group, li int) float32
}

// FixedRate is a RateProvider with one rate for every neuron.
type FixedRate float32

func (fr FixedRate) Rate(gp *Group, li int) float32 {
	return float32(fr)
}

// PoissonGen fires each neuron of its group independently with
// per-step probability rate * TimePerStep, approximating a Poisson
// process at step resolution.
type PoissonGen struct {

	// target rates per neuron
	Rates RateProvider

	// private source, so generator draws do not perturb the
	// build-time random stream
	Rnd *randx.SysRand
}

// NewPoissonGen returns a generator with the given rates and seed.
func NewPoissonGen(rates RateProvider, seed int64) *PoissonGen {
	return &PoissonGen{Rates: rates, Rnd: randx.NewSysRand(seed)}
}

func (pg *PoissonGen) Generate(gp *Group, ctx *Context, fire func(ni NeuronID)) {
	for li := 0; li < gp.Size; li++ {
		p := pg.Rates.Rate(gp, li) * ctx.TimePerStep
		if p > 0 && pg.Rnd.Float32() < p {
			fire(gp.StartN + NeuronID(li))
		}
	}
}

// PatternGen adapts a paths.Pattern into a ConnectionGenerator, so the
// structured patterns from the emergent library (circles, tiles,
// sparse pools) drive synapse creation.  Weight and delay come from
// the fixed values given here; the pattern decides only which pairs
// connect.
type PatternGen struct {

	// pattern to expand
	Pat paths.Pattern

	// initial weight for every created synapse
	Wt float32

	// weight bound for every created synapse
	MaxWt float32

	// delay for every created synapse
	Delay int

	cons  tensor.Bits
	slen  int
	built bool
}

// NewPatternGen returns a generator for the given pattern.
func NewPatternGen(pat paths.Pattern, wt, maxWt float32, delay int) *PatternGen {
	return &PatternGen{Pat: pat, Wt: wt, MaxWt: maxWt, Delay: delay}
}

func (pg *PatternGen) Connect(send, recv *Group, si, ri int) (bool, float32, float32, int) {
	if !pg.built {
		ssh := tensor.NewShape([]int{int(send.Extent.Y), int(send.Extent.X)})
		rsh := tensor.NewShape([]int{int(recv.Extent.Y), int(recv.Extent.X)})
		_, _, cons := pg.Pat.Connect(ssh, rsh, send == recv)
		pg.cons = *cons
		pg.slen = send.Size
		pg.built = true
	}
	if !pg.cons.Values.Index(ri*pg.slen + si) {
		return false, 0, 0, 0
	}
	return true, pg.Wt, pg.MaxWt, pg.Delay
}
