// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"cogentcore.org/core/math32"
	"github.com/ccnlab/spikenet/stdp"
)

// Plasticity applies spike-timing weight changes.  Timing updates
// accumulate into DWt at spike events; Consolidate folds DWt into Wt
// at a fixed cadence, clamping into [0, MaxWt].  When the context is
// in Test mode weights and accumulators are frozen.
type Plasticity struct {

	// steps between weight consolidations (and firing rate updates)
	Interval int `default:"1000"`

	// scaling on accumulated DWt when folded into Wt
	Scale float32 `default:"1"`

	// retention of unconsolidated DWt after each consolidation --
	// zero discards the remainder entirely
	Decay float32 `default:"0"`
}

func (pl *Plasticity) Defaults() {
	pl.Interval = 1000
	pl.Scale = 1
	pl.Decay = 0
}

// curve returns the timing curve for afferents from sg onto pg:
// inhibitory sources use the receiving group's ISTDP, excitatory the
// ESTDP.
func curve(sg, pg *Group) *stdp.Params {
	if sg.Inhib {
		return &pg.ISTDP
	}
	return &pg.ESTDP
}

// modFact returns the neuromodulatory gate on a weight change for the
// receiving group: dopamine-modulated curves scale by the group's
// dopamine concentration.
func modFact(sp *stdp.Params, nm *Neuromod, pg *Group) float32 {
	if !sp.DAMod {
		return 1
	}
	return nm.Level(pg.ID, DA)
}

// OnArrival records the presynaptic arrival time on the synapse and
// applies the depression branch of the timing curve: the time since
// the receiver last spiked determines LTD (post before pre).  Arrival
// bookkeeping happens in Test mode too; only weight changes are gated.
func (pl *Plasticity) OnArrival(ct *Connectivity, gs *Groups, ns *NeuronStore, nm *Neuromod, si int32, step int32, testing bool) {
	ct.SynSpike[si] = step
	if testing {
		return
	}
	if !ct.Plastic[si] {
		return
	}
	post := ct.SConIndex[si]
	pg := gs.All[ns.Group[post]]
	sg := gs.All[ns.Group[ct.Src[si]]]
	sp := curve(sg, pg)
	if !sp.On {
		return
	}
	lastPost := ns.LastSpike[post]
	if lastPost == neverSpiked {
		return
	}
	dw := sp.DWt(float32(lastPost - step))
	if dw == 0 {
		return
	}
	dw *= modFact(sp, nm, pg)
	if pg.Homeo.On {
		dw *= pg.Homeo.DampFact(ns.AvgRate[post])
	}
	ct.DWt[si] += dw
}

// OnPostSpike applies the potentiation branch over all afferent
// synapses of a neuron that just spiked: the time since each synapse
// last delivered determines LTP (pre before post).
func (pl *Plasticity) OnPostSpike(ct *Connectivity, gs *Groups, ns *NeuronStore, nm *Neuromod, post int32, step int32, testing bool) {
	if testing {
		return
	}
	pg := gs.All[ns.Group[post]]
	if !pg.ESTDP.On && !pg.ISTDP.On {
		return
	}
	damp := float32(1)
	if pg.Homeo.On {
		damp = pg.Homeo.DampFact(ns.AvgRate[post])
	}
	nc := ct.RConN[post]
	st := ct.RConIndexSt[post]
	for ci := int32(0); ci < nc; ci++ {
		si := ct.RSynIndex[st+ci]
		if !ct.Plastic[si] {
			continue
		}
		arr := ct.SynSpike[si]
		if arr == neverSpiked {
			continue
		}
		sg := gs.All[ns.Group[ct.RConIndex[st+ci]]]
		sp := curve(sg, pg)
		if !sp.On {
			continue
		}
		dw := sp.DWt(float32(step - arr))
		if dw == 0 {
			continue
		}
		dw *= modFact(sp, nm, pg)
		ct.DWt[si] += dw * damp
	}
}

// Consolidate folds accumulated DWt into Wt for synapses in [lo, hi),
// clamping into [0, MaxWt] and counting clamps.  Homeostatic groups
// additionally drift afferent weights toward the rate target.
func (pl *Plasticity) Consolidate(ct *Connectivity, gs *Groups, ns *NeuronStore, warns *Warnings, lo, hi int) {
	for si := lo; si < hi; si++ {
		if !ct.Plastic[si] {
			continue
		}
		post := ct.SConIndex[si]
		pg := gs.All[ns.Group[post]]
		dwt := pl.Scale * ct.DWt[si]
		if pg.Homeo.On {
			dev := ns.AvgRate[post]/pg.Homeo.BaseRate - 1
			dwt -= pg.Homeo.Lrate * dev * ct.Wt[si]
		}
		if dwt != 0 {
			w := ct.Wt[si] + dwt
			cw := math32.Clamp(w, 0, ct.MaxWt[si])
			if cw != w {
				warns.ClampWt(int32(si), w)
			}
			ct.Wt[si] = cw
		}
		ct.DWt[si] *= pl.Decay
	}
}

// RatesUpdate folds the spike counts since the last consolidation into
// the running average rates, for neurons in [lo, hi).
func (pl *Plasticity) RatesUpdate(gs *Groups, ns *NeuronStore, lo, hi int) {
	iv := float32(pl.Interval)
	for ni := lo; ni < hi; ni++ {
		gp := gs.All[ns.Group[ni]]
		inst := float32(ns.SpikeCnt[ni]) * 1000 / iv
		ns.SpikeCnt[ni] = 0
		dt := iv / gp.Homeo.TauAvg
		if dt > 1 {
			dt = 1
		}
		ns.AvgRate[ni] += dt * (inst - ns.AvgRate[ni])
	}
}
