// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stp implements Tsodyks-Markram short-term plasticity: transient,
spike-history-dependent facilitation and depression of synaptic efficacy.
Each presynaptic neuron carries a utilization variable u (facilitation)
and an available-resource variable x (depression); both recover
exponentially toward their resting values between spikes, and are updated
multiplicatively at each spike.
*/
package stp

import "cogentcore.org/core/math32"

// Params are the short-term plasticity parameters for one group.
type Params struct {

	// enable short-term plasticity for synapses sent by this group
	On bool

	// baseline utilization: increment fraction of u per spike, and its
	// resting value
	U float32 `default:"0.45"`

	// recovery time constant for utilization u (facilitation) (ms)
	TauU float32 `default:"50"`

	// recovery time constant for available resource x (depression) (ms)
	TauX float32 `default:"750"`

	// 1 / TauU
	TauUInv float32 `edit:"-"`

	// 1 / TauX
	TauXInv float32 `edit:"-"`

	// efficacy normalization = 1 / U, so a steady-state single spike has
	// unit efficacy
	A float32 `edit:"-"`
}

func (sp *Params) Defaults() {
	sp.U = 0.45
	sp.TauU = 50
	sp.TauX = 750
	sp.Update()
}

// Update computes the derived inverse time constants.
// Must be called after any parameter change.
func (sp *Params) Update() {
	sp.TauUInv = 1 / sp.TauU
	sp.TauXInv = 1 / sp.TauX
	if sp.U > 0 {
		sp.A = 1 / sp.U
	} else {
		sp.A = 1
	}
}

// Init returns the resting (u, x) state.
func (sp *Params) Init() (float32, float32) {
	return sp.U, 1
}

// Recover returns (u, x) after elapsed ms without spikes, relaxing u
// toward U and x toward 1.
func (sp *Params) Recover(u, x, elapsed float32) (float32, float32) {
	if elapsed <= 0 {
		return u, x
	}
	du := math32.FastExp(-elapsed * sp.TauUInv)
	dx := math32.FastExp(-elapsed * sp.TauXInv)
	u = sp.U + (u-sp.U)*du
	x = 1 + (x-1)*dx
	return u, x
}

// OnSpike applies the spike update to recovered (u, x), returning the new
// state and the multiplicative efficacy factor for this spike.
// u is facilitated before use; x is depleted by the used fraction.
func (sp *Params) OnSpike(u, x float32) (nu, nx, eff float32) {
	nu = u + sp.U*(1-u)
	eff = sp.A * nu * x
	nx = x - nu*x
	if nx < 0 {
		nx = 0
	}
	return
}
