// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stdp implements spike-timing-dependent plasticity curves: the
weight change as a function of the interval between pre- and
post-synaptic spikes.  Two curve shapes are supported: the standard
asymmetric exponential window, and a pulse curve (symmetric boxcar
windows, typically used for inhibitory synapses).  Weight-change
magnitude can optionally be gated by a neuromodulator concentration.
*/
package stdp

import "cogentcore.org/core/math32"

// Curves are the supported STDP curve shapes.
type Curves int32 //enums:enum

const (
	// Exp is the standard exponential window: potentiation
	// AlphaPlus*exp(-dt/TauPlus) for post-after-pre, depression
	// AlphaMinus*exp(dt/TauMinus) for pre-after-post.
	Exp Curves = iota

	// Pulse is a symmetric boxcar: potentiation BetaLTP for |dt| within
	// Lambda, depression BetaLTD between Lambda and Delta, zero outside.
	Pulse
)

// Params are the STDP parameters for one synapse class (excitatory or
// inhibitory) of a group.
type Params struct {

	// enable STDP for synapses of this class received by the group
	On bool

	// gate weight-change magnitude by the group's dopamine concentration
	DAMod bool

	// curve shape
	Curve Curves

	// potentiation magnitude for the Exp curve
	AlphaPlus float32 `default:"0.001"`

	// depression magnitude for the Exp curve (applied with negative sign)
	AlphaMinus float32 `default:"0.0012"`

	// potentiation time constant (ms) for the Exp curve
	TauPlus float32 `default:"20"`

	// depression time constant (ms) for the Exp curve
	TauMinus float32 `default:"20"`

	// potentiation magnitude for the Pulse curve
	BetaLTP float32 `default:"0.001"`

	// depression magnitude for the Pulse curve
	BetaLTD float32 `default:"0.0005"`

	// half-width (ms) of the potentiation window for the Pulse curve
	Lambda float32 `default:"6"`

	// outer edge (ms) of the depression window for the Pulse curve
	Delta float32 `default:"20"`

	// 1 / TauPlus
	TauPlusInv float32 `edit:"-"`

	// 1 / TauMinus
	TauMinusInv float32 `edit:"-"`
}

func (sp *Params) Defaults() {
	sp.Curve = Exp
	sp.AlphaPlus = 0.001
	sp.AlphaMinus = 0.0012
	sp.TauPlus = 20
	sp.TauMinus = 20
	sp.BetaLTP = 0.001
	sp.BetaLTD = 0.0005
	sp.Lambda = 6
	sp.Delta = 20
	sp.Update()
}

// Update computes the derived inverse time constants.
// Must be called after any parameter change.
func (sp *Params) Update() {
	if sp.TauPlus > 0 {
		sp.TauPlusInv = 1 / sp.TauPlus
	}
	if sp.TauMinus > 0 {
		sp.TauMinusInv = 1 / sp.TauMinus
	}
}

// DWt returns the weight change for spike interval dt = postTime - preTime
// (ms).  Positive dt (post after pre) potentiates under the Exp curve.
func (sp *Params) DWt(dt float32) float32 {
	switch sp.Curve {
	case Pulse:
		adt := math32.Abs(dt)
		if adt < sp.Lambda {
			return sp.BetaLTP
		}
		if adt < sp.Delta {
			return -sp.BetaLTD
		}
		return 0
	default:
		if dt > 0 {
			return sp.AlphaPlus * math32.FastExp(-dt*sp.TauPlusInv)
		}
		if dt < 0 {
			return -sp.AlphaMinus * math32.FastExp(dt*sp.TauMinusInv)
		}
		// coincident spikes: no asymmetric information
		return 0
	}
}
