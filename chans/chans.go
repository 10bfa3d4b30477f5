// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans implements the kinetics of the four synaptic conductance
channels used by the engine: fast excitatory (AMPA), slow excitatory
(NMDA), fast inhibitory (GABAa), and slow inhibitory (GABAb).
The slow channels optionally use bi-exponential rise / decay dynamics
modeled as the difference of two exponential traces.
All decay multipliers are derived once from the channel time constants
and the integration time step, in Update.
*/
package chans

import "cogentcore.org/core/math32"

// Params are the time constants, reversal potentials, and derived
// per-step multipliers for the four synaptic conductance channels.
type Params struct {

	// AMPA decay time constant (ms)
	TauAMPA float32 `default:"5"`

	// NMDA decay time constant (ms)
	TauNMDA float32 `default:"150"`

	// NMDA rise time constant (ms) -- 0 disables the rise trace and the
	// NMDA channel decays as a single exponential
	TauNMDARise float32 `default:"0,10"`

	// GABAa decay time constant (ms)
	TauGABAa float32 `default:"6"`

	// GABAb decay time constant (ms)
	TauGABAb float32 `default:"150"`

	// GABAb rise time constant (ms) -- 0 disables the rise trace
	TauGABAbRise float32 `default:"0,100"`

	// excitatory reversal potential (mV), for AMPA and NMDA
	ErevE float32 `default:"0"`

	// GABAa reversal potential (mV)
	ErevGABAa float32 `default:"-70"`

	// GABAb reversal potential (mV)
	ErevGABAb float32 `default:"-90"`

	// per-step decay multiplier for AMPA = exp(-dt/tau)
	DAMPA float32 `edit:"-"`

	// per-step decay multiplier for the NMDA decay trace
	DNMDA float32 `edit:"-"`

	// per-step decay multiplier for the NMDA rise trace
	RNMDA float32 `edit:"-"`

	// amplitude normalization for bi-exponential NMDA, such that the
	// peak of (decay - rise) for a unit input is 1
	SNMDA float32 `edit:"-"`

	// per-step decay multiplier for GABAa
	DGABAa float32 `edit:"-"`

	// per-step decay multiplier for the GABAb decay trace
	DGABAb float32 `edit:"-"`

	// per-step decay multiplier for the GABAb rise trace
	RGABAb float32 `edit:"-"`

	// amplitude normalization for bi-exponential GABAb
	SGABAb float32 `edit:"-"`
}

func (cp *Params) Defaults() {
	cp.TauAMPA = 5
	cp.TauNMDA = 150
	cp.TauNMDARise = 0
	cp.TauGABAa = 6
	cp.TauGABAb = 150
	cp.TauGABAbRise = 0
	cp.ErevE = 0
	cp.ErevGABAa = -70
	cp.ErevGABAb = -90
	cp.Update(1)
}

// NMDARise returns true if the NMDA channel uses bi-exponential dynamics.
func (cp *Params) NMDARise() bool { return cp.TauNMDARise > 0 }

// GABAbRise returns true if the GABAb channel uses bi-exponential dynamics.
func (cp *Params) GABAbRise() bool { return cp.TauGABAbRise > 0 }

// Update computes the derived per-step multipliers for integration time
// step dt (ms).  Must be called after any change to the time constants.
func (cp *Params) Update(dt float32) {
	cp.DAMPA = math32.FastExp(-dt / cp.TauAMPA)
	cp.DNMDA = math32.FastExp(-dt / cp.TauNMDA)
	cp.DGABAa = math32.FastExp(-dt / cp.TauGABAa)
	cp.DGABAb = math32.FastExp(-dt / cp.TauGABAb)
	if cp.NMDARise() {
		cp.RNMDA = math32.FastExp(-dt / cp.TauNMDARise)
		cp.SNMDA = biExpNorm(cp.TauNMDARise, cp.TauNMDA)
	} else {
		cp.RNMDA = 0
		cp.SNMDA = 1
	}
	if cp.GABAbRise() {
		cp.RGABAb = math32.FastExp(-dt / cp.TauGABAbRise)
		cp.SGABAb = biExpNorm(cp.TauGABAbRise, cp.TauGABAb)
	} else {
		cp.RGABAb = 0
		cp.SGABAb = 1
	}
}

// biExpNorm returns 1 / peak of exp(-t/decay) - exp(-t/rise) for a unit
// impulse, so scaled bi-exponential conductances peak at the input weight.
func biExpNorm(rise, decay float32) float32 {
	tmax := ((rise * decay) / (decay - rise)) * math32.Log(decay/rise)
	pk := math32.FastExp(-tmax/decay) - math32.FastExp(-tmax/rise)
	if pk <= 0 {
		return 1
	}
	return 1 / pk
}

// NMDAVDep returns the voltage-dependent magnesium-block factor for the
// NMDA channel at membrane potential vm (mV), in [0, 1).
func (cp *Params) NMDAVDep(vm float32) float32 {
	frac := (vm + 80) / 60
	f2 := frac * frac
	return f2 / (1 + f2)
}
