// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package izhi implements the Izhikevich neuron model equations, in both
the classic 4-parameter form and the 9-parameter form with explicit
membrane capacitance and threshold / resting potentials.
Parameters are specified per group with optional per-parameter standard
deviations, and drawn per neuron at network build time.
*/
package izhi

import "cogentcore.org/core/math32"

// Methods are the numerical integration methods for advancing the
// membrane potential and recovery variable within a simulation step.
type Methods int32 //enums:enum

const (
	// Euler is simple forward Euler integration -- fast, and accurate
	// enough with sufficient sub-steps per millisecond.
	Euler Methods = iota

	// RK4 is 4th-order Runge-Kutta integration -- more accurate per
	// sub-step, at roughly 4x the cost of Euler.
	RK4
)

// Params are the Izhikevich model parameters for one neuron (or the mean
// values for a group).  The 4-parameter model uses only A, B, C, D with the
// canonical 0.04v^2 + 5v + 140 dynamics and a fixed peak of +30 mV.
// The 9-parameter model (Nine = true) additionally uses Cap, K, Vr, Vt,
// Vpeak for quantitatively fit dynamics.
type Params struct {

	// recovery time scale: smaller = slower recovery
	A float32 `default:"0.02"`

	// recovery sensitivity to subthreshold fluctuations of Vm
	B float32 `default:"0.2"`

	// after-spike reset value of Vm (mV)
	C float32 `default:"-65"`

	// after-spike increment of the recovery variable
	D float32 `default:"8"`

	// use the 9-parameter model instead of the classic 4-parameter form
	Nine bool

	// membrane capacitance (pF) -- 9-parameter model only
	Cap float32 `default:"100"`

	// input resistance scaling constant -- 9-parameter model only
	K float32 `default:"0.7"`

	// resting membrane potential (mV) -- 9-parameter model only
	Vr float32 `default:"-60"`

	// instantaneous spike threshold potential (mV) -- 9-parameter model only
	Vt float32 `default:"-40"`

	// spike cutoff potential (mV): Vm reaching this value marks a spike
	Vpeak float32 `default:"30"`
}

func (pr *Params) Defaults() {
	pr.RegularSpiking()
}

// RegularSpiking sets the canonical RS cortical excitatory cell parameters.
func (pr *Params) RegularSpiking() {
	pr.A, pr.B, pr.C, pr.D = 0.02, 0.2, -65, 8
	pr.Vpeak = 30
	pr.Nine = false
}

// FastSpiking sets the canonical FS cortical inhibitory cell parameters.
func (pr *Params) FastSpiking() {
	pr.A, pr.B, pr.C, pr.D = 0.1, 0.2, -65, 2
	pr.Vpeak = 30
	pr.Nine = false
}

// IntrinsicBursting sets the canonical IB cell parameters.
func (pr *Params) IntrinsicBursting() {
	pr.A, pr.B, pr.C, pr.D = 0.02, 0.2, -55, 4
	pr.Vpeak = 30
	pr.Nine = false
}

// Chattering sets the canonical CH cell parameters.
func (pr *Params) Chattering() {
	pr.A, pr.B, pr.C, pr.D = 0.02, 0.2, -50, 2
	pr.Vpeak = 30
	pr.Nine = false
}

// RegularSpiking9 sets 9-parameter regular-spiking parameters
// (Izhikevich 2007 RS fit).
func (pr *Params) RegularSpiking9() {
	pr.Nine = true
	pr.Cap, pr.K = 100, 0.7
	pr.Vr, pr.Vt, pr.Vpeak = -60, -40, 35
	pr.A, pr.B, pr.C, pr.D = 0.03, -2, -50, 100
}

// InitVm returns the initial (resting) membrane potential for these params.
func (pr *Params) InitVm() float32 {
	if pr.Nine {
		return pr.Vr
	}
	return pr.C
}

// InitRecovery returns the initial recovery variable value for given
// initial Vm.
func (pr *Params) InitRecovery(vm float32) float32 {
	if pr.Nine {
		return 0
	}
	return pr.B * vm
}

// DVm returns the instantaneous dVm/dt for membrane potential vm,
// recovery variable u, and total input current cur.
func (pr *Params) DVm(vm, u, cur float32) float32 {
	if pr.Nine {
		return (pr.K*(vm-pr.Vr)*(vm-pr.Vt) - u + cur) / pr.Cap
	}
	return 0.04*vm*vm + 5*vm + 140 - u + cur
}

// DRecovery returns the instantaneous du/dt for membrane potential vm
// and recovery variable u.
func (pr *Params) DRecovery(vm, u float32) float32 {
	if pr.Nine {
		return pr.A * (pr.B*(vm-pr.Vr) - u)
	}
	return pr.A * (pr.B*vm - u)
}

// StepEuler advances vm, u by one forward-Euler sub-step of size dt (ms)
// with input current cur, returning the new values.
func (pr *Params) StepEuler(vm, u, cur, dt float32) (float32, float32) {
	nvm := vm + dt*pr.DVm(vm, u, cur)
	nu := u + dt*pr.DRecovery(vm, u)
	return nvm, nu
}

// StepRK4 advances vm, u by one RK4 sub-step of size dt (ms) with input
// current cur (held constant across the sub-step), returning the new values.
func (pr *Params) StepRK4(vm, u, cur, dt float32) (float32, float32) {
	k1v := pr.DVm(vm, u, cur)
	k1u := pr.DRecovery(vm, u)
	k2v := pr.DVm(vm+0.5*dt*k1v, u+0.5*dt*k1u, cur)
	k2u := pr.DRecovery(vm+0.5*dt*k1v, u+0.5*dt*k1u)
	k3v := pr.DVm(vm+0.5*dt*k2v, u+0.5*dt*k2u, cur)
	k3u := pr.DRecovery(vm+0.5*dt*k2v, u+0.5*dt*k2u)
	k4v := pr.DVm(vm+dt*k3v, u+dt*k3u, cur)
	k4u := pr.DRecovery(vm+dt*k3v, u+dt*k3u)
	nvm := vm + (dt/6)*(k1v+2*k2v+2*k3v+k4v)
	nu := u + (dt/6)*(k1u+2*k2u+2*k3u+k4u)
	return nvm, nu
}

// Step advances vm, u by one sub-step using the given method.
func (pr *Params) Step(vm, u, cur, dt float32, met Methods) (float32, float32) {
	if met == RK4 {
		return pr.StepRK4(vm, u, cur, dt)
	}
	return pr.StepEuler(vm, u, cur, dt)
}

// Fired returns true if vm has reached the spike cutoff.
func (pr *Params) Fired(vm float32) bool {
	return vm >= pr.Vpeak
}

// Reset returns the after-spike (vm, u) values given current u.
func (pr *Params) Reset(u float32) (float32, float32) {
	return pr.C, u + pr.D
}

// Dists are per-parameter standard deviations for drawing individual
// neuron parameters around the group means, as in heterogeneous
// populations.  Zero SD (the default) gives all neurons the group mean.
type Dists struct {

	// SD for A
	A float32

	// SD for B
	B float32

	// SD for C
	C float32

	// SD for D
	D float32

	// SD for Cap -- 9-parameter model only
	Cap float32

	// SD for K -- 9-parameter model only
	K float32

	// SD for Vr -- 9-parameter model only
	Vr float32

	// SD for Vt -- 9-parameter model only
	Vt float32

	// SD for Vpeak
	Vpeak float32
}

// Gen returns a copy of the mean params pr with each parameter perturbed
// by gaussian noise of the respective SD, using norm, a standard normal
// draw function (e.g., from a seeded rand source).
func (ds *Dists) Gen(pr Params, norm func() float32) Params {
	np := pr
	if ds.A != 0 {
		np.A += ds.A * norm()
	}
	if ds.B != 0 {
		np.B += ds.B * norm()
	}
	if ds.C != 0 {
		np.C += ds.C * norm()
	}
	if ds.D != 0 {
		np.D += ds.D * norm()
	}
	if ds.Cap != 0 {
		np.Cap += ds.Cap * norm()
	}
	if ds.K != 0 {
		np.K += ds.K * norm()
	}
	if ds.Vr != 0 {
		np.Vr += ds.Vr * norm()
	}
	if ds.Vt != 0 {
		np.Vt += ds.Vt * norm()
	}
	if ds.Vpeak != 0 {
		np.Vpeak += ds.Vpeak * norm()
	}
	np.A = math32.Max(np.A, 0.001)
	if np.Nine {
		np.Cap = math32.Max(np.Cap, 1)
	}
	return np
}
