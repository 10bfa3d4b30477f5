// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"github.com/ccnlab/spikenet/izhi"
	"github.com/emer/emergent/v2/etime"
)

// Context holds the global simulation clock and integration settings,
// passed to all stepping methods.
type Context struct {

	// current step (one step = one millisecond of simulated time)
	Step int32

	// accumulated simulated time in seconds
	Time float32

	// duration of one step in seconds
	TimePerStep float32 `default:"0.001"`

	// number of ODE sub-steps per step -- membrane integration runs at
	// 1/SubSteps ms resolution while spikes and synaptic events remain
	// at step resolution
	SubSteps int `default:"2"`

	// numerical integration method for the membrane equations
	Method izhi.Methods

	// Train enables plasticity, Test freezes all weight updates
	Mode etime.Modes
}

// NewContext returns a new Context with Defaults set.
func NewContext() *Context {
	ctx := &Context{}
	ctx.Defaults()
	return ctx
}

func (ctx *Context) Defaults() {
	ctx.TimePerStep = 0.001
	ctx.SubSteps = 2
	ctx.Method = izhi.Euler
	ctx.Mode = etime.Train
}

// Reset resets the counters back to zero.
func (ctx *Context) Reset() {
	ctx.Step = 0
	ctx.Time = 0
	if ctx.TimePerStep == 0 || ctx.SubSteps == 0 {
		ctx.Defaults()
	}
}

// StepInc increments the clock by one step.
func (ctx *Context) StepInc() {
	ctx.Step++
	ctx.Time += ctx.TimePerStep
}

// DtMs returns the sub-step size in milliseconds.
func (ctx *Context) DtMs() float32 {
	return 1 / float32(ctx.SubSteps)
}

// Testing returns true if plasticity is frozen.
func (ctx *Context) Testing() bool {
	return ctx.Mode == etime.Test
}
