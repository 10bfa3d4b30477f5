// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import "cogentcore.org/core/math32"

// NMChans are the neuromodulator channels tracked per group.
type NMChans int32 //enums:enum

const (
	// DA is dopamine
	DA NMChans = iota

	// HT5 is serotonin
	HT5

	// ACh is acetylcholine
	ACh

	// NE is noradrenaline
	NE
)

// NMParams are a group's neuromodulator baselines and decay time
// constants, one entry per channel.
type NMParams struct {

	// baseline concentration per channel
	Base [NMChansN]float32

	// decay time constant per channel (ms)
	Tau [NMChansN]float32
}

func (np *NMParams) Defaults() {
	for c := range np.Base {
		np.Base[c] = 1
		np.Tau[c] = 100
	}
}

// Neuromod tracks per-group neuromodulator concentrations.  Injections
// raise a concentration above baseline; it then relaxes exponentially
// back with the group's time constant.  Concentrations never fall
// below baseline.
type Neuromod struct {

	// concentration per group per channel
	Conc [][NMChansN]float32

	// per-step decay multiplier per group per channel
	decay [][NMChansN]float32
}

// Build allocates and initializes concentrations at the group baselines.
func (nm *Neuromod) Build(gs *Groups) {
	ng := len(gs.All)
	nm.Conc = make([][NMChansN]float32, ng)
	nm.decay = make([][NMChansN]float32, ng)
	for gi, gp := range gs.All {
		for c := range gp.NM.Base {
			nm.decay[gi][c] = math32.FastExp(-1 / gp.NM.Tau[c])
		}
	}
	nm.Init(gs)
}

// Init resets all concentrations to baseline.
func (nm *Neuromod) Init(gs *Groups) {
	for gi, gp := range gs.All {
		nm.Conc[gi] = gp.NM.Base
	}
}

// Inject adds amount to the given group's channel concentration.
func (nm *Neuromod) Inject(gi GroupID, ch NMChans, amount float32) {
	nm.Conc[gi][ch] += amount
}

// Level returns the current concentration for a group and channel.
func (nm *Neuromod) Level(gi GroupID, ch NMChans) float32 {
	return nm.Conc[gi][ch]
}

// DecayStep relaxes all concentrations one step toward baseline.
func (nm *Neuromod) DecayStep(gs *Groups) {
	for gi, gp := range gs.All {
		for c := range nm.Conc[gi] {
			base := gp.NM.Base[c]
			nm.Conc[gi][c] = base + (nm.Conc[gi][c]-base)*nm.decay[gi][c]
		}
	}
}
