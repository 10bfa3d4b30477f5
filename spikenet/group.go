// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"cogentcore.org/core/math32"
	"github.com/ccnlab/spikenet/izhi"
	"github.com/ccnlab/spikenet/stdp"
	"github.com/ccnlab/spikenet/stp"
)

// MaxGroups is the maximum number of groups in one network.
const MaxGroups = 128

// HomeoParams are homeostatic synaptic scaling parameters, applied to
// plastic weights of neurons in the group when On.  Accumulated weight
// changes are damped in proportion to how far the postsynaptic firing
// rate has drifted from BaseRate, and weights slowly drift back toward
// the target at consolidation time.
type HomeoParams struct {

	// enable homeostatic regulation for this group
	On bool

	// target firing rate in Hz
	BaseRate float32 `default:"10"`

	// time constant for the running average firing rate (ms)
	TauAvg float32 `default:"1000"`

	// damping strength on accumulated weight changes as rate deviates
	Damp float32 `default:"1"`

	// rate of multiplicative weight drift toward the target at
	// consolidation, per consolidation interval
	Lrate float32 `default:"0.1"`
}

func (hp *HomeoParams) Defaults() {
	hp.BaseRate = 10
	hp.TauAvg = 1000
	hp.Damp = 1
	hp.Lrate = 0.1
}

func (hp *HomeoParams) Update() {
}

// DampFact returns the damping factor on weight changes for the given
// average postsynaptic rate: 1 / (1 + Damp * |rate/base - 1|).
func (hp *HomeoParams) DampFact(avgRate float32) float32 {
	dev := math32.Abs(avgRate/hp.BaseRate - 1)
	return 1 / (1 + hp.Damp*dev)
}

// GroupSpec is the user-supplied configuration for one group of
// neurons sharing a population model.  Zero values get Defaults at
// Add time for any params sub-struct not explicitly configured.
type GroupSpec struct {

	// name, unique within the network
	Name string

	// number of neurons
	Size int

	// 3D spatial extent for distance-based connectivity -- defaults to
	// Size x 1 x 1 if left zero
	Extent math32.Vector3i

	// inhibitory group: all outgoing synapses route to the fast and
	// slow inhibitory receptor channels
	Inhib bool

	// spike generator group: spikes come from the attached Generator
	// instead of membrane integration
	Generator bool

	// absolute refractory period in ms -- spike detection is suppressed
	// for this long after each spike
	Refract float32

	// membrane model parameters shared by the group
	Izhi izhi.Params

	// standard deviations for per-neuron heterogeneity of the membrane
	// parameters
	IzhiSD izhi.Dists

	// short-term plasticity of outgoing synapses
	STP stp.Params

	// spike-timing plasticity for excitatory afferents onto this group
	ESTDP stdp.Params

	// spike-timing plasticity for inhibitory afferents onto this group
	ISTDP stdp.Params

	// homeostatic regulation of afferent plastic weights
	Homeo HomeoParams

	// neuromodulator baselines and decay for this group
	NM NMParams
}

// Group is a registered group: the GroupSpec plus its assigned identity and
// contiguous range in the global neuron index space.
type Group struct {
	GroupSpec

	// group index in the registry
	ID GroupID

	// first global neuron index, assigned at Finalize
	StartN NeuronID

	// one past the last global neuron index
	EndN NeuronID

	// maximum outgoing delay over all connections from this group,
	// set during connectivity build
	MaxDelay int

	// spike source for Generator groups
	Gen SpikeGenerator
}

// Contains returns true if the global neuron index is in this group.
func (gp *Group) Contains(ni NeuronID) bool {
	return ni >= gp.StartN && ni < gp.EndN
}

// LocalIndex returns the group-local index of a global neuron index.
func (gp *Group) LocalIndex(ni NeuronID) int {
	return int(ni - gp.StartN)
}

// Pos returns the 3D grid position of the group-local neuron index
// within Extent, in raster order (X fastest).
func (gp *Group) Pos(li int) math32.Vector3i {
	ex := gp.Extent
	return math32.Vector3i{
		X: int32(li) % ex.X,
		Y: (int32(li) / ex.X) % ex.Y,
		Z: int32(li) / (ex.X * ex.Y),
	}
}

// Groups is the group registry.  Groups are added during configuration
// and assigned contiguous neuron index ranges at Finalize.
type Groups struct {

	// all groups in registration order
	All []*Group

	// name to group lookup
	Names map[string]*Group

	// total neuron count, valid after Finalize
	NNeurons int

	built bool
}

// Built returns true once Finalize has run.
func (gs *Groups) Built() bool {
	return gs.built
}

// Add validates and registers a group spec, returning the new group.
// The neuron index range is not assigned until Finalize.
func (gs *Groups) Add(spec GroupSpec) (*Group, error) {
	if gs.built {
		return nil, stateErrorf("Add: group %q added after finalize", spec.Name)
	}
	if len(gs.All) >= MaxGroups {
		return nil, capacityErrorf("Add: group %q: max %d groups", spec.Name, MaxGroups)
	}
	if spec.Name == "" {
		return nil, configErrorf("Add: group name must not be empty")
	}
	if _, ok := gs.Names[spec.Name]; ok {
		return nil, configErrorf("Add: duplicate group name %q", spec.Name)
	}
	if spec.Size <= 0 {
		return nil, configErrorf("Add: group %q: size %d must be positive", spec.Name, spec.Size)
	}
	if spec.Extent == (math32.Vector3i{}) {
		spec.Extent = math32.Vector3i{X: int32(spec.Size), Y: 1, Z: 1}
	}
	if int(spec.Extent.X*spec.Extent.Y*spec.Extent.Z) != spec.Size {
		return nil, configErrorf("Add: group %q: extent %v does not match size %d", spec.Name, spec.Extent, spec.Size)
	}
	if spec.Refract < 0 {
		return nil, configErrorf("Add: group %q: negative refractory %g", spec.Name, spec.Refract)
	}
	if spec.Izhi == (izhi.Params{}) {
		spec.Izhi.Defaults()
	}
	if spec.Homeo == (HomeoParams{}) {
		spec.Homeo.Defaults()
		spec.Homeo.On = false
	}
	if spec.Homeo.On && (spec.Homeo.BaseRate <= 0 || spec.Homeo.TauAvg <= 0) {
		return nil, configErrorf("Add: group %q: homeostasis requires positive BaseRate and TauAvg", spec.Name)
	}
	if spec.NM == (NMParams{}) {
		spec.NM.Defaults()
	}
	spec.STP.Update()
	spec.ESTDP.Update()
	spec.ISTDP.Update()
	gp := &Group{GroupSpec: spec, ID: GroupID(len(gs.All))}
	if gs.Names == nil {
		gs.Names = make(map[string]*Group)
	}
	gs.All = append(gs.All, gp)
	gs.Names[spec.Name] = gp
	return gp, nil
}

// ByName returns the group with the given name, nil if not found.
func (gs *Groups) ByName(name string) *Group {
	return gs.Names[name]
}

// Finalize assigns contiguous global neuron index ranges in
// registration order and returns the total neuron count.
func (gs *Groups) Finalize() (int, error) {
	if gs.built {
		return 0, stateErrorf("Finalize: already finalized")
	}
	if len(gs.All) == 0 {
		return 0, configErrorf("Finalize: no groups")
	}
	tot := 0
	for _, gp := range gs.All {
		gp.StartN = NeuronID(tot)
		tot += gp.Size
		gp.EndN = NeuronID(tot)
	}
	if tot > MaxNeurons {
		return 0, capacityErrorf("Finalize: %d neurons exceeds max %d", tot, MaxNeurons)
	}
	gs.NNeurons = tot
	gs.built = true
	return tot, nil
}

// GroupOf returns the group containing the given global neuron index,
// by binary search over the contiguous ranges.
func (gs *Groups) GroupOf(ni NeuronID) *Group {
	lo, hi := 0, len(gs.All)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		gp := gs.All[mid]
		switch {
		case ni < gp.StartN:
			hi = mid - 1
		case ni >= gp.EndN:
			lo = mid + 1
		default:
			return gp
		}
	}
	return nil
}
