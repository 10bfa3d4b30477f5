// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import "fmt"

// NeuronID is a global neuron index, valid after Groups.Finalize.
type NeuronID int32

// GroupID indexes a group in the registry.
type GroupID int32

// ConnID indexes a connection descriptor.
type ConnID int16

// SynID is a packed synapse handle: the low NeuronBits hold the global
// index of the source neuron, the high SynSlotBits hold the slot of the
// synapse within that neuron's outgoing fan.  The packing bounds the
// network to MaxNeurons neurons and MaxSynSlot outgoing synapses per
// neuron.
type SynID uint32

const (
	// SynSlotBits is the number of bits for the per-neuron synapse slot.
	SynSlotBits = 10

	// NeuronBits is the number of bits for the source neuron index.
	NeuronBits = 22

	// MaxSynSlot is the maximum outgoing fan per neuron.
	MaxSynSlot = 1 << SynSlotBits

	// MaxNeurons is the maximum total neuron count.
	MaxNeurons = 1 << NeuronBits

	// MaxConns is the maximum number of connection descriptors,
	// bounded by the int16 per-synapse descriptor index.
	MaxConns = 1<<15 - 1
)

// PackSynID packs a source neuron and a synapse slot into a SynID.
// Arguments must be in range -- checked at build time, not here.
func PackSynID(ni NeuronID, slot int) SynID {
	return SynID(uint32(slot)<<NeuronBits | uint32(ni))
}

// Neuron returns the source neuron index.
func (si SynID) Neuron() NeuronID {
	return NeuronID(uint32(si) & (MaxNeurons - 1))
}

// Slot returns the synapse slot within the source neuron's fan.
func (si SynID) Slot() int {
	return int(uint32(si) >> NeuronBits)
}

func (si SynID) String() string {
	return fmt.Sprintf("N%d:S%d", si.Neuron(), si.Slot())
}

// SynapseVars are the per-synapse variables accessible by name through
// monitoring calls, in the order stored in Connectivity.
var SynapseVars = []string{"Wt", "DWt", "MaxWt"}

// SynapseVarsMap maps variable name to index in SynapseVars.
var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}
