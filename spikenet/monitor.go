// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"fmt"

	"cogentcore.org/core/tensor"
)

// UnitValue returns the named per-neuron variable for a neuron.
func (nt *Network) UnitValue(varNm string, ni NeuronID) (float32, error) {
	return nt.Neurons.UnitValue(varNm, ni)
}

// UnitValuesTensor fills tsr with the named variable for every neuron
// of the group, shaped to the group extent.
func (nt *Network) UnitValuesTensor(gp *Group, tsr *tensor.Float32, varNm string) error {
	vi, ok := NeuronVarsMap[varNm]
	if !ok {
		return fmt.Errorf("spikenet.Network: variable named: %s not found", varNm)
	}
	ex := gp.Extent
	tsr.SetShape([]int{int(ex.Z), int(ex.Y), int(ex.X)}, "Z", "Y", "X")
	vals := nt.Neurons.varSlice(vi)
	for li := 0; li < gp.Size; li++ {
		tsr.Values[li] = vals[int(gp.StartN)+li]
	}
	return nil
}

// SynValues fills vals with the named per-synapse variable for every
// synapse of the projection, in send-major order.
func (nt *Network) SynValues(vals *[]float32, cd *ConnDesc, varNm string) error {
	vi, ok := SynapseVarsMap[varNm]
	if !ok {
		return fmt.Errorf("spikenet.Network: variable named: %s not found", varNm)
	}
	ct := &nt.Conns
	if *vals == nil || cap(*vals) < cd.NSyns {
		*vals = make([]float32, cd.NSyns)
	}
	*vals = (*vals)[:0]
	var src []float32
	switch vi {
	case 0:
		src = ct.Wt
	case 1:
		src = ct.DWt
	default:
		src = ct.MaxWt
	}
	for si := 0; si < ct.NSyns; si++ {
		if ct.SynConn[si] == int16(cd.ID) {
			*vals = append(*vals, src[si])
		}
	}
	return nil
}

// NMLevels returns the neuromodulator concentrations for a group.
func (nt *Network) NMLevels(gp *Group) [NMChansN]float32 {
	return nt.NM.Conc[gp.ID]
}

// Snapshot is a full copy of the dynamic simulation state, sufficient
// to resume a run bit-exactly (generator and network random streams
// excepted).  Topology and parameters are not included; a snapshot is
// only valid for the network that produced it.
type Snapshot struct {
	Step      int32
	Time      float32
	Vm        []float32
	Recovery  []float32
	ExtCur    []float32
	CompCur   []float32
	LastSpike []int32
	Refrac    []int32
	AvgRate   []float32
	SpikeCnt  []int32
	GAMPA     []float32
	GNMDA     []float32
	GNMDAr    []float32
	GNMDAd    []float32
	GGABAa    []float32
	GGABAb    []float32
	GGABAbr   []float32
	GGABAbd   []float32
	StpU      []float32
	StpX      []float32
	StpEff    []float32
	Inj       []float32
	Wt        []float32
	DWt       []float32
	SynSpike  []int32
	NM        [][NMChansN]float32
	Pending   [][]int32 // short ring buckets then long ring buckets
	ShortLen  int
}

func cp32(src []float32) []float32 {
	dst := make([]float32, len(src))
	copy(dst, src)
	return dst
}

func cpi32(src []int32) []int32 {
	dst := make([]int32, len(src))
	copy(dst, src)
	return dst
}

// Snapshot captures the current dynamic state.
func (nt *Network) Snapshot(ctx *Context) *Snapshot {
	ns := &nt.Neurons
	sd := &nt.Syn
	ct := &nt.Conns
	sn := &Snapshot{
		Step:      ctx.Step,
		Time:      ctx.Time,
		Vm:        cp32(ns.Vm),
		Recovery:  cp32(ns.Recovery),
		ExtCur:    cp32(ns.ExtCurrent),
		CompCur:   cp32(ns.CompCurrent),
		LastSpike: cpi32(ns.LastSpike),
		Refrac:    cpi32(ns.RefracUntil),
		AvgRate:   cp32(ns.AvgRate),
		SpikeCnt:  cpi32(ns.SpikeCnt),
		GAMPA:     cp32(sd.GAMPA),
		GNMDA:     cp32(sd.GNMDA),
		GNMDAr:    cp32(sd.GNMDAr),
		GNMDAd:    cp32(sd.GNMDAd),
		GGABAa:    cp32(sd.GGABAa),
		GGABAb:    cp32(sd.GGABAb),
		GGABAbr:   cp32(sd.GGABAbr),
		GGABAbd:   cp32(sd.GGABAbd),
		StpU:      cp32(sd.StpU),
		StpX:      cp32(sd.StpX),
		StpEff:    cp32(sd.stpEff),
		Inj:       cp32(sd.Inj),
		Wt:        cp32(ct.Wt),
		DWt:       cp32(ct.DWt),
		SynSpike:  cpi32(ct.SynSpike),
		ShortLen:  len(nt.Queue.Short.buckets),
	}
	sn.NM = make([][NMChansN]float32, len(nt.NM.Conc))
	copy(sn.NM, nt.NM.Conc)
	for _, b := range nt.Queue.Short.buckets {
		sn.Pending = append(sn.Pending, cpi32(b))
	}
	for _, b := range nt.Queue.Long.buckets {
		sn.Pending = append(sn.Pending, cpi32(b))
	}
	return sn
}

// Restore loads a snapshot taken from this network, validating that
// all array lengths match the built topology.
func (nt *Network) Restore(ctx *Context, sn *Snapshot) error {
	if !nt.built {
		return stateErrorf("Restore: network not built")
	}
	ns := &nt.Neurons
	sd := &nt.Syn
	ct := &nt.Conns
	if len(sn.Vm) != len(ns.Vm) || len(sn.Wt) != len(ct.Wt) ||
		len(sn.Inj) != len(sd.Inj) ||
		len(sn.StpEff) != len(sd.stpEff) || len(sn.NM) != len(nt.NM.Conc) ||
		len(sn.Pending) != len(nt.Queue.Short.buckets)+len(nt.Queue.Long.buckets) ||
		sn.ShortLen != len(nt.Queue.Short.buckets) {
		return configErrorf("Restore: snapshot does not match network topology")
	}
	ctx.Step = sn.Step
	ctx.Time = sn.Time
	copy(ns.Vm, sn.Vm)
	copy(ns.Recovery, sn.Recovery)
	copy(ns.ExtCurrent, sn.ExtCur)
	copy(ns.CompCurrent, sn.CompCur)
	copy(ns.LastSpike, sn.LastSpike)
	copy(ns.RefracUntil, sn.Refrac)
	copy(ns.AvgRate, sn.AvgRate)
	copy(ns.SpikeCnt, sn.SpikeCnt)
	copy(sd.GAMPA, sn.GAMPA)
	copy(sd.GNMDA, sn.GNMDA)
	copy(sd.GNMDAr, sn.GNMDAr)
	copy(sd.GNMDAd, sn.GNMDAd)
	copy(sd.GGABAa, sn.GGABAa)
	copy(sd.GGABAb, sn.GGABAb)
	copy(sd.GGABAbr, sn.GGABAbr)
	copy(sd.GGABAbd, sn.GGABAbd)
	copy(sd.StpU, sn.StpU)
	copy(sd.StpX, sn.StpX)
	copy(sd.stpEff, sn.StpEff)
	copy(sd.Inj, sn.Inj)
	copy(ct.Wt, sn.Wt)
	copy(ct.DWt, sn.DWt)
	copy(ct.SynSpike, sn.SynSpike)
	copy(nt.NM.Conc, sn.NM)
	for bi := range nt.Queue.Short.buckets {
		nt.Queue.Short.buckets[bi] = cpi32(sn.Pending[bi])
	}
	for bi := range nt.Queue.Long.buckets {
		nt.Queue.Long.buckets[bi] = cpi32(sn.Pending[sn.ShortLen+bi])
	}
	nt.Mirror.MarkHost(DirtyAll)
	return nil
}
