// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tensor"
)

func TestUnitValues(t *testing.T) {
	nt := NewNetwork("mon")
	gp, err := nt.AddGroup(GroupSpec{Name: "N", Size: 6, Extent: math32.Vector3i{X: 3, Y: 2, Z: 1}})
	if err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if err := nt.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	nt.Neurons.Vm[4] = -50
	v, err := nt.UnitValue("Vm", 4)
	if err != nil || v != -50 {
		t.Errorf("UnitValue: %v, %v", v, err)
	}
	if _, err := nt.UnitValue("Bogus", 0); err == nil {
		t.Error("unknown variable should error")
	}
	var tsr tensor.Float32
	if err := nt.UnitValuesTensor(gp, &tsr, "Vm"); err != nil {
		t.Fatalf("UnitValuesTensor: %v", err)
	}
	if tsr.Len() != 6 {
		t.Fatalf("tensor length %d, want 6", tsr.Len())
	}
	if tsr.Values[4] != -50 {
		t.Errorf("tensor value %v, want -50", tsr.Values[4])
	}
}

func TestSynValues(t *testing.T) {
	nt := NewNetwork("mon")
	a, _ := nt.AddGroup(GroupSpec{Name: "A", Size: 2})
	b, _ := nt.AddGroup(GroupSpec{Name: "B", Size: 2})
	cd1, err := nt.ConnectGroups(a, b, ConnDesc{Type: Full, MinDelay: 1, MaxDelay: 1, InitWt: 0.25, MaxWt: 1})
	if err != nil {
		t.Fatalf("ConnectGroups: %v", err)
	}
	cd2, err := nt.ConnectGroups(b, a, ConnDesc{Type: OneToOne, MinDelay: 1, MaxDelay: 1, InitWt: 0.75, MaxWt: 1})
	if err != nil {
		t.Fatalf("ConnectGroups: %v", err)
	}
	if err := nt.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	for si := range nt.Conns.Wt {
		nt.Conns.Wt[si] = nt.Conns.Descs[nt.Conns.SynConn[si]].InitWt
	}
	var vals []float32
	if err := nt.SynValues(&vals, cd1, "Wt"); err != nil {
		t.Fatalf("SynValues: %v", err)
	}
	if len(vals) != 4 {
		t.Fatalf("projection 1 count %d, want 4", len(vals))
	}
	for _, v := range vals {
		if v != 0.25 {
			t.Errorf("projection 1 weight %v, want 0.25", v)
		}
	}
	if err := nt.SynValues(&vals, cd2, "Wt"); err != nil {
		t.Fatalf("SynValues: %v", err)
	}
	if len(vals) != 2 {
		t.Fatalf("projection 2 count %d, want 2", len(vals))
	}
	for _, v := range vals {
		if v != 0.75 {
			t.Errorf("projection 2 weight %v, want 0.75", v)
		}
	}
	if err := nt.SynValues(&vals, cd1, "Bogus"); err == nil {
		t.Error("unknown variable should error")
	}
}

func TestNMLevels(t *testing.T) {
	nt := NewNetwork("mon")
	gp, _ := nt.AddGroup(GroupSpec{Name: "N", Size: 1})
	if err := nt.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	nt.NM.Inject(gp.ID, ACh, 0.5)
	lv := nt.NMLevels(gp)
	if lv[ACh] != 1.5 || lv[DA] != 1 {
		t.Errorf("levels %v", lv)
	}
}

func TestRestoreMismatch(t *testing.T) {
	nt := NewNetwork("mon")
	nt.AddGroup(GroupSpec{Name: "N", Size: 2})
	if err := nt.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	ctx := NewContext()
	sn := nt.Snapshot(ctx)
	sn.Vm = sn.Vm[:1]
	if err := nt.Restore(ctx, sn); err == nil {
		t.Error("mismatched snapshot should error")
	}
}
