// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/emer/emergent/v2/etime"
)

func homeoNet(t *testing.T) (*Network, *Context) {
	t.Helper()
	pre := GroupSpec{Name: "In", Size: 1, Generator: true}
	post := GroupSpec{Name: "Out", Size: 1}
	post.Homeo.Defaults()
	post.Homeo.On = true
	post.Homeo.TauAvg = 100
	return twoNeuronNet(t, pre,
		ConnDesc{Type: Full, MinDelay: 1, MaxDelay: 1, InitWt: 0.5, MaxWt: 1, Plastic: true},
		post)
}

func TestRatesUpdate(t *testing.T) {
	nt, _ := homeoNet(t)
	nt.Plast.Interval = 100
	ns := &nt.Neurons
	if ns.AvgRate[1] != 10 {
		t.Fatalf("initial average rate %v, want target 10", ns.AvgRate[1])
	}
	ns.SpikeCnt[1] = 4 // 40 Hz over a 100 ms interval
	nt.Plast.RatesUpdate(&nt.Groups, ns, 0, 2)
	// interval equals TauAvg, so the average moves all the way
	if math32.Abs(ns.AvgRate[1]-40) > difTol {
		t.Errorf("average rate %v, want 40", ns.AvgRate[1])
	}
	if ns.SpikeCnt[1] != 0 {
		t.Errorf("spike count not reset: %d", ns.SpikeCnt[1])
	}
}

func TestHomeoDrift(t *testing.T) {
	nt, _ := homeoNet(t)
	ns := &nt.Neurons
	ct := &nt.Conns
	ns.AvgRate[1] = 20 // above the 10 Hz target
	nt.Plast.Consolidate(ct, &nt.Groups, ns, &nt.Warns, 0, ct.NSyns)
	if ct.Wt[0] >= 0.5 {
		t.Errorf("overactive target should weaken afferents: %v", ct.Wt[0])
	}
	w := ct.Wt[0]
	ns.AvgRate[1] = 5 // below target
	nt.Plast.Consolidate(ct, &nt.Groups, ns, &nt.Warns, 0, ct.NSyns)
	if ct.Wt[0] <= w {
		t.Errorf("underactive target should strengthen afferents: %v", ct.Wt[0])
	}
}

func TestHomeoDampsAccumulation(t *testing.T) {
	pre := GroupSpec{Name: "In", Size: 1, Generator: true}
	post := GroupSpec{Name: "Out", Size: 1}
	post.ESTDP.Defaults()
	post.ESTDP.On = true
	post.Homeo.Defaults()
	post.Homeo.On = true
	nt, _ := twoNeuronNet(t, pre,
		ConnDesc{Type: Full, MinDelay: 1, MaxDelay: 1, InitWt: 0.5, MaxWt: 1, Plastic: true},
		post)
	ct := &nt.Conns
	ct.SynSpike[0] = 1
	nt.Neurons.AvgRate[1] = 30 // 3x the 10 Hz target: damp = 1/3
	nt.Plast.OnPostSpike(ct, &nt.Groups, &nt.Neurons, &nt.NM, 1, 3, false)
	og := nt.Groups.ByName("Out")
	want := og.ESTDP.DWt(2) / 3
	if math32.Abs(ct.DWt[0]-want) > difTol {
		t.Errorf("damped DWt %v, want %v", ct.DWt[0], want)
	}
}

func TestArrivalRecordedInTestMode(t *testing.T) {
	nt, ctx := plasticPair(t)
	ctx.Mode = etime.Test
	nt.ForceFire(0)
	step(t, nt, ctx) // emit at 0
	step(t, nt, ctx) // arrival at 1
	if nt.Conns.SynSpike[0] != 1 {
		t.Fatalf("arrival time not recorded in test mode: %d", nt.Conns.SynSpike[0])
	}
	if nt.Conns.DWt[0] != 0 {
		t.Fatalf("test mode accumulated DWt: %v", nt.Conns.DWt[0])
	}
	ctx.Mode = etime.Train
	nt.ForceFire(1)
	step(t, nt, ctx) // post at 2 pairs with the test-mode arrival
	if nt.Conns.DWt[0] <= 0 {
		t.Errorf("in-window pairing missed after test block: %v", nt.Conns.DWt[0])
	}
}

func TestConsolidateDecayRetention(t *testing.T) {
	nt, _ := plasticPair(t)
	nt.Plast.Decay = 0.5
	nt.Conns.DWt[0] = 0.1
	nt.Plast.Consolidate(&nt.Conns, &nt.Groups, &nt.Neurons, &nt.Warns, 0, 1)
	if math32.Abs(nt.Conns.Wt[0]-0.6) > difTol {
		t.Errorf("Wt %v, want 0.6", nt.Conns.Wt[0])
	}
	if math32.Abs(nt.Conns.DWt[0]-0.05) > difTol {
		t.Errorf("retained DWt %v, want 0.05", nt.Conns.DWt[0])
	}
}

func TestConsolidateLowerClamp(t *testing.T) {
	nt, _ := plasticPair(t)
	nt.Conns.DWt[0] = -2
	nt.Plast.Consolidate(&nt.Conns, &nt.Groups, &nt.Neurons, &nt.Warns, 0, 1)
	if nt.Conns.Wt[0] != 0 {
		t.Errorf("Wt %v, want clamp at 0", nt.Conns.Wt[0])
	}
	if nt.Warns.WtClamped == 0 {
		t.Error("clamp event not counted")
	}
}
