// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"testing"

	"cogentcore.org/core/base/randx"
	"github.com/ccnlab/spikenet/izhi"
)

func TestNeuronInitState(t *testing.T) {
	gs := testGroups(t, GroupSpec{Name: "N", Size: 3})
	ns := &NeuronStore{}
	ns.Build(gs, nil)
	pr := izhi.Params{}
	pr.Defaults()
	for ni := 0; ni < 3; ni++ {
		if ns.Vm[ni] != pr.InitVm() {
			t.Errorf("neuron %d Vm %v, want %v", ni, ns.Vm[ni], pr.InitVm())
		}
		if ns.LastSpike[ni] != neverSpiked {
			t.Errorf("neuron %d LastSpike %v", ni, ns.LastSpike[ni])
		}
	}
}

func TestNeuronHeterogeneity(t *testing.T) {
	spec := GroupSpec{Name: "N", Size: 20}
	spec.IzhiSD = izhi.Dists{C: 2, D: 1}
	gs := testGroups(t, spec)
	ns := &NeuronStore{}
	ns.Build(gs, randx.NewSysRand(1))
	distinct := false
	for ni := 1; ni < 20; ni++ {
		if ns.Params[ni].C != ns.Params[0].C || ns.Params[ni].D != ns.Params[0].D {
			distinct = true
		}
		if ns.Params[ni].A != ns.Params[0].A {
			t.Errorf("parameter without SD varied at neuron %d", ni)
		}
	}
	if !distinct {
		t.Error("per-neuron parameters identical despite nonzero SDs")
	}
}

func TestIntegrateFiresUnderDrive(t *testing.T) {
	gs := testGroups(t, GroupSpec{Name: "N", Size: 1})
	ct := &Connectivity{}
	if err := ct.Build(gs, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	ns := &NeuronStore{}
	ns.Build(gs, nil)
	sd := &SynDyn{Conductances: true}
	sd.Build(gs, ct)
	ns.ExtCurrent[0] = 20
	ctx := NewContext()
	fired := false
	for i := 0; i < 100 && !fired; i++ {
		ns.Fired[0] = false
		ns.IntegrateRange(ctx, sd, gs, 0, 1)
		fired = ns.Fired[0]
		ctx.StepInc()
	}
	if !fired {
		t.Error("neuron never fired under constant suprathreshold drive")
	}
}

func TestSingleSpikePerStep(t *testing.T) {
	nt := NewNetwork("substeps")
	if _, err := nt.AddGroup(GroupSpec{Name: "N", Size: 1}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if err := nt.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	nt.Neurons.ExtCurrent[0] = 100
	ctx := NewContext()
	ctx.SubSteps = 10
	total := 0
	for i := 0; i < 100; i++ {
		step(t, nt, ctx)
		if n := len(nt.Fired()); n > 1 {
			t.Fatalf("step %d: %d spikes from one neuron", i, n)
		}
		total += len(nt.Fired())
	}
	if total < 2 {
		t.Errorf("neuron fired %d times under hard drive", total)
	}
	if int(nt.Neurons.SpikeCnt[0]) != total {
		t.Errorf("spike count %d registered for %d detected spikes", nt.Neurons.SpikeCnt[0], total)
	}
}

func TestIntegrateGeneratorSkipped(t *testing.T) {
	gs := testGroups(t, GroupSpec{Name: "G", Size: 1, Generator: true})
	ct := &Connectivity{}
	if err := ct.Build(gs, nil); err != nil {
		t.Fatalf("Build: %v", err)
	}
	ns := &NeuronStore{}
	ns.Build(gs, nil)
	sd := &SynDyn{Conductances: true}
	sd.Build(gs, ct)
	ns.ExtCurrent[0] = 100
	ctx := NewContext()
	vm0 := ns.Vm[0]
	for i := 0; i < 10; i++ {
		ns.IntegrateRange(ctx, sd, gs, 0, 1)
		ctx.StepInc()
	}
	if ns.Vm[0] != vm0 {
		t.Errorf("generator membrane integrated: %v -> %v", vm0, ns.Vm[0])
	}
}
