// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestDecayMultipliers(t *testing.T) {
	cp := Params{}
	cp.Defaults()
	if cp.DAMPA <= 0 || cp.DAMPA >= 1 {
		t.Errorf("DAMPA out of (0,1): %v", cp.DAMPA)
	}
	// faster channel decays faster
	if cp.DAMPA >= cp.DNMDA {
		t.Errorf("AMPA multiplier %v should be < NMDA multiplier %v", cp.DAMPA, cp.DNMDA)
	}
	// halving dt must raise the multiplier toward 1
	d1 := cp.DAMPA
	cp.Update(0.5)
	if cp.DAMPA <= d1 {
		t.Errorf("smaller dt should give larger multiplier: %v vs %v", cp.DAMPA, d1)
	}
}

func TestBiExpPeak(t *testing.T) {
	cp := Params{}
	cp.Defaults()
	cp.TauNMDARise = 10
	cp.Update(1)
	// simulate a unit impulse through decay - rise traces: the scaled
	// peak should come out near 1
	var gd, gr, pk float32
	gd, gr = 1, 1
	for i := 0; i < 600; i++ {
		gd *= cp.DNMDA
		gr *= cp.RNMDA
		g := cp.SNMDA * (gd - gr)
		if g > pk {
			pk = g
		}
		if g < 0 {
			t.Fatalf("bi-exponential conductance went negative at %d: %v", i, g)
		}
	}
	if math32.Abs(pk-1) > 0.05 {
		t.Errorf("normalized bi-exp peak: %v, want ~1", pk)
	}
}

func TestNMDAVDep(t *testing.T) {
	cp := Params{}
	cp.Defaults()
	lo := cp.NMDAVDep(-80)
	hi := cp.NMDAVDep(0)
	if lo != 0 {
		t.Errorf("full Mg block at -80: %v != 0", lo)
	}
	if hi <= 0.5 || hi >= 1 {
		t.Errorf("NMDA mostly unblocked at 0 mV: %v", hi)
	}
}
