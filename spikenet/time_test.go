// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import "testing"

func TestContextZeroValueReset(t *testing.T) {
	var ctx Context
	ctx.Reset()
	if ctx.TimePerStep != 0.001 {
		t.Errorf("TimePerStep %v, want 0.001", ctx.TimePerStep)
	}
	if ctx.SubSteps != 2 {
		t.Errorf("SubSteps %d, want 2", ctx.SubSteps)
	}
	if ctx.DtMs() != 0.5 {
		t.Errorf("DtMs %v, want 0.5", ctx.DtMs())
	}
}

func TestContextStepInc(t *testing.T) {
	ctx := NewContext()
	for i := 0; i < 5; i++ {
		ctx.StepInc()
	}
	if ctx.Step != 5 {
		t.Errorf("Step %d, want 5", ctx.Step)
	}
	if dif := ctx.Time - 0.005; dif > difTol || dif < -difTol {
		t.Errorf("Time %v, want 0.005", ctx.Time)
	}
}
