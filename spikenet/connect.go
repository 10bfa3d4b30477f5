// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/base/randx"
)

// ConnTypes are the built-in connectivity patterns.
type ConnTypes int32 //enums:enum

const (
	// OneToOne connects neuron i to neuron i -- groups must be the same size.
	OneToOne ConnTypes = iota

	// Full connects every sending neuron to every receiving neuron,
	// including a neuron to itself within the same group.
	Full

	// FullNoSelf is Full minus self connections within the same group.
	FullNoSelf

	// Random connects each pair independently with probability Prob,
	// excluding self connections.
	Random

	// Gaussian connects with a probability falling off with distance
	// within the Radius ellipsoid over the group extents.
	Gaussian

	// UserDefined delegates each pair to the attached generator.
	UserDefined
)

// ConnDesc describes one projection between two groups.  Weight and
// delay parameters apply uniformly; per-synapse values come from the
// random ranges at build time.
type ConnDesc struct {

	// sending group
	Send GroupID

	// receiving group
	Recv GroupID

	// connectivity pattern
	Type ConnTypes

	// connection probability for Random, scaling for Gaussian (default 1)
	Prob float32

	// gaussian fall-off radii per grid axis -- a zero radius restricts
	// that axis to exact alignment
	Radius math32.Vector3

	// minimum conduction delay in steps (at least 1)
	MinDelay int

	// maximum conduction delay in steps -- per-synapse delays are drawn
	// uniformly from [MinDelay, MaxDelay]
	MaxDelay int

	// upper bound for the uniform initial weight draw, unless WtInit
	// overrides the distribution
	InitWt float32

	// upper weight bound for plasticity clamping
	MaxWt float32

	// optional random distribution for initial weights, overriding the
	// default uniform draw in [0, InitWt]
	WtInit *randx.RandParams

	// scaling on the fast receptor channel (AMPA or GABAa)
	MulFast float32 `default:"1"`

	// scaling on the slow receptor channel (NMDA or GABAb)
	MulSlow float32 `default:"1"`

	// weights of this projection are subject to spike-timing plasticity
	Plastic bool

	// pair generator for UserDefined
	Gen ConnectionGenerator

	// descriptor index, assigned at Connect
	ID ConnID

	// number of synapses created, set at build
	NSyns int
}

func (cd *ConnDesc) Defaults() {
	cd.Prob = 1
	cd.MinDelay = 1
	cd.MaxDelay = 1
	cd.MulFast = 1
	cd.MulSlow = 1
}

// Validate checks the descriptor against the registered groups.
func (cd *ConnDesc) Validate(gs *Groups) error {
	if int(cd.Send) < 0 || int(cd.Send) >= len(gs.All) {
		return configErrorf("Connect: bad send group id %d", cd.Send)
	}
	if int(cd.Recv) < 0 || int(cd.Recv) >= len(gs.All) {
		return configErrorf("Connect: bad recv group id %d", cd.Recv)
	}
	sg := gs.All[cd.Send]
	rg := gs.All[cd.Recv]
	if cd.MinDelay < 1 || cd.MaxDelay < cd.MinDelay || cd.MaxDelay > 255 {
		return configErrorf("Connect: %s -> %s: delay range [%d, %d] invalid", sg.Name, rg.Name, cd.MinDelay, cd.MaxDelay)
	}
	if cd.MaxWt <= 0 {
		return configErrorf("Connect: %s -> %s: MaxWt %g must be positive", sg.Name, rg.Name, cd.MaxWt)
	}
	if cd.InitWt < 0 || cd.InitWt > cd.MaxWt {
		return configErrorf("Connect: %s -> %s: InitWt %g outside [0, %g]", sg.Name, rg.Name, cd.InitWt, cd.MaxWt)
	}
	switch cd.Type {
	case OneToOne:
		if sg.Size != rg.Size {
			return configErrorf("Connect: %s -> %s: one-to-one requires equal sizes (%d != %d)", sg.Name, rg.Name, sg.Size, rg.Size)
		}
	case Random:
		if cd.Prob <= 0 || cd.Prob > 1 {
			return configErrorf("Connect: %s -> %s: probability %g outside (0, 1]", sg.Name, rg.Name, cd.Prob)
		}
	case Gaussian:
		if cd.Radius.X < 0 || cd.Radius.Y < 0 || cd.Radius.Z < 0 {
			return configErrorf("Connect: %s -> %s: negative radius %v", sg.Name, rg.Name, cd.Radius)
		}
	case UserDefined:
		if cd.Gen == nil {
			return configErrorf("Connect: %s -> %s: user-defined pattern requires a generator", sg.Name, rg.Name)
		}
	}
	return nil
}

// synRec is a synapse record accumulated during pattern expansion,
// before packing into the flat arrays.
type synRec struct {
	dst   int32
	wt    float32
	maxWt float32
	delay uint8
	conn  int16
}

// Connectivity is the full synapse table: flat parallel arrays in
// send-major order, plus receiver-side index arrays for traversing
// afferents.  Built once; topology is immutable afterward.
type Connectivity struct {

	// all projection descriptors in connect order
	Descs []*ConnDesc

	// maximum delay over all descriptors, at least 1
	MaxDelay int

	// total number of synapses
	NSyns int

	// number of outgoing synapses per sending neuron
	SConN []int32

	// average and max fan-out
	SConNAvgMax minmax.AvgMax32

	// starting synapse index per sending neuron
	SConIndexSt []int32

	// receiving neuron per synapse, in send-major order
	SConIndex []int32

	// sending neuron per synapse
	Src []int32

	// conduction delay per synapse, in steps
	Delay []uint8

	// weight per synapse
	Wt []float32

	// weight bound per synapse
	MaxWt []float32

	// accumulated weight change per synapse
	DWt []float32

	// descriptor index per synapse
	SynConn []int16

	// step of most recent presynaptic arrival, neverSpiked if none
	SynSpike []int32

	// plasticity enabled per synapse
	Plastic []bool

	// number of afferent synapses per receiving neuron
	RConN []int32

	// average and max fan-in
	RConNAvgMax minmax.AvgMax32

	// starting afferent index per receiving neuron
	RConIndexSt []int32

	// sending neuron per afferent entry
	RConIndex []int32

	// synapse index per afferent entry
	RSynIndex []int32

	built bool
}

// Connect validates and registers a projection descriptor.  Synapses
// are not created until Build.
func (ct *Connectivity) Connect(gs *Groups, desc ConnDesc) (*ConnDesc, error) {
	if ct.built {
		return nil, stateErrorf("Connect: connectivity already built")
	}
	if len(ct.Descs) >= MaxConns {
		return nil, capacityErrorf("Connect: max %d connections", MaxConns)
	}
	if desc.MulFast == 0 {
		desc.MulFast = 1
	}
	if desc.MulSlow == 0 {
		desc.MulSlow = 1
	}
	if err := desc.Validate(gs); err != nil {
		return nil, err
	}
	desc.ID = ConnID(len(ct.Descs))
	cd := &desc
	ct.Descs = append(ct.Descs, cd)
	return cd, nil
}

// Build expands all descriptors into the flat synapse arrays.
func (ct *Connectivity) Build(gs *Groups, rnd *randx.SysRand) error {
	if ct.built {
		return stateErrorf("Build: connectivity already built")
	}
	nn := gs.NNeurons
	outs := make([][]synRec, nn)
	ct.MaxDelay = 1
	for _, cd := range ct.Descs {
		ns, err := ct.expand(gs, cd, rnd, outs)
		if err != nil {
			return err
		}
		cd.NSyns = ns
		ct.NSyns += ns
		if cd.MaxDelay > ct.MaxDelay {
			ct.MaxDelay = cd.MaxDelay
		}
		gs.All[cd.Send].MaxDelay = max(gs.All[cd.Send].MaxDelay, cd.MaxDelay)
	}

	ct.SConN = make([]int32, nn)
	ct.SConIndexSt = make([]int32, nn)
	ct.SConNAvgMax.Init()
	st := int32(0)
	for ni := 0; ni < nn; ni++ {
		fan := len(outs[ni])
		if fan > MaxSynSlot {
			return capacityErrorf("Build: neuron %d fan-out %d exceeds max %d", ni, fan, MaxSynSlot)
		}
		ct.SConN[ni] = int32(fan)
		ct.SConIndexSt[ni] = st
		ct.SConNAvgMax.UpdateValue(float32(fan), int32(ni))
		st += int32(fan)
	}
	ct.SConNAvgMax.CalcAvg()

	ct.SConIndex = make([]int32, ct.NSyns)
	ct.Src = make([]int32, ct.NSyns)
	ct.Delay = make([]uint8, ct.NSyns)
	ct.Wt = make([]float32, ct.NSyns)
	ct.MaxWt = make([]float32, ct.NSyns)
	ct.DWt = make([]float32, ct.NSyns)
	ct.SynConn = make([]int16, ct.NSyns)
	ct.SynSpike = make([]int32, ct.NSyns)
	ct.Plastic = make([]bool, ct.NSyns)
	for ni := 0; ni < nn; ni++ {
		st := ct.SConIndexSt[ni]
		for slot, sr := range outs[ni] {
			si := st + int32(slot)
			ct.SConIndex[si] = sr.dst
			ct.Src[si] = int32(ni)
			ct.Delay[si] = sr.delay
			ct.Wt[si] = sr.wt
			ct.MaxWt[si] = sr.maxWt
			ct.SynConn[si] = sr.conn
			ct.SynSpike[si] = neverSpiked
			ct.Plastic[si] = ct.Descs[sr.conn].Plastic
		}
		outs[ni] = nil
	}

	ct.RConN = make([]int32, nn)
	for si := 0; si < ct.NSyns; si++ {
		ct.RConN[ct.SConIndex[si]]++
	}
	ct.RConIndexSt = make([]int32, nn)
	ct.RConNAvgMax.Init()
	st = 0
	for ni := 0; ni < nn; ni++ {
		ct.RConIndexSt[ni] = st
		ct.RConNAvgMax.UpdateValue(float32(ct.RConN[ni]), int32(ni))
		st += ct.RConN[ni]
	}
	ct.RConNAvgMax.CalcAvg()
	ct.RConIndex = make([]int32, ct.NSyns)
	ct.RSynIndex = make([]int32, ct.NSyns)
	fill := make([]int32, nn)
	for si := 0; si < ct.NSyns; si++ {
		ri := ct.SConIndex[si]
		fi := ct.RConIndexSt[ri] + fill[ri]
		ct.RConIndex[fi] = ct.Src[si]
		ct.RSynIndex[fi] = int32(si)
		fill[ri]++
	}
	ct.built = true
	return nil
}

// expand generates the synapse records for one descriptor, appending
// to the per-source buckets, and returns the count created.
func (ct *Connectivity) expand(gs *Groups, cd *ConnDesc, rnd *randx.SysRand, outs [][]synRec) (int, error) {
	sg := gs.All[cd.Send]
	rg := gs.All[cd.Recv]
	same := sg == rg
	n := 0
	add := func(src, dst NeuronID, wt, maxWt float32, delay int) {
		outs[src] = append(outs[src], synRec{
			dst:   int32(dst),
			wt:    wt,
			maxWt: maxWt,
			delay: uint8(delay),
			conn:  int16(cd.ID),
		})
		n++
	}
	for sli := 0; sli < sg.Size; sli++ {
		src := sg.StartN + NeuronID(sli)
		switch cd.Type {
		case OneToOne:
			add(src, rg.StartN+NeuronID(sli), ct.drawWt(cd, rnd), cd.MaxWt, ct.drawDelay(cd, rnd))
		case Full, FullNoSelf, Random:
			for rli := 0; rli < rg.Size; rli++ {
				dst := rg.StartN + NeuronID(rli)
				if same && src == dst && cd.Type != Full {
					continue
				}
				if cd.Type == Random && rnd.Float32() >= cd.Prob {
					continue
				}
				add(src, dst, ct.drawWt(cd, rnd), cd.MaxWt, ct.drawDelay(cd, rnd))
			}
		case Gaussian:
			for rli := 0; rli < rg.Size; rli++ {
				dst := rg.StartN + NeuronID(rli)
				if same && src == dst {
					continue
				}
				p, in := gaussProb(sg, rg, cd, sli, rli)
				if !in || rnd.Float32() >= p {
					continue
				}
				add(src, dst, ct.drawWt(cd, rnd), cd.MaxWt, ct.drawDelay(cd, rnd))
			}
		case UserDefined:
			for rli := 0; rli < rg.Size; rli++ {
				con, wt, maxWt, delay := cd.Gen.Connect(sg, rg, sli, rli)
				if !con {
					continue
				}
				if delay < cd.MinDelay || delay > cd.MaxDelay {
					return n, configErrorf("Build: %s -> %s: generator delay %d outside [%d, %d]", sg.Name, rg.Name, delay, cd.MinDelay, cd.MaxDelay)
				}
				add(src, rg.StartN+NeuronID(rli), math32.Clamp(wt, 0, maxWt), maxWt, delay)
			}
		}
	}
	return n, nil
}

func (ct *Connectivity) drawWt(cd *ConnDesc, rnd *randx.SysRand) float32 {
	if cd.WtInit != nil {
		return math32.Clamp(float32(cd.WtInit.Gen(rnd)), 0, cd.MaxWt)
	}
	return math32.Min(rnd.Float32()*cd.InitWt, cd.MaxWt)
}

func (ct *Connectivity) drawDelay(cd *ConnDesc, rnd *randx.SysRand) int {
	if cd.MaxDelay == cd.MinDelay {
		return cd.MinDelay
	}
	return cd.MinDelay + rnd.Intn(cd.MaxDelay-cd.MinDelay+1)
}

// gaussProb returns the connection probability for a pair of
// group-local indices under the gaussian pattern, and whether the pair
// lies within the radius ellipsoid.  Sending positions are mapped into
// the receiving grid frame so differently-sized extents align.
func gaussProb(sg, rg *Group, cd *ConnDesc, sli, rli int) (float32, bool) {
	sp := sg.Pos(sli)
	rp := rg.Pos(rli)
	d2 := float32(0)
	axes := [3][3]float32{
		{float32(sp.X) * float32(rg.Extent.X) / float32(sg.Extent.X), float32(rp.X), cd.Radius.X},
		{float32(sp.Y) * float32(rg.Extent.Y) / float32(sg.Extent.Y), float32(rp.Y), cd.Radius.Y},
		{float32(sp.Z) * float32(rg.Extent.Z) / float32(sg.Extent.Z), float32(rp.Z), cd.Radius.Z},
	}
	for _, ax := range axes {
		del := ax[0] - ax[1]
		if ax[2] == 0 {
			if math32.Abs(del) > 1.0e-6 {
				return 0, false
			}
			continue
		}
		nd := del / ax[2]
		d2 += nd * nd
	}
	if d2 > 1 {
		return 0, false
	}
	p := cd.Prob
	if p == 0 {
		p = 1
	}
	return p * math32.FastExp(-2.5*d2), true
}
