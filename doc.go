// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikenet provides a spiking neural network simulation engine
with biophysically grounded dynamics: Izhikevich membrane models,
conductance-based synapses with four receptor channels, axonal
conduction delays, short-term plasticity, spike-timing-dependent
plasticity with optional neuromodulatory gating, and homeostatic
regulation.

The engine lives in the spikenet/ package; the supporting packages
factor out the independent pieces of the dynamics:

* izhi: the Izhikevich membrane equations (4 and 9 parameter forms)

* chans: receptor channel kinetics (AMPA, NMDA, GABAa, GABAb)

* stp: Tsodyks-Markram short-term facilitation and depression

* stdp: spike-timing weight change curves

See spikenet/network.go for the step cycle and the overall
organization of the simulation state.
*/
package spikenet
