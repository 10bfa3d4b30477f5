// Copyright (c) 2024, The CCNLab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

// DirtyMask marks which state categories have diverged between host
// and device copies.
type DirtyMask uint32

const (
	// DirtyNeurons covers membrane state and spike bookkeeping.
	DirtyNeurons DirtyMask = 1 << iota

	// DirtySynapses covers weights and plasticity accumulators.
	DirtySynapses

	// DirtyConductances covers receptor conductances and STP state.
	DirtyConductances

	// DirtyAll covers everything.
	DirtyAll DirtyMask = DirtyNeurons | DirtySynapses | DirtyConductances
)

// Backend transfers state between the host arrays and an accelerator
// copy.  A nil backend means host-only simulation with no transfers.
type Backend interface {
	// Upload copies the masked host state to the device.
	Upload(mask DirtyMask) error

	// Download copies the masked device state back to the host.
	Download(mask DirtyMask) error
}

// Mirror tracks host / device divergence and performs the minimal
// transfers before phases that read stale state.  All dirty tracking
// works with a nil Backend so the same stepping code runs host-only.
type Mirror struct {

	// device transfer implementation, nil for host-only
	Backend Backend

	// host-side state modified since last upload
	HostDirty DirtyMask

	// device-side state modified since last download
	DeviceDirty DirtyMask
}

// MarkHost records host-side modification of the masked state.
func (mr *Mirror) MarkHost(mask DirtyMask) {
	mr.HostDirty |= mask
}

// MarkDevice records device-side modification of the masked state.
func (mr *Mirror) MarkDevice(mask DirtyMask) {
	mr.DeviceDirty |= mask
}

// SyncIfDirty reconciles both directions: dirty device state is
// downloaded first, then dirty host state uploaded.  No-op without a
// backend.
func (mr *Mirror) SyncIfDirty() error {
	if err := mr.SyncToHost(); err != nil {
		return err
	}
	return mr.SyncToDevice()
}

// SyncToDevice uploads any dirty host state, clearing the flags.
// No-op without a backend.
func (mr *Mirror) SyncToDevice() error {
	if mr.Backend == nil || mr.HostDirty == 0 {
		mr.HostDirty = 0
		return nil
	}
	if err := mr.Backend.Upload(mr.HostDirty); err != nil {
		return err
	}
	mr.HostDirty = 0
	return nil
}

// SyncToHost downloads any dirty device state, clearing the flags.
// No-op without a backend.
func (mr *Mirror) SyncToHost() error {
	if mr.Backend == nil || mr.DeviceDirty == 0 {
		mr.DeviceDirty = 0
		return nil
	}
	if err := mr.Backend.Download(mr.DeviceDirty); err != nil {
		return err
	}
	mr.DeviceDirty = 0
	return nil
}
