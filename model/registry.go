// SPDX-License-Identifier: GPL-2.0-or-later

// Package model manages loaded MD3 assets and composes multi part
// player models via their attachment tags.
package model

import (
	"goarena/md3"
)

// ID is a generation checked handle for a loaded model. Downstream
// caches (silhouette adjacency, GPU buffers) key on it instead of on
// pointers, so a model freed and another allocated at the same
// address can never alias a stale cache entry.
type ID struct {
	idx uint32
	gen uint32
}

// Valid reports whether the handle was issued by a registry. The zero
// ID is never valid.
func (id ID) Valid() bool {
	return id.gen != 0
}

type slot struct {
	m   *md3.Model
	gen uint32
}

// Registry is an arena of loaded models issuing generational handles.
type Registry struct {
	slots []slot
	free  []uint32
}

// NewRegistry returns an empty registry ready for use.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a loaded model and issues its handle.
func (r *Registry) Add(m *md3.Model) ID {
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		s := &r.slots[idx]
		s.m = m
		s.gen++
		return ID{idx: idx, gen: s.gen}
	}
	r.slots = append(r.slots, slot{m: m, gen: 1})
	return ID{idx: uint32(len(r.slots) - 1), gen: 1}
}

// Get resolves a handle. A handle from a removed model yields
// ok == false even if the slot has been reused.
func (r *Registry) Get(id ID) (*md3.Model, bool) {
	if !id.Valid() || int(id.idx) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[id.idx]
	if s.gen != id.gen || s.m == nil {
		return nil, false
	}
	return s.m, true
}

// Remove frees the slot. The handle becomes permanently invalid.
func (r *Registry) Remove(id ID) {
	if !id.Valid() || int(id.idx) >= len(r.slots) {
		return
	}
	s := &r.slots[id.idx]
	if s.gen != id.gen {
		return
	}
	s.m = nil
	s.gen++
	r.free = append(r.free, id.idx)
}
