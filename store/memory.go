package store

import (
	"sync"

	"xdao.co/multihash/registry"
	"xdao.co/multihash/wire"
)

// Memory is an in-memory Store. New objects are keyed with the configured
// multihash code; reads verify bytes against the requested multihash.
type Memory struct {
	reg  *registry.Registry
	code uint64

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemory constructs an empty in-memory store writing with code.
func NewMemory(reg *registry.Registry, code uint64) (*Memory, error) {
	// Fail at construction, not on first Put.
	if _, err := reg.Size(code); err != nil {
		return nil, err
	}
	return &Memory{reg: reg, code: code, objects: make(map[string][]byte)}, nil
}

func (s *Memory) Put(data []byte) (registry.Multihash, error) {
	m, err := s.reg.Sum(s.code, data)
	if err != nil {
		return registry.Multihash{}, err
	}
	owned := make([]byte, len(data))
	copy(owned, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[string(wire.Encode(m))] = owned
	return m, nil
}

func (s *Memory) Get(m registry.Multihash) ([]byte, error) {
	s.mu.RLock()
	b, ok := s.objects[string(wire.Encode(m))]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if err := verify(s.reg, m, b); err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *Memory) Has(m registry.Multihash) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[string(wire.Encode(m))]
	return ok
}

// verify re-hashes b with the multihash's own code and compares. Objects
// written under one code remain retrievable under their original key even
// if the store is later reconfigured.
func verify(reg *registry.Registry, m registry.Multihash, b []byte) error {
	got, err := reg.Sum(m.Code(), b)
	if err != nil {
		return err
	}
	if !got.Equal(m) {
		return ErrDigestMismatch
	}
	return nil
}
