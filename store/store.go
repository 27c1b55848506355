// Package store provides minimal content-addressed blob stores keyed by
// multihash, with an in-memory and a local-filesystem implementation.
package store

import (
	"errors"

	"xdao.co/multihash/registry"
)

// Store is a minimal multihash-keyed content store.
//
// Contract:
//   - Put MUST be idempotent.
//   - Stored objects MUST be immutable.
//   - Keys MUST be derived from the bytes written.
//   - Get MUST return ErrNotFound when the multihash is absent, and MUST
//     verify the returned bytes against the requested multihash.
type Store interface {
	Put(data []byte) (registry.Multihash, error)
	Get(m registry.Multihash) ([]byte, error)
	Has(m registry.Multihash) bool
}

var (
	ErrNotFound       = errors.New("store: not found")
	ErrDigestMismatch = errors.New("store: digest mismatch")
	ErrImmutable      = errors.New("store: immutable object mismatch")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
