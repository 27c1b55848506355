package store

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"xdao.co/multihash/registry"
	"xdao.co/multihash/wire"
)

// FS is a local filesystem-backed Store.
//
// Objects are stored immutably, keyed strictly by their multihash. The
// implementation is offline and deterministic: it never uses the network
// and never depends on wall-clock time.
type FS struct {
	root string
	reg  *registry.Registry
	code uint64
}

// NewFS constructs a filesystem store rooted at root, writing with code.
// The directory is created if needed.
func NewFS(root string, reg *registry.Registry, code uint64) (*FS, error) {
	if root == "" {
		return nil, errors.New("store: root directory is required")
	}
	if _, err := reg.Size(code); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{root: root, reg: reg, code: code}, nil
}

func (s *FS) Put(data []byte) (registry.Multihash, error) {
	m, err := s.reg.Sum(s.code, data)
	if err != nil {
		return registry.Multihash{}, err
	}

	path := s.pathFor(m)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return registry.Multihash{}, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o444)
	if err != nil {
		if os.IsExist(err) {
			existing, rerr := s.Get(m)
			if rerr != nil {
				// The file exists but is unreadable or corrupted; treat as
				// an immutability violation.
				return registry.Multihash{}, ErrImmutable
			}
			if string(existing) != string(data) {
				return registry.Multihash{}, ErrImmutable
			}
			return m, nil
		}
		return registry.Multihash{}, err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return registry.Multihash{}, err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return registry.Multihash{}, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return registry.Multihash{}, err
	}

	return m, nil
}

func (s *FS) Get(m registry.Multihash) ([]byte, error) {
	b, err := os.ReadFile(s.pathFor(m))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := verify(s.reg, m, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *FS) Has(m registry.Multihash) bool {
	_, err := os.Stat(s.pathFor(m))
	return err == nil
}

// pathFor shards by the leading digest bytes; the code and size prefix of
// the encoded name is constant per algorithm and would collapse sharding.
func (s *FS) pathFor(m registry.Multihash) string {
	name := hex.EncodeToString(wire.Encode(m))
	d := m.Digest()
	if len(d) < 1 {
		return filepath.Join(s.root, name)
	}
	return filepath.Join(s.root, hex.EncodeToString(d[:1]), name)
}
