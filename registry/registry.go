// Package registry turns a valid catalog into an immutable dispatch table
// over a closed set of multihash variants.
//
// A Registry is built exactly once, synchronously, at startup. Construction
// failure is fatal: no partial registry is ever returned. After Build the
// registry is never mutated and is safe for unsynchronized concurrent reads.
package registry

import (
	"fmt"

	"xdao.co/multihash/catalog"
	"xdao.co/multihash/hasher"
	"xdao.co/multihash/mherr"
)

type variant struct {
	name   string
	code   uint64
	size   int
	tag    string
	hasher hasher.Hasher
}

// Registry maps code <-> variant <-> digest type for a validated catalog.
//
// Two indexes are built at construction: the primary code -> variant table
// and the inverse digest tag -> variant table. Neither is derived from the
// other on a per-call basis.
type Registry struct {
	byCode map[uint64]*variant
	byTag  map[string]*variant
	codes  []uint64
}

// Build lints the catalog and constructs the registry.
//
// On lint failure it returns a KindCatalog error wrapping a
// *catalog.LintError that carries every diagnostic; use errors.As to
// inspect them. A failed Build must abort startup — there is nothing
// usable in its place.
func Build(c catalog.Catalog) (*Registry, error) {
	if diags := catalog.Lint(c); len(diags) > 0 {
		return nil, mherr.Wrap(mherr.KindCatalog, "MH-CAT-000",
			fmt.Sprintf("catalog rejected with %d diagnostic(s)", len(diags)),
			&catalog.LintError{Diagnostics: diags})
	}

	r := &Registry{
		byCode: make(map[uint64]*variant, len(c.Entries)),
		byTag:  make(map[string]*variant, len(c.Entries)),
		codes:  make([]uint64, 0, len(c.Entries)),
	}
	for _, e := range c.Entries {
		v := &variant{
			name:   e.Name,
			code:   e.Code,
			size:   e.DigestSize,
			tag:    e.DigestTag,
			hasher: e.Hasher,
		}
		r.byCode[v.code] = v
		r.byTag[v.tag] = v
		r.codes = append(r.codes, v.code)
	}
	return r, nil
}

// MustBuild is Build for programs whose catalog is a compile-time constant.
// It panics on lint failure.
func MustBuild(c catalog.Catalog) *Registry {
	r, err := Build(c)
	if err != nil {
		panic(err)
	}
	return r
}

// Codes returns the registered codes in catalog declaration order.
func (r *Registry) Codes() []uint64 {
	out := make([]uint64, len(r.codes))
	copy(out, r.codes)
	return out
}

// Has reports whether code is registered.
func (r *Registry) Has(code uint64) bool {
	_, ok := r.byCode[code]
	return ok
}

// Size returns the statically declared digest length for code.
func (r *Registry) Size(code uint64) (int, error) {
	v, ok := r.byCode[code]
	if !ok {
		return 0, mherr.UnsupportedCode(code)
	}
	return v.size, nil
}

// Name returns the variant name declared for code, for diagnostics.
func (r *Registry) Name(code uint64) (string, error) {
	v, ok := r.byCode[code]
	if !ok {
		return "", mherr.UnsupportedCode(code)
	}
	return v.name, nil
}

// Sum hashes input with the variant registered for code and wraps the
// resulting digest. Unknown codes fail with an UnsupportedCode error.
func (r *Registry) Sum(code uint64, input []byte) (Multihash, error) {
	v, ok := r.byCode[code]
	if !ok {
		return Multihash{}, mherr.UnsupportedCode(code)
	}
	d := v.hasher.Hash(input)
	if len(d.Bytes) != v.size {
		// The lint pass pinned hasher output length to the declared size;
		// a mismatch here means the hasher broke its contract.
		return Multihash{}, mherr.New(mherr.KindInternal, "MH-INT-001",
			fmt.Sprintf("hasher for %q returned %d bytes, declared %d", v.name, len(d.Bytes), v.size))
	}
	return Multihash{code: v.code, digest: d.Bytes}, nil
}

// Wrap wraps an already-computed digest for code without re-hashing. The
// digest length must equal the variant's declared size; the bytes are
// copied so the value owns its buffer.
func (r *Registry) Wrap(code uint64, digest []byte) (Multihash, error) {
	v, ok := r.byCode[code]
	if !ok {
		return Multihash{}, mherr.UnsupportedCode(code)
	}
	if len(digest) != v.size {
		return Multihash{}, mherr.InvalidSize(uint64(len(digest)), v.size)
	}
	owned := make([]byte, len(digest))
	copy(owned, digest)
	return Multihash{code: v.code, digest: owned}, nil
}

// FromDigest resolves a digest's static type identity to its owning variant
// and wraps the digest bytes without re-hashing. This is the inverse of the
// code -> digest-type relation, for digests produced externally.
func (r *Registry) FromDigest(d hasher.Digest) (Multihash, error) {
	v, ok := r.byTag[d.Tag]
	if !ok {
		return Multihash{}, mherr.New(mherr.KindCode, "MH-CODE-002",
			fmt.Sprintf("no variant registered for digest tag %q", d.Tag))
	}
	if len(d.Bytes) != v.size {
		return Multihash{}, mherr.InvalidSize(uint64(len(d.Bytes)), v.size)
	}
	owned := make([]byte, len(d.Bytes))
	copy(owned, d.Bytes)
	return Multihash{code: v.code, digest: owned}, nil
}
