package registry

import (
	"bytes"
	"fmt"
)

// Multihash is one digest tagged with the code of the algorithm that
// produced it.
//
// Values are immutable after construction and own their digest buffer; the
// zero value is not a valid multihash. Equality and ordering are defined
// over (code, digest bytes).
type Multihash struct {
	code   uint64
	digest []byte
}

// Code returns the variant's declared multicodec code.
func (m Multihash) Code() uint64 { return m.code }

// Size returns the digest length in bytes. By construction it equals the
// variant's statically declared size.
func (m Multihash) Size() int { return len(m.digest) }

// Digest returns a read-only view over the stored digest bytes. The view
// is not a copy; callers must not mutate it and must not retain it past
// the owning value.
func (m Multihash) Digest() []byte { return m.digest }

// Equal reports whether two multihashes carry the same code and identical
// digest bytes.
func (m Multihash) Equal(o Multihash) bool {
	return m.code == o.code && bytes.Equal(m.digest, o.digest)
}

// Compare orders multihashes by code, then lexicographically by digest
// bytes. It returns -1, 0 or +1.
func (m Multihash) Compare(o Multihash) int {
	switch {
	case m.code < o.code:
		return -1
	case m.code > o.code:
		return 1
	}
	return bytes.Compare(m.digest, o.digest)
}

// String renders the multihash for diagnostics as "0x<code>:<digest hex>".
// Use the wire package for interchange encodings.
func (m Multihash) String() string {
	return fmt.Sprintf("0x%x:%x", m.code, m.digest)
}
