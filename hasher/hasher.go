// Package hasher defines the hash capability injected into the multihash
// registry, plus implementations backed by well-known algorithms.
//
// A Hasher is deliberately narrow: arbitrary bytes in, one fixed-length
// digest out. Streaming and incremental hashing are out of scope; the
// registry and wire codec only ever handle already-computed digests.
package hasher

// Hasher is an injected hash capability with a statically known output
// length.
//
// Contract:
// - OutputLength MUST be constant for the lifetime of the value.
// - Hash MUST return a Digest of exactly OutputLength bytes.
// - Hash MUST be deterministic and safe for concurrent use.
type Hasher interface {
	OutputLength() int
	Hash(input []byte) Digest
}

// Digest is a fixed-length digest tagged with the static identity of the
// digest type that produced it.
//
// Tag identifies the digest type, not the individual value; two digests of
// the same algorithm and length share a Tag. The registry uses it for the
// inverse digest-type -> code lookup.
type Digest struct {
	Tag   string
	Bytes []byte
}

// fixed adapts a one-shot sum function to the Hasher interface.
type fixed struct {
	tag  string
	size int
	sum  func(input []byte) []byte
}

func (f fixed) OutputLength() int { return f.size }

func (f fixed) Hash(input []byte) Digest {
	return Digest{Tag: f.tag, Bytes: f.sum(input)}
}
