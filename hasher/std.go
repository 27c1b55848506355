package hasher

import (
	"crypto/sha1"
	"crypto/sha512"

	sha256 "github.com/minio/sha256-simd"
)

// Identity returns the identity "hash": the digest is the input itself,
// fitted into a fixed-length buffer. Input longer than size is truncated;
// shorter input is zero-padded on the right.
func Identity(size int) Hasher {
	return fixed{tag: "identity", size: size, sum: func(input []byte) []byte {
		out := make([]byte, size)
		copy(out, input)
		return out
	}}
}

// Sha1 returns a SHA-1 hasher (20-byte digest).
//
// SHA-1 is kept for wire compatibility with existing multihash data; do not
// use it for new content.
func Sha1() Hasher {
	return fixed{tag: "sha1", size: sha1.Size, sum: func(input []byte) []byte {
		s := sha1.Sum(input)
		return s[:]
	}}
}

// Sha2_256 returns a SHA-256 hasher (32-byte digest).
func Sha2_256() Hasher {
	return fixed{tag: "sha2-256", size: sha256.Size, sum: func(input []byte) []byte {
		s := sha256.Sum256(input)
		return s[:]
	}}
}

// Sha2_512 returns a SHA-512 hasher (64-byte digest).
func Sha2_512() Hasher {
	return fixed{tag: "sha2-512", size: sha512.Size, sum: func(input []byte) []byte {
		s := sha512.Sum512(input)
		return s[:]
	}}
}
