package hasher

import (
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"lukechampine.com/blake3"
)

// Blake2b256 returns an unkeyed BLAKE2b-256 hasher (32-byte digest).
func Blake2b256() Hasher {
	return fixed{tag: "blake2b-256", size: 32, sum: func(input []byte) []byte {
		s := blake2b.Sum256(input)
		return s[:]
	}}
}

// Blake2b512 returns an unkeyed BLAKE2b-512 hasher (64-byte digest).
func Blake2b512() Hasher {
	return fixed{tag: "blake2b-512", size: 64, sum: func(input []byte) []byte {
		s := blake2b.Sum512(input)
		return s[:]
	}}
}

// Blake2s128 returns an unkeyed BLAKE2s-128 hasher (16-byte digest).
func Blake2s128() Hasher {
	return fixed{tag: "blake2s-128", size: 16, sum: func(input []byte) []byte {
		// New128 only fails on an over-long key; nil key cannot fail.
		h, err := blake2s.New128(nil)
		if err != nil {
			panic(err)
		}
		h.Write(input)
		return h.Sum(nil)
	}}
}

// Blake2s256 returns an unkeyed BLAKE2s-256 hasher (32-byte digest).
func Blake2s256() Hasher {
	return fixed{tag: "blake2s-256", size: 32, sum: func(input []byte) []byte {
		s := blake2s.Sum256(input)
		return s[:]
	}}
}

// Blake3 returns a BLAKE3 hasher at its default 32-byte output length.
func Blake3() Hasher {
	return fixed{tag: "blake3", size: 32, sum: func(input []byte) []byte {
		s := blake3.Sum256(input)
		return s[:]
	}}
}
