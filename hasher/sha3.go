package hasher

import (
	"github.com/cloudflare/circl/xof"
	"golang.org/x/crypto/sha3"
)

// Sha3_224 returns a SHA3-224 hasher (28-byte digest).
func Sha3_224() Hasher {
	return fixed{tag: "sha3-224", size: 28, sum: func(input []byte) []byte {
		s := sha3.Sum224(input)
		return s[:]
	}}
}

// Sha3_256 returns a SHA3-256 hasher (32-byte digest).
func Sha3_256() Hasher {
	return fixed{tag: "sha3-256", size: 32, sum: func(input []byte) []byte {
		s := sha3.Sum256(input)
		return s[:]
	}}
}

// Sha3_384 returns a SHA3-384 hasher (48-byte digest).
func Sha3_384() Hasher {
	return fixed{tag: "sha3-384", size: 48, sum: func(input []byte) []byte {
		s := sha3.Sum384(input)
		return s[:]
	}}
}

// Sha3_512 returns a SHA3-512 hasher (64-byte digest).
func Sha3_512() Hasher {
	return fixed{tag: "sha3-512", size: 64, sum: func(input []byte) []byte {
		s := sha3.Sum512(input)
		return s[:]
	}}
}

// Keccak256 returns a legacy Keccak-256 hasher (pre-NIST padding, as used
// by Ethereum; 32-byte digest).
func Keccak256() Hasher {
	return fixed{tag: "keccak-256", size: 32, sum: func(input []byte) []byte {
		h := sha3.NewLegacyKeccak256()
		h.Write(input)
		return h.Sum(nil)
	}}
}

// Keccak512 returns a legacy Keccak-512 hasher (64-byte digest).
func Keccak512() Hasher {
	return fixed{tag: "keccak-512", size: 64, sum: func(input []byte) []byte {
		h := sha3.NewLegacyKeccak512()
		h.Write(input)
		return h.Sum(nil)
	}}
}

// Shake128 returns a SHAKE-128 hasher squeezed to 32 bytes, the conventional
// output length for the shake-128 multihash code.
func Shake128() Hasher {
	return shake("shake-128", xof.SHAKE128, 32)
}

// Shake256 returns a SHAKE-256 hasher squeezed to 64 bytes.
func Shake256() Hasher {
	return shake("shake-256", xof.SHAKE256, 64)
}

func shake(tag string, id xof.ID, size int) Hasher {
	return fixed{tag: tag, size: size, sum: func(input []byte) []byte {
		x := id.New()
		x.Write(input)
		out := make([]byte, size)
		x.Read(out)
		return out
	}}
}
