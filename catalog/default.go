package catalog

import "xdao.co/multihash/hasher"

// Default returns the catalog of variants this module ships with.
//
// The table mirrors the multicodec registrations for the algorithms it
// covers. Max size is 64: the largest shipped digest (sha2-512, sha3-512,
// shake-256, keccak-512, blake2b-512) is 64 bytes.
func Default() Catalog {
	return Catalog{
		MaxSize:        "64",
		EnforceMaxSize: true,
		Entries: []Entry{
			{Name: "Identity", Code: IDENTITY, Hasher: hasher.Identity(32), DigestTag: "identity", DigestSize: 32},
			{Name: "Sha1", Code: SHA1, Hasher: hasher.Sha1(), DigestTag: "sha1", DigestSize: 20},
			{Name: "Sha2_256", Code: SHA2_256, Hasher: hasher.Sha2_256(), DigestTag: "sha2-256", DigestSize: 32},
			{Name: "Sha2_512", Code: SHA2_512, Hasher: hasher.Sha2_512(), DigestTag: "sha2-512", DigestSize: 64},
			{Name: "Sha3_224", Code: SHA3_224, Hasher: hasher.Sha3_224(), DigestTag: "sha3-224", DigestSize: 28},
			{Name: "Sha3_256", Code: SHA3_256, Hasher: hasher.Sha3_256(), DigestTag: "sha3-256", DigestSize: 32},
			{Name: "Sha3_384", Code: SHA3_384, Hasher: hasher.Sha3_384(), DigestTag: "sha3-384", DigestSize: 48},
			{Name: "Sha3_512", Code: SHA3_512, Hasher: hasher.Sha3_512(), DigestTag: "sha3-512", DigestSize: 64},
			{Name: "Shake128", Code: SHAKE_128, Hasher: hasher.Shake128(), DigestTag: "shake-128", DigestSize: 32},
			{Name: "Shake256", Code: SHAKE_256, Hasher: hasher.Shake256(), DigestTag: "shake-256", DigestSize: 64},
			{Name: "Keccak256", Code: KECCAK_256, Hasher: hasher.Keccak256(), DigestTag: "keccak-256", DigestSize: 32},
			{Name: "Keccak512", Code: KECCAK_512, Hasher: hasher.Keccak512(), DigestTag: "keccak-512", DigestSize: 64},
			{Name: "Blake2b256", Code: BLAKE2B_256, Hasher: hasher.Blake2b256(), DigestTag: "blake2b-256", DigestSize: 32},
			{Name: "Blake2b512", Code: BLAKE2B_512, Hasher: hasher.Blake2b512(), DigestTag: "blake2b-512", DigestSize: 64},
			{Name: "Blake2s128", Code: BLAKE2S_128, Hasher: hasher.Blake2s128(), DigestTag: "blake2s-128", DigestSize: 16},
			{Name: "Blake2s256", Code: BLAKE2S_256, Hasher: hasher.Blake2s256(), DigestTag: "blake2s-256", DigestSize: 32},
			{Name: "Blake3", Code: BLAKE3, Hasher: hasher.Blake3(), DigestTag: "blake3", DigestSize: 32},
		},
	}
}
