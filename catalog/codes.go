package catalog

// Multicodec indicator numbers for the variants shipped in the default
// catalog, per the multiformats multicodec table.
const (
	IDENTITY    uint64 = 0x00
	SHA1        uint64 = 0x11
	SHA2_256    uint64 = 0x12
	SHA2_512    uint64 = 0x13
	SHA3_512    uint64 = 0x14
	SHA3_384    uint64 = 0x15
	SHA3_256    uint64 = 0x16
	SHA3_224    uint64 = 0x17
	SHAKE_128   uint64 = 0x18
	SHAKE_256   uint64 = 0x19
	KECCAK_256  uint64 = 0x1b
	KECCAK_512  uint64 = 0x1d
	BLAKE3      uint64 = 0x1e
	BLAKE2B_256 uint64 = 0xb220
	BLAKE2B_512 uint64 = 0xb240
	BLAKE2S_128 uint64 = 0xb250
	BLAKE2S_256 uint64 = 0xb260
)
