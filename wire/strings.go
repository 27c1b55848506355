package wire

import (
	"encoding/hex"

	"github.com/mr-tron/base58"

	"xdao.co/multihash/registry"
)

// HexString returns the canonical multihash bytes as lowercase hex.
func HexString(m registry.Multihash) string {
	return hex.EncodeToString(Encode(m))
}

// B58String returns the canonical multihash bytes in base58btc, the
// conventional human-readable form for multihashes.
func B58String(m registry.Multihash) string {
	return base58.Encode(Encode(m))
}
