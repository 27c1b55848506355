// Package catalog declares the table of multihash variants from which a
// registry is built: one entry per variant, binding a code to a hash
// capability and a fixed digest length, plus a catalog-wide size bound.
package catalog

import "xdao.co/multihash/hasher"

// Entry declares one multihash variant.
type Entry struct {
	// Name identifies the variant in diagnostics.
	Name string
	// Code is the multicodec indicator number for the variant.
	Code uint64
	// Hasher is the injected hash capability for the variant.
	Hasher hasher.Hasher
	// DigestTag is the static identity of the digest type the variant
	// wraps. Tags must be unique across the catalog; the registry builds
	// the inverse digest-type -> code index from them.
	DigestTag string
	// DigestSize is the fixed digest byte length for the variant.
	DigestSize int
}

// Catalog is an ordered list of entries plus the catalog-wide maximum
// digest size bound.
//
// Entry order is insertion order. It carries no semantics beyond the
// ordering of lint diagnostics.
type Catalog struct {
	Entries []Entry

	// MaxSize is the maximum digest byte length, as an unparsed integer
	// token. It is parsed during lint so that a malformed bound is
	// reported as a diagnostic rather than a construction panic.
	MaxSize string

	// EnforceMaxSize controls whether entries exceeding MaxSize are lint
	// failures or silently allowed.
	EnforceMaxSize bool
}
