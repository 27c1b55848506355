// Package wire implements the canonical multihash byte layout:
//
//	varint(code) || varint(size) || digest
//
// Varints are unsigned little-endian base-128 (LEB128): 7 payload bits per
// byte, high bit set while more bytes follow, least-significant group
// first. The layout must match the reference multihash encoding
// bit-for-bit; decoding consults a registry to resolve codes to their
// expected digest sizes.
package wire

import (
	"bytes"
	"io"

	"github.com/multiformats/go-varint"

	"xdao.co/multihash/mherr"
	"xdao.co/multihash/registry"
)

// Write emits the multihash to w: code varint, size varint, digest bytes,
// in that order. Sink failures propagate unchanged.
func Write(w io.Writer, m registry.Multihash) error {
	_, err := w.Write(Encode(m))
	return err
}

// Encode returns the canonical bytes of the multihash.
func Encode(m registry.Multihash) []byte {
	size := uint64(m.Size())
	buf := make([]byte, 0, varint.UvarintSize(m.Code())+varint.UvarintSize(size)+m.Size())
	buf = append(buf, varint.ToUvarint(m.Code())...)
	buf = append(buf, varint.ToUvarint(size)...)
	return append(buf, m.Digest()...)
}

// Codec decodes multihashes against a fixed registry. The zero value is
// unusable; construct with NewCodec.
type Codec struct {
	reg *registry.Registry
}

// NewCodec returns a codec that resolves codes through reg.
func NewCodec(reg *registry.Registry) Codec {
	return Codec{reg: reg}
}

// Read decodes one multihash from r.
//
// Failure modes, in decode order:
//   - a code absent from the registry: KindCode (UnsupportedCode);
//   - a size varint that disagrees with the code's declared digest length:
//     KindSize (InvalidSize) — the digest is never truncated or padded;
//   - any stream failure, including a short digest read and malformed
//     varints: KindIO, wrapping the underlying error.
func (c Codec) Read(r io.Reader) (registry.Multihash, error) {
	br := asByteReader(r)

	code, err := varint.ReadUvarint(br)
	if err != nil {
		return registry.Multihash{}, mherr.Wrap(mherr.KindIO, "MH-IO-001", "reading code varint", err)
	}
	expected, err := c.reg.Size(code)
	if err != nil {
		return registry.Multihash{}, err
	}

	declared, err := varint.ReadUvarint(br)
	if err != nil {
		return registry.Multihash{}, mherr.Wrap(mherr.KindIO, "MH-IO-002", "reading size varint", err)
	}
	if declared != uint64(expected) {
		return registry.Multihash{}, mherr.InvalidSize(declared, expected)
	}

	digest := make([]byte, expected)
	if _, err := io.ReadFull(r, digest); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return registry.Multihash{}, mherr.Wrap(mherr.KindIO, "MH-IO-003", "reading digest", err)
	}
	return c.reg.Wrap(code, digest)
}

// Decode decodes a multihash from an in-memory buffer. It is a thin
// wrapper over Read; trailing bytes after the digest are left unread.
func (c Codec) Decode(b []byte) (registry.Multihash, error) {
	return c.Read(bytes.NewReader(b))
}

func asByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return oneByteReader{r}
}

// oneByteReader adapts an io.Reader without buffering, so varint reads and
// the following digest read stay aligned on the same stream.
type oneByteReader struct {
	r io.Reader
}

func (b oneByteReader) ReadByte() (byte, error) {
	var p [1]byte
	if _, err := io.ReadFull(b.r, p[:]); err != nil {
		return 0, err
	}
	return p[0], nil
}
