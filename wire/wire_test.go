package wire

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"xdao.co/multihash/catalog"
	"xdao.co/multihash/hasher"
	"xdao.co/multihash/mherr"
	"xdao.co/multihash/registry"
)

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		MaxSize:        "64",
		EnforceMaxSize: true,
		Entries: []catalog.Entry{
			{Name: "Foo", Code: 0x01, Hasher: hasher.Sha2_256(), DigestTag: "sha2-256", DigestSize: 32},
			{Name: "Bar", Code: 0x02, Hasher: hasher.Sha2_512(), DigestTag: "sha2-512", DigestSize: 64},
		},
	}
}

func TestRoundTrip_AllDefaultVariants(t *testing.T) {
	reg := registry.MustBuild(catalog.Default())
	codec := NewCodec(reg)

	inputs := [][]byte{
		nil,
		[]byte("hello world"),
		bytes.Repeat([]byte{0xab}, 10_000),
	}

	for _, code := range reg.Codes() {
		for _, input := range inputs {
			v, err := reg.Sum(code, input)
			if err != nil {
				t.Fatalf("Sum(0x%x) failed: %v", code, err)
			}

			var buf bytes.Buffer
			if err := Write(&buf, v); err != nil {
				t.Fatalf("Write(0x%x) failed: %v", code, err)
			}
			got, err := codec.Read(&buf)
			if err != nil {
				t.Fatalf("Read(0x%x) failed: %v", code, err)
			}
			if !got.Equal(v) {
				t.Fatalf("round trip mismatch for 0x%x: %v != %v", code, got, v)
			}

			got, err = codec.Decode(Encode(v))
			if err != nil {
				t.Fatalf("Decode(0x%x) failed: %v", code, err)
			}
			if !got.Equal(v) {
				t.Fatalf("Encode/Decode mismatch for 0x%x", code)
			}
		}
	}
}

func TestReadWrite_TwoVariantScenario(t *testing.T) {
	reg := registry.MustBuild(testCatalog())
	codec := NewCodec(reg)

	v, err := reg.Sum(0x01, []byte("hello world"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, v); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := codec.Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !got.Equal(v) {
		t.Fatalf("round trip mismatch: %v != %v", got, v)
	}

	_, err = reg.Sum(0x03, []byte("x"))
	code, ok := mherr.CodeOf(err)
	if !ok || code != 0x03 {
		t.Fatalf("Sum(0x03) error = %v, want UnsupportedCode(0x3)", err)
	}
}

func TestRead_UnsupportedCode(t *testing.T) {
	codec := NewCodec(registry.MustBuild(testCatalog()))

	// code 0x03 is not in the catalog; size and digest are otherwise valid.
	input := append([]byte{0x03, 0x20}, make([]byte, 32)...)
	_, err := codec.Decode(input)
	if !mherr.IsKind(err, mherr.KindCode) {
		t.Fatalf("got %v, want KindCode error", err)
	}
	code, ok := mherr.CodeOf(err)
	if !ok || code != 0x03 {
		t.Fatalf("CodeOf = (0x%x, %v), want (0x3, true)", code, ok)
	}
}

func TestRead_InvalidSize(t *testing.T) {
	codec := NewCodec(registry.MustBuild(testCatalog()))

	// Valid code 0x01 but declared size 16 where 32 is registered.
	input := append([]byte{0x01, 0x10}, make([]byte, 16)...)
	_, err := codec.Decode(input)
	if !mherr.IsKind(err, mherr.KindSize) {
		t.Fatalf("got %v, want KindSize error", err)
	}
	declared, ok := mherr.DeclaredSizeOf(err)
	if !ok || declared != 16 {
		t.Fatalf("DeclaredSizeOf = (%d, %v), want (16, true)", declared, ok)
	}
}

func TestRead_ShortDigestIsIOFailure(t *testing.T) {
	codec := NewCodec(registry.MustBuild(testCatalog()))

	input := append([]byte{0x01, 0x20}, make([]byte, 10)...)
	_, err := codec.Decode(input)
	if !mherr.IsKind(err, mherr.KindIO) {
		t.Fatalf("got %v, want KindIO error", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("underlying stream error must stay reachable: %v", err)
	}
}

func TestRead_EmptyStreamIsIOFailure(t *testing.T) {
	codec := NewCodec(registry.MustBuild(testCatalog()))
	if _, err := codec.Decode(nil); !mherr.IsKind(err, mherr.KindIO) {
		t.Fatalf("got %v, want KindIO error", err)
	}
}

func TestRead_NonMinimalVarintRejected(t *testing.T) {
	codec := NewCodec(registry.MustBuild(testCatalog()))

	// 0x81 0x00 is a two-byte spelling of code 0x01.
	input := append([]byte{0x81, 0x00, 0x20}, make([]byte, 32)...)
	if _, err := codec.Decode(input); !mherr.IsKind(err, mherr.KindIO) {
		t.Fatalf("got %v, want KindIO error", err)
	}
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	reg := registry.MustBuild(testCatalog())
	codec := NewCodec(reg)

	v, err := reg.Sum(0x01, []byte("data"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	got, err := codec.Decode(append(Encode(v), 0xde, 0xad))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !got.Equal(v) {
		t.Fatal("Decode must stop after the digest")
	}
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWrite_PropagatesSinkErrorUnchanged(t *testing.T) {
	reg := registry.MustBuild(testCatalog())

	v, err := reg.Sum(0x01, []byte("data"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	sinkErr := errors.New("sink is closed")
	if err := Write(failingWriter{err: sinkErr}, v); err != sinkErr {
		t.Fatalf("got %v, want the sink error unchanged", err)
	}
}

// Read must work against plain readers that are not io.ByteReaders without
// consuming past the digest.
func TestRead_PlainReaderStaysAligned(t *testing.T) {
	reg := registry.MustBuild(testCatalog())
	codec := NewCodec(reg)

	a, err := reg.Sum(0x01, []byte("first"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	b, err := reg.Sum(0x02, []byte("second"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}

	stream := plainReader{r: bytes.NewReader(append(Encode(a), Encode(b)...))}
	got1, err := codec.Read(stream)
	if err != nil {
		t.Fatalf("Read(1) failed: %v", err)
	}
	got2, err := codec.Read(stream)
	if err != nil {
		t.Fatalf("Read(2) failed: %v", err)
	}
	if !got1.Equal(a) || !got2.Equal(b) {
		t.Fatal("consecutive reads must not desynchronize the stream")
	}
}

// plainReader hides ReadByte so the codec's own adapter is exercised.
type plainReader struct {
	r io.Reader
}

func (p plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }
