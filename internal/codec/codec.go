// Package codec provides the byte-level compression codecs consumed by the
// array-encoding strategies in internal/encoding. Implementations operate
// on whole byte slices rather than a chunked write stream, and carry no
// state between calls: byte codecs are pure functions.
package codec

import "fmt"

// Tag identifies which codec produced a Compressed value, stored in the
// wire-format header.
type Tag uint8

const (
	TagNone Tag = iota
	TagLZ4
	TagSnappy
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagLZ4:
		return "lz4"
	case TagSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("tag(%d)", t)
	}
}

// ByteCodec compresses and decompresses raw bytes. Implementations must be
// deterministic and stateless: compressing equal inputs with equal
// parameters must yield byte-identical output, which content-addressed
// persistence depends on.
type ByteCodec interface {
	// Tag identifies the codec for the wire-format header.
	Tag() Tag
	// Compress returns a compressed copy of data.
	Compress(data []byte) ([]byte, error)
	// Decompress restores the original bytes previously produced by
	// Compress with an identically configured codec.
	Decompress(data []byte) ([]byte, error)
}

// ByCode resolves a Tag back to a zero-value ByteCodec capable of decoding
// data compressed with it. Level-parameterized codecs (LZ4) don't need their
// level for decoding, so the zero value is sufficient.
func ByCode(tag Tag) (ByteCodec, error) {
	switch tag {
	case TagNone:
		return Passthrough{}, nil
	case TagLZ4:
		return LZ4{}, nil
	case TagSnappy:
		return Snappy{}, nil
	default:
		return nil, fmt.Errorf("codec: unknown tag %d", tag)
	}
}

// Passthrough is a no-op codec, useful for tests and for content that
// doesn't benefit from compression.
type Passthrough struct{}

func (Passthrough) Tag() Tag { return TagNone }
func (Passthrough) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
func (Passthrough) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
