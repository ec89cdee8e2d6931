// Package encoding implements the two array-encoding strategies (fast
// channel-split and generic serialized) plus the stable wire format that
// wraps either one, built on hand-rolled encoding/binary readers/writers
// rather than a general-purpose serialization library.
package encoding

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/voxelerr"
)

// magic identifies the wire format: "BBVC".
var magic = [4]byte{'B', 'B', 'V', 'C'}

const wireVersion uint16 = 1

// Strategy identifies which array-encoding strategy produced a Header.
type Strategy uint8

const (
	StrategyFastChannelSplit Strategy = iota + 1
	StrategyGenericSerialized
)

// Header is the fixed-layout prefix of the wire format: magic, version,
// encoding_tag, codec_tag, extent, num_channels, channel_sizes. All
// integers little-endian.
type Header struct {
	Encoding     Strategy
	Codec        codec.Tag
	ExtentMin    [3]int32
	ExtentShape  [3]int32
	NumChannels  uint8
	ChannelSizes []uint32
}

// WriteHeader serializes h followed by payload (the concatenated codec
// outputs) into a single wire blob.
func WriteHeader(h Header, payload []byte) []byte {
	buf := new(bytes.Buffer)
	buf.Write(magic[:])
	binary.Write(buf, binary.LittleEndian, wireVersion)
	binary.Write(buf, binary.LittleEndian, uint8(h.Encoding))
	binary.Write(buf, binary.LittleEndian, uint8(h.Codec))
	for _, v := range h.ExtentMin {
		binary.Write(buf, binary.LittleEndian, v)
	}
	for _, v := range h.ExtentShape {
		binary.Write(buf, binary.LittleEndian, v)
	}
	binary.Write(buf, binary.LittleEndian, h.NumChannels)
	for _, sz := range h.ChannelSizes {
		binary.Write(buf, binary.LittleEndian, sz)
	}
	buf.Write(payload)
	return buf.Bytes()
}

// ReadHeader parses a wire blob produced by WriteHeader, returning the
// header and the remaining payload bytes. Returns a voxelerr.CorruptedBlob
// error on magic/version mismatch or truncated input.
func ReadHeader(data []byte) (Header, []byte, error) {
	r := bytes.NewReader(data)
	var gotMagic [4]byte
	if _, err := r.Read(gotMagic[:]); err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read magic", err)
	}
	if gotMagic != magic {
		return Header{}, nil, voxelerr.New(voxelerr.CorruptedBlob, fmt.Sprintf("bad magic %q", gotMagic))
	}

	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read version", err)
	}
	if version != wireVersion {
		return Header{}, nil, voxelerr.New(voxelerr.CorruptedBlob, fmt.Sprintf("unsupported version %d", version))
	}

	var encodingTag, codecTag, numChannels uint8
	if err := binary.Read(r, binary.LittleEndian, &encodingTag); err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read encoding tag", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &codecTag); err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read codec tag", err)
	}

	h := Header{Encoding: Strategy(encodingTag), Codec: codec.Tag(codecTag)}
	for i := range h.ExtentMin {
		if err := binary.Read(r, binary.LittleEndian, &h.ExtentMin[i]); err != nil {
			return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read extent minimum", err)
		}
	}
	for i := range h.ExtentShape {
		if err := binary.Read(r, binary.LittleEndian, &h.ExtentShape[i]); err != nil {
			return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read extent shape", err)
		}
	}
	if err := binary.Read(r, binary.LittleEndian, &numChannels); err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read num channels", err)
	}
	h.NumChannels = numChannels
	h.ChannelSizes = make([]uint32, numChannels)
	for i := range h.ChannelSizes {
		if err := binary.Read(r, binary.LittleEndian, &h.ChannelSizes[i]); err != nil {
			return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read channel sizes", err)
		}
	}

	rest := make([]byte, r.Len())
	if _, err := r.Read(rest); err != nil && r.Len() > 0 {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read payload", err)
	}
	return h, rest, nil
}
