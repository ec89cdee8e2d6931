package encoding

import (
	"bytes"
	"encoding/binary"

	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/voxelerr"
)

// EncodeGeneric concatenates every channel behind a length-prefixed framing
// and compresses the whole thing as one payload with c: slower per-channel
// access than fast-channel-split, but can exploit redundancy across
// channels (e.g. a mostly-uniform material channel next to a noisy density
// channel). The header's channel sizes record each channel's uncompressed
// length.
func EncodeGeneric(c codec.ByteCodec, channels [][]byte, extentMin, extentShape [3]int32) ([]byte, error) {
	framed := new(bytes.Buffer)
	sizes := make([]uint32, len(channels))
	for i, raw := range channels {
		binary.Write(framed, binary.LittleEndian, uint32(len(raw)))
		framed.Write(raw)
		sizes[i] = uint32(len(raw))
	}
	compressed, err := c.Compress(framed.Bytes())
	if err != nil {
		return nil, voxelerr.Wrap(voxelerr.CodecFailure, "compress generic payload", err)
	}
	h := Header{
		Encoding:     StrategyGenericSerialized,
		Codec:        c.Tag(),
		ExtentMin:    extentMin,
		ExtentShape:  extentShape,
		NumChannels:  uint8(len(channels)),
		ChannelSizes: sizes,
	}
	return WriteHeader(h, compressed), nil
}

// DecodeGeneric reverses EncodeGeneric, returning one raw byte slice per
// channel in original order.
func DecodeGeneric(data []byte) (Header, [][]byte, error) {
	h, payload, err := ReadHeader(data)
	if err != nil {
		return Header{}, nil, err
	}
	if h.Encoding != StrategyGenericSerialized {
		return Header{}, nil, voxelerr.New(voxelerr.CorruptedBlob, "header strategy is not generic-serialized")
	}
	c, err := codec.ByCode(h.Codec)
	if err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "resolve codec", err)
	}
	framed, err := c.Decompress(payload)
	if err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CodecFailure, "decompress generic payload", err)
	}

	r := bytes.NewReader(framed)
	channels := make([][]byte, h.NumChannels)
	for i := range channels {
		var n uint32
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read channel frame length", err)
		}
		buf := make([]byte, n)
		if _, err := r.Read(buf); err != nil && n > 0 {
			return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "read channel frame body", err)
		}
		channels[i] = buf
	}
	return h, channels, nil
}
