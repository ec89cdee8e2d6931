package encoding

import (
	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/voxelerr"
)

// EncodeFastChannelSplit compresses each channel's raw bytes independently
// with c: cheap, streams a single channel without touching the others, at
// the cost of losing any cross-channel redundancy.
func EncodeFastChannelSplit(c codec.ByteCodec, channels [][]byte, extentMin, extentShape [3]int32) ([]byte, error) {
	sizes := make([]uint32, len(channels))
	compressed := make([][]byte, len(channels))
	for i, raw := range channels {
		out, err := c.Compress(raw)
		if err != nil {
			return nil, voxelerr.Wrap(voxelerr.CodecFailure, "compress channel", err)
		}
		compressed[i] = out
		sizes[i] = uint32(len(out))
	}
	payload := make([]byte, 0, sumLen(compressed))
	for _, out := range compressed {
		payload = append(payload, out...)
	}
	h := Header{
		Encoding:     StrategyFastChannelSplit,
		Codec:        c.Tag(),
		ExtentMin:    extentMin,
		ExtentShape:  extentShape,
		NumChannels:  uint8(len(channels)),
		ChannelSizes: sizes,
	}
	return WriteHeader(h, payload), nil
}

// DecodeFastChannelSplit reverses EncodeFastChannelSplit, returning one raw
// byte slice per channel in original order.
func DecodeFastChannelSplit(data []byte) (Header, [][]byte, error) {
	h, payload, err := ReadHeader(data)
	if err != nil {
		return Header{}, nil, err
	}
	if h.Encoding != StrategyFastChannelSplit {
		return Header{}, nil, voxelerr.New(voxelerr.CorruptedBlob, "header strategy is not fast-channel-split")
	}
	c, err := codec.ByCode(h.Codec)
	if err != nil {
		return Header{}, nil, voxelerr.Wrap(voxelerr.CorruptedBlob, "resolve codec", err)
	}
	channels := make([][]byte, len(h.ChannelSizes))
	offset := 0
	for i, sz := range h.ChannelSizes {
		end := offset + int(sz)
		if end > len(payload) {
			return Header{}, nil, voxelerr.New(voxelerr.CorruptedBlob, "channel size exceeds payload")
		}
		raw, err := c.Decompress(payload[offset:end])
		if err != nil {
			return Header{}, nil, voxelerr.Wrap(voxelerr.CodecFailure, "decompress channel", err)
		}
		if raw == nil {
			raw = []byte{}
		}
		channels[i] = raw
		offset = end
	}
	return h, channels, nil
}

func sumLen(bufs [][]byte) int {
	n := 0
	for _, b := range bufs {
		n += len(b)
	}
	return n
}
