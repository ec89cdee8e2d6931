package voxelblocks

import (
	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/encoding"
)

// ChannelCodec lets a cell type T split a slice of values into independent
// byte channels for the fast-channel-split strategy, and rebuild a slice
// from them. A scalar type (uint8, float32, ...) typically produces a
// single channel; a struct-of-fields voxel type produces one channel per
// field so each compresses against its own redundancy.
type ChannelCodec[T any] interface {
	EncodeChannels(values []T) [][]byte
	DecodeChannels(channels [][]byte, count int) ([]T, error)
}

// BinaryCodec lets a cell type T serialize a whole value slice to a single
// flat byte payload for the generic-serialized strategy.
type BinaryCodec[T any] interface {
	EncodeBinary(values []T) []byte
	DecodeBinary(data []byte, count int) ([]T, error)
}

// Compressed holds an Array[T] in its wire-format compressed form. The
// extent travels uncompressed alongside the blob so callers can size a
// destination Array before decompressing.
type Compressed[T any] struct {
	Extent Extent3i
	blob   []byte
}

// Len reports the size in bytes of the compressed wire blob.
func (c Compressed[T]) Len() int { return len(c.blob) }

func extentMinArr(e Extent3i) [3]int32   { return [3]int32{e.Minimum.X, e.Minimum.Y, e.Minimum.Z} }
func extentShapeArr(e Extent3i) [3]int32 { return [3]int32{e.Shape.X, e.Shape.Y, e.Shape.Z} }

func extentFromArrs(min, shape [3]int32) Extent3i {
	return ExtentFromMinAndShape(P3i(min[0], min[1], min[2]), P3i(shape[0], shape[1], shape[2]))
}

// CompressFastChannelSplit compresses a into wire-format bytes using bc
// independently per channel, as produced by cc.
func CompressFastChannelSplit[T any](a *Array[T], bc codec.ByteCodec, cc ChannelCodec[T]) (Compressed[T], error) {
	channels := cc.EncodeChannels(a.Channels.Raw())
	blob, err := encoding.EncodeFastChannelSplit(bc, channels, extentMinArr(a.Extent), extentShapeArr(a.Extent))
	if err != nil {
		return Compressed[T]{}, err
	}
	return Compressed[T]{Extent: a.Extent, blob: blob}, nil
}

// DecompressFastChannelSplit reverses CompressFastChannelSplit.
func DecompressFastChannelSplit[T any](c Compressed[T], cc ChannelCodec[T]) (*Array[T], error) {
	h, channels, err := encoding.DecodeFastChannelSplit(c.blob)
	if err != nil {
		return nil, err
	}
	extent := extentFromArrs(h.ExtentMin, h.ExtentShape)
	values, err := cc.DecodeChannels(channels, int(extent.Volume()))
	if err != nil {
		return nil, err
	}
	return &Array[T]{Extent: extent, Channels: ChannelStorage[T]{values: values}}, nil
}

// CompressGeneric compresses a into wire-format bytes by serializing every
// cell with vc and compressing the whole payload as one unit with bc.
func CompressGeneric[T any](a *Array[T], bc codec.ByteCodec, vc BinaryCodec[T]) (Compressed[T], error) {
	payload := vc.EncodeBinary(a.Channels.Raw())
	blob, err := encoding.EncodeGeneric(bc, [][]byte{payload}, extentMinArr(a.Extent), extentShapeArr(a.Extent))
	if err != nil {
		return Compressed[T]{}, err
	}
	return Compressed[T]{Extent: a.Extent, blob: blob}, nil
}

// DecompressGeneric reverses CompressGeneric.
func DecompressGeneric[T any](c Compressed[T], vc BinaryCodec[T]) (*Array[T], error) {
	h, channels, err := encoding.DecodeGeneric(c.blob)
	if err != nil {
		return nil, err
	}
	extent := extentFromArrs(h.ExtentMin, h.ExtentShape)
	values, err := vc.DecodeBinary(channels[0], int(extent.Volume()))
	if err != nil {
		return nil, err
	}
	return &Array[T]{Extent: extent, Channels: ChannelStorage[T]{values: values}}, nil
}
