package voxelblocks

import (
	"log"

	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/metrics"
)

// loggableBackend is implemented by backends that can emit trace lines for
// their own internal state transitions (currently only CompressibleBackend,
// for eviction/promotion). WithLogger is a no-op on backends that don't
// implement it.
type loggableBackend interface {
	SetLogger(*log.Logger)
}

// ChunkMapBuilder configures a ChunkMap via chained options before Build.
type ChunkMapBuilder[T any] struct {
	chunkExponent uint8
	ambient       T
	backend       Backend[T]
	err           error
}

// NewChunkMapBuilder starts a builder for a map whose chunk side is
// 1<<chunkExponent voxels and whose ambient (absent-chunk) value is
// ambient. Defaults to a hash-map backend if no With*Backend call is made.
func NewChunkMapBuilder[T any](chunkExponent uint8, ambient T) *ChunkMapBuilder[T] {
	return &ChunkMapBuilder[T]{chunkExponent: chunkExponent, ambient: ambient}
}

// WithHashBackend selects the plain, uncompressed hash-map backend.
func (b *ChunkMapBuilder[T]) WithHashBackend() *ChunkMapBuilder[T] {
	b.backend = NewHashBackend[T]()
	return b
}

// WithCompressibleBackendFastChannelSplit selects the bounded-LRU
// compressible backend, compressing evicted chunks with the
// fast-channel-split strategy.
func (b *ChunkMapBuilder[T]) WithCompressibleBackendFastChannelSplit(capacity int, byteCodec codec.ByteCodec, chanCodec ChannelCodec[T], collector *metrics.Collector) *ChunkMapBuilder[T] {
	backend, err := NewCompressibleBackendFastChannelSplit[T](capacity, byteCodec, chanCodec, collector)
	if err != nil {
		b.err = err
		return b
	}
	b.backend = backend
	return b
}

// WithCompressibleBackendGeneric selects the bounded-LRU compressible
// backend, compressing evicted chunks with the generic-serialized
// strategy.
func (b *ChunkMapBuilder[T]) WithCompressibleBackendGeneric(capacity int, byteCodec codec.ByteCodec, binCodec BinaryCodec[T], collector *metrics.Collector) *ChunkMapBuilder[T] {
	backend, err := NewCompressibleBackendGeneric[T](capacity, byteCodec, binCodec, collector)
	if err != nil {
		b.err = err
		return b
	}
	b.backend = backend
	return b
}

// WithLogger attaches logger to the backend configured so far, if that
// backend supports trace logging. Must be called after the With*Backend
// call it should apply to. A nil logger (the default) keeps the backend
// silent.
func (b *ChunkMapBuilder[T]) WithLogger(logger *log.Logger) *ChunkMapBuilder[T] {
	if l, ok := b.backend.(loggableBackend); ok {
		l.SetLogger(logger)
	}
	return b
}

// Build finalizes the map, or returns the first error recorded by an
// option that failed (e.g. a zero-capacity compressible backend).
func (b *ChunkMapBuilder[T]) Build() (*ChunkMap[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.backend == nil {
		b.backend = NewHashBackend[T]()
	}
	return &ChunkMap[T]{backend: b.backend, chunkExponent: b.chunkExponent, ambient: b.ambient}, nil
}
