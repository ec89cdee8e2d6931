package voxelblocks

import (
	"log"

	lru "github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/voxelcore/voxelblocks/internal/codec"
	"github.com/voxelcore/voxelblocks/internal/metrics"
	"github.com/voxelcore/voxelblocks/internal/voxelerr"
)

// compressionCodec bridges whichever array-encoding strategy a
// CompressibleBackend was built with into a single Compress/Decompress
// pair, so the backend itself doesn't need to know which strategy it is.
type compressionCodec[T any] interface {
	Compress(a *Array[T]) (Compressed[T], error)
	Decompress(c Compressed[T]) (*Array[T], error)
}

type fastChannelCodec[T any] struct {
	byteCodec codec.ByteCodec
	chanCodec ChannelCodec[T]
}

func (c fastChannelCodec[T]) Compress(a *Array[T]) (Compressed[T], error) {
	return CompressFastChannelSplit(a, c.byteCodec, c.chanCodec)
}

func (c fastChannelCodec[T]) Decompress(comp Compressed[T]) (*Array[T], error) {
	return DecompressFastChannelSplit(comp, c.chanCodec)
}

type genericStrategyCodec[T any] struct {
	byteCodec codec.ByteCodec
	binCodec  BinaryCodec[T]
}

func (c genericStrategyCodec[T]) Compress(a *Array[T]) (Compressed[T], error) {
	return CompressGeneric(a, c.byteCodec, c.binCodec)
}

func (c genericStrategyCodec[T]) Decompress(comp Compressed[T]) (*Array[T], error) {
	return DecompressGeneric(comp, c.binCodec)
}

// CompressibleBackend is the bounded-cache backend: a hot LRU tier of
// decompressed arrays over an unbounded cold store of compressed blobs.
// hashicorp/golang-lru/v2/simplelru's OnEvict callback fires on every
// removal from the hot tier — both the automatic eviction that happens
// when Insert exceeds capacity and any explicit removal — so
// suppressEvict distinguishes "compress this chunk into the cold store"
// (automatic eviction, and FlushAllToCold) from "discard this chunk
// entirely" (Remove).
type CompressibleBackend[T any] struct {
	hot           *lru.LRU[ChunkKey, *Array[T]]
	cold          map[ChunkKey]Compressed[T]
	codec         compressionCodec[T]
	metrics       *metrics.Collector
	logger        *log.Logger
	suppressEvict bool
}

// SetLogger attaches a logger that receives one trace line per eviction
// and promotion. A nil logger (the default) keeps the backend silent.
func (b *CompressibleBackend[T]) SetLogger(logger *log.Logger) {
	b.logger = logger
}

func newCompressibleBackend[T any](capacity int, codecImpl compressionCodec[T], collector *metrics.Collector) (*CompressibleBackend[T], error) {
	if capacity <= 0 {
		return nil, voxelerr.New(voxelerr.CacheCapacityZero, "compressible backend requires capacity > 0")
	}
	b := &CompressibleBackend[T]{
		cold:    make(map[ChunkKey]Compressed[T]),
		codec:   codecImpl,
		metrics: collector,
	}
	hot, err := lru.NewLRU[ChunkKey, *Array[T]](capacity, b.onEvict)
	if err != nil {
		return nil, voxelerr.Wrap(voxelerr.CacheCapacityZero, "build hot LRU tier", err)
	}
	b.hot = hot
	return b, nil
}

// NewCompressibleBackendFastChannelSplit builds a compressible backend
// that compresses evicted chunks with the fast-channel-split strategy.
func NewCompressibleBackendFastChannelSplit[T any](capacity int, byteCodec codec.ByteCodec, chanCodec ChannelCodec[T], collector *metrics.Collector) (*CompressibleBackend[T], error) {
	return newCompressibleBackend[T](capacity, fastChannelCodec[T]{byteCodec: byteCodec, chanCodec: chanCodec}, collector)
}

// NewCompressibleBackendGeneric builds a compressible backend that
// compresses evicted chunks with the generic-serialized strategy.
func NewCompressibleBackendGeneric[T any](capacity int, byteCodec codec.ByteCodec, binCodec BinaryCodec[T], collector *metrics.Collector) (*CompressibleBackend[T], error) {
	return newCompressibleBackend[T](capacity, genericStrategyCodec[T]{byteCodec: byteCodec, binCodec: binCodec}, collector)
}

func (b *CompressibleBackend[T]) onEvict(key ChunkKey, a *Array[T]) {
	if b.suppressEvict {
		return
	}
	compressed, err := b.codec.Compress(a)
	if err != nil {
		// The array was valid in memory; a codec failure here means the
		// chunk is dropped rather than left half-written in either tier.
		if b.logger != nil {
			b.logger.Printf("voxelblocks: chunk %v: compress on evict failed: %v", key, err)
		}
		return
	}
	b.cold[key] = compressed
	if b.metrics != nil {
		b.metrics.Evictions.Inc()
		b.metrics.ColdStoreBytes.Add(float64(compressed.Len()))
	}
	if b.logger != nil {
		b.logger.Printf("voxelblocks: chunk %v: evicted to cold store (%d bytes)", key, compressed.Len())
	}
}

// Get returns the chunk at key, promoting it from the cold store if it
// isn't already hot.
func (b *CompressibleBackend[T]) Get(key ChunkKey) (*Array[T], bool) {
	if a, ok := b.hot.Get(key); ok {
		if b.metrics != nil {
			b.metrics.CacheHits.Inc()
		}
		return a, true
	}
	compressed, ok := b.cold[key]
	if !ok {
		if b.metrics != nil {
			b.metrics.CacheMisses.Inc()
		}
		return nil, false
	}
	a, err := b.codec.Decompress(compressed)
	if err != nil {
		// Promotion failure leaves the cold entry untouched.
		if b.logger != nil {
			b.logger.Printf("voxelblocks: chunk %v: decompress on promote failed: %v", key, err)
		}
		return nil, false
	}
	delete(b.cold, key)
	if b.metrics != nil {
		b.metrics.ColdStoreBytes.Sub(float64(compressed.Len()))
		b.metrics.Promotions.Inc()
	}
	if b.logger != nil {
		b.logger.Printf("voxelblocks: chunk %v: promoted from cold store (%d bytes)", key, compressed.Len())
	}
	b.hot.Add(key, a) // may itself evict a different key to the cold store
	return a, true
}

// GetMut behaves like Get; the returned *Array[T] is already in the hot
// tier at MRU position, so writes through it are visible immediately.
func (b *CompressibleBackend[T]) GetMut(key ChunkKey) (*Array[T], bool) {
	return b.Get(key)
}

// Insert places a in the hot tier at MRU position, evicting the
// least-recently-used entry to the cold store if the tier is at capacity.
func (b *CompressibleBackend[T]) Insert(key ChunkKey, a *Array[T]) {
	if compressed, ok := b.cold[key]; ok {
		delete(b.cold, key)
		if b.metrics != nil {
			b.metrics.ColdStoreBytes.Sub(float64(compressed.Len()))
		}
	}
	b.hot.Add(key, a)
}

// Remove deletes key from whichever tier currently holds it, without
// compressing it into the cold store.
func (b *CompressibleBackend[T]) Remove(key ChunkKey) (*Array[T], bool) {
	if a, ok := b.hot.Peek(key); ok {
		b.suppressEvict = true
		b.hot.Remove(key)
		b.suppressEvict = false
		return a, true
	}
	if compressed, ok := b.cold[key]; ok {
		delete(b.cold, key)
		if b.metrics != nil {
			b.metrics.ColdStoreBytes.Sub(float64(compressed.Len()))
		}
		a, err := b.codec.Decompress(compressed)
		if err != nil {
			return nil, false
		}
		return a, true
	}
	return nil, false
}

// IterKeys visits every key across both tiers, in unspecified order. f
// returning false stops iteration early.
func (b *CompressibleBackend[T]) IterKeys(f func(ChunkKey) bool) {
	for _, k := range b.hot.Keys() {
		if !f(k) {
			return
		}
	}
	for k := range b.cold {
		if !f(k) {
			return
		}
	}
}

// FlushAllToCold compresses every hot entry into the cold store. Callers
// that need a disjoint read-only snapshot for parallel work can flush then
// clone the cold store, rather than relying on internal sharding. Purge's
// eviction callback does the compression.
func (b *CompressibleBackend[T]) FlushAllToCold() {
	b.hot.Purge()
}

// Len reports the number of chunks currently in the hot tier.
func (b *CompressibleBackend[T]) Len() int {
	return b.hot.Len()
}

// ColdLen reports the number of chunks currently in the cold store.
func (b *CompressibleBackend[T]) ColdLen() int {
	return len(b.cold)
}
