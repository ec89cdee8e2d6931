package voxelblocks

import "encoding/binary"

// SortedByteStore is the collaborator interface for the optional
// persistence backend: an ordered key-value store the core never
// implements, only consumes. Implementations must return entries from
// Range in ascending key order; the keys the core produces (ChunkDBKey)
// are already ordered so that a full-range scan yields LOD-major,
// Morton-order traversal.
type SortedByteStore interface {
	Put(key, value []byte) error
	Get(key []byte) ([]byte, bool, error)
	// Range calls f with every key/value pair in [start, end) in ascending
	// key order. f returning false stops the scan early.
	Range(start, end []byte, f func(key, value []byte) bool) error
	Delete(key []byte) error
}

// chunkDBKeyLen is the fixed size of a ChunkDBKey: 1 byte LOD + 8 bytes
// big-endian Morton code.
const chunkDBKeyLen = 1 + 8

// ChunkDBKey encodes key's LOD and Morton code as `[lod: u8][morton: u64
// big-endian]`. Big-endian encoding means lexicographic byte ordering
// matches numeric Morton ordering, so a
// SortedByteStore range scan over a single LOD's key prefix returns chunks
// in Morton order.
func ChunkDBKey(key ChunkKey) []byte {
	buf := make([]byte, chunkDBKeyLen)
	buf[0] = key.LOD
	binary.BigEndian.PutUint64(buf[1:], Morton64(key.ChunkMin))
	return buf
}

// ParseChunkDBKey decodes a key produced by ChunkDBKey back into a LOD and
// Morton code. Returns false if buf isn't exactly chunkDBKeyLen bytes.
func ParseChunkDBKey(buf []byte) (lod uint8, morton uint64, ok bool) {
	if len(buf) != chunkDBKeyLen {
		return 0, 0, false
	}
	return buf[0], binary.BigEndian.Uint64(buf[1:]), true
}
