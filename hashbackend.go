package voxelblocks

// HashBackend is the simplest backend: a plain map, no compression, every
// chunk decompressed and resident for as long as it exists. Appropriate
// when the total voxel count is bounded and memory isn't a concern.
type HashBackend[T any] struct {
	chunks map[ChunkKey]*Array[T]
}

// NewHashBackend builds an empty hash-map backend.
func NewHashBackend[T any]() *HashBackend[T] {
	return &HashBackend[T]{chunks: make(map[ChunkKey]*Array[T])}
}

func (b *HashBackend[T]) Get(key ChunkKey) (*Array[T], bool) {
	a, ok := b.chunks[key]
	return a, ok
}

func (b *HashBackend[T]) GetMut(key ChunkKey) (*Array[T], bool) {
	return b.Get(key)
}

func (b *HashBackend[T]) Insert(key ChunkKey, a *Array[T]) {
	b.chunks[key] = a
}

func (b *HashBackend[T]) Remove(key ChunkKey) (*Array[T], bool) {
	a, ok := b.chunks[key]
	if ok {
		delete(b.chunks, key)
	}
	return a, ok
}

func (b *HashBackend[T]) IterKeys(f func(ChunkKey) bool) {
	for k := range b.chunks {
		if !f(k) {
			return
		}
	}
}
