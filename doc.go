// Package voxelblocks implements a sparse, chunked, level-of-detail 3D voxel
// grid: point/extent algebra, a multi-channel array type, a chunk map with
// pluggable compression, and chunk storage backends (plain hash map, and a
// compressible backend with a bounded LRU of decompressed chunks). The
// octree-backed spatial index and clipmap streaming algorithm live in
// internal/octree and internal/clipmap and are re-exported here so external
// callers never need to reach into an internal package directly.
package voxelblocks
