package voxelblocks

import "github.com/voxelcore/voxelblocks/internal/octree"

// OctreeConfig, ChunkIndex, OctreeSet and the octree Visit status/
// visitor are defined in internal/octree (see that package's doc comment)
// and re-exported here as the public Chunk Index API.
type (
	OctreeConfig      = octree.Config
	ChunkIndex        = octree.ChunkIndex
	OctreeSet         = octree.Set
	OctreeVisitor     = octree.Visitor
	OctreeVisitStatus = octree.VisitStatus
)

// NewChunkIndex, NewOctreeSet and the OctreeVisitStatus values are
// re-exported constructors/constants; see internal/octree for docs.
var (
	NewChunkIndex = octree.NewChunkIndex
	NewOctreeSet  = octree.NewSet
)

const (
	OctreeContinue  = octree.Continue
	OctreeExitEarly = octree.ExitEarly
	OctreeStop      = octree.Stop
)
