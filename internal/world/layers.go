package world

import (
	"voxmesh/internal/voxel"
)

// Layers is a flat test scene: three rows of stone, two of dirt and a grass
// top starting at y=0. Everything else is air.
func Layers(p voxel.Vec3i) Block {
	switch {
	case p.Y < 0:
		return Block{}
	case p.Y < 3:
		return Block{Type: BlockTypeStone}
	case p.Y < 5:
		return Block{Type: BlockTypeDirt}
	case p.Y == 5:
		return Block{Type: BlockTypeGrass}
	default:
		return Block{}
	}
}

// LayersHeight is the number of solid rows in Layers.
const LayersHeight = 6
