package meshing

import (
	"math/bits"

	"voxmesh/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Face identifies one of the six cardinal faces of a unit cube.
type Face uint8

const (
	FaceUp Face = iota
	FaceDown
	FaceLeft
	FaceRight
	FaceFront
	FaceBack
)

// FaceCount is the number of cardinal faces.
const FaceCount = 6

// Mask is a 6-bit set of exposed faces; bit i corresponds to Face(i).
type Mask uint8

const (
	// AllFaces marks every face exposed (an isolated voxel).
	AllFaces Mask = 1<<FaceCount - 1
	// MaskCount is the number of distinct masks.
	MaskCount = 1 << FaceCount
)

var faceNames = [FaceCount]string{"up", "down", "left", "right", "front", "back"}

var faceNormals = [FaceCount]mgl32.Vec3{
	FaceUp:    {0, 1, 0},
	FaceDown:  {0, -1, 0},
	FaceLeft:  {-1, 0, 0},
	FaceRight: {1, 0, 0},
	FaceFront: {0, 0, 1},
	FaceBack:  {0, 0, -1},
}

var faceOffsets = [FaceCount]voxel.Vec3i{
	FaceUp:    {X: 0, Y: 1, Z: 0},
	FaceDown:  {X: 0, Y: -1, Z: 0},
	FaceLeft:  {X: -1, Y: 0, Z: 0},
	FaceRight: {X: 1, Y: 0, Z: 0},
	FaceFront: {X: 0, Y: 0, Z: 1},
	FaceBack:  {X: 0, Y: 0, Z: -1},
}

// Bit returns the mask bit for f.
func (f Face) Bit() Mask { return 1 << f }

// Normal is the outward unit normal of f.
func (f Face) Normal() mgl32.Vec3 { return faceNormals[f] }

// Offset is the grid step to the neighbor that f faces.
func (f Face) Offset() voxel.Vec3i { return faceOffsets[f] }

func (f Face) String() string {
	if int(f) < FaceCount {
		return faceNames[f]
	}
	return "invalid"
}

// Has reports whether f is exposed in m.
func (m Mask) Has(f Face) bool { return m&f.Bit() != 0 }

// Count returns the number of exposed faces.
func (m Mask) Count() int { return bits.OnesCount8(uint8(m & AllFaces)) }
