package world

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeDirt
	BlockTypeGrass
	BlockTypeSand
	BlockTypeSnow

	blockTypeCount
)

var blockNames = [blockTypeCount]string{"air", "stone", "dirt", "grass", "sand", "snow"}

// palette holds the base color of each block type.
var palette = [blockTypeCount]mgl32.Vec3{
	BlockTypeAir:   {},
	BlockTypeStone: rgb(colornames.Gray),
	BlockTypeDirt:  rgb(colornames.Sienna),
	BlockTypeGrass: rgb(colornames.Forestgreen),
	BlockTypeSand:  rgb(colornames.Tan),
	BlockTypeSnow:  rgb(colornames.Snow),
}

func rgb(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func (t BlockType) String() string {
	if t < blockTypeCount {
		return blockNames[t]
	}
	return "unknown"
}

// Color returns the base color of t.
func (t BlockType) Color() mgl32.Vec3 {
	if t < blockTypeCount {
		return palette[t]
	}
	return mgl32.Vec3{1, 0, 1}
}

// Block is the voxel value produced by every sampler in this package.
type Block struct {
	Type BlockType
	// Shade scales the base color; zero means unshaded.
	Shade float32
}

func (b Block) IsSolid() bool {
	return b.Type != BlockTypeAir
}

func (b Block) Colorized() mgl32.Vec3 {
	c := b.Type.Color()
	if b.Shade == 0 {
		return c
	}
	return c.Mul(b.Shade)
}
