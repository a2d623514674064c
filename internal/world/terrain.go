package world

import (
	"math"

	"voxmesh/internal/voxel"
)

// TerrainParams controls the height field and layering of a Terrain.
type TerrainParams struct {
	Seed        int64   `yaml:"seed"`
	Scale       float64 `yaml:"scale"`
	BaseHeight  int32   `yaml:"base_height"`
	Amplitude   float64 `yaml:"amplitude"`
	Octaves     int     `yaml:"octaves"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`

	DirtDepth int32 `yaml:"dirt_depth"`
	SandLevel int32 `yaml:"sand_level"`
	SnowLine  int32 `yaml:"snow_line"`

	// CaveThreshold carves air where 3D noise exceeds it; 0 disables caves.
	CaveThreshold float64 `yaml:"cave_threshold"`
	CaveScale     float64 `yaml:"cave_scale"`
}

// DefaultTerrainParams returns gently rolling hills with surface heights
// between y=24 and y=48.
func DefaultTerrainParams() TerrainParams {
	return TerrainParams{
		Seed:        1337,
		Scale:       1.0 / 64.0,
		BaseHeight:  24,
		Amplitude:   24,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,

		DirtDepth: 3,
		SandLevel: 26,
		SnowLine:  42,

		CaveThreshold: 0,
		CaveScale:     1.0 / 16.0,
	}
}

// Terrain is a seeded noise height field. It is immutable and its sampler is
// safe for concurrent use.
type Terrain struct {
	params TerrainParams
}

func NewTerrain(params TerrainParams) *Terrain {
	return &Terrain{params: params}
}

func (t *Terrain) Params() TerrainParams {
	return t.params
}

// HeightAt returns the y of the topmost solid block in column (x, z).
func (t *Terrain) HeightAt(x, z int32) int32 {
	p := &t.params
	n := octaveNoise2D(float64(x)*p.Scale, float64(z)*p.Scale, p.Seed, p.Octaves, p.Persistence, p.Lacunarity)
	h := float64(p.BaseHeight) + n*p.Amplitude
	if h < 0 {
		h = 0
	}
	return int32(math.Floor(h))
}

// Block returns the block at pos.
func (t *Terrain) Block(pos voxel.Vec3i) Block {
	h := t.HeightAt(pos.X, pos.Z)
	if pos.Y > h || pos.Y < 0 {
		return Block{}
	}
	if t.carved(pos, h) {
		return Block{}
	}
	return Block{Type: t.layer(pos.Y, h), Shade: t.shade(pos)}
}

// Sampler adapts the terrain to the mesher's sampler contract.
func (t *Terrain) Sampler() voxel.SamplerFunc[Block] {
	return t.Block
}

func (t *Terrain) layer(y, h int32) BlockType {
	p := &t.params
	switch {
	case y == h && h >= p.SnowLine:
		return BlockTypeSnow
	case h <= p.SandLevel && y > h-p.DirtDepth:
		return BlockTypeSand
	case y == h:
		return BlockTypeGrass
	case y > h-p.DirtDepth:
		return BlockTypeDirt
	default:
		return BlockTypeStone
	}
}

// carved keeps the surface and the bedrock row intact.
func (t *Terrain) carved(pos voxel.Vec3i, h int32) bool {
	p := &t.params
	if p.CaveThreshold <= 0 || pos.Y >= h-1 || pos.Y == 0 {
		return false
	}
	n := octaveNoise3D(
		float64(pos.X)*p.CaveScale, float64(pos.Y)*p.CaveScale, float64(pos.Z)*p.CaveScale,
		p.Seed^0x5DEECE66D, 2, 0.5, 2.0,
	)
	return n > p.CaveThreshold
}

// shade jitters brightness per block in [0.85, 1].
func (t *Terrain) shade(pos voxel.Vec3i) float32 {
	j := unit(hash3(int64(pos.X), int64(pos.Y), int64(pos.Z), t.params.Seed))
	return float32(0.85 + 0.15*j)
}
