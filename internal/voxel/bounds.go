package voxel

import (
	"github.com/pkg/errors"
)

// ErrInvalidBounds is returned when a box is empty or inverted on any axis.
var ErrInvalidBounds = errors.New("voxel: invalid bounds")

// Bounds is the half-open integer box [From, To) on every axis.
type Bounds struct {
	From Vec3i
	To   Vec3i
}

// NewBounds validates from < to componentwise.
func NewBounds(from, to Vec3i) (Bounds, error) {
	b := Bounds{From: from, To: to}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

// MustBounds is NewBounds for literals known to be valid; it panics otherwise.
func MustBounds(from, to Vec3i) Bounds {
	b, err := NewBounds(from, to)
	if err != nil {
		panic(err)
	}
	return b
}

// Validate reports ErrInvalidBounds, naming the first offending axis.
func (b Bounds) Validate() error {
	switch {
	case b.From.X >= b.To.X:
		return errors.Wrapf(ErrInvalidBounds, "x: from %d >= to %d", b.From.X, b.To.X)
	case b.From.Y >= b.To.Y:
		return errors.Wrapf(ErrInvalidBounds, "y: from %d >= to %d", b.From.Y, b.To.Y)
	case b.From.Z >= b.To.Z:
		return errors.Wrapf(ErrInvalidBounds, "z: from %d >= to %d", b.From.Z, b.To.Z)
	}
	return nil
}

// Contains reports whether p lies inside the box.
func (b Bounds) Contains(p Vec3i) bool {
	return p.X >= b.From.X && p.X < b.To.X &&
		p.Y >= b.From.Y && p.Y < b.To.Y &&
		p.Z >= b.From.Z && p.Z < b.To.Z
}

// Size returns the extent along each axis.
func (b Bounds) Size() Vec3i {
	return b.To.Sub(b.From)
}

// Volume returns the number of cells in the box.
func (b Bounds) Volume() int {
	s := b.Size()
	if s.X <= 0 || s.Y <= 0 || s.Z <= 0 {
		return 0
	}
	return int(s.X) * int(s.Y) * int(s.Z)
}

// Split cuts the box into tiles of at most tile cells per axis. Tiles are
// returned z outermost, x innermost, matching Each. Edge tiles are clipped.
func (b Bounds) Split(tile Vec3i) ([]Bounds, error) {
	if tile.X <= 0 || tile.Y <= 0 || tile.Z <= 0 {
		return nil, errors.Errorf("voxel: tile size %v must be positive", tile)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	// Steps run in int64 so boxes ending near MaxInt32 do not wrap.
	var tiles []Bounds
	for z := int64(b.From.Z); z < int64(b.To.Z); z += int64(tile.Z) {
		for y := int64(b.From.Y); y < int64(b.To.Y); y += int64(tile.Y) {
			for x := int64(b.From.X); x < int64(b.To.X); x += int64(tile.X) {
				from := Vec3i{int32(x), int32(y), int32(z)}
				to := Vec3i{
					int32(min(x+int64(tile.X), int64(b.To.X))),
					int32(min(y+int64(tile.Y), int64(b.To.Y))),
					int32(min(z+int64(tile.Z), int64(b.To.Z))),
				}
				tiles = append(tiles, Bounds{From: from, To: to})
			}
		}
	}
	return tiles, nil
}
