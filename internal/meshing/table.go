package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Template is the geometry of one face configuration in unit-cube space.
// Indices are local to the template's own vertices.
type Template struct {
	Vertices []Vertex
	Indices  []uint32
}

// Table holds one Template per face mask; the mask is the index.
// It is immutable once built and safe to share between goroutines.
type Table [MaskCount]Template

// Quad corners, in the order the winding patterns below expect.
const (
	topLeft = iota
	topRight
	bottomRight
	bottomLeft
)

var (
	frontWinding = [IndicesPerFace]uint32{topLeft, topRight, bottomRight, bottomRight, bottomLeft, topLeft}
	backWinding  = [IndicesPerFace]uint32{topLeft, bottomLeft, bottomRight, bottomRight, topRight, topLeft}
)

type faceQuad struct {
	corners [VerticesPerFace]mgl32.Vec3
	winding *[IndicesPerFace]uint32
}

// Down and Right reuse the corner order of Up and Left and take the mirrored
// winding. Front lists its corners mirrored so that it faces +Z.
var faceQuads = [FaceCount]faceQuad{
	FaceUp: {
		corners: [4]mgl32.Vec3{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
		winding: &frontWinding,
	},
	FaceDown: {
		corners: [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 0, 0}, {0, 0, 0}},
		winding: &backWinding,
	},
	FaceLeft: {
		corners: [4]mgl32.Vec3{{0, 1, 1}, {0, 1, 0}, {0, 0, 0}, {0, 0, 1}},
		winding: &frontWinding,
	},
	FaceRight: {
		corners: [4]mgl32.Vec3{{1, 1, 1}, {1, 1, 0}, {1, 0, 0}, {1, 0, 1}},
		winding: &backWinding,
	},
	FaceFront: {
		corners: [4]mgl32.Vec3{{0, 1, 1}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
		winding: &frontWinding,
	},
	FaceBack: {
		corners: [4]mgl32.Vec3{{0, 1, 0}, {1, 1, 0}, {1, 0, 0}, {0, 0, 0}},
		winding: &frontWinding,
	},
}

// NewTable precomputes the templates for all 64 masks.
func NewTable() *Table {
	t := new(Table)
	for m := 0; m < MaskCount; m++ {
		mask := Mask(m)
		tpl := &t[m]
		n := mask.Count()
		tpl.Vertices = make([]Vertex, 0, n*VerticesPerFace)
		tpl.Indices = make([]uint32, 0, n*IndicesPerFace)

		for f := Face(0); f < FaceCount; f++ {
			if !mask.Has(f) {
				continue
			}
			tpl.appendFace(f)
		}
	}
	return t
}

func (tpl *Template) appendFace(f Face) {
	q := &faceQuads[f]
	base := uint32(len(tpl.Vertices))
	for _, i := range q.winding {
		tpl.Indices = append(tpl.Indices, base+i)
	}
	normal := f.Normal()
	for _, c := range q.corners {
		tpl.Vertices = append(tpl.Vertices, Vertex{Position: c, Normal: normal})
	}
}

// Lookup returns the template for m. Bits above the six face bits are ignored.
func (t *Table) Lookup(m Mask) *Template {
	return &t[m&AllFaces]
}
