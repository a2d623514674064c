// Package export writes finished meshes to interchange formats.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"voxmesh/internal/meshing"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrEmptyMesh is returned for meshes without triangles.
var ErrEmptyMesh = errors.New("export: mesh has no triangles")

// Document converts mesh into a single-node glTF scene with POSITION,
// NORMAL and COLOR_0 attributes and uint32 indices.
func Document(mesh meshing.Mesh, name string) (*gltf.Document, error) {
	if mesh.Empty() {
		return nil, ErrEmptyMesh
	}

	positions := make([][3]float32, len(mesh.Vertices))
	normals := make([][3]float32, len(mesh.Vertices))
	colors := make([][3]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
		normals[i] = v.Normal
		colors[i] = v.Color
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxmesh"

	attrs := map[string]uint32{
		gltf.POSITION: modeler.WritePosition(doc, positions),
		gltf.NORMAL:   modeler.WriteNormal(doc, normals),
		gltf.COLOR_0:  modeler.WriteColor(doc, colors),
	}
	indices := modeler.WriteIndices(doc, mesh.Indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indices),
			Attributes: attrs,
			Mode:       gltf.PrimitiveTriangles,
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// WriteGLTF encodes mesh to w, as GLB when binary is set.
func WriteGLTF(w io.Writer, mesh meshing.Mesh, binary bool) error {
	doc, err := Document(mesh, "voxels")
	if err != nil {
		return err
	}
	if !binary {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	return errors.Wrap(enc.Encode(doc), "export: encode gltf")
}

// SaveGLTF writes mesh to path. A .gltf extension selects JSON with an
// embedded buffer; anything else is written as GLB.
func SaveGLTF(path string, mesh meshing.Mesh) error {
	return SaveGLTFAs(path, mesh, !strings.EqualFold(filepath.Ext(path), ".gltf"))
}

// SaveGLTFAs writes mesh to path as GLB or JSON regardless of extension,
// creating parent directories as needed.
func SaveGLTFAs(path string, mesh meshing.Mesh, binary bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "export: create %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "export: create %s", path)
	}

	if err := WriteGLTF(f, mesh, binary); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "export: close %s", path)
}
