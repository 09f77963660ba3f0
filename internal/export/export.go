// Package export writes bar mesh snapshots to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/radialbar/pkg/radialbar"
)

// Format selects the output encoding.
type Format string

const (
	FormatOBJ  Format = "obj"
	FormatYAML Format = "yaml"
)

// Write encodes mesh in the given format.
func Write(w io.Writer, f Format, name string, mesh radialbar.MeshData) error {
	switch f {
	case FormatOBJ:
		return WriteOBJ(w, name, mesh)
	case FormatYAML:
		return WriteYAML(w, name, mesh)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// WriteOBJ writes mesh as a Wavefront OBJ object. Face indices are 1-based
// and reference position, UV and normal of the same vertex.
func WriteOBJ(w io.Writer, name string, mesh radialbar.MeshData) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# radial bar: %d vertices, %d triangles\n", mesh.VertexCount(), mesh.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)
	for _, p := range mesh.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p[0], p[1], p[2])
	}
	for _, uv := range mesh.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// Dump is the YAML shape of a mesh snapshot.
type Dump struct {
	Name      string       `yaml:"name"`
	Vertices  int          `yaml:"vertices"`
	Triangles int          `yaml:"triangles"`
	Positions [][3]float32 `yaml:"positions,flow"`
	Indices   [][3]uint32  `yaml:"indices,flow"`
}

// NewDump builds a Dump from a mesh snapshot.
func NewDump(name string, mesh radialbar.MeshData) Dump {
	d := Dump{
		Name:      name,
		Vertices:  mesh.VertexCount(),
		Triangles: mesh.TriangleCount(),
		Positions: mesh.Positions,
		Indices:   make([][3]uint32, 0, mesh.TriangleCount()),
	}
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		d.Indices = append(d.Indices, [3]uint32{mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]})
	}
	return d
}

// WriteYAML writes mesh as a YAML document.
func WriteYAML(w io.Writer, name string, mesh radialbar.MeshData) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDump(name, mesh)); err != nil {
		return fmt.Errorf("encoding mesh %q: %w", name, err)
	}
	return enc.Close()
}
