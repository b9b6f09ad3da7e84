// Package meshes holds the fixed vertex data of the desk scene.
package meshes

import (
	"errors"
	"fmt"
)

const (
	FloatsPerPosition = 3
	FloatsPerNormal   = 3
	FloatsPerUV       = 2
	FloatsPerVertex   = FloatsPerPosition + FloatsPerNormal + FloatsPerUV

	// Stride is the byte distance between consecutive vertices
	Stride = FloatsPerVertex * 4
	// NormalOffset and UVOffset are byte offsets inside one vertex
	NormalOffset = FloatsPerPosition * 4
	UVOffset     = (FloatsPerPosition + FloatsPerNormal) * 4
)

// ErrBadLayout is returned for data that is not a whole number of vertices.
var ErrBadLayout = errors.New("vertex data is not a multiple of the vertex layout")

// ID names a mesh
type ID string

const (
	Cube    ID = "cube"
	Plane   ID = "plane"
	Pyramid ID = "pyramid"
	Pad     ID = "pad"
	Prong   ID = "prong"
)

var catalog = map[ID][]float32{
	Cube:    cubeVertices,
	Plane:   planeVertices,
	Pyramid: pyramidVertices,
	Pad:     padVertices,
	Prong:   prongVertices,
}

// All lists every mesh in upload order
func All() []ID {
	return []ID{Plane, Cube, Pyramid, Pad, Prong}
}

// Lookup returns the vertex data for id.
func Lookup(id ID) ([]float32, error) {
	data, ok := catalog[id]
	if !ok {
		return nil, fmt.Errorf("unknown mesh %q", id)
	}
	return data, nil
}

// VertexCount returns the number of vertices in interleaved data.
func VertexCount(data []float32) (int, error) {
	if len(data)%FloatsPerVertex != 0 {
		return 0, fmt.Errorf("%w: %d floats", ErrBadLayout, len(data))
	}
	return len(data) / FloatsPerVertex, nil
}
