package meshes

import (
	"errors"
	"testing"
)

func TestVertexCounts(t *testing.T) {
	want := map[ID]int{
		Cube:    36,
		Plane:   6,
		Pyramid: 18,
		Pad:     36,
		Prong:   36,
	}
	for _, id := range All() {
		data, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", id, err)
		}
		n, err := VertexCount(data)
		if err != nil {
			t.Fatalf("VertexCount(%s): %v", id, err)
		}
		if n != want[id] {
			t.Errorf("%s: expected %d vertices, got %d", id, want[id], n)
		}
	}
	if len(All()) != len(want) {
		t.Errorf("Expected %d meshes, got %d", len(want), len(All()))
	}
}

func TestVertexCountRejectsPartialVertex(t *testing.T) {
	_, err := VertexCount(make([]float32, FloatsPerVertex+3))
	if !errors.Is(err, ErrBadLayout) {
		t.Fatalf("Expected ErrBadLayout, got %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("teapot"); err == nil {
		t.Fatal("Expected error for unknown mesh")
	}
}

func TestLayoutOffsets(t *testing.T) {
	if Stride != 32 {
		t.Errorf("Expected stride 32, got %d", Stride)
	}
	if NormalOffset != 12 || UVOffset != 24 {
		t.Errorf("Expected offsets 12/24, got %d/%d", NormalOffset, UVOffset)
	}
}

func TestCubeIsUnitSized(t *testing.T) {
	for i := 0; i < len(cubeVertices); i += FloatsPerVertex {
		for j := 0; j < FloatsPerPosition; j++ {
			v := cubeVertices[i+j]
			if v != 0.5 && v != -0.5 {
				t.Fatalf("vertex %d component %d = %v, want +-0.5", i/FloatsPerVertex, j, v)
			}
		}
	}
}
