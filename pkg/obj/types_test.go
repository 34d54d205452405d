package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaceVertex_String(t *testing.T) {
	tests := []struct {
		fv   FaceVertex
		want string
	}{
		{FaceVertex{VertexIndex: 1}, "1"},
		{FaceVertex{VertexIndex: 1, TextureIndex: 2}, "1/2"},
		{FaceVertex{VertexIndex: 1, NormalIndex: 3}, "1//3"},
		{FaceVertex{VertexIndex: 1, TextureIndex: 2, NormalIndex: 3}, "1/2/3"},
		{FaceVertex{VertexIndex: -1, NormalIndex: -2}, "-1//-2"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fv.String())
		})
	}
}

func TestNewTexture(t *testing.T) {
	tests := []struct {
		name       string
		components []float32
		wantDim    int
	}{
		{"u", []float32{0.5}, 1},
		{"uv", []float32{0.5, 0.25}, 2},
		{"uvw", []float32{0.5, 0.25, 1}, 3},
		{"extra ignored", []float32{0.5, 0.25, 1, 9}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := NewTexture(tt.components...)
			assert.Equal(t, tt.wantDim, tex.Dim)
			assert.Equal(t, float32(0.5), tex.Coord.X())
		})
	}
}

func TestNewVertex(t *testing.T) {
	v := NewVertex(1, 2, 3)
	assert.Equal(t, float32(1), v.W)
	assert.Equal(t, float32(3), v.Vec4().Z())

	v = NewVertex4(1, 2, 3, 4)
	assert.Equal(t, float32(4), v.Vec4().W())
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial("Red")
	assert.Equal(t, "Red", m.Name)
	assert.Equal(t, float32(1), m.Transparency)
	assert.Equal(t, float32(1), m.DiffuseColor.X())
}
