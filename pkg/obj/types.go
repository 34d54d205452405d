// Package obj accumulates Wavefront OBJ geometry and resolves faces into
// material groups as parse events arrive.
package obj

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a geometric vertex (OBJ "v").
type Vertex struct {
	Position mgl32.Vec3
	W        float32 // Homogeneous weight, 1 unless authored
}

// NewVertex returns a vertex with W = 1.
func NewVertex(x, y, z float32) Vertex {
	return Vertex{Position: mgl32.Vec3{x, y, z}, W: 1}
}

// NewVertex4 returns a vertex with an explicit weight.
func NewVertex4(x, y, z, w float32) Vertex {
	return Vertex{Position: mgl32.Vec3{x, y, z}, W: w}
}

// Vec4 returns the position with its weight.
func (v Vertex) Vec4() mgl32.Vec4 {
	return v.Position.Vec4(v.W)
}

// Texture is a texture coordinate (OBJ "vt").
type Texture struct {
	Coord mgl32.Vec3
	Dim   int // Number of authored components (1-3)
}

// NewTexture builds a texture coordinate from 1 to 3 components.
// Extra components are ignored.
func NewTexture(components ...float32) Texture {
	var t Texture
	for i, c := range components {
		if i == 3 {
			break
		}
		t.Coord[i] = c
		t.Dim++
	}
	return t
}

// Normal is a vertex normal (OBJ "vn").
type Normal struct {
	Direction mgl32.Vec3
}

// NewNormal returns a normal with the given direction.
func NewNormal(x, y, z float32) Normal {
	return Normal{Direction: mgl32.Vec3{x, y, z}}
}

// FaceVertex references one corner of a face. Indices are 1-based as
// authored; 0 means the texture or normal reference is absent.
type FaceVertex struct {
	VertexIndex  int
	TextureIndex int
	NormalIndex  int
}

// String formats the corner in OBJ v/vt/vn notation.
func (fv FaceVertex) String() string {
	switch {
	case fv.TextureIndex == 0 && fv.NormalIndex == 0:
		return fmt.Sprintf("%d", fv.VertexIndex)
	case fv.NormalIndex == 0:
		return fmt.Sprintf("%d/%d", fv.VertexIndex, fv.TextureIndex)
	case fv.TextureIndex == 0:
		return fmt.Sprintf("%d//%d", fv.VertexIndex, fv.NormalIndex)
	default:
		return fmt.Sprintf("%d/%d/%d", fv.VertexIndex, fv.TextureIndex, fv.NormalIndex)
	}
}

// Face is an ordered polygon of face vertices.
type Face struct {
	Vertices []FaceVertex
}

// NewFace returns a face over the given corners.
func NewFace(vertices ...FaceVertex) Face {
	return Face{Vertices: vertices}
}

// Len returns the number of corners.
func (f Face) Len() int {
	return len(f.Vertices)
}

// At returns the i-th corner (0-based).
func (f Face) At(i int) FaceVertex {
	return f.Vertices[i]
}

// Material is a named entry from a material library (MTL "newmtl").
// Only Name is interpreted here; the rest is carried for consumers.
type Material struct {
	Name string

	AmbientColor        mgl32.Vec3 // Ka
	DiffuseColor        mgl32.Vec3 // Kd
	SpecularColor       mgl32.Vec3 // Ks
	SpecularCoefficient float32    // Ns
	Transparency        float32    // d
	IlluminationModel   int        // illum

	AmbientTextureMap           string // map_Ka
	DiffuseTextureMap           string // map_Kd
	SpecularTextureMap          string // map_Ks
	SpecularHighlightTextureMap string // map_Ns
	AlphaTextureMap             string // map_d
	BumpMap                     string // map_bump
}

// NewMaterial returns a material with MTL defaults (opaque, white diffuse).
func NewMaterial(name string) *Material {
	return &Material{
		Name:         name,
		DiffuseColor: mgl32.Vec3{1, 1, 1},
		Transparency: 1,
	}
}

// Group is a named set of faces sharing at most one material.
type Group struct {
	name     string
	material *Material
	faces    []Face
}

func newGroup(name string) *Group {
	return &Group{name: name}
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// Material returns the attached material, or nil.
func (g *Group) Material() *Material {
	return g.material
}

// Faces returns the faces in insertion order.
func (g *Group) Faces() []Face {
	return g.faces
}

// FaceCount returns the number of faces in the group.
func (g *Group) FaceCount() int {
	return len(g.faces)
}

func (g *Group) addFace(f Face) {
	g.faces = append(g.faces, f)
}
