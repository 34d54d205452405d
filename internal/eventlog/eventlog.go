// Package eventlog reads recorded accumulator event streams from YAML and
// writes scene snapshots back out.
package eventlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objstore/pkg/obj"
)

// Event log errors.
var (
	ErrUnknownEventKind = errors.New("unknown event kind")
	ErrInvalidEvent     = errors.New("invalid event")
)

// Log is the top-level document of an event log file.
type Log struct {
	Events []Record `yaml:"events"`
}

// Record is one serialized event. Only the fields relevant to Kind are set.
type Record struct {
	Kind     string          `yaml:"kind"`
	Name     string          `yaml:"name,omitempty"`     // group, usemtl
	V        []float32       `yaml:"v,omitempty"`        // vertex
	VT       []float32       `yaml:"vt,omitempty"`       // texture
	VN       []float32       `yaml:"vn,omitempty"`       // normal
	F        []string        `yaml:"f,omitempty"`        // face, v/vt/vn tokens
	Material *MaterialRecord `yaml:"material,omitempty"` // material
}

// MaterialRecord mirrors obj.Material using MTL statement names.
type MaterialRecord struct {
	Name    string    `yaml:"name"`
	Ka      []float32 `yaml:"ka,omitempty"`
	Kd      []float32 `yaml:"kd,omitempty"`
	Ks      []float32 `yaml:"ks,omitempty"`
	Ns      *float32  `yaml:"ns,omitempty"`
	D       *float32  `yaml:"d,omitempty"`
	Illum   *int      `yaml:"illum,omitempty"`
	MapKa   string    `yaml:"map_ka,omitempty"`
	MapKd   string    `yaml:"map_kd,omitempty"`
	MapKs   string    `yaml:"map_ks,omitempty"`
	MapNs   string    `yaml:"map_ns,omitempty"`
	MapD    string    `yaml:"map_d,omitempty"`
	MapBump string    `yaml:"map_bump,omitempty"`
}

// DecodeFile reads an event log from path.
func DecodeFile(path string) ([]obj.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads an event log document and converts it to events.
func Decode(r io.Reader) ([]obj.Event, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Log
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding event log: %w", err)
	}

	events := make([]obj.Event, 0, len(doc.Events))
	for i, rec := range doc.Events {
		ev, err := rec.Event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Event converts the record to an accumulator event.
func (r Record) Event() (obj.Event, error) {
	switch r.Kind {
	case "vertex", "v":
		switch len(r.V) {
		case 3:
			return obj.AddVertex{Vertex: obj.NewVertex(r.V[0], r.V[1], r.V[2])}, nil
		case 4:
			return obj.AddVertex{Vertex: obj.NewVertex4(r.V[0], r.V[1], r.V[2], r.V[3])}, nil
		}
		return nil, fmt.Errorf("%w: vertex needs 3 or 4 coordinates, got %d", ErrInvalidEvent, len(r.V))

	case "texture", "vt":
		if len(r.VT) < 1 || len(r.VT) > 3 {
			return nil, fmt.Errorf("%w: texture needs 1 to 3 components, got %d", ErrInvalidEvent, len(r.VT))
		}
		return obj.AddTexture{Texture: obj.NewTexture(r.VT...)}, nil

	case "normal", "vn":
		if len(r.VN) != 3 {
			return nil, fmt.Errorf("%w: normal needs 3 components, got %d", ErrInvalidEvent, len(r.VN))
		}
		return obj.AddNormal{Normal: obj.NewNormal(r.VN[0], r.VN[1], r.VN[2])}, nil

	case "face", "f":
		face, err := parseFace(r.F)
		if err != nil {
			return nil, err
		}
		return obj.AddFace{Face: face}, nil

	case "group", "g":
		return obj.StartGroup{Name: r.Name}, nil

	case "usemtl":
		return obj.SetMaterial{Name: r.Name}, nil

	case "material", "newmtl":
		if r.Material == nil {
			return nil, fmt.Errorf("%w: material event without material", ErrInvalidEvent)
		}
		m, err := r.Material.toMaterial()
		if err != nil {
			return nil, err
		}
		return obj.AddMaterial{Material: m}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEventKind, r.Kind)
}

func parseFace(tokens []string) (obj.Face, error) {
	if len(tokens) == 0 {
		return obj.Face{}, fmt.Errorf("%w: face without vertices", ErrInvalidEvent)
	}
	vertices := make([]obj.FaceVertex, 0, len(tokens))
	for _, tok := range tokens {
		fv, err := parseFaceVertex(tok)
		if err != nil {
			return obj.Face{}, err
		}
		vertices = append(vertices, fv)
	}
	return obj.NewFace(vertices...), nil
}

// parseFaceVertex parses "v", "v/vt", "v//vn" or "v/vt/vn".
func parseFaceVertex(tok string) (obj.FaceVertex, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 || parts[0] == "" {
		return obj.FaceVertex{}, fmt.Errorf("%w: face vertex %q", ErrInvalidEvent, tok)
	}

	var idx [3]int
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n == 0 {
			return obj.FaceVertex{}, fmt.Errorf("%w: face vertex %q", ErrInvalidEvent, tok)
		}
		idx[i] = n
	}
	return obj.FaceVertex{VertexIndex: idx[0], TextureIndex: idx[1], NormalIndex: idx[2]}, nil
}

func (m *MaterialRecord) toMaterial() (*obj.Material, error) {
	mat := obj.NewMaterial(m.Name)

	for _, c := range []struct {
		key string
		src []float32
		dst *mgl32.Vec3
	}{
		{"ka", m.Ka, &mat.AmbientColor},
		{"kd", m.Kd, &mat.DiffuseColor},
		{"ks", m.Ks, &mat.SpecularColor},
	} {
		if c.src == nil {
			continue
		}
		if len(c.src) != 3 {
			return nil, fmt.Errorf("%w: material %q %s needs 3 components", ErrInvalidEvent, m.Name, c.key)
		}
		*c.dst = mgl32.Vec3{c.src[0], c.src[1], c.src[2]}
	}

	if m.Ns != nil {
		mat.SpecularCoefficient = *m.Ns
	}
	if m.D != nil {
		mat.Transparency = *m.D
	}
	if m.Illum != nil {
		mat.IlluminationModel = *m.Illum
	}
	mat.AmbientTextureMap = m.MapKa
	mat.DiffuseTextureMap = m.MapKd
	mat.SpecularTextureMap = m.MapKs
	mat.SpecularHighlightTextureMap = m.MapNs
	mat.AlphaTextureMap = m.MapD
	mat.BumpMap = m.MapBump
	return mat, nil
}
