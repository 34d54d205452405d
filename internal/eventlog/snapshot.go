package eventlog

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/objstore/pkg/obj"
)

// Snapshot is the YAML form of an accumulated scene.
type Snapshot struct {
	Vertices  int             `yaml:"vertices"`
	Textures  int             `yaml:"textures"`
	Normals   int             `yaml:"normals"`
	Materials []string        `yaml:"materials"`
	Groups    []GroupSnapshot `yaml:"groups"`
}

// GroupSnapshot describes one group and its faces.
type GroupSnapshot struct {
	Name     string     `yaml:"name"`
	Material string     `yaml:"material,omitempty"`
	Faces    [][]string `yaml:"faces,flow"`
}

// NewSnapshot builds a snapshot from a result. Empty groups are dropped
// unless includeEmpty is set.
func NewSnapshot(r obj.Result, includeEmpty bool) Snapshot {
	snap := Snapshot{
		Vertices:  len(r.Vertices),
		Textures:  len(r.Textures),
		Normals:   len(r.Normals),
		Materials: make([]string, 0, len(r.Materials)),
		Groups:    make([]GroupSnapshot, 0, len(r.Groups)),
	}
	for _, m := range r.Materials {
		snap.Materials = append(snap.Materials, m.Name)
	}

	for _, g := range r.Groups {
		if g.FaceCount() == 0 && !includeEmpty {
			continue
		}
		gs := GroupSnapshot{Name: g.Name(), Faces: make([][]string, 0, g.FaceCount())}
		if m := g.Material(); m != nil {
			gs.Material = m.Name
		}
		for _, f := range g.Faces() {
			tokens := make([]string, f.Len())
			for i := range tokens {
				tokens[i] = f.At(i).String()
			}
			gs.Faces = append(gs.Faces, tokens)
		}
		snap.Groups = append(snap.Groups, gs)
	}
	return snap
}

// EncodeSnapshot writes the snapshot as YAML.
func EncodeSnapshot(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return err
	}
	return enc.Close()
}
