package obj

// Vertices returns the vertices in submission order.
func (s *DataStore) Vertices() []Vertex { return s.vertices }

// Textures returns the texture coordinates in submission order.
func (s *DataStore) Textures() []Texture { return s.textures }

// Normals returns the normals in submission order.
func (s *DataStore) Normals() []Normal { return s.normals }

// Materials returns the registered materials in submission order.
func (s *DataStore) Materials() []*Material { return s.materials }

// Groups returns every group ever started, including abandoned and empty ones.
func (s *DataStore) Groups() []*Group { return s.groups }

// Vertex returns the vertex at a 1-based index.
func (s *DataStore) Vertex(index int) (Vertex, bool) {
	return at(s.vertices, index)
}

// Texture returns the texture coordinate at a 1-based index.
func (s *DataStore) Texture(index int) (Texture, bool) {
	return at(s.textures, index)
}

// Normal returns the normal at a 1-based index.
func (s *DataStore) Normal(index int) (Normal, bool) {
	return at(s.normals, index)
}

func at[T any](items []T, index int) (T, bool) {
	var zero T
	if index < 1 || index > len(items) {
		return zero, false
	}
	return items[index-1], true
}

// CurrentGroup returns the group the next face will be appended to, or nil
// if none is open.
func (s *DataStore) CurrentGroup() *Group {
	if s.current == noGroup {
		return nil
	}
	return s.groups[s.current]
}

// GroupForMaterial returns the group currently holding the named material.
// The name must match the material's registered name exactly.
func (s *DataStore) GroupForMaterial(name string) *Group {
	idx, ok := s.groupByMaterial[name]
	if !ok {
		return nil
	}
	return s.groups[idx]
}

// FaceCount returns the total number of faces across all groups.
func (s *DataStore) FaceCount() int {
	n := 0
	for _, g := range s.groups {
		n += g.FaceCount()
	}
	return n
}

// Stats summarizes registry sizes.
type Stats struct {
	Vertices  int
	Textures  int
	Normals   int
	Materials int
	Groups    int
	Faces     int
}

// Stats returns the current registry sizes.
func (s *DataStore) Stats() Stats {
	return Stats{
		Vertices:  len(s.vertices),
		Textures:  len(s.textures),
		Normals:   len(s.normals),
		Materials: len(s.materials),
		Groups:    len(s.groups),
		Faces:     s.FaceCount(),
	}
}

// Result is the final scene handed to a consumer once the event stream ends.
type Result struct {
	Vertices  []Vertex
	Textures  []Texture
	Normals   []Normal
	Materials []*Material
	Groups    []*Group
}

// Result returns the accumulated registries. The store should not receive
// further events afterwards, since the slices are shared.
func (s *DataStore) Result() Result {
	return Result{
		Vertices:  s.vertices,
		Textures:  s.textures,
		Normals:   s.normals,
		Materials: s.materials,
		Groups:    s.groups,
	}
}
