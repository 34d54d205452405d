package obj

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// DefaultGroupName names the group created for faces that arrive before
// any group was started.
const DefaultGroupName = "default"

// ErrUnknownMaterial is returned by SetMaterial when no registered material
// matches the requested name exactly or case-insensitively.
var ErrUnknownMaterial = errors.New("unknown material")

// noGroup marks the absence of a current group.
const noGroup = -1

// DataStore accumulates the geometry, groups and materials of one OBJ load.
//
// A DataStore is not safe for concurrent use. Events must be delivered in
// file order from a single goroutine, since material resolution depends on
// earlier registrations.
type DataStore struct {
	vertices  []Vertex
	textures  []Texture
	normals   []Normal
	materials []*Material

	materialsByName   map[string]*Material
	materialsByFolded map[string]*Material

	groups          []*Group
	current         int
	groupByMaterial map[string]int // material name -> index into groups

	log *zap.Logger
}

// Option configures a DataStore.
type Option func(*DataStore)

// WithLogger sets the logger used for group resolution tracing.
func WithLogger(log *zap.Logger) Option {
	return func(s *DataStore) {
		if log != nil {
			s.log = log
		}
	}
}

// NewDataStore returns an empty DataStore.
func NewDataStore(opts ...Option) *DataStore {
	s := &DataStore{
		materialsByName:   make(map[string]*Material),
		materialsByFolded: make(map[string]*Material),
		current:           noGroup,
		groupByMaterial:   make(map[string]int),
		log:               zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddVertex appends a vertex.
func (s *DataStore) AddVertex(v Vertex) {
	s.vertices = append(s.vertices, v)
}

// AddTexture appends a texture coordinate.
func (s *DataStore) AddTexture(t Texture) {
	s.textures = append(s.textures, t)
}

// AddNormal appends a normal.
func (s *DataStore) AddNormal(n Normal) {
	s.normals = append(s.normals, n)
}

// AddMaterial registers a material. Duplicate names are kept; lookups
// resolve to the first one registered. A nil material is ignored.
func (s *DataStore) AddMaterial(m *Material) {
	if m == nil {
		return
	}
	s.materials = append(s.materials, m)
	if _, ok := s.materialsByName[m.Name]; !ok {
		s.materialsByName[m.Name] = m
	}
	key := foldKey(m.Name)
	if _, ok := s.materialsByFolded[key]; !ok {
		s.materialsByFolded[key] = m
	}
}

// StartGroup begins a new group and makes it current. An existing group
// with the same name is not reopened.
func (s *DataStore) StartGroup(name string) {
	s.pushGroup(name)
}

// AddFace appends a face to the current group, creating the default group
// if none is open.
func (s *DataStore) AddFace(f Face) {
	s.pushGroupIfNeeded()
	s.groups[s.current].addFace(f)
}

// SetMaterial switches the group receiving subsequent faces to the one
// holding the named material, assigning or creating a group as needed.
// Faces already committed to a group are never moved.
func (s *DataStore) SetMaterial(name string) error {
	m, ok := s.lookupMaterial(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}

	if idx, ok := s.groupByMaterial[m.Name]; ok {
		s.current = idx
		return nil
	}

	if s.current != noGroup {
		g := s.groups[s.current]
		switch g.material {
		case nil:
			s.assign(s.current, m)
			return nil
		case m:
			s.groupByMaterial[m.Name] = s.current
			return nil
		default:
			s.log.Debug("abandoning group",
				zap.String("group", g.name),
				zap.String("material", g.material.Name),
				zap.String("requested", m.Name))
			s.current = noGroup
		}
	}

	s.pushGroup(fmt.Sprintf("%s (%s)", DefaultGroupName, m.Name))
	s.assign(s.current, m)
	return nil
}

// lookupMaterial resolves name exactly, then case-insensitively.
func (s *DataStore) lookupMaterial(name string) (*Material, bool) {
	if m, ok := s.materialsByName[name]; ok {
		return m, true
	}
	m, ok := s.materialsByFolded[foldKey(name)]
	return m, ok
}

// foldKey maps each rune through its simple upper and lower case, so names
// match only when they differ rune-by-rune in case. "straße" and "STRASSE"
// stay distinct.
func foldKey(name string) string {
	return strings.Map(func(r rune) rune {
		return unicode.ToLower(unicode.ToUpper(r))
	}, name)
}

func (s *DataStore) assign(idx int, m *Material) {
	g := s.groups[idx]
	g.material = m
	s.groupByMaterial[m.Name] = idx
	s.log.Debug("material assigned",
		zap.String("group", g.name),
		zap.String("material", m.Name))
}

// pushGroupIfNeeded makes sure a face always has a group to land in.
func (s *DataStore) pushGroupIfNeeded() {
	if s.current == noGroup {
		s.pushGroup(DefaultGroupName)
	}
}

func (s *DataStore) pushGroup(name string) {
	s.groups = append(s.groups, newGroup(name))
	s.current = len(s.groups) - 1
	s.log.Debug("group started", zap.String("group", name), zap.Int("index", s.current))
}
