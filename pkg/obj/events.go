package obj

import (
	"errors"
	"fmt"
)

// Sink receives parse events in file order. DataStore implements it.
type Sink interface {
	AddVertex(Vertex)
	AddTexture(Texture)
	AddNormal(Normal)
	AddFace(Face)
	StartGroup(name string)
	AddMaterial(*Material)
	SetMaterial(name string) error
}

var _ Sink = (*DataStore)(nil)

// Event is a single parse event emitted by a scanner.
type Event interface {
	Apply(Sink) error
	Kind() string
}

// AddVertex carries an OBJ "v" statement.
type AddVertex struct{ Vertex Vertex }

// AddTexture carries an OBJ "vt" statement.
type AddTexture struct{ Texture Texture }

// AddNormal carries an OBJ "vn" statement.
type AddNormal struct{ Normal Normal }

// AddFace carries an OBJ "f" statement.
type AddFace struct{ Face Face }

// StartGroup carries an OBJ "g" statement.
type StartGroup struct{ Name string }

// AddMaterial carries one "newmtl" entry from a loaded material library.
type AddMaterial struct{ Material *Material }

// SetMaterial carries an OBJ "usemtl" statement.
type SetMaterial struct{ Name string }

func (e AddVertex) Apply(s Sink) error   { s.AddVertex(e.Vertex); return nil }
func (e AddTexture) Apply(s Sink) error  { s.AddTexture(e.Texture); return nil }
func (e AddNormal) Apply(s Sink) error   { s.AddNormal(e.Normal); return nil }
func (e AddFace) Apply(s Sink) error     { s.AddFace(e.Face); return nil }
func (e StartGroup) Apply(s Sink) error  { s.StartGroup(e.Name); return nil }
func (e AddMaterial) Apply(s Sink) error { s.AddMaterial(e.Material); return nil }
func (e SetMaterial) Apply(s Sink) error { return s.SetMaterial(e.Name) }

func (AddVertex) Kind() string   { return "vertex" }
func (AddTexture) Kind() string  { return "texture" }
func (AddNormal) Kind() string   { return "normal" }
func (AddFace) Kind() string     { return "face" }
func (StartGroup) Kind() string  { return "group" }
func (AddMaterial) Kind() string { return "material" }
func (SetMaterial) Kind() string { return "usemtl" }

// EventError reports the event that stopped a replay.
type EventError struct {
	Index int // 0-based position in the event stream
	Event Event
	Err   error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("event %d (%s): %v", e.Index, e.Event.Kind(), e.Err)
}

func (e *EventError) Unwrap() error {
	return e.Err
}

// ReplayOption configures Replay.
type ReplayOption func(*replayConfig)

type replayConfig struct {
	skipUnknown bool
	onSkip      func(*EventError)
}

// SkipUnknownMaterials makes Replay continue past usemtl events naming
// unregistered materials. onSkip, if non-nil, is called for each skip.
func SkipUnknownMaterials(onSkip func(*EventError)) ReplayOption {
	return func(c *replayConfig) {
		c.skipUnknown = true
		c.onSkip = onSkip
	}
}

// Replay applies events to sink in order and stops at the first failure.
func Replay(sink Sink, events []Event, opts ...ReplayOption) error {
	var cfg replayConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	for i, ev := range events {
		err := ev.Apply(sink)
		if err == nil {
			continue
		}
		evErr := &EventError{Index: i, Event: ev, Err: err}
		if cfg.skipUnknown && errors.Is(err, ErrUnknownMaterial) {
			if cfg.onSkip != nil {
				cfg.onSkip(evErr)
			}
			continue
		}
		return evErr
	}
	return nil
}
