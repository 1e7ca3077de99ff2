// SPDX-License-Identifier: EPL-2.0

package curve

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
)

// Object is an in-memory Target. It keeps the current value of every
// property and the control points inserted for it.
type Object struct {
	id     string
	props  map[string]any
	tracks map[string][]ControlPoint

	mtx *sync.Mutex
}

func NewObject(id string) *Object {
	return &Object{
		id:     id,
		props:  make(map[string]any),
		tracks: make(map[string][]ControlPoint),
		mtx:    &sync.Mutex{},
	}
}

func (o *Object) ID() string { return o.id }

func (o *Object) Property(name string) (any, bool) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	v, ok := o.props[name]
	return v, ok
}

func (o *Object) SetProperty(name string, value any) error {
	if name == "" {
		return ErrEmptyProperty
	}

	o.mtx.Lock()
	defer o.mtx.Unlock()

	o.props[name] = value
	return nil
}

func (o *Object) InsertControlPoint(name string, frame float64) error {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	v, ok := o.props[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownProperty)
	}

	o.tracks[name] = append(o.tracks[name], ControlPoint{Frame: frame, Value: v})
	return nil
}

// Track returns a copy of the control points recorded for name.
func (o *Object) Track(name string) []ControlPoint {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return slices.Clone(o.tracks[name])
}

// Properties returns the sorted names of every declared property.
func (o *Object) Properties() []string {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	names := make([]string, 0, len(o.props))
	for name := range o.props {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (o *Object) MarshalJSON() ([]byte, error) {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return json.Marshal(struct {
		ID         string                    `json:"id"`
		Properties map[string]any            `json:"properties"`
		Tracks     map[string][]ControlPoint `json:"tracks"`
	}{o.id, o.props, o.tracks})
}

// Scene is an in-memory Store of Objects keyed by id.
type Scene struct {
	objects map[string]*Object

	mtx *sync.Mutex
}

// NewScene creates a scene holding an empty object per id.
func NewScene(ids ...string) *Scene {
	s := &Scene{
		objects: make(map[string]*Object),
		mtx:     &sync.Mutex{},
	}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add returns the object with id, creating it when missing.
func (s *Scene) Add(id string) *Object {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if o, ok := s.objects[id]; ok {
		return o
	}
	o := NewObject(id)
	s.objects[id] = o
	return o
}

func (s *Scene) Object(id string) (*Object, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	o, ok := s.objects[id]
	return o, ok
}

func (s *Scene) Lookup(id string) (Target, error) {
	o, ok := s.Object(id)
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnboundTarget)
	}
	return o, nil
}

// Objects returns every object sorted by id.
func (s *Scene) Objects() []*Object {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]*Object, 0, len(s.objects))
	for _, o := range s.objects {
		out = append(out, o)
	}
	slices.SortFunc(out, func(a, b *Object) int {
		return cmp.Compare(a.id, b.id)
	})
	return out
}

func (s *Scene) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Objects []*Object `json:"objects"`
	}{s.Objects()})
}
