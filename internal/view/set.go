package view

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SupportedSchema is the only views file schema version understood.
const SupportedSchema = "v1"

// ErrUnsupportedSchema is returned for views files of another schema version.
var ErrUnsupportedSchema = errors.New("unsupported views schema_version")

// File is the on-disk layout of a views file.
type File struct {
	SchemaVersion string `yaml:"schema_version"`
	Views         []View `yaml:"views"`
}

// Set holds views by collection name.
type Set struct {
	views map[string]View
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{views: make(map[string]View)}
}

// Add registers v, replacing any view of the same name.
func (s *Set) Add(v View) {
	s.views[v.Name] = v
}

// Get returns the view for a collection.
func (s *Set) Get(name string) (View, bool) {
	v, ok := s.views[name]
	return v, ok
}

// Resolve returns the view for a collection, or an error wrapping
// ErrUnknownView.
func (s *Set) Resolve(name string) (View, error) {
	if v, ok := s.views[name]; ok {
		return v, nil
	}
	return View{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// GetOrFallback returns the view for a collection, or the generic layout.
func (s *Set) GetOrFallback(name string) View {
	if v, ok := s.views[name]; ok {
		return v
	}
	return Fallback(name)
}

// Names returns the registered view names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge overlays the views of other on s.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	for _, v := range other.views {
		s.Add(v)
	}
}

// Parse decodes a views file and validates every view in it.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse views: %w", err)
	}
	if f.SchemaVersion == "" {
		f.SchemaVersion = SupportedSchema
	}
	if f.SchemaVersion != SupportedSchema {
		return nil, fmt.Errorf("%w: %q (want %q)", ErrUnsupportedSchema, f.SchemaVersion, SupportedSchema)
	}
	s := NewSet()
	for _, v := range f.Views {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		s.Add(v)
	}
	return s, nil
}

// Load reads a views file. A missing file yields an empty set.
func Load(path string) (*Set, error) {
	if path == "" {
		return NewSet(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewSet(), nil
		}
		return nil, fmt.Errorf("failed to read views file %s: %w", path, err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadWithBuiltin returns the built-in views overlaid with those in path.
func LoadWithBuiltin(path string) (*Set, error) {
	user, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := Builtin()
	s.Merge(user)
	return s, nil
}
