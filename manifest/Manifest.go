// Package manifest declares routes in YAML instead of Go types.
//
// A manifest lists templates with their typed parameters:
//
//	stack_param: stack
//	conflict_mode: first_match
//	routes:
//	  - name: Profile
//	    path: profile/{userId}
//	    params:
//	      - {name: userId, type: long}
//	      - {name: tab, type: enum, values: [POSTS, LIKES], optional: true}
//
// Every route gets a factory that coerces the declared parameters and
// returns an rlink.DynamicRoute.
package manifest

import (
	"errors"
	"io"
	"os"
	"reflect"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"

	"github.com/rohanthewiz/rlink"
)

// Param declares one parameter of a route.
type Param struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Optional bool     `yaml:"optional,omitempty"`
	Values   []string `yaml:"values,omitempty"`
}

// Route declares one template and the parameters its factory reads.
type Route struct {
	Name   string  `yaml:"name"`
	Path   string  `yaml:"path"`
	Params []Param `yaml:"params,omitempty"`
}

// Manifest is the decoded form of a route manifest file.
// The settings are optional and override rlink.DefaultConfig.
type Manifest struct {
	StackParam   string  `yaml:"stack_param,omitempty"`
	Strategy     string  `yaml:"strategy,omitempty"`
	ConflictMode string  `yaml:"conflict_mode,omitempty"`
	Routes       []Route `yaml:"routes"`
}

// Load decodes and validates a manifest. Unknown keys are rejected.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, serr.Wrap(err, "unable to decode route manifest")
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile is Load for a file on disk.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, serr.Wrap(err, "unable to open route manifest", "path", path)
	}
	defer f.Close()

	return Load(f)
}

// Config overlays the manifest settings on base.
func (m *Manifest) Config(base rlink.Config) rlink.Config {
	if m.StackParam != "" {
		base.StackParam = m.StackParam
	}
	if m.Strategy != "" {
		base.Strategy = m.Strategy
	}
	if m.ConflictMode != "" {
		base.ConflictMode = m.ConflictMode
	}
	return base
}

// Entries builds one registry entry per route, in declaration order.
func (m *Manifest) Entries() ([]rlink.Entry, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	entries := make([]rlink.Entry, 0, len(m.Routes))
	for _, route := range m.Routes {
		entries = append(entries, rlink.Entry{
			Template:  route.Path,
			Factory:   newDynamicFactory(route),
			RouteType: reflect.TypeFor[rlink.DynamicRoute](),
		})
	}
	return entries, nil
}

// Registry builds a registry from the manifest routes using the
// manifest's conflict mode.
func (m *Manifest) Registry() (*rlink.Registry, error) {
	entries, err := m.Entries()
	if err != nil {
		return nil, err
	}

	mode, _ := rlink.ParseConflictMode(m.ConflictMode)
	reg, err := rlink.NewRegistry(entries, rlink.WithConflictMode(mode))
	if err != nil {
		return nil, serr.Wrap(err, "unable to build registry from manifest")
	}
	return reg, nil
}
