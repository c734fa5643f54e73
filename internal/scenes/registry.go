// Package scenes holds the named scenes the CLIs and the inspector can load.
package scenes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/coreman2200/arcanim/internal/timeline"
)

// ErrUnknownScene is returned by Build for names nobody registered.
var ErrUnknownScene = errors.New("unknown scene")

// Def describes one scene. Build authors it into an empty scene.
type Def struct {
	Name    string
	Summary string
	Build   func(sc *timeline.Scene)
}

// Registry maps scene names to definitions.
type Registry struct{ m map[string]Def }

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{m: map[string]Def{}} }

// Register adds d, replacing any scene of the same name.
func (r *Registry) Register(d Def) {
	if d.Name == "" || d.Build == nil {
		return
	}
	r.m[d.Name] = d
}

// Get looks up a scene.
func (r *Registry) Get(name string) (Def, bool) { d, ok := r.m[name]; return d, ok }

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Build authors the named scene and seals it.
func (r *Registry) Build(name string) (*timeline.Scene, error) {
	d, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	sc := timeline.NewScene()
	d.Build(sc)
	sc.SealAll()
	return sc, nil
}

// Default returns a registry holding every built-in scene.
func Default() *Registry {
	r := NewRegistry()
	for _, d := range builtins {
		r.Register(d)
	}
	return r
}
