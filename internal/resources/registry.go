// Package resources tracks GPU handles so each one is released exactly once.
package resources

import "fmt"

// Kind classifies a tracked handle
type Kind string

const (
	KindMesh    Kind = "mesh"
	KindTexture Kind = "texture"
	KindProgram Kind = "program"
)

type entry struct {
	kind    Kind
	name    string
	release func()
}

// Registry owns release functions for created handles.
// It is used from the render thread only.
type Registry struct {
	entries  []entry
	names    map[string]bool
	released bool
}

func NewRegistry() *Registry {
	return &Registry{names: make(map[string]bool)}
}

func key(kind Kind, name string) string { return string(kind) + "/" + name }

// Track records a handle and the function that releases it.
// Tracking the same kind/name twice is an error.
func (r *Registry) Track(kind Kind, name string, release func()) error {
	if r.released {
		return fmt.Errorf("track %s %q: registry already released", kind, name)
	}
	k := key(kind, name)
	if r.names[k] {
		return fmt.Errorf("track %s %q: already tracked", kind, name)
	}
	r.names[k] = true
	r.entries = append(r.entries, entry{kind: kind, name: name, release: release})
	return nil
}

// Live returns the number of tracked, unreleased handles per kind
func (r *Registry) Live() map[Kind]int {
	out := make(map[Kind]int)
	for _, e := range r.entries {
		out[e.kind]++
	}
	return out
}

// Release frees every handle in reverse creation order.
// Later calls do nothing.
func (r *Registry) Release() {
	if r.released {
		return
	}
	r.released = true
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].release != nil {
			r.entries[i].release()
		}
	}
	r.entries = nil
	r.names = nil
}
