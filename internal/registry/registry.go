package registry

import (
	"go/types"
	"slices"
	"strings"

	"github.com/mpyw/taskforget/internal/config"
	"github.com/mpyw/taskforget/internal/tasktype"
)

// FactLookup reports whether obj was marked by a //taskforget:task directive,
// and whether the mark is the void flavor.
type FactLookup func(obj *types.TypeName) (void, ok bool)

// Registry holds the recognized deferred-result identities.
type Registry struct {
	tasks    []tasktype.Type
	generics []tasktype.Type
	voids    []string
	lookup   FactLookup
}

// New creates a registry from configured identities. lookup may be nil.
func New(ts config.Types, lookup FactLookup) *Registry {
	r := &Registry{
		tasks:    tasktype.Parse(ts.Task),
		generics: tasktype.Parse(ts.Generic),
		lookup:   lookup,
	}

	for _, s := range ts.Void {
		if s = strings.TrimSpace(s); s != "" {
			r.voids = append(r.voids, s)
		}
	}

	return r
}

// IsTask reports whether obj is a registered non-generic deferred-result type.
func (r *Registry) IsTask(obj *types.TypeName) bool {
	if obj == nil || isGenericDecl(obj) {
		return false
	}
	if tasktype.MatchesAny(obj, r.tasks) {
		return true
	}
	void, ok := r.marked(obj)
	return ok && !void
}

// IsGeneric reports whether origin is a registered generic definition.
// Callers pass the origin object of an instantiated type.
func (r *Registry) IsGeneric(origin *types.TypeName) bool {
	if origin == nil || !isGenericDecl(origin) {
		return false
	}
	if tasktype.MatchesAny(origin, r.generics) {
		return true
	}
	void, ok := r.marked(origin)
	return ok && !void
}

// IsVoid reports whether t is a registered fire-and-forget type.
func (r *Registry) IsVoid(t types.Type) bool {
	if t == nil {
		return false
	}
	if slices.Contains(r.voids, types.TypeString(t, nil)) {
		return true
	}
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	void, ok := r.marked(named.Obj())
	return ok && void
}

func (r *Registry) marked(obj *types.TypeName) (void, ok bool) {
	if r.lookup == nil {
		return false, false
	}
	return r.lookup(obj)
}

func isGenericDecl(obj *types.TypeName) bool {
	named, ok := obj.Type().(*types.Named)
	return ok && named.TypeParams().Len() > 0
}
