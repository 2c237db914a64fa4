package di

import (
	"github.com/sectrean/di-bench/internal/errors"
)

// registry holds the bindings registered with one Container.
//
// A registry is built while its Container is created and never changes afterwards.
// The registry of a child scope shadows the registry of its parent.
type registry struct {
	parent   *registry
	bindings map[serviceKey][]binding
	generics map[genericKey]*openGeneric
	order    []binding
}

type genericKey struct {
	def GenericDefinition
	tag any
}

func newRegistry(parent *registry) *registry {
	return &registry{
		parent:   parent,
		bindings: make(map[serviceKey][]binding),
		generics: make(map[genericKey]*openGeneric),
	}
}

// add appends a binding under each of its keys.
//
// A key may only have several bindings if all of them are multiple.
// Nothing is added if any of the keys is rejected.
func (r *registry) add(b binding) error {
	keys := b.Keys()

	for _, key := range keys {
		existing := r.bindings[key]
		if len(existing) == 0 {
			continue
		}

		if !b.Multiple() || !allMultiple(existing) {
			return errors.Wrapf(ErrDuplicateBinding, "%s", key)
		}
	}

	for _, key := range keys {
		r.bindings[key] = append(r.bindings[key], b)
	}
	r.order = append(r.order, b)

	return nil
}

func (r *registry) addGeneric(g *openGeneric) error {
	key := genericKey{def: g.def, tag: g.tag}
	if _, exists := r.generics[key]; exists {
		return ErrDuplicateBinding
	}

	r.generics[key] = g
	return nil
}

// lookup returns the binding used to resolve a single service for the key.
//
// Registries are searched from the nearest to the root. Within a registry a closed binding
// is preferred over an open generic template, and the most recently registered binding wins.
func (r *registry) lookup(key serviceKey) (binding, error) {
	gk, typeArgs, isGeneric := genericKeyFor(key)

	for reg := r; reg != nil; reg = reg.parent {
		if bs := reg.bindings[key]; len(bs) > 0 {
			return bs[len(bs)-1], nil
		}

		if !isGeneric {
			continue
		}
		if g, found := reg.generics[gk]; found {
			return g.bindingFor(key.Type, typeArgs)
		}
	}

	return nil, nil
}

// lookupAll returns every binding for the key in registration order.
//
// Bindings registered with a child replace the parent's,
// unless all of the child's bindings are multiple, in which case they are appended.
// An open generic template contributes its specialization for the closed type.
func (r *registry) lookupAll(key serviceKey) ([]binding, error) {
	gk, typeArgs, isGeneric := genericKeyFor(key)

	var levels [][]binding
	for reg := r; reg != nil; reg = reg.parent {
		bs := reg.bindings[key]
		if len(bs) > 0 {
			levels = append(levels, bs)
			if !allMultiple(bs) {
				break
			}
			continue
		}

		if !isGeneric {
			continue
		}
		g, found := reg.generics[gk]
		if !found {
			continue
		}

		// The specialization is the only binding of this registry,
		// and multiple bindings from a child are appended to it.
		b, err := g.bindingFor(key.Type, typeArgs)
		if err != nil && len(levels) == 0 {
			return nil, err
		}
		if b != nil {
			levels = append(levels, []binding{b})
		}
		break
	}

	var all []binding
	for i := len(levels) - 1; i >= 0; i-- {
		all = append(all, levels[i]...)
	}
	return all, nil
}

func (r *registry) contains(key serviceKey) bool {
	for reg := r; reg != nil; reg = reg.parent {
		if len(reg.bindings[key]) > 0 {
			return true
		}
	}

	gk, _, ok := genericKeyFor(key)
	if !ok {
		return false
	}

	for reg := r; reg != nil; reg = reg.parent {
		if _, found := reg.generics[gk]; found {
			return true
		}
	}

	return false
}

// len returns the number of bindings registered with this registry, excluding parents.
func (r *registry) len() int {
	return len(r.order) + len(r.generics)
}

func genericKeyFor(key serviceKey) (genericKey, []string, bool) {
	def, typeArgs, ok := parseGeneric(key.Type)
	if !ok {
		return genericKey{}, nil, false
	}
	return genericKey{def: def, tag: key.Tag}, typeArgs, true
}

func allMultiple(bs []binding) bool {
	for _, b := range bs {
		if !b.Multiple() {
			return false
		}
	}
	return true
}
