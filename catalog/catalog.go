// Package catalog describes the fixed set of registrations every container is prepared with.
//
// The catalog does not depend on a container. Each adapter translates the
// registrations into the calls its own container expects.
package catalog

import (
	"fmt"
	"reflect"
)

// Lifetime of a registration.
type Lifetime uint8

const (
	// Transient registrations are constructed on every resolve.
	Transient Lifetime = iota
	// Singleton registrations are constructed once per container, shared with child containers.
	Singleton
	// Scoped registrations are constructed once per scope.
	Scoped
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Singleton:
		return "Singleton"
	case Scoped:
		return "Scoped"
	default:
		return fmt.Sprintf("Lifetime(%d)", l)
	}
}

// Registration binds Service to a constructor function.
type Registration struct {
	Service  reflect.Type
	New      any
	Lifetime Lifetime
	// Multiple registrations add to the bindings of Service instead of replacing them.
	Multiple bool
}

func (r Registration) String() string {
	return fmt.Sprintf("%s (%s)", r.Service, r.Lifetime)
}

// Generic binds an open generic service to the instantiated constructors of its implementation.
//
// Service is any instantiation of the generic service type.
type Generic struct {
	Service      reflect.Type
	Constructors []any
	Lifetime     Lifetime
}

func (g Generic) String() string {
	return fmt.Sprintf("%s (open, %s)", g.Service, g.Lifetime)
}

// Group is a named set of registrations.
type Group struct {
	Name          string
	Registrations []Registration
	Generics      []Generic
}

// Len returns the number of registrations in the group.
func (g Group) Len() int {
	return len(g.Registrations) + len(g.Generics)
}

func register[T any](fn any, lifetime Lifetime) Registration {
	return Registration{
		Service:  reflect.TypeFor[T](),
		New:      fn,
		Lifetime: lifetime,
	}
}

func registerMultiple[T any](fn any) Registration {
	r := register[T](fn, Transient)
	r.Multiple = true
	return r
}

func generic[T any](lifetime Lifetime, ctors ...any) Generic {
	return Generic{
		Service:      reflect.TypeFor[T](),
		Constructors: ctors,
		Lifetime:     lifetime,
	}
}
