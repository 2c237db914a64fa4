package di

import (
	"context"
	"reflect"
	"sync/atomic"

	"github.com/sectrean/di-bench/internal/errors"
)

// Scope resolves services. It is implemented by *Container.
//
// A constructor may take a Scope parameter to resolve services lazily.
// The injected Scope can only resolve once the constructor has returned,
// so it must be stored and used later.
type Scope interface {
	// Contains returns true if a service of the given type can be resolved.
	//
	// Available options:
	// 	- [WithTag] specifies the tag associated with the service.
	Contains(t reflect.Type, opts ...ResolveOption) bool

	// Resolve returns a service of the given type.
	//
	// Available options:
	// 	- [WithTag] specifies the tag associated with the service.
	Resolve(ctx context.Context, t reflect.Type, opts ...ResolveOption) (any, error)
}

// Resolve returns the service of type T from s.
func Resolve[T any](ctx context.Context, s Scope, opts ...ResolveOption) (T, error) {
	var zero T

	t := reflect.TypeFor[T]()
	val, err := s.Resolve(ctx, t, opts...)
	if err != nil || val == nil {
		return zero, err
	}

	typed, ok := val.(T)
	if !ok {
		return zero, errors.Errorf("resolve %s: got %T", t, val)
	}
	return typed, nil
}

// MustResolve is like [Resolve] but panics if the service cannot be resolved.
func MustResolve[T any](ctx context.Context, s Scope, opts ...ResolveOption) T {
	val, err := Resolve[T](ctx, s, opts...)
	if err != nil {
		panic(err)
	}
	return val
}

// ResolveAll returns every service registered for T, in registration order.
func ResolveAll[T any](ctx context.Context, s Scope, opts ...ResolveOption) ([]T, error) {
	return Resolve[[]T](ctx, s, opts...)
}

// scopeParam is the Scope passed to a constructor that depends on one.
// It refuses to resolve until the constructor has returned, and once the
// Container it belongs to has been closed.
type scopeParam struct {
	dependent serviceKey
	container *Container
	usable    atomic.Bool
}

// newScopeParam returns the Scope for the service at key, and a func that
// marks it usable after the service is constructed.
func newScopeParam(key serviceKey, c *Container) (*scopeParam, func()) {
	p := &scopeParam{dependent: key, container: c}
	return p, func() { p.usable.Store(true) }
}

func (p *scopeParam) Contains(t reflect.Type, opts ...ResolveOption) bool {
	return p.container.Contains(t, opts...)
}

func (p *scopeParam) Resolve(ctx context.Context, t reflect.Type, opts ...ResolveOption) (any, error) {
	if !p.usable.Load() {
		return nil, errors.Errorf(
			"resolve %v: di.Scope injected into %s cannot resolve during construction: "+
				"store it and resolve later",
			t, p.dependent,
		)
	}

	if p.container.isClosed() {
		return nil, errors.Wrapf(ErrContainerDisposed, "resolve %v: di.Scope injected into %s", t, p.dependent)
	}

	return p.container.Resolve(ctx, t, opts...)
}

var _ Scope = (*scopeParam)(nil)
