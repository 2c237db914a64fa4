// Package dicontext stores a [di.Scope] on a [context.Context] so request handlers
// can resolve services from the scope created for their request.
package dicontext

import (
	"context"
	"reflect"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/internal/errors"
)

type scopeContextKey struct{}

// WithScope returns a new [context.Context] that carries the provided [di.Scope].
func WithScope(ctx context.Context, s di.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// Scope returns the [di.Scope] stored on the [context.Context], if present.
func Scope(ctx context.Context) di.Scope {
	s, _ := ctx.Value(scopeContextKey{}).(di.Scope)
	return s
}

func scopeFor(ctx context.Context, t reflect.Type) (di.Scope, error) {
	s := Scope(ctx)
	if s == nil {
		return nil, errors.Errorf("resolve %s from context: scope not found on context", t)
	}
	return s, nil
}

// ResolveType resolves a service of type t from the [di.Scope] stored on the [context.Context].
func ResolveType(ctx context.Context, t reflect.Type, opts ...di.ResolveOption) (any, error) {
	s, err := scopeFor(ctx, t)
	if err != nil {
		return nil, err
	}

	val, err := s.Resolve(ctx, t, opts...)
	return val, errors.Wrap(err, "from context")
}

// Resolve a service of type Service from the [di.Scope] stored on the
// [context.Context].
func Resolve[Service any](ctx context.Context, opts ...di.ResolveOption) (Service, error) {
	s, err := scopeFor(ctx, reflect.TypeFor[Service]())
	if err != nil {
		var zero Service
		return zero, err
	}

	val, err := di.Resolve[Service](ctx, s, opts...)
	return val, errors.Wrap(err, "from context")
}

// ResolveAll resolves every service of type Service from the [di.Scope] stored on the
// [context.Context], in registration order.
func ResolveAll[Service any](ctx context.Context, opts ...di.ResolveOption) ([]Service, error) {
	return Resolve[[]Service](ctx, opts...)
}

// MustResolve resolves a service of the given type from the [di.Scope] stored on the
// [context.Context].
//
// If the service cannot be resolved, this function will panic.
func MustResolve[Service any](ctx context.Context, opts ...di.ResolveOption) Service {
	val, err := Resolve[Service](ctx, opts...)
	if err != nil {
		panic(err)
	}
	return val
}
