// Package adapter defines the facade a benchmark drives a container through.
package adapter

import (
	"net/http"
	"reflect"

	"github.com/sectrean/di-bench"
)

var (
	// ErrUnsupportedOperation is returned when the container does not support an operation.
	ErrUnsupportedOperation = di.ErrUnsupportedOperation

	// ErrContainerDisposed is returned when an adapter is used after Dispose,
	// or before it has been prepared.
	ErrContainerDisposed = di.ErrContainerDisposed
)

// Capabilities are the features of a container the benchmark can exercise.
type Capabilities struct {
	Generics             bool
	ChildContainer       bool
	Multiple             bool
	FrameworkIntegration bool
	// Transient is false when the container caches services registered as transient.
	Transient bool
}

// Resolver resolves services by type.
type Resolver interface {
	Resolve(t reflect.Type) (any, error)
}

// Adapter prepares a container with the catalog and resolves services from it.
type Adapter interface {
	Name() string
	URL() string
	Capabilities() Capabilities

	// Prepare registers the full catalog with a new container.
	Prepare() error
	// PrepareBasic registers the dummy, standard and complex groups with a new container.
	PrepareBasic() error

	Resolver

	// CreateChildAdapter returns an adapter for a child container with the child overrides.
	// The child must be prepared before it is used.
	CreateChildAdapter() (ChildAdapter, error)

	Dispose() error
}

// ChildAdapter resolves services from a child container.
type ChildAdapter interface {
	Prepare() error
	Resolver
	Dispose() error
}

// HTTPIntegration is implemented by adapters with framework integration.
type HTTPIntegration interface {
	// Middleware returns middleware that serves each request from a new scope.
	Middleware() (func(http.Handler) http.Handler, error)

	// ResolveRequest resolves a service from the scope of the request.
	ResolveRequest(r *http.Request, t reflect.Type) (any, error)
}

// Resolve a service of type T from the adapter.
func Resolve[T any](r Resolver) (T, error) {
	var val T
	anyVal, err := r.Resolve(reflect.TypeFor[T]())
	if err != nil {
		return val, err
	}

	val, _ = anyVal.(T)
	return val, nil
}

// Missing returns the names of the required capabilities c does not have.
func (c Capabilities) Missing(required Capabilities) []string {
	var missing []string
	check := func(name string, req, has bool) {
		if req && !has {
			missing = append(missing, name)
		}
	}

	check("Generics", required.Generics, c.Generics)
	check("ChildContainer", required.ChildContainer, c.ChildContainer)
	check("Multiple", required.Multiple, c.Multiple)
	check("FrameworkIntegration", required.FrameworkIntegration, c.FrameworkIntegration)
	check("Transient", required.Transient, c.Transient)

	return missing
}
