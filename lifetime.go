package di

import (
	"fmt"

	"github.com/sectrean/di-bench/internal/errors"
)

// Lifetime specifies how instances of a service are reused when resolved.
//
// Available lifetimes:
//   - [Transient] specifies that a service is created for each request.
//   - [PerContainer] specifies that a service is created once for a root Container and all of its scopes.
//   - [PerScope] specifies that a service is created once per scope.
type Lifetime uint8

const (
	// Transient specifies that a service is created for each request.
	// Transient instances are never cached.
	//
	// This is the default lifetime for services.
	Transient Lifetime = iota

	// PerContainer specifies that a service is created once by the Container it is registered with.
	// Subsequent requests from that Container, or any of its child scopes, return the same instance.
	PerContainer

	// PerScope specifies that a service is created once per scope.
	// Each child scope gets its own instance, even when the service is registered with the parent.
	PerScope
)

// WithLifetime is used to configure the lifetime of a service when calling [Register].
//
// Example:
//
//	c, err := di.NewContainer(
//		di.Register(NewService, di.WithLifetime(di.PerContainer)),
//		// Lifetime can also be used directly as an option
//		di.Register(NewService, di.PerContainer),
//	)
func WithLifetime(lifetime Lifetime) RegisterOption {
	return lifetime
}

func (l Lifetime) applyBinding(b *bindingConfig) error {
	if l > PerScope {
		return errors.Errorf("with lifetime: invalid lifetime %d", l)
	}

	b.lifetime = l
	return nil
}

var _ RegisterOption = PerContainer

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case PerContainer:
		return "PerContainer"
	case PerScope:
		return "PerScope"
	default:
		return fmt.Sprintf("Unknown Lifetime %d", l)
	}
}
