package di

import (
	"github.com/sectrean/di-bench/internal/errors"
)

var (
	// ErrDuplicateBinding is returned when a service key that does not allow
	// multiple bindings is registered more than once with the same Container.
	ErrDuplicateBinding = errors.New("duplicate binding")

	// ErrUnresolvedDependency is returned when a required service has no binding.
	ErrUnresolvedDependency = errors.New("unresolved dependency")

	// ErrCyclicDependency is returned when a service is revisited within one resolution chain.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrUnsupportedOperation is returned when an operation is not supported,
	// such as creating a child container with an engine that has no child scope support.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrContainerDisposed is returned when a Container is used after it has been closed.
	ErrContainerDisposed = errors.New("container disposed")
)
