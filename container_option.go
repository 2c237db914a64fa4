package di

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"github.com/sectrean/di-bench/internal/errors"
)

// ContainerOption is used to configure a new [Container] when calling [NewContainer]
// or [Container.NewScope].
//
// Available options:
//   - [Register] registers a service with a value or constructor function.
//   - [RegisterGeneric] registers an open generic service.
//   - [WithModule] applies a group of options.
//   - [WithLogger] sets the logger used by the Container.
//   - [WithDependencyValidation] validates service dependencies.
type ContainerOption interface {
	order() optionOrder
	applyContainer(*Container) error
}

// optionOrder controls the order options are applied in, regardless of the order they are passed.
type optionOrder int8

const (
	orderLogger optionOrder = iota
	orderService
	orderValidation
)

func newContainerOption(order optionOrder, fn func(*Container) error) ContainerOption {
	return containerOption{fn: fn, ord: order}
}

type containerOption struct {
	fn  func(*Container) error
	ord optionOrder
}

func (o containerOption) order() optionOrder {
	return o.ord
}

func (o containerOption) applyContainer(c *Container) error {
	return o.fn(c)
}

// WithLogger sets the logger used by a new [Container].
//
// A child scope uses its parent's logger unless one is provided.
// By default, nothing is logged.
func WithLogger(logger *zap.Logger) ContainerOption {
	return newContainerOption(orderLogger, func(c *Container) error {
		if logger == nil {
			return errors.New("with logger: logger is nil")
		}

		c.logger = logger
		return nil
	})
}

func (c *Container) applyOptions(opts []ContainerOption) error {
	// Flatten any modules before sorting and applying options
	opts = flattenModules(opts)

	// Use stable sort because the registration order of services matters
	slices.SortStableFunc(opts, func(a, b ContainerOption) int {
		return cmp.Compare(a.order(), b.order())
	})

	return applyOptions(opts, func(o ContainerOption) error {
		return o.applyContainer(c)
	})
}
