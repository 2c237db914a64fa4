package di

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/sectrean/di-bench/internal/errors"
)

// WithDependencyValidation validates registered services on [Container] creation.
//
// This will check that all dependencies are registered and that there are no dependency cycles.
// It will return an error with details if any issues are found.
//
// Only the services registered with the new Container are checked,
// against the registrations visible from it.
func WithDependencyValidation() ContainerOption {
	return newContainerOption(orderValidation, func(c *Container) error {
		err := c.validateDependencies()
		return errors.Wrap(err, "with dependency validation")
	})
}

func (c *Container) validateDependencies() error {
	var errs errors.MultiError
	results := make(map[uuid.UUID]error)

	for _, b := range c.registry.order {
		key := b.Keys()[0]
		err := c.validateBinding(key, b, results, newResolveVisitor())
		errs = errs.Append(errors.Wrapf(err, "binding %s", b))
	}

	return errs.Join()
}

func (c *Container) validateBinding(
	key serviceKey,
	b binding,
	results map[uuid.UUID]error,
	visitor *resolveVisitor,
) error {
	if err, ok := results[b.ID()]; ok {
		return err
	}

	if !visitor.Enter(key) {
		return visitor.cycleError(key)
	}
	defer visitor.Leave(key)

	var errs errors.MultiError
	for _, dep := range b.Dependencies() {
		err := c.validateDependency(dep, results, visitor)
		errs = errs.Append(errors.Wrapf(err, "dependency %s", dep.Key))
	}

	err := errs.Join()
	results[b.ID()] = err
	return err
}

func (c *Container) validateDependency(
	dep dependency,
	results map[uuid.UUID]error,
	visitor *resolveVisitor,
) error {
	switch dep.Key.Type {
	case typeContext, typeScope:
		return nil
	}

	if dep.Key.Type.Kind() == reflect.Slice {
		elementKey := serviceKey{Type: dep.Key.Type.Elem(), Tag: dep.Key.Tag}
		bindings, err := c.registry.lookupAll(elementKey)
		if err != nil {
			return err
		}
		if len(bindings) == 0 && !dep.Optional {
			return ErrUnresolvedDependency
		}

		var errs errors.MultiError
		for _, b := range bindings {
			errs = errs.Append(c.validateBinding(elementKey, b, results, visitor))
		}
		return errs.Join()
	}

	b, err := c.registry.lookup(dep.Key)
	if err != nil {
		return err
	}
	if b == nil {
		if dep.Optional {
			return nil
		}
		return ErrUnresolvedDependency
	}

	return c.validateBinding(dep.Key, b, results, visitor)
}
