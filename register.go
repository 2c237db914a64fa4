package di

import (
	"reflect"

	"github.com/sectrean/di-bench/internal/errors"
)

// Register registers the provided function or value with a new Container
// when calling [NewContainer] or [Container.NewScope].
//
// If a function is provided, it will be called to create the service when resolved.
//
// This function can take any number of arguments which will also be resolved from the Container.
// The function may also accept a [context.Context] or [di.Scope].
// A variadic argument is resolved as an optional slice of all services of the element type.
//
// The function must return a service, or the service and an error.
// The service will be registered as the return type of the function (struct, pointer, or interface).
//
// If the resolved service implements [Closer], or a compatible Close or Dispose method signature,
// it will be closed when the Container is closed.
//
// If a value is provided, it will be returned as the service when resolved.
// The value can be a struct or pointer.
// (It will be registered as the actual type even if the the variable was declared as an interface.)
//
// Registering a service type that is already registered with the same Container returns
// [ErrDuplicateBinding], unless every registration for the type uses [Multiple].
//
// Available options:
//   - [Lifetime] is used to specify how services are created when resolved.
//   - [As] registers an alias for a service.
//   - [Multiple] allows several bindings for the same service.
//   - [WithTag] specifies the tag associated with a service.
//   - [WithTagged] specifies a tag for a dependency.
//   - [Optional] marks a dependency as optional.
//   - [WithCloseFunc] specifies a function to be called when the service is closed.
//   - [IgnoreCloser] specifies that the service should not be closed by the Container.
//   - [WithCloser] specifies that the service should be closed by the Container.
//     This is the default for function services. Value services will not be closed by default.
func Register(funcOrValue any, opts ...RegisterOption) ContainerOption {
	// Use a single Register function for both function and value services
	// because it's easier to use than separate functions.
	//
	// Examples:
	// Register(NewService) // This works as a func
	// Register(NewService()) // This works as a value

	return newContainerOption(orderService, func(c *Container) error {
		if funcOrValue == nil {
			return errors.New("register: funcOrValue is nil")
		}

		if _, ok := funcOrValue.(RegisterOption); ok {
			return errors.Errorf("register %T: unexpected RegisterOption as funcOrValue", funcOrValue)
		}

		b, err := newBinding(c, funcOrValue, opts)
		if err != nil {
			return errors.Wrapf(err, "register %T", funcOrValue)
		}

		err = c.register(b)
		return errors.Wrapf(err, "register %T", funcOrValue)
	})
}

func newBinding(owner *Container, funcOrValue any, opts []RegisterOption) (binding, error) {
	if reflect.TypeOf(funcOrValue).Kind() == reflect.Func {
		return newFuncBinding(owner, funcOrValue, opts)
	}
	return newValueBinding(owner, funcOrValue, opts)
}

// RegisterOption is used to configure a service registration when calling [Register]
// or [RegisterGeneric].
type RegisterOption interface {
	applyBinding(*bindingConfig) error
}

type registerOption func(*bindingConfig) error

func (o registerOption) applyBinding(b *bindingConfig) error {
	return o(b)
}

// As registers an alias for a service. The service is resolvable as T
// instead of the type returned by the function.
//
// This can be used multiple times to register the service under several types.
func As[T any]() RegisterOption {
	return registerOption(func(b *bindingConfig) error {
		alias := reflect.TypeFor[T]()
		return errors.Wrapf(b.addAlias(alias), "as %s", alias)
	})
}

// Multiple allows several bindings to be registered for the same service.
//
// All bindings are returned, in registration order, when resolving a slice of the service type.
// Resolving the service type itself returns the most recently registered binding.
//
// When a child scope registers a multiple binding for a type that is also registered
// with the parent, the child's bindings are appended to the parent's instead of replacing them.
func Multiple() RegisterOption {
	return registerOption(func(b *bindingConfig) error {
		b.multiple = true
		return nil
	})
}

// Optional marks a dependency of type Dependency as optional.
// If no service is registered for the dependency, the zero value is injected.
//
// This option will return an error if the Service does not have a dependency of type Dependency.
func Optional[Dependency any]() DependencyOption {
	return optionalOption{t: reflect.TypeFor[Dependency]()}
}

// DependencyOption is used to configure a dependency when calling [Register] or [Invoke].
type DependencyOption interface {
	RegisterOption
	InvokeOption
}

type optionalOption struct {
	t reflect.Type
}

// applyDeps marks the first required dependency of the right type as optional.
func (o optionalOption) applyDeps(deps []dependency) error {
	for i := range deps {
		if deps[i].Key.Type == o.t && !deps[i].Optional {
			deps[i].Optional = true
			return nil
		}
	}
	return errors.Errorf("optional %s: argument not found", o.t)
}

func (o optionalOption) applyBinding(b *bindingConfig) error {
	return o.applyDeps(b.deps)
}

func (o optionalOption) applyInvokeConfig(c *invokeConfig) error {
	return o.applyDeps(c.deps)
}

var _ DependencyOption = optionalOption{}
