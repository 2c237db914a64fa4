package di

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/sectrean/di-bench/internal/errors"
)

// binding provides information about a registered service and how to construct it.
type binding interface {
	// ID uniquely identifies the binding. Cached instances are keyed by it.
	ID() uuid.UUID

	// Type returns the type produced by the binding.
	Type() reflect.Type

	// Keys returns the service keys this binding is registered under.
	Keys() []serviceKey

	// Lifetime returns the lifetime of the service.
	Lifetime() Lifetime

	// Multiple returns true if other bindings may share the binding's keys.
	Multiple() bool

	// Dependencies returns the services needed to construct the binding.
	Dependencies() []dependency

	// Owner returns the Container the binding was registered with.
	Owner() *Container

	// New uses the resolved dependencies to create a new instance of the service.
	New(deps []reflect.Value) (any, error)

	// CloserFor returns a Closer for a constructed instance, or nil.
	CloserFor(val any) Closer

	String() string
}

// bindingConfig holds the registration details shared by all binding kinds.
// Register options are applied to it.
type bindingConfig struct {
	id            uuid.UUID
	t             reflect.Type
	lifetime      Lifetime
	multiple      bool
	tag           any
	aliases       []reflect.Type
	deps          []dependency
	closerFactory closerFactory
	owner         *Container
}

func (b *bindingConfig) ID() uuid.UUID {
	return b.id
}

func (b *bindingConfig) Type() reflect.Type {
	return b.t
}

func (b *bindingConfig) Keys() []serviceKey {
	if len(b.aliases) == 0 {
		return []serviceKey{{Type: b.t, Tag: b.tag}}
	}

	keys := make([]serviceKey, len(b.aliases))
	for i, alias := range b.aliases {
		keys[i] = serviceKey{Type: alias, Tag: b.tag}
	}
	return keys
}

func (b *bindingConfig) Lifetime() Lifetime {
	return b.lifetime
}

func (b *bindingConfig) Multiple() bool {
	return b.multiple
}

func (b *bindingConfig) Dependencies() []dependency {
	return b.deps
}

func (b *bindingConfig) Owner() *Container {
	return b.owner
}

func (b *bindingConfig) addAlias(alias reflect.Type) error {
	if !b.t.AssignableTo(alias) {
		return errors.Errorf("type %s not assignable to %s", b.t, alias)
	}

	b.aliases = append(b.aliases, alias)
	return nil
}

func validateServiceType(t reflect.Type) error {
	switch t {
	// These are the only special types used by the Container.
	case typeContext,
		typeScope,
		typeError:
		return errors.New("invalid service type")
	}

	switch t.Kind() {
	case reflect.Interface,
		reflect.Ptr,
		reflect.Struct:
		return nil
	}

	return errors.New("invalid service type")
}

// funcBinding constructs services by calling a constructor function.
type funcBinding struct {
	bindingConfig
	fn       reflect.Value
	variadic bool
}

func newFuncBinding(owner *Container, fn any, opts []RegisterOption) (*funcBinding, error) {
	fnType := reflect.TypeOf(fn)

	// Get the return type
	var t reflect.Type
	switch {
	case fnType.NumOut() == 1:
		t = fnType.Out(0)
	case fnType.NumOut() == 2 && fnType.Out(1) == typeError:
		t = fnType.Out(0)
	default:
		return nil, errors.New("function must return Service or (Service, error)")
	}

	if err := validateServiceType(t); err != nil {
		return nil, err
	}

	var deps []dependency
	if fnType.NumIn() > 0 {
		deps = make([]dependency, fnType.NumIn())
		for i := range fnType.NumIn() {
			deps[i] = dependency{
				Key: serviceKey{Type: fnType.In(i)},
			}
		}

		// The variadic arg is resolved as an optional slice of services
		if fnType.IsVariadic() {
			deps[len(deps)-1].Optional = true
		}
	}

	b := &funcBinding{
		bindingConfig: bindingConfig{
			id:            uuid.New(),
			t:             t,
			deps:          deps,
			closerFactory: getCloser,
			owner:         owner,
		},
		fn:       reflect.ValueOf(fn),
		variadic: fnType.IsVariadic(),
	}

	err := applyOptions(opts, func(opt RegisterOption) error {
		return opt.applyBinding(&b.bindingConfig)
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (b *funcBinding) New(deps []reflect.Value) (any, error) {
	var out []reflect.Value

	// Call the function
	if b.variadic {
		out = b.fn.CallSlice(deps)
	} else {
		out = b.fn.Call(deps)
	}

	// Extract the return value and error, if any
	val := out[0].Interface()

	var err error
	if len(out) == 2 {
		err, _ = out[1].Interface().(error)
	}

	return val, err
}

func (b *funcBinding) CloserFor(val any) Closer {
	if val == nil || b.closerFactory == nil {
		return nil
	}

	return b.closerFactory(val)
}

func (b *funcBinding) String() string {
	return b.fn.Type().String()
}

var _ binding = (*funcBinding)(nil)

// valueBinding returns a pre-built instance.
// Values are always PerContainer and are not closed unless requested with [WithCloser].
type valueBinding struct {
	bindingConfig
	val any
}

func newValueBinding(owner *Container, val any, opts []RegisterOption) (*valueBinding, error) {
	t := reflect.TypeOf(val)

	if err := validateServiceType(t); err != nil {
		return nil, err
	}

	b := &valueBinding{
		bindingConfig: bindingConfig{
			id:    uuid.New(),
			t:     t,
			owner: owner,
		},
		val: val,
	}

	err := applyOptions(opts, func(opt RegisterOption) error {
		return opt.applyBinding(&b.bindingConfig)
	})
	if err != nil {
		return nil, err
	}

	// Values are never re-created
	b.lifetime = PerContainer

	return b, nil
}

func (b *valueBinding) New([]reflect.Value) (any, error) {
	return b.val, nil
}

// CloserFor returns nil because the closer for a value is
// added to the Container when the value is registered.
func (*valueBinding) CloserFor(any) Closer {
	return nil
}

func (b *valueBinding) registrationCloser() Closer {
	if b.closerFactory == nil {
		return nil
	}

	return b.closerFactory(b.val)
}

func (b *valueBinding) String() string {
	return b.t.String()
}

var _ binding = (*valueBinding)(nil)
