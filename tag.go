package di

import (
	"reflect"

	"github.com/sectrean/di-bench/internal/errors"
)

// WithTag is used to specify the tag associated with a service.
//
// WithTag can be used with:
//   - [Register]
//   - [RegisterGeneric]
//   - [Resolve]
//   - [MustResolve]
//   - [Container.Resolve]
//   - [Container.Contains]
func WithTag(tag any) ServiceTagOption {
	return tagOption{tag: tag}
}

// WithTagged is used to specify a tag for a service dependency when calling
// [Register] or [Invoke].
//
// This option can be used multiple times to specify tags for function service dependencies.
//
// Example:
//
//	c, err := di.NewContainer(
//		di.Register(db.NewPrimaryDB, di.WithTag(db.Primary)),
//		di.Register(db.NewReplicaDB, di.WithTag(db.Replica)),
//		di.Register(storage.NewReadWriteStore,
//			di.WithTagged[*db.DB](db.Primary),
//		),
//		di.Register(storage.NewReadOnlyStore,
//			di.WithTagged[*db.DB](db.Replica),
//		),
//	)
//
// This option will return an error if the Service does not have a dependency of type Dependency.
func WithTagged[Dependency any](tag any) DependencyOption {
	return depTagOption{
		t:   reflect.TypeFor[Dependency](),
		tag: tag,
	}
}

// ServiceTagOption is used to specify the tag associated with a service when calling [Register],
// [Resolve], [Container.Resolve], or [Container.Contains].
type ServiceTagOption interface {
	RegisterOption
	ResolveOption
}

type tagOption struct {
	tag any
}

func (o tagOption) applyBinding(b *bindingConfig) error {
	b.tag = o.tag
	return nil
}

func (o tagOption) applyServiceKey(key serviceKey) serviceKey {
	return serviceKey{
		Type: key.Type,
		Tag:  o.tag,
	}
}

var _ ServiceTagOption = tagOption{}

type depTagOption struct {
	t   reflect.Type
	tag any
}

// applyDeps assigns the tag to the first dependency of the right type that does not already have a tag.
// If no dependency is found, an error is returned.
//
// The slice is modified in place.
func (o depTagOption) applyDeps(deps []dependency) error {
	for i := range deps {
		// Skip past any that have already been assigned a tag
		if deps[i].Key.Type == o.t && deps[i].Key.Tag == nil {
			deps[i].Key.Tag = o.tag
			return nil
		}
	}
	return errors.Errorf("with tagged %s: argument not found", o.t)
}

func (o depTagOption) applyBinding(b *bindingConfig) error {
	return o.applyDeps(b.deps)
}

func (o depTagOption) applyInvokeConfig(c *invokeConfig) error {
	return o.applyDeps(c.deps)
}

var _ DependencyOption = depTagOption{}

// ResolveOption can be used when calling [Resolve], [MustResolve],
// [Container.Resolve], or [Container.Contains].
//
// Available options:
//   - [WithTag]
type ResolveOption interface {
	applyServiceKey(serviceKey) serviceKey
}

func newServiceKey(t reflect.Type, opts []ResolveOption) serviceKey {
	key := serviceKey{Type: t}
	for _, opt := range opts {
		key = opt.applyServiceKey(key)
	}
	return key
}
