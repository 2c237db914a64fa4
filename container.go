package di

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"

	"github.com/sectrean/di-bench/internal/errors"
)

// Container is a dependency injection container.
// It is used to resolve services by first resolving their dependencies.
//
// A Container created with [Container.NewScope] is a child scope of its parent.
// It inherits the parent's registrations, caches its own [PerScope] services,
// and closes only the services it created.
type Container struct {
	id        uuid.UUID
	parent    *Container
	registry  *registry
	resolved  *xsync.MapOf[uuid.UUID, *resolvePromise]
	closers   []Closer
	closersMu sync.Mutex
	closedMu  sync.RWMutex
	closed    bool
	logger    *zap.Logger
}

var _ Scope = (*Container)(nil)

// NewContainer creates a new root [Container] with the provided options.
//
// Available options:
//   - [Register] registers a service with a value or constructor function.
//   - [RegisterGeneric] registers an open generic service.
//   - [WithModule] applies a group of options.
//   - [WithLogger] sets the logger used by the Container.
//   - [WithDependencyValidation] validates service dependencies.
func NewContainer(opts ...ContainerOption) (*Container, error) {
	c := newContainer(nil)

	err := c.applyOptions(opts)
	if err != nil {
		return nil, errors.Wrap(err, "new container")
	}

	c.logger.Debug("container created",
		zap.Stringer("id", c.id),
		zap.Int("bindings", c.registry.len()),
	)

	return c, nil
}

func newContainer(parent *Container) *Container {
	c := &Container{
		id:       uuid.New(),
		parent:   parent,
		resolved: xsync.NewMapOf[uuid.UUID, *resolvePromise](),
		logger:   zap.NewNop(),
	}

	if parent != nil {
		c.registry = newRegistry(parent.registry)
		c.logger = parent.logger
	} else {
		c.registry = newRegistry(nil)
	}

	return c
}

// ID returns the unique identifier of the Container.
func (c *Container) ID() uuid.UUID {
	return c.id
}

// Parent returns the parent of a child scope, or nil for a root Container.
func (c *Container) Parent() *Container {
	return c.parent
}

func (c *Container) register(b binding) error {
	err := c.registry.add(b)
	if err != nil {
		return err
	}

	// Add closers for value services
	// We don't need to take locks here because this is only called when creating a new Container
	if vb, ok := b.(*valueBinding); ok {
		if closer := vb.registrationCloser(); closer != nil {
			c.closers = append(c.closers, closer)
		}
	}

	return nil
}

// NewScope creates a new [Container] with a child scope.
//
// Services registered with the parent [Container] will be inherited by the child [Container].
// Services registered with the child replace the parent's for the same key,
// except for [Multiple] services, which are added to the parent's.
// Registrations with the child are isolated from the parent and sibling scopes.
//
// Available options:
//   - [Register] registers a service with a value or constructor function.
//   - [RegisterGeneric] registers an open generic service.
//   - [WithModule] applies a group of options.
//   - [WithLogger] sets the logger used by the child.
//   - [WithDependencyValidation] validates service dependencies.
func (c *Container) NewScope(opts ...ContainerOption) (*Container, error) {
	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	if c.closed {
		return nil, errors.Wrap(ErrContainerDisposed, "new scope")
	}

	scope := newContainer(c)

	err := scope.applyOptions(opts)
	if err != nil {
		return nil, errors.Wrap(err, "new scope")
	}

	scope.logger.Debug("scope created",
		zap.Stringer("id", scope.id),
		zap.Stringer("parent", c.id),
		zap.Int("bindings", scope.registry.len()),
	)

	return scope, nil
}

// Contains returns true if the [Container] has a service registered for the given [reflect.Type].
//
// For a slice type, Contains returns true if the element type is registered.
//
// Available options:
//   - [WithTag] specifies a key associated with the service.
func (c *Container) Contains(t reflect.Type, opts ...ResolveOption) bool {
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}

	return c.registry.contains(newServiceKey(t, opts))
}

// Resolve a service of the given [reflect.Type].
//
// The type must be registered with the [Container], or be a slice of a registered type.
// A slice resolves every service registered for the element type in registration order.
// This will return an error if the [Container] has been closed.
//
// Available options:
//   - [WithTag] specifies a key associated with the service.
func (c *Container) Resolve(ctx context.Context, t reflect.Type, opts ...ResolveOption) (any, error) {
	key := newServiceKey(t, opts)

	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	if c.closed || c.parentClosed() {
		return nil, errors.Wrapf(ErrContainerDisposed, "resolve %s", key)
	}

	val, err := resolveKey(ctx, c, key, newResolveVisitor(), false)
	if err != nil {
		return val, errors.Wrapf(err, "resolve %s", key)
	}

	return val, nil
}

func resolveKey(
	ctx context.Context,
	scope *Container,
	key serviceKey,
	visitor *resolveVisitor,
	optional bool,
) (any, error) {
	if key.Type.Kind() == reflect.Slice {
		return resolveSliceKey(ctx, scope, key, visitor, optional)
	}

	b, err := scope.registry.lookup(key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		if optional {
			return nil, nil
		}
		return nil, ErrUnresolvedDependency
	}

	return resolveBinding(ctx, scope, key, b, visitor)
}

func resolveSliceKey(
	ctx context.Context,
	scope *Container,
	key serviceKey,
	visitor *resolveVisitor,
	optional bool,
) (any, error) {
	elementKey := serviceKey{
		Type: key.Type.Elem(),
		Tag:  key.Tag,
	}

	bindings, err := scope.registry.lookupAll(elementKey)
	if err != nil {
		return nil, err
	}
	if len(bindings) == 0 && !optional {
		return nil, ErrUnresolvedDependency
	}

	sliceVal := reflect.MakeSlice(key.Type, 0, len(bindings))
	for _, b := range bindings {
		val, err := resolveBinding(ctx, scope, elementKey, b, visitor)
		if err != nil {
			return nil, err
		}
		if val != nil {
			sliceVal = reflect.Append(sliceVal, reflect.ValueOf(val))
		}
	}

	return sliceVal.Interface(), nil
}

func resolveBinding(
	ctx context.Context,
	scope *Container,
	key serviceKey,
	b binding,
	visitor *resolveVisitor,
) (any, error) {
	// Check context for errors
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// PerContainer services are created by, and cached in, the Container they are registered with.
	// Everything else belongs to the scope it is resolved from.
	lifetime := b.Lifetime()
	owner := scope
	if lifetime == PerContainer {
		owner = b.Owner()
	}

	// The scope is already locked by Resolve. An ancestor that owns the service
	// must stay open until the service is cached and its closer recorded.
	if owner != scope {
		owner.closedMu.RLock()
		defer owner.closedMu.RUnlock()

		if owner.closed {
			return nil, ErrContainerDisposed
		}
	}

	if lifetime != Transient {
		if p, ok := owner.resolved.Load(b.ID()); ok {
			return p.Result()
		}
	}

	if !visitor.Enter(key) {
		return nil, visitor.cycleError(key)
	}
	defer visitor.Leave(key)

	// Dependencies are resolved before a promise is stored,
	// so a goroutine waiting on a promise never waits on its own chain.
	depVals, ready, err := resolveDependencies(ctx, owner, key, b, visitor)
	defer ready()
	if err != nil {
		return nil, err
	}

	if lifetime == Transient {
		return owner.construct(b, depVals)
	}

	p := newResolvePromise()
	if existing, loaded := owner.resolved.LoadOrStore(b.ID(), p); loaded {
		return existing.Result()
	}

	val, err := owner.construct(b, depVals)
	if err != nil {
		// Failed constructions are not cached
		owner.resolved.Delete(b.ID())
	}
	p.setResult(val, err)

	return val, err
}

func (c *Container) isClosed() bool {
	c.closedMu.RLock()
	defer c.closedMu.RUnlock()

	return c.closed || c.parentClosed()
}

// parentClosed returns true if any ancestor of the Container has been closed.
func (c *Container) parentClosed() bool {
	for p := c.parent; p != nil; p = p.parent {
		p.closedMu.RLock()
		closed := p.closed
		p.closedMu.RUnlock()

		if closed {
			return true
		}
	}
	return false
}

// resolveDependencies resolves the arguments for a binding.
// The returned func must be called once the service has been constructed.
func resolveDependencies(
	ctx context.Context,
	scope *Container,
	key serviceKey,
	b binding,
	visitor *resolveVisitor,
) ([]reflect.Value, func(), error) {
	deps := b.Dependencies()
	if len(deps) == 0 {
		return nil, func() {}, nil
	}

	var readyFuncs []func()
	ready := func() {
		for _, f := range readyFuncs {
			f()
		}
	}

	vals := make([]reflect.Value, len(deps))
	for i, dep := range deps {
		var val any
		var err error

		switch dep.Key.Type {
		case typeContext:
			// Pass along the context
			val = ctx

		case typeScope:
			var setReady func()
			val, setReady = newScopeParam(key, scope)
			readyFuncs = append(readyFuncs, setReady)

		default:
			// Recursive call
			val, err = resolveKey(ctx, scope, dep.Key, visitor, dep.Optional)
		}

		if err != nil {
			// Stop at the first error
			return nil, ready, errors.Wrapf(err, "dependency %s", dep.Key)
		}
		vals[i] = safeReflectValue(dep.Key.Type, val)
	}

	return vals, ready, nil
}

// construct creates a new instance and takes ownership of closing it.
func (c *Container) construct(b binding, deps []reflect.Value) (any, error) {
	val, err := b.New(deps)
	if err != nil {
		return nil, err
	}

	if closer := b.CloserFor(val); closer != nil {
		c.closersMu.Lock()
		c.closers = append(c.closers, closer)
		c.closersMu.Unlock()
	}

	return val, nil
}

// Close the [Container] and the services it created.
//
// Services are closed in the reverse order they were created.
// Child scopes and the parent Container are not closed.
// Errors returned from closing services are joined together.
//
// Close will return an error if called more than once.
func (c *Container) Close(ctx context.Context) error {
	c.closedMu.Lock()
	defer c.closedMu.Unlock()

	if c.closed {
		return errors.Wrap(ErrContainerDisposed, "close")
	}
	c.closed = true

	c.closersMu.Lock()
	closers := c.closers
	c.closers = nil
	c.closersMu.Unlock()

	// Close services in LIFO order
	// This is important because of dependencies
	var errs errors.MultiError
	for i := len(closers) - 1; i >= 0; i-- {
		errs = errs.Append(closers[i].Close(ctx))
	}

	if errs.Len() > 0 {
		c.logger.Error("container close failed",
			zap.Stringer("id", c.id),
			zap.Int("errors", errs.Len()),
			zap.Error(errs.Join()),
		)
		return errs.Wrap("close")
	}

	c.logger.Debug("container closed",
		zap.Stringer("id", c.id),
		zap.Int("closed", len(closers)),
	)

	return nil
}

// resolvePromise publishes the result of constructing a cached service
// to every goroutine resolving it at the same time.
type resolvePromise struct {
	done chan struct{}
	val  any
	err  error
}

func newResolvePromise() *resolvePromise {
	return &resolvePromise{done: make(chan struct{})}
}

func (p *resolvePromise) setResult(val any, err error) {
	p.val = val
	p.err = err
	close(p.done)
}

// Result blocks until the result is set.
func (p *resolvePromise) Result() (any, error) {
	<-p.done
	return p.val, p.err
}
