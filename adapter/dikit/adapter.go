// Package dikit implements [adapter.Adapter] with the containers of package di.
package dikit

import (
	"context"
	"net/http"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/adapter"
	"github.com/sectrean/di-bench/benchtypes"
	"github.com/sectrean/di-bench/catalog"
	"github.com/sectrean/di-bench/dicontext"
	"github.com/sectrean/di-bench/dihttp"
	"github.com/sectrean/di-bench/internal/errors"
)

// Adapter prepares a [di.Container] with the catalog.
type Adapter struct {
	mu        sync.RWMutex
	container *di.Container
	logger    *zap.Logger
	opts      []di.ContainerOption
}

// Option configures an [Adapter].
type Option func(*Adapter)

// WithLogger sets the logger of the adapter and of the containers it creates.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithContainerOptions adds options used whenever the root container is created.
func WithContainerOptions(opts ...di.ContainerOption) Option {
	return func(a *Adapter) {
		a.opts = append(a.opts, opts...)
	}
}

// New creates an Adapter. It must be prepared before services can be resolved.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (*Adapter) Name() string { return "di-bench" }
func (*Adapter) URL() string  { return "https://github.com/sectrean/di-bench" }

func (*Adapter) Capabilities() adapter.Capabilities {
	return adapter.Capabilities{
		Generics:             true,
		ChildContainer:       true,
		Multiple:             true,
		FrameworkIntegration: true,
		Transient:            true,
	}
}

func (a *Adapter) Prepare() error {
	return errors.Wrap(a.prepare(catalog.Full()), "prepare")
}

func (a *Adapter) PrepareBasic() error {
	return errors.Wrap(a.prepare(catalog.Basic()), "prepare basic")
}

func (a *Adapter) prepare(groups []catalog.Group) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.disposeLocked(); err != nil {
		return err
	}

	opts := make([]di.ContainerOption, 0, len(a.opts)+3)
	opts = append(opts,
		di.WithLogger(a.logger),
		di.WithModule(Module(groups...)),
		di.Register(func() benchtypes.ScopeFactory {
			return &scopeFactory{adapter: a}
		}, di.PerContainer),
	)
	opts = append(opts, a.opts...)

	c, err := di.NewContainer(opts...)
	if err != nil {
		return err
	}

	a.container = c
	a.logger.Debug("container prepared",
		zap.Stringer("id", c.ID()),
		zap.Int("groups", len(groups)),
	)
	return nil
}

// Container returns the prepared container, or nil.
func (a *Adapter) Container() *di.Container {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.container
}

func (a *Adapter) Resolve(t reflect.Type) (any, error) {
	c := a.Container()
	if c == nil {
		return nil, errors.Wrapf(adapter.ErrContainerDisposed, "resolve %s: not prepared", t)
	}

	return c.Resolve(context.Background(), t)
}

func (a *Adapter) CreateChildAdapter() (adapter.ChildAdapter, error) {
	if a.Container() == nil {
		return nil, errors.Wrap(adapter.ErrContainerDisposed, "create child adapter: not prepared")
	}

	return &childAdapter{parent: a}, nil
}

// Middleware returns middleware that creates a child scope of the prepared container for each request.
func (a *Adapter) Middleware() (func(http.Handler) http.Handler, error) {
	c := a.Container()
	if c == nil {
		return nil, errors.Wrap(adapter.ErrContainerDisposed, "middleware: not prepared")
	}

	return dihttp.NewRequestScopeMiddleware(c, dihttp.WithLogger(a.logger))
}

// ResolveRequest resolves a service from the scope the middleware created for r.
func (*Adapter) ResolveRequest(r *http.Request, t reflect.Type) (any, error) {
	return dicontext.ResolveType(r.Context(), t)
}

// Dispose closes the prepared container. Later calls to Resolve fail with [adapter.ErrContainerDisposed].
func (a *Adapter) Dispose() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return errors.Wrap(a.disposeLocked(), "dispose")
}

// disposeLocked closes the container but keeps it, so a closed container reports itself disposed.
func (a *Adapter) disposeLocked() error {
	if a.container == nil {
		return nil
	}

	err := a.container.Close(context.Background())
	if errors.Is(err, di.ErrContainerDisposed) {
		return nil
	}
	return err
}

type childAdapter struct {
	parent *Adapter

	mu    sync.RWMutex
	scope *di.Container
}

func (c *childAdapter) Prepare() error {
	parent := c.parent.Container()
	if parent == nil {
		return errors.Wrap(adapter.ErrContainerDisposed, "prepare child: not prepared")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope != nil {
		if err := c.scope.Close(context.Background()); err != nil && !errors.Is(err, di.ErrContainerDisposed) {
			return errors.Wrap(err, "prepare child")
		}
	}

	scope, err := parent.NewScope(
		di.WithModule(Module(catalog.ChildOverrides())),
	)
	if err != nil {
		return errors.Wrap(err, "prepare child")
	}

	c.scope = scope
	return nil
}

func (c *childAdapter) Resolve(t reflect.Type) (any, error) {
	c.mu.RLock()
	scope := c.scope
	c.mu.RUnlock()

	if scope == nil {
		return nil, errors.Wrapf(adapter.ErrContainerDisposed, "resolve %s: not prepared", t)
	}

	return scope.Resolve(context.Background(), t)
}

func (c *childAdapter) Dispose() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scope == nil {
		return nil
	}

	err := c.scope.Close(context.Background())
	if errors.Is(err, di.ErrContainerDisposed) {
		return nil
	}
	return errors.Wrap(err, "dispose child")
}

// scopeFactory creates child scopes of the prepared container.
type scopeFactory struct {
	adapter *Adapter
}

func (f *scopeFactory) NewScope() (benchtypes.ServiceScope, error) {
	c := f.adapter.Container()
	if c == nil {
		return nil, errors.Wrap(adapter.ErrContainerDisposed, "new scope")
	}

	scope, err := c.NewScope()
	if err != nil {
		return nil, err
	}

	return serviceScope{scope}, nil
}

type serviceScope struct {
	*di.Container
}

func (s serviceScope) Resolve(t reflect.Type) (any, error) {
	return s.Container.Resolve(context.Background(), t)
}

var (
	_ adapter.Adapter         = (*Adapter)(nil)
	_ adapter.HTTPIntegration = (*Adapter)(nil)
)
