// Package dig implements [adapter.Adapter] with go.uber.org/dig.
//
// A dig container constructs every value at most once, has no ordered
// multi-binding and no open generics, so only the basic catalog is registered.
package dig

import (
	"net/http"
	"reflect"
	"sync"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/sectrean/di-bench/adapter"
	"github.com/sectrean/di-bench/catalog"
	"github.com/sectrean/di-bench/internal/errors"
)

// Adapter prepares a [dig.Container] with the basic catalog.
type Adapter struct {
	mu        sync.RWMutex
	container *dig.Container
	logger    *zap.Logger
}

// Option configures an [Adapter].
type Option func(*Adapter)

// WithLogger sets the logger of the adapter.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
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

func (*Adapter) Name() string { return "dig" }
func (*Adapter) URL() string  { return "https://github.com/uber-go/dig" }

func (*Adapter) Capabilities() adapter.Capabilities {
	return adapter.Capabilities{}
}

// Prepare registers the basic catalog. The other groups are not supported.
func (a *Adapter) Prepare() error {
	return errors.Wrap(a.prepare(catalog.Basic()), "prepare")
}

func (a *Adapter) PrepareBasic() error {
	return errors.Wrap(a.prepare(catalog.Basic()), "prepare basic")
}

func (a *Adapter) prepare(groups []catalog.Group) error {
	c := dig.New()

	for _, g := range groups {
		if len(g.Generics) > 0 {
			return errors.Wrapf(adapter.ErrUnsupportedOperation, "group %s: open generics", g.Name)
		}

		for _, r := range g.Registrations {
			if r.Multiple {
				return errors.Wrapf(adapter.ErrUnsupportedOperation, "register %s: multiple", r)
			}

			if err := c.Provide(r.New); err != nil {
				return errors.Wrapf(err, "register %s", r)
			}
		}
	}

	a.mu.Lock()
	a.container = c
	a.mu.Unlock()

	a.logger.Debug("container prepared",
		zap.String("adapter", "dig"),
		zap.Int("groups", len(groups)),
	)
	return nil
}

func (a *Adapter) Resolve(t reflect.Type) (any, error) {
	a.mu.RLock()
	c := a.container
	a.mu.RUnlock()

	if c == nil {
		return nil, errors.Wrapf(adapter.ErrContainerDisposed, "resolve %s", t)
	}

	// dig only resolves the parameters of a function it invokes
	var val any
	fn := reflect.MakeFunc(
		reflect.FuncOf([]reflect.Type{t}, nil, false),
		func(args []reflect.Value) []reflect.Value {
			val = args[0].Interface()
			return nil
		},
	)

	if err := c.Invoke(fn.Interface()); err != nil {
		return nil, errors.Wrapf(err, "resolve %s", t)
	}

	return val, nil
}

func (*Adapter) CreateChildAdapter() (adapter.ChildAdapter, error) {
	return nil, errors.Wrap(adapter.ErrUnsupportedOperation, "create child adapter")
}

// Middleware is not supported.
func (*Adapter) Middleware() (func(http.Handler) http.Handler, error) {
	return nil, errors.Wrap(adapter.ErrUnsupportedOperation, "middleware")
}

func (*Adapter) ResolveRequest(_ *http.Request, t reflect.Type) (any, error) {
	return nil, errors.Wrapf(adapter.ErrUnsupportedOperation, "resolve %s", t)
}

// Dispose releases the container. dig has nothing to close.
func (a *Adapter) Dispose() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.container = nil
	return nil
}

var _ adapter.Adapter = (*Adapter)(nil)
