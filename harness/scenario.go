package harness

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"

	"github.com/sectrean/di-bench/adapter"
	"github.com/sectrean/di-bench/benchtypes"
	"github.com/sectrean/di-bench/catalog"
	"github.com/sectrean/di-bench/internal/errors"
)

// Scenario is a benchmark workload run against a prepared adapter.
type Scenario struct {
	Name string
	// Requires are the capabilities an adapter must have for the scenario to run.
	Requires adapter.Capabilities
	// Basic scenarios prepare the adapter with PrepareBasic.
	Basic bool

	setup  func(a adapter.Adapter) (iteration, error)
	expect func(caps adapter.Capabilities, iterations int) error
}

// iteration runs one unit of the workload. It must be safe for concurrent use.
type iteration func(ctx context.Context) error

// Scenarios returns every scenario in the order they are run.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:   "Singleton",
			Basic:  true,
			setup:  resolveTargets(typesOf[benchtypes.Singleton1, benchtypes.Singleton2, benchtypes.Singleton3]()...),
			expect: expectOnce(typesOf[benchtypes.Singleton1, benchtypes.Singleton2, benchtypes.Singleton3]()...),
		},
		{
			Name:   "Transient",
			Basic:  true,
			setup:  resolveTargets(typesOf[benchtypes.Transient1, benchtypes.Transient2, benchtypes.Transient3]()...),
			expect: expectPerIteration(1, typesOf[benchtypes.Transient1, benchtypes.Transient2, benchtypes.Transient3]()...),
		},
		{
			Name:  "Combined",
			Basic: true,
			setup: resolveTargets(typesOf[benchtypes.Combined1, benchtypes.Combined2, benchtypes.Combined3]()...),
			expect: expectAll(
				expectOnce(typesOf[benchtypes.Singleton1, benchtypes.Singleton2, benchtypes.Singleton3]()...),
				expectPerIteration(1, typesOf[benchtypes.Transient1, benchtypes.Transient2, benchtypes.Transient3]()...),
			),
		},
		{
			Name:  "Complex",
			Basic: true,
			setup: resolveTargets(typesOf[benchtypes.Complex1, benchtypes.Complex2, benchtypes.Complex3]()...),
			expect: expectAll(
				expectOnce(typesOf[benchtypes.FirstService, benchtypes.SecondService, benchtypes.ThirdService]()...),
				expectPerIteration(3, typesOf[benchtypes.SubObjectOne, benchtypes.SubObjectTwo, benchtypes.SubObjectThree]()...),
			),
		},
		{
			Name:     "Generics",
			Requires: adapter.Capabilities{Generics: true},
			setup: resolveTargets(
				reflect.TypeFor[*benchtypes.ImportGeneric[int]](),
				reflect.TypeFor[*benchtypes.ImportGeneric[float64]](),
				reflect.TypeFor[*benchtypes.ImportGeneric[string]](),
			),
			expect: expectPerIteration(1,
				reflect.TypeFor[benchtypes.GenericInterface[int]](),
				reflect.TypeFor[benchtypes.GenericInterface[float64]](),
				reflect.TypeFor[benchtypes.GenericInterface[string]](),
			),
		},
		{
			Name:     "Multiple",
			Requires: adapter.Capabilities{Multiple: true},
			setup:    resolveMultiple,
			expect:   expectPerIteration(3*len(benchtypes.SimpleAdapterNames), reflect.TypeFor[benchtypes.SimpleAdapter]()),
		},
		{
			Name:     "ChildContainer",
			Requires: adapter.Capabilities{ChildContainer: true},
			setup:    resolveFromChild,
			expect: expectAll(
				expectOnce(typesOf[benchtypes.Singleton1, benchtypes.Singleton2, benchtypes.Singleton3]()...),
				expectPerIteration(3, reflect.TypeFor[*benchtypes.ScopedCombined]()),
			),
		},
		{
			Name:     "Framework",
			Requires: adapter.Capabilities{FrameworkIntegration: true},
			setup:    serveRequests,
			expect: expectPerIteration(1,
				typesOf[benchtypes.RequestService1, benchtypes.RequestService2, benchtypes.RequestService3]()...,
			),
		},
		{
			Name:  "Prepare",
			setup: prepareAgain,
		},
	}
}

func typesOf[T1, T2, T3 any]() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[T1](), reflect.TypeFor[T2](), reflect.TypeFor[T3]()}
}

// checkResolved returns an error if val is not a non-nil service of type t.
func checkResolved(t reflect.Type, val any) error {
	if val == nil {
		return errors.Errorf("resolve %s: nil service", t)
	}
	if vt := reflect.TypeOf(val); !vt.AssignableTo(t) {
		return errors.Errorf("resolve %s: %s is not assignable", t, vt)
	}
	return nil
}

func resolveAll(r adapter.Resolver, targets []reflect.Type) error {
	for _, t := range targets {
		val, err := r.Resolve(t)
		if err != nil {
			return err
		}
		if err := checkResolved(t, val); err != nil {
			return err
		}
	}
	return nil
}

func resolveTargets(targets ...reflect.Type) func(adapter.Adapter) (iteration, error) {
	return func(a adapter.Adapter) (iteration, error) {
		return func(context.Context) error {
			return resolveAll(a, targets)
		}, nil
	}
}

func resolveMultiple(a adapter.Adapter) (iteration, error) {
	targets := typesOf[benchtypes.ImportMultiple1, benchtypes.ImportMultiple2, benchtypes.ImportMultiple3]()

	return func(context.Context) error {
		for _, t := range targets {
			val, err := a.Resolve(t)
			if err != nil {
				return err
			}
			if err := checkResolved(t, val); err != nil {
				return err
			}

			adapters := val.(interface{ Adapters() []benchtypes.SimpleAdapter }).Adapters()
			if len(adapters) != len(benchtypes.SimpleAdapterNames) {
				return errors.Errorf("resolve %s: got %d adapters, want %d",
					t, len(adapters), len(benchtypes.SimpleAdapterNames))
			}
			for i, sa := range adapters {
				if sa.Name() != benchtypes.SimpleAdapterNames[i] {
					return errors.Errorf("resolve %s: adapter %d is %q, want %q",
						t, i, sa.Name(), benchtypes.SimpleAdapterNames[i])
				}
			}
		}
		return nil
	}, nil
}

func resolveFromChild(a adapter.Adapter) (iteration, error) {
	targets := []reflect.Type{
		reflect.TypeFor[benchtypes.Combined1](),
		reflect.TypeFor[benchtypes.Combined2](),
		reflect.TypeFor[benchtypes.Combined3](),
		reflect.TypeFor[benchtypes.Transient1](),
	}

	return func(context.Context) (err error) {
		child, err := a.CreateChildAdapter()
		if err != nil {
			return err
		}
		if err := child.Prepare(); err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, child.Dispose())
		}()

		return resolveAll(child, targets)
	}, nil
}

func serveRequests(a adapter.Adapter) (iteration, error) {
	h, ok := a.(adapter.HTTPIntegration)
	if !ok {
		return nil, errors.Wrapf(adapter.ErrUnsupportedOperation, "%s: no HTTP integration", a.Name())
	}

	mw, err := h.Middleware()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(mw)
	for _, route := range catalog.FrameworkRoutes {
		r.Get(route.Pattern, func(w http.ResponseWriter, req *http.Request) {
			val, err := h.ResolveRequest(req, route.Controller)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}

			c, ok := val.(benchtypes.Handler)
			if !ok || c.Path() != req.URL.Path {
				http.Error(w, "unexpected controller", http.StatusInternalServerError)
				return
			}

			c.Handle(w, chi.URLParam(req, "id"))
		})
	}

	var seq atomic.Int64
	return func(ctx context.Context) error {
		id := strconv.FormatInt(seq.Add(1), 10)

		for _, route := range catalog.FrameworkRoutes {
			path := strings.Replace(route.Pattern, "{id}", id, 1)
			req := httptest.NewRequest(http.MethodGet, path, http.NoBody).WithContext(ctx)
			res := httptest.NewRecorder()

			r.ServeHTTP(res, req)

			if res.Code != http.StatusOK {
				return errors.Errorf("GET %s: status %d: %s", path, res.Code, strings.TrimSpace(res.Body.String()))
			}
			if body := res.Body.String(); !strings.HasSuffix(body, ":"+id) {
				return errors.Errorf("GET %s: unexpected body %q", path, body)
			}
		}
		return nil
	}, nil
}

func prepareAgain(a adapter.Adapter) (iteration, error) {
	return func(context.Context) error {
		return a.Prepare()
	}, nil
}

func expectAll(expects ...func(adapter.Capabilities, int) error) func(adapter.Capabilities, int) error {
	return func(caps adapter.Capabilities, iterations int) error {
		var errs errors.MultiError
		for _, e := range expects {
			errs = errs.Append(e(caps, iterations))
		}
		return errs.Join()
	}
}

// expectOnce checks each service was constructed exactly once.
func expectOnce(types ...reflect.Type) func(adapter.Capabilities, int) error {
	return func(adapter.Capabilities, int) error {
		var errs errors.MultiError
		for _, t := range types {
			if n := benchtypes.InstancesOf(t); n != 1 {
				errs = errs.Append(errors.Errorf("%s: %d instances, want 1", t, n))
			}
		}
		return errs.Join()
	}
}

// expectPerIteration checks each service was constructed perIteration times per iteration.
// Adapters that cache transient services are not checked.
func expectPerIteration(perIteration int, types ...reflect.Type) func(adapter.Capabilities, int) error {
	return func(caps adapter.Capabilities, iterations int) error {
		if !caps.Transient {
			return nil
		}

		want := int64(perIteration * iterations)

		var errs errors.MultiError
		for _, t := range types {
			if n := benchtypes.InstancesOf(t); n != want {
				errs = errs.Append(errors.Errorf("%s: %d instances, want %d", t, n, want))
			}
		}
		return errs.Join()
	}
}
