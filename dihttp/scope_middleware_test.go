package dihttp_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/dicontext"
	"github.com/sectrean/di-bench/dihttp"
	"github.com/sectrean/di-bench/internal/errors"
	"github.com/sectrean/di-bench/internal/mocks"
	"github.com/sectrean/di-bench/internal/testtypes"
	"github.com/sectrean/di-bench/internal/testutils"
)

func Test_NewRequestScopeMiddleware(t *testing.T) {
	t.Run("nil parent", func(t *testing.T) {
		mw, err := dihttp.NewRequestScopeMiddleware(nil)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "new request scope middleware: parent is nil")
	})

	t.Run("with new scope error handler nil", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithNewScopeErrorHandler(nil),
		)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "new request scope middleware: with new scope error handler: h is nil")
	})

	t.Run("with scope close error handler nil", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithScopeCloseErrorHandler(nil),
		)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "new request scope middleware: with scope close error handler: h is nil")
	})

	t.Run("with logger nil", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithLogger(nil),
		)
		testutils.LogError(t, err)

		assert.Nil(t, mw)
		assert.EqualError(t, err, "new request scope middleware: with logger: logger is nil")
	})

	t.Run("multiple middleware calls", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c)
		require.NoError(t, err)

		handlerA := mw(http.NotFoundHandler())
		handlerB := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(500)
		}))

		gotA := RunRequest(t, handlerA, "/")
		assert.Equal(t, http.StatusNotFound, gotA)

		gotB := RunRequest(t, handlerB, "/")
		assert.Equal(t, http.StatusInternalServerError, gotB)
	})
}

func Test_Middleware(t *testing.T) {
	t.Run("per scope service", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA, di.PerContainer),
			di.Register(testtypes.NewInterfaceB, di.PerScope),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			b, resolveErr := dicontext.Resolve[testtypes.InterfaceB](ctx)
			assert.NotNil(t, b)
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("*http.Request service", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			req, resolveErr := dicontext.Resolve[*http.Request](ctx)
			require.NoError(t, resolveErr)

			assert.Equal(t, r.URL, req.URL)
			assert.Equal(t, r.Method, req.Method)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("container options", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithContainerOptions(
				di.Register(testtypes.NewInterfaceB),
			),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			b, resolveErr := dicontext.Resolve[testtypes.InterfaceB](ctx)

			assert.NotNil(t, b)
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)

		// The parent never sees the request scoped registrations
		assert.False(t, c.Contains(testtypes.TypeInterfaceB))
	})

	t.Run("concurrent requests", func(t *testing.T) {
		// Inject the *http.Request into a per scope service from many requests at once.
		// Each request must see the service built from its own request.
		const concurrency = 1000

		c, err := di.NewContainer(
			di.Register(func(r *http.Request) *testtypes.StructA {
				return &testtypes.StructA{
					Tag: r.URL.Path,
				}
			}, di.PerScope),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithContainerOptions(
				di.Register(testtypes.NewInterfaceA),
			),
		)
		require.NoError(t, err)

		tags := make(chan any, concurrency)
		expectedTags := make(chan any, concurrency)

		var handler http.Handler
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, resolveErr := dicontext.Resolve[*testtypes.StructA](r.Context())
			assert.NotNil(t, a)
			assert.NoError(t, resolveErr)

			assert.Equal(t, r.URL.Path, a.Tag)
			tags <- a.Tag
		})
		handler = mw(handler)

		testutils.RunParallel(concurrency, func(i int) {
			path := fmt.Sprintf("/%d", i)
			expectedTags <- path

			RunRequest(t, handler, path)
		})

		close(tags)
		close(expectedTags)

		assert.ElementsMatch(t, testutils.CollectChannel(expectedTags), testutils.CollectChannel(tags))
	})

	t.Run("new scope error", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		called := false

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithContainerOptions(
				di.Register(nil),
			),
			dihttp.WithNewScopeErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
				assert.NotNil(t, w)
				assert.NotNil(t, r)
				assert.EqualError(t, err, "new scope: register: funcOrValue is nil")
				called = true

				w.WriteHeader(599)
			}),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Fail(t, "handler should not get called")
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, 599, code)

		assert.True(t, called)
	})

	t.Run("default new scope error handler", func(t *testing.T) {
		logger, logs := testutils.NewObservedLogger(zapcore.ErrorLevel)

		c, err := di.NewContainer()
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithLogger(logger),
			dihttp.WithContainerOptions(
				di.Register(nil),
			),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Fail(t, "handler should not get called")
		})

		code := RunRequest(t, mw(handler), "/items")
		assert.Equal(t, http.StatusInternalServerError, code)

		entries := logs.FilterMessage("error creating new HTTP request scope").AllUntimed()
		require.Len(t, entries, 1)
		assert.Equal(t, "/items", entries[0].ContextMap()["path"])
	})

	t.Run("close error", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(func() testtypes.InterfaceA {
				a := mocks.NewInterfaceAMock(t)
				a.EXPECT().
					Close(mock.Anything).
					Return(errors.New("close error"))

				return a
			}, di.Transient),
		)
		require.NoError(t, err)

		called := false

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithScopeCloseErrorHandler(func(r *http.Request, err error) {
				assert.NotNil(t, r)
				assert.EqualError(t, err, "close: close error")
				called = true
			}),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, resolveErr := dicontext.Resolve[testtypes.InterfaceA](r.Context())
			assert.NotNil(t, a)
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)

		assert.True(t, called)
	})

	t.Run("default close error handler", func(t *testing.T) {
		logger, logs := testutils.NewObservedLogger(zapcore.ErrorLevel)

		c, err := di.NewContainer(
			di.Register(func() testtypes.InterfaceA {
				a := mocks.NewInterfaceAMock(t)
				a.EXPECT().
					Close(mock.Anything).
					Return(errors.New("close error"))

				return a
			}),
		)
		require.NoError(t, err)

		mw, err := dihttp.NewRequestScopeMiddleware(c,
			dihttp.WithLogger(logger),
		)
		require.NoError(t, err)

		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, resolveErr := dicontext.Resolve[testtypes.InterfaceA](r.Context())
			assert.NoError(t, resolveErr)

			w.WriteHeader(http.StatusOK)
		})

		code := RunRequest(t, mw(handler), "/")
		assert.Equal(t, http.StatusOK, code)

		assert.Equal(t, 1, logs.FilterMessage("error closing HTTP request scope").Len())
	})
}

func Test_Middleware_ChiRouter(t *testing.T) {
	c, err := di.NewContainer(
		di.Register(func(r *http.Request) *testtypes.StructA {
			return &testtypes.StructA{
				Tag: chi.URLParam(r, "id"),
			}
		}, di.PerScope),
	)
	require.NoError(t, err)

	mw, err := dihttp.NewRequestScopeMiddleware(c)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		a := dicontext.MustResolve[*testtypes.StructA](r.Context())
		_, _ = w.Write([]byte(fmt.Sprint(a.Tag)))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	for _, id := range []string{"1", "2", "abc"} {
		res, err := srv.Client().Get(srv.URL + "/items/" + id)
		require.NoError(t, err)

		body, err := io.ReadAll(res.Body)
		_ = res.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, id, string(body))
	}
}

func RunRequest(t *testing.T, h http.Handler, path string) int {
	res := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, http.NoBody)
	require.NoError(t, err)

	h.ServeHTTP(res, req)
	return res.Code
}
