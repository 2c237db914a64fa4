package dihttp

import (
	"net/http"
	"slices"

	"go.uber.org/zap"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/dicontext"
	"github.com/sectrean/di-bench/internal/errors"
)

// NewRequestScopeMiddleware creates middleware that creates a new child scope of parent for each request.
// The scope is closed after the request has been processed.
//
// The current [*http.Request] is automatically registered with the scope.
// It can be used as a dependency for [di.PerScope] services.
//
// The scope is stored on the request context and can be accessed using
// [dicontext.Scope], [dicontext.Resolve], or [dicontext.MustResolve].
//
// Available options:
//   - [WithContainerOptions] sets the options used when creating each request scope.
//   - [WithLogger] sets the logger used by the default error handlers.
//   - [WithNewScopeErrorHandler] sets the error handler for when there is an error creating a new scope.
//   - [WithScopeCloseErrorHandler] sets the error handler for when there is an error closing the scope.
func NewRequestScopeMiddleware(
	parent *di.Container,
	opts ...RequestScopeMiddlewareOption,
) (func(http.Handler) http.Handler, error) {
	if parent == nil {
		return nil, errors.New("new request scope middleware: parent is nil")
	}

	cfg := &requestScopeConfig{
		parent: parent,
		logger: zap.L(),
	}

	var errs errors.MultiError
	for _, opt := range opts {
		errs = errs.Append(opt.applyRequestScope(cfg))
	}
	if err := errs.Wrap("new request scope middleware"); err != nil {
		return nil, err
	}

	if cfg.newScopeHandler == nil {
		cfg.newScopeHandler = defaultNewScopeErrorHandler(cfg.logger)
	}
	if cfg.closeHandler == nil {
		cfg.closeHandler = defaultScopeCloseErrorHandler(cfg.logger)
	}

	return func(next http.Handler) http.Handler {
		return &requestScopeMiddleware{
			cfg:  cfg,
			next: next,
		}
	}, nil
}

// NewScopeErrorHandler is a function that writes an error response to the client.
// This is called by the scope middleware when there is an error creating the child scope.
//
// The default handler logs the error and writes a 500 Internal Server Error response.
type NewScopeErrorHandler = func(w http.ResponseWriter, r *http.Request, err error)

func defaultNewScopeErrorHandler(logger *zap.Logger) NewScopeErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.Error("error creating new HTTP request scope",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// ScopeCloseErrorHandler is a function that handles errors when closing the child scope
// after the request has completed.
//
// The default handler logs the error.
type ScopeCloseErrorHandler = func(r *http.Request, err error)

func defaultScopeCloseErrorHandler(logger *zap.Logger) ScopeCloseErrorHandler {
	return func(r *http.Request, err error) {
		logger.Error("error closing HTTP request scope",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
}

type requestScopeConfig struct {
	parent          *di.Container
	opts            []di.ContainerOption
	logger          *zap.Logger
	newScopeHandler NewScopeErrorHandler
	closeHandler    ScopeCloseErrorHandler
}

type requestScopeMiddleware struct {
	cfg  *requestScopeConfig
	next http.Handler
}

func (m *requestScopeMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts := append(slices.Clip(m.cfg.opts),
		// Register the *http.Request with the new scope
		di.Register(r),
	)

	scope, err := m.cfg.parent.NewScope(opts...)
	if err != nil {
		m.cfg.newScopeHandler(w, r, err)
		return
	}

	ctx := dicontext.WithScope(r.Context(), scope)
	m.next.ServeHTTP(w, r.WithContext(ctx))

	err = scope.Close(ctx)
	if err != nil {
		m.cfg.closeHandler(r, err)
	}
}
