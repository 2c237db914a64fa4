package dihttp

import (
	"go.uber.org/zap"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/internal/errors"
)

// RequestScopeMiddlewareOption is used to configure the middleware created by [NewRequestScopeMiddleware].
type RequestScopeMiddlewareOption interface {
	applyRequestScope(*requestScopeConfig) error
}

type requestScopeOption func(*requestScopeConfig) error

func (o requestScopeOption) applyRequestScope(c *requestScopeConfig) error {
	return o(c)
}

// WithContainerOptions sets the options to use when calling [di.Container.NewScope] for each request.
func WithContainerOptions(opts ...di.ContainerOption) RequestScopeMiddlewareOption {
	return requestScopeOption(func(c *requestScopeConfig) error {
		c.opts = append(c.opts, opts...)
		return nil
	})
}

// WithLogger sets the logger used by the default error handlers.
// The global zap logger is used by default.
func WithLogger(logger *zap.Logger) RequestScopeMiddlewareOption {
	return requestScopeOption(func(c *requestScopeConfig) error {
		if logger == nil {
			return errors.New("with logger: logger is nil")
		}

		c.logger = logger
		return nil
	})
}

// WithNewScopeErrorHandler sets the error handler for when there is an error creating a new scope.
func WithNewScopeErrorHandler(h NewScopeErrorHandler) RequestScopeMiddlewareOption {
	return requestScopeOption(func(c *requestScopeConfig) error {
		if h == nil {
			return errors.New("with new scope error handler: h is nil")
		}

		c.newScopeHandler = h
		return nil
	})
}

// WithScopeCloseErrorHandler sets the error handler for when there is an error closing the scope.
func WithScopeCloseErrorHandler(h ScopeCloseErrorHandler) RequestScopeMiddlewareOption {
	return requestScopeOption(func(c *requestScopeConfig) error {
		if h == nil {
			return errors.New("with scope close error handler: h is nil")
		}

		c.closeHandler = h
		return nil
	})
}
