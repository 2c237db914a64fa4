package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-bench/internal/errors"
)

// Closer is used to close a service when closing the Container.
//
// If a resolved service implements Closer, or one of the other compatible method signatures,
// it will be called when the Container that owns the instance is closed.
//
// Any of these method signatures are supported:
//
//	Close(context.Context) error
//	Close(context.Context)
//	Close() error
//	Close()
//	Dispose() error
//	Dispose()
//
// See related options:
//   - [IgnoreCloser]
//   - [WithCloser]
//   - [WithCloseFunc]
type Closer interface {
	Close(ctx context.Context) error
}

// WithCloser is used to close a service when the Container is closed.
//
// Value services are not closed by default. To close a value service, use this option.
func WithCloser() RegisterOption {
	return registerOption(func(b *bindingConfig) error {
		b.closerFactory = getCloser
		return nil
	})
}

// IgnoreCloser is used when you do not want a service that implements Closer, or another
// supported method signature, to be closed when the Container is closed.
//
// This is useful when you want to manage the lifecycle of a service outside of the Container.
func IgnoreCloser() RegisterOption {
	return registerOption(func(b *bindingConfig) error {
		b.closerFactory = nil
		return nil
	})
}

type closerFactory func(val any) Closer

// WithCloseFunc can be used to set a custom function to call for a service when the Container is closed.
//
// This is useful if a service has a method called Shutdown or Stop that should be
// used to close the service.
//
// Example:
//
//	di.WithCloseFunc(func(ctx context.Context, s *http.Server) error {
//		return s.Shutdown(ctx)
//	})
//
// This option will return an error if the service type is not assignable to T.
func WithCloseFunc[T any](f func(context.Context, T) error) RegisterOption {
	return registerOption(func(b *bindingConfig) error {
		closerType := reflect.TypeFor[T]()
		if !b.t.AssignableTo(closerType) {
			return errors.Errorf("with close func: service type %s is not assignable to %s",
				b.t, closerType)
		}

		b.closerFactory = func(val any) Closer {
			return closeFunc(func(ctx context.Context) error {
				return f(ctx, val.(T))
			})
		}
		return nil
	})
}

// getCloser returns the Closer interface if the given value implements it,
// or any of the compatible method signatures.
func getCloser(val any) Closer {
	switch c := val.(type) {
	case Closer:
		return c
	case closerWithContextNoError:
		return closeFunc(func(ctx context.Context) error {
			c.Close(ctx)
			return nil
		})
	case closerNoContextWithError:
		return closeFunc(func(context.Context) error {
			return c.Close()
		})
	case closerNoContextNoError:
		return closeFunc(func(context.Context) error {
			c.Close()
			return nil
		})
	case disposerWithError:
		return closeFunc(func(context.Context) error {
			return c.Dispose()
		})
	case disposerNoError:
		return closeFunc(func(context.Context) error {
			c.Dispose()
			return nil
		})
	default:
		return nil
	}
}

type closerWithContextNoError interface {
	Close(ctx context.Context)
}

type closerNoContextWithError interface {
	Close() error
}

type closerNoContextNoError interface {
	Close()
}

type disposerWithError interface {
	Dispose() error
}

type disposerNoError interface {
	Dispose()
}

type closeFunc func(context.Context) error

func (f closeFunc) Close(ctx context.Context) error {
	return f(ctx)
}
