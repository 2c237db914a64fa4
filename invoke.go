package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-bench/internal/errors"
)

// Invoke calls the given function with parameters resolved from the provided Scope.
//
// The function may take any number of parameters which will be resolved from the container,
// and may return any number of results.
// A variadic parameter is resolved as an optional slice of all services of the element type.
// An [error] return parameter will be passed along and any other return parameters are ignored.
//
// Available options:
//   - [WithTagged] specifies a tag for a parameter.
//   - [Optional] injects the zero value if a parameter is not registered.
func Invoke(ctx context.Context, s Scope, fn any, opts ...InvokeOption) error {
	fnType := reflect.TypeOf(fn)
	fnVal := reflect.ValueOf(fn)

	// Make sure fn is a function
	if fnType == nil || fnType.Kind() != reflect.Func {
		return errors.Errorf("invoke %T: fn must be a function", fn)
	}

	deps := make([]dependency, fnType.NumIn())
	for i := range fnType.NumIn() {
		deps[i] = dependency{
			Key: serviceKey{Type: fnType.In(i)},
		}
	}
	if fnType.IsVariadic() {
		deps[len(deps)-1].Optional = true
	}

	// Create a config struct so we can apply options
	config := &invokeConfig{
		fn:   fnVal,
		deps: deps,
	}

	err := applyOptions(opts, func(opt InvokeOption) error {
		return opt.applyInvokeConfig(config)
	})
	if err != nil {
		return errors.Wrapf(err, "invoke %T", fn)
	}

	// Resolve deps from the Scope
	in := make([]reflect.Value, len(config.deps))
	for i, dep := range config.deps {
		var depVal any
		var depErr error

		var resolveOpts []ResolveOption
		if dep.Key.Tag != nil {
			resolveOpts = append(resolveOpts, WithTag(dep.Key.Tag))
		}

		switch {
		case dep.Key.Type == typeContext:
			depVal = ctx
		case dep.Key.Type == typeScope:
			depVal = s
		case dep.Optional && !s.Contains(dep.Key.Type, resolveOpts...):
			// Leave the zero value
		default:
			depVal, depErr = s.Resolve(ctx, dep.Key.Type, resolveOpts...)
		}

		if depErr != nil {
			// Stop at the first error
			return errors.Wrapf(depErr, "invoke %T", fn)
		}
		in[i] = safeReflectValue(dep.Key.Type, depVal)
	}

	// Check for a context error before we invoke the function
	if ctx.Err() != nil {
		return errors.Wrapf(ctx.Err(), "invoke %T", fn)
	}

	var out []reflect.Value
	if fnType.IsVariadic() {
		out = fnVal.CallSlice(in)
	} else {
		out = fnVal.Call(in)
	}

	// Return the first error return value, if any.
	// Don't wrap the error, return it as-is.
	for i := range fnType.NumOut() {
		if fnType.Out(i) == typeError {
			err, _ := out[i].Interface().(error)
			return err
		}
	}

	return nil
}

// InvokeOption is used to configure the behavior of Invoke.
//
// Available options:
//   - [WithTagged]
//   - [Optional]
type InvokeOption interface {
	applyInvokeConfig(*invokeConfig) error
}

type invokeConfig struct {
	fn   reflect.Value
	deps []dependency
}
