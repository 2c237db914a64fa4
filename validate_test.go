package di_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/internal/testtypes"
)

func Test_WithDependencyValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
			di.Register(testtypes.NewInterfaceB),
			di.Register(testtypes.NewInterfaceC),
			di.Register(func(context.Context, di.Scope, testtypes.InterfaceC) testtypes.InterfaceD {
				return &testtypes.StructD{}
			}),
			di.WithDependencyValidation(),
		)
		assert.NotNil(t, c)
		assert.NoError(t, err)
	})

	t.Run("options order does not matter", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithDependencyValidation(),
			di.Register(testtypes.NewInterfaceB),
			di.Register(testtypes.NewInterfaceA),
		)
		assert.NotNil(t, c)
		assert.NoError(t, err)
	})

	t.Run("dependency not registered", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceB),
			di.WithDependencyValidation(),
		)
		LogError(t, err)

		assert.Nil(t, c)
		assert.EqualError(t, err, "new container: with dependency validation: "+
			"binding func(testtypes.InterfaceA) testtypes.InterfaceB: dependency testtypes.InterfaceA: unresolved dependency")
		assert.ErrorIs(t, err, di.ErrUnresolvedDependency)
	})

	t.Run("optional dependency not registered", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceB, di.Optional[testtypes.InterfaceA]()),
			di.Register(func(...testtypes.InterfaceC) testtypes.InterfaceD { return nil }),
			di.WithDependencyValidation(),
		)
		assert.NotNil(t, c)
		assert.NoError(t, err)
	})

	t.Run("slice dependency not registered", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(func([]testtypes.InterfaceA) testtypes.InterfaceB { return nil }),
			di.WithDependencyValidation(),
		)
		LogError(t, err)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, di.ErrUnresolvedDependency)
	})

	t.Run("cycle", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(func(testtypes.InterfaceB) testtypes.InterfaceA { return nil }),
			di.Register(testtypes.NewInterfaceB),
			di.WithDependencyValidation(),
		)
		LogError(t, err)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, di.ErrCyclicDependency)
	})

	t.Run("child scope uses parent registrations", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		scope, err := c.NewScope(
			di.Register(testtypes.NewInterfaceB),
			di.WithDependencyValidation(),
		)
		assert.NotNil(t, scope)
		assert.NoError(t, err)
	})

	t.Run("open generic dependency", func(t *testing.T) {
		c, err := di.NewContainer(
			di.RegisterGeneric(di.GenericOf[testtypes.Getter[any]](),
				di.SpecializeWith(testtypes.NewGetter[int]),
			),
			di.Register(testtypes.NewHolder[int]),
			di.WithDependencyValidation(),
		)
		assert.NotNil(t, c)
		assert.NoError(t, err)
	})
}
