package di_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/internal/errors"
	"github.com/sectrean/di-bench/internal/testtypes"
)

func Test_Invoke(t *testing.T) {
	t.Parallel()

	t.Run("not func", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, 1234)
		LogError(t, err)

		assert.EqualError(t, err, "invoke int: fn must be a function")
	})

	t.Run("one arg", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		ctx := context.Background()
		called := false

		err = di.Invoke(ctx, c, func(a testtypes.InterfaceA) {
			assert.NotNil(t, a)
			called = true
		})

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("return error", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func(testtypes.InterfaceA) error {
			return errors.New("test invoke error")
		})
		LogError(t, err)

		assert.EqualError(t, err, "test invoke error")
	})

	t.Run("resolve error", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func(testtypes.InterfaceA) {})
		LogError(t, err)

		assert.EqualError(t, err, "invoke func(testtypes.InterfaceA): resolve testtypes.InterfaceA: unresolved dependency")
		assert.ErrorIs(t, err, di.ErrUnresolvedDependency)
	})

	t.Run("with context", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		ctx := ContextWithTestValue(context.Background(), "value")
		err = di.Invoke(ctx, c, func(ctx2 context.Context, a testtypes.InterfaceA) {
			assert.Equal(t, ctx, ctx2)
			assert.NotNil(t, a)
		})
		assert.NoError(t, err)
	})

	t.Run("with scope", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func(s di.Scope) {
			assert.Same(t, c, s)
		})
		assert.NoError(t, err)
	})

	t.Run("with context error", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = di.Invoke(ctx, c, func(context.Context) {})
		LogError(t, err)

		assert.EqualError(t, err, "invoke func(context.Context): context canceled")
	})

	t.Run("with tagged", func(t *testing.T) {
		a := &testtypes.StructA{}

		c, err := di.NewContainer(
			di.Register(a,
				di.As[testtypes.InterfaceA](),
				di.WithTag("tag"),
			),
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c,
			func(aa testtypes.InterfaceA) {
				assert.Same(t, a, aa)
			},
			di.WithTagged[testtypes.InterfaceA]("tag"),
		)
		assert.NoError(t, err)
	})

	t.Run("with tagged dep not found", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c,
			func(testtypes.InterfaceA) {},
			di.WithTagged[testtypes.InterfaceB]("tag"),
		)
		LogError(t, err)

		assert.EqualError(t, err, "invoke func(testtypes.InterfaceA): with tagged testtypes.InterfaceB: argument not found")
	})

	t.Run("optional", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		called := false

		err = di.Invoke(ctx, c,
			func(a testtypes.InterfaceA) {
				assert.Nil(t, a)
				called = true
			},
			di.Optional[testtypes.InterfaceA](),
		)
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("variadic", func(t *testing.T) {
		c, err := di.NewContainer(
			di.Register(testtypes.NewInterfaceA, di.Multiple()),
			di.Register(testtypes.NewInterfaceA, di.Multiple()),
		)
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func(aa ...testtypes.InterfaceA) {
			assert.Len(t, aa, 2)
		})
		assert.NoError(t, err)
	})

	t.Run("variadic not registered", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		ctx := context.Background()
		err = di.Invoke(ctx, c, func(aa ...testtypes.InterfaceA) {
			assert.Empty(t, aa)
		})
		assert.NoError(t, err)
	})
}
