package di_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-bench"
	"github.com/sectrean/di-bench/internal/testtypes"
)

func Test_WithModule(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		mod := di.Module{
			di.Register(testtypes.NewInterfaceA),
			di.Register(testtypes.NewInterfaceB),
		}

		c, err := di.NewContainer(
			di.WithModule(mod),
			di.Register(testtypes.NewInterfaceC),
		)
		require.NoError(t, err)

		ctx := context.Background()
		got, err := di.Resolve[testtypes.InterfaceC](ctx, c)
		assert.NotNil(t, got)
		assert.NoError(t, err)
	})

	t.Run("nested", func(t *testing.T) {
		inner := di.Module{
			di.Register(testtypes.NewInterfaceA),
		}
		outer := di.Module{
			di.WithModule(inner),
			di.Register(testtypes.NewInterfaceB),
			nil,
		}

		c, err := di.NewContainer(
			di.WithModule(outer),
		)
		require.NoError(t, err)

		assert.True(t, c.Contains(testtypes.TypeInterfaceA))
		assert.True(t, c.Contains(testtypes.TypeInterfaceB))
	})

	t.Run("module registration order", func(t *testing.T) {
		f := &testtypes.Factory{}

		c, err := di.NewContainer(
			di.Register(f.NewInterfaceA, di.Multiple()),
			di.WithModule(di.Module{
				di.Register(f.NewInterfaceA, di.Multiple()),
				di.Register(f.NewInterfaceA, di.Multiple()),
			}),
		)
		require.NoError(t, err)

		ctx := context.Background()
		got, err := di.ResolveAll[testtypes.InterfaceA](ctx, c)
		assert.Equal(t, testtypes.ExpectInterfaceA(3), got)
		assert.NoError(t, err)
	})
}
