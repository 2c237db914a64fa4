package dig_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-bench/adapter"
	"github.com/sectrean/di-bench/adapter/dig"
	"github.com/sectrean/di-bench/benchtypes"
	"github.com/sectrean/di-bench/internal/testutils"
)

func Test_Adapter(t *testing.T) {
	t.Run("capabilities", func(t *testing.T) {
		a := dig.New()

		assert.Equal(t, "dig", a.Name())
		assert.Equal(t, adapter.Capabilities{}, a.Capabilities())
	})

	t.Run("resolve basic", func(t *testing.T) {
		a := dig.New()
		require.NoError(t, a.Prepare())
		defer a.Dispose()

		d, err := adapter.Resolve[benchtypes.DummyTen](a)
		require.NoError(t, err)
		assert.NotNil(t, d)

		c, err := adapter.Resolve[benchtypes.Complex2](a)
		require.NoError(t, err)
		assert.NotNil(t, c.Graph().SubTwo)
	})

	t.Run("singleton", func(t *testing.T) {
		a := dig.New()
		require.NoError(t, a.PrepareBasic())
		defer a.Dispose()

		s1, err := adapter.Resolve[benchtypes.Singleton2](a)
		require.NoError(t, err)
		s2, err := adapter.Resolve[benchtypes.Singleton2](a)
		require.NoError(t, err)

		assert.Same(t, s1, s2)
	})

	t.Run("transient is cached", func(t *testing.T) {
		a := dig.New()
		require.NoError(t, a.PrepareBasic())
		defer a.Dispose()

		t1, err := adapter.Resolve[benchtypes.Transient2](a)
		require.NoError(t, err)
		t2, err := adapter.Resolve[benchtypes.Transient2](a)
		require.NoError(t, err)

		assert.Same(t, t1, t2)
		assert.False(t, a.Capabilities().Transient)
	})

	t.Run("not registered", func(t *testing.T) {
		a := dig.New()
		require.NoError(t, a.Prepare())
		defer a.Dispose()

		_, err := adapter.Resolve[[]benchtypes.SimpleAdapter](a)
		testutils.LogError(t, err)
		assert.Error(t, err)
	})

	t.Run("child container", func(t *testing.T) {
		a := dig.New()

		child, err := a.CreateChildAdapter()
		testutils.LogError(t, err)

		assert.Nil(t, child)
		assert.ErrorIs(t, err, adapter.ErrUnsupportedOperation)
	})

	t.Run("middleware", func(t *testing.T) {
		a := dig.New()

		mw, err := a.Middleware()
		assert.Nil(t, mw)
		assert.ErrorIs(t, err, adapter.ErrUnsupportedOperation)
	})

	t.Run("disposed", func(t *testing.T) {
		a := dig.New()
		require.NoError(t, a.PrepareBasic())
		require.NoError(t, a.Dispose())

		_, err := a.Resolve(reflect.TypeFor[benchtypes.DummyOne]())
		testutils.LogError(t, err)
		assert.ErrorIs(t, err, adapter.ErrContainerDisposed)
	})
}
