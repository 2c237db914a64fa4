package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sectrean/di-bench/internal/errors"
)

func Test_Wrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, errors.Wrap(nil, "op"))
		assert.NoError(t, errors.Wrapf(nil, "op %d", 1))
	})

	t.Run("wraps", func(t *testing.T) {
		base := errors.New("base")
		err := errors.Wrapf(base, "op %d", 1)

		assert.EqualError(t, err, "op 1: base")
		assert.True(t, errors.Is(err, base))
	})
}

func Test_MultiError(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var errs errors.MultiError
		errs = errs.Append(nil)

		assert.Equal(t, 0, errs.Len())
		assert.NoError(t, errs.Join())
		assert.NoError(t, errs.Wrap("op"))
	})

	t.Run("joined", func(t *testing.T) {
		a := errors.New("a")
		b := errors.New("b")

		var errs errors.MultiError
		errs = errs.Append(a).Append(nil).Append(b)

		err := errs.Wrapf("close %s", "scope")
		assert.EqualError(t, err, "close scope: a\nb")
		assert.True(t, errors.Is(err, a))
		assert.True(t, errors.Is(err, b))
	})
}
