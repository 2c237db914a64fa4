package harness_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/sectrean/di-bench/adapter"
	"github.com/sectrean/di-bench/adapter/dig"
	"github.com/sectrean/di-bench/adapter/dikit"
	"github.com/sectrean/di-bench/benchtypes"
	"github.com/sectrean/di-bench/harness"
	"github.com/sectrean/di-bench/internal/errors"
	"github.com/sectrean/di-bench/internal/testutils"
)

func Test_NewRunner(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := harness.NewRunner()
		require.NoError(t, err)
		assert.NotNil(t, r)
	})

	t.Run("invalid options", func(t *testing.T) {
		r, err := harness.NewRunner(
			harness.WithIterations(0),
			harness.WithWorkers(-1),
			harness.WithScenarios("Unknown"),
			harness.WithModes(),
			harness.WithLogger(nil),
		)
		testutils.LogError(t, err)

		assert.Nil(t, r)
		assert.ErrorContains(t, err, "new runner: ")
		assert.ErrorContains(t, err, "with iterations: 0 is not positive")
		assert.ErrorContains(t, err, "with workers: -1 is not positive")
		assert.ErrorContains(t, err, `with scenarios: unknown scenario "Unknown"`)
		assert.ErrorContains(t, err, "with modes: no modes")
		assert.ErrorContains(t, err, "with logger: logger is nil")
	})
}

func Test_Scenarios(t *testing.T) {
	var names []string
	for _, s := range harness.Scenarios() {
		names = append(names, s.Name)
	}

	assert.Equal(t, []string{
		"Singleton", "Transient", "Combined", "Complex", "Generics",
		"Multiple", "ChildContainer", "Framework", "Prepare",
	}, names)
}

func Test_Runner_Run(t *testing.T) {
	t.Run("full capabilities", func(t *testing.T) {
		logger, logs := testutils.NewObservedLogger(zapcore.InfoLevel)

		r, err := harness.NewRunner(
			harness.WithIterations(20),
			harness.WithWorkers(3),
			harness.WithLogger(logger),
		)
		require.NoError(t, err)

		report, err := r.Run(context.Background(), dikit.New())
		require.NoError(t, err)

		assert.NoError(t, report.Err())
		assert.Len(t, report.Results, len(harness.Scenarios())*2)
		for _, res := range report.Results {
			assert.False(t, res.Skipped, res.Scenario)
			assert.Equal(t, 20, res.Iterations)
		}

		assert.Equal(t, len(report.Results), logs.FilterMessage("scenario completed").Len())
	})

	t.Run("partial capabilities", func(t *testing.T) {
		r, err := harness.NewRunner(
			harness.WithIterations(10),
			harness.WithModes(harness.Sequential),
		)
		require.NoError(t, err)

		report, err := r.Run(context.Background(), dig.New())
		require.NoError(t, err)
		assert.NoError(t, report.Err())

		skipped := make(map[string]string)
		for _, res := range report.Results {
			if res.Skipped {
				skipped[res.Scenario] = res.Reason
			}
		}

		assert.Equal(t, map[string]string{
			"Generics":       "unsupported: Generics",
			"Multiple":       "unsupported: Multiple",
			"ChildContainer": "unsupported: ChildContainer",
			"Framework":      "unsupported: FrameworkIntegration",
		}, skipped)
	})

	t.Run("selected scenarios", func(t *testing.T) {
		r, err := harness.NewRunner(
			harness.WithIterations(5),
			harness.WithScenarios("complex", "Framework"),
			harness.WithModes(harness.Contended),
		)
		require.NoError(t, err)

		report, err := r.Run(context.Background(), dikit.New())
		require.NoError(t, err)
		require.Len(t, report.Results, 2)

		assert.Equal(t, "Complex", report.Results[0].Scenario)
		assert.Equal(t, "Framework", report.Results[1].Scenario)
		assert.Equal(t, harness.Contended, report.Results[1].Mode)
		assert.NoError(t, report.Err())
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r, err := harness.NewRunner()
		require.NoError(t, err)

		report, err := r.Run(ctx, dikit.New())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, report.Results)
	})

	t.Run("resolve failure", func(t *testing.T) {
		r, err := harness.NewRunner(
			harness.WithIterations(5),
			harness.WithScenarios("Singleton"),
		)
		require.NoError(t, err)

		report, err := r.Run(context.Background(), &brokenAdapter{Adapter: dikit.New()})
		require.NoError(t, err)

		failed := report.Failed()
		require.Len(t, failed, 2)
		assert.ErrorContains(t, failed[0].Err, "nil service")
		testutils.LogError(t, report.Err())
	})

	t.Run("lifetime not honoured", func(t *testing.T) {
		r, err := harness.NewRunner(
			harness.WithIterations(5),
			harness.WithScenarios("Singleton"),
			harness.WithModes(harness.Sequential),
		)
		require.NoError(t, err)

		report, err := r.Run(context.Background(), &transientAdapter{Adapter: dikit.New()})
		require.NoError(t, err)

		failed := report.Failed()
		require.Len(t, failed, 1)
		assert.ErrorContains(t, failed[0].Err, "5 instances, want 1")
	})

	t.Run("prepare failure", func(t *testing.T) {
		r, err := harness.NewRunner(
			harness.WithIterations(1),
			harness.WithScenarios("Transient"),
			harness.WithModes(harness.Sequential),
		)
		require.NoError(t, err)

		report, err := r.Run(context.Background(), &brokenAdapter{
			Adapter:    dikit.New(),
			prepareErr: errors.New("prepare error"),
		})
		require.NoError(t, err)

		require.Len(t, report.Failed(), 1)
		assert.EqualError(t, report.Failed()[0].Err, "prepare: prepare error")
	})
}

// brokenAdapter resolves nil services.
type brokenAdapter struct {
	adapter.Adapter
	prepareErr error
}

func (a *brokenAdapter) PrepareBasic() error {
	if a.prepareErr != nil {
		return a.prepareErr
	}
	return a.Adapter.PrepareBasic()
}

func (*brokenAdapter) Resolve(reflect.Type) (any, error) {
	return nil, nil
}

// transientAdapter constructs a new singleton on every resolve.
type transientAdapter struct {
	adapter.Adapter
}

func (*transientAdapter) Resolve(t reflect.Type) (any, error) {
	switch t {
	case reflect.TypeFor[benchtypes.Singleton1]():
		return benchtypes.NewSingleton1(), nil
	case reflect.TypeFor[benchtypes.Singleton2]():
		return benchtypes.NewSingleton2(), nil
	default:
		return benchtypes.NewSingleton3(), nil
	}
}
