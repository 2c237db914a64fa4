// Package harness runs the benchmark scenarios against container adapters.
package harness

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sectrean/di-bench/adapter"
	"github.com/sectrean/di-bench/benchtypes"
	"github.com/sectrean/di-bench/internal/errors"
)

// Mode is how the iterations of a scenario are executed.
type Mode uint8

const (
	// Sequential runs every iteration on one goroutine.
	Sequential Mode = iota
	// Contended splits the iterations between concurrent workers.
	Contended
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Contended:
		return "contended"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Result is the outcome of one scenario run against one adapter.
type Result struct {
	Adapter    string
	Scenario   string
	Mode       Mode
	Iterations int
	Duration   time.Duration

	// Skipped is true when the adapter lacks a capability the scenario requires.
	Skipped bool
	Reason  string

	Err error
}

// Report holds the results of a run.
type Report struct {
	Results []Result
}

// Failed returns the results with an error.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins the errors of every failed result.
func (r *Report) Err() error {
	var errs errors.MultiError
	for _, res := range r.Failed() {
		errs = errs.Append(errors.Wrapf(res.Err, "%s %s (%s)", res.Adapter, res.Scenario, res.Mode))
	}
	return errs.Join()
}

// Runner runs scenarios against adapters.
//
// Scenarios share the instance counters of package benchtypes,
// so a Runner must not run concurrently with another Runner.
type Runner struct {
	iterations int
	workers    int
	modes      []Mode
	scenarios  []Scenario
	logger     *zap.Logger
}

// Option configures a [Runner].
type Option func(*Runner) error

// WithIterations sets the number of iterations of each scenario run.
func WithIterations(n int) Option {
	return func(r *Runner) error {
		if n <= 0 {
			return errors.Errorf("with iterations: %d is not positive", n)
		}
		r.iterations = n
		return nil
	}
}

// WithWorkers sets the number of goroutines of contended runs.
func WithWorkers(n int) Option {
	return func(r *Runner) error {
		if n <= 0 {
			return errors.Errorf("with workers: %d is not positive", n)
		}
		r.workers = n
		return nil
	}
}

// WithModes sets the modes each scenario is run in.
func WithModes(modes ...Mode) Option {
	return func(r *Runner) error {
		if len(modes) == 0 {
			return errors.New("with modes: no modes")
		}
		r.modes = modes
		return nil
	}
}

// WithScenarios selects the scenarios to run by name. Names are not case sensitive.
func WithScenarios(names ...string) Option {
	return func(r *Runner) error {
		if len(names) == 0 {
			return nil
		}

		var selected []Scenario
		for _, name := range names {
			i := slices.IndexFunc(Scenarios(), func(s Scenario) bool {
				return strings.EqualFold(s.Name, name)
			})
			if i < 0 {
				return errors.Errorf("with scenarios: unknown scenario %q", name)
			}
			selected = append(selected, Scenarios()[i])
		}

		r.scenarios = selected
		return nil
	}
}

// WithLogger sets the logger of the runner.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) error {
		if logger == nil {
			return errors.New("with logger: logger is nil")
		}
		r.logger = logger
		return nil
	}
}

// NewRunner creates a Runner that runs every scenario in both modes by default.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{
		iterations: 1000,
		workers:    4,
		modes:      []Mode{Sequential, Contended},
		scenarios:  Scenarios(),
		logger:     zap.NewNop(),
	}

	var errs errors.MultiError
	for _, opt := range opts {
		errs = errs.Append(opt(r))
	}
	if err := errs.Wrap("new runner"); err != nil {
		return nil, err
	}

	return r, nil
}

// Run runs the scenarios against each adapter in turn.
// A failed scenario is recorded in the report and the run continues.
// An error is returned only if ctx is done before the run completes.
func (r *Runner) Run(ctx context.Context, adapters ...adapter.Adapter) (*Report, error) {
	report := &Report{}

	for _, a := range adapters {
		for _, s := range r.scenarios {
			for _, mode := range r.modes {
				if err := ctx.Err(); err != nil {
					return report, errors.Wrap(err, "run")
				}

				res := r.runScenario(ctx, a, s, mode)
				r.log(res)
				report.Results = append(report.Results, res)
			}
		}
	}

	return report, nil
}

func (r *Runner) runScenario(ctx context.Context, a adapter.Adapter, s Scenario, mode Mode) (res Result) {
	res = Result{
		Adapter:  a.Name(),
		Scenario: s.Name,
		Mode:     mode,
	}

	caps := a.Capabilities()
	if missing := caps.Missing(s.Requires); len(missing) > 0 {
		res.Skipped = true
		res.Reason = "unsupported: " + strings.Join(missing, ", ")
		return res
	}

	benchtypes.ResetInstances()

	prepare := a.Prepare
	if s.Basic {
		prepare = a.PrepareBasic
	}
	if err := prepare(); err != nil {
		res.Err = errors.Wrap(err, "prepare")
		return res
	}
	defer func() {
		res.Err = errors.Join(res.Err, errors.Wrap(a.Dispose(), "dispose"))
	}()

	iter, err := s.setup(a)
	if err != nil {
		res.Err = errors.Wrap(err, "setup")
		return res
	}

	start := time.Now()
	switch mode {
	case Contended:
		err = r.runContended(ctx, iter)
	default:
		err = r.runSequential(ctx, iter)
	}
	res.Duration = time.Since(start)
	res.Iterations = r.iterations

	if err != nil {
		res.Err = err
		return res
	}

	if s.expect != nil {
		res.Err = s.expect(caps, r.iterations)
	}
	return res
}

func (r *Runner) runSequential(ctx context.Context, iter iteration) error {
	for range r.iterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := iter(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runContended(ctx context.Context, iter iteration) error {
	g, ctx := errgroup.WithContext(ctx)

	for w := range r.workers {
		n := r.iterations / r.workers
		if w < r.iterations%r.workers {
			n++
		}

		g.Go(func() error {
			for range n {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := iter(ctx); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (r *Runner) log(res Result) {
	fields := []zap.Field{
		zap.String("adapter", res.Adapter),
		zap.String("scenario", res.Scenario),
		zap.Stringer("mode", res.Mode),
	}

	switch {
	case res.Skipped:
		r.logger.Info("scenario skipped", append(fields, zap.String("reason", res.Reason))...)
	case res.Err != nil:
		r.logger.Error("scenario failed", append(fields, zap.Error(res.Err))...)
	default:
		r.logger.Info("scenario completed", append(fields,
			zap.Int("iterations", res.Iterations),
			zap.Duration("duration", res.Duration),
		)...)
	}
}
