package simulation

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"time"

	"smithwagnercv/domain/core"
	"smithwagnercv/domain/learning"
	"smithwagnercv/internal"
	"smithwagnercv/ports"

	"golang.org/x/sync/errgroup"
)

// Options are the per-cell simulation settings shared by a whole grid
type Options struct {
	NumOptions     int       `json:"num_options"`
	CriticalValues []float64 `json:"critical_values"`
	ConfInterval   []float64 `json:"conf_interval"`
	Repetitions    int       `json:"repetitions"`
}

// DefaultOptions returns four answer options, the 90th and 95th percentile
// critical values, a 95% interval on mu and 10,000 trials per cell
func DefaultOptions() Options {
	return Options{
		NumOptions:     4,
		CriticalValues: []float64{0.90, 0.95},
		ConfInterval:   []float64{0.025, 0.975},
		Repetitions:    10000,
	}
}

// Validate checks every option
func (o Options) Validate() error {
	if err := learning.ValidateNumOptions(o.NumOptions); err != nil {
		return err
	}
	if err := learning.ValidateRepetitions(o.Repetitions); err != nil {
		return err
	}
	if err := learning.ValidateQuantiles(o.CriticalValues); err != nil {
		return err
	}
	return learning.ValidateQuantiles(o.ConfInterval)
}

// GridResult holds the reports of a sweep, grouped by statistic. Each
// sequence follows the sweep order: class sizes outer, mus inner.
type GridResult struct {
	RunID      core.RunID                                                `json:"run_id"`
	ClassSizes []int                                                     `json:"class_sizes"`
	Mus        []float64                                                 `json:"mus"`
	Options    Options                                                   `json:"options"`
	Reports    map[learning.StatisticName][]learning.CriticalValueReport `json:"reports"`
	RuntimeMs  int64                                                     `json:"runtime_ms"`
}

// Statistic returns the ordered reports of one statistic
func (g *GridResult) Statistic(name learning.StatisticName) []learning.CriticalValueReport {
	return g.Reports[name]
}

// Cells returns the number of (class size, mu) combinations in the sweep
func (g *GridResult) Cells() int {
	return len(g.ClassSizes) * len(g.Mus)
}

// Engine runs trials, extracts critical values and sweeps grids
type Engine struct {
	rngPort  ports.RNGPort
	workers  int
	progress ports.ProgressReporter
	logger   *internal.Logger
}

// NewEngine creates an engine using one worker per CPU
func NewEngine(rngPort ports.RNGPort, logger *internal.Logger) *Engine {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Engine{
		rngPort:  rngPort,
		workers:  runtime.GOMAXPROCS(0),
		progress: ports.NopProgress{},
		logger:   logger,
	}
}

// SetWorkers bounds the number of concurrently running trials (<= 0 means GOMAXPROCS)
func (e *Engine) SetWorkers(n int) {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	e.workers = n
}

// Workers returns the trial concurrency limit
func (e *Engine) Workers() int {
	return e.workers
}

// SetProgressReporter installs an observer for grid sweeps
func (e *Engine) SetProgressReporter(p ports.ProgressReporter) {
	if p == nil {
		p = ports.NopProgress{}
	}
	e.progress = p
}

// RunTrials executes repetitions independent trials and collects their rows.
// The first failing trial cancels the rest and its error is returned.
func (e *Engine) RunTrials(ctx context.Context, classSize int, mu float64, numOptions, repetitions int) (*ResultTable, error) {
	if err := learning.ValidateTrial(classSize, mu, numOptions); err != nil {
		return nil, err
	}
	if err := learning.ValidateRepetitions(repetitions); err != nil {
		return nil, err
	}

	batch := batchName(classSize, mu, numOptions)
	rows := make([]learning.TrialStatistics, repetitions)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < repetitions; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := e.rngPort.Stream(gctx, batch, i)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			row, err := RunTrial(src, classSize, mu, numOptions)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Trace("[Engine] %s: %d trials complete", batch, repetitions)
	return NewResultTable(classSize, mu, numOptions, rows), nil
}

// RunSimulation produces the reports of a single (class size, mu) cell
func (e *Engine) RunSimulation(ctx context.Context, classSize int, mu float64, opts Options) (learning.CellReports, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	table, err := e.RunTrials(ctx, classSize, mu, opts.NumOptions, opts.Repetitions)
	if err != nil {
		return nil, err
	}
	return ExtractCriticalValues(table, opts.CriticalValues, opts.ConfInterval)
}

// RunGrid simulates every (class size, mu) pair, class sizes in the outer
// loop, and regroups the reports by statistic.
func (e *Engine) RunGrid(ctx context.Context, classSizes []int, mus []float64, opts Options) (*GridResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	for _, cs := range classSizes {
		if err := learning.ValidateClassSize(cs); err != nil {
			return nil, err
		}
	}
	for _, mu := range mus {
		if err := learning.ValidateMu(mu); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	result := &GridResult{
		RunID:      core.NewRunID(),
		ClassSizes: slices.Clone(classSizes),
		Mus:        slices.Clone(mus),
		Options:    opts,
		Reports:    make(map[learning.StatisticName][]learning.CriticalValueReport, len(learning.ReportedStatistics)),
	}
	total := result.Cells()
	for _, name := range learning.ReportedStatistics {
		result.Reports[name] = make([]learning.CriticalValueReport, 0, total)
	}

	e.logger.Info("[Engine] run %s: %d cells x %d trials (k=%d, workers=%d)",
		result.RunID, total, opts.Repetitions, opts.NumOptions, e.workers)

	done := 0
	for _, cs := range classSizes {
		for _, mu := range mus {
			reports, err := e.RunSimulation(ctx, cs, mu, opts)
			if err != nil {
				return nil, fmt.Errorf("cell classSize=%d mu=%v: %w", cs, mu, err)
			}
			for _, name := range learning.ReportedStatistics {
				result.Reports[name] = append(result.Reports[name], reports[name])
			}

			done++
			e.logger.Debug("[Engine] run %s: cell %d/%d (classSize=%d, mu=%v)", result.RunID, done, total, cs, mu)
			e.progress.CellCompleted(done, total, cs, mu)
		}
	}

	result.RuntimeMs = time.Since(start).Milliseconds()
	e.logger.Info("[Engine] run %s finished in %dms", result.RunID, result.RuntimeMs)
	return result, nil
}

func batchName(classSize int, mu float64, numOptions int) string {
	return fmt.Sprintf("cs=%d/mu=%v/k=%d", classSize, mu, numOptions)
}
