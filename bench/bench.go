// Suite construction and execution.
package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlmatch/matching"
	"github.com/katalvlaran/lvlmatch/mission"
)

// ErrNoCells indicates an empty suite.
var ErrNoCells = errors.New("bench: suite has no cells")

// DefaultWorkers is the default pool size.
const DefaultWorkers = 4

// Cell is one benchmark configuration.
type Cell struct {
	// Method is the matcher name (matching.Method* constants).
	Method string

	// Nodes and EdgeRate parameterize the generated mission.
	Nodes    int
	EdgeRate int

	// Seed makes the mission reproducible.
	Seed int64
}

// Row is the outcome of one executed cell.
type Row struct {
	// RunID uniquely tags this execution.
	RunID string

	Cell Cell

	// Edges is the generated mission's edge count.
	Edges int

	// Score, Steps, Elapsed mirror the runner result.
	Score   int64
	Steps   int64
	Elapsed time.Duration

	// Err is non-nil when the cell failed (bad method, cancellation).
	Err error
}

// Options configures suite execution.
type Options struct {
	// Workers bounds pool concurrency. Default DefaultWorkers.
	Workers int

	// Logger receives per-cell progress lines. Default: standard logrus.
	Logger logrus.FieldLogger
}

// Option is a functional option for Options.
type Option func(*Options)

// WithWorkers sets the worker pool size; values below 1 keep the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithLogger routes progress through a custom logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Grid builds the cross product of methods, node counts, and edge
// rates, all sharing one base seed offset by cell index so every cell
// gets a distinct but reproducible mission.
func Grid(methods []string, nodes, rates []int, baseSeed int64) []Cell {
	var cells []Cell
	for _, m := range methods {
		for _, n := range nodes {
			for _, r := range rates {
				cells = append(cells, Cell{
					Method:   m,
					Nodes:    n,
					EdgeRate: r,
					Seed:     baseSeed + int64(len(cells)),
				})
			}
		}
	}

	return cells
}

// Run executes every cell and returns the rows in cell order.
// Cancelling ctx stops cooperative runs; already finished rows are
// still returned with their results, pending ones carry the
// cancellation error.
func Run(ctx context.Context, cells []Cell, opts ...Option) ([]Row, error) {
	if len(cells) == 0 {
		return nil, ErrNoCells
	}

	cfg := Options{Workers: DefaultWorkers, Logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("bench: pool: %w", err)
	}
	defer pool.Release()

	rows := make([]Row, len(cells))
	var wg sync.WaitGroup
	for i := range cells {
		i := i
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			rows[i] = runCell(ctx, cells[i], cfg.Logger)
		}); err != nil {
			wg.Done()
			rows[i] = Row{Cell: cells[i], Err: fmt.Errorf("bench: submit: %w", err)}
		}
	}
	wg.Wait()

	return rows, nil
}

// runCell regenerates the cell's mission and drives its matcher.
func runCell(ctx context.Context, c Cell, logger logrus.FieldLogger) Row {
	row := Row{RunID: uuid.NewString(), Cell: c}

	// A cell that starts after cancellation does not run at all.
	if ctx.Err() != nil {
		row.Err = matching.ErrCancelled

		return row
	}

	g, err := mission.Random(c.Nodes, c.EdgeRate, mission.WithSeed(c.Seed))
	if err != nil {
		row.Err = err

		return row
	}
	row.Edges = g.EdgeCount()

	m, err := matching.MatcherFor(c.Method, matching.DefaultNaiveCap)
	if err != nil {
		row.Err = err

		return row
	}

	res, err := matching.RunCooperative(g, m, matching.WithContext(ctx))
	if err != nil {
		row.Err = err

		return row
	}

	row.Score = res.Score
	row.Steps = res.Steps
	row.Elapsed = res.Elapsed

	logger.WithFields(logrus.Fields{
		"run":     row.RunID,
		"method":  c.Method,
		"nodes":   c.Nodes,
		"rate":    c.EdgeRate,
		"edges":   row.Edges,
		"score":   row.Score,
		"steps":   row.Steps,
		"elapsed": row.Elapsed,
	}).Info("bench cell done")

	return row
}
