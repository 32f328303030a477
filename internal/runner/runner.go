// Package runner drives record evaluation over line-oriented input.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/psychic-poker/internal/draw"
	"github.com/lox/psychic-poker/internal/evaluator"
)

// Renderer converts evaluated records into output lines.
type Renderer interface {
	Line(res draw.Result) string
	Invalid() string
}

// plainRenderer reports the canonical unstyled lines
type plainRenderer struct{}

func (plainRenderer) Line(res draw.Result) string { return res.String() }
func (plainRenderer) Invalid() string             { return draw.InvalidLine }

// Stats summarises a completed run.
type Stats struct {
	Records    int
	Invalid    int
	Categories map[evaluator.HandRank]int
	Elapsed    time.Duration
}

// Runner evaluates records line by line. With a single worker the
// input is processed strictly in sequence; with more workers records
// are evaluated concurrently but still reported in input order.
type Runner struct {
	logger   zerolog.Logger
	workers  int
	renderer Renderer
}

// Option configures a Runner
type Option func(*Runner)

// WithWorkers sets the number of concurrent evaluation workers
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithRenderer replaces the plain line renderer
func WithRenderer(renderer Renderer) Option {
	return func(r *Runner) {
		if renderer != nil {
			r.renderer = renderer
		}
	}
}

// NewRunner creates a runner
func NewRunner(logger zerolog.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger:   logger.With().Str("component", "runner").Logger(),
		workers:  1,
		renderer: plainRenderer{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads records from in and writes one result line per record to
// out. Blank lines are skipped. A record that fails to parse or
// validate reports the invalid line and never interrupts the rest of
// the input.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	start := time.Now()
	stats := Stats{Categories: make(map[evaluator.HandRank]int)}

	bw := bufio.NewWriter(out)
	var err error
	if r.workers > 1 {
		err = r.runParallel(ctx, in, bw, &stats)
	} else {
		err = r.runSequential(ctx, in, bw, &stats)
	}
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}

	stats.Elapsed = time.Since(start)
	r.logger.Info().
		Int("records", stats.Records).
		Int("invalid", stats.Invalid).
		Int("workers", r.workers).
		Dur("elapsed", stats.Elapsed).
		Msg("run complete")
	return stats, err
}

func (r *Runner) runSequential(ctx context.Context, in io.Reader, out *bufio.Writer, stats *Stats) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		line, res, ok := r.evaluate(tokens)
		r.tally(stats, res, ok)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// lineJob carries one input line through the worker pool
type lineJob struct {
	index  int
	tokens []string
}

// lineOutput is a rendered result tagged with its input position
type lineOutput struct {
	index int
	line  string
	res   draw.Result
	ok    bool
}

func (r *Runner) runParallel(ctx context.Context, in io.Reader, out *bufio.Writer, stats *Stats) error {
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan lineJob)
	results := make(chan lineOutput, r.workers)

	g.Go(func() error {
		defer close(jobs)
		scanner := bufio.NewScanner(in)
		index := 0
		for scanner.Scan() {
			tokens := strings.Fields(scanner.Text())
			if len(tokens) == 0 {
				continue
			}
			select {
			case jobs <- lineJob{index: index, tokens: tokens}:
			case <-ctx.Done():
				return ctx.Err()
			}
			index++
		}
		return scanner.Err()
	})

	for w := 0; w < r.workers; w++ {
		g.Go(func() error {
			for job := range jobs {
				line, res, ok := r.evaluate(job.tokens)
				select {
				case results <- lineOutput{index: job.index, line: line, res: res, ok: ok}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	// Results arrive in completion order; hold them back until their
	// turn so the output preserves input order.
	pending := make(map[int]lineOutput)
	next := 0
	var writeErr error
	for res := range results {
		pending[res.index] = res
		for {
			buffered, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++

			r.tally(stats, buffered.res, buffered.ok)
			if writeErr == nil {
				if _, err := fmt.Fprintln(out, buffered.line); err != nil {
					writeErr = err
				}
			}
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return writeErr
}

// evaluate renders one record's tokens
func (r *Runner) evaluate(tokens []string) (string, draw.Result, bool) {
	res, err := draw.EvaluateTokens(tokens)
	if err != nil {
		r.logger.Debug().Err(err).Strs("tokens", tokens).Msg("rejected record")
		return r.renderer.Invalid(), draw.Result{}, false
	}
	return r.renderer.Line(res), res, true
}

// tally counts one record into the stats
func (r *Runner) tally(stats *Stats, res draw.Result, ok bool) {
	stats.Records++
	if !ok {
		stats.Invalid++
		return
	}
	stats.Categories[res.Best]++
}
