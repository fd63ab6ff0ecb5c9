package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/pagebridge/internal/config"
	"github.com/nao1215/pagebridge/internal/render"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency is used when no WithConcurrency option is given.
const defaultConcurrency = config.DefaultConcurrency

// Job is a single page to render in a single format.
type Job struct {
	// Page is the catalog page name.
	Page string

	// Format is the registered format name.
	Format string
}

// Result is the outcome of a Job.
type Result struct {
	Job Job

	// Output is the rendered page. Empty when Err is set.
	Output string

	// Err records why the job failed, if it did.
	Err error
}

// Jobs returns one job per page and format, grouped by page.
func Jobs(pages, formats []string) []Job {
	jobs := make([]Job, 0, len(pages)*len(formats))
	for _, p := range pages {
		for _, f := range formats {
			jobs = append(jobs, Job{Page: p, Format: f})
		}
	}
	return jobs
}

// BatchRenderer renders many jobs concurrently.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it bounds concurrency with no extra bookkeeping. A failing job
// does not cancel the others; its error is kept in its Result.
type BatchRenderer struct {
	// registry resolves format names to renderers.
	registry *render.Registry

	// catalog resolves page names to page entries.
	catalog *config.File

	// concurrency is the maximum number of jobs rendered at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchRenderer.
type BatchOption func(*BatchRenderer)

// WithBatchLogger sets a custom logger for batch rendering.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchRenderer) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent jobs.
// Non-positive values keep the default.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchRenderer) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchRenderer creates a BatchRenderer over the given registry and catalog.
func NewBatchRenderer(registry *render.Registry, catalog *config.File, opts ...BatchOption) *BatchRenderer {
	br := &BatchRenderer{
		registry:    registry,
		catalog:     catalog,
		concurrency: defaultConcurrency,
	}

	for _, opt := range opts {
		opt(br)
	}

	if br.logger == nil {
		br.logger = slog.Default()
	}

	return br
}

// Render renders every job and returns the results in job order.
// The returned error is non-nil only when ctx is cancelled; jobs that had
// not started by then carry the context error in their Result.
func (br *BatchRenderer) Render(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))
	err := br.RenderWithCallback(ctx, jobs, func(r Result, i int) {
		results[i] = r
	})
	return results, err
}

// RenderWithCallback renders every job and calls callback with each result
// and the index of its job. The callback runs on the goroutine that
// rendered the job and must be safe for concurrent use.
func (br *BatchRenderer) RenderWithCallback(ctx context.Context, jobs []Job, callback func(r Result, index int)) error {
	br.logger.Info("starting batch rendering",
		"total_jobs", len(jobs),
		"concurrency", br.concurrency,
	)
	startTime := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(br.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				callback(Result{Job: job, Err: ctx.Err()}, i)
				return ctx.Err()
			default:
			}

			result := br.renderJob(job)
			if result.Err != nil {
				br.logger.Warn("render failed",
					"page", job.Page,
					"format", job.Format,
					"error", result.Err,
				)
			}
			callback(result, i)
			return nil
		})
	}

	err := g.Wait()

	br.logger.Info("batch rendering complete",
		"total_jobs", len(jobs),
		"elapsed", time.Since(startTime),
	)

	return err
}

// renderJob resolves, builds and renders a single job.
func (br *BatchRenderer) renderJob(job Job) Result {
	r, err := br.registry.Get(job.Format)
	if err != nil {
		return Result{Job: job, Err: err}
	}

	entry, err := br.catalog.Page(job.Page)
	if err != nil {
		return Result{Job: job, Err: err}
	}

	p, err := Build(br.catalog, entry, r)
	if err != nil {
		return Result{Job: job, Err: err}
	}

	output := p.View()
	br.logger.Debug("page rendered",
		"page", job.Page,
		"format", job.Format,
		"output", output,
	)

	return Result{Job: job, Output: output}
}
