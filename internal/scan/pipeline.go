// Package scan drives the per-source pipeline: cache check, fetch, extract,
// persist, report.
package scan

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/jobsift/jobsift/models"
	"github.com/jobsift/jobsift/pkg/cache"
	"github.com/jobsift/jobsift/pkg/extractors"
	"github.com/jobsift/jobsift/pkg/fetcher"
)

// Job is one source URL handed to a worker.
type Job struct {
	URL string
}

// Result is the terminal state of one source. Error set means the source
// failed; NoData means it completed with the tombstone; otherwise Page holds
// the merged extraction result. SoftErrors are individual extractor failures
// that did not stop other extractors from contributing.
type Result struct {
	URL        string
	Page       *models.PageData
	NoData     bool
	CacheHit   bool
	Error      error
	ErrorType  string // "fetch_error", "extract_error", "cache_error"
	SoftErrors []error
}

// Pipeline holds the injected collaborators shared by all workers. All
// fields are read-only once Run starts.
type Pipeline struct {
	Logger   *slog.Logger
	Fetcher  fetcher.Fetcher
	Cache    *cache.Cache
	Registry *extractors.Registry
	Scorer   extractors.ScoreSubmitter
	Workers  int
}

// Run processes every URL to a terminal state, never aborting siblings on a
// failure. The returned error is non-nil when at least one source failed,
// after all of them finished.
func (p *Pipeline) Run(ctx context.Context, urls []string) ([]Result, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = models.DefaultWorkers
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(urls))
	results := make(chan Result, len(urls))

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go p.worker(ctx, w, &wg, jobs, results)
	}

	for _, rawURL := range urls {
		jobs <- Job{URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)

	all := make([]Result, 0, len(urls))
	var runErr error
	for result := range results {
		all = append(all, result)
		if result.Error != nil {
			runErr = fmt.Errorf("one or more sources failed")
		}
	}
	return all, runErr
}

func (p *Pipeline) worker(ctx context.Context, id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		p.Logger.Info("Processing source", "worker_id", id, "url", job.URL)
		result := p.process(ctx, job.URL)

		switch {
		case result.Error != nil:
			p.Logger.Error("Source failed", "worker_id", id, "url", job.URL, "error_type", result.ErrorType, "error", result.Error)
		case result.NoData:
			p.Logger.Info("Source finished with no data", "worker_id", id, "url", job.URL, "cache_hit", result.CacheHit)
		default:
			p.Logger.Info("Source finished", "worker_id", id, "url", job.URL, "cache_hit", result.CacheHit, "keywords", len(result.Page.Keywords))
		}
		for _, soft := range result.SoftErrors {
			p.Logger.Warn("Extractor error", "worker_id", id, "url", job.URL, "error", soft)
		}

		results <- result
	}
}

// process walks one source through the state machine. Stages are strictly
// sequential; the tombstone short-circuits straight to done without a fetch.
func (p *Pipeline) process(ctx context.Context, rawURL string) Result {
	result := Result{URL: rawURL}

	page, hit, err := p.Cache.Lookup(rawURL)
	if err != nil {
		result.Error = err
		result.ErrorType = "cache_error"
		return result
	}
	if hit {
		result.CacheHit = true
		if page == nil {
			result.NoData = true
		} else {
			result.Page = page
		}
		return result
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		result.Error = fmt.Errorf("invalid source url: %w", err)
		result.ErrorType = "fetch_error"
		return result
	}

	html, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		result.Error = err
		result.ErrorType = "fetch_error"
		return result
	}

	parsed, err := extractors.NewPage(u, html, p.Scorer)
	if err != nil {
		result.Error = err
		result.ErrorType = "extract_error"
		return result
	}

	data, softErrs := p.Registry.Run(ctx, parsed)
	result.SoftErrors = softErrs

	// Persist before reporting done: a source is only terminal once its
	// entry (result or tombstone) is on disk.
	if err := p.Cache.Store(rawURL, data); err != nil {
		result.Error = err
		result.ErrorType = "cache_error"
		return result
	}

	if data == nil {
		result.NoData = true
	} else {
		result.Page = data
	}
	return result
}

// Aggregate merges every successful result's keywords into one cross-page
// set, the same algebra used inside a single page.
func Aggregate(results []Result) models.KeywordSet {
	total := make(models.KeywordSet)
	for _, r := range results {
		if r.Page != nil {
			total.Merge(r.Page.Keywords)
		}
	}
	return total
}
