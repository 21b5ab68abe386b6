package scan

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jobsift/jobsift/models"
	"github.com/jobsift/jobsift/pkg/cache"
	"github.com/jobsift/jobsift/pkg/extractors"
	"github.com/jobsift/jobsift/pkg/fetcher"
	"github.com/jobsift/jobsift/pkg/history"
	"github.com/jobsift/jobsift/pkg/scoring"
)

// Action implements `jobsift scan`.
func Action(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit("", 2)
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("cache-dir") {
		config.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("top") {
		config.TopKeywords = c.Int("top")
	}

	for _, insecure := range config.InsecureURLs() {
		logger.Warn("Fetching without https; consider switching the URL to https", "url", insecure)
	}

	fetchCache, err := cache.New(config.CacheDir)
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		return cli.Exit("", 2)
	}

	store, err := history.Open(config.HistoryDB)
	if err != nil {
		logger.Error("failed to open history store", "error", err)
		return cli.Exit("", 2)
	}
	defer store.Close()

	// The one model instance for the process; the arbiter owns it from
	// here on and is torn down once every pipeline task has finished.
	arbiter := scoring.NewArbiter(scoring.NewKeyphraseModel())
	defer arbiter.Close()

	registry := extractors.NewRegistry(config.OmitDefaultExtractors, config.EnableOptionalExtractors)
	logger.Info("Starting scan", "url_count", len(config.JobURLs), "workers", config.Workers, "extractors", registry.Names())

	pipeline := &Pipeline{
		Logger:   logger,
		Fetcher:  fetcher.NewHTTPFetcher(),
		Cache:    fetchCache,
		Registry: registry,
		Scorer:   arbiter,
		Workers:  config.Workers,
	}

	results, runErr := pipeline.Run(c.Context, config.JobURLs)

	for _, result := range results {
		if err := store.Record(toEntry(result)); err != nil {
			logger.Warn("failed to record result", "url", result.URL, "error", err)
		}
	}

	printSummary(c.App.Writer, results, config.TopKeywords)

	if runErr != nil {
		return cli.Exit("one or more sources failed", 1)
	}
	return nil
}

func toEntry(result Result) history.Entry {
	entry := history.Entry{URL: result.URL}
	switch {
	case result.Error != nil:
		entry.Status = history.StatusFailed
		entry.Error = result.Error.Error()
	case result.NoData:
		entry.Status = history.StatusNoData
	default:
		entry.Status = history.StatusOK
		entry.KeywordCount = len(result.Page.Keywords)
		entry.JobTitle = result.Page.JobTitle
		entry.Company = result.Page.Company
	}
	return entry
}

func printSummary(w io.Writer, results []Result, topN int) {
	ok, noData, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Error != nil:
			failed++
		case r.NoData:
			noData++
		default:
			ok++
		}
	}
	fmt.Fprintf(w, "Processed %d sources: %d ok, %d no data, %d failed\n", len(results), ok, noData, failed)

	top := Aggregate(results).Top(topN)
	if len(top) == 0 {
		return
	}
	fmt.Fprintf(w, "\nTop %d keywords across all sources:\n", len(top))
	for i, kw := range top {
		fmt.Fprintf(w, "%d. %s: %.3f\n", i+1, kw.Text, kw.Weight)
	}
}
