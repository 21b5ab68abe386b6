// Package extractors holds the per-site extraction rules and the registry
// that fans a page out to every applicable rule and merges what comes back.
package extractors

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jobsift/jobsift/models"
	"github.com/jobsift/jobsift/pkg/scoring"
)

// ScoreSubmitter hands fragment batches to the scoring arbiter and waits for
// the per-fragment candidates. Satisfied by *scoring.Arbiter.
type ScoreSubmitter interface {
	Submit(ctx context.Context, fragments []string) ([][]scoring.Candidate, error)
}

// Page is one fetched job posting, parsed once and shared read-only by
// every extractor that runs against it.
type Page struct {
	URL    *url.URL
	HTML   string
	Doc    *goquery.Document
	Scorer ScoreSubmitter
}

// NewPage parses html and bundles it with its source URL and the scoring
// entry point.
func NewPage(u *url.URL, html string, scorer ScoreSubmitter) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &Page{URL: u, HTML: html, Doc: doc, Scorer: scorer}, nil
}

// Extractor is one pluggable extraction rule for a site family.
//
// Applicable must be cheap (a host test); it gates whether Extract runs at
// all. Extract returns (nil, nil) when the page turns out to hold nothing
// this rule understands, (nil, err) when the rule should have worked but
// failed, and (data, nil) on success — data may still be empty. An extractor
// may match pages beyond its primary site family as long as it cannot
// produce misleading keywords there.
type Extractor interface {
	Name() string
	Applicable(u *url.URL) bool
	Extract(ctx context.Context, page *Page) (*models.PageData, error)
}

// scoreFragments runs fragments through the arbiter and folds every
// candidate into keywords, summing weights for repeated texts.
func scoreFragments(ctx context.Context, page *Page, fragments []string, keywords models.KeywordSet) error {
	if len(fragments) == 0 {
		return nil
	}
	batches, err := page.Scorer.Submit(ctx, fragments)
	if err != nil {
		return err
	}
	for _, batch := range batches {
		for _, c := range batch {
			keywords[c.Text] += c.Weight
		}
	}
	return nil
}

// cleanText trims a selection's text and flattens non-breaking spaces, which
// job boards are fond of.
func cleanText(s *goquery.Selection) string {
	return strings.TrimSpace(strings.ReplaceAll(s.Text(), " ", " "))
}

// collectFragments gathers the non-empty texts matched by selector.
func collectFragments(root *goquery.Selection, selector string) []string {
	var fragments []string
	root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if text := cleanText(s); text != "" {
			fragments = append(fragments, text)
		}
	})
	return fragments
}
