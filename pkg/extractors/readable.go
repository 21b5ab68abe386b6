package extractors

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/jobsift/jobsift/models"
)

// Readable is the catch-all extractor for job boards without a dedicated
// rule. It applies to any host, so it ships disabled and is opted into via
// enable_optional_extractors. Readability strips the navigation, footer and
// sidebar boilerplate whose words would otherwise pollute the keyword set.
type Readable struct{}

func (*Readable) Name() string { return "readable" }

func (*Readable) Applicable(u *url.URL) bool { return u != nil }

func (*Readable) Extract(ctx context.Context, page *Page) (*models.PageData, error) {
	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(page.HTML), page.URL)
	if err != nil {
		return nil, err
	}

	data := models.NewPageData(page.URL.String())
	data.JobTitle = strings.TrimSpace(article.Title)
	data.Company = strings.TrimSpace(article.SiteName)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, err
	}

	// List items are where postings keep requirements; paragraphs are only
	// a fallback since they skew generic.
	fragments := collectFragments(doc.Selection, "li")
	if len(fragments) == 0 {
		fragments = collectFragments(doc.Selection, "p")
	}

	if err := scoreFragments(ctx, page, fragments, data.Keywords); err != nil {
		return nil, err
	}
	return data, nil
}
