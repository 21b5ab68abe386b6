package extractors

import (
	"context"
	"net/url"

	"github.com/jobsift/jobsift/models"
)

// Lever extracts postings on jobs.lever.co. Postings live under
// /<company>/<posting-id> with the requirement lists inside posting
// sections.
type Lever struct{}

func (*Lever) Name() string { return "lever" }

func (*Lever) Applicable(u *url.URL) bool {
	return HostContains(u, "jobs.lever.co")
}

func (*Lever) Extract(ctx context.Context, page *Page) (*models.PageData, error) {
	data := models.NewPageData(page.URL.String())

	if segments := splitPath(page.URL); len(segments) >= 1 {
		data.Company = segments[0]
	}

	title := page.Doc.Find("div.posting-headline h2").First()
	if title.Length() == 0 {
		return nil, nil
	}
	data.JobTitle = cleanText(title)

	fragments := collectFragments(page.Doc.Selection, "div.section ul li, div.posting-requirements ul li")
	if err := scoreFragments(ctx, page, fragments, data.Keywords); err != nil {
		return nil, err
	}
	return data, nil
}
