package extractors

import (
	"context"
	"net/url"

	"github.com/jobsift/jobsift/models"
)

// Greenhouse extracts postings on Greenhouse job boards. Both the classic
// boards.greenhouse.io layout and the newer job-boards.greenhouse.io layout
// are handled; the board token in the first path segment names the company.
type Greenhouse struct{}

func (*Greenhouse) Name() string { return "greenhouse" }

func (*Greenhouse) Applicable(u *url.URL) bool {
	return HostContains(u, "greenhouse.io")
}

func (*Greenhouse) Extract(ctx context.Context, page *Page) (*models.PageData, error) {
	data := models.NewPageData(page.URL.String())

	if segments := splitPath(page.URL); len(segments) >= 1 {
		data.Company = segments[0]
	}

	title := page.Doc.Find("h1.app-title").First()
	if title.Length() == 0 {
		title = page.Doc.Find("h1.section-header--title, div.job__title h1").First()
	}
	if title.Length() == 0 {
		return nil, nil
	}
	data.JobTitle = cleanText(title)

	content := page.Doc.Find("#content").First()
	if content.Length() == 0 {
		content = page.Doc.Find("div.job__description").First()
	}
	if content.Length() == 0 {
		return nil, nil
	}

	fragments := collectFragments(content, "li")
	if err := scoreFragments(ctx, page, fragments, data.Keywords); err != nil {
		return nil, err
	}
	return data, nil
}
