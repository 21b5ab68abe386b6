package extractors

import (
	"context"
	"net/url"
	"strings"

	"github.com/jobsift/jobsift/models"
)

// Workday extracts postings hosted on Workday career sites. The posting
// header and description carry stable data-automation-id attributes, and the
// tenant's company slug is the second URL path segment.
type Workday struct{}

func (*Workday) Name() string { return "workday" }

func (*Workday) Applicable(u *url.URL) bool {
	return HostContains(u, "myworkdaysite.com") || HostContains(u, "myworkdayjobs.com")
}

func (*Workday) Extract(ctx context.Context, page *Page) (*models.PageData, error) {
	data := models.NewPageData(page.URL.String())

	if segments := splitPath(page.URL); len(segments) >= 2 {
		data.Company = segments[1]
	}

	header := page.Doc.Find(`h2[data-automation-id="jobPostingHeader"]`).First()
	if header.Length() == 0 {
		// Not a posting page after all; no opinion.
		return nil, nil
	}
	data.JobTitle = cleanText(header)

	desc := page.Doc.Find(`div[data-automation-id="jobPostingDescription"]`).First()
	if desc.Length() == 0 {
		return nil, nil
	}

	fragments := collectFragments(desc, "li")
	if err := scoreFragments(ctx, page, fragments, data.Keywords); err != nil {
		return nil, err
	}
	return data, nil
}

func splitPath(u *url.URL) []string {
	trimmed := strings.Trim(u.EscapedPath(), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
