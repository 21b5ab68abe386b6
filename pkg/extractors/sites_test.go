package extractors

import (
	"context"
	"net/url"
	"testing"

	"github.com/jobsift/jobsift/pkg/scoring"
)

func TestApplicability(t *testing.T) {
	tests := []struct {
		extractor Extractor
		rawURL    string
		want      bool
	}{
		{&Workday{}, "https://acme.wd5.myworkdaysite.com/en-US/acme/job/123", true},
		{&Workday{}, "https://acme.wd1.myworkdayjobs.com/en-US/careers/job/123", true},
		{&Workday{}, "https://boards.greenhouse.io/acme/jobs/456", false},
		{&Greenhouse{}, "https://boards.greenhouse.io/acme/jobs/456", true},
		{&Greenhouse{}, "https://job-boards.greenhouse.io/acme/jobs/456", true},
		{&Greenhouse{}, "https://jobs.lever.co/acme/123", false},
		{&Lever{}, "https://jobs.lever.co/acme/123", true},
		{&Lever{}, "https://lever.example.com/123", false},
		{&Readable{}, "https://any.example.com/careers/123", true},
	}

	for _, tt := range tests {
		u, err := url.Parse(tt.rawURL)
		if err != nil {
			t.Fatalf("bad test url %q: %v", tt.rawURL, err)
		}
		if got := tt.extractor.Applicable(u); got != tt.want {
			t.Errorf("%s.Applicable(%s) = %v, want %v", tt.extractor.Name(), tt.rawURL, got, tt.want)
		}
	}
}

func sitePage(t *testing.T, rawURL, html string, scorer ScoreSubmitter) *Page {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("bad test url: %v", err)
	}
	page, err := NewPage(u, html, scorer)
	if err != nil {
		t.Fatalf("NewPage() failed: %v", err)
	}
	return page
}

func TestWorkdayExtract(t *testing.T) {
	html := `<html><body>
		<h2 data-automation-id="jobPostingHeader">Backend` + " " + `Engineer</h2>
		<div data-automation-id="jobPostingDescription">
			<p>About the team</p>
			<ul>
				<li>Build APIs</li>
				<li>Operate PostgreSQL databases</li>
			</ul>
		</div>
	</body></html>`

	scorer := &stubSubmitter{candidates: map[string][]scoring.Candidate{
		"Build APIs":                   {{Text: "api", Weight: 1.0}},
		"Operate PostgreSQL databases": {{Text: "postgresql", Weight: 0.6}, {Text: "api", Weight: 0.4}},
	}}
	page := sitePage(t, "https://acme.wd5.myworkdaysite.com/en-US/acme/job/Backend-Engineer_R123", html, scorer)

	data, err := (&Workday{}).Extract(context.Background(), page)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if data == nil {
		t.Fatal("Extract() returned no data")
	}

	if data.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q, want nbsp flattened to a space", data.JobTitle)
	}
	if data.Company != "acme" {
		t.Errorf("Company = %q, want second URL path segment", data.Company)
	}
	if scorer.calls != 1 {
		t.Errorf("scorer called %d times, want one batched call", scorer.calls)
	}

	if w := data.Keywords["api"]; w < 1.39 || w > 1.41 {
		t.Errorf("api weight = %v, want candidates summed to 1.4", w)
	}
	if w := data.Keywords["postgresql"]; w < 0.59 || w > 0.61 {
		t.Errorf("postgresql weight = %v, want 0.6", w)
	}
}

func TestWorkdayExtractNotAPosting(t *testing.T) {
	page := sitePage(t, "https://acme.wd5.myworkdaysite.com/en-US/acme", "<html><body><h1>Search jobs</h1></body></html>", &stubSubmitter{})

	data, err := (&Workday{}).Extract(context.Background(), page)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if data != nil {
		t.Errorf("page without a posting header should yield no opinion, got %+v", data)
	}
}

func TestGreenhouseExtract(t *testing.T) {
	html := `<html><body>
		<h1 class="app-title">Platform Engineer</h1>
		<div id="content">
			<ul><li>Ship infrastructure as code</li></ul>
		</div>
	</body></html>`

	scorer := &stubSubmitter{candidates: map[string][]scoring.Candidate{
		"Ship infrastructure as code": {{Text: "infrastructure", Weight: 1.0}},
	}}
	page := sitePage(t, "https://boards.greenhouse.io/acme/jobs/456", html, scorer)

	data, err := (&Greenhouse{}).Extract(context.Background(), page)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if data == nil {
		t.Fatal("Extract() returned no data")
	}
	if data.JobTitle != "Platform Engineer" {
		t.Errorf("JobTitle = %q", data.JobTitle)
	}
	if data.Company != "acme" {
		t.Errorf("Company = %q, want board token", data.Company)
	}
	if data.Keywords["infrastructure"] != 1.0 {
		t.Errorf("Keywords = %v", data.Keywords)
	}
}

func TestLeverExtract(t *testing.T) {
	html := `<html><body>
		<div class="posting-headline"><h2>Data Engineer</h2></div>
		<div class="section page-centered"><div class="section">
			<ul><li>Build ETL pipelines</li></ul>
		</div></div>
	</body></html>`

	scorer := &stubSubmitter{candidates: map[string][]scoring.Candidate{
		"Build ETL pipelines": {{Text: "etl", Weight: 1.0}},
	}}
	page := sitePage(t, "https://jobs.lever.co/acme/33d7-44aa", html, scorer)

	data, err := (&Lever{}).Extract(context.Background(), page)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if data == nil {
		t.Fatal("Extract() returned no data")
	}
	if data.JobTitle != "Data Engineer" {
		t.Errorf("JobTitle = %q", data.JobTitle)
	}
	if data.Company != "acme" {
		t.Errorf("Company = %q", data.Company)
	}
	if data.Keywords["etl"] != 1.0 {
		t.Errorf("Keywords = %v", data.Keywords)
	}
}
