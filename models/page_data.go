package models

// PageData holds everything one job posting yielded: the weighted keywords
// plus whatever listing metadata the extractors could recover.
type PageData struct {
	URL      string     `json:"url"`
	JobTitle string     `json:"job_title,omitempty"`
	Company  string     `json:"company,omitempty"`
	Keywords KeywordSet `json:"keywords"`
}

// NewPageData returns an empty result for the given source URL.
func NewPageData(url string) *PageData {
	return &PageData{
		URL:      url,
		Keywords: make(KeywordSet),
	}
}

// Merge folds other into the receiver. Keywords combine through the set
// algebra. JobTitle and Company are left-biased: the receiver's non-empty
// value wins, otherwise other's value is taken.
func (p *PageData) Merge(other *PageData) {
	if other == nil {
		return
	}
	p.Keywords.Merge(other.Keywords)
	if p.JobTitle == "" {
		p.JobTitle = other.JobTitle
	}
	if p.Company == "" {
		p.Company = other.Company
	}
}

// Empty reports whether the result carries no usable data at all.
func (p *PageData) Empty() bool {
	return p == nil || (len(p.Keywords) == 0 && p.JobTitle == "" && p.Company == "")
}
