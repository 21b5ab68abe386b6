package extractors

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jobsift/jobsift/models"
)

// defaultExtractors are enabled unless the config omits them by name.
func defaultExtractors() []Extractor {
	return []Extractor{
		&Workday{},
		&Greenhouse{},
		&Lever{},
	}
}

// optionalExtractors are off by default and opted into by name. The readable
// extractor matches any host, so it only runs when asked for.
func optionalExtractors() []Extractor {
	return []Extractor{
		&Readable{},
	}
}

// Registry is the fixed set of enabled extractors for a run. It is built
// once before the pipeline starts and read-only afterwards.
type Registry struct {
	extractors []Extractor
}

// NewRegistry builds the enabled set: the defaults minus omitDefault, plus
// any optional extractors named in enableOptional. Unknown names in either
// list are ignored.
func NewRegistry(omitDefault, enableOptional []string) *Registry {
	omitted := make(map[string]bool, len(omitDefault))
	for _, name := range omitDefault {
		omitted[name] = true
	}
	wanted := make(map[string]bool, len(enableOptional))
	for _, name := range enableOptional {
		wanted[name] = true
	}

	var enabled []Extractor
	for _, ex := range defaultExtractors() {
		if !omitted[ex.Name()] {
			enabled = append(enabled, ex)
		}
	}
	for _, ex := range optionalExtractors() {
		if wanted[ex.Name()] {
			enabled = append(enabled, ex)
		}
	}
	return &Registry{extractors: enabled}
}

// NewRegistryWith builds a registry over exactly the given extractors,
// bypassing the default/optional split. Useful for embedding callers that
// bring their own rules.
func NewRegistryWith(exs ...Extractor) *Registry {
	return &Registry{extractors: exs}
}

// Names lists the enabled extractors.
func (r *Registry) Names() []string {
	names := make([]string, len(r.extractors))
	for i, ex := range r.extractors {
		names[i] = ex.Name()
	}
	return names
}

// Run fans page out to every enabled extractor whose Applicable test passes
// and merges their results through a balanced binary merge tree, so the
// critical path is O(log n) merges over concurrent branches. The returned
// data is nil when no extractor produced anything; errs collects the
// failures of individual extractors, which never suppress data from the
// others. Error order is complete but not stable across runs.
func (r *Registry) Run(ctx context.Context, page *Page) (*models.PageData, []error) {
	applicable := make([]Extractor, 0, len(r.extractors))
	for _, ex := range r.extractors {
		if ex.Applicable(page.URL) {
			applicable = append(applicable, ex)
		}
	}
	return runTree(ctx, page, applicable)
}

func runTree(ctx context.Context, page *Page, exs []Extractor) (*models.PageData, []error) {
	switch len(exs) {
	case 0:
		return nil, nil
	case 1:
		data, err := exs[0].Extract(ctx, page)
		if err != nil {
			return nil, []error{fmt.Errorf("extractor %s: %w", exs[0].Name(), err)}
		}
		return data, nil
	}

	mid := len(exs) / 2
	var (
		left     *models.PageData
		leftErrs []error
		done     = make(chan struct{})
	)
	go func() {
		defer close(done)
		left, leftErrs = runTree(ctx, page, exs[:mid])
	}()
	right, rightErrs := runTree(ctx, page, exs[mid:])
	<-done

	return mergeData(left, right), mergeErrors(leftErrs, rightErrs)
}

// mergeData combines two branch results; the left branch's job title and
// company win when both sides supply one.
func mergeData(left, right *models.PageData) *models.PageData {
	if left == nil {
		return right
	}
	left.Merge(right)
	return left
}

// mergeErrors appends the smaller list into the larger one, so the merge
// tree moves as few entries as possible. All errors survive; their relative
// order is not guaranteed.
func mergeErrors(a, b []error) []error {
	if len(a) < len(b) {
		a, b = b, a
	}
	return append(a, b...)
}

// HostContains reports whether u's host includes substr, the applicability
// test every site-family extractor uses.
func HostContains(u *url.URL, substr string) bool {
	if u == nil || substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(u.Hostname()), strings.ToLower(substr))
}
