package models

import (
	"math"
	"testing"
)

const tol = 1e-9

func TestKeywordSetMerge(t *testing.T) {
	tests := []struct {
		name string
		a    KeywordSet
		b    KeywordSet
		want KeywordSet
	}{
		{
			name: "disjoint sets union",
			a:    KeywordSet{"go": 1.0},
			b:    KeywordSet{"sql": 2.0},
			want: KeywordSet{"go": 1.0, "sql": 2.0},
		},
		{
			name: "shared keyword sums weights",
			a:    KeywordSet{"x": 1.0},
			b:    KeywordSet{"x": 2.0},
			want: KeywordSet{"x": 3.0},
		},
		{
			name: "empty set is identity",
			a:    KeywordSet{"go": 1.5, "sql": 0.5},
			b:    KeywordSet{},
			want: KeywordSet{"go": 1.5, "sql": 0.5},
		},
		{
			name: "merge into empty set",
			a:    KeywordSet{},
			b:    KeywordSet{"go": 1.5},
			want: KeywordSet{"go": 1.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Clone()
			got.Merge(tt.b)
			if !got.Equal(tt.want, tol) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeywordSetMergeCommutative(t *testing.T) {
	a := KeywordSet{"go": 1.1, "sql": 0.3, "api": 2.0}
	b := KeywordSet{"go": 0.7, "docker": 0.9}

	ab := a.Clone()
	ab.Merge(b)
	ba := b.Clone()
	ba.Merge(a)

	if !ab.Equal(ba, tol) {
		t.Errorf("merge not commutative: a+b = %v, b+a = %v", ab, ba)
	}
}

func TestKeywordSetMergeAssociative(t *testing.T) {
	a := KeywordSet{"go": 0.1, "sql": 0.2}
	b := KeywordSet{"go": 0.3, "api": 0.4}
	c := KeywordSet{"sql": 0.5, "api": 0.6, "docker": 0.7}

	left := a.Clone()
	left.Merge(b)
	left.Merge(c)

	bc := b.Clone()
	bc.Merge(c)
	right := a.Clone()
	right.Merge(bc)

	// Floating-point sums depend on merge order, so compare within
	// tolerance rather than bit-exact.
	if !left.Equal(right, 1e-6) {
		t.Errorf("merge not associative: (a+b)+c = %v, a+(b+c) = %v", left, right)
	}
}

func TestKeywordSetEqualTolerance(t *testing.T) {
	a := KeywordSet{"go": 1.0}
	b := KeywordSet{"go": 1.0 + 1e-12}
	if !a.Equal(b, 1e-9) {
		t.Error("sets within tolerance should compare equal")
	}
	c := KeywordSet{"go": 1.1}
	if a.Equal(c, 1e-9) {
		t.Error("sets outside tolerance should not compare equal")
	}
	d := KeywordSet{"rust": 1.0}
	if a.Equal(d, 1e-9) {
		t.Error("sets with different keys should not compare equal")
	}
}

func TestKeywordSetTop(t *testing.T) {
	ks := KeywordSet{"go": 3.0, "sql": 1.0, "api": 2.0, "aws": 1.0}

	top := ks.Top(3)
	if len(top) != 3 {
		t.Fatalf("Top(3) returned %d entries", len(top))
	}
	if top[0].Text != "go" || math.Abs(top[0].Weight-3.0) > tol {
		t.Errorf("top[0] = %+v, want go/3.0", top[0])
	}
	if top[1].Text != "api" {
		t.Errorf("top[1] = %+v, want api", top[1])
	}
	// Equal weights break ties by text.
	if top[2].Text != "aws" {
		t.Errorf("top[2] = %+v, want aws (tie broken by text)", top[2])
	}

	if got := ks.Top(10); len(got) != 4 {
		t.Errorf("Top(10) returned %d entries, want all 4", len(got))
	}
}

func TestPageDataMergeLeftBias(t *testing.T) {
	left := NewPageData("https://a.example")
	left.JobTitle = "Backend Engineer"
	left.Keywords["go"] = 1.0

	right := NewPageData("https://a.example")
	right.JobTitle = "Ignored Title"
	right.Company = "Acme"
	right.Keywords["go"] = 0.5
	right.Keywords["sql"] = 2.0

	left.Merge(right)

	if left.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q, left side should win", left.JobTitle)
	}
	if left.Company != "Acme" {
		t.Errorf("Company = %q, empty left side should take right value", left.Company)
	}
	want := KeywordSet{"go": 1.5, "sql": 2.0}
	if !left.Keywords.Equal(want, tol) {
		t.Errorf("Keywords = %v, want %v", left.Keywords, want)
	}
}

func TestPageDataMergeNil(t *testing.T) {
	p := NewPageData("https://a.example")
	p.Keywords["go"] = 1.0
	p.Merge(nil)
	if len(p.Keywords) != 1 {
		t.Error("merging nil should be a no-op")
	}
}

func TestPageDataEmpty(t *testing.T) {
	if !NewPageData("https://a.example").Empty() {
		t.Error("fresh PageData should be empty")
	}
	p := NewPageData("https://a.example")
	p.JobTitle = "Engineer"
	if p.Empty() {
		t.Error("PageData with a title is not empty")
	}
}
