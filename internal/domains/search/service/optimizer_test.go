package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostelhub/internal/domains/search/repository"
)

func TestSharedPrefix(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{name: "common prefix", a: "sunrise", b: "sunset", want: "suns"},
		{name: "identical strings", a: "lodge", b: "lodge", want: "lodge"},
		{name: "no overlap", a: "alpha", b: "beta", want: ""},
		{name: "one empty string", a: "", b: "hostel", want: ""},
		{name: "shorter string bounds the prefix", a: "inn", b: "innsbruck", want: "inn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sharedPrefix(tt.a, tt.b))
		})
	}
}

func TestSuggestSynonyms(t *testing.T) {
	hostelTerms := []string{"sunrise", "lodge", "backpackers"}

	tests := []struct {
		name       string
		zeroResult []repository.TermShare
		want       int
	}{
		{
			name: "prefix overlap produces a suggestion",
			zeroResult: []repository.TermShare{
				{Term: "sunrize hostel", Count: 5},
			},
			// "sunrize" shares "sunri" with "sunrise", "hostel" matches nothing
			want: 1,
		},
		{
			name: "exact hostel term is skipped",
			zeroResult: []repository.TermShare{
				{Term: "lodge", Count: 3},
			},
			want: 0,
		},
		{
			name: "short words are ignored",
			zeroResult: []repository.TermShare{
				{Term: "sun inn", Count: 2},
			},
			want: 0,
		},
		{
			name:       "no zero-result terms",
			zeroResult: []repository.TermShare{},
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := suggestSynonyms(tt.zeroResult, hostelTerms)

			assert.Len(t, got, tt.want)
		})
	}
}

func TestSuggestSynonyms_Fields(t *testing.T) {
	got := suggestSynonyms(
		[]repository.TermShare{{Term: "sunrize", Count: 5}},
		[]string{"sunrise"},
	)

	if assert.Len(t, got, 1) {
		assert.Equal(t, "sunrize", got[0].QueryTerm)
		assert.Equal(t, "sunrise", got[0].HostelTerm)
		assert.Equal(t, "sunri", got[0].SharedPrefix)
	}
}

func TestSuggestBoosts(t *testing.T) {
	queryShares := []repository.TermShare{
		{Term: "jakarta", Count: 60},
		{Term: "bandung", Count: 40},
	}
	viewShares := []repository.TermShare{
		{Term: "jakarta", Count: 90},
		{Term: "bandung", Count: 10},
	}

	got := suggestBoosts(queryShares, viewShares)

	// bandung is searched in 40% of queries but only 10% of views
	if assert.Len(t, got, 1) {
		assert.Equal(t, "bandung", got[0].City)
		assert.InDelta(t, 0.4, got[0].QueryShare, 0.0001)
		assert.InDelta(t, 0.1, got[0].ViewShare, 0.0001)
	}
}

func TestSuggestBoosts_NoQueries(t *testing.T) {
	got := suggestBoosts(nil, []repository.TermShare{{Term: "jakarta", Count: 5}})

	assert.Empty(t, got)
}

func TestSuggestBoosts_NoViews(t *testing.T) {
	got := suggestBoosts([]repository.TermShare{{Term: "jakarta", Count: 5}}, nil)

	// every searched city outpaces a view share of zero
	if assert.Len(t, got, 1) {
		assert.InDelta(t, 1.0, got[0].QueryShare, 0.0001)
		assert.InDelta(t, 0.0, got[0].ViewShare, 0.0001)
	}
}
