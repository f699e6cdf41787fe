package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	hostelModel "hostelhub/internal/domains/hostel/model"
	"hostelhub/internal/domains/visitor/model"
)

func TestNormalizeCounts(t *testing.T) {
	tests := []struct {
		name  string
		terms []model.CountedTerm
		want  map[string]float64
	}{
		{
			name: "scores relative to the most frequent term",
			terms: []model.CountedTerm{
				{Term: "jakarta", Count: 10},
				{Term: "bandung", Count: 5},
				{Term: "surabaya", Count: 1},
			},
			want: map[string]float64{
				"jakarta":  1.0,
				"bandung":  0.5,
				"surabaya": 0.1,
			},
		},
		{
			name:  "empty input yields empty scores",
			terms: []model.CountedTerm{},
			want:  map[string]float64{},
		},
		{
			name: "all-zero counts yield empty scores",
			terms: []model.CountedTerm{
				{Term: "jakarta", Count: 0},
			},
			want: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeCounts(tt.terms)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTermSetAndTermList(t *testing.T) {
	terms := []model.CountedTerm{
		{Term: "jakarta", Count: 3},
		{Term: "bandung", Count: 1},
	}

	set := termSet(terms)
	assert.True(t, set["jakarta"])
	assert.True(t, set["bandung"])
	assert.False(t, set["surabaya"])

	list := termList(terms)
	assert.Equal(t, []string{"jakarta", "bandung"}, list)
}

func TestMergeCandidates(t *testing.T) {
	into := map[string]hostelModel.Hostel{
		"h1": {ID: "h1", Name: "First"},
	}

	mergeCandidates(into, []hostelModel.Hostel{
		{ID: "h1", Name: "First Updated"},
		{ID: "h2", Name: "Second"},
	})

	assert.Len(t, into, 2)
	assert.Equal(t, "First Updated", into["h1"].Name)
	assert.Equal(t, "Second", into["h2"].Name)
}

func TestBehavioralScore(t *testing.T) {
	roomTypeScores := map[string]float64{"dorm": 1.0, "single": 0.5}

	tests := []struct {
		name      string
		cityScore float64
		roomTypes []string
		want      float64
	}{
		{
			name:      "top city and top room type",
			cityScore: 1.0,
			roomTypes: []string{"dorm", "single"},
			want:      1.0,
		},
		{
			name:      "top city only",
			cityScore: 1.0,
			roomTypes: []string{"double"},
			want:      0.5,
		},
		{
			name:      "best room type wins when several match",
			cityScore: 0.0,
			roomTypes: []string{"single", "dorm"},
			want:      0.5,
		},
		{
			name:      "partial affinity on both dimensions",
			cityScore: 0.5,
			roomTypes: []string{"single"},
			want:      0.5,
		},
		{
			name:      "no affinity at all",
			cityScore: 0.0,
			roomTypes: nil,
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := behavioralScore(tt.cityScore, tt.roomTypes, roomTypeScores)

			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestPreferenceScore(t *testing.T) {
	hostel := hostelModel.Hostel{
		ID:        "h1",
		City:      "jakarta",
		Amenities: pq.StringArray{"wifi", "laundry"},
	}

	tests := []struct {
		name       string
		preference model.Preference
		want       float64
	}{
		{
			name:       "no stored preference scores zero",
			preference: model.Preference{},
			want:       0,
		},
		{
			name: "city match scores half",
			preference: model.Preference{
				ID:     "pref-id",
				Cities: pq.StringArray{"jakarta"},
			},
			want: 0.5,
		},
		{
			name: "full amenity overlap scores half",
			preference: model.Preference{
				ID:        "pref-id",
				Amenities: pq.StringArray{"wifi", "laundry"},
			},
			want: 0.5,
		},
		{
			name: "city match plus partial amenity overlap",
			preference: model.Preference{
				ID:        "pref-id",
				Cities:    pq.StringArray{"jakarta"},
				Amenities: pq.StringArray{"wifi", "parking"},
			},
			want: 0.75,
		},
		{
			name: "no overlap at all scores zero",
			preference: model.Preference{
				ID:        "pref-id",
				Cities:    pq.StringArray{"bandung"},
				Amenities: pq.StringArray{"parking"},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preferenceScore(tt.preference, hostel)

			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestNoveltyScore(t *testing.T) {
	seenCities := map[string]bool{"jakarta": true}
	seenRoomTypes := map[string]bool{"dorm": true}

	tests := []struct {
		name      string
		city      string
		roomTypes []string
		want      float64
	}{
		{
			name:      "unseen city and unseen room types",
			city:      "bandung",
			roomTypes: []string{"single"},
			want:      1.0,
		},
		{
			name:      "unseen city but familiar room type",
			city:      "bandung",
			roomTypes: []string{"dorm"},
			want:      0.5,
		},
		{
			name:      "familiar city but unseen room types",
			city:      "jakarta",
			roomTypes: []string{"single", "double"},
			want:      0.5,
		},
		{
			name:      "familiar city and familiar room type",
			city:      "jakarta",
			roomTypes: []string{"dorm", "single"},
			want:      0.0,
		},
		{
			name:      "no room types counts as unseen",
			city:      "jakarta",
			roomTypes: nil,
			want:      0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := noveltyScore(tt.city, tt.roomTypes, seenCities, seenRoomTypes)

			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}
