package view

import (
	"testing"

	"github.com/aditya-nugraha/Pesona/pesona-go/internal/model"
)

func sampleAttractions() []model.Attraction {
	return []model.Attraction{
		{ID: "borobudur", Name: "Borobudur Temple", CountryID: "indonesia", Type: "temple", Location: model.Location{City: "Magelang"}},
		{ID: "kuta", Name: "Kuta Beach", CountryID: "indonesia", Type: "beach", Location: model.Location{City: "Badung"}},
		{ID: "monas", Name: "National Monument", CountryID: "indonesia", Type: "landmark", Location: model.Location{City: "Jakarta"}},
		{ID: "petronas", Name: "Petronas Towers", CountryID: "malaysia", Type: "landmark", Location: model.Location{City: "Kuala Lumpur"}},
	}
}

func ids(attractions []model.Attraction) []string {
	out := make([]string, len(attractions))
	for i, a := range attractions {
		out[i] = a.ID
	}
	return out
}

func TestFilterAttractions(t *testing.T) {
	all := sampleAttractions()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query yields nothing", "", []string{}},
		{"whitespace query yields nothing", "   ", []string{}},
		{"match by name", "borobudur", []string{"borobudur"}},
		{"match by city", "jakarta", []string{"monas"}},
		{"match by country", "malaysia", []string{"petronas"}},
		{"match by type", "landmark", []string{"monas", "petronas"}},
		{"case insensitive", "KUTA", []string{"kuta"}},
		{"substring match", "beac", []string{"kuta"}},
		{"no match", "everest", []string{}},
		{"query with surrounding whitespace", "  jakarta ", []string{"monas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAttractions(tt.query, all)
			if got == nil {
				t.Fatal("result must never be nil")
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotIDs, tt.want)
			}
			for i := range tt.want {
				if gotIDs[i] != tt.want[i] {
					t.Errorf("result[%d] = %s, want %s", i, gotIDs[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilterAttractions_PreservesInputOrder(t *testing.T) {
	all := sampleAttractions()
	got := FilterAttractions("indonesia", all)
	want := []string{"borobudur", "kuta", "monas"}
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Errorf("result[%d] = %s, want %s (candidate order must be kept)", i, gotIDs[i], want[i])
		}
	}
}

func TestFilterAttractions_MatchesOnlyWhereQueryAppears(t *testing.T) {
	candidates := []model.Attraction{
		{ID: "tanah-lot", Name: "Tanah Lot", CountryID: "indonesia", Type: "temple", Location: model.Location{City: "Bali"}},
		{ID: "ancol", Name: "Ancol", CountryID: "indonesia", Type: "beach", Location: model.Location{City: "Jakarta"}},
	}

	got := FilterAttractions("bali", candidates)
	if len(got) != 1 || got[0].ID != "tanah-lot" {
		t.Errorf("FilterAttractions(bali) = %v, want only the Bali candidate", ids(got))
	}
}

func TestFilterAttractions_EmptyCandidates(t *testing.T) {
	got := FilterAttractions("bali", nil)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}
