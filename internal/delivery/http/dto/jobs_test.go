package dto

import (
	"encoding/json"
	"testing"

	"career-path/internal/domain/skill"
)

func TestNewJobListingResponses_WireShape(t *testing.T) {
	got := NewJobListingResponses([]skill.Listing{{
		ID:          "adz-1",
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		RedirectURL: "https://example.com/adz-1",
	}})

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// a bare array of listings, no envelope around it
	want := `[{"id":"adz-1","title":"Backend Engineer","redirect_url":"https://example.com/adz-1",` +
		`"company":{"display_name":"Acme"},"location":{"display_name":"Remote"}}]`
	if string(b) != want {
		t.Fatalf("unexpected wire shape:\n got %s\nwant %s", b, want)
	}
}

func TestNewJobListingResponses_EmptyIsEmptyArray(t *testing.T) {
	b, err := json.Marshal(NewJobListingResponses(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected empty array, got %s", b)
	}
}
