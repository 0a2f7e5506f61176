package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"career-path/internal/domain/skill"
)

type mockJobProvider struct {
	creds   bool
	results map[string][]skill.Listing
	errs    map[string]error
	calls   []string
}

func (m *mockJobProvider) HasCredentials() bool { return m.creds }

func (m *mockJobProvider) Search(_ context.Context, what string) ([]skill.Listing, error) {
	m.calls = append(m.calls, what)
	if err, ok := m.errs[what]; ok {
		return nil, err
	}
	return m.results[what], nil
}

type mockFallbackProvider struct {
	results []skill.Listing
	err     error
}

func (m *mockFallbackProvider) Search(context.Context, string) ([]skill.Listing, error) {
	return m.results, m.err
}

func listings(ids ...string) []skill.Listing {
	out := make([]skill.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, skill.Listing{ID: id, Title: "job " + id})
	}
	return out
}

func TestLiveJobs_EmptyRole(t *testing.T) {
	uc := NewJobsUsecase(&mockJobProvider{creds: true}, nil, nil, nil)
	if _, err := uc.LiveJobs(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLiveJobs_CombinedOnlyForSingleTerm(t *testing.T) {
	p := &mockJobProvider{creds: true, results: map[string][]skill.Listing{
		"engineer": listings("a", "b"),
	}}
	uc := NewJobsUsecase(p, nil, nil, nil)

	res, err := uc.LiveJobs(context.Background(), "engineer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != JobSourceAdzuna {
		t.Fatalf("expected adzuna source, got %q", res.Source)
	}
	if len(res.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(res.Listings))
	}
	if len(p.calls) != 1 {
		t.Fatalf("expected single combined call, got %v", p.calls)
	}
}

func TestLiveJobs_FanOutMergesAndDedups(t *testing.T) {
	p := &mockJobProvider{creds: true, results: map[string][]skill.Listing{
		"react node": listings("a", "b"),
		"react":      listings("b", "c"),
		"node":       listings("a", "d"),
	}}
	uc := NewJobsUsecase(p, nil, nil, nil)

	res, err := uc.LiveJobs(context.Background(), "react node")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []string{"a", "b", "c", "d"}
	if len(res.Listings) != len(want) {
		t.Fatalf("expected %d listings, got %+v", len(want), res.Listings)
	}
	for i, id := range want {
		if res.Listings[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, res.Listings[i].ID)
		}
	}
}

func TestLiveJobs_FanOutBoundedToSixTerms(t *testing.T) {
	role := "a b c d e f g h"
	p := &mockJobProvider{creds: true, results: map[string][]skill.Listing{role: nil}}
	uc := NewJobsUsecase(p, nil, nil, nil)

	if _, err := uc.LiveJobs(context.Background(), role); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// combined + first 6 terms
	if len(p.calls) != 7 {
		t.Fatalf("expected 7 provider calls, got %d: %v", len(p.calls), p.calls)
	}
}

func TestLiveJobs_CapAtTwenty(t *testing.T) {
	many := make([]skill.Listing, 0, 30)
	for i := 0; i < 30; i++ {
		many = append(many, skill.Listing{ID: fmt.Sprintf("id-%d", i)})
	}
	p := &mockJobProvider{creds: true, results: map[string][]skill.Listing{"engineer": many}}
	uc := NewJobsUsecase(p, nil, nil, nil)

	res, err := uc.LiveJobs(context.Background(), "engineer")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Listings) != maxListings {
		t.Fatalf("expected %d listings, got %d", maxListings, len(res.Listings))
	}
}

func TestLiveJobs_PerTermFailureSkipped(t *testing.T) {
	p := &mockJobProvider{
		creds: true,
		results: map[string][]skill.Listing{
			"react node": listings("a"),
			"node":       listings("b"),
		},
		errs: map[string]error{"react": errors.New("rate limited")},
	}
	uc := NewJobsUsecase(p, nil, nil, nil)

	res, err := uc.LiveJobs(context.Background(), "react node")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %+v", res.Listings)
	}
}

func TestLiveJobs_NoCredentialsUsesFallbackProvider(t *testing.T) {
	fb := &mockFallbackProvider{results: listings("r1", "r2")}
	uc := NewJobsUsecase(&mockJobProvider{creds: false}, fb, nil, nil)

	res, err := uc.LiveJobs(context.Background(), "react")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != JobSourceRemotive {
		t.Fatalf("expected remotive source, got %q", res.Source)
	}
	if len(res.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(res.Listings))
	}
}

func TestLiveJobs_CombinedFailureFallsBackToProvider(t *testing.T) {
	p := &mockJobProvider{creds: true, errs: map[string]error{"react": errors.New("adzuna down")}}
	fb := &mockFallbackProvider{results: listings("r1")}
	uc := NewJobsUsecase(p, fb, nil, nil)

	res, err := uc.LiveJobs(context.Background(), "react")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != JobSourceRemotive || len(res.Listings) != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLiveJobs_BothProvidersFailing(t *testing.T) {
	p := &mockJobProvider{creds: true, errs: map[string]error{"react": errors.New("adzuna down")}}
	fb := &mockFallbackProvider{err: errors.New("remotive down")}
	uc := NewJobsUsecase(p, fb, nil, nil)

	if _, err := uc.LiveJobs(context.Background(), "react"); err == nil {
		t.Fatalf("expected error when both providers fail")
	}
}
