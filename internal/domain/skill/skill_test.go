package skill

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		" React ":    "react",
		"NODE.js":    "node.js",
		"":           "",
		"  ":         "",
		"PostgreSQL": "postgresql",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTokenize_SplitsAndDedups(t *testing.T) {
	got := Tokenize([]string{"react, node", " node "})
	want := []string{"react", "node"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	first := Tokenize([]string{"react docker,kubernetes", "", "  ,  ", "git"})
	second := Tokenize(first)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-tokenizing changed output: %v -> %v", first, second)
	}
}

func TestTokenize_PreservesCase(t *testing.T) {
	got := Tokenize([]string{"React"})
	if !reflect.DeepEqual(got, []string{"React"}) {
		t.Fatalf("expected case preserved, got %v", got)
	}
}

func TestUniq_PreservesFirstSeenOrder(t *testing.T) {
	got := Uniq([]string{"b", "a", "b", "", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Uniq = %v, want %v", got, want)
	}
}

func TestExtract_WordBoundaries(t *testing.T) {
	listings := []Listing{{Title: "Engineer", Description: "javascript frameworks"}}
	got := Extract(listings, []string{"java", "javascript"})
	if contains(got, "java") {
		t.Fatalf("'java' must not match inside 'javascript': %v", got)
	}
	if !contains(got, "javascript") {
		t.Fatalf("expected 'javascript' match, got %v", got)
	}

	listings = []Listing{{Title: "Backend", Description: "java backend"}}
	got = Extract(listings, []string{"java", "javascript"})
	if !contains(got, "java") {
		t.Fatalf("expected 'java' match, got %v", got)
	}
	if contains(got, "javascript") {
		t.Fatalf("'javascript' must not match 'java backend': %v", got)
	}
}

func TestExtract_DefaultVocabularyAndCategory(t *testing.T) {
	listings := []Listing{{
		Title:       "Frontend Developer",
		Description: "React Docker Kubernetes",
		Category:    "IT Jobs",
	}}
	got := Extract(listings, nil)
	for _, want := range []string{"react", "docker", "kubernetes"} {
		if !contains(got, want) {
			t.Fatalf("expected %q in %v", want, got)
		}
	}
}

func TestExtract_PunctuatedTokens(t *testing.T) {
	listings := []Listing{{Description: "Senior C# developer, .NET stack"}}
	got := Extract(listings, []string{"c#", ".net"})
	if !contains(got, "c#") || !contains(got, ".net") {
		t.Fatalf("expected punctuated tokens to match, got %v", got)
	}
}

func TestExtract_Dedup(t *testing.T) {
	listings := []Listing{
		{Description: "docker docker docker"},
		{Description: "docker again"},
	}
	got := Extract(listings, []string{"docker"})
	if len(got) != 1 || got[0] != "docker" {
		t.Fatalf("expected single 'docker', got %v", got)
	}
}

func TestRoleSkills_KnownRole(t *testing.T) {
	got := RoleSkills("Frontend Developer")
	want := []string{"javascript", "react", "html", "css", "git", "rest"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RoleSkills = %v, want %v", got, want)
	}
}

func TestRoleSkills_UnknownRoleFallsBackToVocabulary(t *testing.T) {
	got := RoleSkills("unknown role xyz")
	if !reflect.DeepEqual(got, NormalizeAll(DefaultVocabulary)) {
		t.Fatalf("expected default vocabulary, got %v", got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
