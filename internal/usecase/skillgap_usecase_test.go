package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"career-path/internal/domain/analysis"
	"career-path/internal/domain/skill"
	"career-path/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	user      user.User
	getErr    error
	saveErr   error
	savedWith []string
}

func (m *mockUserRepo) CreateUser(context.Context, user.User) error { return nil }
func (m *mockUserRepo) GetUserByID(context.Context, uuid.UUID) (user.User, error) {
	return m.user, m.getErr
}
func (m *mockUserRepo) GetUserByEmail(context.Context, string) (user.User, error) {
	return m.user, m.getErr
}
func (m *mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m *mockUserRepo) UpdateSkills(_ context.Context, _ uuid.UUID, skills []string) error {
	m.savedWith = skills
	return m.saveErr
}

type mockAnalysisRepo struct {
	created   []analysis.Record
	createErr error
}

func (m *mockAnalysisRepo) Create(_ context.Context, rec analysis.Record) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, rec)
	return nil
}
func (m *mockAnalysisRepo) ListByUser(context.Context, uuid.UUID, int) ([]analysis.Record, error) {
	return m.created, nil
}

type mockNotifier struct {
	events []string
}

func (m *mockNotifier) AnalysisCompleted(targetRole, source string) {
	m.events = append(m.events, targetRole+"/"+source)
}

func TestAnalyze_MissingTargetRole(t *testing.T) {
	uc := NewSkillGapUsecase(&mockUserRepo{}, &mockAnalysisRepo{}, &mockJobProvider{creds: true}, nil, nil)
	if _, err := uc.Analyze(context.Background(), uuid.New(), "  ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{user: user.User{ID: userID, Skills: nil}}
	analyses := &mockAnalysisRepo{}
	jobs := &mockJobProvider{creds: true, results: map[string][]skill.Listing{
		"frontend developer": {{
			ID:          "adz-1",
			Title:       "Frontend Developer",
			Description: "React Docker Kubernetes",
			Category:    "Web",
		}},
	}}
	notifier := &mockNotifier{}
	uc := NewSkillGapUsecase(users, analyses, jobs, notifier, nil)

	res, err := uc.Analyze(context.Background(), userID, "frontend developer", []string{"react"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.Source != GapSourceAdzuna {
		t.Fatalf("expected adzuna source, got %q", res.Source)
	}
	if !reflect.DeepEqual(res.InputSkills, []string{"react"}) {
		t.Fatalf("unexpected input skills: %v", res.InputSkills)
	}
	if !hasToken(res.MissingSkills, "javascript") {
		t.Fatalf("expected 'javascript' missing, got %v", res.MissingSkills)
	}
	for _, want := range []string{"docker", "kubernetes"} {
		if !hasToken(res.MissingSkills, want) {
			t.Fatalf("expected %q missing, got %v", want, res.MissingSkills)
		}
	}
	if hasToken(res.MissingSkills, "react") {
		t.Fatalf("'react' is owned, must not be missing: %v", res.MissingSkills)
	}

	// profile merge persisted even though nothing new was added beyond input
	if !reflect.DeepEqual(users.savedWith, []string{"react"}) {
		t.Fatalf("expected merged skills saved, got %v", users.savedWith)
	}

	// analysis record persisted
	if len(analyses.created) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(analyses.created))
	}
	rec := analyses.created[0]
	if rec.UserID != userID || rec.TargetRole != "frontend developer" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !reflect.DeepEqual(rec.MissingSkills, res.MissingSkills) {
		t.Fatalf("record/missing mismatch: %v vs %v", rec.MissingSkills, res.MissingSkills)
	}

	if len(notifier.events) != 1 || notifier.events[0] != "frontend developer/adzuna" {
		t.Fatalf("unexpected notifications: %v", notifier.events)
	}
}

func TestAnalyze_MergesStoredSkills(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{user: user.User{ID: userID, Skills: []string{"git", "css"}}}
	uc := NewSkillGapUsecase(users, &mockAnalysisRepo{}, &mockJobProvider{creds: true}, nil, nil)

	res, err := uc.Analyze(context.Background(), userID, "frontend developer", []string{"react"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if !reflect.DeepEqual(users.savedWith, []string{"git", "css", "react"}) {
		t.Fatalf("unexpected merged profile: %v", users.savedWith)
	}
	// stored skills count toward owned skills
	for _, owned := range []string{"git", "css", "react"} {
		if hasToken(res.MissingSkills, owned) {
			t.Fatalf("%q is owned, must not be missing: %v", owned, res.MissingSkills)
		}
	}
}

func TestAnalyze_MissingCredentialsSurfaces(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{user: user.User{ID: userID}}
	analyses := &mockAnalysisRepo{}
	uc := NewSkillGapUsecase(users, analyses, &mockJobProvider{creds: false}, nil, nil)

	_, err := uc.Analyze(context.Background(), userID, "frontend developer", []string{"react"})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	// configuration errors must not degrade to the role table or touch storage
	if users.savedWith != nil {
		t.Fatalf("profile must not be saved, got %v", users.savedWith)
	}
	if len(analyses.created) != 0 {
		t.Fatalf("no record must persist, got %d", len(analyses.created))
	}
}

func TestAnalyze_ProviderFailureDegradesToFallbackSource(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{user: user.User{ID: userID}}
	analyses := &mockAnalysisRepo{}
	jobs := &mockJobProvider{creds: true, errs: map[string]error{"devops engineer": errors.New("adzuna down")}}
	uc := NewSkillGapUsecase(users, analyses, jobs, nil, nil)

	res, err := uc.Analyze(context.Background(), userID, "devops engineer", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != GapSourceFallback {
		t.Fatalf("expected fallback source, got %q", res.Source)
	}
	if res.Warning == nil {
		t.Fatalf("expected warning on provider failure")
	}
	if len(res.MissingSkills) == 0 {
		t.Fatalf("expected fallback-table missing skills")
	}
	// profile and record still persist on this path
	if len(analyses.created) != 1 {
		t.Fatalf("expected persisted record, got %d", len(analyses.created))
	}
}

func TestAnalyze_LastResortFallbackOnPersistenceFailure(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{user: user.User{ID: userID}, saveErr: errors.New("db down")}
	analyses := &mockAnalysisRepo{}
	uc := NewSkillGapUsecase(users, analyses, &mockJobProvider{creds: true}, nil, nil)

	res, err := uc.Analyze(context.Background(), userID, "frontend developer", []string{"react"})
	if err != nil {
		t.Fatalf("last-resort path must not fail: %v", err)
	}
	if res.Source != GapSourceFallback {
		t.Fatalf("expected fallback source, got %q", res.Source)
	}
	if res.Warning == nil {
		t.Fatalf("expected diagnostic warning")
	}
	if hasToken(res.MissingSkills, "react") {
		t.Fatalf("'react' is owned, must not be missing: %v", res.MissingSkills)
	}
	if !hasToken(res.MissingSkills, "javascript") {
		t.Fatalf("expected fallback-table skills, got %v", res.MissingSkills)
	}
	if len(analyses.created) != 0 {
		t.Fatalf("fallback path must not persist records")
	}
}

func TestAnalyze_UserLoadFailureStillAnswers(t *testing.T) {
	users := &mockUserRepo{getErr: errors.New("db down")}
	uc := NewSkillGapUsecase(users, &mockAnalysisRepo{}, &mockJobProvider{creds: true}, nil, nil)

	res, err := uc.Analyze(context.Background(), uuid.New(), "data analyst", []string{"sql"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Source != GapSourceFallback || res.Warning == nil {
		t.Fatalf("expected warned fallback result, got %+v", res)
	}
	if hasToken(res.MissingSkills, "sql") {
		t.Fatalf("'sql' is owned, must not be missing: %v", res.MissingSkills)
	}
	if !hasToken(res.MissingSkills, "python") {
		t.Fatalf("expected 'python' from role table, got %v", res.MissingSkills)
	}
}

func hasToken(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
