package usecase

import (
	"context"
	"errors"
	"log"

	"career-path/internal/domain/analysis"
	"career-path/internal/domain/skill"
	"career-path/internal/domain/user"

	"github.com/google/uuid"
)

const (
	GapSourceAdzuna   = "adzuna"
	GapSourceFallback = "fallback"
)

type SkillGapResult struct {
	TargetRole    string   `json:"targetRole"`
	InputSkills   []string `json:"inputSkills"`
	MissingSkills []string `json:"missingSkills"`
	Source        string   `json:"source"`
	Warning       *Warning `json:"warning"`
}

// Notifier pushes an event to connected dashboards once an analysis has
// been persisted.
type Notifier interface {
	AnalysisCompleted(targetRole, source string)
}

type SkillGapUsecase interface {
	Analyze(ctx context.Context, userID uuid.UUID, targetRole string, skills []string) (SkillGapResult, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Record, error)
}

type SkillGap struct {
	users    user.Repository
	analyses analysis.Repository
	jobs     JobSearchProvider
	notifier Notifier
	logger   *log.Logger
}

func NewSkillGapUsecase(users user.Repository, analyses analysis.Repository, jobs JobSearchProvider, notifier Notifier, logger *log.Logger) *SkillGap {
	return &SkillGap{users: users, analyses: analyses, jobs: jobs, notifier: notifier, logger: logger}
}

// Analyze computes the missing-skills set for a target role and persists
// both the merged user skill profile and the analysis record.
//
// The result path is two-tier: the primary pipeline touches the profile
// store and the job provider; if anything in it fails unexpectedly, a pure
// fallback pipeline (tokenizer + role table only, no persistence) still
// produces a usable answer. Only a missing target role and unconfigured
// provider credentials are hard errors.
func (u *SkillGap) Analyze(ctx context.Context, userID uuid.UUID, targetRole string, skills []string) (SkillGapResult, error) {
	if skill.Normalize(targetRole) == "" {
		return SkillGapResult{}, ErrInvalidInput
	}

	res, err := u.analyze(ctx, userID, targetRole, skills)
	if err == nil {
		return res, nil
	}
	if errors.Is(err, ErrMissingCredentials) {
		// Configuration problem, not a runtime failure: surface it instead
		// of degrading to the role table.
		return SkillGapResult{}, err
	}

	if u.logger != nil {
		u.logger.Printf("skillgap | primary pipeline failed, using fallback | user=%s role=%q err=%v", userID, targetRole, err)
	}
	return u.fallbackAnalyze(targetRole, skills, err), nil
}

func (u *SkillGap) analyze(ctx context.Context, userID uuid.UUID, targetRole string, skills []string) (SkillGapResult, error) {
	if u.jobs == nil || !u.jobs.HasCredentials() {
		return SkillGapResult{}, ErrMissingCredentials
	}

	inputSkills := skill.Tokenize(skills)

	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		return SkillGapResult{}, err
	}

	// Merge is cumulative: stored skills grow, they are never removed here.
	merged := skill.Tokenize(append(append([]string{}, usr.Skills...), inputSkills...))
	if err := u.users.UpdateSkills(ctx, userID, merged); err != nil {
		return SkillGapResult{}, err
	}

	userSkills := skill.NormalizeAll(append(append([]string{}, inputSkills...), merged...))

	// Single combined query; fan-out stays in the live-jobs path.
	var warning *Warning
	listings, err := u.jobs.Search(ctx, targetRole)
	if err != nil {
		warning = newWarning("job search failed; using fallback skill model", err.Error())
		listings = nil
	}

	extracted := skill.Extract(listings, skill.DefaultVocabulary)
	required := skill.Uniq(append(skill.NormalizeAll(extracted), skill.RoleSkills(targetRole)...))
	missing := subtract(required, userSkills)

	rec := analysis.Record{
		ID:            uuid.New(),
		UserID:        userID,
		TargetRole:    targetRole,
		InputSkills:   inputSkills,
		MissingSkills: missing,
	}
	if err := u.analyses.Create(ctx, rec); err != nil {
		return SkillGapResult{}, err
	}

	source := GapSourceAdzuna
	if warning != nil {
		source = GapSourceFallback
	}

	if u.notifier != nil {
		u.notifier.AnalysisCompleted(targetRole, source)
	}

	return SkillGapResult{
		TargetRole:    targetRole,
		InputSkills:   inputSkills,
		MissingSkills: missing,
		Source:        source,
		Warning:       warning,
	}, nil
}

// fallbackAnalyze re-derives missing skills from the role table and the
// input tokens alone. No persistence, no provider call: it cannot fail.
func (u *SkillGap) fallbackAnalyze(targetRole string, skills []string, cause error) SkillGapResult {
	inputSkills := skill.Tokenize(skills)
	userSkills := skill.NormalizeAll(inputSkills)
	missing := subtract(skill.RoleSkills(targetRole), userSkills)

	detail := ""
	if cause != nil {
		detail = cause.Error()
	}

	return SkillGapResult{
		TargetRole:    targetRole,
		InputSkills:   inputSkills,
		MissingSkills: missing,
		Source:        GapSourceFallback,
		Warning:       newWarning("skill gap analysis error; returned fallback results", detail),
	}
}

func (u *SkillGap) History(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Record, error) {
	recs, err := u.analyses.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return recs, nil
}

// subtract returns required minus owned, preserving required's order.
func subtract(required, owned []string) []string {
	ownedSet := make(map[string]struct{}, len(owned))
	for _, s := range owned {
		ownedSet[s] = struct{}{}
	}
	out := make([]string, 0, len(required))
	for _, s := range required {
		if _, ok := ownedSet[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
