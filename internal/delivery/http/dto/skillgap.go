package dto

import (
	"time"

	"career-path/internal/domain/analysis"
)

type AnalyzeRequest struct {
	TargetRole string   `json:"targetRole"`
	Skills     []string `json:"skills"`
}

type AnalysisRecordResponse struct {
	ID            string   `json:"id"`
	TargetRole    string   `json:"targetRole"`
	InputSkills   []string `json:"inputSkills"`
	MissingSkills []string `json:"missingSkills"`
	CreatedAt     string   `json:"createdAt"`
}

type AnalysisHistoryResponse struct {
	Analyses []AnalysisRecordResponse `json:"analyses"`
}

func NewAnalysisHistoryResponse(records []analysis.Record) AnalysisHistoryResponse {
	out := make([]AnalysisRecordResponse, 0, len(records))
	for _, rec := range records {
		inputs := rec.InputSkills
		if inputs == nil {
			inputs = []string{}
		}
		missing := rec.MissingSkills
		if missing == nil {
			missing = []string{}
		}
		out = append(out, AnalysisRecordResponse{
			ID:            rec.ID.String(),
			TargetRole:    rec.TargetRole,
			InputSkills:   inputs,
			MissingSkills: missing,
			CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return AnalysisHistoryResponse{Analyses: out}
}
