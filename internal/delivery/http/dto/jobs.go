package dto

import "career-path/internal/domain/skill"

type DisplayName struct {
	DisplayName string `json:"display_name"`
}

type JobListingResponse struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	RedirectURL string      `json:"redirect_url"`
	Company     DisplayName `json:"company"`
	Location    DisplayName `json:"location"`
}

// NewJobListingResponses maps provider listings onto the wire shape. The
// endpoint returns the array itself, no envelope.
func NewJobListingResponses(listings []skill.Listing) []JobListingResponse {
	jobs := make([]JobListingResponse, 0, len(listings))
	for _, l := range listings {
		jobs = append(jobs, JobListingResponse{
			ID:          l.ID,
			Title:       l.Title,
			RedirectURL: l.RedirectURL,
			Company:     DisplayName{DisplayName: l.Company},
			Location:    DisplayName{DisplayName: l.Location},
		})
	}
	return jobs
}
