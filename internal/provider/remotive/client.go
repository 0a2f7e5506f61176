package remotive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"career-path/internal/domain/skill"
)

const requestTimeout = 15 * time.Second

// Client talks to the Remotive public job board. It needs no credentials,
// which is why it serves as the fallback job source when Adzuna keys are
// not configured.
type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://remotive.com"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type jobsResponse struct {
	Jobs []remoteJob `json:"jobs"`
}

type remoteJob struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Category    string `json:"category"`
	Location    string `json:"candidate_required_location"`
	Description string `json:"description"`
}

func (c *Client) Search(ctx context.Context, query string) ([]skill.Listing, error) {
	q := url.Values{}
	q.Set("search", query)
	q.Set("limit", "50")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/remote-jobs?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remotive search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("remotive search: unexpected status %d", resp.StatusCode)
	}

	var payload jobsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("remotive search: %w", err)
	}

	out := make([]skill.Listing, 0, len(payload.Jobs))
	for _, j := range payload.Jobs {
		out = append(out, skill.Listing{
			ID:          strconv.FormatInt(j.ID, 10),
			Title:       j.Title,
			Description: j.Description,
			Category:    j.Category,
			Company:     j.CompanyName,
			Location:    j.Location,
			RedirectURL: j.URL,
		})
	}
	return out, nil
}
