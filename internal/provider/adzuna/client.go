package adzuna

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"career-path/internal/domain/skill"
)

// Provider calls are bounded so a slow upstream degrades into a fallback
// instead of stalling the request.
const requestTimeout = 15 * time.Second

var ErrMissingCredentials = errors.New("missing adzuna credentials")

type Config struct {
	AppID   string
	AppKey  string
	Country string
	BaseURL string
}

type Client struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.adzuna.com"
	}
	if strings.TrimSpace(cfg.Country) == "" {
		cfg.Country = "us"
	}
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) HasCredentials() bool {
	return strings.TrimSpace(c.cfg.AppID) != "" && strings.TrimSpace(c.cfg.AppKey) != ""
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RedirectURL string     `json:"redirect_url"`
	SalaryMin   float64    `json:"salary_min"`
	SalaryMax   float64    `json:"salary_max"`
	Company     nameHolder `json:"company"`
	Location    nameHolder `json:"location"`
	Category    labelField `json:"category"`
}

type nameHolder struct {
	DisplayName string `json:"display_name"`
}

type labelField struct {
	Label string `json:"label"`
}

// History is the salary-history payload. Mean is nil when the provider did
// not report one; Histogram maps salary bucket value to listing count.
// Months is passed through to API consumers untouched.
type History struct {
	Mean      *float64           `json:"mean"`
	Histogram map[string]float64 `json:"histogram"`
	Months    map[string]float64 `json:"month"`
}

// Search queries the job-search endpoint for a single what= term and maps
// the results into domain listings.
func (c *Client) Search(ctx context.Context, what string) ([]skill.Listing, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingCredentials
	}

	endpoint := fmt.Sprintf("%s/v1/api/jobs/%s/search/1", strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.Country))
	q := url.Values{}
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	q.Set("what", what)
	q.Set("results_per_page", "50")

	var payload searchResponse
	if err := c.getJSON(ctx, endpoint+"?"+q.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("adzuna search: %w", err)
	}

	out := make([]skill.Listing, 0, len(payload.Results))
	for _, r := range payload.Results {
		out = append(out, skill.Listing{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category.Label,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
			RedirectURL: r.RedirectURL,
		})
	}
	return out, nil
}

// SalaryHistory queries the salary-history endpoint for a single what= term.
func (c *Client) SalaryHistory(ctx context.Context, what string) (History, error) {
	if !c.HasCredentials() {
		return History{}, ErrMissingCredentials
	}

	endpoint := fmt.Sprintf("%s/v1/api/jobs/%s/history", strings.TrimRight(c.cfg.BaseURL, "/"), url.PathEscape(c.cfg.Country))
	q := url.Values{}
	q.Set("app_id", c.cfg.AppID)
	q.Set("app_key", c.cfg.AppKey)
	q.Set("what", what)

	var payload History
	if err := c.getJSON(ctx, endpoint+"?"+q.Encode(), &payload); err != nil {
		return History{}, fmt.Errorf("adzuna history: %w", err)
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
