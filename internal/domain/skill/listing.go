package skill

// Listing is a single job posting as returned by an external provider.
// Identity is the provider-assigned ID; zero salary values mean "absent".
type Listing struct {
	ID          string
	Title       string
	Description string
	Category    string
	Company     string
	Location    string
	SalaryMin   float64
	SalaryMax   float64
	RedirectURL string
}
