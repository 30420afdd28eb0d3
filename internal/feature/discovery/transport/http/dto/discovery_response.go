// Package dto defines data transfer objects for the discovery HTTP API.
package dto

// CompanyResponse represents a discovered company in the API response.
type CompanyResponse struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	TechArea string `json:"tech_area"`
}

// DiscoveryResponse is the response body for a single-area discovery run.
type DiscoveryResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Summary   string            `json:"summary"`
}

// ErrorResponse is the generic error body for the discovery API.
type ErrorResponse struct {
	Error string `json:"error"`
}
