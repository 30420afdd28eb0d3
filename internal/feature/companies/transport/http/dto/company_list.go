// Package dto defines data transfer objects for the companies HTTP API.
package dto

// CompanyItem represents a company in the API response.
// It contains only the public-facing fields needed by clients.
type CompanyItem struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	TechArea string `json:"tech_area"`
}
