// Package usecase implements the business logic for company catalog operations.
package usecase

import (
	"context"
	"fmt"

	"startup_radar/internal/feature/companies/domain/entity"
	discovery "startup_radar/internal/feature/discovery/domain/entity"
)

// CompanyRepository abstracts the persistence layer for discovered companies.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CompanyRepository interface {
	List(ctx context.Context, techArea string) ([]entity.Company, error)
}

// CompanyUsecase provides read access to the discovered company catalog.
type CompanyUsecase struct {
	repo CompanyRepository
}

// NewCompanyUsecase creates a new CompanyUsecase with the given repository.
func NewCompanyUsecase(r CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: r}
}

// ListCompanies returns all companies, optionally filtered by technology area.
// A non-empty filter must be one of the known technology areas.
func (u *CompanyUsecase) ListCompanies(ctx context.Context, techArea string) ([]entity.Company, error) {
	if techArea != "" && !discovery.IsTechnologyArea(techArea) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTechArea, techArea)
	}
	return u.repo.List(ctx, techArea)
}

// ExportMap returns a name-to-website map of every persisted company.
// A name discovered in multiple technology areas keeps the last website seen.
func (u *CompanyUsecase) ExportMap(ctx context.Context) (map[string]string, error) {
	companies, err := u.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(companies))
	for _, c := range companies {
		out[c.Name] = c.Website
	}
	return out, nil
}
