package usecase

import (
	"context"
	"errors"
	"testing"

	"startup_radar/internal/feature/companies/domain/entity"
)

var ErrDB = errors.New("db error")

// mockCompanyRepository is a mock implementation of the CompanyRepository interface.
type mockCompanyRepository struct {
	ListFunc  func(ctx context.Context, techArea string) ([]entity.Company, error)
	ListCalls int
}

func (m *mockCompanyRepository) List(ctx context.Context, techArea string) ([]entity.Company, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx, techArea)
	}
	return nil, errors.New("ListFunc is not implemented")
}

func TestCompanyUsecase_ListCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("success: no filter returns everything", func(t *testing.T) {
		repo := &mockCompanyRepository{
			ListFunc: func(ctx context.Context, techArea string) ([]entity.Company, error) {
				if techArea != "" {
					t.Errorf("expected empty filter, got %q", techArea)
				}
				return []entity.Company{
					{Name: "Acme AI", Website: "https://acme.in", TechArea: "AI and ML"},
					{Name: "ChainCo", Website: "https://chainco.in", TechArea: "Blockchain"},
				}, nil
			},
		}
		uc := NewCompanyUsecase(repo)

		companies, err := uc.ListCompanies(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(companies) != 2 {
			t.Errorf("expected 2 companies, got %d", len(companies))
		}
	})

	t.Run("success: valid tech area filter is passed through", func(t *testing.T) {
		repo := &mockCompanyRepository{
			ListFunc: func(ctx context.Context, techArea string) ([]entity.Company, error) {
				if techArea != "Computer Vision" {
					t.Errorf("expected Computer Vision filter, got %q", techArea)
				}
				return nil, nil
			},
		}
		uc := NewCompanyUsecase(repo)

		if _, err := uc.ListCompanies(ctx, "Computer Vision"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("error: unknown tech area filter", func(t *testing.T) {
		repo := &mockCompanyRepository{}
		uc := NewCompanyUsecase(repo)

		_, err := uc.ListCompanies(ctx, "Underwater Basket Weaving")
		if !errors.Is(err, ErrUnknownTechArea) {
			t.Fatalf("expected ErrUnknownTechArea, got %v", err)
		}
		if repo.ListCalls != 0 {
			t.Error("repository should not be called for an unknown area")
		}
	})

	t.Run("error: repository failure is propagated", func(t *testing.T) {
		repo := &mockCompanyRepository{
			ListFunc: func(ctx context.Context, techArea string) ([]entity.Company, error) {
				return nil, ErrDB
			},
		}
		uc := NewCompanyUsecase(repo)

		_, err := uc.ListCompanies(ctx, "")
		if !errors.Is(err, ErrDB) {
			t.Fatalf("expected ErrDB, got %v", err)
		}
	})
}

func TestCompanyUsecase_ExportMap(t *testing.T) {
	ctx := context.Background()

	t.Run("success: name to website map", func(t *testing.T) {
		repo := &mockCompanyRepository{
			ListFunc: func(ctx context.Context, techArea string) ([]entity.Company, error) {
				return []entity.Company{
					{Name: "Acme AI", Website: "https://acme.in", TechArea: "AI and ML"},
					{Name: "ChainCo", Website: "https://chainco.in", TechArea: "Blockchain"},
				}, nil
			},
		}
		uc := NewCompanyUsecase(repo)

		out, err := uc.ExportMap(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(out))
		}
		if out["Acme AI"] != "https://acme.in" {
			t.Errorf("unexpected website for Acme AI: %q", out["Acme AI"])
		}
	})

	t.Run("success: duplicate name keeps last website", func(t *testing.T) {
		repo := &mockCompanyRepository{
			ListFunc: func(ctx context.Context, techArea string) ([]entity.Company, error) {
				return []entity.Company{
					{Name: "Acme AI", Website: "https://first.in", TechArea: "AI and ML"},
					{Name: "Acme AI", Website: "https://second.in", TechArea: "Computer Vision"},
				}, nil
			},
		}
		uc := NewCompanyUsecase(repo)

		out, err := uc.ExportMap(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(out))
		}
		if out["Acme AI"] != "https://second.in" {
			t.Errorf("expected last website to win, got %q", out["Acme AI"])
		}
	})

	t.Run("error: repository failure is propagated", func(t *testing.T) {
		repo := &mockCompanyRepository{
			ListFunc: func(ctx context.Context, techArea string) ([]entity.Company, error) {
				return nil, ErrDB
			},
		}
		uc := NewCompanyUsecase(repo)

		if _, err := uc.ExportMap(ctx); !errors.Is(err, ErrDB) {
			t.Fatalf("expected ErrDB, got %v", err)
		}
	})
}
