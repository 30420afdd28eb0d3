package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"startup_radar/internal/feature/companies/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Company{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedCompany creates a test company in the database for testing.
func seedCompany(t *testing.T, db *gorm.DB, name, website, techArea string) {
	t.Helper()

	err := db.Create(&entity.Company{Name: name, Website: website, TechArea: techArea}).Error
	require.NoError(t, err, "failed to seed company")
}

func TestNewCompanyRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewCompanyRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestCompanyMySQL_List(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedCompany(t, db, "ChainCo", "https://chainco.in", "Blockchain")
	seedCompany(t, db, "VisionWorks", "https://visionworks.in", "Computer Vision")
	seedCompany(t, db, "Acme AI", "https://acme.in", "AI and ML")
	repo := NewCompanyRepository(db)

	companies, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, companies, 3)
	// Ordered by tech_area, then name
	assert.Equal(t, "Acme AI", companies[0].Name)
	assert.Equal(t, "ChainCo", companies[1].Name)
	assert.Equal(t, "VisionWorks", companies[2].Name)
}

func TestCompanyMySQL_List_FilterByTechArea(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	seedCompany(t, db, "ChainCo", "https://chainco.in", "Blockchain")
	seedCompany(t, db, "VisionWorks", "https://visionworks.in", "Computer Vision")
	repo := NewCompanyRepository(db)

	companies, err := repo.List(context.Background(), "Blockchain")

	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "ChainCo", companies[0].Name)
	assert.Equal(t, "https://chainco.in", companies[0].Website)
}

func TestCompanyMySQL_List_Empty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewCompanyRepository(db)

	companies, err := repo.List(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, companies)
}
