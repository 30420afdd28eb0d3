// Package adapters はcompaniesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"startup_radar/internal/feature/companies/domain/entity"
	"startup_radar/internal/feature/companies/usecase"

	"gorm.io/gorm"
)

// companyMySQL はCompanyRepositoryインターフェースのMySQL実装です。
type companyMySQL struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyMySQL)(nil)

// NewCompanyRepository は指定されたDB接続でcompanyMySQLリポジトリの新しいインスタンスを生成します。
func NewCompanyRepository(db *gorm.DB) *companyMySQL {
	return &companyMySQL{db: db}
}

// List はtech_area, name順にすべての企業を返します。
// techAreaが空でない場合はその技術領域に絞り込みます。
func (r *companyMySQL) List(ctx context.Context, techArea string) ([]entity.Company, error) {
	var companies []entity.Company
	q := r.db.WithContext(ctx).Order("tech_area ASC, name ASC")
	if techArea != "" {
		q = q.Where("tech_area = ?", techArea)
	}
	if err := q.Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
