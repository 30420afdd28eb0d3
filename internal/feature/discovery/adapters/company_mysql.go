package adapters

import (
	"context"

	"startup_radar/internal/feature/discovery/domain/entity"
	"startup_radar/internal/feature/discovery/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type companyMySQL struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyMySQL)(nil)

func NewCompanyRepository(db *gorm.DB) *companyMySQL {
	return &companyMySQL{db: db}
}

type CompanyModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:255;not null;index;uniqueIndex:company_name_area,priority:1"`
	Website  string `gorm:"size:255;not null"`
	TechArea string `gorm:"size:100;not null;index;uniqueIndex:company_name_area,priority:2"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

func toModel(e entity.Company) CompanyModel {
	return CompanyModel{
		Name:     e.Name,
		Website:  e.Website,
		TechArea: e.TechArea,
	}
}

// InsertBatch は企業レコードを一括で挿入します。(name, tech_area) が既存の行と
// 重複するレコードはスキップし、実際に挿入された件数を返します。
func (r *companyMySQL) InsertBatch(ctx context.Context, companies []entity.Company) (int, error) {
	if len(companies) == 0 {
		return 0, nil
	}
	ms := make([]CompanyModel, 0, len(companies))
	for _, e := range companies {
		ms = append(ms, toModel(e))
	}

	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "tech_area"}},
		DoNothing: true,
	}).Create(&ms)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// FindByTechArea は指定された技術領域の企業を名前順に返します。
func (r *companyMySQL) FindByTechArea(ctx context.Context, techArea string) ([]entity.Company, error) {
	var rows []CompanyModel
	if err := r.db.WithContext(ctx).
		Where("tech_area = ?", techArea).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Company, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Company{
			Name:     m.Name,
			Website:  m.Website,
			TechArea: m.TechArea,
		})
	}
	return out, nil
}
