package handler

import (
	"context"
	"errors"
	"net/http"

	"startup_radar/internal/feature/companies/domain/entity"
	"startup_radar/internal/feature/companies/transport/http/dto"
	"startup_radar/internal/feature/companies/usecase"

	"github.com/gin-gonic/gin"
)

// CompanyUsecase は企業カタログに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CompanyUsecase interface {
	ListCompanies(ctx context.Context, techArea string) ([]entity.Company, error)
}

// CompanyHandler は企業カタログに関するHTTPリクエストを処理します。
type CompanyHandler struct {
	uc CompanyUsecase
}

// NewCompanyHandler は新しい CompanyHandler を作成します。
func NewCompanyHandler(uc CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List は保存済みの企業一覧を取得するAPIです。
// tech_areaクエリパラメータで技術領域に絞り込めます。
// 未知の技術領域が指定された場合は400 Bad Requestを返します。
func (h *CompanyHandler) List(c *gin.Context) {
	techArea := c.Query("tech_area")
	companies, err := h.uc.ListCompanies(c.Request.Context(), techArea)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownTechArea) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.CompanyItem, 0, len(companies))
	for _, cp := range companies {
		out = append(out, dto.CompanyItem{Name: cp.Name, Website: cp.Website, TechArea: cp.TechArea})
	}
	c.JSON(http.StatusOK, out)
}
