// Package handler はdiscoveryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"startup_radar/internal/feature/discovery/domain/entity"
	"startup_radar/internal/feature/discovery/transport/http/dto"
	"startup_radar/internal/feature/discovery/usecase"
)

// techAreaHeader は探索対象の技術領域を指定するリクエストヘッダーです。
const techAreaHeader = "Technology-Area"

// DiscoveryUsecase はスタートアップ探索のユースケースインターフェースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DiscoveryUsecase interface {
	DiscoverOne(ctx context.Context, techArea string) (*entity.DiscoveryResult, error)
}

// DiscoveryHandler はスタートアップ探索のHTTPリクエストを処理します。
type DiscoveryHandler struct {
	uc DiscoveryUsecase
}

// NewDiscoveryHandler はDiscoveryHandlerの新しいインスタンスを生成します。
func NewDiscoveryHandler(uc DiscoveryUsecase) *DiscoveryHandler {
	return &DiscoveryHandler{uc: uc}
}

// Discover は1つの技術領域についてスタートアップ探索を実行します。
//
// エンドポイント: POST /v1/discover
// ヘッダー: Technology-Area（必須、技術領域リストのいずれか）
func (h *DiscoveryHandler) Discover(c *gin.Context) {
	techArea := c.GetHeader(techAreaHeader)
	if techArea == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Technology-Area header is missing"})
		return
	}

	result, err := h.uc.DiscoverOne(c.Request.Context(), techArea)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownTechArea) {
			slog.Warn("discovery requested for unknown tech area", "tech_area", techArea, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("discovery failed", "tech_area", techArea, "error", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	out := dto.DiscoveryResponse{
		Companies: make([]dto.CompanyResponse, 0, len(result.Companies)),
		Summary:   result.Summary,
	}
	for _, cp := range result.Companies {
		out.Companies = append(out.Companies, dto.CompanyResponse{
			Name:     cp.Name,
			Website:  cp.Website,
			TechArea: cp.TechArea,
		})
	}
	c.JSON(http.StatusOK, out)
}
