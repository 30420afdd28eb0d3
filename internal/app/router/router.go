package router

import (
	companieshandler "startup_radar/internal/feature/companies/transport/handler"
	discoveryhandler "startup_radar/internal/feature/discovery/transport/handler"
	"startup_radar/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(discovery *discoveryhandler.DiscoveryHandler,
	companies *companieshandler.CompanyHandler) *gin.Engine {
	r := gin.Default()

	// フロントエンドからの呼び出しを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	v1 := r.Group("/v1")
	{
		// 1つの技術領域についてスタートアップ探索を実行
		v1.POST("/discover", discovery.Discover)
		// 保存済みの企業一覧（tech_areaで絞り込み可）
		v1.GET("/companies", companies.List)
	}

	return r
}
