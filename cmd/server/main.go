package main

import (
	"context"
	"log"
	"time"

	"startup_radar/internal/app/router"
	companiesadapters "startup_radar/internal/feature/companies/adapters"
	companieshandler "startup_radar/internal/feature/companies/transport/handler"
	companiesusecase "startup_radar/internal/feature/companies/usecase"
	discoveryadapters "startup_radar/internal/feature/discovery/adapters"
	"startup_radar/internal/feature/discovery/adapters/gemini"
	"startup_radar/internal/feature/discovery/adapters/resultfile"
	"startup_radar/internal/feature/discovery/adapters/tavily"
	discoveryhandler "startup_radar/internal/feature/discovery/transport/handler"
	discoveryusecase "startup_radar/internal/feature/discovery/usecase"
	"startup_radar/internal/platform/cache"
	infradb "startup_radar/internal/platform/db"
	platformhttp "startup_radar/internal/platform/http"
	infraredis "startup_radar/internal/platform/redis"
	"startup_radar/internal/shared/ratelimiter"
)

func main() {
	// db
	gormDB := infradb.OpenDB()

	// 検索リポジトリ（Redisキャッシュは任意）
	tavilyCfg := tavily.LoadConfig()
	var searchRepo discoveryusecase.SearchRepository
	searchRepo = tavily.NewTavilySearch(tavilyCfg, platformhttp.NewHTTPClient(tavilyCfg.Timeout))
	if rdb, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without search cache.")
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
		searchRepo = cache.NewCachingSearchRepository(rdb, cache.TimeUntilNext6AM(), searchRepo, "search")
	}

	extractor, err := gemini.NewGeminiExtractor(context.Background())
	if err != nil {
		log.Fatal("failed to create extractor:", err)
	}

	// Repository
	companyRepo := discoveryadapters.NewCompanyRepository(gormDB)
	catalogRepo := companiesadapters.NewCompanyRepository(gormDB)
	writer := resultfile.NewWriter("")

	// Usecase
	limiter := ratelimiter.NewRateLimiter(20, time.Minute)
	discoveryUC := discoveryusecase.NewDiscoveryUsecase(searchRepo, extractor, companyRepo, writer, limiter)
	companyUC := companiesusecase.NewCompanyUsecase(catalogRepo)

	// Handler
	discoveryH := discoveryhandler.NewDiscoveryHandler(discoveryUC)
	companyH := companieshandler.NewCompanyHandler(companyUC)

	// ルータ生成
	r := router.NewRouter(discoveryH, companyH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
