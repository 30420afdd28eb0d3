package main

import (
	"context"
	"log"
	"time"

	"startup_radar/internal/feature/discovery/adapters"
	"startup_radar/internal/feature/discovery/adapters/gemini"
	"startup_radar/internal/feature/discovery/adapters/resultfile"
	"startup_radar/internal/feature/discovery/adapters/tavily"
	"startup_radar/internal/feature/discovery/domain/entity"
	"startup_radar/internal/feature/discovery/usecase"
	"startup_radar/internal/platform/cache"
	"startup_radar/internal/platform/db"
	platformhttp "startup_radar/internal/platform/http"
	infraredis "startup_radar/internal/platform/redis"
	"startup_radar/internal/shared/ratelimiter"
)

const (
	// runTimeout はバッチ全体のタイムアウトです。26領域 × 外部APIレイテンシを見込みます。
	runTimeout = 30 * time.Minute
	// searchesPerMinute は検索APIの呼び出し上限です。
	searchesPerMinute = 20
)

func main() {

	gormDB := db.OpenDB()

	// Redis（任意。接続できない場合はキャッシュなしで続行）
	var searchRepo usecase.SearchRepository
	tavilyCfg := tavily.LoadConfig()
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

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	extractor, err := gemini.NewGeminiExtractor(ctx)
	if err != nil {
		log.Fatal("failed to create extractor:", err)
	}

	companyRepo := adapters.NewCompanyRepository(gormDB)
	writer := resultfile.NewWriter("")
	limiter := ratelimiter.NewRateLimiter(searchesPerMinute, time.Minute)
	uc := usecase.NewDiscoveryUsecase(searchRepo, extractor, companyRepo, writer, limiter)

	if err := uc.DiscoverAll(ctx, entity.TechnologyAreas); err != nil {
		log.Fatal(err)
	}
	log.Println("discovery ok")
}
