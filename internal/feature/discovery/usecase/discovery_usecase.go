// Package usecase はdiscoveryフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"startup_radar/internal/feature/discovery/domain/entity"
	"startup_radar/internal/shared/ratelimiter"
)

const (
	// discoveryMaxResults は1回の検索で取得する検索結果の最大件数です。
	discoveryMaxResults = 10
	// searchQueryTemplate は技術領域ごとの検索クエリのテンプレートです。
	searchQueryTemplate = "top emerging Indian startups in %s technology with their official websites"
)

// SearchRepository はWeb検索のコンテキストを取得するリポジトリのインターフェイスです。
// 外部検索APIの実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SearchRepository interface {
	GetSearchContext(ctx context.Context, query string, maxResults int) (string, error)
}

// CompanyExtractor は検索コンテキストから企業レコードを構造化して抽出するインターフェイスです。
type CompanyExtractor interface {
	Extract(ctx context.Context, techArea, searchContext string) (*entity.DiscoveryResult, error)
}

// CompanyRepository は企業レコードを永続化するリポジトリのインターフェイスです。
// InsertBatch は (name, tech_area) が重複する行をスキップし、実際に挿入した件数を返します。
type CompanyRepository interface {
	InsertBatch(ctx context.Context, companies []entity.Company) (int, error)
}

// ResultWriter は領域ごとの結果ファイルを書き出すインターフェイスです。
type ResultWriter interface {
	WriteResult(techArea string, result *entity.DiscoveryResult) error
	WriteError(techArea string, runErr error) error
}

// DiscoveryUsecase は検索・抽出・永続化・ファイル出力を順に実行するユースケースを定義します。
type DiscoveryUsecase struct {
	search      SearchRepository
	extractor   CompanyExtractor
	companies   CompanyRepository
	writer      ResultWriter
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewDiscoveryUsecase は新しい DiscoveryUsecase を作成します。
func NewDiscoveryUsecase(search SearchRepository, extractor CompanyExtractor,
	companies CompanyRepository, writer ResultWriter, rateLimiter ratelimiter.RateLimiterInterface) *DiscoveryUsecase {
	return &DiscoveryUsecase{
		search:      search,
		extractor:   extractor,
		companies:   companies,
		writer:      writer,
		rateLimiter: rateLimiter,
	}
}

// DiscoverOne は1つの技術領域についてスタートアップを探索します。
// 検索コンテキストの取得と抽出に成功した場合、データベースへの保存と
// 結果ファイルの書き出しは片方が失敗してももう片方を必ず試行します。
func (u *DiscoveryUsecase) DiscoverOne(ctx context.Context, techArea string) (*entity.DiscoveryResult, error) {
	if !entity.IsTechnologyArea(techArea) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTechArea, techArea)
	}

	query := fmt.Sprintf(searchQueryTemplate, techArea)
	searchContext, err := u.search.GetSearchContext(ctx, query, discoveryMaxResults)
	if err != nil {
		return nil, fmt.Errorf("search for %q: %w", techArea, err)
	}

	result, err := u.extractor.Extract(ctx, techArea, searchContext)
	if err != nil {
		return nil, fmt.Errorf("extract companies for %q: %w", techArea, err)
	}
	result.Companies = sanitizeCompanies(techArea, result.Companies)

	// 保存と書き出しは独立して試行する
	var persistErr, writeErr error
	if inserted, err := u.companies.InsertBatch(ctx, result.Companies); err != nil {
		persistErr = fmt.Errorf("save companies for %q: %w", techArea, err)
		slog.Error("failed to save companies", "tech_area", techArea, "error", err)
	} else {
		slog.Info("companies saved", "tech_area", techArea, "found", len(result.Companies), "inserted", inserted)
	}
	if err := u.writer.WriteResult(techArea, result); err != nil {
		writeErr = fmt.Errorf("write result file for %q: %w", techArea, err)
		slog.Error("failed to write result file", "tech_area", techArea, "error", err)
	}

	if persistErr != nil || writeErr != nil {
		return result, errors.Join(persistErr, writeErr)
	}
	return result, nil
}

// DiscoverAll は指定された全技術領域を順番に処理します。
// APIのレートリミットを考慮してリクエスト間に待機時間を設け、
// 1つの領域でエラーが発生しても処理を止めずに次の領域を続けます。
func (u *DiscoveryUsecase) DiscoverAll(ctx context.Context, techAreas []string) error {
	for _, area := range techAreas {
		u.rateLimiter.WaitIfNeeded()
		if _, err := u.DiscoverOne(ctx, area); err != nil {
			slog.Error("failed to process tech area", "tech_area", area, "error", err)
			if werr := u.writer.WriteError(area, err); werr != nil {
				slog.Warn("failed to write error file", "tech_area", area, "error", werr)
			}
			continue // 次の領域へ
		}
		slog.Info("tech area completed", "tech_area", area)
	}
	return nil
}

// sanitizeCompanies は抽出結果を正規化します。前後の空白を除去し、
// 名前またはWebサイトが空のレコードと、同一バッチ内で名前が重複するレコードを除外します。
// 技術領域が未設定の場合は探索対象の領域を設定します。
func sanitizeCompanies(techArea string, companies []entity.Company) []entity.Company {
	out := make([]entity.Company, 0, len(companies))
	seen := map[string]struct{}{}
	for _, c := range companies {
		c.Name = strings.TrimSpace(c.Name)
		c.Website = strings.TrimSpace(c.Website)
		c.TechArea = strings.TrimSpace(c.TechArea)
		if c.Name == "" || c.Website == "" {
			continue
		}
		if c.TechArea == "" {
			c.TechArea = techArea
		}
		key := strings.ToLower(c.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
