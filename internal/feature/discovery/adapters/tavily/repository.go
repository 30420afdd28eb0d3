package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"startup_radar/internal/feature/discovery/adapters/tavily/dto"
	"startup_radar/internal/feature/discovery/usecase"
)

// TavilySearch はTavily外部APIからWeb検索コンテキストを取得するSearchRepository実装です。
type TavilySearch struct {
	cfg    Config
	client *http.Client
}

// TavilySearchがSearchRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SearchRepository = (*TavilySearch)(nil)

// NewTavilySearch は指定された設定とHTTPクライアントでTavilySearchの新しいインスタンスを生成します。
func NewTavilySearch(cfg Config, client *http.Client) *TavilySearch {
	return &TavilySearch{cfg: cfg, client: client}
}

// GetSearchContext はTavily APIで検索を実行し、検索結果を
// LLMに渡せるプレーンテキストのコンテキストとして返します。
func (t *TavilySearch) GetSearchContext(ctx context.Context, query string, maxResults int) (string, error) {
	// リクエストボディを組み立て
	body, err := json.Marshal(dto.SearchRequest{
		APIKey:        t.cfg.TavilyAPIKey,
		Query:         query,
		SearchDepth:   t.cfg.SearchDepth,
		MaxResults:    maxResults,
		IncludeAnswer: true,
	})
	if err != nil {
		return "", err
	}

	u := fmt.Sprintf("%s/search", t.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	// リクエストを実行
	res, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("tavily http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var sr dto.SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return "", err
	}
	if len(sr.Results) == 0 && sr.Answer == "" {
		return "", fmt.Errorf("tavily: no results for query %q", query)
	}

	return formatContext(sr), nil
}

// formatContext は検索レスポンスをソース別のテキストブロックに整形します。
func formatContext(sr dto.SearchResponse) string {
	var b strings.Builder
	if sr.Answer != "" {
		b.WriteString("Answer: ")
		b.WriteString(sr.Answer)
		b.WriteString("\n\n")
	}
	for _, r := range sr.Results {
		fmt.Fprintf(&b, "Source: %s\nTitle: %s\n%s\n\n", r.URL, r.Title, r.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}
