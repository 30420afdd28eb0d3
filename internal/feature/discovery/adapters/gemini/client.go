// Package gemini はGoogle Gemini APIを使用した企業抽出クライアントを提供します。
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"startup_radar/internal/feature/discovery/domain/entity"
	"startup_radar/internal/feature/discovery/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"

	// systemPrompt は抽出エージェントへの指示です。検証済みのインドの新興
	// スタートアップのみを、領域ごとに5〜7社まで抽出させます。
	systemPrompt = `You are an expert at researching Indian technology startups.
Your task is to:
1. Read the provided web search context carefully
2. Extract only verified Indian startups (not established companies)
3. Limit extraction to 5-7 most promising startups per technology area
4. Include official website URLs from the search results

Focus on emerging and startup companies only, not established enterprises.
Return a brief summary of the findings alongside the company list.`
)

// resultSchema は抽出結果のJSONスキーマです。
// 構造化出力を強制することでレスポンスのパースを安定させます。
var resultSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"companies": {
			Type:        genai.TypeArray,
			Description: "List of companies with their details",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":      {Type: genai.TypeString, Description: "Name of the company"},
					"website":   {Type: genai.TypeString, Description: "Official website URL of the company"},
					"tech_area": {Type: genai.TypeString, Description: "Primary technology area of the company"},
				},
				Required: []string{"name", "website"},
			},
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "Brief summary of the search results",
		},
	},
	Required: []string{"companies", "summary"},
}

// GeminiExtractor はGoogle Gemini APIを使用して検索コンテキストから企業レコードを抽出します。
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// GeminiExtractorがCompanyExtractorを実装していることをコンパイル時に検証します。
var _ usecase.CompanyExtractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor はADCを使用してGeminiExtractorの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION
// または GEMINI_API_KEY が必要です。
func NewGeminiExtractor(ctx context.Context) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiExtractor{client: client, model: DefaultModel}, nil
}

// Extract は検索コンテキストから構造化された企業リストとサマリーを生成します。
func (g *GeminiExtractor) Extract(ctx context.Context, techArea, searchContext string) (*entity.DiscoveryResult, error) {
	prompt := fmt.Sprintf(
		"Technology area: %s\n\nWeb search context:\n%s\n\nExtract the emerging Indian startups in this technology area.",
		techArea, searchContext,
	)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    resultSchema,
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini API request failed: %w", err)
	}

	return decodeResult([]byte(resp.Text()))
}

// discoveryResultJSON はGeminiのJSON出力の形を表します。
type discoveryResultJSON struct {
	Companies []struct {
		Name     string `json:"name"`
		Website  string `json:"website"`
		TechArea string `json:"tech_area"`
	} `json:"companies"`
	Summary string `json:"summary"`
}

// decodeResult はモデルのJSON出力をドメインエンティティに変換します。
func decodeResult(data []byte) (*entity.DiscoveryResult, error) {
	var out discoveryResultJSON
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	result := &entity.DiscoveryResult{
		Companies: make([]entity.Company, 0, len(out.Companies)),
		Summary:   out.Summary,
	}
	for _, c := range out.Companies {
		result.Companies = append(result.Companies, entity.Company{
			Name:     c.Name,
			Website:  c.Website,
			TechArea: c.TechArea,
		})
	}
	return result, nil
}
