// Package entity はdiscoveryフィーチャーのドメインモデルを定義します。
package entity

// Company は検出されたスタートアップ企業を表します。
type Company struct {
	Name     string // 企業名
	Website  string // 公式サイトのURL
	TechArea string // 主要な技術領域
}

// DiscoveryResult は1つの技術領域に対するエージェントの応答を表します。
type DiscoveryResult struct {
	Companies []Company // 検出された企業のリスト
	Summary   string    // 検索結果の簡単なサマリー
}
