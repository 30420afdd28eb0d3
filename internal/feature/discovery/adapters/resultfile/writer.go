// Package resultfile は領域ごとの結果をテキストファイルに書き出すResultWriter実装を提供します。
package resultfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"startup_radar/internal/feature/discovery/domain/entity"
	"startup_radar/internal/feature/discovery/usecase"
)

// DefaultDir は結果ファイルのデフォルト出力先ディレクトリです。
const DefaultDir = "results"

// separator は企業レコード間の区切り行です。
var separator = strings.Repeat("-", 50)

// Writer は結果ディレクトリ配下に領域ごとのテキストファイルを書き出します。
type Writer struct {
	dir string
}

var _ usecase.ResultWriter = (*Writer)(nil)

// NewWriter は指定されたディレクトリに書き出すWriterを生成します。
// dirが空の場合は DefaultDir を使用します。ディレクトリは書き出し時に作成されます。
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	return &Writer{dir: dir}
}

// WriteResult は results_<領域>.txt に企業リストとサマリーを書き出します。
func (w *Writer) WriteResult(techArea string, result *entity.DiscoveryResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Results for %s:\n\n", techArea)
	for _, c := range result.Companies {
		fmt.Fprintf(&b, "Name: %s\n", c.Name)
		fmt.Fprintf(&b, "Website: %s\n", c.Website)
		fmt.Fprintf(&b, "Technology Area: %s\n", c.TechArea)
		b.WriteString(separator + "\n")
	}
	b.WriteString("\nSummary:\n")
	b.WriteString(result.Summary)

	return w.write(fileName("results", techArea), b.String())
}

// WriteError は error_<領域>.txt に失敗内容を書き出します。
func (w *Writer) WriteError(techArea string, runErr error) error {
	content := fmt.Sprintf("Error processing %s: %v", techArea, runErr)
	return w.write(fileName("error", techArea), content)
}

func (w *Writer) write(name, content string) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// fileName は領域名のスペースをアンダースコアに置き換えたファイル名を返します。
func fileName(prefix, techArea string) string {
	return fmt.Sprintf("%s_%s.txt", prefix, strings.ReplaceAll(techArea, " ", "_"))
}
