package gateway

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// ExtractJSON はモデルのテキスト応答から JSON 部分を取り出します。
// コードフェンス優先、次に最外の中括弧、最後に全文をそのまま返します。
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	matches := jsonBlockRegex.FindStringSubmatch(raw)
	if len(matches) > 1 {
		return matches[1]
	}

	firstBracket := strings.Index(raw, "{")
	lastBracket := strings.LastIndex(raw, "}")
	if firstBracket != -1 && lastBracket != -1 && lastBracket > firstBracket {
		return raw[firstBracket : lastBracket+1]
	}

	return raw
}

// DecodeJSON は応答テキストから JSON を抽出して v へデコードします。
// デコードできない応答は ErrGenerationFailed として扱います。
func DecodeJSON(raw string, v any) error {
	rawJSON := ExtractJSON(raw)
	if err := json.Unmarshal([]byte(rawJSON), v); err != nil {
		return fmt.Errorf("%w: 応答に含まれる JSON の解析に失敗しました (応答抜粋: %q): %v",
			domain.ErrGenerationFailed, truncateString(raw, 200), err)
	}
	return nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
