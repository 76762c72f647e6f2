// Package flows は、ゲートウェイの上に構築された独立・ステートレスな
// コンテンツ生成フロー群です。各フローは宣言された入力から宣言された出力への
// 純粋な操作であり、ゲートウェイが失敗した場合や必須フィールドが空の場合は
// ErrGenerationFailed で失敗します。
package flows

import (
	"context"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
)

// resolveModel は空のモデル名をライブラリ既定値へ解決します。
func resolveModel(model, fallback string) string {
	if strings.TrimSpace(model) == "" {
		return fallback
	}
	return model
}

// TextGateway はテキスト出力の生成契約です。
type TextGateway interface {
	GenerateText(ctx context.Context, model string, parts []gateway.Part) (string, error)
}

// MediaGateway はメディア出力の生成契約です。
type MediaGateway interface {
	GenerateMedia(ctx context.Context, model string, parts []gateway.Part, opts gateway.MediaOptions) (domain.Media, error)
}

// BundleTranslator は複数テキストの一括翻訳契約です。
// 実体は translate.BatchTranslator で、失敗時は原文を返します。
type BundleTranslator interface {
	TranslateAll(ctx context.Context, items []string, targetLanguage string) ([]string, error)
}
