package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/config"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
	"github.com/shouni/go-craft-kit/pkg/prompts"
	"github.com/shouni/go-craft-kit/pkg/translate"
)

// TranslateFlow は単一テキストのベストエフォート翻訳です。
// フロー自身はフォールバックしません。失敗はそのまま呼び出し側へ伝播し、
// フォールバック方針はファンアウト境界（translate パッケージ）が決めます。
type TranslateFlow struct {
	gw    TextGateway
	model string
}

// NewTranslateFlow は TranslateFlow を初期化します。
func NewTranslateFlow(gw TextGateway, model string) (*TranslateFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}
	return &TranslateFlow{gw: gw, model: resolveModel(model, config.DefaultGeminiModel)}, nil
}

// Translate はテキストを対象言語へ翻訳します。空のテキストは呼び出しなしでそのまま返します。
func (f *TranslateFlow) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if strings.TrimSpace(targetLanguage) == "" {
		return "", fmt.Errorf("%w: 対象言語コードが空です", domain.ErrInvalidInput)
	}

	prompt := prompts.BuildTranslationPrompt(text, targetLanguage)
	raw, err := f.gw.GenerateText(ctx, f.model, []gateway.Part{gateway.TextPart(prompt)})
	if err != nil {
		return "", fmt.Errorf("%w (lang: %s): %v", domain.ErrTranslationFailed, targetLanguage, err)
	}

	translated := strings.TrimSpace(raw)
	translated = strings.Trim(translated, `"`)
	if translated == "" {
		return "", fmt.Errorf("%w (lang: %s): 空の翻訳結果", domain.ErrTranslationFailed, targetLanguage)
	}
	return translated, nil
}

var _ translate.Translator = (*TranslateFlow)(nil)
