package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/config"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
	"github.com/shouni/go-craft-kit/pkg/prompts"
)

// SocialRequest はSNSコピー生成の入力です。
type SocialRequest struct {
	ProductName        string
	ProductDescription string
	ProductStory       string
	// Platforms は対象プラットフォームの集合です。最低1つ必要です。
	Platforms []domain.Platform
}

// SocialFlow は要求された全プラットフォーム分のコピーを「1回の」モデル呼び出しで
// 生成するフローです。プラットフォーム数に関わらず呼び出し回数を1に保つための
// 意図的なバッチ化であり、プラットフォームごとの個別呼び出しに分割してはいけません。
type SocialFlow struct {
	gw    TextGateway
	pb    prompts.PromptBuilder
	model string
}

// NewSocialFlow は SocialFlow を初期化します。
func NewSocialFlow(gw TextGateway, model string) (*SocialFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}

	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	return &SocialFlow{gw: gw, pb: pb, model: resolveModel(model, config.DefaultGeminiModel)}, nil
}

// Run は要求されたプラットフォームそれぞれのコピーを持つマップを返します。
// 返却マップのキー集合は要求されたプラットフォーム集合と正確に一致します。
func (f *SocialFlow) Run(ctx context.Context, req SocialRequest) (map[domain.Platform]string, error) {
	platforms, err := f.validate(req)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.String()
	}

	prompt, err := f.pb.Build(prompts.ModeSocial, prompts.TemplateData{
		Name:        req.ProductName,
		Description: req.ProductDescription,
		Story:       req.ProductStory,
		Platforms:   strings.Join(names, ", "),
	})
	if err != nil {
		return nil, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	raw, err := f.gw.GenerateText(ctx, f.model, []gateway.Part{gateway.TextPart(prompt)})
	if err != nil {
		return nil, fmt.Errorf("SNSコピーの生成に失敗しました: %w", err)
	}

	var payload map[string]string
	if err := gateway.DecodeJSON(raw, &payload); err != nil {
		return nil, err
	}

	// 要求されたプラットフォームのキーだけを取り出します。
	// 欠けたキーは失敗、余分なキーは無視します。
	result := make(map[domain.Platform]string, len(platforms))
	for _, p := range platforms {
		copyText, ok := payload[p.String()]
		if !ok || strings.TrimSpace(copyText) == "" {
			return nil, fmt.Errorf("%w: プラットフォーム %q のコピーが応答にありません", domain.ErrGenerationFailed, p)
		}
		result[p] = strings.TrimSpace(copyText)
	}
	return result, nil
}

// validate は入力検証と重複除去（元の順序を保持）を行います。
func (f *SocialFlow) validate(req SocialRequest) ([]domain.Platform, error) {
	if strings.TrimSpace(req.ProductName) == "" {
		return nil, fmt.Errorf("%w: 商品名が空です", domain.ErrInvalidInput)
	}
	if len(req.Platforms) == 0 {
		return nil, fmt.Errorf("%w: プラットフォームが1つも指定されていません", domain.ErrInvalidInput)
	}

	seen := make(map[domain.Platform]struct{}, len(req.Platforms))
	platforms := make([]domain.Platform, 0, len(req.Platforms))
	for _, p := range req.Platforms {
		if !p.Valid() {
			return nil, fmt.Errorf("%w: 未知のプラットフォームです: %q", domain.ErrInvalidInput, p)
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
