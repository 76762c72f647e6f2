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

// ReviewRequest はAIパフォーマンスレビュー生成の入力です。
type ReviewRequest struct {
	ProductDescription string
	ProductStory       string
	Metrics            domain.EngagementMetrics
	TargetAudience     string
	// TargetLanguage はレビューの出力言語コードです。空なら "en" です。
	TargetLanguage string
}

// ReviewFlow は実績指標に基づくパフォーマンスレビューを生成する単発のフローです。
type ReviewFlow struct {
	gw    TextGateway
	pb    prompts.PromptBuilder
	model string
}

// NewReviewFlow は ReviewFlow を初期化します。
func NewReviewFlow(gw TextGateway, model string) (*ReviewFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}

	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	return &ReviewFlow{gw: gw, pb: pb, model: resolveModel(model, config.DefaultGeminiModel)}, nil
}

// Run はレビュー本文を返します。
func (f *ReviewFlow) Run(ctx context.Context, req ReviewRequest) (string, error) {
	if strings.TrimSpace(req.ProductDescription) == "" {
		return "", fmt.Errorf("%w: 商品説明が空です", domain.ErrInvalidInput)
	}

	lang := req.TargetLanguage
	if lang == "" {
		lang = "en"
	}

	prompt, err := f.pb.Build(prompts.ModeReview, prompts.TemplateData{
		Description: req.ProductDescription,
		Story:       req.ProductStory,
		Likes:       req.Metrics.Likes,
		Shares:      req.Metrics.Shares,
		Revenue:     req.Metrics.Revenue,
		Audience:    req.TargetAudience,
		Language:    lang,
	})
	if err != nil {
		return "", fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	raw, err := f.gw.GenerateText(ctx, f.model, []gateway.Part{gateway.TextPart(prompt)})
	if err != nil {
		return "", fmt.Errorf("レビューの生成に失敗しました: %w", err)
	}

	review := strings.TrimSpace(raw)
	if review == "" {
		return "", fmt.Errorf("%w: 空のレビューが返されました", domain.ErrGenerationFailed)
	}
	return review, nil
}
