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

// ProductImageFlow は商品名とカテゴリから商品イメージ画像を生成するフローです。
type ProductImageFlow struct {
	gw    MediaGateway
	model string
}

// NewProductImageFlow は ProductImageFlow を初期化します。
func NewProductImageFlow(gw MediaGateway, model string) (*ProductImageFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}
	return &ProductImageFlow{gw: gw, model: resolveModel(model, config.DefaultImageModel)}, nil
}

// Run は正方形の商品イメージを生成します。モデルがメディアを返さない場合は
// ErrGenerationFailed で失敗し、部分的な結果は返しません。
func (f *ProductImageFlow) Run(ctx context.Context, productName, category string) (domain.Media, error) {
	if strings.TrimSpace(productName) == "" {
		return domain.Media{}, fmt.Errorf("%w: 商品名が空です", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(category) == "" {
		return domain.Media{}, fmt.Errorf("%w: カテゴリが空です", domain.ErrInvalidInput)
	}

	prompt := prompts.BuildProductImagePrompt(productName, category)
	media, err := f.gw.GenerateMedia(ctx, f.model,
		[]gateway.Part{gateway.TextPart(prompt)},
		gateway.MediaOptions{AspectRatio: prompts.SquareAspectRatio},
	)
	if err != nil {
		return domain.Media{}, fmt.Errorf("商品イメージの生成に失敗しました (product: %s): %w", productName, err)
	}
	return media, nil
}
