package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/assets"
	"github.com/shouni/go-craft-kit/pkg/config"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
	"github.com/shouni/go-craft-kit/pkg/prompts"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// CategoryIconFlow はカテゴリアイコンを返すフローです。
// 固定タクソノミーのカテゴリは静的オーバーライド表から即座に返し、
// ゲートウェイは未知のカテゴリ名に対してのみ呼び出されます。
// 生成済みアイコンはメモし、同時要求は singleflight で1回にまとめます。
type CategoryIconFlow struct {
	gw        MediaGateway
	model     string
	generated *cache.Cache
	inflight  singleflight.Group
}

// NewCategoryIconFlow は CategoryIconFlow を初期化します。
func NewCategoryIconFlow(gw MediaGateway, model string) (*CategoryIconFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}
	return &CategoryIconFlow{
		gw:        gw,
		model:     resolveModel(model, config.DefaultImageModel),
		generated: cache.New(cache.NoExpiration, 0),
	}, nil
}

// Run はカテゴリ名に対応するアイコンを返します。
// オーバーライド表の照合はカテゴリ名の完全一致です。
func (f *CategoryIconFlow) Run(ctx context.Context, categoryName string) (domain.Media, error) {
	if strings.TrimSpace(categoryName) == "" {
		return domain.Media{}, fmt.Errorf("%w: カテゴリ名が空です", domain.ErrInvalidInput)
	}

	// 1. 静的オーバーライド表（ゲートウェイ呼び出しなし）
	if media, ok := assets.CategoryIconURI(categoryName); ok {
		return media, nil
	}

	// 2. 生成済みメモ
	if cached, ok := f.generated.Get(categoryName); ok {
		if media, ok := cached.(domain.Media); ok {
			return media, nil
		}
	}

	// 3. 未知のカテゴリのみ生成します。同一カテゴリの同時要求は1呼び出しに束ねます。
	val, err, _ := f.inflight.Do(categoryName, func() (interface{}, error) {
		if cached, ok := f.generated.Get(categoryName); ok {
			return cached, nil
		}

		prompt := prompts.BuildCategoryIconPrompt(categoryName)
		media, genErr := f.gw.GenerateMedia(ctx, f.model,
			[]gateway.Part{gateway.TextPart(prompt)},
			gateway.MediaOptions{AspectRatio: prompts.SquareAspectRatio},
		)
		if genErr != nil {
			return nil, fmt.Errorf("カテゴリアイコンの生成に失敗しました (category: %s): %w", categoryName, genErr)
		}

		f.generated.Set(categoryName, media, cache.NoExpiration)
		return media, nil
	})
	if err != nil {
		return domain.Media{}, err
	}

	media, ok := val.(domain.Media)
	if !ok {
		return domain.Media{}, fmt.Errorf("unexpected return type from singleflight: %T", val)
	}
	return media, nil
}
