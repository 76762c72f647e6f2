package flows

import (
	"context"
	"fmt"

	"github.com/shouni/go-craft-kit/pkg/config"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
	"github.com/shouni/go-craft-kit/pkg/prompts"
)

// DesignRequest はカスタムデザイン生成の入力です。
type DesignRequest struct {
	// Prompt は利用者の自由記述によるデザインの指示文です。必須です。
	Prompt string
	// Category はデザイン対象の工芸カテゴリ名です。
	Category string
	// ReferenceImageURI はスタイル参照に使う任意の画像 Data URI です。
	ReferenceImageURI string
}

// CustomDesignFlow は自由記述と任意の参照画像からデザイン案を生成するフローです。
// 参照画像がある場合、プロンプトパートは [基本指示, 画像, 補足指示] の順で
// 送信されます。この順序がスタイル参照をモデルへ伝える契約です。
type CustomDesignFlow struct {
	gw    MediaGateway
	model string
}

// NewCustomDesignFlow は CustomDesignFlow を初期化します。
func NewCustomDesignFlow(gw MediaGateway, model string) (*CustomDesignFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}
	return &CustomDesignFlow{gw: gw, model: resolveModel(model, config.DefaultImageModel)}, nil
}

// Run はデザイン案の画像を生成します。
func (f *CustomDesignFlow) Run(ctx context.Context, req DesignRequest) (domain.Media, error) {
	parts, err := prompts.BuildDesignParts(req.Prompt, req.Category, req.ReferenceImageURI)
	if err != nil {
		return domain.Media{}, err
	}

	media, err := f.gw.GenerateMedia(ctx, f.model, parts, gateway.MediaOptions{
		AspectRatio: prompts.SquareAspectRatio,
	})
	if err != nil {
		return domain.Media{}, fmt.Errorf("カスタムデザインの生成に失敗しました: %w", err)
	}
	return media, nil
}
