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
)

// RoleImageFlow はロール（Buyer, Sponsor など）の説明イラストを生成するフローです。
// "Artisan" だけは同梱アセットへ直結し、その他の既知ロールはロール名の
// 完全一致で固定プロンプトを引き当てます。未知のロール名は呼び出し側の誤りです。
type RoleImageFlow struct {
	gw    MediaGateway
	model string
}

// NewRoleImageFlow は RoleImageFlow を初期化します。
func NewRoleImageFlow(gw MediaGateway, model string) (*RoleImageFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}
	return &RoleImageFlow{gw: gw, model: resolveModel(model, config.DefaultImageModel)}, nil
}

// Run はロール名に対応するイラストを返します。
func (f *RoleImageFlow) Run(ctx context.Context, roleName string) (domain.Media, error) {
	if strings.TrimSpace(roleName) == "" {
		return domain.Media{}, fmt.Errorf("%w: ロール名が空です", domain.ErrInvalidInput)
	}

	if roleName == assets.RoleArtisan {
		return assets.ArtisanIllustration, nil
	}

	rolePrompt, ok := assets.RolePrompt(roleName)
	if !ok {
		return domain.Media{}, fmt.Errorf("%w: 未知のロール名です: %q", domain.ErrInvalidInput, roleName)
	}

	media, err := f.gw.GenerateMedia(ctx, f.model,
		[]gateway.Part{gateway.TextPart(prompts.BuildRoleImagePrompt(rolePrompt))},
		gateway.MediaOptions{AspectRatio: prompts.SquareAspectRatio},
	)
	if err != nil {
		return domain.Media{}, fmt.Errorf("ロールイラストの生成に失敗しました (role: %s): %w", roleName, err)
	}
	return media, nil
}
