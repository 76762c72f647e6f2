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

// SpeechFlow はテキストを読み上げ音声（Data URI）へ変換する単発のフローです。
type SpeechFlow struct {
	gw    MediaGateway
	model string
}

// NewSpeechFlow は SpeechFlow を初期化します。
func NewSpeechFlow(gw MediaGateway, model string) (*SpeechFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}
	return &SpeechFlow{gw: gw, model: resolveModel(model, config.DefaultSpeechModel)}, nil
}

// Run はテキストの読み上げ音声を生成します。
func (f *SpeechFlow) Run(ctx context.Context, text string) (domain.Media, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Media{}, fmt.Errorf("%w: 読み上げるテキストが空です", domain.ErrInvalidInput)
	}

	media, err := f.gw.GenerateMedia(ctx, f.model,
		[]gateway.Part{gateway.TextPart(prompts.BuildSpeechPrompt(text))},
		gateway.MediaOptions{},
	)
	if err != nil {
		return domain.Media{}, fmt.Errorf("音声合成に失敗しました: %w", err)
	}
	return media, nil
}
