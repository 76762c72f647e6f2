package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-craft-kit/internal/config"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/flows"
)

// SocialRunner は、SNSコピー生成パイプラインを実行するインターフェースなのだ。
type SocialRunner interface {
	Run(ctx context.Context) (map[domain.Platform]string, error)
}

// DefaultSocialRunner は、商品情報の収集からコピー生成までを担う標準実装なのだ。
type DefaultSocialRunner struct {
	cfg    config.Config
	source *InputSource
	flow   *flows.SocialFlow
}

// NewDefaultSocialRunner は DefaultSocialRunner の新しいインスタンスを生成して返すのだ。
func NewDefaultSocialRunner(cfg config.Config, source *InputSource, flow *flows.SocialFlow) *DefaultSocialRunner {
	return &DefaultSocialRunner{
		cfg:    cfg,
		source: source,
		flow:   flow,
	}
}

// Run は、商品説明の取得、プラットフォームの解決、コピー生成を一気に行うのだ。
func (r *DefaultSocialRunner) Run(ctx context.Context) (map[domain.Platform]string, error) {
	opts := r.cfg.Options

	// 1. 対象プラットフォームを解決するのだ。指定がなければ全プラットフォームなのだ。
	platforms, err := resolvePlatforms(opts.Platforms)
	if err != nil {
		return nil, err
	}

	// 2. 商品説明を URL・ファイル・標準入力のいずれかから取得するのだ
	description, err := r.source.ReadText(ctx)
	if err != nil {
		return nil, fmt.Errorf("商品説明の取得に失敗したのだ: %w", err)
	}

	// 3. まとめて1回の呼び出しでコピーを生成するのだ
	return r.flow.Run(ctx, flows.SocialRequest{
		ProductName:        opts.ProductName,
		ProductDescription: strings.TrimSpace(string(description)),
		ProductStory:       opts.ProductStory,
		Platforms:          platforms,
	})
}

// resolvePlatforms はフラグのプラットフォーム名を検証して解決するのだ。
func resolvePlatforms(names []string) ([]domain.Platform, error) {
	if len(names) == 0 {
		return domain.Platforms(), nil
	}

	platforms := make([]domain.Platform, 0, len(names))
	for _, name := range names {
		p, err := domain.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
