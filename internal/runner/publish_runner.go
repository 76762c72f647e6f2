package runner

import (
	"context"

	"github.com/shouni/go-craft-kit/internal/config"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/publisher"
)

// PublisherRunner は、生成成果物を保存するためのインターフェースなのだ。
type PublisherRunner interface {
	Run(ctx context.Context, product domain.Product, image domain.Media, social map[domain.Platform]string) (publisher.PublishResult, error)
}

// DefaultPublisherRunner は pkg/publisher を利用した標準実装です。
type DefaultPublisherRunner struct {
	opts config.GenerateOptions
	pub  *publisher.ListingPublisher
}

// NewDefaultPublisherRunner は DefaultPublisherRunner の新しいインスタンスを生成して返すのだ。
func NewDefaultPublisherRunner(opts config.GenerateOptions, pub *publisher.ListingPublisher) *DefaultPublisherRunner {
	return &DefaultPublisherRunner{
		opts: opts,
		pub:  pub,
	}
}

// Run はリスティングシートとメディアとSNSコピーを出力ディレクトリへ保存するのだ。
func (r *DefaultPublisherRunner) Run(ctx context.Context, product domain.Product, image domain.Media, social map[domain.Platform]string) (publisher.PublishResult, error) {
	outputDir := r.opts.OutputDir
	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}

	return r.pub.Publish(ctx, product, image, social, publisher.Options{
		OutputDir: outputDir,
	})
}

var _ PublisherRunner = (*DefaultPublisherRunner)(nil)
