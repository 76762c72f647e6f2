package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/go-craft-kit/pkg/flows"
	"github.com/shouni/go-craft-kit/pkg/gateway"
	"github.com/shouni/go-craft-kit/pkg/publisher"
	"github.com/shouni/go-craft-kit/pkg/translate"

	"github.com/patrickmn/go-cache"
	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-text-format/pkg/builder"
	"github.com/shouni/go-web-exact/v2/pkg/extract"
	"google.golang.org/genai"
)

const (
	defaultCacheExpiration = 30 * time.Minute
	cacheCleanupInterval   = 1 * time.Hour
	defaultImageCacheTTL   = 1 * time.Hour
)

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// InitializeGateway は画像処理コアを組み込んだ Gateway を初期化します。
func InitializeGateway(httpClient httpkit.ClientInterface, aiClient gemini.GenerativeModel) (*gateway.Gateway, error) {
	imgCache := cache.New(defaultCacheExpiration, cacheCleanupInterval)

	core, err := imagekit.NewGeminiImageCore(
		httpClient,
		imgCache,
		defaultImageCacheTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiImageCoreの初期化に失敗したのだ: %w", err)
	}

	gw, err := gateway.New(aiClient, core)
	if err != nil {
		return nil, fmt.Errorf("Gatewayの初期化に失敗したのだ: %w", err)
	}
	return gw, nil
}

// BuildBatchTranslator は翻訳フローをファンアウト境界でくるんで返すのだ。
func BuildBatchTranslator(appCtx *AppContext) (*translate.BatchTranslator, error) {
	tr, err := flows.NewTranslateFlow(appCtx.Gateway, appCtx.Config.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("翻訳フローの構築に失敗したのだ: %w", err)
	}

	return translate.NewBatchTranslator(tr, translate.Options{
		MaxConcurrency: appCtx.Options.MaxConcurrency,
		Interval:       appCtx.Options.RateInterval,
	})
}

// BuildListingPublisher はコンテンツ保存と変換を行うパブリッシャーを構築します。
func BuildListingPublisher(appCtx *AppContext) (*publisher.ListingPublisher, error) {
	htmlCfg := builder.BuilderConfig{
		EnableHardWraps: true,
	}
	md2htmlBuilder, err := builder.NewBuilder(htmlCfg)
	if err != nil {
		return nil, fmt.Errorf("md2htmlBuilderの初期化に失敗しました: %w", err)
	}
	md2htmlRunner, err := md2htmlBuilder.BuildRunner()
	if err != nil {
		return nil, fmt.Errorf("md2htmlrunnerの初期化に失敗しました: %w", err)
	}

	return publisher.NewListingPublisher(appCtx.Writer, md2htmlRunner)
}

// BuildExtractor は商品紹介ページの本文抽出器を構築するのだ。
func BuildExtractor(appCtx *AppContext) (*extract.Extractor, error) {
	extractor, err := extract.NewExtractor(appCtx.httpClient)
	if err != nil {
		return nil, fmt.Errorf("Extractorの初期化に失敗したのだ: %w", err)
	}
	return extractor, nil
}
