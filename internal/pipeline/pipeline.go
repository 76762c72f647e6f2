package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/shouni/go-craft-kit/internal/builder"
	"github.com/shouni/go-craft-kit/internal/config"
	"github.com/shouni/go-craft-kit/internal/runner"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/flows"
	"github.com/shouni/go-craft-kit/pkg/store"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

// imageMimeTypes は商品写真の拡張子と MIME タイプの対応なのだ。
var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// ExecuteListing は、商品写真1枚からリスティング一式（詳細・商品イメージ・
// SNSコピー・保存）までを一気に実行する統合パイプラインなのだ。
func ExecuteListing(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	// --- Phase 1: 商品詳細の抽出 ---
	details, err := runDetailsStep(ctx, appCtx)
	if err != nil {
		return err
	}

	// --- Phase 2: 商品イメージの生成 ---
	slog.InfoContext(ctx, "Phase 2: 商品イメージを生成するのだ...", "product", details.Name)
	imageFlow, err := flows.NewProductImageFlow(appCtx.Gateway, cfg.GeminiImageModel)
	if err != nil {
		return err
	}
	image, err := imageFlow.Run(ctx, details.Name, details.Category.String())
	if err != nil {
		return fmt.Errorf("商品イメージの生成に失敗したのだ: %w", err)
	}

	// --- Phase 3: SNSコピーの生成 ---
	slog.InfoContext(ctx, "Phase 3: SNSコピーを生成するのだ...")
	socialFlow, err := flows.NewSocialFlow(appCtx.Gateway, cfg.GeminiModel)
	if err != nil {
		return err
	}
	social, err := socialFlow.Run(ctx, flows.SocialRequest{
		ProductName:        details.Name,
		ProductDescription: details.Description,
		ProductStory:       details.Story,
		Platforms:          domain.Platforms(),
	})
	if err != nil {
		return fmt.Errorf("SNSコピーの生成に失敗したのだ: %w", err)
	}

	// --- Phase 4: ストア登録とパブリッシュ ---
	product := domain.Product{
		ID:       productID(cfg.Options.SellerID, details.Name),
		SellerID: cfg.Options.SellerID,
		Details:  details,
		ImageURI: image.DataURI,
	}

	memory := store.NewMemory()
	if err := memory.AddProduct(product); err != nil {
		return fmt.Errorf("商品のストア登録に失敗したのだ: %w", err)
	}
	registered, err := memory.GetProduct(product.ID)
	if err != nil {
		return err
	}

	pub, err := builder.BuildListingPublisher(appCtx)
	if err != nil {
		return err
	}
	publishRunner := runner.NewDefaultPublisherRunner(appCtx.Options, pub)
	result, err := publishRunner.Run(ctx, registered, image, social)
	if err != nil {
		return fmt.Errorf("公開処理に失敗したのだ: %w", err)
	}

	slog.InfoContext(ctx, "リスティング一式が完成したのだ！",
		"markdown", result.MarkdownPath,
		"html", result.HTMLPath,
		"media", len(result.MediaPaths),
		"social", len(result.SocialPaths))
	return nil
}

// ExecuteDetails は商品写真から商品詳細を抽出して JSON で標準出力へ書き出すのだ。
func ExecuteDetails(ctx context.Context, cfg *config.Config, out io.Writer) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	details, err := runDetailsStep(ctx, appCtx)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return fmt.Errorf("結果のエンコードに失敗したのだ: %w", err)
	}
	fmt.Fprintln(out, string(encoded))
	return nil
}

// ExecuteImage は商品名とカテゴリから商品イメージを生成して保存するのだ。
func ExecuteImage(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	flow, err := flows.NewProductImageFlow(appCtx.Gateway, cfg.GeminiImageModel)
	if err != nil {
		return err
	}

	media, err := flow.Run(ctx, cfg.Options.ProductName, cfg.Options.Category)
	if err != nil {
		return fmt.Errorf("商品イメージの生成に失敗したのだ: %w", err)
	}
	return saveMedia(ctx, appCtx, "product", media)
}

// ExecuteDesign は自由記述と任意の参照画像からデザイン案を生成して保存するのだ。
func ExecuteDesign(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	refURI := ""
	if cfg.Options.ReferenceImage != "" {
		refURI, err = readImageAsDataURI(ctx, appCtx, cfg.Options.ReferenceImage)
		if err != nil {
			return fmt.Errorf("参照画像の読み込みに失敗したのだ: %w", err)
		}
	}

	flow, err := flows.NewCustomDesignFlow(appCtx.Gateway, cfg.GeminiImageModel)
	if err != nil {
		return err
	}

	media, err := flow.Run(ctx, flows.DesignRequest{
		Prompt:            cfg.Options.Prompt,
		Category:          cfg.Options.Category,
		ReferenceImageURI: refURI,
	})
	if err != nil {
		return fmt.Errorf("カスタムデザインの生成に失敗したのだ: %w", err)
	}
	return saveMedia(ctx, appCtx, "design", media)
}

// ExecuteIcon はカテゴリアイコンを取得または生成して保存するのだ。
func ExecuteIcon(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	flow, err := flows.NewCategoryIconFlow(appCtx.Gateway, cfg.GeminiImageModel)
	if err != nil {
		return err
	}

	media, err := flow.Run(ctx, cfg.Options.Category)
	if err != nil {
		return fmt.Errorf("カテゴリアイコンの取得に失敗したのだ: %w", err)
	}
	return saveMedia(ctx, appCtx, "icon", media)
}

// ExecuteRole はロールの説明イラストを取得または生成して保存するのだ。
func ExecuteRole(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	flow, err := flows.NewRoleImageFlow(appCtx.Gateway, cfg.GeminiImageModel)
	if err != nil {
		return err
	}

	media, err := flow.Run(ctx, cfg.Options.Role)
	if err != nil {
		return fmt.Errorf("ロールイラストの取得に失敗したのだ: %w", err)
	}
	return saveMedia(ctx, appCtx, "role", media)
}

// ExecuteTranslate は入力テキストを行単位のバッチとして一括翻訳するのだ。
func ExecuteTranslate(ctx context.Context, cfg *config.Config, out io.Writer) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := newInputSource(appCtx)
	if err != nil {
		return err
	}
	text, err := source.ReadText(ctx)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSpace(string(text)), "\n")
	translator, err := builder.BuildBatchTranslator(appCtx)
	if err != nil {
		return err
	}

	translated, err := translator.TranslateAll(ctx, lines, cfg.Options.Language)
	if err != nil {
		slog.WarnContext(ctx, "翻訳に失敗したため原文を出力するのだ", "error", err)
	}
	for _, line := range translated {
		fmt.Fprintln(out, line)
	}
	return nil
}

// ExecuteSocial はSNSコピーを生成し、標準出力と出力ディレクトリへ書き出すのだ。
func ExecuteSocial(ctx context.Context, cfg *config.Config, out io.Writer) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := newInputSource(appCtx)
	if err != nil {
		return err
	}
	socialFlow, err := flows.NewSocialFlow(appCtx.Gateway, cfg.GeminiModel)
	if err != nil {
		return err
	}

	socialRunner := runner.NewDefaultSocialRunner(*cfg, source, socialFlow)
	social, err := socialRunner.Run(ctx)
	if err != nil {
		return fmt.Errorf("SNSコピーの生成に失敗したのだ: %w", err)
	}

	for platform, copyText := range social {
		fmt.Fprintf(out, "--- %s ---\n%s\n\n", platform, copyText)
	}

	if cfg.Options.OutputDir != "" {
		pub, err := builder.BuildListingPublisher(appCtx)
		if err != nil {
			return err
		}
		paths, err := pub.SaveSocialCopies(ctx, cfg.Options.OutputDir, social)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "SNSコピーを保存したのだ", "files", len(paths))
	}
	return nil
}

// ExecuteSpeech は入力テキストの読み上げ音声を生成して保存するのだ。
func ExecuteSpeech(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := newInputSource(appCtx)
	if err != nil {
		return err
	}
	text, err := source.ReadText(ctx)
	if err != nil {
		return err
	}

	flow, err := flows.NewSpeechFlow(appCtx.Gateway, cfg.GeminiSpeechModel)
	if err != nil {
		return err
	}

	media, err := flow.Run(ctx, string(text))
	if err != nil {
		return fmt.Errorf("音声合成に失敗したのだ: %w", err)
	}
	return saveMedia(ctx, appCtx, "speech", media)
}

// ExecuteReview は実績指標に基づくAIパフォーマンスレビューを生成して出力するのだ。
func ExecuteReview(ctx context.Context, cfg *config.Config, out io.Writer) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := newInputSource(appCtx)
	if err != nil {
		return err
	}
	description, err := source.ReadText(ctx)
	if err != nil {
		return err
	}

	flow, err := flows.NewReviewFlow(appCtx.Gateway, cfg.GeminiModel)
	if err != nil {
		return err
	}

	review, err := flow.Run(ctx, flows.ReviewRequest{
		ProductDescription: strings.TrimSpace(string(description)),
		ProductStory:       cfg.Options.ProductStory,
		Metrics: domain.EngagementMetrics{
			Likes:   cfg.Options.Likes,
			Shares:  cfg.Options.Shares,
			Revenue: cfg.Options.Revenue,
		},
		TargetAudience: cfg.Options.Audience,
		TargetLanguage: cfg.Options.Language,
	})
	if err != nil {
		return fmt.Errorf("レビューの生成に失敗したのだ: %w", err)
	}

	fmt.Fprintln(out, review)
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	httpClient := httpkit.New(cfg.Options.HTTPTimeout)
	aiClient, err := builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	gw, err := builder.InitializeGateway(httpClient, aiClient)
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer, gw)
	return &appCtx, nil
}

// newInputSource は URL 入力に備えたエクストラクター込みの InputSource を構築するのだ。
func newInputSource(appCtx *builder.AppContext) (*runner.InputSource, error) {
	extractor, err := builder.BuildExtractor(appCtx)
	if err != nil {
		return nil, err
	}
	return runner.NewInputSource(*appCtx.Config, extractor, appCtx.Reader), nil
}

// runDetailsStep は商品写真を読み込み、詳細抽出フローを実行するのだ。
func runDetailsStep(ctx context.Context, appCtx *builder.AppContext) (domain.ProductDetails, error) {
	opts := appCtx.Options
	slog.InfoContext(ctx, "Phase 1: 商品詳細を抽出するのだ...", "image", opts.ImageFile, "lang", opts.Language)

	imageURI, err := readImageAsDataURI(ctx, appCtx, opts.ImageFile)
	if err != nil {
		return domain.ProductDetails{}, fmt.Errorf("商品写真の読み込みに失敗したのだ: %w", err)
	}

	translator, err := builder.BuildBatchTranslator(appCtx)
	if err != nil {
		return domain.ProductDetails{}, err
	}

	flow, err := flows.NewDetailsFlow(appCtx.Gateway, translator, appCtx.Config.GeminiModel)
	if err != nil {
		return domain.ProductDetails{}, err
	}

	details, err := flow.Run(ctx, flows.DetailsRequest{
		ImageDataURI:   imageURI,
		TargetLanguage: opts.Language,
	})
	if err != nil {
		return domain.ProductDetails{}, fmt.Errorf("商品詳細の抽出に失敗したのだ: %w", err)
	}
	return details, nil
}

// readImageAsDataURI は画像ファイル（ローカル or gs://）を Data URI へ変換するのだ。
func readImageAsDataURI(ctx context.Context, appCtx *builder.AppContext, imagePath string) (string, error) {
	if imagePath == "" {
		return "", fmt.Errorf("画像ファイル（--image-file）を指定してほしいのだ")
	}

	mimeType, ok := imageMimeTypes[strings.ToLower(path.Ext(imagePath))]
	if !ok {
		return "", fmt.Errorf("サポートされていない画像形式なのだ: %s", imagePath)
	}

	rc, err := appCtx.Reader.Open(ctx, imagePath)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return domain.EncodeDataURI(mimeType, data), nil
}

// saveMedia は生成メディアを出力ディレクトリへ保存するのだ。
func saveMedia(ctx context.Context, appCtx *builder.AppContext, baseName string, media domain.Media) error {
	pub, err := builder.BuildListingPublisher(appCtx)
	if err != nil {
		return err
	}

	outputDir := appCtx.Options.OutputDir
	if outputDir == "" {
		outputDir = config.DefaultOutputDir
	}

	savedPath, err := pub.SaveMedia(ctx, outputDir, baseName, media)
	if err != nil {
		return fmt.Errorf("メディアの保存に失敗したのだ: %w", err)
	}

	slog.InfoContext(ctx, "メディアを保存したのだ！", "path", savedPath, "mime", media.MimeType)
	return nil
}

// productID は出品者と商品名から安定した商品IDを導出するのだ。
func productID(sellerID, name string) string {
	h := sha256.New()
	h.Write([]byte(sellerID + "/" + name))
	return "prod-" + hex.EncodeToString(h.Sum(nil))[:10]
}
