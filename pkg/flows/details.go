package flows

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/config"
	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
	"github.com/shouni/go-craft-kit/pkg/prompts"
)

// DetailsRequest は商品詳細抽出の入力です。
type DetailsRequest struct {
	// ImageDataURI は商品写真の Data URI です。必須です。
	ImageDataURI string
	// TargetLanguage は出力の対象言語コードです。"en" なら翻訳は行いません。
	TargetLanguage string
}

// detailsPayload はモデルの JSON 応答をそのまま受けるための中間構造です。
// カテゴリは検証前なので文字列のまま受けます。
type detailsPayload struct {
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	ProductStory       string `json:"product_story"`
	PredictedCategory  string `json:"predicted_category"`
	SuggestedPrice     string `json:"suggested_price"`
}

// DetailsFlow は商品画像から商品詳細を抽出するフローです。
// 生成は常にモデルの作業言語（英語）で行い、対象言語が英語以外の場合のみ
// 自由記述3フィールド（名前・説明・ストーリー）を並列翻訳します。
// カテゴリは後段の完全一致照合に使うため決して翻訳しません。
type DetailsFlow struct {
	gw         TextGateway
	translator BundleTranslator
	pb         prompts.PromptBuilder
	model      string
}

// NewDetailsFlow は DetailsFlow を初期化します。
func NewDetailsFlow(gw TextGateway, translator BundleTranslator, model string) (*DetailsFlow, error) {
	if gw == nil {
		return nil, fmt.Errorf("gateway は必須です")
	}
	if translator == nil {
		return nil, fmt.Errorf("translator は必須です")
	}

	pb, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("プロンプトビルダーの初期化に失敗しました: %w", err)
	}

	return &DetailsFlow{
		gw:         gw,
		translator: translator,
		pb:         pb,
		model:      resolveModel(model, config.DefaultGeminiModel),
	}, nil
}

// Run は商品写真を解析して ProductDetails を返します。
func (f *DetailsFlow) Run(ctx context.Context, req DetailsRequest) (domain.ProductDetails, error) {
	if strings.TrimSpace(req.ImageDataURI) == "" {
		return domain.ProductDetails{}, fmt.Errorf("%w: 商品画像が指定されていません", domain.ErrInvalidInput)
	}

	imagePart, err := gateway.MediaPart(req.ImageDataURI)
	if err != nil {
		return domain.ProductDetails{}, err
	}

	prompt, err := f.pb.Build(prompts.ModeDetails, prompts.TemplateData{
		Categories: strings.Join(domain.CategoryNames(), ", "),
	})
	if err != nil {
		return domain.ProductDetails{}, fmt.Errorf("プロンプト生成に失敗: %w", err)
	}

	raw, err := f.gw.GenerateText(ctx, f.model, []gateway.Part{
		gateway.TextPart(prompt),
		imagePart,
	})
	if err != nil {
		return domain.ProductDetails{}, fmt.Errorf("商品詳細の生成に失敗しました: %w", err)
	}

	var payload detailsPayload
	if err := gateway.DecodeJSON(raw, &payload); err != nil {
		return domain.ProductDetails{}, err
	}

	details, err := f.validate(payload)
	if err != nil {
		return domain.ProductDetails{}, err
	}

	// 自由記述フィールドのみ、対象言語へ位置固定でまとめて翻訳します。
	// ファンアウトは全か無かで失敗時に原文（英語）を返すため、ここでの
	// 翻訳失敗は英語のままの優雅な劣化になります。
	details = f.localize(ctx, details, req.TargetLanguage)

	return details, nil
}

// validate は必須フィールドの非空とカテゴリ・価格の形式を検証します。
// スキーマ上の必須フィールドの欠落は既定値ではなく失敗として扱います。
func (f *DetailsFlow) validate(p detailsPayload) (domain.ProductDetails, error) {
	required := map[string]string{
		"product_name":        p.ProductName,
		"product_description": p.ProductDescription,
		"product_story":       p.ProductStory,
		"suggested_price":     p.SuggestedPrice,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return domain.ProductDetails{}, fmt.Errorf("%w: 必須フィールド %s が空です", domain.ErrGenerationFailed, field)
		}
	}

	category, err := domain.ParseCategory(p.PredictedCategory)
	if err != nil {
		return domain.ProductDetails{}, fmt.Errorf("%w: 分類結果が正準カテゴリではありません: %q",
			domain.ErrGenerationFailed, p.PredictedCategory)
	}

	price := strings.TrimSpace(p.SuggestedPrice)
	if _, err := strconv.ParseFloat(price, 64); err != nil {
		return domain.ProductDetails{}, fmt.Errorf("%w: suggested_price が数値文字列ではありません: %q",
			domain.ErrGenerationFailed, p.SuggestedPrice)
	}

	return domain.ProductDetails{
		Name:           strings.TrimSpace(p.ProductName),
		Description:    strings.TrimSpace(p.ProductDescription),
		Story:          strings.TrimSpace(p.ProductStory),
		Category:       category,
		SuggestedPrice: price,
	}, nil
}

// localize は名前・説明・ストーリーの3要素を1バッチで翻訳し、
// 添字どおりに書き戻します。カテゴリと価格には触れません。
func (f *DetailsFlow) localize(ctx context.Context, details domain.ProductDetails, lang string) domain.ProductDetails {
	items := []string{details.Name, details.Description, details.Story}
	translated, err := f.translator.TranslateAll(ctx, items, lang)
	if err != nil {
		slog.WarnContext(ctx, "商品詳細の翻訳に失敗したため英語のまま返します", "lang", lang, "error", err)
	}
	if len(translated) != len(items) {
		slog.WarnContext(ctx, "翻訳結果の要素数が一致しないため英語のまま返します",
			"expected", len(items), "actual", len(translated))
		return details
	}

	details.Name = translated[0]
	details.Description = translated[1]
	details.Story = translated[2]
	return details
}
