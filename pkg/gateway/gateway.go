package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/domain"

	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"google.golang.org/genai"
)

// MediaCore は参照画像パートの準備と生成レスポンスの解析を担う契約です。
// 実体は gemini-image-kit の GeminiImageCore です。
type MediaCore interface {
	PrepareImagePart(ctx context.Context, url string) *genai.Part
	ParseToResponse(resp *genai.GenerateContentResponse, seed int64) (*imagekit.ImageOutput, error)
}

// MediaOptions はメディア生成呼び出しのオプションです。
type MediaOptions struct {
	// AspectRatio は "1:1" のような出力アスペクト比の指定です。空なら指定なし。
	AspectRatio string
	// ReferenceURLs はリモート参照画像（ローカルパス・GCS・HTTP）の一覧です。
	// Data URI で渡せないリファレンスはこちらで指定します。
	ReferenceURLs []string
}

// Gateway は生成モデルへの唯一の境界です。
// 構造化テキスト生成とメディア生成の2種類の契約を提供し、
// どちらも1回の試行のみで再試行は行いません（再試行方針は呼び出し側の責務）。
type Gateway struct {
	aiClient gemini.GenerativeModel
	core     MediaCore
}

// New は Gateway を初期化します。core はメディア生成を使わない場合 nil を許容します。
func New(aiClient gemini.GenerativeModel, core MediaCore) (*Gateway, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient は必須です")
	}
	return &Gateway{aiClient: aiClient, core: core}, nil
}

// GenerateText はプロンプトパート列からテキスト出力を得ます。
// 空の応答は ErrGenerationFailed として扱います。
func (g *Gateway) GenerateText(ctx context.Context, model string, parts []Part) (string, error) {
	// テキスト1パートだけの呼び出しは軽量な文字列APIに直行します。
	if len(parts) == 1 && parts[0].Kind == PartKindText {
		resp, err := g.aiClient.GenerateContent(ctx, parts[0].Text, model)
		if err != nil {
			return "", fmt.Errorf("テキスト生成の呼び出しに失敗しました: %w", err)
		}
		return g.requireText(resp.Text, model)
	}

	genaiParts, err := buildGenaiParts(parts)
	if err != nil {
		return "", err
	}

	resp, err := g.aiClient.GenerateWithParts(ctx, model, genaiParts, gemini.ImageOptions{})
	if err != nil {
		return "", fmt.Errorf("マルチモーダル生成の呼び出しに失敗しました: %w", err)
	}
	return g.requireText(resp.Text(), model)
}

// GenerateMedia はプロンプトパート列から画像・音声などのメディア出力を得ます。
// モデルがメディアを返さなかった場合は ErrGenerationFailed を返します。
func (g *Gateway) GenerateMedia(ctx context.Context, model string, parts []Part, opts MediaOptions) (domain.Media, error) {
	if g.core == nil {
		return domain.Media{}, fmt.Errorf("メディア生成には MediaCore の注入が必要です")
	}

	genaiParts, err := buildGenaiParts(parts)
	if err != nil {
		return domain.Media{}, err
	}

	// リモート参照画像はダウンロードとキャッシュを Core に委譲します。
	// 読み込みに失敗しても生成自体は続行し、警告ログを残します。
	for i, url := range opts.ReferenceURLs {
		if url == "" {
			continue
		}
		imgPart := g.core.PrepareImagePart(ctx, url)
		if imgPart == nil {
			slog.WarnContext(ctx, "参照画像の読み込みに失敗しました", "index", i, "url", url)
			continue
		}
		genaiParts = append(genaiParts, imgPart)
	}

	resp, err := g.aiClient.GenerateWithParts(ctx, model, genaiParts, gemini.ImageOptions{
		AspectRatio: opts.AspectRatio,
	})
	if err != nil {
		return domain.Media{}, fmt.Errorf("メディア生成の呼び出しに失敗しました: %w", err)
	}

	out, err := g.core.ParseToResponse(resp, 0)
	if err != nil {
		return domain.Media{}, fmt.Errorf("%w: レスポンスの解析に失敗しました: %v", domain.ErrGenerationFailed, err)
	}
	if out == nil || len(out.Data) == 0 {
		return domain.Media{}, fmt.Errorf("%w: モデルがメディアを返しませんでした (model: %s)", domain.ErrGenerationFailed, model)
	}

	return domain.NewMedia(out.MimeType, out.Data), nil
}

// requireText は空のテキスト応答を失敗に変換します。
func (g *Gateway) requireText(text, model string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: モデルがテキストを返しませんでした (model: %s)", domain.ErrGenerationFailed, model)
	}
	return text, nil
}
