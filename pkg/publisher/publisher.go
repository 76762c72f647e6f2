package publisher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/domain"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-text-format/pkg/md2htmlrunner"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	MarkdownPath string   // 生成された listing.md のパス
	HTMLPath     string   // 生成された HTML のパス
	MediaPaths   []string // 保存された全メディアのパスリスト
	SocialPaths  []string // 保存されたSNSコピーのパスリスト
}

var fileNameSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// ListingPublisher は生成成果物の永続化とリスティングシートの組み立てを担います。
// 保存先は remoteio 経由でローカルパスと gs:// の両方に対応します。
type ListingPublisher struct {
	writer     remoteio.OutputWriter
	htmlRunner md2htmlrunner.Runner
}

// NewListingPublisher は ListingPublisher を初期化します。
// htmlRunner が nil の場合、HTML 変換はスキップされます。
func NewListingPublisher(writer remoteio.OutputWriter, htmlRunner md2htmlrunner.Runner) (*ListingPublisher, error) {
	if writer == nil {
		return nil, fmt.Errorf("writer は必須です")
	}
	return &ListingPublisher{
		writer:     writer,
		htmlRunner: htmlRunner,
	}, nil
}

// Publish は商品メディアの保存、リスティング Markdown の構築、HTML 変換、
// SNSコピーの保存を一括して実行し、生成されたファイル情報を返却します。
func (p *ListingPublisher) Publish(ctx context.Context, product domain.Product, image domain.Media, social map[domain.Platform]string, opts Options) (PublishResult, error) {
	result := PublishResult{}

	markdown, err := ResolveOutputPath(opts.OutputDir, DefaultListingName)
	if err != nil {
		return result, err
	}
	result.MarkdownPath = markdown

	mediaDir, err := ResolveOutputPath(opts.OutputDir, DefaultMediaDirName)
	if err != nil {
		return result, err
	}

	imagePath := ""
	if image.DataURI != "" {
		imagePath, err = p.SaveMedia(ctx, mediaDir, "product", image)
		if err != nil {
			return result, err
		}
		result.MediaPaths = append(result.MediaPaths, imagePath)
	}

	content := p.buildListing(product, imagePath)
	if err := p.writer.Write(ctx, markdown, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("listingファイルの書き込みに失敗しました: %w", err)
	}

	if p.htmlRunner != nil {
		slog.InfoContext(ctx, "リスティングをHTMLへ変換します", "product", product.Details.Name)
		htmlBuffer, err := p.htmlRunner.Run(ctx, product.Details.Name, []byte(content))
		if err != nil {
			return result, fmt.Errorf("HTMLの変換に失敗しました: %w", err)
		}

		htmlPath := strings.TrimSuffix(markdown, filepath.Ext(markdown)) + ".html"
		if err := p.writer.Write(ctx, htmlPath, htmlBuffer, "text/html; charset=utf-8"); err != nil {
			return result, fmt.Errorf("HTMLファイルの書き込みに失敗しました: %w", err)
		}
		result.HTMLPath = htmlPath
	}

	socialPaths, err := p.SaveSocialCopies(ctx, opts.OutputDir, social)
	if err != nil {
		return result, err
	}
	result.SocialPaths = socialPaths

	return result, nil
}

// SaveMedia は Data URI 形式のメディアをデコードして保存し、保存先パスを返します。
// 拡張子は MIME タイプから決定します。
func (p *ListingPublisher) SaveMedia(ctx context.Context, baseDir, baseName string, media domain.Media) (string, error) {
	mimeType, data, err := domain.ParseDataURI(media.DataURI)
	if err != nil {
		return "", fmt.Errorf("メディアのデコードに失敗しました: %w", err)
	}

	fullPath, err := ResolveOutputPath(baseDir, baseName+extensionFor(mimeType))
	if err != nil {
		return "", fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}

	if err := p.writer.Write(ctx, fullPath, bytes.NewReader(data), mimeType); err != nil {
		return "", fmt.Errorf("メディアの書き込みに失敗しました %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// buildListing はリスティングシートの Markdown 文字列を構築します。
func (p *ListingPublisher) buildListing(product domain.Product, imagePath string) string {
	var sb strings.Builder
	d := product.Details

	sb.WriteString(fmt.Sprintf("# %s\n\n", d.Name))
	if imagePath != "" {
		sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", d.Name, imagePath))
	}

	sb.WriteString(fmt.Sprintf("- Category: %s\n", d.Category))
	sb.WriteString(fmt.Sprintf("- Suggested Price: %s\n\n", d.SuggestedPrice))

	sb.WriteString("## Description\n\n")
	sb.WriteString(strings.TrimSpace(d.Description))
	sb.WriteString("\n\n## Story\n\n")
	sb.WriteString(strings.TrimSpace(d.Story))
	sb.WriteString("\n")

	return sb.String()
}

// SaveSocialCopies はプラットフォームごとのコピーをテキストファイルとして保存します。
// ファイル名が安定するようプラットフォーム順でソートします。
func (p *ListingPublisher) SaveSocialCopies(ctx context.Context, outputDir string, social map[domain.Platform]string) ([]string, error) {
	if len(social) == 0 {
		return nil, nil
	}

	socialDir, err := ResolveOutputPath(outputDir, DefaultSocialDirName)
	if err != nil {
		return nil, err
	}

	platforms := make([]domain.Platform, 0, len(social))
	for platform := range social {
		platforms = append(platforms, platform)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i] < platforms[j] })

	var paths []string
	for _, platform := range platforms {
		name := sanitizeFileName(platform.String()) + ".txt"
		fullPath, err := ResolveOutputPath(socialDir, name)
		if err != nil {
			return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}

		if err := p.writer.Write(ctx, fullPath, strings.NewReader(social[platform]), "text/plain; charset=utf-8"); err != nil {
			return nil, fmt.Errorf("SNSコピーの書き込みに失敗しました %s: %w", fullPath, err)
		}
		paths = append(paths, fullPath)
	}
	return paths, nil
}

// sanitizeFileName は "Twitter(X)" のような表示名をファイル名に使える形へ変換します。
func sanitizeFileName(name string) string {
	s := fileNameSanitizer.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
