package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shouni/go-craft-kit/internal/config"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-web-exact/v2/pkg/extract"
)

// InputSource は、URL・ファイル・標準入力のいずれかからソーステキストを取得するのだ。
type InputSource struct {
	cfg       config.Config
	extractor *extract.Extractor   // Webサイトから本文を抽出するエクストラクター
	reader    remoteio.InputReader // ローカルやGCSのファイルを読み込むリーダー
}

// NewInputSource は InputSource の新しいインスタンスを生成して返すのだ。
func NewInputSource(cfg config.Config, ext *extract.Extractor, r remoteio.InputReader) *InputSource {
	return &InputSource{
		cfg:       cfg,
		extractor: ext,
		reader:    r,
	}
}

// ReadText は、URLまたはパスの設定に基づいて適切な方法でソーステキストを取得するのだ。
func (s *InputSource) ReadText(ctx context.Context) ([]byte, error) {
	// URLが指定されている場合は、Webスクレイピングを実行するのだ
	if s.cfg.Options.ProductURL != "" {
		if s.extractor == nil {
			return nil, fmt.Errorf("URL入力にはエクストラクターが必要なのだ")
		}
		text, _, err := s.extractor.FetchAndExtractText(ctx, s.cfg.Options.ProductURL)
		return []byte(text), err
	}

	// '-' は標準入力から読むのだ
	if s.cfg.Options.InputFile == "-" {
		return io.ReadAll(os.Stdin)
	}

	if s.cfg.Options.InputFile == "" {
		return nil, fmt.Errorf("入力ソース（--product-url または --input-file）を指定してほしいのだ")
	}

	// ファイルパスが指定されている場合は、リーダーを使って開くのだ（GCS等も対応！）
	rc, err := s.reader.Open(ctx, s.cfg.Options.InputFile)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
