package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// detailsCmd は、商品写真から商品詳細だけを抽出するサブコマンドなのだ。
var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "商品写真から商品詳細をJSONで抽出するのだ。",
	Long: `商品写真を解析して、商品名・説明・ストーリー・カテゴリ・推奨価格を抽出するのだ。
--lang を指定すると自由記述フィールドだけが対象言語へ翻訳されるのだよ。`,
	RunE: detailsCommand,
}

func detailsCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ImageFile == "" {
		return fmt.Errorf("商品写真（--image-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("商品詳細の抽出を開始するのだ！", "image", opts.ImageFile, "lang", opts.Language)
	return pipeline.ExecuteDetails(ctx, cfg, os.Stdout)
}
