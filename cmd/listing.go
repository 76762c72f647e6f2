package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// listingCmd は、商品写真1枚からリスティング一式を生成する統合コマンドなのだ。
var listingCmd = &cobra.Command{
	Use:   "listing",
	Short: "商品写真からリスティング一式を生成するのだ。",
	Long: `商品写真を解析して商品詳細を抽出し、商品イメージとSNSコピーを生成して、
リスティングシート（Markdown/HTML）として保存する統合パイプラインなのだ。`,
	RunE: listingCommand,
}

func listingCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ImageFile == "" {
		return fmt.Errorf("商品写真（--image-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("リスティング生成パイプラインを起動するのだ！",
		"image", opts.ImageFile,
		"lang", opts.Language,
		"text_model", cfg.GeminiModel,
		"image_model", cfg.GeminiImageModel,
		"output", opts.OutputDir)

	if err := pipeline.ExecuteListing(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
