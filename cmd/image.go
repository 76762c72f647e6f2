package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// imageCmd は、商品名とカテゴリから商品イメージ画像を生成するサブコマンドなのだ。
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "商品名とカテゴリから商品イメージを生成するのだ。",
	Long: `商品名と工芸カテゴリを基に、正方形の商品イメージ画像を生成して保存するのだ。
写真を用意できない出品の下書きに使うと便利なのだよ。`,
	RunE: imageCommand,
}

func imageCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ProductName == "" || opts.Category == "" {
		return fmt.Errorf("商品名（--name）とカテゴリ（--category）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("商品イメージの生成を開始するのだ！",
		"name", opts.ProductName,
		"category", opts.Category,
		"image_model", cfg.GeminiImageModel)
	return pipeline.ExecuteImage(ctx, cfg)
}
