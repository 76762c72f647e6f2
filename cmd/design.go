package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// designCmd は、自由記述と任意の参照画像からデザイン案を生成するサブコマンドなのだ。
var designCmd = &cobra.Command{
	Use:   "design",
	Short: "自由記述からカスタムデザイン案を生成するのだ。",
	Long: `デザインの指示文と、あればスタイル参照画像（--reference-image）を基に、
職人へ依頼するためのデザイン案画像を生成して保存するのだ。`,
	RunE: designCommand,
}

func init() {
	designCmd.Flags().StringVarP(&opts.Prompt, "prompt", "p", "", "デザインの指示文なのだ。")
	designCmd.Flags().StringVarP(&opts.ReferenceImage, "reference-image", "r", "", "スタイル参照画像のパス（ローカル or gs://）なのだ。")
}

func designCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Prompt == "" {
		return fmt.Errorf("デザインの指示文（--prompt）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("カスタムデザインの生成を開始するのだ！",
		"category", opts.Category,
		"has_reference", opts.ReferenceImage != "")
	return pipeline.ExecuteDesign(ctx, cfg)
}
