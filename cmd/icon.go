package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// iconCmd は、カテゴリアイコンを取得または生成するサブコマンドなのだ。
var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "カテゴリアイコンを取得または生成するのだ。",
	Long: `既知の工芸カテゴリは同梱のアイコンを即座に返し、未知のカテゴリ名の場合のみ
AIでアイコンを新規生成して保存するのだ。`,
	RunE: iconCommand,
}

func iconCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Category == "" {
		return fmt.Errorf("カテゴリ名（--category）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("カテゴリアイコンの取得を開始するのだ！", "category", opts.Category)
	return pipeline.ExecuteIcon(ctx, cfg)
}
