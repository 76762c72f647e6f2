package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// socialCmd は、SNS各プラットフォーム向けのコピーを生成するサブコマンドなのだ。
var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "SNS各プラットフォーム向けのコピーを生成するのだ。",
	Long: `商品情報（--product-url で商品ページから抽出、または --input-file の説明文）から、
要求された全プラットフォーム分のコピーを1回のAI呼び出しで生成するのだ。`,
	RunE: socialCommand,
}

func init() {
	socialCmd.Flags().StringSliceVarP(&opts.Platforms, "platforms", "p", nil, "対象プラットフォーム（省略時は全プラットフォームなのだ）。")
}

func socialCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ProductName == "" {
		return fmt.Errorf("商品名（--name）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("SNSコピーの生成を開始するのだ！",
		"name", opts.ProductName,
		"platforms", opts.Platforms,
		"source_url", opts.ProductURL)
	return pipeline.ExecuteSocial(ctx, cfg, os.Stdout)
}
