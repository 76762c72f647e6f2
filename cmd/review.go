package cmd

import (
	"log/slog"
	"os"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// reviewCmd は、実績指標に基づくAIパフォーマンスレビューを生成するサブコマンドなのだ。
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "実績指標からAIパフォーマンスレビューを生成するのだ。",
	Long: `商品説明（--input-file）といいね数・シェア数・売上（--likes, --shares, --revenue）を基に、
出品者向けのパフォーマンスレビューを生成するのだ。`,
	RunE: reviewCommand,
}

func init() {
	reviewCmd.Flags().IntVar(&opts.Likes, "likes", 0, "いいね数なのだ。")
	reviewCmd.Flags().IntVar(&opts.Shares, "shares", 0, "シェア数なのだ。")
	reviewCmd.Flags().StringVar(&opts.Revenue, "revenue", "0", "累計売上の数値文字列なのだ。")
	reviewCmd.Flags().StringVar(&opts.Audience, "audience", "", "想定読者層なのだ。")
}

func reviewCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := loadConfig()

	slog.Info("パフォーマンスレビューの生成を開始するのだ！",
		"likes", opts.Likes,
		"shares", opts.Shares,
		"lang", opts.Language)
	return pipeline.ExecuteReview(ctx, cfg, os.Stdout)
}
