package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// translateCmd は、入力テキストを行単位で一括翻訳するサブコマンドなのだ。
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "テキストを対象言語へ一括翻訳するのだ。",
	Long: `入力テキスト（--input-file、'-'で標準入力）を行単位のバッチとして並列翻訳するのだ。
1行でも失敗した場合はバッチ全体が原文のまま返る、全か無かの方式なのだよ。`,
	RunE: translateCommand,
}

func translateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Language == "" {
		return fmt.Errorf("対象言語（--lang）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("一括翻訳を開始するのだ！", "lang", opts.Language, "max_concurrency", opts.MaxConcurrency)
	return pipeline.ExecuteTranslate(ctx, cfg, os.Stdout)
}
