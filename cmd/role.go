package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// roleCmd は、ロールの説明イラストを取得または生成するサブコマンドなのだ。
var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "ロールの説明イラストを取得または生成するのだ。",
	Long: `オンボーディング画面向けのロール（Artisan, Buyer, Sponsor）の説明イラストを返すのだ。
Artisan は同梱アセット直結、その他の既知ロールはAI生成なのだよ。`,
	RunE: roleCommand,
}

func init() {
	roleCmd.Flags().StringVarP(&opts.Role, "role", "r", "", "ロール名（Artisan, Buyer, Sponsor）なのだ。")
}

func roleCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.Role == "" {
		return fmt.Errorf("ロール名（--role）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("ロールイラストの取得を開始するのだ！", "role", opts.Role)
	return pipeline.ExecuteRole(ctx, cfg)
}
