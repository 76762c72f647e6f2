package cmd

import (
	"log/slog"

	"github.com/shouni/go-craft-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// speechCmd は、テキストの読み上げ音声を生成するサブコマンドなのだ。
var speechCmd = &cobra.Command{
	Use:   "speech",
	Short: "テキストの読み上げ音声を生成するのだ。",
	Long: `入力テキスト（--input-file、'-'で標準入力）を読み上げ音声へ変換して保存するのだ。
商品ストーリーの音声化などに使えるのだよ。`,
	RunE: speechCommand,
}

func speechCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := loadConfig()

	slog.Info("音声合成を開始するのだ！", "speech_model", cfg.GeminiSpeechModel)
	return pipeline.ExecuteSpeech(ctx, cfg)
}
