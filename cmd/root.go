package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-craft-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有する実行時パラメータなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.ImageFile, "image-file", "f", "", "商品写真のパス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ProductURL, "product-url", "u", "", "商品紹介ページのURLなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.InputFile, "input-file", "", "入力テキストのパス（'-'で標準入力なのだ）。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "保存先ディレクトリ（ローカル or gs://...）なのだ。")

	// --- 生成パラメータ ---
	rootCmd.PersistentFlags().StringVarP(&opts.Language, "lang", "l", config.DefaultLanguage, "出力の対象言語コード（ISO 639-1）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Category, "category", "c", "", "工芸カテゴリ名なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.ProductName, "name", "n", "", "商品名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ProductStory, "story", "", "商品の背景ストーリーなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.SellerID, "seller-id", "artisan-local", "出品者IDなのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "テキスト生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "画像生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.SpeechModel, "speech-model", config.DefaultSpeechModel, "音声合成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")

	// --- 翻訳ファンアウト固有設定 ---
	rootCmd.PersistentFlags().IntVar(&opts.MaxConcurrency, "max-concurrency", config.DefaultMaxConcurrency, "翻訳ファンアウトの同時実行上限なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.RateInterval, "rate-interval", 0, "翻訳呼び出しの間隔（0で制限なし）なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// loadConfig は環境設定をロードし、コマンドラインの指定を反映するのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.GeminiImageModel = opts.ImageModel
	cfg.GeminiSpeechModel = opts.SpeechModel
	cfg.Options = opts
	return cfg
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"craft-kit-go",
		addAppFlags,
		preRunAppE,
		listingCmd,
		detailsCmd,
		imageCmd,
		designCmd,
		iconCmd,
		roleCmd,
		translateCmd,
		socialCmd,
		speechCmd,
		reviewCmd,
	)
}
