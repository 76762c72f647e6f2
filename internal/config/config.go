package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel          = "gemini-3-flash-preview"
	DefaultImageModel     = "gemini-3-pro-image-preview"
	DefaultSpeechModel    = "gemini-3-flash-preview-tts"
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultLanguage       = "en"
	DefaultMaxConcurrency = 8
	DefaultOutputDir      = "output/listing" // パブリッシャーで使用するデフォルト保存先なのだ
)

// Config はアプリケーション全体の環境設定（APIキーやモデル設定）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey      string
	GeminiModel       string
	GeminiImageModel  string
	GeminiSpeechModel string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey:      envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:       envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		GeminiImageModel:  envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		GeminiSpeechModel: envutil.GetEnv("SPEECH_GEMINI_MODEL", DefaultSpeechModel),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	ImageFile  string // --image-file: 商品写真のパス（ローカル or gs://）
	ProductURL string // --product-url: 商品紹介ページのURL
	InputFile  string // --input-file: テキスト入力のパス（'-'で標準入力）

	// 生成結果の出力設定
	OutputDir string // --output-dir

	// 生成パラメータ
	Language       string   // --lang: 出力の対象言語コード
	Platforms      []string // --platforms: SNSコピーの対象プラットフォーム
	Category       string   // --category
	Role           string   // --role
	Prompt         string   // --prompt: カスタムデザインの指示文
	ReferenceImage string   // --reference-image: スタイル参照画像のパス
	SellerID       string   // --seller-id
	ProductName    string   // --name: 商品名
	ProductStory   string   // --story: 商品の背景ストーリー

	// AIレビュー関連
	Likes    int    // --likes
	Shares   int    // --shares
	Revenue  string // --revenue
	Audience string // --audience

	// AI挙動設定
	AIModel     string // --model: テキスト生成用のGeminiモデル
	ImageModel  string // --image-model: 画像生成用のGeminiモデル
	SpeechModel string // --speech-model: 音声合成用のGeminiモデル

	// 実行制御
	HTTPTimeout    time.Duration // --http-timeout
	RateInterval   time.Duration // --rate-interval: 翻訳ファンアウトの呼び出し間隔
	MaxConcurrency int           // --max-concurrency: 翻訳ファンアウトの同時実行上限
}
