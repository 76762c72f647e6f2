package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel    = "gemini-3-flash-preview"
	DefaultImageModel     = "gemini-3-pro-image-preview"
	DefaultSpeechModel    = "gemini-3-flash-preview-tts"
	DefaultSourceLanguage = "en"
	DefaultMaxConcurrency = 8
	DefaultRateInterval   = 0 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// Config は Go Craft Kit の各フローを動作させるための基本設定です。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel string // テキスト・構造化生成用
	ImageModel  string // 画像生成用
	SpeechModel string // 音声合成用

	// --- Google AI (Gemini API) Settings ---
	GeminiAPIKey string

	// --- Translation Settings ---
	SourceLanguage string        // 生成の作業言語（既定 "en"）
	MaxConcurrency int           // 翻訳ファンアウトの同時実行上限
	RateInterval   time.Duration // 0 ならレート制限なし

	// --- Timeout & Retries ---
	RequestTimeout time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		ImageModel:     DefaultImageModel,
		SpeechModel:    DefaultSpeechModel,
		SourceLanguage: DefaultSourceLanguage,
		MaxConcurrency: DefaultMaxConcurrency,
		RateInterval:   DefaultRateInterval,
		RequestTimeout: DefaultRequestTimeout,
	}
}
