package builder

import (
	"github.com/shouni/go-craft-kit/internal/config"

	"github.com/shouni/go-craft-kit/pkg/gateway"

	"github.com/shouni/go-ai-client/v2/pkg/ai/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config     *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options    config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です（言語、出力先など）。
	Reader     remoteio.InputReader    // Readerは、商品写真や参照画像の読み込みに使用する入力元です。
	Writer     remoteio.OutputWriter   // Writerは、生成された内容を保存するための出力先です。
	Gateway    *gateway.Gateway        // Gatewayは、生成モデルへの唯一の境界です。
	httpClient httpkit.ClientInterface // httpClient は外部APIとの通信に使う共通クライアント
	aiClient   gemini.GenerativeModel  // aiClient はGeminiの通信に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.ClientInterface,
	aiClient gemini.GenerativeModel,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	gw *gateway.Gateway,
) AppContext {
	return AppContext{
		Config:     cfg,
		Options:    cfg.Options,
		Reader:     reader,
		Writer:     writer,
		Gateway:    gw,
		httpClient: httpClient,
		aiClient:   aiClient,
	}
}
