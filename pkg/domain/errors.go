package domain

import "errors"

// エラーの分類です。各フローはこれらを %w でラップして返し、
// 呼び出し側は errors.Is で種別を判定します。
var (
	// ErrGenerationFailed はモデルが利用可能な出力を返さなかったことを示します。
	// （空のメディア、空の構造化ペイロードなど。）フロー内部では再試行しません。
	ErrGenerationFailed = errors.New("生成結果から有効な出力を得られませんでした")

	// ErrTranslationFailed は単一の翻訳呼び出しの失敗を示します。
	// ファンアウト境界で吸収され、原文へのフォールバックに変換されます。
	ErrTranslationFailed = errors.New("翻訳に失敗しました")

	// ErrInvalidInput はフローの前提条件を満たさない入力を示します。
	// ゲートウェイ呼び出しの前に検出されます。
	ErrInvalidInput = errors.New("入力がフローの前提条件を満たしていません")
)
