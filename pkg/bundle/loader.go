package bundle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

// Translator は画面1枚分のバッチを一括翻訳する契約です。
// 失敗時も原文スライスを返すことを期待します（全か無かのフォールバック）。
type Translator interface {
	TranslateAll(ctx context.Context, items []string, lang string) ([]string, error)
}

// State はバンドルの読み込み状態です。
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailedFallback
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailedFallback:
		return "failed_fallback"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ErrStale は画面が既に別の読み込みへ進んだため結果を破棄したことを示します。
var ErrStale = errors.New("読み込み結果は古くなったため破棄されました")

// Loader は1画面分のバンドルを言語単位で読み込む状態機械です。
// Idle -> Loading -> {Ready | FailedFallback} と遷移し、言語変更による
// 再読み込みは Loading へ再入します。世代番号の一致しない読み込み結果は
// 画面がもう表示していないものなので適用せずに破棄します。
type Loader struct {
	translator Translator

	mu         sync.Mutex
	state      State
	generation uint64
	content    *Content
}

// NewLoader は Loader を初期化します。
func NewLoader(translator Translator) (*Loader, error) {
	if translator == nil {
		return nil, fmt.Errorf("translator は必須です")
	}
	return &Loader{translator: translator, state: StateIdle}, nil
}

// State は現在の状態を返します。
func (ld *Loader) State() State {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.state
}

// Content は最後に適用されたコンテンツを返します。未適用なら nil です。
func (ld *Loader) Content() *Content {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.content
}

// Load はレイアウトを平坦化して一括翻訳し、結果をスロットへ書き戻して適用します。
// 翻訳が失敗しても原文（フォールバック）で描画可能なコンテンツを適用し、
// 状態を FailedFallback にします。呼び出し中に新しい Load が始まった場合、
// この呼び出しの結果は適用されず ErrStale を返します。
func (ld *Loader) Load(ctx context.Context, layout *Layout, lang string) (*Content, error) {
	if layout == nil {
		return nil, fmt.Errorf("%w: layout が nil です", domain.ErrInvalidInput)
	}

	ld.mu.Lock()
	ld.generation++
	gen := ld.generation
	ld.state = StateLoading
	ld.mu.Unlock()

	flat := layout.flatten()
	translated, translateErr := ld.translator.TranslateAll(ctx, flat, lang)

	content, err := layout.unflatten(translated)
	if err != nil {
		// 添字の対応が壊れている場合のみ原文で組み直します。
		slog.WarnContext(ctx, "翻訳結果を破棄して原文で組み直します", "lang", lang, "error", err)
		content, err = layout.unflatten(flat)
		if err != nil {
			return nil, err
		}
		translateErr = domain.ErrTranslationFailed
	}

	content.Language = lang
	content.Fallback = translateErr != nil

	ld.mu.Lock()
	defer ld.mu.Unlock()
	if ld.generation != gen {
		// 画面は既に次の読み込みへ進んでいます。
		return nil, fmt.Errorf("%w (lang: %s)", ErrStale, lang)
	}

	ld.content = content
	if content.Fallback {
		ld.state = StateFailedFallback
		slog.WarnContext(ctx, "翻訳に失敗したため原文のまま適用します", "lang", lang, "error", translateErr)
	} else {
		ld.state = StateReady
	}
	return content, nil
}
