package bundle

import (
	"fmt"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

type slotKind int

const (
	slotLabel slotKind = iota + 1
	slotList
)

// slot は画面内の翻訳対象1区画です。ラベルは1要素、リストは可変長です。
type slot struct {
	kind   slotKind
	key    string
	values []string
}

// Layout は1画面分の翻訳対象テキストを名前付きスロットとして集めたものです。
// 静的ラベルと実体ごとの動的リストを登録順にひとつの平坦なバッチへ並べ、
// 一括翻訳後に添字の記録どおりスロットへ書き戻します。
type Layout struct {
	slots []slot
	keys  map[string]struct{}
}

// NewLayout は空の Layout を返します。
func NewLayout() *Layout {
	return &Layout{keys: make(map[string]struct{})}
}

// AddLabel は静的ラベルを1つ登録します。キーの重複は誤りです。
func (l *Layout) AddLabel(key, text string) error {
	if err := l.claim(key); err != nil {
		return err
	}
	l.slots = append(l.slots, slot{kind: slotLabel, key: key, values: []string{text}})
	return nil
}

// AddList は実体ごとの動的リスト（商品名一覧など）を登録します。
// 空のリストも有効で、対応するスロットは空のまま往復します。
func (l *Layout) AddList(key string, items []string) error {
	if err := l.claim(key); err != nil {
		return err
	}
	values := make([]string, len(items))
	copy(values, items)
	l.slots = append(l.slots, slot{kind: slotList, key: key, values: values})
	return nil
}

func (l *Layout) claim(key string) error {
	if key == "" {
		return fmt.Errorf("%w: スロットキーが空です", domain.ErrInvalidInput)
	}
	if _, dup := l.keys[key]; dup {
		return fmt.Errorf("%w: スロットキーが重複しています: %q", domain.ErrInvalidInput, key)
	}
	l.keys[key] = struct{}{}
	return nil
}

// Len は平坦化後の総要素数を返します。
func (l *Layout) Len() int {
	n := 0
	for _, s := range l.slots {
		n += len(s.values)
	}
	return n
}

// flatten は全スロットを登録順にひとつのバッチへ並べます。
func (l *Layout) flatten() []string {
	flat := make([]string, 0, l.Len())
	for _, s := range l.slots {
		flat = append(flat, s.values...)
	}
	return flat
}

// unflatten は平坦なバッチをスロット構造へ正確に書き戻します。
// 要素数が合わない場合は添字の対応が保証できないため失敗します。
func (l *Layout) unflatten(values []string) (*Content, error) {
	if len(values) != l.Len() {
		return nil, fmt.Errorf("%w: 翻訳結果の要素数が一致しません (expected: %d, actual: %d)",
			domain.ErrTranslationFailed, l.Len(), len(values))
	}

	content := &Content{
		labels: make(map[string]string),
		lists:  make(map[string][]string),
	}

	cursor := 0
	for _, s := range l.slots {
		segment := values[cursor : cursor+len(s.values)]
		cursor += len(s.values)

		switch s.kind {
		case slotLabel:
			content.labels[s.key] = segment[0]
		case slotList:
			list := make([]string, len(segment))
			copy(list, segment)
			content.lists[s.key] = list
		}
	}
	return content, nil
}

// Content は翻訳適用後の1画面分のテキストです。読み取り専用で使います。
type Content struct {
	labels map[string]string
	lists  map[string][]string

	// Language は適用された言語コードです。
	Language string
	// Fallback は翻訳失敗により原文のまま返されたことを示します。
	Fallback bool
}

// Label はラベルスロットの値を返します。
func (c *Content) Label(key string) (string, bool) {
	v, ok := c.labels[key]
	return v, ok
}

// List はリストスロットの値のコピーを返します。
func (c *Content) List(key string) ([]string, bool) {
	v, ok := c.lists[key]
	if !ok {
		return nil, false
	}
	out := make([]string, len(v))
	copy(out, v)
	return out, true
}
