package translate

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeTranslator は呼び出し回数を数え、完了順を意図的に乱せるテスト用の翻訳器です。
type fakeTranslator struct {
	calls  atomic.Int64
	mu     sync.Mutex
	failOn string
	delays map[string]time.Duration
}

func (f *fakeTranslator) Translate(ctx context.Context, text, lang string) (string, error) {
	f.calls.Add(1)

	f.mu.Lock()
	delay := f.delays[text]
	failOn := f.failOn
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if failOn != "" && text == failOn {
		return "", errors.New("模擬的な翻訳失敗")
	}
	return fmt.Sprintf("%s:%s", lang, text), nil
}

func TestTranslateAll(t *testing.T) {
	ctx := context.Background()

	t.Run("完了順に関わらず元の順序で再集合されること", func(t *testing.T) {
		// C が最初に、A が最後に完了するよう遅延を仕込みます。
		tr := &fakeTranslator{delays: map[string]time.Duration{
			"A": 60 * time.Millisecond,
			"B": 30 * time.Millisecond,
			"C": 0,
		}}
		b, err := NewBatchTranslator(tr, Options{})
		if err != nil {
			t.Fatal(err)
		}

		got, err := b.TranslateAll(ctx, []string{"A", "B", "C"}, "hi")
		if err != nil {
			t.Fatalf("バッチが失敗しました: %v", err)
		}
		want := []string{"hi:A", "hi:B", "hi:C"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("順序が崩れています。期待値 %v, 実際の値 %v", want, got)
		}
	})

	t.Run("1件でも失敗したらバンドル全体が原文に戻ること", func(t *testing.T) {
		tr := &fakeTranslator{failOn: "B"}
		b, err := NewBatchTranslator(tr, Options{})
		if err != nil {
			t.Fatal(err)
		}

		items := []string{"A", "B", "C"}
		got, err := b.TranslateAll(ctx, items, "bn")
		if err == nil {
			t.Error("失敗バッチでエラーが返りませんでした")
		}
		if !reflect.DeepEqual(got, items) {
			t.Errorf("原文への全体フォールバックが行われていません: %v", got)
		}
	})

	t.Run("対象言語が en のときは呼び出しゼロで入力をそのまま返すこと", func(t *testing.T) {
		tr := &fakeTranslator{}
		b, err := NewBatchTranslator(tr, Options{})
		if err != nil {
			t.Fatal(err)
		}

		items := []string{"Hello", "World"}
		got, err := b.TranslateAll(ctx, items, "en")
		if err != nil {
			t.Fatalf("ショートサーキットでエラーが発生しました: %v", err)
		}
		if !reflect.DeepEqual(got, items) {
			t.Errorf("入力がそのまま返っていません: %v", got)
		}
		if n := tr.calls.Load(); n != 0 {
			t.Errorf("呼び出し回数の期待値 0, 実際の値 %d", n)
		}
	})

	t.Run("空のバッチは何も発行しないこと", func(t *testing.T) {
		tr := &fakeTranslator{}
		b, _ := NewBatchTranslator(tr, Options{})

		if _, err := b.TranslateAll(ctx, nil, "ta"); err != nil {
			t.Fatalf("空バッチでエラーが発生しました: %v", err)
		}
		if n := tr.calls.Load(); n != 0 {
			t.Errorf("呼び出し回数の期待値 0, 実際の値 %d", n)
		}
	})

	t.Run("同一テキストはメモにより1回しか呼ばれないこと", func(t *testing.T) {
		tr := &fakeTranslator{}
		b, _ := NewBatchTranslator(tr, Options{})

		if _, err := b.TranslateAll(ctx, []string{"Same", "Same", "Same"}, "mr"); err != nil {
			t.Fatalf("バッチが失敗しました: %v", err)
		}
		if n := tr.calls.Load(); n != 1 {
			t.Errorf("メモ・重複排除後の呼び出し回数の期待値 1, 実際の値 %d", n)
		}

		// 2回目のバッチもキャッシュから取れること
		got, err := b.TranslateAll(ctx, []string{"Same"}, "mr")
		if err != nil {
			t.Fatal(err)
		}
		if got[0] != "mr:Same" {
			t.Errorf("キャッシュからの結果が不正です: %q", got[0])
		}
		if n := tr.calls.Load(); n != 1 {
			t.Errorf("キャッシュ命中後も呼び出しが増えています: %d", n)
		}
	})

	t.Run("大きなバッチでも全要素が正しい位置で翻訳されること", func(t *testing.T) {
		tr := &fakeTranslator{}
		b, _ := NewBatchTranslator(tr, Options{MaxConcurrency: 3})

		items := make([]string, 40)
		for i := range items {
			items[i] = fmt.Sprintf("item-%02d", i)
		}
		got, err := b.TranslateAll(ctx, items, "gu")
		if err != nil {
			t.Fatalf("バッチが失敗しました: %v", err)
		}
		for i, s := range got {
			want := fmt.Sprintf("gu:item-%02d", i)
			if s != want {
				t.Fatalf("位置 %d の期待値 %q, 実際の値 %q", i, want, s)
			}
		}
	})
}

func TestNewBatchTranslator(t *testing.T) {
	t.Run("translator が nil の場合は拒否されること", func(t *testing.T) {
		if _, err := NewBatchTranslator(nil, Options{}); err == nil {
			t.Error("nil translator がエラーになりませんでした")
		}
	})
}
