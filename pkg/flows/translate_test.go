package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

func TestTranslateFlow_Translate(t *testing.T) {
	ctx := context.Background()

	t.Run("翻訳結果の前後の空白と引用符が剥がされること", func(t *testing.T) {
		gw := &fakeTextGateway{response: "\n  \"हाथ से बना फूलदान\"  \n"}
		flow, err := NewTranslateFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}

		got, err := flow.Translate(ctx, "Handmade vase", "hi")
		if err != nil {
			t.Fatalf("翻訳に失敗しました: %v", err)
		}
		if got != "हाथ से बना फूलदान" {
			t.Errorf("整形後の期待値と異なります: %q", got)
		}
	})

	t.Run("空のテキストは呼び出しなしでそのまま返ること", func(t *testing.T) {
		gw := &fakeTextGateway{response: "should not be used"}
		flow, err := NewTranslateFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}

		got, err := flow.Translate(ctx, "   ", "hi")
		if err != nil {
			t.Fatalf("空テキストでエラーになりました: %v", err)
		}
		if got != "   " {
			t.Errorf("原文のまま返ることを期待しましたが: %q", got)
		}
		if gw.callCount() != 0 {
			t.Errorf("空テキストでゲートウェイが呼ばれました: %d 回", gw.callCount())
		}
	})

	t.Run("対象言語が空なら ErrInvalidInput になること", func(t *testing.T) {
		flow, err := NewTranslateFlow(&fakeTextGateway{}, "test-model")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := flow.Translate(ctx, "text", ""); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput を期待しましたが: %v", err)
		}
	})

	t.Run("ゲートウェイの失敗は ErrTranslationFailed に包まれること", func(t *testing.T) {
		gw := &fakeTextGateway{err: errors.New("rate limited")}
		flow, err := NewTranslateFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := flow.Translate(ctx, "text", "ta"); !errors.Is(err, domain.ErrTranslationFailed) {
			t.Errorf("ErrTranslationFailed を期待しましたが: %v", err)
		}
	})

	t.Run("空の応答は ErrTranslationFailed になること", func(t *testing.T) {
		gw := &fakeTextGateway{response: "  \"\"  "}
		flow, err := NewTranslateFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := flow.Translate(ctx, "text", "ta"); !errors.Is(err, domain.ErrTranslationFailed) {
			t.Errorf("ErrTranslationFailed を期待しましたが: %v", err)
		}
	})
}
