package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/go-craft-kit/pkg/assets"
	"github.com/shouni/go-craft-kit/pkg/domain"
)

func TestCategoryIconFlow_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("既知カテゴリはオーバーライド表から返りゲートウェイは呼ばれないこと", func(t *testing.T) {
		gw := &fakeMediaGateway{media: testMedia("image/png")}
		flow, err := NewCategoryIconFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}

		want, ok := assets.CategoryIconURI(domain.CategoryWoodwork.String())
		if !ok {
			t.Fatal("Woodwork のオーバーライドが見つかりません")
		}

		for i := 0; i < 3; i++ {
			got, err := flow.Run(ctx, domain.CategoryWoodwork.String())
			if err != nil {
				t.Fatalf("%d 回目の取得に失敗しました: %v", i+1, err)
			}
			if got.DataURI != want.DataURI {
				t.Errorf("オーバーライド表の結果と一致しません")
			}
		}

		if gw.callCount() != 0 {
			t.Errorf("既知カテゴリなのにゲートウェイが %d 回呼ばれました", gw.callCount())
		}
	})

	t.Run("未知カテゴリは1回だけ生成されメモに残ること", func(t *testing.T) {
		gw := &fakeMediaGateway{media: testMedia("image/png")}
		flow, err := NewCategoryIconFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}

		first, err := flow.Run(ctx, "Glassware")
		if err != nil {
			t.Fatalf("初回生成に失敗しました: %v", err)
		}
		second, err := flow.Run(ctx, "Glassware")
		if err != nil {
			t.Fatalf("2回目の取得に失敗しました: %v", err)
		}

		if first.DataURI != second.DataURI {
			t.Errorf("メモの結果が初回生成と一致しません")
		}
		if gw.callCount() != 1 {
			t.Errorf("生成回数の期待値 1, 実際の値 %d", gw.callCount())
		}
	})

	t.Run("生成失敗は伝播しメモには残らないこと", func(t *testing.T) {
		gw := &fakeMediaGateway{err: domain.ErrGenerationFailed}
		flow, err := NewCategoryIconFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := flow.Run(ctx, "Glassware"); !errors.Is(err, domain.ErrGenerationFailed) {
			t.Errorf("ErrGenerationFailed を期待しましたが: %v", err)
		}

		// 失敗後に回復したら再生成されること
		gw.mu.Lock()
		gw.err = nil
		gw.mu.Unlock()

		if _, err := flow.Run(ctx, "Glassware"); err != nil {
			t.Errorf("回復後の生成に失敗しました: %v", err)
		}
		if gw.callCount() != 2 {
			t.Errorf("失敗が誤ってメモされています: 呼び出し %d 回", gw.callCount())
		}
	})

	t.Run("空のカテゴリ名は拒否されること", func(t *testing.T) {
		flow, err := NewCategoryIconFlow(&fakeMediaGateway{}, "test-model")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := flow.Run(ctx, "  "); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput を期待しましたが: %v", err)
		}
	})
}
