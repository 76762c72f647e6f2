package bundle

import (
	"errors"
	"testing"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

func buildScreenLayout(t *testing.T) *Layout {
	t.Helper()
	l := NewLayout()
	if err := l.AddLabel("title", "My Products"); err != nil {
		t.Fatal(err)
	}
	if err := l.AddList("product_names", []string{"Vase", "Shawl", "Ring"}); err != nil {
		t.Fatal(err)
	}
	if err := l.AddLabel("cta", "Add a product"); err != nil {
		t.Fatal(err)
	}
	if err := l.AddList("order_statuses", []string{"Pending", "Shipped"}); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLayout_FlattenUnflatten(t *testing.T) {
	t.Run("平坦化は登録順でスロット境界を跨いで連結されること", func(t *testing.T) {
		l := buildScreenLayout(t)
		flat := l.flatten()
		want := []string{"My Products", "Vase", "Shawl", "Ring", "Add a product", "Pending", "Shipped"}
		if len(flat) != len(want) {
			t.Fatalf("要素数の期待値 %d, 実際の値 %d", len(want), len(flat))
		}
		for i := range want {
			if flat[i] != want[i] {
				t.Errorf("添字 %d の期待値 %q, 実際の値 %q", i, want[i], flat[i])
			}
		}
	})

	t.Run("書き戻しは各スロットへ添字どおりに配分されること", func(t *testing.T) {
		l := buildScreenLayout(t)
		translated := []string{"T1", "P1", "P2", "P3", "T2", "S1", "S2"}

		content, err := l.unflatten(translated)
		if err != nil {
			t.Fatalf("書き戻しに失敗しました: %v", err)
		}

		if title, _ := content.Label("title"); title != "T1" {
			t.Errorf("title の期待値 T1, 実際の値 %q", title)
		}
		if cta, _ := content.Label("cta"); cta != "T2" {
			t.Errorf("cta の期待値 T2, 実際の値 %q", cta)
		}
		names, ok := content.List("product_names")
		if !ok || len(names) != 3 || names[0] != "P1" || names[2] != "P3" {
			t.Errorf("product_names の配分が不正です: %v", names)
		}
		statuses, ok := content.List("order_statuses")
		if !ok || len(statuses) != 2 || statuses[1] != "S2" {
			t.Errorf("order_statuses の配分が不正です: %v", statuses)
		}
	})

	t.Run("要素数の不一致は ErrTranslationFailed になること", func(t *testing.T) {
		l := buildScreenLayout(t)
		if _, err := l.unflatten([]string{"only", "four", "items", "here"}); !errors.Is(err, domain.ErrTranslationFailed) {
			t.Errorf("ErrTranslationFailed を期待しましたが: %v", err)
		}
	})

	t.Run("空のリストスロットも往復できること", func(t *testing.T) {
		l := NewLayout()
		if err := l.AddLabel("title", "Orders"); err != nil {
			t.Fatal(err)
		}
		if err := l.AddList("orders", nil); err != nil {
			t.Fatal(err)
		}

		content, err := l.unflatten(l.flatten())
		if err != nil {
			t.Fatalf("往復に失敗しました: %v", err)
		}
		orders, ok := content.List("orders")
		if !ok || len(orders) != 0 {
			t.Errorf("空リストの往復結果が不正です: %v", orders)
		}
	})

	t.Run("キーの重複と空キーは拒否されること", func(t *testing.T) {
		l := NewLayout()
		if err := l.AddLabel("title", "A"); err != nil {
			t.Fatal(err)
		}
		if err := l.AddList("title", []string{"B"}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("重複キー: ErrInvalidInput を期待しましたが: %v", err)
		}
		if err := l.AddLabel("", "C"); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("空キー: ErrInvalidInput を期待しましたが: %v", err)
		}
	})
}
