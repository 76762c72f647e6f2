package domain

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	t.Run("正準カテゴリ名はそのまま受理されること", func(t *testing.T) {
		c, err := ParseCategory("Woodwork")
		if err != nil {
			t.Fatalf("正準カテゴリでエラーが発生しました: %v", err)
		}
		if c != CategoryWoodwork {
			t.Errorf("期待値 %q, 実際の値 %q", CategoryWoodwork, c)
		}
	})

	t.Run("前後の空白は許容されること", func(t *testing.T) {
		c, err := ParseCategory("  Pottery ")
		if err != nil {
			t.Fatalf("空白付きカテゴリでエラーが発生しました: %v", err)
		}
		if c != CategoryPottery {
			t.Errorf("期待値 %q, 実際の値 %q", CategoryPottery, c)
		}
	})

	t.Run("大文字小文字の違いは受理しないこと", func(t *testing.T) {
		_, err := ParseCategory("woodwork")
		if err == nil {
			t.Fatal("小文字のカテゴリ名がエラーになりませんでした")
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ErrInvalidInput にラップされていません: %v", err)
		}
	})

	t.Run("未知のカテゴリは拒否されること", func(t *testing.T) {
		if _, err := ParseCategory("Glasswork"); err == nil {
			t.Error("未知のカテゴリがエラーになりませんでした")
		}
	})
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 7 {
		t.Fatalf("正準カテゴリは7種類のはずですが %d 種類でした", len(cats))
	}

	// 返されたスライスを書き換えても内部の一覧が汚れないこと
	cats[0] = Category("Tampered")
	if !CategoryWoodwork.Valid() {
		t.Error("返却スライスの書き換えが内部状態に影響しています")
	}
}
