package domain

import (
	"fmt"
	"strings"
)

// Category は商品が属する工芸カテゴリです。
// AIの分類結果と下流の照合処理はこの正準値（英語表記）で行うため、
// カテゴリ名は翻訳の対象外です。
type Category string

const (
	CategoryWoodwork   Category = "Woodwork"
	CategoryPottery    Category = "Pottery"
	CategoryPaintings  Category = "Paintings"
	CategorySculptures Category = "Sculptures"
	CategoryTextiles   Category = "Textiles"
	CategoryJewelry    Category = "Jewelry"
	CategoryMetalwork  Category = "Metalwork"
)

// allCategories は分類プロンプトに埋め込む閉じた選択肢の一覧です。順序は固定です。
var allCategories = []Category{
	CategoryWoodwork,
	CategoryPottery,
	CategoryPaintings,
	CategorySculptures,
	CategoryTextiles,
	CategoryJewelry,
	CategoryMetalwork,
}

// Categories は正準カテゴリの一覧をコピーして返します。
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryNames はプロンプト構築用にカテゴリ名の文字列スライスを返します。
func CategoryNames() []string {
	names := make([]string, len(allCategories))
	for i, c := range allCategories {
		names[i] = string(c)
	}
	return names
}

// ParseCategory は文字列を正準カテゴリへ変換します。
// 前後の空白のみ許容し、それ以外は完全一致で判定します。
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w: 未知のカテゴリです: %q (候補: %s)",
			ErrInvalidInput, s, strings.Join(CategoryNames(), ", "))
	}
	return c, nil
}

// Valid は正準カテゴリのいずれかであるかを返します。
func (c Category) Valid() bool {
	for _, known := range allCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}
