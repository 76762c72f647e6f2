package prompts

import (
	"fmt"
	"strings"
)

const (
	// productImageTemplate は商品イメージ生成の固定テンプレートです。
	productImageTemplate = "Professional product photograph of %q, a handcrafted %s piece, " +
		"centered on a clean neutral studio background with soft natural lighting"

	// iconPromptTemplate はオーバーライド表にないカテゴリ用のアイコン生成テンプレートです。
	iconPromptTemplate = "Minimal flat vector icon representing the craft category %q, " +
		"single centered symbol, rounded corners, warm earthy palette, solid background"

	// NegativePromptSuffix は不要な要素を排除するための共通の禁則指示です。
	NegativePromptSuffix = "No text, no letters, no logos, no watermarks, no human hands"

	// SquareAspectRatio は商品画像・アイコンで使用する正方形のアスペクト比です。
	SquareAspectRatio = "1:1"
)

// BuildProductImagePrompt は商品名とカテゴリから商品イメージのプロンプトを構築します。
func BuildProductImagePrompt(productName, category string) string {
	parts := []string{
		fmt.Sprintf(productImageTemplate, productName, category),
		NegativePromptSuffix,
	}
	return strings.Join(parts, ". ")
}

// BuildCategoryIconPrompt はカテゴリアイコンのプロンプトを構築します。
func BuildCategoryIconPrompt(categoryName string) string {
	parts := []string{
		fmt.Sprintf(iconPromptTemplate, categoryName),
		NegativePromptSuffix,
	}
	return strings.Join(parts, ". ")
}

// BuildRoleImagePrompt は固定のロールプロンプトに共通の禁則指示を付加します。
func BuildRoleImagePrompt(rolePrompt string) string {
	return rolePrompt + ". " + NegativePromptSuffix
}
