// Package assets は、プロセス起動時に読み込まれる読み取り専用の
// 静的オーバーライド表を提供します。固定タクソノミー（カテゴリ・ロール）の
// ビジュアル一貫性を保証し、冗長なモデル呼び出しを避けるための仕組みです。
package assets

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

//go:embed icons/*.svg
var iconFS embed.FS

//go:embed artisan.svg
var artisanSVG []byte

const svgMimeType = "image/svg+xml"

// RoleArtisan は同梱イラストに対応付けられた特別なロール名です。
const RoleArtisan = "Artisan"

// categoryIcons はカテゴリ名 → 事前計算済みアイコン Data URI の対応表です。
// ここに載っているカテゴリはゲートウェイを呼ばずに即座に返します。
var categoryIcons = loadCategoryIcons()

// ArtisanIllustration は "Artisan" ロールに対応する同梱イラストの Data URI です。
var ArtisanIllustration = domain.NewMedia(svgMimeType, artisanSVG)

// rolePrompts はロール名 → 固定の画像生成プロンプトの対応表です。
// ロール名は完全一致で引き当てます。未知のロールは呼び出し側の誤りです。
var rolePrompts = map[string]string{
	"Buyer": "Warm flat illustration of a marketplace buyer browsing handcrafted goods on a stall, " +
		"holding a woven basket, soft earthy palette, friendly rounded shapes, no text, no logos",
	"Sponsor": "Warm flat illustration of a community sponsor shaking hands with an artisan in front of " +
		"a craft workshop, supportive atmosphere, soft earthy palette, friendly rounded shapes, no text, no logos",
}

// CategoryIconURI はカテゴリに対応する事前計算済みアイコンを返します。
// 対応表にないカテゴリ名は ok=false を返します。
func CategoryIconURI(categoryName string) (domain.Media, bool) {
	media, ok := categoryIcons[categoryName]
	return media, ok
}

// RolePrompt はロール名に対応する固定プロンプトを返します。
func RolePrompt(roleName string) (string, bool) {
	prompt, ok := rolePrompts[roleName]
	return prompt, ok
}

// loadCategoryIcons は埋め込み SVG 群を正準カテゴリ名に対応付けます。
// ファイル名はカテゴリ名の小文字表記です（例: Woodwork -> icons/woodwork.svg）。
func loadCategoryIcons() map[string]domain.Media {
	table := make(map[string]domain.Media, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		name := path.Join("icons", strings.ToLower(cat.String())+".svg")
		data, err := iconFS.ReadFile(name)
		if err != nil {
			// 埋め込みファイルの欠落はビルド成果物の破損なので即座に落とします。
			panic(fmt.Sprintf("カテゴリアイコン %s の読み込みに失敗しました: %v", name, err))
		}
		table[cat.String()] = domain.NewMedia(svgMimeType, data)
	}
	return table
}
