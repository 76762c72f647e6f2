package prompts

import (
	_ "embed"
)

// テンプレートのモード識別子です。
const (
	ModeDetails = "details"
	ModeSocial  = "social"
	ModeReview  = "review"
)

// TemplateData はプロンプトテンプレートに渡すデータ構造です。
// モードごとに使用するフィールドが異なります（未使用フィールドは空のままで構いません）。
type TemplateData struct {
	// Categories は details 用の正準カテゴリ一覧（カンマ区切り）です。
	Categories string

	// 以下は social / review 用の商品情報です。
	Name        string
	Description string
	Story       string

	// Platforms は social 用の対象プラットフォーム一覧（カンマ区切り）です。
	Platforms string

	// 以下は review 用の実績指標です。
	Likes    int
	Shares   int
	Revenue  string
	Audience string
	Language string
}

var (
	//go:embed details.md
	detailsPrompt string
	//go:embed social.md
	socialPrompt string
	//go:embed review.md
	reviewPrompt string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップです。
var allTemplates = map[string]string{
	ModeDetails: detailsPrompt,
	ModeSocial:  socialPrompt,
	ModeReview:  reviewPrompt,
}
