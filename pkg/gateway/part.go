package gateway

import (
	"fmt"

	"github.com/shouni/go-craft-kit/pkg/domain"

	"google.golang.org/genai"
)

// PartKind はプロンプトパートの種別です。
type PartKind int

const (
	// PartKindText はテキスト指示のパートです。
	PartKindText PartKind = iota + 1
	// PartKindMedia は画像などのバイナリメディアのパートです。
	PartKindMedia
)

// Part はモデルへ渡すプロンプトの1要素です。
// テキストかメディアのどちらかを保持するタグ付きの構造で、
// フロー層はこの列を「意図した順序どおり」に組み立てる責務を持ちます。
type Part struct {
	Kind     PartKind
	Text     string
	MimeType string
	Data     []byte
}

// TextPart はテキストパートを構築します。
func TextPart(text string) Part {
	return Part{Kind: PartKindText, Text: text}
}

// MediaPart は Data URI からメディアパートを構築します。
// 不正な Data URI は ErrInvalidInput として拒否します。
func MediaPart(dataURI string) (Part, error) {
	mimeType, data, err := domain.ParseDataURI(dataURI)
	if err != nil {
		return Part{}, fmt.Errorf("メディアパートの構築に失敗しました: %w", err)
	}
	return Part{Kind: PartKindMedia, MimeType: mimeType, Data: data}, nil
}

// buildGenaiParts は Part 列を SDK のパート列へ変換します。
// テキストパートが1つもない場合は ErrInvalidInput を返します。
func buildGenaiParts(parts []Part) ([]*genai.Part, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: プロンプトパートが空です", domain.ErrInvalidInput)
	}

	out := make([]*genai.Part, 0, len(parts))
	hasText := false
	for i, p := range parts {
		switch p.Kind {
		case PartKindText:
			hasText = true
			out = append(out, &genai.Part{Text: p.Text})
		case PartKindMedia:
			if p.MimeType == "" || len(p.Data) == 0 {
				return nil, fmt.Errorf("%w: パート %d のメディアが空です", domain.ErrInvalidInput, i)
			}
			out = append(out, &genai.Part{InlineData: &genai.Blob{MIMEType: p.MimeType, Data: p.Data}})
		default:
			return nil, fmt.Errorf("%w: パート %d の種別が未設定です", domain.ErrInvalidInput, i)
		}
	}

	if !hasText {
		return nil, fmt.Errorf("%w: テキストパートが最低1つ必要です", domain.ErrInvalidInput)
	}
	return out, nil
}
