package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
)

const (
	designBaseTemplate = "Create a handcrafted %s design based on this idea: %s. " +
		"Render it as a realistic concept image of the finished piece, " +
		"neutral studio background, soft natural lighting"

	// designReferenceInstruction は参照画像の扱いをモデルへ明示する補足指示です。
	designReferenceInstruction = "Use the attached image strictly as a style reference: " +
		"borrow its color palette, texture and mood, but do not copy it directly"
)

// BuildDesignParts はカスタムデザイン生成のプロンプトパート列を構築します。
// 参照画像がある場合のパート順序は [基本指示, 画像, 補足指示] で固定です。
// この順序はモデルへスタイル参照の意図を伝える契約であり、変更してはいけません。
func BuildDesignParts(designPrompt, category, referenceImageURI string) ([]gateway.Part, error) {
	if strings.TrimSpace(designPrompt) == "" {
		return nil, fmt.Errorf("%w: デザインの指示文が空です", domain.ErrInvalidInput)
	}

	base := fmt.Sprintf(designBaseTemplate, category, designPrompt)
	parts := []gateway.Part{
		gateway.TextPart(base + ". " + NegativePromptSuffix),
	}

	if referenceImageURI != "" {
		imagePart, err := gateway.MediaPart(referenceImageURI)
		if err != nil {
			return nil, fmt.Errorf("参照画像パートの構築に失敗しました: %w", err)
		}
		parts = append(parts, imagePart, gateway.TextPart(designReferenceInstruction))
	}

	return parts, nil
}
