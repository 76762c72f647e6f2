package prompts

import (
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
)

func TestBuildDesignParts(t *testing.T) {
	refURI := domain.EncodeDataURI("image/png", []byte{1, 2, 3})

	t.Run("参照画像ありの場合は [指示, 画像, 補足指示] の順になること", func(t *testing.T) {
		parts, err := BuildDesignParts("孔雀の透かし彫り", "Woodwork", refURI)
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if len(parts) != 3 {
			t.Fatalf("パート数の期待値 3, 実際の値 %d", len(parts))
		}
		if parts[0].Kind != gateway.PartKindText || !strings.Contains(parts[0].Text, "孔雀の透かし彫り") {
			t.Errorf("先頭が基本指示ではありません: %+v", parts[0])
		}
		if parts[1].Kind != gateway.PartKindMedia {
			t.Errorf("2番目が画像パートではありません: %+v", parts[1])
		}
		if parts[2].Kind != gateway.PartKindText || !strings.Contains(parts[2].Text, "style reference") {
			t.Errorf("末尾がスタイル参照の補足指示ではありません: %+v", parts[2])
		}
	})

	t.Run("参照画像なしの場合はテキスト1パートのみになること", func(t *testing.T) {
		parts, err := BuildDesignParts("藍染のストール", "Textiles", "")
		if err != nil {
			t.Fatalf("構築に失敗しました: %v", err)
		}
		if len(parts) != 1 {
			t.Fatalf("パート数の期待値 1, 実際の値 %d", len(parts))
		}
	})

	t.Run("空の指示文は ErrInvalidInput になること", func(t *testing.T) {
		_, err := BuildDesignParts("  ", "Pottery", "")
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput を期待しましたが: %v", err)
		}
	})

	t.Run("不正な参照 URI はエラーになること", func(t *testing.T) {
		if _, err := BuildDesignParts("真鍮のランプ", "Metalwork", "not-a-uri"); err == nil {
			t.Error("不正な参照 URI がエラーになりませんでした")
		}
	})
}

func TestTextPromptBuilder(t *testing.T) {
	pb, err := NewTextPromptBuilder()
	if err != nil {
		t.Fatalf("初期化に失敗しました: %v", err)
	}

	t.Run("details テンプレートにカテゴリ一覧が展開されること", func(t *testing.T) {
		out, err := pb.Build(ModeDetails, TemplateData{Categories: "Woodwork, Pottery"})
		if err != nil {
			t.Fatalf("Build に失敗しました: %v", err)
		}
		if !strings.Contains(out, "Woodwork, Pottery") {
			t.Error("カテゴリ一覧がプロンプトに含まれていません")
		}
		if !strings.Contains(out, "predicted_category") {
			t.Error("出力スキーマの指示が欠けています")
		}
	})

	t.Run("不明なモードはエラーになること", func(t *testing.T) {
		if _, err := pb.Build("haiku", TemplateData{}); err == nil {
			t.Error("不明なモードがエラーになりませんでした")
		}
	})
}
