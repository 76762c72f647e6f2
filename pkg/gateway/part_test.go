package gateway

import (
	"errors"
	"testing"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

func TestMediaPart(t *testing.T) {
	t.Run("Data URI からメディアパートを構築できること", func(t *testing.T) {
		uri := domain.EncodeDataURI("image/jpeg", []byte{0xff, 0xd8, 0xff})
		p, err := MediaPart(uri)
		if err != nil {
			t.Fatalf("正常な Data URI で失敗しました: %v", err)
		}
		if p.Kind != PartKindMedia {
			t.Errorf("種別の期待値 PartKindMedia, 実際の値 %v", p.Kind)
		}
		if p.MimeType != "image/jpeg" {
			t.Errorf("MIME タイプの期待値 'image/jpeg', 実際の値 %q", p.MimeType)
		}
		if len(p.Data) != 3 {
			t.Errorf("データ長の期待値 3, 実際の値 %d", len(p.Data))
		}
	})

	t.Run("不正な URI は ErrInvalidInput になること", func(t *testing.T) {
		_, err := MediaPart("not-a-data-uri")
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput を期待しましたが: %v", err)
		}
	})
}

func TestBuildGenaiParts(t *testing.T) {
	imageURI := domain.EncodeDataURI("image/png", []byte{1, 2, 3})

	t.Run("パートの順序が保持されること", func(t *testing.T) {
		media, err := MediaPart(imageURI)
		if err != nil {
			t.Fatal(err)
		}
		parts := []Part{TextPart("first"), media, TextPart("last")}

		out, err := buildGenaiParts(parts)
		if err != nil {
			t.Fatalf("変換に失敗しました: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("パート数の期待値 3, 実際の値 %d", len(out))
		}
		if out[0].Text != "first" {
			t.Errorf("先頭パートがテキストではありません: %+v", out[0])
		}
		if out[1].InlineData == nil || out[1].InlineData.MIMEType != "image/png" {
			t.Errorf("2番目のパートが画像ではありません: %+v", out[1])
		}
		if out[2].Text != "last" {
			t.Errorf("末尾パートがテキストではありません: %+v", out[2])
		}
	})

	t.Run("テキストパートのない列は拒否されること", func(t *testing.T) {
		media, _ := MediaPart(imageURI)
		_, err := buildGenaiParts([]Part{media})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput を期待しましたが: %v", err)
		}
	})

	t.Run("空のパート列は拒否されること", func(t *testing.T) {
		if _, err := buildGenaiParts(nil); err == nil {
			t.Error("空のパート列がエラーになりませんでした")
		}
	})
}
