package gateway

import (
	"errors"
	"testing"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

func TestExtractJSON(t *testing.T) {
	t.Run("jsonコードフェンスから抽出できること", func(t *testing.T) {
		raw := "説明文です。\n```json\n{\"name\": \"壺\"}\n```\n以上。"
		got := ExtractJSON(raw)
		if got != `{"name": "壺"}` {
			t.Errorf("期待値と異なります: %q", got)
		}
	})

	t.Run("フェンスなしでも最外の中括弧で抽出できること", func(t *testing.T) {
		raw := `結果: {"a": {"b": 1}} でした`
		got := ExtractJSON(raw)
		if got != `{"a": {"b": 1}}` {
			t.Errorf("期待値と異なります: %q", got)
		}
	})

	t.Run("中括弧がなければ全文をそのまま返すこと", func(t *testing.T) {
		if got := ExtractJSON("  plain text  "); got != "plain text" {
			t.Errorf("期待値 'plain text', 実際の値 %q", got)
		}
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("抽出とデコードが連続して行えること", func(t *testing.T) {
		var p payload
		if err := DecodeJSON("```json\n{\"name\":\"織物\"}\n```", &p); err != nil {
			t.Fatalf("デコードに失敗しました: %v", err)
		}
		if p.Name != "織物" {
			t.Errorf("期待値 '織物', 実際の値 %q", p.Name)
		}
	})

	t.Run("JSON でない応答は ErrGenerationFailed になること", func(t *testing.T) {
		var p payload
		err := DecodeJSON("まったく応答になっていません", &p)
		if !errors.Is(err, domain.ErrGenerationFailed) {
			t.Errorf("ErrGenerationFailed を期待しましたが: %v", err)
		}
	})
}
