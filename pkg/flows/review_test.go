package flows

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/go-craft-kit/pkg/domain"
)

func TestReviewFlow_Run(t *testing.T) {
	ctx := context.Background()

	req := ReviewRequest{
		ProductDescription: "A hand-thrown terracotta vase.",
		ProductStory:       "Shaped on a kick wheel.",
		Metrics:            domain.EngagementMetrics{Likes: 120, Shares: 34, Revenue: "5800"},
		TargetAudience:     "urban home decorators",
		TargetLanguage:     "en",
	}

	t.Run("レビュー本文が整形されて返ること", func(t *testing.T) {
		gw := &fakeTextGateway{response: "\n  Your vase resonates with urban decorators. Lean into the wheel-thrown story.  \n"}
		flow, err := NewReviewFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}

		review, err := flow.Run(ctx, req)
		if err != nil {
			t.Fatalf("実行に失敗しました: %v", err)
		}
		if review != "Your vase resonates with urban decorators. Lean into the wheel-thrown story." {
			t.Errorf("整形後の期待値と異なります: %q", review)
		}
		if gw.callCount() != 1 {
			t.Errorf("呼び出し回数の期待値 1, 実際の値 %d", gw.callCount())
		}
	})

	t.Run("商品説明が空なら拒否されること", func(t *testing.T) {
		flow, err := NewReviewFlow(&fakeTextGateway{response: "review"}, "test-model")
		if err != nil {
			t.Fatal(err)
		}
		empty := req
		empty.ProductDescription = ""
		if _, err := flow.Run(ctx, empty); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput を期待しましたが: %v", err)
		}
	})

	t.Run("空の応答は ErrGenerationFailed になること", func(t *testing.T) {
		flow, err := NewReviewFlow(&fakeTextGateway{response: "   "}, "test-model")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := flow.Run(ctx, req); !errors.Is(err, domain.ErrGenerationFailed) {
			t.Errorf("ErrGenerationFailed を期待しましたが: %v", err)
		}
	})
}

func TestSpeechFlow_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("音声メディアが返ること", func(t *testing.T) {
		gw := &fakeMediaGateway{media: domain.NewMedia("audio/wav", []byte{0x52, 0x49, 0x46, 0x46})}
		flow, err := NewSpeechFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}

		media, err := flow.Run(ctx, "Welcome to the workshop.")
		if err != nil {
			t.Fatalf("実行に失敗しました: %v", err)
		}
		if media.MimeType != "audio/wav" {
			t.Errorf("MIME タイプの期待値 audio/wav, 実際の値 %q", media.MimeType)
		}
	})

	t.Run("空のテキストは呼び出しゼロで拒否されること", func(t *testing.T) {
		gw := &fakeMediaGateway{media: testMedia("audio/wav")}
		flow, err := NewSpeechFlow(gw, "test-model")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := flow.Run(ctx, " "); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("ErrInvalidInput を期待しましたが: %v", err)
		}
		if gw.callCount() != 0 {
			t.Errorf("検証前にゲートウェイが呼ばれました: %d 回", gw.callCount())
		}
	})
}
