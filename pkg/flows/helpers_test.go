package flows

import (
	"context"
	"sync"

	"github.com/shouni/go-craft-kit/pkg/domain"
	"github.com/shouni/go-craft-kit/pkg/gateway"
)

// fakeTextGateway は呼び出し回数と直近のパート列を記録するテスト用ゲートウェイです。
type fakeTextGateway struct {
	mu        sync.Mutex
	calls     int
	lastParts []gateway.Part
	response  string
	err       error
}

func (f *fakeTextGateway) GenerateText(ctx context.Context, model string, parts []gateway.Part) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastParts = parts
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeTextGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeMediaGateway はメディア生成のテスト用ゲートウェイです。
type fakeMediaGateway struct {
	mu        sync.Mutex
	calls     int
	lastParts []gateway.Part
	lastOpts  gateway.MediaOptions
	media     domain.Media
	err       error
}

func (f *fakeMediaGateway) GenerateMedia(ctx context.Context, model string, parts []gateway.Part, opts gateway.MediaOptions) (domain.Media, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastParts = parts
	f.lastOpts = opts
	if f.err != nil {
		return domain.Media{}, f.err
	}
	return f.media, nil
}

func (f *fakeMediaGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeBundleTranslator は "lang:text" 形式で翻訳を模倣する一括翻訳器です。
type fakeBundleTranslator struct {
	mu    sync.Mutex
	calls int
	fail  bool
}

func (f *fakeBundleTranslator) TranslateAll(ctx context.Context, items []string, lang string) ([]string, error) {
	if lang == "" || lang == "en" {
		return items, nil
	}

	f.mu.Lock()
	f.calls++
	fail := f.fail
	f.mu.Unlock()

	if fail {
		// ファンアウトの契約どおり、失敗時も原文を返します。
		return items, domain.ErrTranslationFailed
	}

	out := make([]string, len(items))
	for i, item := range items {
		out[i] = lang + ":" + item
	}
	return out, nil
}

func testMedia(mime string) domain.Media {
	return domain.NewMedia(mime, []byte{0x01, 0x02, 0x03})
}
