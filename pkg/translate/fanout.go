// Package translate は、複数画面で繰り返される翻訳ファンアウトの共通実装です。
// N個のテキストを並列に翻訳し、完了順に関わらず元の順序どおりに再集合します。
// 1件でも失敗した場合はバンドル全体を原文へフォールバックします
// （部分的な翻訳混在をユーザーへ見せないための全か無かの方針です）。
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/go-craft-kit/pkg/domain"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Translator は単一テキストの翻訳を行う契約です。
// 失敗はそのまま呼び出し側へ伝播します（フォールバック方針は呼び出し側が決めます）。
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

const (
	// DefaultSourceLanguage はコンテンツの原語です。対象言語がこれと一致する場合、
	// 翻訳呼び出しを一切発行せず入力をそのまま返します。
	DefaultSourceLanguage = "en"

	// DefaultMaxConcurrency は1バッチ内の同時翻訳呼び出し数の上限です。
	// 大量の商品名を翻訳する画面でゲートウェイを圧迫しないための安全弁です。
	DefaultMaxConcurrency = 8

	defaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = 15 * time.Minute
)

// Options は BatchTranslator の動作設定です。
type Options struct {
	// SourceLanguage は原語コードです。空なら "en" です。
	SourceLanguage string
	// MaxConcurrency は同時呼び出し数の上限です。0以下ならデフォルト値です。
	MaxConcurrency int
	// Interval は呼び出し間隔のレート制限です。0なら制限なしです。
	Interval time.Duration
	// CacheTTL は (テキスト, 言語) 単位の翻訳メモの保持期間です。0ならデフォルト値です。
	CacheTTL time.Duration
}

// BatchTranslator は翻訳ファンアウトの実行実体です。
// 共有は安全です（内部キャッシュはロックを内蔵しています）。
type BatchTranslator struct {
	translator Translator
	source     string
	limit      int
	limiter    *rate.Limiter
	memo       *cache.Cache
	inflight   singleflight.Group
}

// NewBatchTranslator は Translator とオプションから BatchTranslator を構築します。
func NewBatchTranslator(translator Translator, opts Options) (*BatchTranslator, error) {
	if translator == nil {
		return nil, fmt.Errorf("translator は必須です")
	}

	source := opts.SourceLanguage
	if source == "" {
		source = DefaultSourceLanguage
	}
	limit := opts.MaxConcurrency
	if limit <= 0 {
		limit = DefaultMaxConcurrency
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheExpiration
	}

	var limiter *rate.Limiter
	if opts.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Interval), 2)
	}

	return &BatchTranslator{
		translator: translator,
		source:     source,
		limit:      limit,
		limiter:    limiter,
		memo:       cache.New(ttl, cacheCleanupInterval),
	}, nil
}

// TranslateAll は items を並列に翻訳し、元の順序で返します。
// 戻り値のスライスは常に表示可能です: いずれかの呼び出しが失敗した場合は
// 原文の items をそのまま返し、あわせて ErrTranslationFailed を返します。
// 対象言語が原語と一致する（または空の）場合は呼び出しを発行せず items を返します。
func (b *BatchTranslator) TranslateAll(ctx context.Context, items []string, targetLanguage string) ([]string, error) {
	if targetLanguage == "" || targetLanguage == b.source {
		return items, nil
	}
	if len(items) == 0 {
		return items, nil
	}

	results := make([]string, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.limit)

	for i, item := range items {
		i, item := i, item
		eg.Go(func() error {
			if b.limiter != nil {
				if err := b.limiter.Wait(egCtx); err != nil {
					return err
				}
			}

			translated, err := b.translateOne(egCtx, item, targetLanguage)
			if err != nil {
				return fmt.Errorf("item %d の翻訳に失敗しました: %w", i, err)
			}

			// 完了順ではなく添字で書き戻すことで、元の順序を保証します。
			results[i] = translated
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		// 全か無かのフォールバック。部分的な翻訳は決して表に出しません。
		slog.WarnContext(ctx, "翻訳バッチが失敗したため原文へフォールバックします",
			"lang", targetLanguage, "items", len(items), "error", err)
		return items, fmt.Errorf("%w: %v", domain.ErrTranslationFailed, err)
	}

	return results, nil
}

// translateOne はメモとインフライト重複排除を通して1件の翻訳を実行します。
// 同一の (テキスト, 言語) を複数画面が同時に要求しても呼び出しは1回で済みます。
func (b *BatchTranslator) translateOne(ctx context.Context, text, targetLanguage string) (string, error) {
	if text == "" {
		return "", nil
	}

	key := targetLanguage + "\x00" + text
	if cached, ok := b.memo.Get(key); ok {
		if s, ok := cached.(string); ok {
			return s, nil
		}
	}

	val, err, _ := b.inflight.Do(key, func() (interface{}, error) {
		// singleflight の待機中に別のゴルーチンが完了している可能性があるため、
		// コールバック内でもキャッシュを再確認します。
		if cached, ok := b.memo.Get(key); ok {
			return cached, nil
		}

		translated, err := b.translator.Translate(ctx, text, targetLanguage)
		if err != nil {
			return nil, err
		}

		b.memo.Set(key, translated, cache.DefaultExpiration)
		return translated, nil
	})
	if err != nil {
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("unexpected return type from singleflight: %T", val)
	}
	return s, nil
}

// SourceLanguage は設定された原語コードを返します。
func (b *BatchTranslator) SourceLanguage() string {
	return b.source
}
