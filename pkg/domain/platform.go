package domain

import (
	"fmt"
	"strings"
)

// Platform はSNSコンテンツ生成の対象プラットフォームです。
type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformSnapchat  Platform = "Snapchat"
	PlatformTwitter   Platform = "Twitter(X)"
)

var allPlatforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformSnapchat,
	PlatformTwitter,
}

// Platforms はサポートするプラットフォームの一覧をコピーして返します。
func Platforms() []Platform {
	out := make([]Platform, len(allPlatforms))
	copy(out, allPlatforms)
	return out
}

// ParsePlatform は文字列をプラットフォーム識別子へ変換します。完全一致で判定します。
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.TrimSpace(s))
	if !p.Valid() {
		names := make([]string, len(allPlatforms))
		for i, known := range allPlatforms {
			names[i] = string(known)
		}
		return "", fmt.Errorf("%w: 未知のプラットフォームです: %q (候補: %s)",
			ErrInvalidInput, s, strings.Join(names, ", "))
	}
	return p, nil
}

// Valid はサポート対象のプラットフォームであるかを返します。
func (p Platform) Valid() bool {
	for _, known := range allPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}
