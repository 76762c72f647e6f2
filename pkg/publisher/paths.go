package publisher

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

const (
	// DefaultListingName は商品リスティングシートのデフォルト Markdown ファイル名です。
	DefaultListingName = "listing.md"
	// DefaultMediaDirName は生成メディアを格納するディレクトリ名です。
	DefaultMediaDirName = "media"
	// DefaultSocialDirName はSNSコピーを格納するディレクトリ名です。
	DefaultSocialDirName = "social"
	// DefaultDesignFileName はデザイン案画像の共通のベースファイル名です。
	DefaultDesignFileName = "design.png"
)

// DesignFileRegex はデザイン案画像 (design_1.png 等) に一致します
var DesignFileRegex = createIndexedRegex(DefaultDesignFileName)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	return urlpath.ResolveOutputPath(baseDir, fileName)
}

// ResolveBaseURL は、入力パス（URLまたはローカルパス）から
// 親ディレクトリのパスを解決し、末尾がセパレータで終わるように正規化します。
func ResolveBaseURL(rawPath string) string {
	return urlpath.ResolveBaseURL(rawPath)
}

// GenerateIndexedPath は、指定されたベースパスの拡張子の前に連番を挿入し、
// 新しいパス文字列を生成します。index は1以上の整数である必要があります。
// 例: "path/to/design.png", 1 -> "path/to/design_1.png"
func GenerateIndexedPath(basePath string, index int) (string, error) {
	return urlpath.GenerateIndexedPath(basePath, index)
}

// createIndexedRegex は、ファイル名に基づきインデックス付きファイル用の正規表現を生成します。
// 例: "design.png" -> ^design_\d+\.png$
func createIndexedRegex(fileName string) *regexp.Regexp {
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	pattern := fmt.Sprintf(`^%s_\d+%s$`, regexp.QuoteMeta(baseName), regexp.QuoteMeta(ext))
	return regexp.MustCompile(pattern)
}

// mediaExtensions は生成メディアの MIME タイプと拡張子の対応です。
var mediaExtensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"audio/wav":     ".wav",
	"audio/mpeg":    ".mp3",
	"audio/ogg":     ".ogg",
}

// extensionFor は MIME タイプに対応する拡張子を返します。未知の場合は ".bin" です。
func extensionFor(mimeType string) string {
	if ext, ok := mediaExtensions[mimeType]; ok {
		return ext
	}
	return ".bin"
}
