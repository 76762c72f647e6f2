package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const dataURIPrefix = "data:"

// Media は生成された画像・音声などのメディアを Data URI 形式で保持します。
// 形式は data:<mimetype>;base64,<encoded_data> です。
type Media struct {
	DataURI  string
	MimeType string
}

// EncodeDataURI はバイナリデータを Data URI 文字列へ変換します。
func EncodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("%s%s;base64,%s", dataURIPrefix, mimeType, base64.StdEncoding.EncodeToString(data))
}

// NewMedia はバイナリデータから Media を構築します。
func NewMedia(mimeType string, data []byte) Media {
	return Media{
		DataURI:  EncodeDataURI(mimeType, data),
		MimeType: mimeType,
	}
}

// IsDataURI は文字列が Data URI 形式であるかを返します。
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// ParseDataURI は Data URI 文字列を MIME タイプとデコード済みバイト列に分解します。
// base64 以外のエンコーディングはサポートしません。
func ParseDataURI(uri string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(uri, dataURIPrefix) {
		return "", nil, fmt.Errorf("%w: data: で始まらない URI です", ErrInvalidInput)
	}

	meta, payload, found := strings.Cut(uri[len(dataURIPrefix):], ",")
	if !found {
		return "", nil, fmt.Errorf("%w: Data URI にカンマ区切りがありません", ErrInvalidInput)
	}

	mimeType, encoding, _ := strings.Cut(meta, ";")
	if mimeType == "" {
		return "", nil, fmt.Errorf("%w: Data URI に MIME タイプがありません", ErrInvalidInput)
	}
	if encoding != "base64" {
		return "", nil, fmt.Errorf("%w: base64 以外のエンコーディングです: %q", ErrInvalidInput, encoding)
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("Data URI のデコードに失敗しました: %w", err)
	}
	return mimeType, data, nil
}
