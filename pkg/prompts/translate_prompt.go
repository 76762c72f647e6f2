package prompts

import "fmt"

const translationTemplate = "Translate the following text into the language with ISO 639-1 code %q. " +
	"Respond with the translated text only, no quotes, no notes, no alternatives.\n\nText: %s"

// BuildTranslationPrompt は単一テキストの翻訳プロンプトを構築します。
func BuildTranslationPrompt(text, targetLanguage string) string {
	return fmt.Sprintf(translationTemplate, targetLanguage, text)
}

const speechInstruction = "Read the following text aloud in a warm, clear narration voice:\n\n"

// BuildSpeechPrompt は読み上げ（音声合成）のプロンプトを構築します。
func BuildSpeechPrompt(text string) string {
	return speechInstruction + text
}
