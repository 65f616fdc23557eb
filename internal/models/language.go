package models

import "strings"

// Language is one of the three content languages served by the API.
type Language string

const (
	LangUz Language = "uz"
	LangRu Language = "ru"
	LangEn Language = "en"
)

// ParseLanguage maps a raw language code to a supported Language.
// Anything unrecognized falls back to Uzbek, the primary content language.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ru":
		return LangRu
	case "en":
		return LangEn
	case "uz":
		return LangUz
	}
	return LangUz
}

// LocalizedText holds the three language variants of one logical text field.
type LocalizedText struct {
	Uz string `json:"uz"`
	Ru string `json:"ru"`
	En string `json:"en"`
}

// Resolve returns the variant for lang, falling back to the Uzbek variant
// when the requested one is empty.
func (t LocalizedText) Resolve(lang Language) string {
	switch lang {
	case LangRu:
		if t.Ru != "" {
			return t.Ru
		}
	case LangEn:
		if t.En != "" {
			return t.En
		}
	}
	return t.Uz
}
