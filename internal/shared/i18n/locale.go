// Package i18n provides localized text resolution for language-keyed fields.
// Every localized attribute in the data model is stored as a map from language
// code to text and resolved per request to the caller's preferred language.
package i18n

import (
	"golang.org/x/text/language"
)

const (
	LocaleKorean  = "ko"
	LocaleEnglish = "en"

	DefaultLocale = LocaleKorean
)

var supportedLocales = []string{LocaleKorean, LocaleEnglish}

var matcher = language.NewMatcher([]language.Tag{
	language.Korean,
	language.English,
})

// LocalizedText is a mapping from language code to text.
// A nil map is valid and resolves to the empty string for every locale.
type LocalizedText map[string]string

// Resolve returns the text for the requested locale, falling back to the
// default locale, falling back to the empty string. Missing keys never
// produce an error; absence degrades gracefully.
func (t LocalizedText) Resolve(locale string) string {
	if t == nil {
		return ""
	}
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLocale]; ok && v != "" {
		return v
	}
	return ""
}

// HasDefault reports whether the text carries a non-empty value for the
// default locale. Localized fields are expected to always resolve to at
// least the default language's text.
func (t LocalizedText) HasDefault() bool {
	return t != nil && t[DefaultLocale] != ""
}

// IsEmpty reports whether no locale carries a non-empty value.
func (t LocalizedText) IsEmpty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

// NormalizeLocale maps an arbitrary language tag to one of the supported
// locale codes. Region-qualified tags collapse to their base language
// ("en-US" becomes "en"); unknown or empty tags fall back to the default.
func NormalizeLocale(requested string) string {
	if requested == "" {
		return DefaultLocale
	}
	for _, l := range supportedLocales {
		if requested == l {
			return l
		}
	}

	tag, err := language.Parse(requested)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return supportedLocales[idx]
}

// SupportedLocales returns the list of locale codes the site serves.
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	copy(out, supportedLocales)
	return out
}
