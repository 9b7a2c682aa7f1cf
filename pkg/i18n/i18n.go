package i18n

import (
	"embed"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/active.*.toml
var localeFS embed.FS
var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if _, err := bundle.LoadMessageFileFS(localeFS, "translations/active.en.toml"); err != nil {
		panic(err)
	}
	if _, err := bundle.LoadMessageFileFS(localeFS, "translations/active.ru.toml"); err != nil {
		panic(err)
	}
}

type C = i18n.LocalizeConfig
type M = i18n.Message
type Template = map[string]interface{}

// T localizes a message for lang, an Accept-Language value such as "ru-RU,ru;q=0.5".
// Unknown languages fall back to English, unknown messages to an empty string.
func T(lang string, c C) string {
	s, _ := i18n.NewLocalizer(bundle, lang).Localize(&c)
	return s
}

// Normalize reduces an Accept-Language value to one of the bundled languages.
func Normalize(lang string) string {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return language.English.String()
	}
	_, idx, _ := language.NewMatcher(bundle.LanguageTags()).Match(tags...)
	return bundle.LanguageTags()[idx].String()
}
