// Package lingo resolves localized message templates and chat-mode personas
// for chat-bot front ends. A catalog maps locale → message key → template,
// where a template is either a plain string with $name placeholders or a set
// of plural variants selected by CLDR cardinal rules. Catalogs are immutable
// once loaded and hot-reloadable as a whole through Store.
package lingo

import (
	"strings"
	"sync"

	"github.com/iamwavecut/tool"
	log "github.com/sirupsen/logrus"

	"github.com/iamwavecut/lingo/internal/config"
	"github.com/iamwavecut/lingo/resources"
)

var initialize sync.Once
var defaultStore *Store

// Default returns the process-wide store, loading it on first use: from the
// LOCALES_PATH directory when set, otherwise from the embedded stock
// catalogs with the LANG default locale. The stock catalogs are validated in
// tests, so a load failure here means a broken build and panics.
func Default() *Store {
	initialize.Do(func() {
		cfg := config.Get()
		config.SetupLogger()

		open := func(lang string) (*Store, error) {
			if cfg.LocalesPath != "" {
				return Open(cfg.LocalesPath, WithDefaultLocale(lang))
			}
			c, err := Load(
				resources.FS, "locales",
				WithDefaultLocale(lang),
				WithRegistry(DefaultRegistry),
			)
			if err != nil {
				return nil, err
			}
			return NewStore(c), nil
		}

		lang := normalizeLang(cfg.DefaultLanguage)
		store, err := open(lang)
		if err != nil && lang != "en" {
			// LANG names a language the catalogs don't carry.
			log.WithError(err).Warnln("falling back to the en default locale")
			store, err = open("en")
		}
		tool.Must(err)
		defaultStore = store
	})
	return defaultStore
}

// normalizeLang reduces environment values like "ru_RU.UTF-8" to a bare
// language, LANG is an OS locale rather than a catalog name.
func normalizeLang(lang string) string {
	lang, _, _ = strings.Cut(lang, ".")
	if lang == "" || strings.EqualFold(lang, "C") || strings.EqualFold(lang, "POSIX") {
		return "en"
	}
	tag, err := parseTag(lang)
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	if base.String() == "und" {
		return "en"
	}
	return base.String()
}
