package lingo

import "fmt"

// Resolve renders the template at key for locale, substituting placeholders
// from vars. A locale without a catalog falls back to the default locale,
// and a key missing under the resolved locale falls back to the default
// locale's template. Plural templates must go through ResolveCount.
//
// Templates are rendered verbatim, HTML included. Escaping user-supplied
// variable values is the caller's contract, see the html subpackage.
func (c *Catalog) Resolve(locale, key string, vars Vars) (string, error) {
	_, msg, err := c.message(locale, key)
	if err != nil {
		return "", err
	}
	if msg.isPlural() {
		return "", fmt.Errorf("%w: key %q is a plural template and needs a count", ErrInvalidPluralCategory, key)
	}
	return expand(msg.text, vars)
}

// ResolveCount renders the template at key for locale, selecting the plural
// variant for count under the locale's plural rules. A variant missing for
// the selected category falls back to "other". The count is exposed to the
// template as $count unless vars already binds it.
func (c *Catalog) ResolveCount(locale, key string, count int, vars Vars) (string, error) {
	loc, msg, err := c.message(locale, key)
	if err != nil {
		return "", err
	}
	merged := make(Vars, len(vars)+1)
	for name, val := range vars {
		merged[name] = val
	}
	if _, ok := merged["count"]; !ok {
		merged["count"] = count
	}
	if !msg.isPlural() {
		return expand(msg.text, merged)
	}
	text, ok := msg.plural[pluralCategory(loc.tag, count)]
	if !ok {
		text, ok = msg.plural[CategoryOther]
	}
	if !ok {
		return "", fmt.Errorf("%w: key %q has no usable form for count %d", ErrInvalidPluralCategory, key, count)
	}
	return expand(text, merged)
}

// Has reports whether key resolves under locale, either directly or through
// the default-locale fallback.
func (c *Catalog) Has(locale, key string) bool {
	_, _, err := c.message(locale, key)
	return err == nil
}

// message finds the template for key: the resolved locale first, then the
// default locale. The returned localeData is the one whose template won, so
// plural rules follow the text actually served.
func (c *Catalog) message(locale, key string) (*localeData, *message, error) {
	loc, err := c.lookup(locale)
	if err != nil {
		return nil, nil, err
	}
	if msg, ok := loc.messages[key]; ok {
		return loc, msg, nil
	}
	if def, ok := c.locales[c.defaultLocale]; ok {
		if msg, ok := def.messages[key]; ok {
			return def, msg, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}
