package lingo

import (
	"fmt"
	"sort"
)

// DefaultModeID is the persona a fresh chat conventionally starts with.
const DefaultModeID = "assistant"

// Mode returns the persona bundle with the given id, localized for locale
// with the usual default-locale fallback. The bundle is returned as loaded,
// welcome and system messages are not templated.
func (c *Catalog) Mode(locale, id string) (ChatMode, error) {
	loc, err := c.lookup(locale)
	if err != nil {
		return ChatMode{}, err
	}
	if mode, ok := loc.modes[id]; ok {
		return mode, nil
	}
	if def, ok := c.locales[c.defaultLocale]; ok {
		if mode, ok := def.modes[id]; ok {
			return mode, nil
		}
	}
	return ChatMode{}, fmt.Errorf("%w: %q", ErrUnknownMode, id)
}

// Modes lists the chat mode ids available under locale, sorted. Every locale
// carries the same set.
func (c *Catalog) Modes(locale string) []string {
	loc, err := c.lookup(locale)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(loc.modes))
	for id := range loc.modes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultMode returns DefaultModeID when the catalog defines it, otherwise
// the first mode id in sorted order, otherwise "".
func (c *Catalog) DefaultMode() string {
	def, ok := c.locales[c.defaultLocale]
	if !ok {
		return ""
	}
	if _, ok := def.modes[DefaultModeID]; ok {
		return DefaultModeID
	}
	for _, id := range c.Modes(c.defaultLocale) {
		return id
	}
	return ""
}
