package lingo

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// chatModesSection is the reserved top-level key holding persona definitions,
// it is never a message key.
const chatModesSection = "chat_modes"

// message is one catalog entry: either a plain template or a set of plural
// variants keyed by CLDR category.
type message struct {
	text   string
	plural map[string]string
}

func (m *message) isPlural() bool { return m.plural != nil }

// ChatMode is a named persona bundle. Its fields are opaque text to the
// engine, SystemMessage in particular is handed to the caller verbatim.
type ChatMode struct {
	Name           string `yaml:"name"`
	WelcomeMessage string `yaml:"welcome_message"`
	SystemMessage  string `yaml:"system_message"`
	ParseMode      string `yaml:"parse_mode"`
}

type localeData struct {
	tag      language.Tag
	messages map[string]*message
	modes    map[string]ChatMode
}

// Catalog is an immutable locale → key → template mapping. Once built by
// Load it is safe for concurrent readers without locking.
type Catalog struct {
	defaultLocale string
	locales       map[string]*localeData
	tags          []language.Tag // default locale first, rest sorted
	matcher       language.Matcher
}

type loadOptions struct {
	defaultLocale string
	registry      *Registry
}

// Option tweaks catalog loading.
type Option func(*loadOptions)

// WithDefaultLocale sets the locale every lookup falls back to. The catalog
// must contain a file for it. Defaults to "en".
func WithDefaultLocale(name string) Option {
	return func(o *loadOptions) { o.defaultLocale = name }
}

// WithRegistry makes Load reject message keys outside reg, catching typos in
// catalog files at startup instead of at first lookup.
func WithRegistry(reg *Registry) Option {
	return func(o *loadOptions) { o.registry = reg }
}

// Load reads every <locale>.yml file under dir in fsys and builds a Catalog.
// Any malformed template, plural set without an "other" category, placeholder
// mismatch between plural variants, or key-set divergence between locales is
// a fatal load error.
func Load(fsys fs.FS, dir string, opts ...Option) (*Catalog, error) {
	options := loadOptions{defaultLocale: "en"}
	for _, opt := range opts {
		opt(&options)
	}
	defaultTag, err := parseTag(options.defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("bad default locale %q: %w", options.defaultLocale, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	c := &Catalog{
		defaultLocale: defaultTag.String(),
		locales:       map[string]*localeData{},
	}
	for _, entry := range entries {
		name := entry.Name()
		ext := path.Ext(name)
		if entry.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}
		tag, err := parseTag(strings.TrimSuffix(name, ext))
		if err != nil {
			return nil, fmt.Errorf("%s: bad locale name: %w", name, err)
		}
		src, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		loc, err := parseLocale(tag, src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if err := validateLocale(loc, options.registry); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		c.locales[tag.String()] = loc
	}

	def, ok := c.locales[c.defaultLocale]
	if !ok {
		return nil, fmt.Errorf("default locale %q has no catalog file", c.defaultLocale)
	}
	for name, loc := range c.locales {
		if name == c.defaultLocale {
			continue
		}
		if err := sameShape(def, loc); err != nil {
			return nil, fmt.Errorf("locale %q diverges from %q: %w", name, c.defaultLocale, err)
		}
	}

	c.tags = append(c.tags, defaultTag)
	rest := make([]language.Tag, 0, len(c.locales))
	for name, loc := range c.locales {
		if name != c.defaultLocale {
			rest = append(rest, loc.tag)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	c.tags = append(c.tags, rest...)
	c.matcher = language.NewMatcher(c.tags)

	log.WithFields(log.Fields{
		"locales": len(c.locales),
		"keys":    len(def.messages),
		"modes":   len(def.modes),
	}).Traceln("catalog loaded")
	return c, nil
}

// Locales lists the loaded locales as canonical BCP 47 strings, sorted.
func (c *Catalog) Locales() []string {
	names := make([]string, 0, len(c.locales))
	for name := range c.locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultLocale returns the locale every lookup falls back to.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Keys lists the message keys of the default locale, sorted. Every locale
// carries the same set.
func (c *Catalog) Keys() []string {
	def := c.locales[c.defaultLocale]
	keys := make([]string, 0, len(def.messages))
	for key := range def.messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Dump serializes one locale's templates and chat modes back to YAML. The
// locale must be present in the catalog, no fallback applies.
func (c *Catalog) Dump(name string) ([]byte, error) {
	tag, err := parseTag(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	loc, ok := c.locales[tag.String()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
	}
	doc := make(map[string]any, len(loc.messages)+1)
	for key, msg := range loc.messages {
		if msg.isPlural() {
			forms := make(map[string]string, len(msg.plural))
			for category, text := range msg.plural {
				forms[category] = text
			}
			doc[key] = forms
			continue
		}
		doc[key] = msg.text
	}
	if len(loc.modes) > 0 {
		doc[chatModesSection] = loc.modes
	}
	return yaml.Marshal(doc)
}

// lookup resolves a requested locale name to loaded catalog data: exact
// match first, then BCP 47 matching (so "en-US" finds "en"), then the
// default locale.
func (c *Catalog) lookup(name string) (*localeData, error) {
	if loc, ok := c.locales[name]; ok {
		return loc, nil
	}
	if tag, err := parseTag(name); err == nil {
		if loc, ok := c.locales[tag.String()]; ok {
			return loc, nil
		}
		if _, idx, conf := c.matcher.Match(tag); conf > language.No {
			if loc, ok := c.locales[c.tags[idx].String()]; ok {
				return loc, nil
			}
		}
	}
	if loc, ok := c.locales[c.defaultLocale]; ok {
		return loc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
}

func parseTag(name string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(name, "_", "-"))
}

func parseLocale(tag language.Tag, src []byte) (*localeData, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("malformed catalog: %w", err)
	}
	loc := &localeData{
		tag:      tag,
		messages: make(map[string]*message, len(doc)),
		modes:    map[string]ChatMode{},
	}
	for key, node := range doc {
		node := node
		if key == chatModesSection {
			if err := node.Decode(&loc.modes); err != nil {
				return nil, fmt.Errorf("%s: %w", chatModesSection, err)
			}
			continue
		}
		switch node.Kind {
		case yaml.ScalarNode:
			var text string
			if err := node.Decode(&text); err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			loc.messages[key] = &message{text: text}
		case yaml.MappingNode:
			var forms map[string]string
			if err := node.Decode(&forms); err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			loc.messages[key] = &message{plural: forms}
		default:
			return nil, fmt.Errorf("key %q: template must be a string or a plural mapping", key)
		}
	}
	return loc, nil
}

func validateLocale(loc *localeData, reg *Registry) error {
	for key, msg := range loc.messages {
		if reg != nil && !reg.Known(key) {
			return fmt.Errorf("key %q is not registered, either a typo or a missing registry entry", key)
		}
		if !msg.isPlural() {
			continue
		}
		other, ok := msg.plural[CategoryOther]
		if !ok {
			return fmt.Errorf("key %q: plural template has no %q category", key, CategoryOther)
		}
		want := placeholders(other)
		for category, text := range msg.plural {
			if _, ok := knownCategories[category]; !ok {
				return fmt.Errorf("key %q: unknown plural category %q", key, category)
			}
			if got := placeholders(text); !equalStrings(got, want) {
				return fmt.Errorf("key %q: plural category %q placeholders %v differ from %q placeholders %v",
					key, category, got, CategoryOther, want)
			}
		}
	}
	for id, mode := range loc.modes {
		switch {
		case mode.Name == "":
			return fmt.Errorf("chat mode %q: missing name", id)
		case mode.WelcomeMessage == "":
			return fmt.Errorf("chat mode %q: missing welcome_message", id)
		case mode.SystemMessage == "":
			return fmt.Errorf("chat mode %q: missing system_message", id)
		case mode.ParseMode == "":
			return fmt.Errorf("chat mode %q: missing parse_mode", id)
		}
	}
	return nil
}

// sameShape checks the completeness invariant: loc must define exactly the
// message keys and chat mode ids of the reference locale.
func sameShape(ref, loc *localeData) error {
	for key := range ref.messages {
		if _, ok := loc.messages[key]; !ok {
			return fmt.Errorf("missing key %q", key)
		}
	}
	for key := range loc.messages {
		if _, ok := ref.messages[key]; !ok {
			return fmt.Errorf("extra key %q", key)
		}
	}
	for id := range ref.modes {
		if _, ok := loc.modes[id]; !ok {
			return fmt.Errorf("missing chat mode %q", id)
		}
	}
	for id := range loc.modes {
		if _, ok := ref.modes[id]; !ok {
			return fmt.Errorf("extra chat mode %q", id)
		}
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
