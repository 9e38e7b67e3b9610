package lingo

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Vars maps placeholder names to substitution values. Values are rendered
// with stringify, so strings and numbers come out the obvious way.
type Vars map[string]any

// expand substitutes $name and ${name} tokens in text with values from vars.
// "$$" produces a literal dollar sign, a dollar sign that starts no valid
// token is kept verbatim. A token with no matching variable fails with
// ErrMissingVariable.
func expand(text string, vars Vars) (string, error) {
	if !strings.Contains(text, "$") {
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '$' {
			b.WriteByte(text[i])
			i++
			continue
		}
		name, width := scanToken(text, i)
		if name == "" {
			b.WriteByte('$')
			i += width
			continue
		}
		val, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("%w: $%s", ErrMissingVariable, name)
		}
		b.WriteString(stringify(val))
		i += width
	}
	return b.String(), nil
}

// placeholders returns the sorted set of placeholder names found in text.
func placeholders(text string) []string {
	seen := map[string]struct{}{}
	for i := 0; i < len(text); {
		if text[i] != '$' {
			i++
			continue
		}
		name, width := scanToken(text, i)
		if name != "" {
			seen[name] = struct{}{}
		}
		i += width
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scanToken reads a placeholder starting at the '$' at text[i]. It returns
// the placeholder name and the total token width in bytes. An empty name
// with width 2 is an escaped "$$", with width 1 a plain dollar sign.
func scanToken(text string, i int) (string, int) {
	if i+1 >= len(text) {
		return "", 1
	}
	switch c := text[i+1]; {
	case c == '$':
		return "", 2
	case c == '{':
		end := strings.IndexByte(text[i+2:], '}')
		if end < 0 || !validName(text[i+2:i+2+end]) {
			return "", 1
		}
		return text[i+2 : i+2+end], end + 3
	case isNameStart(c):
		j := i + 2
		for j < len(text) && isNameByte(text[j]) {
			j++
		}
		return text[i+1 : j], j - i
	}
	return "", 1
}

func validName(name string) bool {
	if name == "" || !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return false
		}
	}
	return true
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
