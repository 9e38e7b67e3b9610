// Package html helps callers honor the engine's contract for parse_mode=html
// templates: the resolver substitutes variable values verbatim, so
// user-supplied values must be escaped or sanitized before they go in.
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamwavecut/tool"
	"golang.org/x/net/html"
)

// AllowedTelegramTags are the tags Telegram accepts in HTML parse mode.
var AllowedTelegramTags = []string{
	"b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "a", "code", "pre",
}

// Escape escapes the HTML special characters in s.
func Escape(s string) string {
	return html.EscapeString(s)
}

// EscapeVars returns a copy of vars with every string value escaped.
// Non-string values pass through, numbers cannot carry markup.
func EscapeVars(vars map[string]any) map[string]any {
	out := make(map[string]any, len(vars))
	for name, val := range vars {
		if s, ok := val.(string); ok {
			out[name] = html.EscapeString(s)
			continue
		}
		out[name] = val
	}
	return out
}

// Sanitize escapes everything in input except the allowed tags, which are
// kept as markup. Disallowed tags come out as visible &lt;tag&gt; text.
func Sanitize(input string, allowedTags []string) (string, error) {
	var output strings.Builder

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	for {
		tokenType := tokenizer.Next()
		token := tokenizer.Token()

		switch tokenType {
		case html.ErrorToken: // End of the document
			if tokenizer.Err() != io.EOF {
				return output.String(), tokenizer.Err()
			}
			return output.String(), nil
		case html.TextToken:
			output.WriteString(html.EscapeString(token.Data))
		case html.StartTagToken, html.EndTagToken:
			if tool.In(token.Data, allowedTags) {
				tag := token.String()
				tag = strings.ReplaceAll(tag, "&", "&amp;")
				output.WriteString(tag)
			} else {
				tag := token.Data
				if tokenType == html.EndTagToken {
					tag = "/" + tag
				}
				output.WriteString(fmt.Sprintf("&lt;%s&gt;", tag))
			}
		}
	}
}
