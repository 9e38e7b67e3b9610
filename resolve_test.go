package lingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticVars binds every placeholder of msg to a dummy value.
func syntheticVars(msg *message) Vars {
	vars := Vars{}
	bind := func(text string) {
		for _, name := range placeholders(text) {
			vars[name] = "x"
		}
	}
	if msg.isPlural() {
		for _, text := range msg.plural {
			bind(text)
		}
		return vars
	}
	bind(msg.text)
	return vars
}

func TestResolveEveryDefaultLocaleKey(t *testing.T) {
	c := loadStock(t)
	for key, msg := range c.locales[c.DefaultLocale()].messages {
		var (
			got string
			err error
		)
		if msg.isPlural() {
			got, err = c.ResolveCount("en", key, 2, syntheticVars(msg))
		} else {
			got, err = c.Resolve("en", key, syntheticVars(msg))
		}
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, got, "key %s", key)
	}
}

func TestResolveSubstitutesVariables(t *testing.T) {
	c, err := Load(catalogFS(map[string]string{"en.yml": `tokens_left: "$count tokens"` + "\n"}), ".")
	require.NoError(t, err)

	got, err := c.Resolve("en", "tokens_left", Vars{"count": 42})
	require.NoError(t, err)
	assert.Equal(t, "42 tokens", got)
}

func TestResolveMissingVariableFails(t *testing.T) {
	c, err := Load(catalogFS(map[string]string{"en.yml": `tokens_left: "$count tokens"` + "\n"}), ".")
	require.NoError(t, err)

	_, err = c.Resolve("en", "tokens_left", Vars{})
	require.ErrorIs(t, err, ErrMissingVariable)
	assert.Contains(t, err.Error(), "$count")
}

func TestResolveUnknownKey(t *testing.T) {
	c := loadStock(t)
	_, err := c.Resolve("en", "no_such_key", nil)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestResolvePluralTemplateNeedsCount(t *testing.T) {
	c := loadStock(t)
	_, err := c.Resolve("en", KeySelectChatMode, nil)
	assert.ErrorIs(t, err, ErrInvalidPluralCategory)
}

func TestResolveLocaleFallback(t *testing.T) {
	c := loadStock(t)

	enText, err := c.Resolve("en", KeyDialogCancelled, nil)
	require.NoError(t, err)

	// Unsupported locale falls back to the default one.
	got, err := c.Resolve("de", KeyDialogCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, enText, got)

	got, err = c.Resolve("", KeyDialogCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, enText, got)

	// Regional variants match their base language.
	got, err = c.Resolve("ru_RU", KeyDialogCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, "✅ Отменено", got)

	got, err = c.Resolve("en-US", KeyDialogCancelled, nil)
	require.NoError(t, err)
	assert.Equal(t, enText, got)
}

func TestResolveEscapedDollar(t *testing.T) {
	c := loadStock(t)
	got, err := c.Resolve("en", KeyBalanceYouSpent, Vars{"amount": 9.25})
	require.NoError(t, err)
	assert.Equal(t, "You spent <b>$9.25</b>", got)
}

func TestResolveKeepsHTMLVerbatim(t *testing.T) {
	c := loadStock(t)
	got, err := c.Resolve("en", KeyWaitForReply, nil)
	require.NoError(t, err)
	assert.Contains(t, got, "<b>wait</b>")
}

func TestResolveCountInjectsCount(t *testing.T) {
	c := loadStock(t)

	got, err := c.ResolveCount("en", KeyBalanceTokensUsed, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "<i>1 token used</i>", got)

	got, err = c.ResolveCount("en", KeyBalanceTokensUsed, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, "<i>5 tokens used</i>", got)
}

func TestResolveCountExplicitCountWins(t *testing.T) {
	c, err := Load(catalogFS(map[string]string{
		"en.yml": "apples:\n  one: \"$count apple\"\n  other: \"$count apples\"\n",
	}), ".")
	require.NoError(t, err)

	got, err := c.ResolveCount("en", "apples", 5, Vars{"count": "five"})
	require.NoError(t, err)
	assert.Equal(t, "five apples", got)
}

func TestResolveCountOnPlainTemplate(t *testing.T) {
	c, err := Load(catalogFS(map[string]string{"en.yml": `tokens_left: "$count tokens"` + "\n"}), ".")
	require.NoError(t, err)

	got, err := c.ResolveCount("en", "tokens_left", 7, nil)
	require.NoError(t, err)
	assert.Equal(t, "7 tokens", got)
}

func TestExpandTokenForms(t *testing.T) {
	for _, tc := range []struct {
		text string
		vars Vars
		want string
	}{
		{"$name!", Vars{"name": "Ada"}, "Ada!"},
		{"${name}s", Vars{"name": "Ada"}, "Adas"},
		{"100$$", nil, "100$"},
		{"1 $ 2", nil, "1 $ 2"},
		{"${!}", nil, "${!}"},
		{"$count/$total", Vars{"count": 3, "total": int64(10)}, "3/10"},
	} {
		got, err := expand(tc.text, tc.vars)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, got, tc.text)
	}
}
