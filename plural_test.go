package lingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestPluralCategoryEnglish(t *testing.T) {
	en := language.English
	assert.Equal(t, CategoryOne, pluralCategory(en, 1))
	assert.Equal(t, CategoryOther, pluralCategory(en, 0))
	assert.Equal(t, CategoryOther, pluralCategory(en, 5))
	assert.Equal(t, CategoryOne, pluralCategory(en, -1))
}

func TestPluralCategoryRussian(t *testing.T) {
	ru := language.Russian
	assert.Equal(t, CategoryOne, pluralCategory(ru, 1))
	assert.Equal(t, CategoryFew, pluralCategory(ru, 3))
	assert.Equal(t, CategoryMany, pluralCategory(ru, 5))
	assert.Equal(t, CategoryMany, pluralCategory(ru, 11))
	assert.Equal(t, CategoryOne, pluralCategory(ru, 21))
	assert.Equal(t, CategoryMany, pluralCategory(ru, 0))
}

func TestResolveCountSelectsForm(t *testing.T) {
	c := loadStock(t)

	got, err := c.ResolveCount("en", KeySelectChatMode, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "Select <b>chat mode</b> (1 mode available):", got)

	got, err = c.ResolveCount("en", KeySelectChatMode, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, "Select <b>chat mode</b> (5 modes available):", got)
}

func TestResolveCountRussianForms(t *testing.T) {
	c := loadStock(t)
	for count, want := range map[int]string{
		1:  "<i>использован 1 токен</i>",
		2:  "<i>использовано 2 токена</i>",
		5:  "<i>использовано 5 токенов</i>",
		21: "<i>использован 21 токен</i>",
	} {
		got, err := c.ResolveCount("ru", KeyBalanceTokensUsed, count, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got, "count %d", count)
	}
}

func TestResolveCountFallsBackToOther(t *testing.T) {
	c, err := Load(catalogFS(map[string]string{
		"en.yml": "apples:\n  other: \"$count apples\"\n",
	}), ".")
	require.NoError(t, err)

	got, err := c.ResolveCount("en", "apples", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "1 apples", got)
}
