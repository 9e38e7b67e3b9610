package lingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeLookup(t *testing.T) {
	c := loadStock(t)

	mode, err := c.Mode("en", "assistant")
	require.NoError(t, err)
	assert.Contains(t, mode.Name, "General Assistant")
	assert.Contains(t, mode.WelcomeMessage, "<b>General Assistant</b>")
	assert.NotEmpty(t, mode.SystemMessage)
	assert.Equal(t, "html", mode.ParseMode)

	mode, err = c.Mode("ru", "assistant")
	require.NoError(t, err)
	assert.Contains(t, mode.Name, "Ассистент")
}

func TestModeLocaleFallback(t *testing.T) {
	c := loadStock(t)

	enMode, err := c.Mode("en", "movie_expert")
	require.NoError(t, err)

	mode, err := c.Mode("de", "movie_expert")
	require.NoError(t, err)
	assert.Equal(t, enMode, mode)
}

func TestModeUnknown(t *testing.T) {
	c := loadStock(t)
	_, err := c.Mode("en", "therapist")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModesListing(t *testing.T) {
	c := loadStock(t)
	want := []string{"assistant", "code_assistant", "movie_expert", "text_improver"}
	for _, locale := range c.Locales() {
		assert.Equal(t, want, c.Modes(locale), "locale %s", locale)
	}
	assert.Equal(t, "assistant", c.DefaultMode())
}
