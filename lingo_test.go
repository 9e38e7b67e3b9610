package lingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLang(t *testing.T) {
	assert.Equal(t, "en", normalizeLang("en"))
	assert.Equal(t, "ru", normalizeLang("ru_RU.UTF-8"))
	assert.Equal(t, "pt", normalizeLang("pt-BR"))
	assert.Equal(t, "en", normalizeLang("C"))
	assert.Equal(t, "en", normalizeLang("POSIX"))
	assert.Equal(t, "en", normalizeLang(""))
}

func TestDefaultStore(t *testing.T) {
	s := Default()
	require.NotNil(t, s)
	assert.Same(t, s, Default())

	c := s.Catalog()
	require.NotNil(t, c)
	got, err := c.Resolve(c.DefaultLocale(), KeyStartingNewDialog, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
