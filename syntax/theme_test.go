package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "keyword", Keyword.String())
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "other", Category(99).String())
}

func TestTags_ExcludesPlain(t *testing.T) {
	tags := Tags()
	assert.NotContains(t, tags, "plain")
	assert.Contains(t, tags, "keyword")
	assert.Len(t, tags, len(Highlighted()))
}

func TestDefaultTheme_TagStyles(t *testing.T) {
	styles := DefaultTheme().TagStyles()
	for _, tag := range []string{"keyword", "comment", "string", "number"} {
		_, ok := styles[tag]
		assert.True(t, ok, "missing style for %s", tag)
	}
}

func TestThemeFromChroma(t *testing.T) {
	theme, ok := ThemeFromChroma("monokai")
	require.True(t, ok)
	_, hasKeyword := theme[Keyword]
	assert.True(t, hasKeyword)

	_, ok = ThemeFromChroma("not-a-style")
	assert.False(t, ok)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, LanguagePython, DetectLanguage("", nil))
	assert.Equal(t, LanguagePython, DetectLanguage("/tmp/app.py", []byte("print(1)\n")))
	assert.Equal(t, LanguagePython, DetectLanguage("script", []byte("#!/usr/bin/env python3\nprint(1)\n")))
	assert.NotEqual(t, LanguagePython, DetectLanguage("main.go", []byte("package main\n")))

	assert.True(t, Highlightable(LanguagePython))
	assert.False(t, Highlightable("Go"))
}
