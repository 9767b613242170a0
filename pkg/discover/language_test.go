package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLanguage_IsNarrowPython(t *testing.T) {
	t.Parallel()

	lang := DefaultLanguage()

	assert.Equal(t, "Python", lang.Name)
	assert.Equal(t, []string{".py"}, lang.Extensions)
}

func TestLanguageByName_CanonicalName(t *testing.T) {
	t.Parallel()

	lang, err := LanguageByName("Go")

	require.NoError(t, err)
	assert.Equal(t, "Go", lang.Name)
	assert.Contains(t, lang.Extensions, ".go")
}

func TestLanguageByName_CaseInsensitiveAlias(t *testing.T) {
	t.Parallel()

	lang, err := LanguageByName("golang")

	require.NoError(t, err)
	assert.Equal(t, "Go", lang.Name)
}

func TestLanguageByName_PythonStaysNarrow(t *testing.T) {
	t.Parallel()

	// Linguist claims a wide extension set for Python (.pyw, .gyp, ...);
	// the tool's Python contract stays the literal .py suffix.
	lang, err := LanguageByName("python")

	require.NoError(t, err)
	assert.Equal(t, DefaultLanguage(), lang)
}

func TestLanguageByName_Unknown(t *testing.T) {
	t.Parallel()

	_, err := LanguageByName("definitely-not-a-language")

	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestLanguageByName_JavaScript(t *testing.T) {
	t.Parallel()

	lang, err := LanguageByName("js")

	require.NoError(t, err)
	assert.Equal(t, "JavaScript", lang.Name)
	assert.Contains(t, lang.Extensions, ".js")
}
