package discover

import (
	"errors"
	"fmt"

	"github.com/src-d/enry/v2"
)

// ErrUnknownLanguage is returned when a language name cannot be resolved
// against the linguist data shipped with enry.
var ErrUnknownLanguage = errors.New("unknown language")

// Language pairs a display name with the file suffixes it claims.
type Language struct {
	Name       string
	Extensions []string
}

// DefaultLanguage returns Python with the bare .py suffix. The default
// never consults linguist data: the tool's contract for Python is the
// literal .py extension, nothing wider.
func DefaultLanguage() Language {
	return Language{Name: "Python", Extensions: []string{".py"}}
}

// LanguageByName resolves a language name or alias, case-insensitively,
// to its canonical name and extension set. Python keeps the narrow
// DefaultLanguage suffix set rather than the full linguist one.
func LanguageByName(name string) (Language, error) {
	canonical, ok := enry.GetLanguageByAlias(name)
	if !ok {
		return Language{}, fmt.Errorf("%w: %s", ErrUnknownLanguage, name)
	}

	if canonical == DefaultLanguage().Name {
		return DefaultLanguage(), nil
	}

	extensions := enry.GetLanguageExtensions(canonical)
	if len(extensions) == 0 {
		return Language{}, fmt.Errorf("%w: %s has no file extensions", ErrUnknownLanguage, canonical)
	}

	return Language{Name: canonical, Extensions: extensions}, nil
}
