package textinput

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ReadFile loads a text file as UTF-8. Files that are not valid UTF-8 are
// reinterpreted as Latin-1, which maps every byte to a rune and so never
// fails.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("textinput: read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		decoded, derr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if derr != nil {
			return "", fmt.Errorf("textinput: decode %s: %w", path, derr)
		}
		return string(decoded), nil
	}

	return string(data), nil
}
