package textinput

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// ErrCanceled reports that the user dismissed the file dialog.
var ErrCanceled = errors.New("textinput: selection canceled")

// PickFile opens a native file dialog for choosing the input text.
func PickFile() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Select your text file"),
		zenity.FileFilters{
			{Name: "Text files", Patterns: []string{"*.txt"}, CaseFold: true},
			{Name: "All files", Patterns: []string{"*"}},
		})
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCanceled
	}
	if err != nil {
		return "", fmt.Errorf("textinput: file dialog: %w", err)
	}

	return path, nil
}
