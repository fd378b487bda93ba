package tui

import (
	"errors"

	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard as the editor uses it.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

var errNoClipboard = errors.New("clipboard unavailable (install xclip, xsel, or wl-clipboard)")

type systemClipboard struct{}

// SystemClipboard returns the OS clipboard.
func SystemClipboard() Clipboard { return systemClipboard{} }

func (systemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errNoClipboard
	}
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}
