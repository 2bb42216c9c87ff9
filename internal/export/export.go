// Package export turns a theme into the artifacts users hand to the
// mpro5 team: the JSON theme file and a prefilled contact email.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	appErrors "github.com/balkashynov/themegen/internal/errors"
	"github.com/balkashynov/themegen/internal/theme"
)

// DefaultFileName is the name of the downloaded theme file.
const DefaultFileName = "custom-theme.json"

// JSON renders the theme as 2-space indented JSON with a trailing newline.
func JSON(c theme.Colors) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return nil, appErrors.New(appErrors.CodeExportFailed, "failed to encode theme", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes the JSON artifact to path, creating parent directories.
func WriteFile(path string, c theme.Colors) error {
	if path == "" {
		path = DefaultFileName
	}
	data, err := JSON(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		//nolint:gosec // G301: export directory chosen by the user
		if err := os.MkdirAll(dir, 0755); err != nil {
			return appErrors.New(appErrors.CodeExportFailed, fmt.Sprintf("failed to create %s", dir), err)
		}
	}
	//nolint:gosec // G306: exported theme is meant to be shared
	if err := os.WriteFile(path, data, 0644); err != nil {
		return appErrors.New(appErrors.CodeExportFailed, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// CopyToClipboard puts text on the system clipboard.
func CopyToClipboard(text string) error {
	if err := clipboardWrite(text); err != nil {
		return appErrors.New(appErrors.CodeExportFailed, "failed to copy to clipboard", err)
	}
	return nil
}
