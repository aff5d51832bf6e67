// Package clipboard puts an icon file reference on the system clipboard.
//
// File references need platform commands (Finder/Explorer style paste), so
// each OS shells out to its native tool. If that fails, the absolute path is
// copied as plain text instead, which still pastes into terminals and docs.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
)

// ErrFileNotFound reports that the file to copy does not exist on disk.
var ErrFileNotFound = errors.New("file not found")

// CopyFile places a reference to path on the system clipboard. The file must
// exist; a missing file fails immediately with ErrFileNotFound, no retry.
func CopyFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, abs)
	}

	if err := copyFileRef(abs); err != nil {
		// Text fallback: at least put the path where the user can paste it.
		if werr := clipboard.WriteAll(abs); werr != nil {
			return fmt.Errorf("clipboard copy failed: %w", err)
		}
	}
	return nil
}

// CopyText copies plain text to the system clipboard.
func CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}
