// Package assets bundles the default AWS icon set into the binary.
//
// The icons and their find.txt manifest are embedded at compile time so every
// distribution channel works without network access or extra files. Because
// clipboard copy hands the OS a real file path, the embedded set is
// materialized under the user cache directory on first use.
package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"awsicons/internal/model"
)

//go:embed all:aws
var bundled embed.FS

// Dir returns the default on-disk asset directory, extracting the embedded
// icon set if it is not already there. The directory is versioned so an
// upgraded binary refreshes the assets.
func Dir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cache, "awsicons", model.Version)
	if err := Extract(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// Extract writes the embedded asset tree under dir. Files already present
// are left untouched.
func Extract(dir string) error {
	return fs.WalkDir(bundled, "aws", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(path, "aws")
		target := filepath.Join(dir, filepath.FromSlash(rel))

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if _, err := os.Stat(target); err == nil {
			return nil
		}
		data, err := bundled.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
