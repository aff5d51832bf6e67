package catalog

import (
	"errors"
	"fmt"
	"strings"

	"awsicons/internal/model"
)

// Manifest lines come from a recursive directory listing. File entries are
// marked with a leading "/" separator; unmarked lines are directory entries.
// A file entry looks like:
//
//	/Res_Compute/Amazon-EC2.png
//	/Arch_Compute/48/Arch_Amazon-EC2_48.svg
//
// The second segment is the category folder, the last segment the filename.

// Parse failure reasons. Each skipped manifest line maps to exactly one of
// these so callers (and tests) can distinguish why a line produced no entry.
var (
	ErrEmptyLine    = errors.New("empty line")
	ErrNotFileEntry = errors.New("not a file entry")
	ErrTooShallow   = errors.New("path has fewer than 3 segments")
	ErrBadFilename  = errors.New("filename missing name or format")
)

// Entry is the parsed form of a single manifest file entry.
type Entry struct {
	RelPath  string // as listed in the manifest, including the marker
	Category string
	Name     string
	Format   string
}

// ParseEntry parses one manifest line into an Entry, or reports a typed
// reason why the line does not describe an icon file.
func ParseEntry(line string) (Entry, error) {
	if line == "" {
		return Entry{}, ErrEmptyLine
	}
	if !strings.HasPrefix(line, "/") {
		// Directory entry. The manifest lists these unmarked; we only
		// extract icons from file entries.
		return Entry{}, ErrNotFileEntry
	}

	// Splitting "/Res_Compute/Amazon-EC2.png" yields ["", "Res_Compute", "Amazon-EC2.png"],
	// so a valid file entry always has at least 3 segments.
	segments := strings.Split(line, "/")
	if len(segments) < 3 {
		return Entry{}, fmt.Errorf("%q: %w", line, ErrTooShallow)
	}

	category := segments[1]
	filename := segments[len(segments)-1]

	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return Entry{}, fmt.Errorf("%q: %w", line, ErrBadFilename)
	}
	format := parts[len(parts)-1]
	name := strings.Join(parts[:len(parts)-1], ".")
	if name == "" || format == "" {
		return Entry{}, fmt.Errorf("%q: %w", line, ErrBadFilename)
	}

	return Entry{
		RelPath:  line,
		Category: category,
		Name:     name,
		Format:   format,
	}, nil
}

// Classify derives the coarse icon type from a category folder name.
// Substring checks are case-sensitive and run in a fixed order, so
// "Arch-Group-1" classifies as Architecture, not Architecture Group.
func Classify(category string) model.Classification {
	switch {
	case strings.Contains(category, "Arch"):
		return model.Architecture
	case strings.Contains(category, "Res"):
		return model.Resource
	case strings.Contains(category, "Cat"):
		return model.Category
	default:
		return model.ArchitectureGroup
	}
}
