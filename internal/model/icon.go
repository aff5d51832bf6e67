package model

import "strings"

// Classification is the coarse icon type inferred from the folder name.
type Classification string

const (
	Architecture      Classification = "Architecture"
	Resource          Classification = "Resource"
	Category          Classification = "Category"
	ArchitectureGroup Classification = "Architecture Group"
)

// IconRecord represents one logical icon, potentially available in
// multiple file formats (png, svg).
type IconRecord struct {
	Name           string         `json:"name"`           // Filename without extension (e.g. Amazon-EC2)
	Category       string         `json:"category"`       // Manifest folder segment (e.g. Res_Compute)
	Classification Classification `json:"classification"` // Derived from Category
	Formats        []string       `json:"formats"`        // Unique, order of first encounter
	RelPath        string         `json:"relPath"`        // Manifest-relative path of the first format's file
	SourcePath     string         `json:"sourcePath"`     // Absolute path of the first format's file
}

// HasFormat reports whether the record was observed in the given format.
func (r IconRecord) HasFormat(format string) bool {
	for _, f := range r.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Subtitle is the "classification - category" line shown under the icon name.
func (r IconRecord) Subtitle() string {
	return string(r.Classification) + " - " + r.Category
}

// MaxNameLen is the display cutoff for icon names in list cells.
const MaxNameLen = 20

// Truncate shortens s to at most max runes, ellipsis-suffixed.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
