package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconArchitecture = "◆" // Architecture service icons
	IconResource     = "▪" // Resource icons
	IconCategory     = "▣" // Category icons
	IconArchGroup    = "◇" // Architecture group icons
	IconCopied       = "✓" // Copy succeeded
	IconFailed       = "✗" // Copy failed
	IconSearch       = "/" // Search prompt
)

// Glyph returns the list glyph for a classification.
func Glyph(c Classification) string {
	switch c {
	case Architecture:
		return IconArchitecture
	case Resource:
		return IconResource
	case Category:
		return IconCategory
	default:
		return IconArchGroup
	}
}
