package tui

import (
	"awsicons/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	AssetDir string
	Records  []model.IconRecord
	Loading  bool
	Err      error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Records to show
	SearchActive    bool

	// Toast State (copy action feedback)
	Toast      string
	ToastError bool
	toastSeq   int // Guards against a stale clear tick wiping a newer toast
}

// InitialModel returns the initial state.
func InitialModel(assetDir string) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Icon name..."
	ti.CharLimit = 50
	ti.Width = 24

	return AppModel{
		AssetDir:    assetDir,
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// Selected returns the record under the cursor, if any.
func (m AppModel) Selected() (model.IconRecord, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return model.IconRecord{}, false
	}
	return m.Records[m.FilteredIndices[m.SelectedIdx]], true
}
