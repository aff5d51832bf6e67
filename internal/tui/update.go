package tui

import (
	"fmt"
	"strings"
	"time"

	"awsicons/internal/catalog"
	"awsicons/internal/clipboard"
	"awsicons/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgCatalogReady indicates that the catalog load has completed.
type MsgCatalogReady []model.IconRecord

// MsgCopyResult carries the outcome of a clipboard copy action.
type MsgCopyResult struct {
	Text   string
	Failed bool
}

// msgClearToast expires the toast created with the matching sequence number.
type msgClearToast int

const toastDuration = 3 * time.Second

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgCatalogReady:
		m.Loading = false
		m.Records = []model.IconRecord(msg)
		// Auto-populate filtered indices with all
		m.FilteredIndices = make([]int, len(m.Records))
		for i := range m.Records {
			m.FilteredIndices[i] = i
		}
		m.SelectedIdx = 0
		return m, nil

	case MsgCopyResult:
		m.Toast = msg.Text
		m.ToastError = msg.Failed
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return msgClearToast(seq)
		})

	case msgClearToast:
		if int(msg) == m.toastSeq {
			m.Toast = ""
			m.ToastError = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				// Exit search mode and clear search
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch() // Reset filter to all
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			// Live filtering while typing
			m.performSearch()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "pgup":
			m.SelectedIdx -= 10
			if m.SelectedIdx < 0 {
				m.SelectedIdx = 0
			}
		case "pgdown":
			m.SelectedIdx += 10
			if m.SelectedIdx > len(m.FilteredIndices)-1 {
				m.SelectedIdx = len(m.FilteredIndices) - 1
			}
			if m.SelectedIdx < 0 {
				m.SelectedIdx = 0
			}
		case "home", "g":
			m.SelectedIdx = 0
		case "end", "G":
			if len(m.FilteredIndices) > 0 {
				m.SelectedIdx = len(m.FilteredIndices) - 1
			}
		case "p":
			if rec, ok := m.Selected(); ok {
				return m, CopyIconCmd(rec, "png")
			}
		case "s":
			if rec, ok := m.Selected(); ok {
				return m, CopyIconCmd(rec, "svg")
			}
		case "enter":
			if rec, ok := m.Selected(); ok && len(rec.Formats) > 0 {
				return m, CopyIconCmd(rec, rec.Formats[0])
			}
		case "/", "w":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func (m *AppModel) performSearch() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.SearchActive = false
		m.FilteredIndices = make([]int, len(m.Records))
		for i := range m.Records {
			m.FilteredIndices[i] = i
		}
	} else {
		m.SearchActive = true
		var result []int
		for i, rec := range m.Records {
			haystack := strings.ToLower(rec.Name + " " + rec.Category + " " + string(rec.Classification))
			if strings.Contains(haystack, term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// LoadCatalogCmd loads the icon catalog in the background. It runs once per
// session; the loader itself never fails, so there is no error message.
func LoadCatalogCmd(assetDir string) tea.Cmd {
	return func() tea.Msg {
		return MsgCatalogReady(catalog.Load(assetDir))
	}
}

// CopyIconCmd copies the record's file in the given format to the system
// clipboard and reports the outcome as a single toast.
func CopyIconCmd(rec model.IconRecord, format string) tea.Cmd {
	return func() tea.Msg {
		if !rec.HasFormat(format) {
			return MsgCopyResult{
				Text:   fmt.Sprintf("%s %s has no %s file", model.IconFailed, rec.Name, format),
				Failed: true,
			}
		}
		if err := clipboard.CopyFile(catalog.ResolvePath(rec, format)); err != nil {
			return MsgCopyResult{
				Text:   fmt.Sprintf("%s Copy failed: %v", model.IconFailed, err),
				Failed: true,
			}
		}
		return MsgCopyResult{
			Text: fmt.Sprintf("%s Copied %s (%s) to clipboard", model.IconCopied, rec.Name, format),
		}
	}
}
