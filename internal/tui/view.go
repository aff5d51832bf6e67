package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"awsicons/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#232F3E")). // AWS squid ink
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	toastOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("28")). // Green
			Padding(0, 1)

	toastFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("124")). // Red
			Padding(0, 1)
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Loading icon catalog... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	// Layout dimensions
	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	// Subtracting 6 for vertical margin (title, footer, borders)
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth * 3 / 5
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}

	// Interior height (excluding borders)
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	borderColor := lipgloss.Color("63")
	activeColor := lipgloss.Color("208")

	// LEFT PANEL: icon list
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("AWS Icons"))
	if m.SearchActive {
		leftView.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d match %q",
			len(m.FilteredIndices), len(m.Records), m.InputBuffer.Value())))
	} else {
		leftView.WriteString(dimStyle.Render(fmt.Sprintf("  %d icons", len(m.Records))))
	}
	leftView.WriteString("\n\n")

	if len(m.Records) == 0 {
		leftView.WriteString(dimStyle.Render("  No icons found."))
		leftView.WriteString("\n")
		leftView.WriteString(dimStyle.Render("  Check the asset directory (--dir) and its find.txt."))
		leftView.WriteString("\n")
	} else if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimStyle.Render("  No icons match the search."))
		leftView.WriteString("\n")
	}

	// Windowing Logic for Left Panel (header is 2 lines)
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)

	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		idx := m.FilteredIndices[i]
		rec := m.Records[idx]

		line := fmt.Sprintf("%4d. %s %-21s %s",
			idx+1,
			model.Glyph(rec.Classification),
			model.Truncate(rec.Name, model.MaxNameLen),
			rec.Subtitle())

		// Truncate row to panel width
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}

		if i == m.SelectedIdx {
			leftView.WriteString(selectedStyle.Render(line))
		} else {
			leftView.WriteString(normalStyle.Render(line))
		}
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: details of the selected icon
	var rightView strings.Builder
	rightView.WriteString(titleStyle.Render("Details"))
	rightView.WriteString("\n\n")

	if rec, ok := m.Selected(); ok {
		rightView.WriteString(labelStyle.Render("Name:           "))
		rightView.WriteString(rec.Name + "\n")
		rightView.WriteString(labelStyle.Render("Category:       "))
		rightView.WriteString(rec.Category + "\n")
		rightView.WriteString(labelStyle.Render("Classification: "))
		rightView.WriteString(string(rec.Classification) + "\n")
		rightView.WriteString(labelStyle.Render("Formats:        "))
		rightView.WriteString(strings.Join(rec.Formats, ", ") + "\n")
		rightView.WriteString(labelStyle.Render("File:           "))
		rightView.WriteString(rec.SourcePath + "\n")
		rightView.WriteString("\n")
		rightView.WriteString(dimStyle.Render("p: copy PNG    s: copy SVG    enter: copy first format"))
		rightView.WriteString("\n")
	} else {
		rightView.WriteString(dimStyle.Render("Nothing selected."))
		rightView.WriteString("\n")
	}

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(strings.TrimSuffix(rightView.String(), "\n"))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	// FOOTER: search input, toast, key help
	var footer strings.Builder
	if m.InputMode {
		footer.WriteString("  Search: " + m.InputBuffer.View())
	} else if m.Toast != "" {
		if m.ToastError {
			footer.WriteString("  " + toastFailStyle.Render(m.Toast))
		} else {
			footer.WriteString("  " + toastOKStyle.Render(m.Toast))
		}
	} else {
		footer.WriteString(dimStyle.Render("  ↑/↓ navigate   / search   p/s/enter copy   q quit"))
	}

	return "\n" + panels + "\n" + footer.String() + "\n"
}

// Init kicks off the one-shot catalog load.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, LoadCatalogCmd(m.AssetDir))
}
