package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrlokans/katalog/internal/exporters"
)

func (m *Model) View() string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		m.inputLine("Cari", focusSearch),
		"",
		m.inputLine("Judul", focusTitle),
		m.inputLine("Pengarang", focusAuthor),
		m.inputLine("Tahun", focusYear),
	)
	left := lipgloss.JoinVertical(lipgloss.Left,
		form,
		"",
		gridStyle.Render(m.grid.View()),
		m.columnLine(),
	)

	sections := []string{
		titleStyle.Render(m.opts.Title),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.sidePanel()),
	}
	if overlay := m.overlay(); overlay != "" {
		sections = append(sections, overlay)
	}
	sections = append(sections,
		statusStyle.Render(m.opts.StatusMessage),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) inputLine(label string, area focusArea) string {
	style := labelStyle
	if m.mode == modeBrowse && m.focus == area {
		style = focusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), m.inputAt(area).View())
}

func (m *Model) columnLine() string {
	name := exporters.CSVHeader[m.column]
	if m.mode == modeEditCell {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			focusedLabelStyle.Render(name), m.editor.View())
	}
	return statusStyle.Render("Kolom: " + name)
}

func (m *Model) sidePanel() string {
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Info"),
		fmt.Sprintf("Buku ditampilkan: %d", len(m.grid.Rows())),
		fmt.Sprintf("Kolom aktif: %s", exporters.CSVHeader[m.column]),
		fmt.Sprintf("Tempel ke: %s", m.adapter.LastFocused()),
	}
	if m.opts.DatabasePath != "" {
		lines = append(lines, "", "Database:", m.opts.DatabasePath)
	}
	lines = append(lines, "", "Kolom ID tidak bisa diubah.")
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) overlay() string {
	if m.notice != nil {
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render(m.notice.Title),
			m.notice.Text,
			statusStyle.Render("enter untuk menutup"),
		)
		return noticeStyle(m.notice.Level).Render(body)
	}
	if m.mode == modeExport {
		return promptStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			"Simpan CSV ke:",
			m.exportPath.View(),
			statusStyle.Render("enter untuk menyimpan, esc untuk batal"),
		))
	}
	return ""
}
