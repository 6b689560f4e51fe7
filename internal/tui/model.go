// Package tui is the terminal window of the catalogue: an entry form, a
// search box and an editable grid of books, driven by presenter.Adapter.
package tui

import (
	"log"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/entities"
	"github.com/mrlokans/katalog/internal/exporters"
	"github.com/mrlokans/katalog/internal/presenter"
)

const defaultExportName = "buku.csv"

type focusArea int

const (
	focusSearch focusArea = iota
	focusTitle
	focusAuthor
	focusYear
	focusGrid
	focusCount
)

type mode int

const (
	modeBrowse mode = iota
	modeEditCell
	modeExport
)

type Options struct {
	Title         string
	StatusMessage string
	DatabasePath  string
	// ReadClipboard defaults to the system clipboard.
	ReadClipboard func() (string, error)
}

// Model is the Bubble Tea model of the window. It is also the presenter.View
// the adapter pushes rows and notices into, so it must be used by pointer.
type Model struct {
	adapter *presenter.Adapter
	opts    Options
	keys    keyMap
	help    help.Model

	search textinput.Model
	title  textinput.Model
	author textinput.Model
	year   textinput.Model
	grid   table.Model

	// column is the grid column enter edits, 1..3.
	column     int
	editor     textinput.Model
	editRow    int
	editCol    int
	exportPath textinput.Model

	focus  focusArea
	mode   mode
	notice *presenter.Notice
}

var _ tea.Model = (*Model)(nil)

// New builds the window and loads every book into the grid.
func New(store presenter.Catalog, opts Options) *Model {
	if opts.Title == "" {
		opts.Title = config.DefaultWindowTitle
	}
	if opts.StatusMessage == "" {
		opts.StatusMessage = config.DefaultStatusMessage
	}
	if opts.ReadClipboard == nil {
		opts.ReadClipboard = clipboard.ReadAll
	}

	m := &Model{
		opts:       opts,
		keys:       defaultKeyMap(),
		help:       help.New(),
		search:     newInput("ketik judul untuk mencari"),
		title:      newInput("judul buku"),
		author:     newInput("nama pengarang"),
		year:       newInput("contoh: 1980"),
		editor:     newInput(""),
		exportPath: newInput("path file csv"),
		column:     1,
		grid: table.New(
			table.WithColumns(gridColumns()),
			table.WithHeight(12),
			table.WithStyles(gridStyles()),
		),
	}
	m.adapter = presenter.NewAdapter(store, m)
	m.focusCurrent()
	m.adapter.Load()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.Width = 40
	return ti
}

func gridColumns() []table.Column {
	widths := []int{5, 32, 24, 6}
	columns := make([]table.Column, len(exporters.CSVHeader))
	for i, title := range exporters.CSVHeader {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}
	return columns
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		// A notice behaves like a modal dialog.
		if m.notice != nil {
			if key.Matches(msg, m.keys.Edit, m.keys.Dismiss) {
				m.notice = nil
			}
			return m, nil
		}
		switch m.mode {
		case modeEditCell:
			return m, m.updateEditor(msg)
		case modeExport:
			return m, m.updateExportPrompt(msg)
		}
		return m, m.updateBrowse(msg)
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Save):
		m.adapter.OnSave(m.title.Value(), m.author.Value(), m.year.Value())
		return nil
	case key.Matches(msg, m.keys.Delete):
		m.adapter.OnDeleteRequested(m.selectedRow())
		return nil
	case key.Matches(msg, m.keys.Paste):
		m.paste()
		return nil
	case key.Matches(msg, m.keys.Export):
		return m.openExportPrompt()
	}

	if m.focus == focusGrid {
		return m.updateGrid(msg)
	}
	return m.updateFocused(msg)
}

func (m *Model) updateGrid(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.column > 1 {
			m.column--
		}
		return nil
	case key.Matches(msg, m.keys.Right):
		if m.column < len(catalog.Columns)-1 {
			m.column++
		}
		return nil
	case key.Matches(msg, m.keys.Edit):
		return m.startCellEdit()
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return cmd
}

// updateFocused forwards msg to the focused text field. Any change of the
// search text re-filters the grid.
func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	if m.focus == focusGrid {
		return nil
	}

	input := m.inputAt(m.focus)
	before := input.Value()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)

	if m.focus == focusSearch && input.Value() != before {
		m.adapter.OnSearchTextChanged(input.Value())
	}
	return cmd
}

func (m *Model) startCellEdit() tea.Cmd {
	rows := m.grid.Rows()
	if len(rows) == 0 {
		return nil
	}
	m.editRow = m.grid.Cursor()
	m.editCol = m.column
	m.editor.SetValue(rows[m.editRow][m.editCol])
	m.editor.CursorEnd()
	m.mode = modeEditCell
	m.grid.Blur()
	return m.editor.Focus()
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.commitCellEdit()
		return nil
	case key.Matches(msg, m.keys.Dismiss):
		m.closeEditor()
		return nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return cmd
}

// commitCellEdit writes the edited text into the grid first, the way an
// editable table cell changes before it notifies, then hands it to the adapter.
func (m *Model) commitCellEdit() {
	text := m.editor.Value()
	row, col := m.editRow, m.editCol
	m.closeEditor()

	rows := m.grid.Rows()
	if row < 0 || row >= len(rows) {
		return
	}
	rows[row][col] = text
	m.grid.SetRows(rows)

	m.adapter.OnCellEdited(row, col, text)
}

func (m *Model) closeEditor() {
	m.editor.Blur()
	m.editor.Reset()
	m.mode = modeBrowse
	m.focusCurrent()
}

func (m *Model) openExportPrompt() tea.Cmd {
	m.mode = modeExport
	m.blurAll()
	m.exportPath.SetValue(defaultExportName)
	m.exportPath.CursorEnd()
	return m.exportPath.Focus()
}

func (m *Model) updateExportPrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Edit):
		path := strings.TrimSpace(m.exportPath.Value())
		m.closeExportPrompt()
		m.adapter.OnExportRequested(path)
		return nil
	case key.Matches(msg, m.keys.Dismiss):
		m.closeExportPrompt()
		m.adapter.OnExportRequested("")
		return nil
	}

	var cmd tea.Cmd
	m.exportPath, cmd = m.exportPath.Update(msg)
	return cmd
}

func (m *Model) closeExportPrompt() {
	m.exportPath.Blur()
	m.exportPath.Reset()
	m.mode = modeBrowse
	m.focusCurrent()
}

func (m *Model) paste() {
	text, err := m.opts.ReadClipboard()
	if err != nil {
		log.Printf("Failed to read clipboard: %v", err)
		m.Notify(presenter.Notice{Level: presenter.LevelError, Title: "Clipboard", Text: err.Error()})
		return
	}
	m.adapter.OnPasteRequested(text)
}

// setFocus moves focus to area and reports entry fields to the adapter.
func (m *Model) setFocus(area focusArea) tea.Cmd {
	m.focus = area
	cmd := m.focusCurrent()
	if field := fieldAt(area); field != presenter.FieldNone {
		m.adapter.OnFocusGained(field)
	}
	return cmd
}

func (m *Model) focusCurrent() tea.Cmd {
	m.blurAll()
	if m.focus == focusGrid {
		m.grid.Focus()
		return nil
	}
	return m.inputAt(m.focus).Focus()
}

func (m *Model) blurAll() {
	m.search.Blur()
	m.title.Blur()
	m.author.Blur()
	m.year.Blur()
	m.grid.Blur()
}

func (m *Model) inputAt(area focusArea) *textinput.Model {
	switch area {
	case focusTitle:
		return &m.title
	case focusAuthor:
		return &m.author
	case focusYear:
		return &m.year
	default:
		return &m.search
	}
}

func fieldAt(area focusArea) presenter.Field {
	switch area {
	case focusTitle:
		return presenter.FieldTitle
	case focusAuthor:
		return presenter.FieldAuthor
	case focusYear:
		return presenter.FieldYear
	default:
		return presenter.FieldNone
	}
}

func (m *Model) selectedRow() int {
	if len(m.grid.Rows()) == 0 {
		return -1
	}
	return m.grid.Cursor()
}

func (m *Model) resize(height int) {
	h := height - 18
	if h < 5 {
		h = 5
	}
	m.grid.SetHeight(h)
}

// ShowRows replaces the grid contents.
func (m *Model) ShowRows(books []entities.Book) {
	rows := make([]table.Row, 0, len(books))
	for _, b := range books {
		rows = append(rows, table.Row{
			strconv.FormatUint(uint64(b.ID), 10),
			b.Title,
			b.Author,
			strconv.Itoa(b.Year),
		})
	}
	m.grid.SetRows(rows)

	if len(rows) > 0 {
		switch c := m.grid.Cursor(); {
		case c < 0:
			m.grid.SetCursor(0)
		case c >= len(rows):
			m.grid.SetCursor(len(rows) - 1)
		}
	}
}

func (m *Model) ClearInputs() {
	m.title.Reset()
	m.author.Reset()
	m.year.Reset()
}

// InsertAtCursor splices text into field at its cursor and moves the cursor past it.
func (m *Model) InsertAtCursor(field presenter.Field, text string) {
	var input *textinput.Model
	switch field {
	case presenter.FieldTitle:
		input = &m.title
	case presenter.FieldAuthor:
		input = &m.author
	case presenter.FieldYear:
		input = &m.year
	default:
		return
	}

	value := []rune(input.Value())
	pos := input.Position()
	if pos > len(value) {
		pos = len(value)
	}

	inserted := []rune(text)
	updated := make([]rune, 0, len(value)+len(inserted))
	updated = append(updated, value[:pos]...)
	updated = append(updated, inserted...)
	updated = append(updated, value[pos:]...)

	input.SetValue(string(updated))
	input.SetCursor(pos + len(inserted))
}

func (m *Model) Notify(n presenter.Notice) {
	m.notice = &n
}
