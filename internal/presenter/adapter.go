// Package presenter translates window events into catalogue calls and pushes
// the results back into the window through the View interface.
//
// The adapter keeps three pieces of state: the rows currently on screen (so a
// row index can be turned into a book ID), the last text field that gained
// focus (the target of the paste action) and a refreshing flag that swallows
// cell-change notifications raised while the table is being repopulated.
package presenter

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/entities"
	"github.com/mrlokans/katalog/internal/exporters"
)

// Catalog is the subset of *catalog.Store the adapter needs.
type Catalog interface {
	Create(title, author, yearText string) (uint, error)
	ListAll() ([]entities.Book, error)
	Search(substring string) ([]entities.Book, error)
	Update(id uint, column catalog.Column, value string) error
	Delete(id uint) error
	ExportAll(w io.Writer) (exporters.ExportResult, error)
}

type Adapter struct {
	store Catalog
	view  View

	rows        []entities.Book
	query       string
	lastFocused Field
	refreshing  bool
}

func NewAdapter(store Catalog, view View) *Adapter {
	return &Adapter{
		store: store,
		view:  view,
	}
}

// Load fills the table on startup.
func (a *Adapter) Load() {
	a.reload()
}

// Rows returns the rows currently shown.
func (a *Adapter) Rows() []entities.Book {
	return a.rows
}

// LastFocused returns the paste target, FieldNone until a field gains focus.
func (a *Adapter) LastFocused() Field {
	return a.lastFocused
}

// OnSave creates a book from the three entry fields.
func (a *Adapter) OnSave(titleText, authorText, yearText string) {
	if _, err := a.store.Create(titleText, authorText, yearText); err != nil {
		a.report(titleInputError, err)
		return
	}
	a.view.ClearInputs()
	a.reload()
}

// OnCellEdited writes an edited cell back to the store. Edits to the ID
// column and edits raised while the table is being refreshed are ignored.
// A rejected edit is reported without reloading, so the cell keeps the
// rejected text until the next refresh.
func (a *Adapter) OnCellEdited(rowIndex, columnIndex int, newText string) {
	if a.refreshing {
		return
	}
	column, ok := catalog.ColumnAt(columnIndex)
	if !ok || column == catalog.ColumnID {
		return
	}
	if rowIndex < 0 || rowIndex >= len(a.rows) {
		return
	}

	id := a.rows[rowIndex].ID
	if err := a.store.Update(id, column, newText); err != nil {
		a.report(titleUpdateError, err)
		return
	}
	a.showQuery(a.query)
}

// OnDeleteRequested deletes the selected row. A negative index means no selection.
func (a *Adapter) OnDeleteRequested(selectedRowIndex int) {
	if selectedRowIndex < 0 || selectedRowIndex >= len(a.rows) {
		a.view.Notify(Notice{Level: LevelInfo, Title: titleDelete, Text: msgSelectRow})
		return
	}

	id := a.rows[selectedRowIndex].ID
	if err := a.store.Delete(id); err != nil {
		a.report(titleDelete, err)
		return
	}
	a.reload()
}

// OnSearchTextChanged filters the table by title on every keystroke.
func (a *Adapter) OnSearchTextChanged(text string) {
	a.showQuery(text)
}

// OnPasteRequested inserts clipboard text into the last focused field.
func (a *Adapter) OnPasteRequested(clipboardText string) {
	if a.lastFocused == FieldNone {
		a.view.Notify(Notice{Level: LevelInfo, Title: titleInfo, Text: msgFocusFieldFirst})
		return
	}
	a.view.InsertAtCursor(a.lastFocused, clipboardText)
}

// OnFocusGained remembers field as the paste target.
func (a *Adapter) OnFocusGained(field Field) {
	if field == FieldNone {
		return
	}
	a.lastFocused = field
}

// OnExportRequested writes the catalogue as CSV to destinationPath.
// An empty path means the save dialog was cancelled.
func (a *Adapter) OnExportRequested(destinationPath string) {
	if destinationPath == "" {
		return
	}

	result, err := a.exportTo(destinationPath)
	if err != nil {
		a.report(titleExportError, err)
		return
	}

	log.Printf("Exported %d books to %s", result.BooksProcessed, destinationPath)
	a.view.Notify(Notice{Level: LevelInfo, Title: titleExportDone, Text: msgExportSuccessful})
}

// exportTo renders the whole catalogue before touching path, so a failed
// read leaves an existing file as it was.
func (a *Adapter) exportTo(path string) (exporters.ExportResult, error) {
	var buf bytes.Buffer
	result, err := a.store.ExportAll(&buf)
	if err != nil {
		return result, err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return exporters.ExportResult{}, err
	}
	return result, nil
}

// reload shows every book, as after a save or delete.
func (a *Adapter) reload() {
	a.showQuery("")
}

func (a *Adapter) showQuery(query string) {
	var (
		rows []entities.Book
		err  error
	)
	if query == "" {
		rows, err = a.store.ListAll()
	} else {
		rows, err = a.store.Search(query)
	}
	if err != nil {
		a.report(titleStorage, err)
		return
	}

	a.query = query
	a.rows = rows

	a.refreshing = true
	defer func() { a.refreshing = false }()
	a.view.ShowRows(rows)
}

func (a *Adapter) report(title string, err error) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		a.view.Notify(Notice{Level: LevelWarning, Title: titleInputError, Text: validationText(verr)})
	case errors.Is(err, catalog.ErrNotFound):
		a.view.Notify(Notice{Level: LevelError, Title: title, Text: err.Error()})
	default:
		log.Printf("%s: %v", title, err)
		a.view.Notify(Notice{Level: LevelError, Title: title, Text: err.Error()})
	}
}

func validationText(err *catalog.ValidationError) string {
	switch err.Rule {
	case catalog.RuleFieldsRequired:
		return msgFieldsRequired
	case catalog.RuleYearNotNumeric:
		return msgYearNotNumeric
	default:
		return err.Error()
	}
}
