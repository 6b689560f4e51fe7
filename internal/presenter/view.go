package presenter

import "github.com/mrlokans/katalog/internal/entities"

// Field is an opaque handle to one of the window's text-entry fields.
// The adapter only remembers which field, never the widget itself.
type Field int

const (
	FieldNone Field = iota
	FieldTitle
	FieldAuthor
	FieldYear
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldYear:
		return "year"
	default:
		return "none"
	}
}

// Level is the severity of a Notice, mirroring information/warning/critical dialogs.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Notice is a user-facing message the window shows as a dialog.
type Notice struct {
	Level Level
	Title string
	Text  string
}

// View is the window collaborator the adapter drives.
type View interface {
	// ShowRows replaces every displayed row.
	ShowRows(rows []entities.Book)
	// ClearInputs empties the title, author and year fields.
	ClearInputs()
	// InsertAtCursor inserts text at the cursor position of field.
	InsertAtCursor(field Field, text string)
	Notify(n Notice)
}
