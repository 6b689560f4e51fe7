// Package catalog implements the book catalogue operations on top of the
// database layer: validated create and update, delete, listing, title search
// and CSV export. Every call maps to a single auto-committed statement.
package catalog

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/katalog/internal/database"
	"github.com/mrlokans/katalog/internal/database/books"
	"github.com/mrlokans/katalog/internal/entities"
	"github.com/mrlokans/katalog/internal/exporters"
)

// Column identifies an editable field of a book.
type Column string

const (
	ColumnID     Column = "id"
	ColumnTitle  Column = "title"
	ColumnAuthor Column = "author"
	ColumnYear   Column = "year"
)

// Columns is the fixed display order of the table: ID, Judul, Pengarang, Tahun.
var Columns = []Column{ColumnID, ColumnTitle, ColumnAuthor, ColumnYear}

// ColumnAt maps a display column index to its column.
func ColumnAt(index int) (Column, bool) {
	if index < 0 || index >= len(Columns) {
		return "", false
	}
	return Columns[index], true
}

// ParseColumn accepts a column name in any case.
func ParseColumn(name string) (Column, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Columns {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Store is the catalogue. It is created once at startup and shared by every surface.
type Store struct {
	db    *database.Database
	books *books.Repository
}

func NewStore(db *database.Database) *Store {
	return &Store{
		db:    db,
		books: books.NewRepository(db.DB),
	}
}

// Initialize ensures the books table exists. Idempotent.
func (s *Store) Initialize() error {
	if err := s.db.Migrate(); err != nil {
		return storageError("initialize catalog", err)
	}
	return nil
}

// Create validates the input and inserts a new book, returning its ID.
func (s *Store) Create(title, author, yearText string) (uint, error) {
	switch {
	case title == "":
		return 0, &ValidationError{Rule: RuleFieldsRequired, Field: string(ColumnTitle)}
	case author == "":
		return 0, &ValidationError{Rule: RuleFieldsRequired, Field: string(ColumnAuthor)}
	case yearText == "":
		return 0, &ValidationError{Rule: RuleFieldsRequired, Field: string(ColumnYear)}
	}

	year, err := ParseYear(yearText)
	if err != nil {
		return 0, err
	}

	book := &entities.Book{Title: title, Author: author, Year: year}
	if err := s.books.CreateBook(book); err != nil {
		return 0, storageError("create book", err)
	}
	return book.ID, nil
}

// Get returns a single book or a *NotFoundError.
func (s *Store) Get(id uint) (*entities.Book, error) {
	book, err := s.books.GetBookByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, storageError("get book", err)
	}
	return book, nil
}

// ListAll returns every book in insertion order.
func (s *Store) ListAll() ([]entities.Book, error) {
	all, err := s.books.GetAllBooks()
	if err != nil {
		return nil, storageError("list books", err)
	}
	return all, nil
}

// Search returns books whose title contains substring. An empty substring lists everything.
func (s *Store) Search(substring string) ([]entities.Book, error) {
	found, err := s.books.SearchBooksByTitle(substring)
	if err != nil {
		return nil, storageError("search books", err)
	}
	return found, nil
}

// Update sets one column of an existing book. The id column cannot be edited.
func (s *Store) Update(id uint, column Column, value string) error {
	var newValue any
	switch column {
	case ColumnTitle, ColumnAuthor:
		newValue = value
	case ColumnYear:
		year, err := ParseYear(value)
		if err != nil {
			return err
		}
		newValue = year
	default:
		return &ValidationError{Rule: RuleColumnNotEditable, Field: string(column)}
	}

	affected, err := s.books.UpdateBookField(id, string(column), newValue)
	if err != nil {
		return storageError("update book", err)
	}
	if affected == 0 {
		return &NotFoundError{ID: id}
	}
	return nil
}

// Delete removes a book. A missing ID is not an error.
func (s *Store) Delete(id uint) error {
	if err := s.books.DeleteBook(id); err != nil {
		return storageError("delete book", err)
	}
	return nil
}

// Count returns the number of stored books.
func (s *Store) Count() (int64, error) {
	total, err := s.books.CountBooks()
	if err != nil {
		return 0, storageError("count books", err)
	}
	return total, nil
}

// ExportAll writes the whole catalogue as CSV with the localized header row.
func (s *Store) ExportAll(w io.Writer) (exporters.ExportResult, error) {
	all, err := s.ListAll()
	if err != nil {
		return exporters.ExportResult{}, err
	}
	result, err := exporters.NewCSVExporter(w).Export(all)
	if err != nil {
		return result, storageError("export books", err)
	}
	return result, nil
}

// Ping checks that the database connection is alive.
func (s *Store) Ping() error {
	if err := s.db.Ping(); err != nil {
		return storageError("ping database", err)
	}
	return nil
}

// ParseYear parses year text the way the entry form accepts it: an optional
// sign and digits, surrounding spaces ignored.
func ParseYear(text string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &ValidationError{Rule: RuleYearNotNumeric, Field: string(ColumnYear), Value: text}
	}
	return year, nil
}
