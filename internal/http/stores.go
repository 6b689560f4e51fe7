package http

import (
	"io"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/entities"
	"github.com/mrlokans/katalog/internal/exporters"
)

// BookStore defines the catalogue operations the API exposes.
type BookStore interface {
	Create(title, author, yearText string) (uint, error)
	Get(id uint) (*entities.Book, error)
	ListAll() ([]entities.Book, error)
	Search(substring string) ([]entities.Book, error)
	Update(id uint, column catalog.Column, value string) error
	Delete(id uint) error
	ExportAll(w io.Writer) (exporters.ExportResult, error)
}

// CatalogHealth reports whether the database is reachable and how many
// books it holds.
type CatalogHealth interface {
	Ping() error
	Count() (int64, error)
}
