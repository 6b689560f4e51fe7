package exporters

import "github.com/mrlokans/katalog/internal/entities"

type BookExporter interface {
	Export(books []entities.Book) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed int `json:"books_processed"`
}
