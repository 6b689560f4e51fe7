package exporters

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mrlokans/katalog/internal/entities"
)

// CSVHeader is the localized header row written before the records.
var CSVHeader = []string{"ID", "Judul", "Pengarang", "Tahun"}

// CSVExporter writes books as comma-separated UTF-8 text with "\n" line endings.
type CSVExporter struct {
	w io.Writer
}

func NewCSVExporter(w io.Writer) *CSVExporter {
	return &CSVExporter{w: w}
}

func (exporter *CSVExporter) Export(books []entities.Book) (ExportResult, error) {
	result := ExportResult{}
	writer := csv.NewWriter(exporter.w)

	if err := writer.Write(CSVHeader); err != nil {
		return result, fmt.Errorf("write csv header: %w", err)
	}
	for _, book := range books {
		if err := writer.Write(Row(book)); err != nil {
			return result, fmt.Errorf("write csv row for book %d: %w", book.ID, err)
		}
		result.BooksProcessed++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return result, fmt.Errorf("flush csv: %w", err)
	}
	return result, nil
}

// Row renders a book in header column order.
func Row(book entities.Book) []string {
	return []string{
		strconv.FormatUint(uint64(book.ID), 10),
		book.Title,
		book.Author,
		strconv.Itoa(book.Year),
	}
}
