package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mrlokans/katalog/internal/entities"
	"github.com/mrlokans/katalog/internal/exporters"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	idStyle     = cellStyle.Align(lipgloss.Right)
)

// renderBooks prints books as a bordered table followed by a count line.
func renderBooks(w io.Writer, books []entities.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(exporters.CSVHeader...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == 0:
				return headerStyle
			case col == 0 || col == 3:
				return idStyle
			default:
				return cellStyle
			}
		})
	for _, book := range books {
		t.Row(exporters.Row(book)...)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d book(s)\n", len(books))
}
