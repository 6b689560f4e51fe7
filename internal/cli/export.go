package cli

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/exporters"
)

type ExportCommand struct {
	storeFlags
	Output string
	Out    io.Writer
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{storeFlags: newStoreFlags(cfg), Out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Output, "output", "", "CSV file to write (default: standard output)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the whole catalogue as CSV.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export -output buku.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export > buku.csv\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	store, closeStore, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeStore()

	result, err := cmd.export(store)
	if err != nil {
		return err
	}
	if cmd.Output != "" {
		fmt.Fprintf(cmd.Out, "Exported %d books to %s\n", result.BooksProcessed, cmd.Output)
	}
	return nil
}

type catalogExporter interface {
	ExportAll(w io.Writer) (exporters.ExportResult, error)
}

// export renders the catalogue in memory and writes it out only when the
// whole read succeeded, so a failure never truncates an existing file.
func (cmd *ExportCommand) export(store catalogExporter) (exporters.ExportResult, error) {
	var buf bytes.Buffer
	result, err := store.ExportAll(&buf)
	if err != nil {
		return result, fmt.Errorf("failed to export books: %w", err)
	}

	if cmd.Output == "" {
		if _, err := buf.WriteTo(cmd.Out); err != nil {
			return result, fmt.Errorf("failed to write export: %w", err)
		}
		return result, nil
	}

	if err := os.WriteFile(cmd.Output, buf.Bytes(), 0o644); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}
	return result, nil
}
