package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
)

type UpdateCommand struct {
	storeFlags
	ID     uint
	Column string
	Value  string

	Out io.Writer
}

func NewUpdateCommand(cfg *config.Config) *UpdateCommand {
	return &UpdateCommand{storeFlags: newStoreFlags(cfg), Out: os.Stdout}
}

func (cmd *UpdateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	cmd.register(fs)
	fs.UintVar(&cmd.ID, "id", 0, "ID of the book to change (required)")
	fs.StringVar(&cmd.Column, "column", "", "Column to change: title, author or year (required)")
	fs.StringVar(&cmd.Value, "value", "", "New value")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s update -id <id> -column <column> -value <value> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Change one column of an existing book.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s update -id 3 -column year -value 1981\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ID == 0 {
		fs.Usage()
		return fmt.Errorf("id is required")
	}
	if cmd.Column == "" {
		fs.Usage()
		return fmt.Errorf("column is required")
	}

	return nil
}

func (cmd *UpdateCommand) Run() error {
	column, ok := catalog.ParseColumn(cmd.Column)
	if !ok {
		return &catalog.ValidationError{Rule: catalog.RuleColumnNotEditable, Field: cmd.Column}
	}

	store, closeStore, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Update(cmd.ID, column, cmd.Value); err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	book, err := store.Get(cmd.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Updated book %d: %q by %s (%d)\n", book.ID, book.Title, book.Author, book.Year)
	return nil
}
