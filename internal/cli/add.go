package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/katalog/internal/config"
)

type AddCommand struct {
	storeFlags
	Title  string
	Author string
	Year   string

	Out io.Writer
}

func NewAddCommand(cfg *config.Config) *AddCommand {
	return &AddCommand{storeFlags: newStoreFlags(cfg), Out: os.Stdout}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)

	cmd.register(fs)
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Book author (required)")
	fs.StringVar(&cmd.Year, "year", "", "Publication year, digits only (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Add a book to the catalogue.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s add -title \"Bumi Manusia\" -author \"Pramoedya Ananta Toer\" -year 1980\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *AddCommand) Run() error {
	store, closeStore, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := store.Create(cmd.Title, cmd.Author, cmd.Year)
	if err != nil {
		return fmt.Errorf("failed to add book: %w", err)
	}

	book, err := store.Get(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Out, "Added book %d: %q by %s (%d)\n", book.ID, book.Title, book.Author, book.Year)
	return nil
}
