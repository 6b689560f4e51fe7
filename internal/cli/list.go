package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/katalog/internal/config"
)

type ListCommand struct {
	storeFlags
	Out io.Writer
}

func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{storeFlags: newStoreFlags(cfg), Out: os.Stdout}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	cmd.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List every book in insertion order.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListCommand) Run() error {
	store, closeStore, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeStore()

	books, err := store.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}
	renderBooks(cmd.Out, books)
	return nil
}

type SearchCommand struct {
	storeFlags
	Query string
	Out   io.Writer
}

func NewSearchCommand(cfg *config.Config) *SearchCommand {
	return &SearchCommand{storeFlags: newStoreFlags(cfg), Out: os.Stdout}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Query, "q", "", "Text the title must contain, case-insensitive for ASCII letters")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -q <text> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List books whose title contains the given text. An empty query lists everything.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -q pelangi\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -q 100%%\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SearchCommand) Run() error {
	store, closeStore, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeStore()

	books, err := store.Search(cmd.Query)
	if err != nil {
		return fmt.Errorf("failed to search books: %w", err)
	}
	renderBooks(cmd.Out, books)
	return nil
}
