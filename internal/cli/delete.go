package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/katalog/internal/config"
)

type DeleteCommand struct {
	storeFlags
	ID  uint
	Out io.Writer
}

func NewDeleteCommand(cfg *config.Config) *DeleteCommand {
	return &DeleteCommand{storeFlags: newStoreFlags(cfg), Out: os.Stdout}
}

func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	cmd.register(fs)
	fs.UintVar(&cmd.ID, "id", 0, "ID of the book to delete (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete -id <id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete a book. Deleting an unknown ID succeeds without changes.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ID == 0 {
		fs.Usage()
		return fmt.Errorf("id is required")
	}

	return nil
}

func (cmd *DeleteCommand) Run() error {
	store, closeStore, err := cmd.open()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := store.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	fmt.Fprintf(cmd.Out, "Deleted book %d\n", cmd.ID)
	return nil
}
