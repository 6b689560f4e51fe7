package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mrlokans/katalog/internal/cli"
	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// command is the shape every CLI subcommand shares.
type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// A missing .env is fine; real environment variables always win.
	_ = godotenv.Load()

	cfg := config.NewConfig()

	// No arguments opens the catalogue window
	if len(os.Args) < 2 || os.Args[1] == "window" {
		if err := entrypoint.RunWindow(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "serve":
		entrypoint.Run(cfg, Version)
		return
	case "add":
		cmd = cli.NewAddCommand(cfg)
	case "list":
		cmd = cli.NewListCommand(cfg)
	case "search":
		cmd = cli.NewSearchCommand(cfg)
	case "update":
		cmd = cli.NewUpdateCommand(cfg)
	case "delete":
		cmd = cli.NewDeleteCommand(cfg)
	case "export":
		cmd = cli.NewExportCommand(cfg)
	case "version", "-v", "--version":
		fmt.Printf("katalog %s (commit: %s)\n", Version, Commit)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [command] [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  window     Open the catalogue window (default)\n")
	fmt.Fprintf(os.Stderr, "  serve      Start the HTTP API server\n")
	fmt.Fprintf(os.Stderr, "  add        Add a book\n")
	fmt.Fprintf(os.Stderr, "  list       List every book\n")
	fmt.Fprintf(os.Stderr, "  search     List books whose title contains a text\n")
	fmt.Fprintf(os.Stderr, "  update     Change one column of a book\n")
	fmt.Fprintf(os.Stderr, "  delete     Delete a book\n")
	fmt.Fprintf(os.Stderr, "  export     Export the catalogue as CSV\n")
	fmt.Fprintf(os.Stderr, "  version    Show version information\n")
	fmt.Fprintf(os.Stderr, "  help       Show this help message\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s [command] -h' for more information on a command.\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  DATABASE_PATH       Catalogue database file (default %s)\n", config.DefaultDatabasePath)
	fmt.Fprintf(os.Stderr, "  DATABASE_LOG_LEVEL  silent, error, warn or info\n")
	fmt.Fprintf(os.Stderr, "  HOST, PORT          HTTP listen address for serve\n")
	fmt.Fprintf(os.Stderr, "  CSRF_SECRET         Enables CSRF protection for serve\n")
	fmt.Fprintf(os.Stderr, "  LOG_FILE            Log file used while the window is open\n")
}
