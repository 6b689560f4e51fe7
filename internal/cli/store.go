package cli

import (
	"flag"
	"fmt"
	"log"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/database"
)

// storeFlags are the database options every command accepts.
type storeFlags struct {
	DatabasePath string
	LogLevel     string
}

func newStoreFlags(cfg *config.Config) storeFlags {
	return storeFlags{
		DatabasePath: cfg.Database.Path,
		LogLevel:     cfg.Database.LogLevel,
	}
}

// register binds the flags, defaulting to the configured values.
func (s *storeFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&s.DatabasePath, "db", s.DatabasePath, "Path to the catalogue database file")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "Database log level: silent, error, warn or info")
}

// open returns the store and a func that closes it.
func (s *storeFlags) open() (*catalog.Store, func(), error) {
	db, err := database.NewDatabase(s.DatabasePath, database.ParseLogLevel(s.LogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	return catalog.NewStore(db), closeDB, nil
}
