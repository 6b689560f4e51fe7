package config

const (
	// DefaultDatabasePath is the default path for the catalogue database
	DefaultDatabasePath = "./katalog.db"

	// DefaultWindowTitle is shown in the window header
	DefaultWindowTitle = "Manajemen Buku"

	// DefaultStatusMessage is shown in the window status line
	DefaultStatusMessage = "Katalog buku lokal"
)
