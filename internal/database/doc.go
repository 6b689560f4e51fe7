// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, schema creation, log levels
//	└── books/           # Book CRUD and title search
//
// The Database struct owns the single gorm connection. Domain packages wrap
// db.DB in their own Repository:
//
//	db, err := database.NewDatabase("./katalog.db", logger.Warn)
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.GetBookByID(3)
//
// Repositories return gorm errors unchanged (wrapped with context). Mapping
// them onto the catalogue error taxonomy happens in internal/catalog.
package database
