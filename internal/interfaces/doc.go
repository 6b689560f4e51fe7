// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Catalogue Access
//
//   - presenter.Catalog: what the window adapter needs (internal/presenter/adapter.go)
//   - http.BookStore: what the HTTP API needs (internal/http/stores.go)
//   - http.CatalogHealth: database connectivity and book count for /health (internal/http/stores.go)
//
// All three are satisfied by *catalog.Store, the single store opened at startup.
//
// ## Window
//
//   - presenter.View: rows, input clearing, paste insertion and notices,
//     implemented by the Bubble Tea model (internal/tui/model.go)
//
// ## Export
//
//   - exporters.BookExporter: write books in an external format (internal/exporters/generic.go)
//
// # Adding a New Surface
//
// To drive the catalogue from another front end:
//
//  1. Declare the subset of the store it needs as an interface in its package
//
//	type BookLister interface {
//		ListAll() ([]entities.Book, error)
//	}
//
//  2. Accept that interface in the constructor and pass *catalog.Store from entrypoint.go
//
//  3. Add a compile-time check to checks.go
//
// # Adding a New Export Format
//
//  1. Implement BookExporter in internal/exporters/
//
//	type JSONExporter struct{ w io.Writer }
//
//	func (e *JSONExporter) Export(books []entities.Book) (ExportResult, error)
//
//  2. Add a compile-time check:
//
//	var _ exporters.BookExporter = (*exporters.JSONExporter)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
