package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/exporters"
	"github.com/mrlokans/katalog/internal/http"
	"github.com/mrlokans/katalog/internal/presenter"
	"github.com/mrlokans/katalog/internal/tui"
)

// =============================================================================
// Catalogue
// =============================================================================

// The window adapter and the HTTP API both run on the catalogue store
var _ presenter.Catalog = (*catalog.Store)(nil)
var _ http.BookStore = (*catalog.Store)(nil)
var _ http.CatalogHealth = (*catalog.Store)(nil)

// =============================================================================
// Window
// =============================================================================

// View implementations
var _ presenter.View = (*tui.Model)(nil)

// =============================================================================
// Export
// =============================================================================

// BookExporter implementations
var _ exporters.BookExporter = (*exporters.CSVExporter)(nil)
