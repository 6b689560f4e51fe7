package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	Store BookStore
	// Health is usually the same store; nil reports the database as not configured.
	Health CatalogHealth

	// CSRF protection is enabled when CSRFSecret is set.
	CSRFSecret    []byte
	SecureCookies bool

	Version string
}
