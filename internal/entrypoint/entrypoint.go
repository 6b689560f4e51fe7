package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/database"
	http_controllers "github.com/mrlokans/katalog/internal/http"
	"github.com/mrlokans/katalog/internal/tui"
)

// OpenStore opens the database at the configured path and makes sure the
// books table exists. The returned func closes the connection.
func OpenStore(cfg *config.Config) (*catalog.Store, func(), error) {
	db, err := database.NewDatabase(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	store := catalog.NewStore(db)
	if err := store.Initialize(); err != nil {
		db.Close()
		return nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	return store, closeDB, nil
}

// RunWindow opens the catalogue window and blocks until it is closed.
// The standard logger goes to the configured log file, or nowhere, while the
// window owns the terminal.
func RunWindow(cfg *config.Config) error {
	if cfg.Window.LogFile != "" {
		f, err := tea.LogToFile(cfg.Window.LogFile, "katalog")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	model := tui.New(store, tui.Options{
		Title:         cfg.Window.Title,
		StatusMessage: cfg.Window.StatusMessage,
		DatabasePath:  cfg.Database.Path,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("window failed: %w", err)
	}
	return nil
}

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs router until SIGINT or SIGTERM, then shuts down gracefully.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run serves the HTTP API over the catalogue.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Katalog v%s", version)

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer closeStore()

	var csrfSecret []byte
	if cfg.Security.CSRFSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Security.CSRFSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Security.CSRFSecret)
		}
		log.Printf("CSRF protection enabled")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Store:         store,
		Health:        store,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Security.SecureCookies,
		Version:       version,
	})

	Serve(router, cfg, nil)
}
