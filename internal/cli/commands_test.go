package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/config"
	"github.com/mrlokans/katalog/internal/entities"
	"github.com/mrlokans/katalog/internal/exporters"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "katalog.db")
	cfg.Database.LogLevel = "silent"
	return cfg
}

func addBook(t *testing.T, cfg *config.Config, title, author, year string) {
	t.Helper()
	cmd := NewAddCommand(cfg)
	cmd.Out = &bytes.Buffer{}
	require.NoError(t, cmd.ParseFlags([]string{"-title", title, "-author", author, "-year", year}))
	require.NoError(t, cmd.Run())
}

func TestAddCommand(t *testing.T) {
	t.Run("adds a book", func(t *testing.T) {
		cfg := testConfig(t)
		var out bytes.Buffer
		cmd := NewAddCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags([]string{"-title", "Bumi Manusia", "-author", "Pramoedya", "-year", " 1980 "}))
		require.NoError(t, cmd.Run())

		assert.Equal(t, "Added book 1: \"Bumi Manusia\" by Pramoedya (1980)\n", out.String())
	})

	t.Run("reports validation errors", func(t *testing.T) {
		cfg := testConfig(t)
		cmd := NewAddCommand(cfg)
		cmd.Out = &bytes.Buffer{}

		require.NoError(t, cmd.ParseFlags([]string{"-title", "T", "-author", "A", "-year", "MCMLXXX"}))
		err := cmd.Run()

		assert.ErrorIs(t, err, catalog.ErrValidation)
		assert.Contains(t, err.Error(), "failed to add book")
	})

	t.Run("missing fields", func(t *testing.T) {
		cfg := testConfig(t)
		cmd := NewAddCommand(cfg)

		require.NoError(t, cmd.ParseFlags([]string{"-title", "T"}))
		err := cmd.Run()

		var verr *catalog.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, catalog.RuleFieldsRequired, verr.Rule)
		assert.Equal(t, "author", verr.Field)
	})

	t.Run("db flag overrides the configured path", func(t *testing.T) {
		cfg := testConfig(t)
		other := filepath.Join(t.TempDir(), "other.db")
		cmd := NewAddCommand(cfg)
		cmd.Out = &bytes.Buffer{}

		require.NoError(t, cmd.ParseFlags([]string{"-db", other, "-title", "T", "-author", "A", "-year", "1"}))
		require.NoError(t, cmd.Run())

		_, err := os.Stat(other)
		assert.NoError(t, err)
	})
}

func TestListAndSearchCommands(t *testing.T) {
	cfg := testConfig(t)
	addBook(t, cfg, "Laskar Pelangi", "Andrea Hirata", "2005")
	addBook(t, cfg, "Sang Pemimpi", "Andrea Hirata", "2006")
	addBook(t, cfg, "100% Halal", "Anon", "2010")

	t.Run("list renders every book", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewListCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags(nil))
		require.NoError(t, cmd.Run())

		text := out.String()
		assert.Contains(t, text, "Judul")
		assert.Contains(t, text, "Pengarang")
		assert.Contains(t, text, "Laskar Pelangi")
		assert.Contains(t, text, "Sang Pemimpi")
		assert.Contains(t, text, "3 book(s)")
	})

	t.Run("search filters by title", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewSearchCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags([]string{"-q", "PEMIMPI"}))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Sang Pemimpi")
		assert.NotContains(t, out.String(), "Laskar")
		assert.Contains(t, out.String(), "1 book(s)")
	})

	t.Run("percent is literal", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewSearchCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags([]string{"-q", "0%"}))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "100% Halal")
		assert.Contains(t, out.String(), "1 book(s)")
	})

	t.Run("no match", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewSearchCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags([]string{"-q", "zzz"}))
		require.NoError(t, cmd.Run())

		assert.Equal(t, "No books found.\n", out.String())
	})
}

func TestUpdateCommand(t *testing.T) {
	t.Run("changes one column", func(t *testing.T) {
		cfg := testConfig(t)
		addBook(t, cfg, "Saman", "Ayu Utami", "1998")
		var out bytes.Buffer
		cmd := NewUpdateCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags([]string{"-id", "1", "-column", "year", "-value", "1999"}))
		require.NoError(t, cmd.Run())

		assert.Equal(t, "Updated book 1: \"Saman\" by Ayu Utami (1999)\n", out.String())
	})

	t.Run("id column is rejected", func(t *testing.T) {
		cfg := testConfig(t)
		addBook(t, cfg, "Saman", "Ayu Utami", "1998")
		cmd := NewUpdateCommand(cfg)

		require.NoError(t, cmd.ParseFlags([]string{"-id", "1", "-column", "id", "-value", "9"}))
		err := cmd.Run()

		var verr *catalog.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, catalog.RuleColumnNotEditable, verr.Rule)
	})

	t.Run("unknown book", func(t *testing.T) {
		cfg := testConfig(t)
		cmd := NewUpdateCommand(cfg)

		require.NoError(t, cmd.ParseFlags([]string{"-id", "5", "-column", "title", "-value", "X"}))

		assert.ErrorIs(t, cmd.Run(), catalog.ErrNotFound)
	})

	t.Run("requires id and column", func(t *testing.T) {
		cfg := testConfig(t)

		assert.Error(t, NewUpdateCommand(cfg).ParseFlags([]string{"-column", "title"}))
		assert.Error(t, NewUpdateCommand(cfg).ParseFlags([]string{"-id", "1"}))
	})
}

func TestDeleteCommand(t *testing.T) {
	cfg := testConfig(t)
	addBook(t, cfg, "One", "A", "2001")
	addBook(t, cfg, "Two", "B", "2002")

	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		cmd := NewDeleteCommand(cfg)
		cmd.Out = &out
		require.NoError(t, cmd.ParseFlags([]string{"-id", "2"}))
		require.NoError(t, cmd.Run())
		assert.Equal(t, "Deleted book 2\n", out.String())
	}

	var out bytes.Buffer
	list := NewListCommand(cfg)
	list.Out = &out
	require.NoError(t, list.ParseFlags(nil))
	require.NoError(t, list.Run())
	assert.Contains(t, out.String(), "One")
	assert.NotContains(t, out.String(), "Two")

	assert.Error(t, NewDeleteCommand(cfg).ParseFlags(nil))
}

func TestExportCommand(t *testing.T) {
	cfg := testConfig(t)
	addBook(t, cfg, "A", "B", "2020")
	addBook(t, cfg, "C", "D", "2021")
	expected := "ID,Judul,Pengarang,Tahun\n1,A,B,2020\n2,C,D,2021\n"

	t.Run("to standard output", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewExportCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags(nil))
		require.NoError(t, cmd.Run())

		assert.Equal(t, expected, out.String())
	})

	t.Run("to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "buku.csv")
		var out bytes.Buffer
		cmd := NewExportCommand(cfg)
		cmd.Out = &out

		require.NoError(t, cmd.ParseFlags([]string{"-output", path}))
		require.NoError(t, cmd.Run())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, expected, string(content))
		assert.Contains(t, out.String(), "Exported 2 books")
	})

	t.Run("unwritable destination", func(t *testing.T) {
		cmd := NewExportCommand(cfg)
		cmd.Out = &bytes.Buffer{}

		require.NoError(t, cmd.ParseFlags([]string{"-output", filepath.Join(t.TempDir(), "no", "such", "x.csv")}))

		assert.Error(t, cmd.Run())
	})
}

type failingExporter struct{}

func (failingExporter) ExportAll(io.Writer) (exporters.ExportResult, error) {
	return exporters.ExportResult{}, &catalog.StorageError{Op: "list books", Err: errors.New("disk I/O error")}
}

func TestExportCommand_FailedReadKeepsExistingFile(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "buku.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous export\n"), 0o644))

	cmd := NewExportCommand(cfg)
	var out bytes.Buffer
	cmd.Out = &out
	require.NoError(t, cmd.ParseFlags([]string{"-output", path}))

	_, err := cmd.export(failingExporter{})

	assert.ErrorIs(t, err, catalog.ErrStorage)
	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "previous export\n", string(content))
	assert.Empty(t, out.String())
}

func TestRenderBooks(t *testing.T) {
	var out bytes.Buffer

	renderBooks(&out, []entities.Book{{ID: 7, Title: "Pulang", Author: "Leila S. Chudori", Year: 2012}})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[1], "Judul")
	assert.Contains(t, lines[1], "Tahun")
	assert.Contains(t, lines[3], "Pulang")
	assert.Contains(t, lines[3], "2012")
	assert.Equal(t, "1 book(s)", lines[len(lines)-1])
}
