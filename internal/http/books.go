package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/entities"
)

const exportFilename = "buku.csv"

// looseText accepts a JSON string or number, so {"year": 1980} and
// {"year": "1980"} mean the same thing. null decodes to "".
type looseText string

func (t *looseText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = looseText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("expected a string or a number")
	}
	*t = looseText(n.String())
	return nil
}

type CreateBookRequest struct {
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Year   looseText `json:"year"`
}

type UpdateBookRequest struct {
	Column string    `json:"column"`
	Value  looseText `json:"value"`
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// List returns every book, or only those whose title contains ?q=.
func (controller *BooksController) List(c *gin.Context) {
	var (
		books []entities.Book
		err   error
	)
	if query := c.Query("q"); query != "" {
		books, err = controller.store.Search(query)
	} else {
		books, err = controller.store.ListAll()
	}
	if err != nil {
		respondCatalogError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.Get(id)
	if err != nil {
		respondCatalogError(c, err, "get book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

func (controller *BooksController) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error(), "invalid_body")
		return
	}

	id, err := controller.store.Create(req.Title, req.Author, string(req.Year))
	if err != nil {
		respondCatalogError(c, err, "create book")
		return
	}

	book, err := controller.store.Get(id)
	if err != nil {
		respondCatalogError(c, err, "get created book")
		return
	}
	c.IndentedJSON(http.StatusCreated, book)
}

// Update changes a single column, mirroring an in-place cell edit.
func (controller *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error(), "invalid_body")
		return
	}

	column, known := catalog.ParseColumn(req.Column)
	if !known {
		err := &catalog.ValidationError{Rule: catalog.RuleColumnNotEditable, Field: req.Column}
		respondBadRequest(c, err.Error(), string(err.Rule))
		return
	}

	if err := controller.store.Update(id, column, string(req.Value)); err != nil {
		respondCatalogError(c, err, "update book")
		return
	}

	book, err := controller.store.Get(id)
	if err != nil {
		respondCatalogError(c, err, "get updated book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// Delete always answers 204, deleting a missing book is not an error.
func (controller *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.Delete(id); err != nil {
		respondCatalogError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

// Export streams the catalogue as a CSV attachment.
func (controller *BooksController) Export(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := controller.store.ExportAll(&buf); err != nil {
		respondCatalogError(c, err, "export books")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
