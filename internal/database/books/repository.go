// Package books provides database operations for the book catalogue.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	err := repo.CreateBook(&entities.Book{Title: "Laskar Pelangi", Author: "Andrea Hirata", Year: 2005})
//	all, err := repo.GetAllBooks()
package books

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/katalog/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a new row and fills in the generated ID.
func (r *Repository) CreateBook(book *entities.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetBookByID retrieves a book by its ID. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves every book in insertion order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	books := []entities.Book{}
	if err := r.db.Order("id ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("select books: %w", err)
	}
	return books, nil
}

// SearchBooksByTitle returns books whose title contains query, in insertion order.
// Matching follows SQLite LIKE, which ignores ASCII case. Wildcard characters
// in query are matched literally.
func (r *Repository) SearchBooksByTitle(query string) ([]entities.Book, error) {
	books := []entities.Book{}
	pattern := "%" + escapeLike(query) + "%"
	err := r.db.Where(`title LIKE ? ESCAPE '\'`, pattern).Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return books, nil
}

// UpdateBookField sets a single column and reports how many rows matched.
func (r *Repository) UpdateBookField(id uint, column string, value any) (int64, error) {
	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return 0, fmt.Errorf("update book %d: %w", id, result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteBook removes the row. Deleting a missing ID is not an error.
func (r *Repository) DeleteBook(id uint) error {
	if err := r.db.Delete(&entities.Book{}, id).Error; err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}

// CountBooks returns the number of stored books.
func (r *Repository) CountBooks() (int64, error) {
	var total int64
	if err := r.db.Model(&entities.Book{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
