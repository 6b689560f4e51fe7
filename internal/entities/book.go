package entities

// Book is a single catalogue entry. ID is assigned by SQLite AUTOINCREMENT,
// so identifiers grow monotonically and are never handed out twice.
type Book struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	Author string `gorm:"not null" json:"author"`
	Year   int    `gorm:"not null" json:"year"`
}

func (Book) TableName() string {
	return "books"
}
