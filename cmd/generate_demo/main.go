// Command generate_demo creates a demo catalogue filled with well-known Indonesian novels.
// Usage: go run ./cmd/generate_demo [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/katalog/internal/catalog"
	"github.com/mrlokans/katalog/internal/database"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	Title  string
	Author string
	Year   string
}

var demoBooks = []demoBook{
	{"Siti Nurbaya", "Marah Rusli", "1922"},
	{"Salah Asuhan", "Abdoel Moeis", "1928"},
	{"Layar Terkembang", "Sutan Takdir Alisjahbana", "1936"},
	{"Atheis", "Achdiat Karta Mihardja", "1949"},
	{"Bumi Manusia", "Pramoedya Ananta Toer", "1980"},
	{"Anak Semua Bangsa", "Pramoedya Ananta Toer", "1980"},
	{"Ronggeng Dukuh Paruk", "Ahmad Tohari", "1982"},
	{"Para Priyayi", "Umar Kayam", "1992"},
	{"Saman", "Ayu Utami", "1998"},
	{"Cantik Itu Luka", "Eka Kurniawan", "2002"},
	{"Laskar Pelangi", "Andrea Hirata", "2005"},
	{"Sang Pemimpi", "Andrea Hirata", "2006"},
	{"Negeri 5 Menara", "Ahmad Fuadi", "2009"},
	{"Pulang", "Leila S. Chudori", "2012"},
	{"Laut Bercerita", "Leila S. Chudori", "2017"},
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, logger.Warn)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	store := catalog.NewStore(db)
	saved := 0
	for _, b := range demoBooks {
		id, err := store.Create(b.Title, b.Author, b.Year)
		if err != nil {
			log.Printf("Failed to save book %s: %v", b.Title, err)
			continue
		}
		saved++
		log.Printf("Saved %d: %s by %s (%s)", id, b.Title, b.Author, b.Year)
	}

	log.Printf("Demo database generated successfully with %d books!", saved)
}
