// Command generate_demo creates a demo database with a small film catalog,
// a few users, their ratings and comments, and sample recommendation rows.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.sdb]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/badcoders/filmbase/internal/database"
	"github.com/badcoders/filmbase/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.sdb"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	users := createUsers(db)
	films := createFilms(db)
	rateAndComment(db, users, films)
	seedRecommendations(db, users, films)

	log.Println("Demo database generated successfully!")
}

func createUsers(db *database.Database) []*entities.Account {
	seed := []struct {
		login, email, password string
		isAdmin                bool
	}{
		{"alice", "alice@example.com", "correct-horse-battery", false},
		{"bob", "bob@example.com", "hunter2hunter2", false},
		{"carol", "carol@example.com", "swordfish-supreme", false},
		{"admin", "admin@example.com", "admin-passphrase", true},
	}

	var accounts []*entities.Account
	for _, u := range seed {
		id, err := db.AddUser(u.login, u.password, u.isAdmin, u.email)
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", u.login, err)
		}
		account, err := db.GetUserByID(id)
		if err != nil || account == nil {
			log.Fatalf("Failed to load user %s back: %v", u.login, err)
		}
		accounts = append(accounts, account)
		log.Printf("Created user: %s", u.login)
	}
	return accounts
}

func createFilms(db *database.Database) []uint {
	catalog := []entities.Film{
		{
			Name:        "The Silent Projector",
			Director:    "Maren Holt",
			Actors:      "Iris Vane, Tomas Keel, Aldo Brecht",
			Genre:       "Drama",
			Description: "A small-town projectionist discovers an unlabelled reel that shows tomorrow's news.",
		},
		{
			Name:        "Orbit Decay",
			Director:    "Luis Ferrante",
			Actors:      "Dana Okafor, Pyotr Ilyin",
			Genre:       "Science Fiction",
			Description: "Two engineers on a failing station argue about which of them gets the last working descent pod.",
		},
		{
			Name:        "Copper Alley",
			Director:    "Maren Holt",
			Actors:      "Tomas Keel, Greta Unwin, Sol Adeyemi",
			Genre:       "Noir",
			Description: "A debt collector starts forgiving debts and the neighborhood wants to know why.",
		},
		{
			Name:        "A Year of Mondays",
			Director:    "Priya Natarajan",
			Actors:      "Hele Virta, Marcus Dean",
			Genre:       "Comedy",
			Description: "An office clerk relives the same Monday for a year and slowly fixes the coffee machine.",
		},
	}

	var ids []uint
	for i := range catalog {
		id, err := db.AddFilm(&catalog[i])
		if err != nil {
			log.Fatalf("Failed to add film %s: %v", catalog[i].Name, err)
		}
		ids = append(ids, id)
		log.Printf("Added film: %s", catalog[i].Name)
	}
	return ids
}

func rateAndComment(db *database.Database, users []*entities.Account, films []uint) {
	scores := []struct {
		user  int
		film  int
		score int
	}{
		{0, 0, 5}, {1, 0, 4}, {2, 0, 4},
		{0, 1, 3}, {1, 1, 5},
		{2, 2, 2},
	}
	for _, s := range scores {
		if err := db.RateFilm(users[s.user], films[s.film], s.score); err != nil {
			log.Fatalf("Failed to rate film: %v", err)
		}
	}

	comments := []struct {
		user int
		film int
		text string
	}{
		{0, 0, "The last reel broke me. Best thing I've seen this year."},
		{1, 0, "Slow start but it earns the ending."},
		{1, 1, "Docking sequence alone is worth the ticket."},
		{2, 2, "Holt does it again, though Keel is wasted in this role."},
	}
	for _, c := range comments {
		if _, err := db.AddComment(users[c.user], films[c.film], c.text); err != nil {
			log.Fatalf("Failed to add comment: %v", err)
		}
	}
}

// seedRecommendations writes fixture rows directly through the gorm handle.
// The data layer itself never writes this table; in production it is
// populated by an external batch job.
func seedRecommendations(db *database.Database, users []*entities.Account, films []uint) {
	rows := []entities.Recommendation{
		{UserID: users[0].ID, FilmID: films[2], Score: 4.6},
		{UserID: users[0].ID, FilmID: films[3], Score: 3.1},
		{UserID: users[1].ID, FilmID: films[2], Score: 4.2},
		{UserID: users[2].ID, FilmID: films[1], Score: 3.9},
	}
	for i := range rows {
		if err := db.DB.Create(&rows[i]).Error; err != nil {
			log.Fatalf("Failed to seed recommendation: %v", err)
		}
	}
	log.Printf("Seeded %d recommendation rows", len(rows))
}
