// Package seed loads the demo accounts and starter catalog on first boot.
package seed

import (
	"context"
	"errors"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/logger"
	"bookshelf-be/internal/user"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type demoBook struct {
	title       string
	author      string
	description string
	price       string
	imageURL    string
	category    string
	stock       int
	rating      float64
	reviews     int
	featured    bool
	newRelease  bool
}

var demoBooks = []demoBook{
	{"The Midnight Library", "Matt Haig", "Between life and death there is a library, and within that library the shelves go on forever.", "14.99", "/covers/midnight-library.jpg", "fiction", 24, 4.2, 312, true, false},
	{"Project Hail Mary", "Andy Weir", "A lone astronaut must save the earth from disaster.", "18.50", "/covers/project-hail-mary.jpg", "sci-fi", 17, 4.7, 521, true, true},
	{"Educated", "Tara Westover", "A memoir about a young girl who, kept out of school, leaves her survivalist family.", "13.25", "/covers/educated.jpg", "biography", 31, 4.5, 874, false, false},
	{"Atomic Habits", "James Clear", "An easy and proven way to build good habits and break bad ones.", "16.00", "/covers/atomic-habits.jpg", "self-help", 42, 4.8, 1203, true, false},
	{"Dune", "Frank Herbert", "Set on the desert planet Arrakis, the story of Paul Atreides.", "11.99", "/covers/dune.jpg", "sci-fi", 9, 4.6, 2310, false, false},
	{"The Silent Patient", "Alex Michaelides", "A woman shoots her husband and then never speaks another word.", "12.75", "/covers/silent-patient.jpg", "thriller", 14, 4.1, 689, false, false},
	{"Klara and the Sun", "Kazuo Ishiguro", "An Artificial Friend observes the world from a store window.", "15.40", "/covers/klara-and-the-sun.jpg", "fiction", 20, 4.0, 456, false, true},
	{"Sapiens", "Yuval Noah Harari", "A brief history of humankind.", "19.99", "/covers/sapiens.jpg", "history", 27, 4.6, 1780, true, false},
	{"The Thursday Murder Club", "Richard Osman", "Four septuagenarians meet weekly to investigate cold cases.", "10.50", "/covers/thursday-murder-club.jpg", "mystery", 33, 4.3, 540, false, false},
	{"Tomorrow, and Tomorrow, and Tomorrow", "Gabrielle Zevin", "Two friends build video games and a life together, apart.", "17.20", "/covers/tomorrow-x3.jpg", "fiction", 12, 4.4, 398, false, true},
}

// Run inserts the default admin and demo user plus the starter catalog,
// skipping whatever already exists so restarts stay idempotent against a
// pre-populated store.
func Run(ctx context.Context, users user.Repository, books book.Repository) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "seed"))

	if err := seedUser(ctx, users, "admin", "admin@bookshelf.com", "admin123", true); err != nil {
		return err
	}
	if err := seedUser(ctx, users, "user", "user@example.com", "user123", false); err != nil {
		return err
	}

	existing, err := books.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info("catalog already populated, skipping book seed", zap.Int("books", len(existing)))
		return nil
	}

	for _, d := range demoBooks {
		price, err := decimal.NewFromString(d.price)
		if err != nil {
			return err
		}
		_, err = books.Create(ctx, book.BookInput{
			Title:       d.title,
			Author:      d.author,
			Description: d.description,
			Price:       price,
			ImageURL:    d.imageURL,
			Category:    d.category,
			Stock:       d.stock,
			Rating:      d.rating,
			ReviewCount: d.reviews,
			Featured:    d.featured,
			NewRelease:  d.newRelease,
		})
		if err != nil {
			return err
		}
	}

	log.Info("seeded demo catalog", zap.Int("books", len(demoBooks)))
	return nil
}

func seedUser(ctx context.Context, users user.Repository, username, email, password string, isAdmin bool) error {
	hashed, err := user.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, username, email, hashed, isAdmin)
	if errors.Is(err, user.ErrUsernameExists) || errors.Is(err, user.ErrEmailExists) {
		return nil
	}
	return err
}
