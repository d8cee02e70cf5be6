package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	titles     = []string{"The Sea", "Dune", "Sea of Tranquility", "Kafka on the Shore", "The Old Man and the Sea", "Norwegian Wood", "Laskar Pelangi", "Bumi Manusia"}
	authors    = []string{"John Banville", "Frank Herbert", "Emily St. John Mandel", "Haruki Murakami", "Ernest Hemingway", "Andrea Hirata", "Pramoedya Ananta Toer"}
	publishers = []string{"Penguin", "HarperCollins", "Vintage", "Bentang Pustaka", "Scribner", "Knopf"}
)

func main() {
	count := flag.Int("count", 25, "Number of books to insert")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("failed to connect to database", "dsn", logger.RedactDSN(cfg.DatabaseDSN), "error", err)
	}
	defer pool.Close()

	service := book.NewService(book.NewPostgresRepo(pool, cfg.DBTimeout), log)

	inserted, err := seed(ctx, service, rand.New(rand.NewSource(42)), *count)
	if err != nil {
		log.Fatal("seeding failed", "inserted", inserted, "error", err)
	}
	log.Info("seeding complete", "inserted", inserted)
}

// seed creates n random books through the service and returns how many succeeded.
func seed(ctx context.Context, service *book.Service, rng *rand.Rand, n int) (int, error) {
	for i := 0; i < n; i++ {
		if _, err := service.Create(ctx, randomInput(rng, i)); err != nil {
			return i, err
		}
	}
	return n, nil
}

func randomInput(rng *rand.Rand, i int) book.Input {
	name := fmt.Sprintf("%s #%d", titles[rng.Intn(len(titles))], i+1)
	year := 1950 + rng.Intn(75)
	pageCount := 100 + rng.Intn(800)

	readPage := rng.Intn(pageCount + 1)
	if rng.Intn(4) == 0 {
		readPage = pageCount
	}

	return book.Input{
		Name:      &name,
		Year:      &year,
		Author:    authors[rng.Intn(len(authors))],
		Summary:   fmt.Sprintf("Sample summary for %s.", name),
		Publisher: publishers[rng.Intn(len(publishers))],
		PageCount: pageCount,
		ReadPage:  readPage,
		Reading:   readPage > 0 && readPage < pageCount,
	}
}
