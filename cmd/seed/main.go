// Command seed bootstraps the catalog database: it creates the admin
// account if missing and can generate a batch of fake catalog entries for
// local development.
//
//	MONGO_URI=... JWT_SECRET=x go run ./cmd/seed -movies 100
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/infrastructure/config"
	mongodb "github.com/cinevault/catalog-api/internal/infrastructure/db/mongo"
	"github.com/cinevault/catalog-api/pkg/logger"
)

var adjectives = []string{"Dark", "Golden", "Silent", "Lost", "Hidden", "Brave", "Wild", "Infinite", "Secret", "Broken"}
var nouns = []string{"Knight", "Kingdom", "Dream", "Future", "Legend", "Warrior", "Soul", "Star", "Memory", "Promise"}
var genres = []string{"Action", "Drama", "Sci-Fi", "Comedy", "Thriller"}

func main() {
	var (
		adminUser = flag.String("admin-user", "admin", "username for the bootstrap admin")
		adminPass = flag.String("admin-pass", os.Getenv("SEED_ADMIN_PASSWORD"), "password for the bootstrap admin (or SEED_ADMIN_PASSWORD)")
		movies    = flag.Int("movies", 0, "number of fake catalog entries to generate")
	)
	flag.Parse()

	ctx := context.Background()
	log := logger.Init(logger.Options{Pretty: true})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(ctx)

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	if *adminPass == "" {
		log.Fatal().Msg("admin password required: set -admin-pass or SEED_ADMIN_PASSWORD")
	}

	if _, err := users.FindByUsername(ctx, *adminUser); err == nil {
		log.Info().Str("username", *adminUser).Msg("admin user already exists")
	} else if errors.Is(err, domain.ErrUserNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(*adminPass), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash admin password")
		}
		_, err = users.Create(ctx, &domain.User{
			Username:     *adminUser,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create admin user")
		}
		log.Info().Str("username", *adminUser).Msg("admin user created")
	} else {
		log.Fatal().Err(err).Msg("admin lookup failed")
	}

	if *movies <= 0 {
		return
	}

	repo := mongodb.NewMovieRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create movie indexes")
	}

	for i := 0; i < *movies; i++ {
		if _, err := repo.Create(ctx, fakeMovie(i)); err != nil {
			log.Fatal().Err(err).Int("seeded", i).Msg("failed to insert movie")
		}
	}
	log.Info().Int("count", *movies).Msg("catalog seeded")
}

func fakeMovie(i int) *domain.Movie {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	genre := genres[rand.Intn(len(genres))]

	year := 1980 + rand.Intn(45)
	rating := 4 + rand.Float64()*5 // 4.0 to 9.0

	return &domain.Movie{
		Title:       fmt.Sprintf("The %s %s %d", adj, noun, i+1),
		Description: fmt.Sprintf("A gripping %s movie about a %s journey to find the %s.", genre, adj, noun),
		Rating:      float64(int(rating*10)) / 10,
		Year:        strconv.Itoa(year),
		Duration:    fmt.Sprintf("%d min", 90+rand.Intn(90)),
		CreatedAt:   time.Now().UTC().Add(-time.Duration(rand.Intn(365*24)) * time.Hour),
	}
}
