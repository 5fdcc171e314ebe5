package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinevault/catalog-api/internal/core/domain"
	"github.com/cinevault/catalog-api/internal/core/ports"
)

const moviesCollection = "movies"

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

type mongoMovie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Rating      float64            `bson:"rating"`
	Year        string             `bson:"year,omitempty"`
	Duration    string             `bson:"duration,omitempty"`
	Poster      string             `bson:"poster,omitempty"`
	Backdrop    string             `bson:"backdrop,omitempty"`
	CreatedBy   string             `bson:"created_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toDoc(m)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByTitle retrieves a movie by exact title match. Used only by the
// external-save duplicate check.
func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mm mongoMovie
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&mm); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return fromDoc(&mm), nil
}

// List returns a page of movies matching filter and the total match count.
func (r *MovieRepository) List(ctx context.Context, filter ports.ListMoviesFilter) ([]*domain.Movie, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := listQuery(filter.Search)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	opts := options.Find().
		SetSort(sortSpec(filter.Sort)).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	defer cur.Close(ctx)

	var movies []*domain.Movie
	for cur.Next(ctx) {
		var mm mongoMovie
		if err := cur.Decode(&mm); err != nil {
			return nil, 0, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, fromDoc(&mm))
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}

	return movies, total, nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the list and save paths rely on.
func (r *MovieRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// listQuery builds the Mongo filter for a search term. The term is
// regex-quoted so matching stays a literal case-insensitive substring
// test, never a user-supplied pattern.
func listQuery(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"title": re},
		bson.M{"description": re},
	}}
}

// sortSpec maps a sort key to a Mongo sort document. Unknown keys fall
// back to newest-first.
func sortSpec(sort domain.MovieSort) bson.D {
	switch sort {
	case domain.SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	case domain.SortYear:
		return bson.D{{Key: "year", Value: -1}}
	case domain.SortTitle:
		return bson.D{{Key: "title", Value: 1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

func toDoc(m *domain.Movie) mongoMovie {
	return mongoMovie{
		Title:       m.Title,
		Description: m.Description,
		Rating:      m.Rating,
		Year:        m.Year,
		Duration:    m.Duration,
		Poster:      m.Poster,
		Backdrop:    m.Backdrop,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func fromDoc(mm *mongoMovie) *domain.Movie {
	return &domain.Movie{
		ID:          mm.ID.Hex(),
		Title:       mm.Title,
		Description: mm.Description,
		Rating:      mm.Rating,
		Year:        mm.Year,
		Duration:    mm.Duration,
		Poster:      mm.Poster,
		Backdrop:    mm.Backdrop,
		CreatedBy:   mm.CreatedBy,
		CreatedAt:   mm.CreatedAt.UTC(),
	}
}
