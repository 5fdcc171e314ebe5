package ports

import (
	"context"

	"github.com/cinevault/catalog-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
// FindByUsername matches usernames case-insensitively.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
