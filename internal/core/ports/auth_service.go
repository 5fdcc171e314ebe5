package ports

import (
	"context"

	"github.com/cinevault/catalog-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
