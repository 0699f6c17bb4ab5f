package ports

import (
	"context"

	"github.com/lostpaws/petfinder-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrDuplicateEmail when the
	// unique email index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)

	UpdateName(ctx context.Context, id, name string) error
	UpdateEmail(ctx context.Context, id, email string) error
	UpdatePhone(ctx context.Context, id, phone string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}
