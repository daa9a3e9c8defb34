package ports

import (
	"context"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// AuthRepository defines the interface for profile persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	// ListByRole returns all profiles with the given role (e.g. couriers
	// available for assignment).
	ListByRole(ctx context.Context, role string) ([]*domain.Profile, error)
}
