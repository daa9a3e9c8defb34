package ports

import (
	"context"

	"github.com/shipease/logistics-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, fullName, phone, role string) (*domain.Profile, error)
	Login(ctx context.Context, email, password string) (string, *domain.Profile, error)
}
