package services

import (
	"context"
	"time"

	"github.com/fin-api/fin_api_app/internal/core/domain"
)

// TokenSvcFacade handles issuing JWT access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the given user and returns
	// it together with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
