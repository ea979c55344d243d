package ports

import (
	"context"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

// ProfileRepository defines persistence for profile records, keyed by the
// owning account's identifier.
type ProfileRepository interface {
	// Get returns the stored profile, or domain.ErrProfileNotFound when the
	// account has never saved one.
	Get(ctx context.Context, accountID string) (*domain.Profile, error)
	// Put stores the full profile record under its ID, replacing any
	// previous version.
	Put(ctx context.Context, profile *domain.Profile) error
}
