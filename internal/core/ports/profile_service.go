package ports

import (
	"context"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

// ProfileService defines the profile-metrics use cases.
type ProfileService interface {
	// GetProfile returns the stored profile for the account, or
	// domain.ErrProfileNotFound when none was ever saved.
	GetProfile(ctx context.Context, accountID string) (*domain.Profile, error)
	// SaveProfile merges the partial update onto the stored profile (or an
	// account-seeded base record), recomputes health metrics when weight
	// and height are both positive, persists, and returns the full record.
	SaveProfile(ctx context.Context, accountID string, update domain.ProfileUpdate) (*domain.Profile, error)
}
