package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitpro/fitpro-api/internal/core/domain"
	"github.com/fitpro/fitpro-api/internal/core/ports"
)

// ProfileService implements the profile store and its health-metrics
// derivation. Saves run read-merge-write under a per-account lock so
// concurrent writers on the same account cannot lose updates.
type ProfileService struct {
	profiles ports.ProfileRepository
	accounts ports.AccountRepository
	locks    *keyMutex
	delay    time.Duration
	log      zerolog.Logger
}

func NewProfileService(profiles ports.ProfileRepository, accounts ports.AccountRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		accounts: accounts,
		locks:    newKeyMutex(defaultLockShards),
		log:      log,
	}
}

// SimulateLatency sets an artificial delay applied before each operation
// touches storage. Zero disables it.
func (s *ProfileService) SimulateLatency(d time.Duration) {
	s.delay = d
}

// GetProfile returns the stored profile for the account, or
// domain.ErrProfileNotFound when none was ever saved.
func (s *ProfileService) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	if err := sleepCtx(ctx, s.delay); err != nil {
		return nil, err
	}
	return s.profiles.Get(ctx, accountID)
}

// SaveProfile merges the partial update onto the stored record (or an
// account-seeded base when this is the first save), forces the identifier
// and timestamp, recomputes health metrics when weight and height are both
// positive, persists the full record, and returns it.
func (s *ProfileService) SaveProfile(ctx context.Context, accountID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	if accountID == "" {
		return nil, domain.ErrAccountNotFound
	}
	if err := sleepCtx(ctx, s.delay); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(accountID)
	defer unlock()

	profile, err := s.profiles.Get(ctx, accountID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		profile = s.newBaseProfile(ctx, accountID)
	case err != nil:
		return nil, err
	}

	profile.Apply(update)
	profile.ID = accountID
	profile.UpdatedAt = time.Now().UTC()
	profile.RecomputeMetrics()

	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("account_id", accountID).
		Str("bmi", profile.BMI).
		Str("bmi_status", profile.BMIStatus).
		Int("daily_calories", profile.DailyCalories).
		Msg("profile saved")

	return profile, nil
}

// newBaseProfile builds the lazily created first record, seeded from the
// account's name and email when the account is known.
func (s *ProfileService) newBaseProfile(ctx context.Context, accountID string) *domain.Profile {
	profile := &domain.Profile{ID: accountID}
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			s.log.Warn().Err(err).Str("account_id", accountID).Msg("account lookup failed, seeding empty profile")
		}
		return profile
	}
	profile.Name = account.Name
	profile.Email = account.Email
	return profile
}
