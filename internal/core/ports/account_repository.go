package ports

import (
	"context"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

// AccountRepository defines persistence for the account directory.
//
// Create must perform its duplicate-email check and the insert atomically
// with respect to other callers, otherwise concurrent registrations of the
// same email could both succeed.
type AccountRepository interface {
	// Create inserts a new account. Returns domain.ErrDuplicateAccount when
	// an account with the same email (case-sensitive) already exists.
	Create(ctx context.Context, account *domain.Account) error
	// FindByEmail returns the account with the exact email, or
	// domain.ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// FindByID returns the account with the given identifier, or
	// domain.ErrAccountNotFound.
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// Initialized reports whether the directory has ever been created.
	// An empty directory that exists still counts as initialized.
	Initialized(ctx context.Context) (bool, error)
	// MarkInitialized records that the directory now exists.
	MarkInitialized(ctx context.Context) error
}

// SessionStore persists the single active session.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	// Load returns the persisted session, domain.ErrNoSession when absent,
	// or domain.ErrMalformedSession when the stored data fails to parse.
	Load(ctx context.Context) (*domain.Session, error)
	// Clear removes the persisted session. Clearing an absent session is
	// not an error.
	Clear(ctx context.Context) error
}
