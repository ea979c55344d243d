package ports

import (
	"context"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

// AuthService defines the account-directory and session use cases.
type AuthService interface {
	// Register creates an account and establishes it as the active session.
	// The returned token binds subsequent requests to that session.
	Register(ctx context.Context, name, email, password string) (string, *domain.Session, error)
	// Login establishes the session for the account matching email and
	// password exactly.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Logout clears the active session. Idempotent.
	Logout(ctx context.Context) error
	// ActiveSession returns the current session, or nil when logged out.
	ActiveSession() *domain.Session
	// RestoreSession loads the persisted session at startup. Absent or
	// malformed persisted data yields (nil, nil); malformed remnants are
	// cleared.
	RestoreSession(ctx context.Context) (*domain.Session, error)
	// BootstrapDemoAccount seeds the demo account, only if the directory
	// has never been initialized.
	BootstrapDemoAccount(ctx context.Context) error
}
