package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fitpro/fitpro-api/internal/core/domain"
	"github.com/fitpro/fitpro-api/internal/core/ports"
)

// AuthService implements registration, login, and session lifecycle over
// the account directory. The active session is cached in memory and
// mirrored to the session store.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	delay     time.Duration
	log       zerolog.Logger

	mu      sync.RWMutex
	current *domain.Session
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// SimulateLatency sets an artificial delay applied before each operation
// touches storage, letting clients exercise their loading states. Zero
// disables it.
func (s *AuthService) SimulateLatency(d time.Duration) {
	s.delay = d
}

// Register creates a new account with a generated identifier and avatar,
// persists it, and establishes it as the active session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, *domain.Session, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := sleepCtx(ctx, s.delay); err != nil {
		return "", nil, err
	}

	account := &domain.Account{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		Avatar:    domain.AvatarURL(name),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return "", nil, err
	}

	session := domain.NewSession(account)
	if err := s.establish(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("account_id", account.ID).Str("email", account.Email).Msg("account registered")
	return token, session, nil
}

// Login establishes the session for the account matching email and password
// exactly. Email comparison is case-sensitive.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := sleepCtx(ctx, s.delay); err != nil {
		return "", nil, err
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if account.Password != password {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := domain.NewSession(account)
	if err := s.establish(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("account_id", account.ID).Msg("login")
	return token, session, nil
}

// Logout clears the active session and its persisted copy. Calling it with
// no active session is not an error.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.setCurrent(nil)
	s.log.Info().Msg("logout")
	return nil
}

// ActiveSession returns the cached active session, or nil when logged out.
func (s *AuthService) ActiveSession() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// RestoreSession loads the persisted session, called once at startup.
// Absent data yields no session; malformed data is discarded silently and
// its remnant cleared.
func (s *AuthService) RestoreSession(ctx context.Context) (*domain.Session, error) {
	session, err := s.sessions.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrNoSession):
		return nil, nil
	case errors.Is(err, domain.ErrMalformedSession):
		s.log.Warn().Msg("discarding malformed persisted session")
		_ = s.sessions.Clear(ctx)
		return nil, nil
	case err != nil:
		return nil, err
	}

	s.setCurrent(session)
	s.log.Info().Str("account_id", session.AccountID).Msg("session restored")
	return session, nil
}

// BootstrapDemoAccount seeds the directory with the fixed demo account,
// only when the directory has never been initialized. An existing
// directory, even an empty one, is left untouched.
func (s *AuthService) BootstrapDemoAccount(ctx context.Context) error {
	initialized, err := s.accounts.Initialized(ctx)
	if err != nil {
		return err
	}
	if initialized {
		return nil
	}

	demo := &domain.Account{
		ID:        domain.DemoAccountID,
		Name:      domain.DemoAccountName,
		Email:     domain.DemoAccountEmail,
		Password:  domain.DemoAccountPass,
		Avatar:    domain.DemoAvatarURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, demo); err != nil && !errors.Is(err, domain.ErrDuplicateAccount) {
		return err
	}

	s.log.Info().Str("email", domain.DemoAccountEmail).Msg("demo account seeded")
	return s.accounts.MarkInitialized(ctx)
}

// establish persists the session and caches it as current.
func (s *AuthService) establish(ctx context.Context, session *domain.Session) error {
	if err := s.sessions.Save(ctx, session); err != nil {
		return err
	}
	s.setCurrent(session)
	return nil
}

func (s *AuthService) setCurrent(session *domain.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"account_id": session.AccountID,
		"email":      session.Email,
		"name":       session.Name,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
