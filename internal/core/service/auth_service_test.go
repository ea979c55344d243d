package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

type stubAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account // keyed by email
	marked   bool
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[account.Email]; exists {
		return domain.ErrDuplicateAccount
	}
	r.accounts[account.Email] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Initialized(_ context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.marked || len(r.accounts) > 0, nil
}

func (r *stubAccountRepo) MarkInitialized(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.marked = true
	return nil
}

// stubSessionStore keeps the persisted session as raw bytes so tests can
// plant malformed data.
type stubSessionStore struct {
	raw []byte
}

func (s *stubSessionStore) Save(_ context.Context, session *domain.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.raw = b
	return nil
}

func (s *stubSessionStore) Load(_ context.Context) (*domain.Session, error) {
	if s.raw == nil {
		return nil, domain.ErrNoSession
	}
	var session domain.Session
	if err := json.Unmarshal(s.raw, &session); err != nil {
		return nil, domain.ErrMalformedSession
	}
	return &session, nil
}

func (s *stubSessionStore) Clear(_ context.Context) error {
	s.raw = nil
	return nil
}

func newTestAuthService(repo *stubAccountRepo, store *stubSessionStore) *AuthService {
	return NewAuthService(repo, store, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	store := &stubSessionStore{}
	svc := newTestAuthService(repo, store)

	token, session, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if session == nil || session.Email != "alice@example.com" || session.Name != "Alice" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.AccountID == "" {
		t.Fatalf("expected generated account id")
	}
	if !strings.HasPrefix(session.Avatar, "https://ui-avatars.com/api/?name=Alice") {
		t.Fatalf("unexpected avatar: %s", session.Avatar)
	}

	stored, err := repo.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("account not persisted: %v", err)
	}
	// credentials are stored verbatim, login compares them exactly
	if stored.Password != "pass123" {
		t.Fatalf("expected verbatim password, got %q", stored.Password)
	}
	if store.raw == nil {
		t.Fatalf("session not persisted")
	}
	if got := svc.ActiveSession(); got == nil || got.AccountID != session.AccountID {
		t.Fatalf("active session not established: %+v", got)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), &stubSessionStore{})

	if _, _, err := svc.Register(context.Background(), "", "a@b.c", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bob", "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo, &stubSessionStore{})

	if _, _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "Bobby", "bob@example.com", "pass2"); err != domain.ErrDuplicateAccount {
		t.Fatalf("expected ErrDuplicateAccount, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("directory altered by failed registration: %d accounts", len(repo.accounts))
	}
	if repo.accounts["bob@example.com"].Name != "Bob" {
		t.Fatalf("original account overwritten")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	store := &stubSessionStore{}
	svc := newTestAuthService(repo, store)

	if _, _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, session, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session == nil || session.Name != "Carol" {
		t.Fatalf("unexpected session: %+v", session)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["account_id"] != session.AccountID {
		t.Fatalf("expected account_id %s, got %v", session.AccountID, claims["account_id"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), &stubSessionStore{})

	_, _, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), &stubSessionStore{})

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmailIsCaseSensitive(t *testing.T) {
	svc := newTestAuthService(newStubAccountRepo(), &stubSessionStore{})

	_, _, _ = svc.Register(context.Background(), "Eve", "Eve@Example.com", "pass")
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("email lookup must be case-sensitive, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	store := &stubSessionStore{}
	svc := newTestAuthService(newStubAccountRepo(), store)

	_, _, _ = svc.Register(context.Background(), "Fred", "fred@example.com", "pass")
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("second logout must not fail: %v", err)
	}
	if svc.ActiveSession() != nil {
		t.Fatalf("session still active after logout")
	}
	if store.raw != nil {
		t.Fatalf("persisted session not cleared")
	}
}

func TestAuthService_RestoreSession_AfterLogout(t *testing.T) {
	store := &stubSessionStore{}
	svc := newTestAuthService(newStubAccountRepo(), store)

	_, _, _ = svc.Register(context.Background(), "Gina", "gina@example.com", "pass")
	_ = svc.Logout(context.Background())

	// fresh process start against the same store
	restarted := newTestAuthService(newStubAccountRepo(), store)
	session, err := restarted.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if session != nil {
		t.Fatalf("expected no session after logout, got %+v", session)
	}
}

func TestAuthService_RestoreSession_RoundTrip(t *testing.T) {
	store := &stubSessionStore{}
	svc := newTestAuthService(newStubAccountRepo(), store)

	_, session, err := svc.Register(context.Background(), "Hank", "hank@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	restarted := newTestAuthService(newStubAccountRepo(), store)
	restored, err := restarted.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored == nil || restored.AccountID != session.AccountID {
		t.Fatalf("unexpected restored session: %+v", restored)
	}
	if got := restarted.ActiveSession(); got == nil || got.AccountID != session.AccountID {
		t.Fatalf("restored session not cached: %+v", got)
	}
}

func TestAuthService_RestoreSession_MalformedDiscarded(t *testing.T) {
	store := &stubSessionStore{raw: []byte("{not json")}
	svc := newTestAuthService(newStubAccountRepo(), store)

	session, err := svc.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("malformed session must not surface an error, got %v", err)
	}
	if session != nil {
		t.Fatalf("expected no session, got %+v", session)
	}
	if store.raw != nil {
		t.Fatalf("malformed remnant not cleared")
	}
}

func TestAuthService_BootstrapDemoAccount(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo, &stubSessionStore{})

	if err := svc.BootstrapDemoAccount(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if err := svc.BootstrapDemoAccount(context.Background()); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("expected exactly one demo account, got %d", len(repo.accounts))
	}

	if _, _, err := svc.Login(context.Background(), domain.DemoAccountEmail, domain.DemoAccountPass); err != nil {
		t.Fatalf("demo credentials rejected: %v", err)
	}
}

func TestAuthService_BootstrapDemoAccount_RespectsEmptyDirectory(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(repo, &stubSessionStore{})

	// directory created by a prior run but holding no accounts
	if err := repo.MarkInitialized(context.Background()); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := svc.BootstrapDemoAccount(context.Background()); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	if len(repo.accounts) != 0 {
		t.Fatalf("bootstrap overwrote an initialized empty directory")
	}
}
