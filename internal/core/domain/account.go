package domain

import (
	"errors"
	"net/url"
	"time"
)

var ErrDuplicateAccount = errors.New("account already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")
var ErrForbidden = errors.New("access forbidden")

// ErrNoSession is the "logged out" state: no persisted session exists.
var ErrNoSession = errors.New("no active session")

// ErrMalformedSession marks persisted session data that fails to parse.
// It is recovered internally and never surfaced to callers.
var ErrMalformedSession = errors.New("malformed session data")

// Account is a registered user in the directory. The password is stored
// verbatim and login compares it exactly; hashing is intentionally out of
// scope for this service.
type Account struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Avatar    string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Session is the record of which account is currently authenticated.
// At most one session is active at a time across the whole service.
type Session struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
}

// NewSession projects an account onto its session view.
func NewSession(a *Account) *Session {
	return &Session{
		AccountID: a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Avatar:    a.Avatar,
	}
}

// AvatarURL builds the deterministic ui-avatars reference used for newly
// registered accounts.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

// Fixed demo account seeded into a never-initialized directory.
const (
	DemoAccountID    = "demo-1"
	DemoAccountName  = "Demo User"
	DemoAccountEmail = "demo@fitpro.com"
	DemoAccountPass  = "demo123"
	DemoAvatarURL    = "https://ui-avatars.com/api/?name=Demo+User&background=ea580c&color=fff"
)
