// Package bolt implements the account, profile, and session stores on a
// single local BoltDB file. It is the embedded counterpart of the
// MongoDB/Redis backends for single-node deployments that should not
// require external services.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

var (
	bucketAccounts = []byte("accounts") // account id -> Account JSON
	bucketEmails   = []byte("emails")   // email -> account id
	bucketProfiles = []byte("profiles") // account id -> Profile JSON
	bucketSession  = []byte("session")  // "active" -> Session JSON
	bucketMeta     = []byte("meta")
)

var (
	keyActiveSession = []byte("active")
	keyInitialized   = []byte("initialized")
)

// Store is a single-file store backing all repository ports. Bolt update
// transactions are serialized, which makes check-then-insert on emails and
// read-merge-write on records atomic without further locking.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the bolt file at path and ensures all
// buckets exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt open: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketAccounts, bucketEmails, bucketProfiles, bucketSession, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt init buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the file is still readable; used by the readiness probe.
func (s *Store) Ping(_ context.Context) error {
	return s.db.View(func(*bolt.Tx) error { return nil })
}

// --- AccountRepository ---

func (s *Store) Create(_ context.Context, account *domain.Account) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		emails := tx.Bucket(bucketEmails)
		if emails.Get([]byte(account.Email)) != nil {
			return domain.ErrDuplicateAccount
		}

		b, err := json.Marshal(account)
		if err != nil {
			return fmt.Errorf("encode account: %w", err)
		}
		if err := tx.Bucket(bucketAccounts).Put([]byte(account.ID), b); err != nil {
			return err
		}
		return emails.Put([]byte(account.Email), []byte(account.ID))
	})
}

func (s *Store) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	var account *domain.Account
	err := s.db.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(bucketEmails).Get([]byte(email))
		if id == nil {
			return domain.ErrAccountNotFound
		}
		var err error
		account, err = decodeAccount(tx.Bucket(bucketAccounts).Get(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Store) FindByID(_ context.Context, id string) (*domain.Account, error) {
	var account *domain.Account
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		account, err = decodeAccount(tx.Bucket(bucketAccounts).Get([]byte(id)))
		return err
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Store) Initialized(_ context.Context) (bool, error) {
	var initialized bool
	err := s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketMeta).Get(keyInitialized) != nil {
			initialized = true
			return nil
		}
		k, _ := tx.Bucket(bucketAccounts).Cursor().First()
		initialized = k != nil
		return nil
	})
	return initialized, err
}

func (s *Store) MarkInitialized(_ context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyInitialized, []byte("1"))
	})
}

func decodeAccount(raw []byte) (*domain.Account, error) {
	if raw == nil {
		return nil, domain.ErrAccountNotFound
	}
	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &account, nil
}

// --- ProfileRepository ---

func (s *Store) Get(_ context.Context, accountID string) (*domain.Profile, error) {
	var profile *domain.Profile
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketProfiles).Get([]byte(accountID))
		if raw == nil {
			return domain.ErrProfileNotFound
		}
		profile = &domain.Profile{}
		if err := json.Unmarshal(raw, profile); err != nil {
			return fmt.Errorf("decode profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *Store) Put(_ context.Context, profile *domain.Profile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfiles).Put([]byte(profile.ID), b)
	})
}

// --- SessionStore ---

func (s *Store) Save(_ context.Context, session *domain.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyActiveSession, b)
	})
}

func (s *Store) Load(_ context.Context) (*domain.Session, error) {
	var session *domain.Session
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSession).Get(keyActiveSession)
		if raw == nil {
			return domain.ErrNoSession
		}
		session = &domain.Session{}
		if err := json.Unmarshal(raw, session); err != nil {
			return domain.ErrMalformedSession
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Store) Clear(_ context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyActiveSession)
	})
}
