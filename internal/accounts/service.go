// Package accounts owns the credential store: the durable mapping from
// account id to profile and password digest, and the identity rules around
// it (case-insensitive nickname uniqueness, password length gate,
// non-enumerating authentication).
package accounts

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alebedenko/lingualink/internal/common"
	"github.com/alebedenko/lingualink/internal/kvstore"
)

const usersKey = "users"

// MinPasswordLength is the shortest password Register and ChangePassword accept.
const MinPasswordLength = 8

// SessionStore is the session pointer as the credential store sees it.
// The store keeps the session a cache of the active profile: profile
// mutations refresh it, account deletion clears it.
type SessionStore interface {
	Get(ctx context.Context) (*Profile, error)
	Set(ctx context.Context, p *Profile) error
}

// Service implements the credential store over a key-value substrate.
// All entries live in one JSON blob under the "users" key; the mutex
// serializes its read-modify-write cycles.
type Service struct {
	mu       sync.Mutex
	kv       kvstore.Store
	sessions SessionStore
}

func NewService(kv kvstore.Store, sessions SessionStore) *Service {
	return &Service{kv: kv, sessions: sessions}
}

// digest is the stored password form: unsalted SHA-256, hex-encoded.
// The store lives on the user's own machine and is not a security
// boundary; the vault export path is where real key derivation happens.
func digest(password string) string {
	h := sha256.Sum256([]byte(password))
	return hex.EncodeToString(h[:])
}

func digestEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// load reads the users blob. Absent or corrupt data degrades to an empty
// map, never an error: a damaged store reads as "no accounts".
func (s *Service) load(ctx context.Context) (map[string]credentialEntry, error) {
	b, err := s.kv.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("error reading users: %w", err)
	}
	entries := make(map[string]credentialEntry)
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return make(map[string]credentialEntry), nil
	}
	return entries, nil
}

func (s *Service) save(ctx context.Context, entries map[string]credentialEntry) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("error encoding users: %w", err)
	}
	if err := s.kv.Set(ctx, usersKey, b); err != nil {
		return fmt.Errorf("error writing users: %w", err)
	}
	return nil
}

func nicknameTaken(entries map[string]credentialEntry, nickname, exceptID string) bool {
	for id, e := range entries {
		if id == exceptID {
			continue
		}
		if strings.EqualFold(e.User.Nickname, nickname) {
			return true
		}
	}
	return false
}

// Register creates a new account and returns its public profile.
// It fails with common.ErrDuplicateNickname when the nickname is already
// taken (case-insensitively) and with common.ErrWeakPassword when the
// password is shorter than MinPasswordLength.
func (s *Service) Register(ctx context.Context, nickname, password string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if nicknameTaken(entries, nickname, "") {
		return nil, common.ErrDuplicateNickname
	}
	if len(password) < MinPasswordLength {
		return nil, common.ErrWeakPassword
	}

	profile := Profile{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		Plan:      PlanFree,
		CreatedAt: time.Now().UTC(),
	}

	entries[profile.ID] = credentialEntry{User: profile, PasswordHash: digest(password)}
	if err := s.save(ctx, entries); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Authenticate returns the profile whose nickname matches case-insensitively
// and whose stored digest matches the supplied password. Both miss cases
// surface the same common.ErrInvalidCredentials so callers cannot probe
// which nicknames exist.
func (s *Service) Authenticate(ctx context.Context, nickname, password string) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	candidate := digest(password)
	for _, e := range entries {
		if strings.EqualFold(e.User.Nickname, nickname) && digestEqual(e.PasswordHash, candidate) {
			p := e.User
			return &p, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

// UpdateProfile shallow-merges the patch into the stored profile. A nickname
// change re-checks uniqueness against every other account. When the updated
// account is the active session, the session copy is refreshed too.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := entries[id]
	if !ok {
		return nil, common.ErrNotFound
	}

	if patch.Nickname != nil && !strings.EqualFold(*patch.Nickname, entry.User.Nickname) {
		if nicknameTaken(entries, *patch.Nickname, id) {
			return nil, common.ErrDuplicateNickname
		}
	}

	if patch.Nickname != nil {
		entry.User.Nickname = *patch.Nickname
	}
	if patch.Email != nil {
		entry.User.Email = *patch.Email
	}
	if patch.Phone != nil {
		entry.User.Phone = *patch.Phone
	}
	if patch.Country != nil {
		entry.User.Country = *patch.Country
	}
	if patch.Avatar != nil {
		entry.User.Avatar = *patch.Avatar
	}
	if patch.Plan != nil {
		entry.User.Plan = *patch.Plan
	}

	entries[id] = entry
	if err := s.save(ctx, entries); err != nil {
		return nil, err
	}

	if err := s.refreshSession(ctx, &entry.User); err != nil {
		return nil, err
	}

	p := entry.User
	return &p, nil
}

// ChangePassword replaces the stored digest after verifying the old
// password. The new password goes through the same length gate as Register.
func (s *Service) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	entry, ok := entries[id]
	if !ok {
		return common.ErrNotFound
	}
	if !digestEqual(entry.PasswordHash, digest(oldPassword)) {
		return common.ErrInvalidCredentials
	}
	if len(newPassword) < MinPasswordLength {
		return common.ErrWeakPassword
	}

	entry.PasswordHash = digest(newPassword)
	entries[id] = entry
	return s.save(ctx, entries)
}

// DeleteAccount removes the entry and clears the session pointer when it
// referenced this id. Removal is unconditional: no password re-confirmation
// happens here, the presentation layer is expected to confirm intent.
// Deleting an unknown id is a no-op.
func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	if _, ok := entries[id]; !ok {
		return nil
	}

	delete(entries, id)
	if err := s.save(ctx, entries); err != nil {
		return err
	}

	if s.sessions == nil {
		return nil
	}
	active, err := s.sessions.Get(ctx)
	if err != nil {
		return err
	}
	if active != nil && active.ID == id {
		return s.sessions.Set(ctx, nil)
	}
	return nil
}

// refreshSession rewrites the session copy when it points at the given
// profile, keeping the pointer a cache of the credential store.
func (s *Service) refreshSession(ctx context.Context, p *Profile) error {
	if s.sessions == nil {
		return nil
	}
	active, err := s.sessions.Get(ctx)
	if err != nil {
		return err
	}
	if active != nil && active.ID == p.ID {
		return s.sessions.Set(ctx, p)
	}
	return nil
}
