// Package session tracks who is currently signed in on this machine:
// a single denormalized profile copy under the "current_user" key,
// independent of credential verification. There is no expiry and no
// multi-device awareness; the credential store refreshes or clears the
// pointer as accounts change.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alebedenko/lingualink/internal/accounts"
	"github.com/alebedenko/lingualink/internal/kvstore"
)

const currentUserKey = "current_user"

type Manager struct {
	kv kvstore.Store
}

func NewManager(kv kvstore.Store) *Manager {
	return &Manager{kv: kv}
}

// Set overwrites the session pointer. A nil profile signs the user out.
func (m *Manager) Set(ctx context.Context, p *accounts.Profile) error {
	if p == nil {
		if err := m.kv.Delete(ctx, currentUserKey); err != nil {
			return fmt.Errorf("error clearing session: %w", err)
		}
		return nil
	}

	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}
	if err := m.kv.Set(ctx, currentUserKey, b); err != nil {
		return fmt.Errorf("error writing session: %w", err)
	}
	return nil
}

// Get returns the signed-in profile, or nil when nobody is signed in.
// Malformed stored data reads as signed-out, never as an error.
func (m *Manager) Get(ctx context.Context) (*accounts.Profile, error) {
	b, err := m.kv.Get(ctx, currentUserKey)
	if err != nil {
		return nil, fmt.Errorf("error reading session: %w", err)
	}
	if len(b) == 0 {
		return nil, nil
	}

	var p accounts.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}
