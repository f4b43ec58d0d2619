// Package apikeys issues and verifies local API keys for the translation
// service. A key is an HS256 JWT signed with the machine secret; only its
// SHA-256 fingerprint is persisted, so the token itself is shown exactly
// once at issue time.
package apikeys

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/alebedenko/lingualink/internal/common"
	"github.com/alebedenko/lingualink/internal/kvstore"
)

const apiKeysKey = "api_keys"

// Key is the persisted record of an issued API key.
type Key struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"createdAt"`
}

type claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

type Service struct {
	kv     kvstore.Store
	secret []byte
}

func NewService(kv kvstore.Store, secret []byte) *Service {
	return &Service{kv: kv, secret: secret}
}

func fingerprint(token string) string {
	h := sha256.Sum256([]byte(token))
	return hex.EncodeToString(h[:])
}

func (s *Service) load(ctx context.Context) (map[string]Key, error) {
	b, err := s.kv.Get(ctx, apiKeysKey)
	if err != nil {
		return nil, fmt.Errorf("error reading api keys: %w", err)
	}
	keys := make(map[string]Key)
	if len(b) == 0 {
		return keys, nil
	}
	if err := json.Unmarshal(b, &keys); err != nil {
		return make(map[string]Key), nil
	}
	return keys, nil
}

func (s *Service) save(ctx context.Context, keys map[string]Key) error {
	b, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("error encoding api keys: %w", err)
	}
	if err := s.kv.Set(ctx, apiKeysKey, b); err != nil {
		return fmt.Errorf("error writing api keys: %w", err)
	}
	return nil
}

// Issue mints a named API key and persists its record. The returned token
// string is not recoverable later.
func (s *Service) Issue(ctx context.Context, name string) (*Key, string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       id,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Name: name,
	})
	token, err := t.SignedString(s.secret)
	if err != nil {
		return nil, "", fmt.Errorf("error signing api key: %w", err)
	}

	key := Key{ID: id, Name: name, Fingerprint: fingerprint(token), CreatedAt: now}

	keys, err := s.load(ctx)
	if err != nil {
		return nil, "", err
	}
	keys[id] = key
	if err := s.save(ctx, keys); err != nil {
		return nil, "", err
	}

	return &key, token, nil
}

// List returns issued keys ordered by creation time.
func (s *Service) List(ctx context.Context) ([]Key, error) {
	keys, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Revoke removes the key record; its token stops verifying immediately.
func (s *Service) Revoke(ctx context.Context, id string) error {
	keys, err := s.load(ctx)
	if err != nil {
		return err
	}
	if _, ok := keys[id]; !ok {
		return common.ErrNotFound
	}
	delete(keys, id)
	return s.save(ctx, keys)
}

// Verify checks the token signature and that the key has not been revoked.
// Every failure mode is the same common.ErrInvalidToken.
func (s *Service) Verify(ctx context.Context, token string) (*Key, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, common.ErrInvalidToken
	}

	keys, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	key, ok := keys[c.ID]
	if !ok || key.Fingerprint != fingerprint(token) {
		return nil, common.ErrInvalidToken
	}
	return &key, nil
}
