// Package kvstore provides the persistent key-value substrate backing the
// LinguaLink local store. All higher-level records (accounts, session,
// settings, api keys) are JSON blobs stored under fixed string keys, so the
// substrate itself stays schema-free and swappable: in-memory for tests,
// SQLite for the local file store, Postgres for a shared workstation setup.
package kvstore

import "context"

// Store is the substrate contract. Get returns (nil, nil) for an absent key;
// absence is never an error. Implementations must persist synchronously:
// when Set returns, the value is durable as far as the backend allows.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
