// Package common defines shared helpers and sentinel errors used across
// the LinguaLink local store. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Account errors.
	ErrDuplicateNickname  = errors.New("nickname already taken")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid nickname or password")

	// API key errors.
	ErrInvalidToken = errors.New("invalid token")

	// Vault errors.
	ErrInvalidPassphrase = errors.New("invalid passphrase or corrupt vault")
)
