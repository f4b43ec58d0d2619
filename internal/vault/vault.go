// Package vault exports and imports the whole local store as a single
// encrypted blob, so a user can move their accounts and preferences to
// another machine. The envelope key is derived from a passphrase with
// argon2id; the payload is sealed with AES-GCM.
package vault

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/alebedenko/lingualink/internal/common"
	"github.com/alebedenko/lingualink/internal/kvstore"
)

const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32
)

// envelope is the serialized export format. Salt and nonce travel in the
// clear; both are worthless without the passphrase.
type envelope struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

func deriveKey(passphrase []byte, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keySize)
}

// Export snapshots every key in the store and seals the snapshot under the
// passphrase.
func Export(ctx context.Context, store kvstore.Store, passphrase []byte) ([]byte, error) {
	snapshot, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading store: %w", err)
	}

	plaintext, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("error encoding snapshot: %w", err)
	}

	salt := common.GenerateRandByteArray(saltSize)
	nonce := common.GenerateRandByteArray(nonceSize)
	key := deriveKey(passphrase, salt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	e := envelope{
		Salt:  salt,
		Nonce: nonce,
		Data:  aesgcm.Seal(nil, nonce, plaintext, nil),
	}
	return json.Marshal(e)
}

// Import decrypts an exported blob and replaces the store contents with it.
// A wrong passphrase or a damaged envelope fails with
// common.ErrInvalidPassphrase before anything is written.
func Import(ctx context.Context, store kvstore.Store, data []byte, passphrase []byte) error {
	var e envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidPassphrase, err)
	}
	if len(e.Nonce) != nonceSize {
		return common.ErrInvalidPassphrase
	}

	key := deriveKey(passphrase, e.Salt)
	defer common.WipeByteArray(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, e.Nonce, e.Data, nil)
	if err != nil {
		return common.ErrInvalidPassphrase
	}

	var snapshot map[string][]byte
	if err := json.Unmarshal(plaintext, &snapshot); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidPassphrase, err)
	}

	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing store: %w", err)
	}
	for k, v := range snapshot {
		if err := store.Set(ctx, k, v); err != nil {
			return fmt.Errorf("error restoring key %s: %w", k, err)
		}
	}
	return nil
}
