package apikeys

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alebedenko/lingualink/internal/common"
	"github.com/alebedenko/lingualink/internal/kvstore"
)

func newTestService() *Service {
	return NewService(kvstore.NewMemoryStore(), []byte("test-secret"))
}

func TestIssueThenVerify(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	key, token, err := svc.Issue(ctx, "meeting-bot")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "meeting-bot", key.Name)
	assert.NotEmpty(t, key.ID)
	assert.NotEmpty(t, key.Fingerprint)

	got, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, key.ID, got.ID)
}

func TestVerify_RevokedKeyFails(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	key, token, err := svc.Issue(ctx, "temp")
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, key.ID))

	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_WrongSecretFails(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	issuer := NewService(kv, []byte("secret-a"))
	_, token, err := issuer.Issue(ctx, "k")
	require.NoError(t, err)

	verifier := NewService(kv, []byte("secret-b"))
	_, err = verifier.Verify(ctx, token)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_GarbageTokenFails(t *testing.T) {
	svc := newTestService()
	_, err := svc.Verify(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestRevoke_UnknownID(t *testing.T) {
	svc := newTestService()
	err := svc.Revoke(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_OrderedByCreation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, _, err := svc.Issue(ctx, "first")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, _, err := svc.Issue(ctx, "second")
	require.NoError(t, err)

	keys, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, first.ID, keys[0].ID)
	assert.Equal(t, second.ID, keys[1].ID)
}
