package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/jobconnect/jobconnect-web/internal/domain/auth"
	apperrors "github.com/jobconnect/jobconnect-web/internal/errors"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func testSession(id string) domainauth.Session {
	return domainauth.Session{
		ID:    id,
		Token: "tok-" + id,
		Identity: domainauth.Identity{
			UserID: "user_123",
			Email:  "seeker@example.com",
			Name:   "Sam Seeker",
			Role:   domainauth.RoleJobSeeker,
		},
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	sess := testSession("s1")
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, sess.Token, got.Token)
	assert.Equal(t, sess.Identity, got.Identity)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)

	assert.True(t, mr.Exists("jobconnect:session:{s1}:token"))
	assert.True(t, mr.Exists("jobconnect:session:{s1}:user"))
	assert.Greater(t, mr.TTL("jobconnect:session:{s1}:token"), 29*time.Minute)
}

func TestSessionStore_GetNonExistent(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)

	_, err := store.Get(context.Background(), "missing")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = store.Get(context.Background(), "")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionStore_SaveRejectsInvalid(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	sess := testSession("")
	require.Error(t, store.Save(ctx, sess))

	sess = testSession("s1")
	sess.Token = ""
	require.Error(t, store.Save(ctx, sess))

	sess = testSession("s1")
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	require.Error(t, store.Save(ctx, sess))
}

func TestSessionStore_DeleteClearsBothKeys(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test:")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1")))
	require.NoError(t, store.PutHandoff(ctx, "s1", domainauth.Handoff{
		Identity:  testSession("s1").Identity,
		Target:    "/jobseeker",
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	require.NoError(t, store.Delete(ctx, "s1"))

	assert.False(t, mr.Exists("test:{s1}:token"))
	assert.False(t, mr.Exists("test:{s1}:user"))
	assert.False(t, mr.Exists("test:{s1}:handoff"))

	require.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_PartialSessionIsDropped(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("s1")))
	mr.Del("jobconnect:session:{s1}:token")

	_, err := store.Get(ctx, "s1")
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, mr.Exists("jobconnect:session:{s1}:user"))
}

func TestSessionStore_Expiry(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	sess := testSession("s1")
	sess.ExpiresAt = time.Now().Add(time.Minute)
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "s1")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestSessionStore_HandoffIsSingleUse(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	h := domainauth.Handoff{
		Identity:  testSession("s1").Identity,
		Target:    "/jobseeker",
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, store.PutHandoff(ctx, "s1", h))

	got, ok, err := store.TakeHandoff(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, h.Identity, got.Identity)
	assert.Equal(t, "/jobseeker", got.Target)

	_, ok, err = store.TakeHandoff(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_HandoffExpires(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	require.NoError(t, store.PutHandoff(ctx, "s1", domainauth.Handoff{
		Identity:  testSession("s1").Identity,
		Target:    "/jobseeker",
		ExpiresAt: time.Now().Add(time.Minute),
	}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := store.TakeHandoff(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)

	err = store.PutHandoff(ctx, "s1", domainauth.Handoff{ExpiresAt: time.Now().Add(-time.Second)})
	assert.Error(t, err)
}

func TestSessionStore_Ping(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewSessionStore(client)

	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
