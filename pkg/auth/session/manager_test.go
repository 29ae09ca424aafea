package session

import (
	"context"
	"errors"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", redislib.Nil
	}
	return value, nil
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "session:" + accessID
}

func newTestManager(store *fakeStore) *Manager {
	return &Manager{
		store: store,
		keyer: fakeKeyer{},
		ttl:   time.Hour,
	}
}

func TestManagerGenerateStoresToken(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	token, err := manager.Generate(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty refresh token")
	}
	if stored := store.values["session:access-1"]; stored != token {
		t.Fatalf("stored token mismatch: %q vs %q", stored, token)
	}

	if _, err := manager.Generate(context.Background(), "  "); err == nil {
		t.Fatalf("expected empty access id to be rejected")
	}
}

func TestManagerRotateInvalidatesOldSession(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	token, err := manager.Generate(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newAccessID, newToken, err := manager.Rotate(context.Background(), "access-1", token)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if newAccessID == "" || newToken == "" {
		t.Fatalf("expected new session pair")
	}
	if newToken == token {
		t.Fatalf("rotation reused the old refresh token")
	}

	if _, ok := store.values["session:access-1"]; ok {
		t.Fatalf("expected old session to be deleted")
	}
	if stored := store.values["session:"+newAccessID]; stored != newToken {
		t.Fatalf("new session not stored")
	}

	// The old pair is spent; replaying it must fail.
	if _, _, err := manager.Rotate(context.Background(), "access-1", token); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken on replay, got %v", err)
	}
}

func TestManagerRotateRejectsWrongToken(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	if _, err := manager.Generate(context.Background(), "access-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, _, err := manager.Rotate(context.Background(), "access-1", "guessed-token")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestManagerRevoke(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	if _, err := manager.Generate(context.Background(), "access-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if err := manager.Revoke(context.Background(), "access-1"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	ok, err := manager.HasSession(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatalf("expected session to be gone after revoke")
	}
}

func TestManagerHasSession(t *testing.T) {
	store := newFakeStore()
	manager := newTestManager(store)

	if _, err := manager.Generate(context.Background(), "access-1"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	ok, err := manager.HasSession(context.Background(), "access-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatalf("expected active session")
	}

	ok, err = manager.HasSession(context.Background(), "never-issued")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatalf("expected no session for unknown access id")
	}
}
