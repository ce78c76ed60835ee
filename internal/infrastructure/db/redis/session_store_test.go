package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestSessionStore_Rotate(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	if err := store.Rotate(ctx, "alice", "token-1"); err != nil {
		t.Fatalf("first rotate: %v", err)
	}
	ok, err := store.IsRegistered(ctx, "token-1")
	if err != nil || !ok {
		t.Fatalf("token-1 should be registered, ok=%v err=%v", ok, err)
	}

	// Rotating invalidates the subject's previous token.
	if err := store.Rotate(ctx, "alice", "token-2"); err != nil {
		t.Fatalf("second rotate: %v", err)
	}
	if ok, _ := store.IsRegistered(ctx, "token-1"); ok {
		t.Fatalf("token-1 should be invalidated after rotation")
	}
	if ok, _ := store.IsRegistered(ctx, "token-2"); !ok {
		t.Fatalf("token-2 should be registered")
	}
}

func TestSessionStore_RotateIsolatedPerSubject(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	if err := store.Rotate(ctx, "alice", "token-a"); err != nil {
		t.Fatalf("rotate alice: %v", err)
	}
	if err := store.Rotate(ctx, "bob", "token-b"); err != nil {
		t.Fatalf("rotate bob: %v", err)
	}

	if ok, _ := store.IsRegistered(ctx, "token-a"); !ok {
		t.Fatalf("bob's login must not revoke alice's token")
	}
}

func TestSessionStore_Revoke(t *testing.T) {
	client, _ := newTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	if err := store.Rotate(ctx, "alice", "token-1"); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	existed, err := store.Revoke(ctx, "token-1")
	if err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if !existed {
		t.Fatalf("revoke should report the token existed")
	}
	if ok, _ := store.IsRegistered(ctx, "token-1"); ok {
		t.Fatalf("token should be gone after revoke")
	}

	existed, err = store.Revoke(ctx, "token-1")
	if err != nil {
		t.Fatalf("second revoke: %v", err)
	}
	if existed {
		t.Fatalf("second revoke should report the token as missing")
	}
}

func TestSessionStore_EntryExpiry(t *testing.T) {
	client, mr := newTestClient(t)
	store := NewSessionStore(client)
	ctx := context.Background()

	if err := store.Rotate(ctx, "alice", "token-1"); err != nil {
		t.Fatalf("rotate: %v", err)
	}

	mr.FastForward(storageTTL)

	if ok, _ := store.IsRegistered(ctx, "token-1"); ok {
		t.Fatalf("entry should expire after the storage TTL")
	}

	// The user pointer expired too, so rotation starts clean.
	if err := store.Rotate(ctx, "alice", "token-2"); err != nil {
		t.Fatalf("rotate after expiry: %v", err)
	}
	if ok, _ := store.IsRegistered(ctx, "token-2"); !ok {
		t.Fatalf("token-2 should be registered")
	}
}
