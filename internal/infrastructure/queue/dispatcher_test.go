package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adminhub/console-api/internal/core/domain"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []domain.OutboundEmail
	done chan struct{}
	want int
}

func newRecordingSender(want int) *recordingSender {
	return &recordingSender{done: make(chan struct{}), want: want}
}

func (r *recordingSender) Send(_ context.Context, email domain.OutboundEmail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, email)
	if len(r.sent) == r.want {
		close(r.done)
	}
	return nil
}

func (r *recordingSender) wait(t *testing.T) []domain.OutboundEmail {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.OutboundEmail(nil), r.sent...)
}

func TestDispatcher_DeliversEnqueuedMail(t *testing.T) {
	sender := newRecordingSender(3)
	d := NewDispatcher(2, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, rcpt := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		d.Enqueue(domain.OutboundEmail{Subject: "hi", Recipients: []string{rcpt}})
	}

	sent := sender.wait(t)
	if len(sent) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(sent))
	}
}

func TestDispatcher_SameRecipientInOrder(t *testing.T) {
	const n = 10
	sender := newRecordingSender(n)
	d := NewDispatcher(4, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	subjects := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for _, s := range subjects {
		d.Enqueue(domain.OutboundEmail{Subject: s, Recipients: []string{"same@example.com"}})
	}

	sent := sender.wait(t)
	for i, email := range sent {
		if email.Subject != subjects[i] {
			t.Fatalf("delivery %d out of order: got subject %q", i, email.Subject)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingSender(0), zerolog.Nop())

	email := domain.OutboundEmail{Recipients: []string{"same@example.com"}}
	first := d.shardIndex(email)
	for i := 0; i < 100; i++ {
		if got := d.shardIndex(email); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}
