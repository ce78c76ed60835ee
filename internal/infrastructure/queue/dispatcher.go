package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/adminhub/console-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// sender is the delivery dependency; satisfied by the message service.
type sender interface {
	Send(ctx context.Context, email domain.OutboundEmail) error
}

// Dispatcher delivers outbound emails asynchronously through a fixed
// set of workers, sharded by first recipient so mail to the same
// address is delivered in enqueue order. Used for fire-and-forget
// traffic such as password-reset links; the synchronous send endpoint
// bypasses it.
type Dispatcher struct {
	workers []chan domain.OutboundEmail
	service sender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.OutboundEmail, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.OutboundEmail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands an email to the worker responsible for its first
// recipient. Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(email domain.OutboundEmail) {
	d.workers[d.shardIndex(email)] <- email
}

func (d *Dispatcher) shardIndex(email domain.OutboundEmail) int {
	key := ""
	if len(email.Recipients) > 0 {
		key = email.Recipients[0]
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.OutboundEmail) {
	for {
		select {
		case <-ctx.Done():
			return
		case email, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Send(ctx, email); err != nil {
				d.log.Error().Err(err).
					Str("subject", email.Subject).
					Int("worker_id", id).
					Msg("outbound email delivery failed")
			}
		}
	}
}
