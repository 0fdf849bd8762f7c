package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Delivery is one notification waiting to be persisted and pushed.
type Delivery struct {
	UserID  string
	Message string
	Type    string
}

// Processor persists a delivery and pushes it to the recipient's connections.
type Processor interface {
	Deliver(ctx context.Context, userID, message, typ string) error
}

// Dispatcher routes notification deliveries to a fixed set of workers using
// consistent hashing on the recipient, guaranteeing per-user delivery ordering.
type Dispatcher struct {
	workers   []chan Delivery
	processor Processor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor Processor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan Delivery, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Delivery, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a delivery to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(userID, message, typ string) {
	d.workers[d.shardIndex(userID)] <- Delivery{UserID: userID, Message: message, Type: typ}
}

// shardIndex maps a user ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-ch:
			if !ok {
				return
			}
			if err := d.processor.Deliver(ctx, delivery.UserID, delivery.Message, delivery.Type); err != nil {
				d.log.Error().Err(err).
					Str("user_id", delivery.UserID).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}
