package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingProcessor struct {
	mu         sync.Mutex
	deliveries []Delivery
	done       chan struct{}
	want       int
}

func (p *recordingProcessor) Deliver(ctx context.Context, userID, message, typ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deliveries = append(p.deliveries, Delivery{UserID: userID, Message: message, Type: typ})
	if len(p.deliveries) == p.want {
		close(p.done)
	}
	return nil
}

func TestDispatcher_DeliversAll(t *testing.T) {
	proc := &recordingProcessor{done: make(chan struct{}), want: 3}
	d := NewDispatcher(4, proc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue("alice", "job posted", "JOB")
	d.Enqueue("bob", "new message", "MESSAGE")
	d.Enqueue("alice", "application received", "APPLICATION")

	select {
	case <-proc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("deliveries not processed in time")
	}

	proc.mu.Lock()
	defer proc.mu.Unlock()
	byUser := map[string]int{}
	for _, del := range proc.deliveries {
		byUser[del.UserID]++
	}
	if byUser["alice"] != 2 || byUser["bob"] != 1 {
		t.Fatalf("unexpected deliveries: %+v", proc.deliveries)
	}
}

func TestDispatcher_SameUserSameShard(t *testing.T) {
	d := NewDispatcher(8, &recordingProcessor{done: make(chan struct{}), want: 0}, zerolog.Nop())

	first := d.shardIndex("user-42")
	for range 100 {
		if got := d.shardIndex("user-42"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &recordingProcessor{done: make(chan struct{}), want: 0}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
