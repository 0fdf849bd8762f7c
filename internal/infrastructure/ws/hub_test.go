package ws

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// mockClient creates a Client with a send channel but no real connection.
func mockClient(hub *Hub, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   nil,
		userID: userID,
		send:   make(chan []byte, sendBufferSize),
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	c1 := mockClient(hub, "alice")
	c2 := mockClient(hub, "bob")

	hub.Register(c1)
	hub.Register(c2)

	if got := hub.ConnectionCount(); got != 2 {
		t.Fatalf("expected 2 connections, got %d", got)
	}

	hub.Unregister(c1)

	if got := hub.ConnectionCount(); got != 1 {
		t.Fatalf("expected 1 connection after unregister, got %d", got)
	}

	hub.Unregister(c2)

	if got := hub.ConnectionCount(); got != 0 {
		t.Fatalf("expected 0 connections, got %d", got)
	}
}

func TestDoubleUnregister(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c := mockClient(hub, "alice")
	hub.Register(c)
	hub.Unregister(c)
	// Should not panic
	hub.Unregister(c)

	if got := hub.ConnectionCount(); got != 0 {
		t.Fatalf("expected 0 connections, got %d", got)
	}
}

func TestSendToUserTargetsOnlyThatUser(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	alice1 := mockClient(hub, "alice")
	alice2 := mockClient(hub, "alice")
	bob := mockClient(hub, "bob")
	hub.Register(alice1)
	hub.Register(alice2)
	hub.Register(bob)

	hub.SendToUser("alice", "notification", map[string]any{"id": "n-1"})

	for _, c := range []*Client{alice1, alice2} {
		select {
		case data := <-c.send:
			var got Envelope
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Event != "notification" {
				t.Errorf("expected event notification, got %s", got.Event)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for message")
		}
	}

	select {
	case <-bob.send:
		t.Fatal("bob should not receive alice's push")
	default:
	}
}

func TestBroadcastReachesAllUsers(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	alice := mockClient(hub, "alice")
	bob := mockClient(hub, "bob")
	hub.Register(alice)
	hub.Register(bob)

	hub.Broadcast("announcement", "maintenance at noon")

	for _, c := range []*Client{alice, bob} {
		select {
		case data := <-c.send:
			var got Envelope
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Event != "announcement" {
				t.Errorf("expected event announcement, got %s", got.Event)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatal("timeout waiting for message")
		}
	}
}

func TestSendToOfflineUser(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	// Should not panic
	hub.SendToUser("nobody", "notification", nil)
}

func TestSendFullBuffer(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	c := mockClient(hub, "alice")
	hub.Register(c)

	// Fill the send buffer
	for i := 0; i < sendBufferSize; i++ {
		hub.SendToUser("alice", "fill", i)
	}

	// This should drop the message, not panic or block
	hub.SendToUser("alice", "dropped", nil)

	count := 0
	for {
		select {
		case <-c.send:
			count++
		default:
			goto done
		}
	}
done:
	if count != sendBufferSize {
		t.Errorf("expected %d messages, got %d", sendBufferSize, count)
	}

	hub.Unregister(c)
}

func TestConcurrentAccess(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			c := mockClient(hub, "user")
			hub.Register(c)
			hub.Broadcast("concurrent", id)
			for {
				select {
				case <-c.send:
				default:
					hub.Unregister(c)
					return
				}
			}
		}(i)
	}

	wg.Wait()

	if got := hub.ConnectionCount(); got != 0 {
		t.Errorf("expected 0 connections after concurrent test, got %d", got)
	}
}
