package network

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"
)

func newTestNode(t *testing.T, ctx context.Context) *Node {
	t.Helper()
	n, err := NewNode(ctx, &Config{ListenAddrs: []string{"/ip4/127.0.0.1/tcp/0"}})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	t.Cleanup(func() { n.Close() })
	return n
}

func hostAddr(n *Node) string {
	addrs := n.host.Addrs()
	for _, a := range addrs {
		return a.String() + "/p2p/" + n.ID().String()
	}
	return ""
}

func TestBroadcastDeliversToPeer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newTestNode(t, ctx)
	b := newTestNode(t, ctx)

	var mu sync.Mutex
	var received []byte
	var from peer.ID
	done := make(chan struct{})

	b.SetHandler(func(_ context.Context, sender peer.ID, data []byte) error {
		mu.Lock()
		defer mu.Unlock()
		received = data
		from = sender
		close(done)
		return nil
	})
	b.Start()
	a.Start()

	if err := b.Connect(hostAddr(a)); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	// GossipSub needs a moment to build its mesh after a direct connection
	// before a publish from a is guaranteed to reach b.
	deadline := time.Now().Add(5 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		if lastErr = a.Broadcast([]byte("hello")); lastErr == nil {
			select {
			case <-done:
				mu.Lock()
				defer mu.Unlock()
				if string(received) != "hello" {
					t.Errorf("expected payload %q, got %q", "hello", received)
				}
				if from != a.ID() {
					t.Errorf("expected sender %s, got %s", a.ID(), from)
				}
				return
			case <-time.After(200 * time.Millisecond):
			}
		}
	}
	t.Fatalf("gossip message never arrived at peer b (last broadcast error: %v)", lastErr)
}

func TestReceiveLoopSkipsSelfOriginatedMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := newTestNode(t, ctx)

	var calls int
	var mu sync.Mutex
	a.SetHandler(func(_ context.Context, _ peer.ID, _ []byte) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})
	a.Start()

	if err := a.Broadcast([]byte("self")); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("a node's own broadcast should not be delivered back to its own handler, got %d calls", calls)
	}
}
