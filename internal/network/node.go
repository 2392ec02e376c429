// Package network implements transaction gossip over libp2p pubsub: a node
// publishes finalized transactions to a shared topic and hands whatever it
// receives to a caller-supplied handler for independent verification.
package network

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/libp2p/go-libp2p"
	pubsub "github.com/libp2p/go-libp2p-pubsub"
	"github.com/libp2p/go-libp2p/core/host"
	"github.com/libp2p/go-libp2p/core/peer"
)

// TransactionTopic is the single gossip topic finalized transactions travel
// over.
const TransactionTopic = "veilcoin/transactions/1.0.0"

// TransactionHandler processes a gossiped transaction's raw bytes. The node
// does not interpret the payload; decoding it and running it through
// Transaction.Verify is left to the caller (cmd/veilctl serve decodes it as
// a JSON-encoded Transaction).
type TransactionHandler func(ctx context.Context, from peer.ID, data []byte) error

// Config holds node configuration.
type Config struct {
	ListenAddrs []string
}

// DefaultConfig returns a node listening on all interfaces on an ephemeral
// TCP port.
func DefaultConfig() *Config {
	return &Config{ListenAddrs: []string{"/ip4/0.0.0.0/tcp/0"}}
}

// Node is a single libp2p peer participating in transaction gossip.
type Node struct {
	mu sync.RWMutex

	host   host.Host
	pubsub *pubsub.PubSub
	topic  *pubsub.Topic
	sub    *pubsub.Subscription

	handler TransactionHandler

	ctx    context.Context
	cancel context.CancelFunc
}

// NewNode starts a libp2p host, joins the transaction topic, and begins
// gossiping with GossipSub. Call Start to begin delivering received
// messages to a handler.
func NewNode(ctx context.Context, cfg *Config) (*Node, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	nodeCtx, cancel := context.WithCancel(ctx)

	h, err := libp2p.New(libp2p.ListenAddrStrings(cfg.ListenAddrs...))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("network: create host: %w", err)
	}

	ps, err := pubsub.NewGossipSub(nodeCtx, h)
	if err != nil {
		h.Close()
		cancel()
		return nil, fmt.Errorf("network: create pubsub: %w", err)
	}

	topic, err := ps.Join(TransactionTopic)
	if err != nil {
		h.Close()
		cancel()
		return nil, fmt.Errorf("network: join topic: %w", err)
	}

	sub, err := topic.Subscribe()
	if err != nil {
		h.Close()
		cancel()
		return nil, fmt.Errorf("network: subscribe: %w", err)
	}

	return &Node{
		host:   h,
		pubsub: ps,
		topic:  topic,
		sub:    sub,
		ctx:    nodeCtx,
		cancel: cancel,
	}, nil
}

// SetHandler installs the function called for every transaction received
// from a peer. Must be called before Start.
func (n *Node) SetHandler(handler TransactionHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handler = handler
}

// Start begins delivering incoming gossip messages to the installed
// handler, in a background goroutine, until the node is closed.
func (n *Node) Start() {
	go n.receiveLoop()
}

func (n *Node) receiveLoop() {
	for {
		msg, err := n.sub.Next(n.ctx)
		if err != nil {
			if n.ctx.Err() != nil {
				return
			}
			continue
		}
		if msg.ReceivedFrom == n.host.ID() {
			continue
		}

		n.mu.RLock()
		handler := n.handler
		n.mu.RUnlock()
		if handler == nil {
			continue
		}

		if err := handler(n.ctx, msg.ReceivedFrom, msg.Data); err != nil {
			fmt.Printf("network: handler error from %s: %v\n", msg.ReceivedFrom, err)
		}
	}
}

// Broadcast publishes a transaction's encoded bytes to the network.
func (n *Node) Broadcast(data []byte) error {
	ctx, cancel := context.WithTimeout(n.ctx, 10*time.Second)
	defer cancel()
	return n.topic.Publish(ctx, data)
}

// Connect dials a peer given its multiaddress string.
func (n *Node) Connect(addr string) error {
	info, err := peer.AddrInfoFromString(addr)
	if err != nil {
		return fmt.Errorf("network: parse peer address: %w", err)
	}
	ctx, cancel := context.WithTimeout(n.ctx, 10*time.Second)
	defer cancel()
	return n.host.Connect(ctx, *info)
}

// ID returns the node's own peer ID.
func (n *Node) ID() peer.ID {
	return n.host.ID()
}

// Close shuts the node down.
func (n *Node) Close() error {
	n.cancel()
	n.sub.Cancel()
	return n.host.Close()
}
