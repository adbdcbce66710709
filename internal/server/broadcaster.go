package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Kiaaa-Bai/CourierVerse/internal/game"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait    = 5 * time.Second
	pingInterval = 30 * time.Second
)

// Client is one websocket connection. Writes go through mu because both the
// broadcaster loop and the connection's reader reply on it.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

func (c *Client) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

var ErrStopped = errors.New("broadcaster stopped")

type request struct {
	cmd   game.Command
	reply chan Reply
}

// Reply is what a submitted command produced, plus the state right after it.
type Reply struct {
	Result   game.Result
	Snapshot game.Snapshot
	Err      error
}

// Broadcaster owns the game. Every command is applied inside Run, one at a
// time, and each mutation is pushed to all connected clients before the
// next command is read.
type Broadcaster struct {
	game       *game.Game
	log        *zap.SugaredLogger
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	commands   chan request
	done       chan struct{}
}

func NewBroadcaster(g *game.Game, log *zap.SugaredLogger) *Broadcaster {
	return &Broadcaster{
		game:       g,
		log:        log,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan request),
		done:       make(chan struct{}),
	}
}

func (b *Broadcaster) Run(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		close(b.done)
		for c := range b.clients {
			c.conn.Close()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-b.register:
			b.clients[c] = true
			b.log.Infof("client connected (%d total)", len(b.clients))

			// Send initial state
			if err := c.Send(snapshotMessage(b.game.Snapshot())); err != nil {
				b.log.Warnf("initial send error: %v", err)
				b.drop(c)
			}

		case c := <-b.unregister:
			b.drop(c)

		case req := <-b.commands:
			res, err := b.game.Apply(req.cmd)
			if err != nil {
				b.log.Debugf("command %s rejected: %v", req.cmd.Kind, err)
			} else if res.Mutated {
				b.log.Infof("command %s applied (round %d)", req.cmd.Kind, b.game.Round())
				b.BroadcastSnapshot()
			}
			req.reply <- Reply{Result: res, Snapshot: b.game.Snapshot(), Err: err}

		case <-ticker.C:
			for c := range b.clients {
				if err := c.ping(); err != nil {
					b.log.Warnf("ping error: %v", err)
					b.drop(c)
				}
			}
		}
	}
}

// Submit queues cmd behind every earlier command and waits for its reply.
func (b *Broadcaster) Submit(ctx context.Context, cmd game.Command) (Reply, error) {
	req := request{cmd: cmd, reply: make(chan Reply, 1)}

	select {
	case b.commands <- req:
	case <-b.done:
		return Reply{}, ErrStopped
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}

	// The loop always answers an accepted request.
	r := <-req.reply
	return r, nil
}

func (b *Broadcaster) Register(ctx context.Context, c *Client) {
	select {
	case b.register <- c:
	case <-b.done:
		c.conn.Close()
	case <-ctx.Done():
	}
}

func (b *Broadcaster) Unregister(ctx context.Context, c *Client) {
	select {
	case b.unregister <- c:
	case <-b.done:
	case <-ctx.Done():
	}
}

// BroadcastSnapshot must only be called from the Run loop.
func (b *Broadcaster) BroadcastSnapshot() {
	msg := snapshotMessage(b.game.Snapshot())
	for c := range b.clients {
		if err := c.Send(msg); err != nil {
			b.log.Warnf("snapshot broadcast error: %v", err)
			b.drop(c)
		}
	}
}

func (b *Broadcaster) drop(c *Client) {
	if _, ok := b.clients[c]; !ok {
		return
	}
	delete(b.clients, c)
	c.conn.Close()
	b.log.Infof("client disconnected (%d left)", len(b.clients))
}

func snapshotMessage(s game.Snapshot) map[string]any {
	return map[string]any{
		"action": "snapshot",
		"state":  s,
	}
}
