package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	feedSendBuffer = 16
	feedWriteWait  = 10 * time.Second
	feedPingPeriod = 25 * time.Second
)

// FeedClient is one websocket subscriber to the live scan feed. All
// writes to the connection go through a single goroutine reading from
// the send channel; gorilla/websocket does not allow concurrent writers.
type FeedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// ScanFeed fans scan events out to every connected client. There is no
// per-user keying: the feed is a single firehose of scan activity.
type ScanFeed struct {
	mu      sync.RWMutex
	clients map[*FeedClient]struct{}
}

func NewScanFeed() *ScanFeed {
	return &ScanFeed{clients: make(map[*FeedClient]struct{})}
}

// Register adopts the connection and starts its writer. The caller
// keeps responsibility for the read side.
func (f *ScanFeed) Register(conn *websocket.Conn) *FeedClient {
	c := &FeedClient{conn: conn, send: make(chan []byte, feedSendBuffer)}
	f.mu.Lock()
	f.clients[c] = struct{}{}
	f.mu.Unlock()
	feedClients.Inc()
	go c.writeLoop(f)
	return c
}

// Unregister drops the client and closes its connection. Safe to call
// more than once. Closing the send channel here cannot race a Broadcast
// send: sends happen under the read lock and only to clients still in
// the map.
func (f *ScanFeed) Unregister(c *FeedClient) {
	f.mu.Lock()
	_, ok := f.clients[c]
	if ok {
		delete(f.clients, c)
		close(c.send)
		feedClients.Dec()
	}
	f.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

// Broadcast queues the payload for every client. A client whose buffer
// is full is dropped rather than allowed to stall the feed.
func (f *ScanFeed) Broadcast(payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}

	var stalled []*FeedClient
	f.mu.RLock()
	for c := range f.clients {
		select {
		case c.send <- msg:
		default:
			stalled = append(stalled, c)
		}
	}
	f.mu.RUnlock()

	for _, c := range stalled {
		f.Unregister(c)
	}
}

func (c *FeedClient) writeLoop(f *ScanFeed) {
	ping := time.NewTicker(feedPingPeriod)
	defer ping.Stop()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				f.Unregister(c)
				return
			}
		case <-ping.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				f.Unregister(c)
				return
			}
		}
	}
}
