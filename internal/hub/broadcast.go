package hub

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padmap/internal/poller"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster listens for logical state changes from the frame driver
// and routes them to clients subscribed to each player index.
type Broadcaster struct {
	hub     *Hub
	changes <-chan poller.LogicalState
	last    map[int]poller.LogicalState
	deltas  map[int]int
	seq     int64
	log     *zap.Logger
}

func NewBroadcaster(h *Hub, changes <-chan poller.LogicalState, log *zap.Logger) *Broadcaster {
	return &Broadcaster{
		hub:     h,
		changes: changes,
		last:    make(map[int]poller.LogicalState),
		deltas:  make(map[int]int),
		log:     log,
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	for {
		select {
		case state, ok := <-b.changes:
			if !ok {
				return
			}

			prev := b.last[state.PlayerIndex]
			delta := poller.ComputeDelta(&prev, &state)
			b.last[state.PlayerIndex] = state

			if delta.IsEmpty() {
				continue
			}

			b.seq++
			b.deltas[state.PlayerIndex]++

			// Send a full sync every deltaCountSync deltas so a client
			// that missed one converges.
			if b.deltas[state.PlayerIndex] >= deltaCountSync {
				b.deltas[state.PlayerIndex] = 0
				b.sendFull(state)
			} else {
				b.sendDelta(state.PlayerIndex, delta)
			}

		case <-ticker.C:
			for _, state := range b.last {
				if state.Connected {
					b.seq++
					b.sendFull(state)
				}
			}
		}
	}
}

// SendInitialState sends the subscribed player's current full state to
// a newly connected client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.seq++
	state := b.last[c.PlayerIndex()]
	state.PlayerIndex = c.PlayerIndex()
	msg := NewFullMessage(b.seq, &state)
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("marshal initial state", zap.Error(err))
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (b *Broadcaster) sendFull(state poller.LogicalState) {
	msg := NewFullMessage(b.seq, &state)
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("marshal full message", zap.Error(err))
		return
	}
	b.hub.BroadcastToPlayer(data, state.PlayerIndex)
}

func (b *Broadcaster) sendDelta(playerIndex int, delta *poller.DeltaChanges) {
	msg := NewDeltaMessage(b.seq, playerIndex, delta)
	data, err := json.Marshal(msg)
	if err != nil {
		b.log.Error("marshal delta message", zap.Error(err))
		return
	}
	b.hub.BroadcastToPlayer(data, playerIndex)
}
