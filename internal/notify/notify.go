// Package notify carries human-readable system messages from the core
// to whatever surface displays them. The core never blocks on a sink
// and treats delivery failures as ignorable.
package notify

import (
	"sync"

	"auction-marketplace/utils"

	"github.com/gammazero/deque"
)

//go:generate mockgen -source=notify.go -destination=mock_sink.go -package=notify

// Sink accepts system messages for display.
type Sink interface {
	Push(message string)
}

// LogSink writes every message to the structured log.
type LogSink struct{}

func (LogSink) Push(message string) {
	utils.Info(message, map[string]any{"source": "system"})
}

// Queue buffers messages for a UI that drains them one at a time.
type Queue struct {
	mu sync.Mutex
	q  *deque.Deque[string]
}

// NewQueue creates an empty message queue.
func NewQueue() *Queue {
	return &Queue{q: deque.New[string]()}
}

// Push appends a message. It never blocks.
func (m *Queue) Push(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.q.PushBack(message)
}

// Pop removes and returns the oldest message.
func (m *Queue) Pop() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.q.Len() == 0 {
		return "", false
	}
	return m.q.PopFront(), true
}

// PopAll drains the queue in FIFO order.
func (m *Queue) PopAll() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.q.Len() == 0 {
		return nil
	}
	out := make([]string, 0, m.q.Len())
	for m.q.Len() > 0 {
		out = append(out, m.q.PopFront())
	}
	return out
}

// Len returns the number of buffered messages.
func (m *Queue) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.q.Len()
}
