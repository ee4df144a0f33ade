package state

import "sync"

// notifier is the explicit stand-in for framework-managed reactive
// subscriptions: reads stay pull-based, committed writes push one event to
// every subscriber. Callbacks run synchronously on the mutating goroutine
// and must not block.
type notifier struct {
	mu   sync.Mutex
	subs []func()
}

// Subscribe registers a callback invoked after every committed mutation.
func (n *notifier) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

func (n *notifier) publish() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
