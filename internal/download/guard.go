package download

import "sync"

// Guard is a set of busy flags, one per view.
type Guard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{busy: make(map[string]struct{})}
}

func (g *Guard) TryAcquire(view string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.busy[view]; ok {
		return false
	}
	g.busy[view] = struct{}{}
	return true
}

func (g *Guard) Release(view string) {
	g.mu.Lock()
	delete(g.busy, view)
	g.mu.Unlock()
}

func (g *Guard) Busy(view string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.busy[view]
	return ok
}
