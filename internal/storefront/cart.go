// internal/storefront/cart.go
package storefront

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ateliernord/gallery/internal/models"
)

// CartStorage is the durable store for cart snapshots. Implementations must
// tolerate concurrent use from a single Cart only.
type CartStorage interface {
	Load() ([]models.CartItem, error)
	Save(items []models.CartItem) error
}

// Cart holds the quantity-per-artwork mapping for the active session and
// broadcasts every change to subscribers. Mutations are serialized by a
// mutex so each mutation's snapshot reaches all subscribers before the next
// mutation's snapshot.
type Cart struct {
	mu      sync.Mutex
	items   map[string]int
	storage CartStorage
	subs    map[int]func([]models.CartItem)
	nextSub int
}

// NewCart hydrates the cart from storage. Construction never fails: a
// missing or corrupt snapshot starts an empty cart, and a nil storage keeps
// the cart purely in memory.
func NewCart(storage CartStorage) *Cart {
	c := &Cart{
		items:   make(map[string]int),
		storage: storage,
		subs:    make(map[int]func([]models.CartItem)),
	}

	if storage != nil {
		saved, err := storage.Load()
		if err != nil {
			logrus.WithError(err).Debug("No usable cart snapshot, starting empty")
			return c
		}
		for _, item := range saved {
			if item.ID != "" && item.Qty > 0 {
				c.items[item.ID] = item.Qty
			}
		}
	}

	return c
}

// Add increments the stored quantity for id by qty, creating the entry if
// absent. Non-positive qty counts as 1.
func (c *Cart) Add(id string, qty int) {
	if qty < 1 {
		qty = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] += qty
	c.emitLocked()
}

// Remove deletes the entry unconditionally.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	c.emitLocked()
}

// SetQty sets the entry to qty; qty <= 0 removes it.
func (c *Cart) SetQty(id string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		delete(c.items, id)
	} else {
		c.items[id] = qty
	}
	c.emitLocked()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]int)
	c.emitLocked()
}

// Items returns the current snapshot. Entry order is not stable.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers fn and immediately replays the current snapshot to it.
// fn runs synchronously on the mutating goroutine and must not call back
// into the cart. The returned func cancels the subscription.
func (c *Cart) Subscribe(fn func([]models.CartItem)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	fn(c.snapshotLocked())
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Cart) snapshotLocked() []models.CartItem {
	snapshot := make([]models.CartItem, 0, len(c.items))
	for id, qty := range c.items {
		snapshot = append(snapshot, models.CartItem{ID: id, Qty: qty})
	}
	return snapshot
}

// emitLocked persists and broadcasts the current snapshot. Persistence is
// fire-and-forget: a failed write never blocks the mutation or broadcast.
func (c *Cart) emitLocked() {
	snapshot := c.snapshotLocked()

	if c.storage != nil {
		if err := c.storage.Save(snapshot); err != nil {
			logrus.WithError(err).Warn("Failed to persist cart snapshot")
		}
	}

	for _, fn := range c.subs {
		fn(snapshot)
	}
}
