package state

import (
	"context"
	"sync"

	"cardstore/client/internal/domain"
	"cardstore/client/internal/storage"

	log "github.com/sirupsen/logrus"
)

// ProductLookup fetches current catalog data for cart reconciliation.
type ProductLookup interface {
	ProductByID(ctx context.Context, id int64) (*domain.ProductListItem, error)
}

// Cart is the in-memory cart session: an insertion-ordered sequence of
// product/quantity pairs, at most one entry per product, every quantity
// within [1, stock]. It is the sole writer of the persisted cart record;
// every mutation re-serializes the full cart synchronously.
type Cart struct {
	notifier

	mu       sync.Mutex
	store    storage.Store
	products ProductLookup

	items        []domain.CartItem
	loading      bool
	initialized  bool
	initInFlight bool
}

func NewCart(store storage.Store, products ProductLookup) *Cart {
	return &Cart{store: store, products: products}
}

// Initialize restores the persisted cart and reconciles it against live
// catalog data. Idempotent: repeated and concurrent calls after the first
// are no-ops. Products that are gone, inactive or out of stock are dropped;
// a fetch failure for a single product drops that product rather than
// aborting the whole restoration.
func (c *Cart) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.initialized || c.initInFlight {
		c.mu.Unlock()
		return nil
	}
	c.initInFlight = true
	c.loading = true
	c.mu.Unlock()

	var records []storage.CartRecord
	if _, err := c.store.Load(ctx, storage.KeyCart, &records); err != nil {
		log.Warnf("Failed to load persisted cart: %v", err)
	}

	valid := make([]domain.CartItem, 0, len(records))
	for _, record := range records {
		product, err := c.products.ProductByID(ctx, record.ProductID)
		if err != nil {
			log.Debugf("Dropping cart product %d: %v", record.ProductID, err)
			continue
		}
		if product == nil || !product.IsActive || product.Stock <= 0 {
			continue
		}
		quantity := min(record.Quantity, product.Stock)
		if quantity < 1 {
			continue
		}
		valid = append(valid, domain.CartItem{Product: *product, Quantity: quantity})
	}

	c.mu.Lock()
	c.items = valid
	c.loading = false
	c.initialized = true
	c.initInFlight = false
	c.persistLocked(ctx)
	c.mu.Unlock()

	c.publish()
	return nil
}

// persistLocked writes the full cart back to storage. Called with c.mu held
// so persisted state always reflects the in-memory sequence.
func (c *Cart) persistLocked(ctx context.Context) {
	records := make([]storage.CartRecord, 0, len(c.items))
	for _, item := range c.items {
		records = append(records, storage.CartRecord{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}
	if err := c.store.Save(ctx, storage.KeyCart, records); err != nil {
		log.Warnf("Failed to persist cart: %v", err)
	}
}

// AddItem adds quantity of the product, merging with an existing entry for
// the same product and clamping at the snapshotted stock. A product with no
// stock is not added.
func (c *Cart) AddItem(ctx context.Context, product domain.ProductListItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if product.Stock < 1 {
		return
	}

	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity = min(c.items[i].Quantity+quantity, product.Stock)
			c.items[i].Product = product
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, domain.CartItem{
			Product:  product,
			Quantity: min(quantity, product.Stock),
		})
	}
	c.persistLocked(ctx)
	c.mu.Unlock()

	c.publish()
}

// UpdateQuantity sets the quantity for a product already in the cart,
// clamped to [1, stock]. Unknown products are a no-op.
func (c *Cart) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	c.mu.Lock()
	changed := false
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = max(1, min(quantity, c.items[i].Product.Stock))
			changed = true
			break
		}
	}
	if changed {
		c.persistLocked(ctx)
	}
	c.mu.Unlock()

	if changed {
		c.publish()
	}
}

// RemoveItem removes the entry for the product if present.
func (c *Cart) RemoveItem(ctx context.Context, productID int64) {
	c.mu.Lock()
	changed := false
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		c.persistLocked(ctx)
	}
	c.mu.Unlock()

	if changed {
		c.publish()
	}
}

// Clear empties the cart and erases the persisted record.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	c.items = nil
	if err := c.store.Delete(ctx, storage.KeyCart); err != nil {
		log.Warnf("Failed to clear persisted cart: %v", err)
	}
	c.mu.Unlock()

	c.publish()
}

// Items returns a snapshot of the cart in insertion order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice sums snapshotted price times quantity over all entries.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for i := range c.items {
		total += c.items[i].Subtotal()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

func (c *Cart) IsInCart(productID int64) bool {
	return c.ItemQuantity(productID) > 0
}

// ItemQuantity returns the quantity for a product, zero when absent.
func (c *Cart) ItemQuantity(productID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			return c.items[i].Quantity
		}
	}
	return 0
}

func (c *Cart) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Cart) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}
