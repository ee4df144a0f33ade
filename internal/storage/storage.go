package storage

import "context"

// Fixed keys for the records this module persists. Each key has exactly one
// owning component; nothing else writes to it.
const (
	KeyCart         = "cardstore_cart"
	KeyOrderHistory = "cardstore_order_history"
	KeyAdminToken   = "cardstore_admin_token"
)

// Store is the local persistence port: small JSON-serializable records under
// fixed string keys. Implementations must treat an unreadable or corrupt
// record as absent rather than failing the caller.
type Store interface {
	// Load unmarshals the record at key into v. It reports whether a usable
	// record existed.
	Load(ctx context.Context, key string, v any) (bool, error)
	// Save marshals v and replaces the record at key. Last write wins.
	Save(ctx context.Context, key string, v any) error
	// Delete removes the record at key; deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

// CartRecord is the persisted shape of one cart line: just enough to
// re-fetch live product data on the next startup.
type CartRecord struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
