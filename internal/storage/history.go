package storage

import (
	"context"
	"sync"

	"cardstore/client/internal/domain"

	log "github.com/sirupsen/logrus"
)

// maxHistoryRecords caps the local order history.
const maxHistoryRecords = 50

// History keeps the most recent orders in local storage, newest first,
// deduplicated by order number.
type History struct {
	mu    sync.Mutex
	store Store
}

func NewHistory(store Store) *History {
	return &History{store: store}
}

func (h *History) load(ctx context.Context) []domain.LocalOrderRecord {
	var records []domain.LocalOrderRecord
	if _, err := h.store.Load(ctx, KeyOrderHistory, &records); err != nil {
		log.Warnf("Failed to load order history: %v", err)
		return nil
	}
	return records
}

// Add inserts a record at the front, or replaces an existing record with the
// same order number in place. Replacement keeps the record's position; only a
// first insertion is promoted to the front. The list is trimmed to 50 entries
// afterwards.
func (h *History) Add(ctx context.Context, record domain.LocalOrderRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := h.load(ctx)
	replaced := false
	for i := range records {
		if records[i].OrderNo == record.OrderNo {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append([]domain.LocalOrderRecord{record}, records...)
	}
	if len(records) > maxHistoryRecords {
		records = records[:maxHistoryRecords]
	}

	return h.store.Save(ctx, KeyOrderHistory, records)
}

// Update mutates the record with the given order number in place without
// reordering. A missing order number is a no-op.
func (h *History) Update(ctx context.Context, orderNo string, update func(*domain.LocalOrderRecord)) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := h.load(ctx)
	for i := range records {
		if records[i].OrderNo == orderNo {
			update(&records[i])
			return h.store.Save(ctx, KeyOrderHistory, records)
		}
	}
	return nil
}

// List returns the stored records, newest first.
func (h *History) List(ctx context.Context) []domain.LocalOrderRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load(ctx)
}

// Clear erases the history record.
func (h *History) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.Delete(ctx, KeyOrderHistory)
}
