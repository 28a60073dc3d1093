package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"mediexplain/internal/models"

	log "github.com/sirupsen/logrus"
)

// ErrCorruptHistory is returned by Append when the stored slot is not a JSON
// array. The slot is left as it is.
var ErrCorruptHistory = errors.New("storage: stored history is not a JSON array")

// HistoryKey holds the JSON array of past analyses, oldest first.
const HistoryKey = "medi_reports"

// HistoryStore is an append-only list of HistoryEntry records. It performs
// no deduplication.
type HistoryStore struct {
	store Store
}

func NewHistoryStore(store Store) *HistoryStore {
	return &HistoryStore{store: store}
}

// decodeHistory reads the slot leniently. Elements that are not objects are
// skipped; an unreadable slot yields an empty list.
func decodeHistory(raw string) []models.HistoryEntry {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Debugf("decodeHistory(): corrupt history treated as empty: %v", err)
		return []models.HistoryEntry{}
	}
	entries := make([]models.HistoryEntry, 0, len(items))
	for i, item := range items {
		entry, err := models.DecodeHistoryEntry(item)
		if err != nil {
			log.Debugf("decodeHistory(): skipping entry %d: %v", i, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Load returns the history in insertion order; a missing or corrupt slot
// yields an empty list.
func (h *HistoryStore) Load(ctx context.Context) ([]models.HistoryEntry, error) {
	raw, ok, err := h.store.Get(ctx, HistoryKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.HistoryEntry{}, nil
	}
	return decodeHistory(raw), nil
}

// Append adds one entry at the end. Stored entries are carried over as raw
// JSON, so fields this version does not understand survive. Stores
// implementing Updater make this atomic; otherwise it is a read-modify-write
// where the last writer wins.
func (h *HistoryStore) Append(ctx context.Context, entry models.HistoryEntry) error {
	appendTo := func(current string, ok bool) (string, error) {
		var items []json.RawMessage
		if ok && strings.TrimSpace(current) != "" {
			if err := json.Unmarshal([]byte(current), &items); err != nil {
				return "", fmt.Errorf("%w: %v", ErrCorruptHistory, err)
			}
		}
		data, err := json.Marshal(entry)
		if err != nil {
			return "", err
		}
		next, err := json.Marshal(append(items, data))
		if err != nil {
			return "", err
		}
		return string(next), nil
	}

	if u, ok := h.store.(Updater); ok {
		return u.Update(ctx, HistoryKey, appendTo)
	}

	current, ok, err := h.store.Get(ctx, HistoryKey)
	if err != nil {
		return err
	}
	next, err := appendTo(current, ok)
	if err != nil {
		return err
	}
	return h.store.Set(ctx, HistoryKey, next)
}

// Find returns the entry with the given id.
func (h *HistoryStore) Find(ctx context.Context, id string) (models.HistoryEntry, bool, error) {
	entries, err := h.Load(ctx)
	if err != nil {
		return models.HistoryEntry{}, false, err
	}
	for _, e := range entries {
		if e.ID != "" && e.ID == id {
			return e, true, nil
		}
	}
	return models.HistoryEntry{}, false, nil
}
