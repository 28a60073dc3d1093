package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediexplain/internal/models"
)

// plainStore hides Updater so Append takes the read-modify-write path.
type plainStore struct {
	Store
}

func sampleEntry(risk models.RiskLevel, filename string) models.HistoryEntry {
	return models.HistoryEntry{
		AnalysisResult: models.AnalysisResult{RiskLevel: risk},
		Date:           "2026-03-01T10:00:00Z",
		Filename:       filename,
	}
}

func TestHistoryLoadEmpty(t *testing.T) {
	history := NewHistoryStore(NewMemoryStore())
	entries, err := history.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestHistoryAppendKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	for name, store := range map[string]Store{
		"updater": NewMemoryStore(),
		"plain":   plainStore{NewMemoryStore()},
	} {
		t.Run(name, func(t *testing.T) {
			history := NewHistoryStore(store)
			require.NoError(t, history.Append(ctx, sampleEntry(models.RiskHigh, "a.pdf")))
			require.NoError(t, history.Append(ctx, sampleEntry(models.RiskLow, "b.pdf")))

			entries, err := history.Load(ctx)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "a.pdf", entries[0].Filename)
			assert.Equal(t, "b.pdf", entries[1].Filename)
		})
	}
}

func TestHistoryAppendDoesNotDeduplicate(t *testing.T) {
	ctx := context.Background()
	history := NewHistoryStore(NewMemoryStore())
	entry := sampleEntry(models.RiskMedium, "same.pdf")

	require.NoError(t, history.Append(ctx, entry))
	require.NoError(t, history.Append(ctx, entry))

	entries, err := history.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestHistoryCorruptSlot(t *testing.T) {
	ctx := context.Background()
	for name, store := range map[string]Store{
		"updater": NewMemoryStore(),
		"plain":   plainStore{NewMemoryStore()},
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set(ctx, HistoryKey, "[{broken"))
			history := NewHistoryStore(store)

			entries, err := history.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, entries)

			err = history.Append(ctx, sampleEntry(models.RiskLow, "fresh.pdf"))
			assert.ErrorIs(t, err, ErrCorruptHistory)

			raw, ok, err := store.Get(ctx, HistoryKey)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "[{broken", raw, "unreadable history must not be overwritten")
		})
	}
}

func TestHistoryLooselyTypedEntriesSurviveAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	stored := `[` +
		`{"risk_level":"HIGH","date":"2026-01-01T00:00:00Z","filename":"a.pdf","abnormal_values":[{"test":"SGPT","value":75,"unit":"U/L"}],"source":"web"},` +
		`{"risk_level":2,"date":"2026-02-01T00:00:00Z","filename":"b.pdf","recommendations":"rest","abnormal_values":[{"test":"SGPT","value":true},7]},` +
		`42` +
		`]`
	require.NoError(t, store.Set(ctx, HistoryKey, stored))
	history := NewHistoryStore(store)

	entries, err := history.Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.Measurement("75"), entries[0].AbnormalValues[0].Value)
	assert.Equal(t, "b.pdf", entries[1].Filename)
	assert.Equal(t, models.RiskLevel(""), entries[1].RiskLevel)
	assert.Nil(t, entries[1].Recommendations)
	require.Len(t, entries[1].AbnormalValues, 2)
	assert.Equal(t, models.Measurement("true"), entries[1].AbnormalValues[0].Value)

	require.NoError(t, history.Append(ctx, sampleEntry(models.RiskLow, "c.pdf")))

	entries, err = history.Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.pdf"},
		[]string{entries[0].Filename, entries[1].Filename, entries[2].Filename})

	// earlier elements are carried over byte for byte
	raw, _, err := store.Get(ctx, HistoryKey)
	require.NoError(t, err)
	var items []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 4)
	assert.Contains(t, string(items[0]), `"source":"web"`)
	assert.Contains(t, string(items[0]), `"value":75`)
	assert.Contains(t, string(items[1]), `"risk_level":2`)
	assert.Equal(t, "42", string(items[2]))
}

func TestHistoryAppendBroadcastsChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := NewMemoryStore()
	events := store.Subscribe(ctx)

	require.NoError(t, NewHistoryStore(store).Append(ctx, sampleEntry(models.RiskLow, "x.pdf")))

	select {
	case ev := <-events:
		assert.Equal(t, HistoryKey, ev.Key)
		assert.Equal(t, OpSet, ev.Op)
	case <-time.After(time.Second):
		t.Fatal("no storage event after append")
	}
}

func TestHistoryFind(t *testing.T) {
	ctx := context.Background()
	history := NewHistoryStore(NewMemoryStore())
	entry := sampleEntry(models.RiskHigh, "liver.pdf")
	entry.ID = "abc"
	require.NoError(t, history.Append(ctx, sampleEntry(models.RiskLow, "other.pdf")))
	require.NoError(t, history.Append(ctx, entry))

	found, ok, err := history.Find(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "liver.pdf", found.Filename)

	_, ok, err = history.Find(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionStore(NewMemoryStore())
	user := models.User{Name: "Asha", Email: "asha@example.com"}

	require.NoError(t, sessions.Save(ctx, user))
	got, ok, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, user, got)

	require.NoError(t, sessions.Clear(ctx))
	_, ok, err = sessions.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionCorruptSlotIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, UserKey, "not-json"))

	_, ok, err := NewSessionStore(store).Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
