package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveLoadState(t *testing.T) {
	store := openTestStore(t)

	payload := bytes.Repeat([]byte(`{"coins":123,"inventory":[]}`), 50)
	if err := store.SaveState("slot-a", payload); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	got, ok, err := store.LoadState("slot-a")
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}
	if !ok {
		t.Fatal("LoadState() reported missing slot")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload mismatch: got %d bytes, want %d", len(got), len(payload))
	}

	// Overwrite keeps a single row
	if err := store.SaveState("slot-a", []byte("v2")); err != nil {
		t.Fatalf("SaveState() overwrite failed: %v", err)
	}
	got, _, _ = store.LoadState("slot-a")
	if string(got) != "v2" {
		t.Errorf("Expected overwritten payload v2, got %q", got)
	}
}

func TestStorePayloadIsCompressed(t *testing.T) {
	store := openTestStore(t)

	payload := bytes.Repeat([]byte("aluminum,"), 1000)
	if err := store.SaveState("big", payload); err != nil {
		t.Fatalf("SaveState() failed: %v", err)
	}

	slots, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots() failed: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("Expected 1 slot, got %d", len(slots))
	}
	if slots[0].RawSize != len(payload) || slots[0].Size >= slots[0].RawSize {
		t.Errorf("Expected compressed size below %d, got %+v", len(payload), slots[0])
	}
}

func TestStoreLoadMissingSlot(t *testing.T) {
	store := openTestStore(t)

	got, ok, err := store.LoadState("nobody")
	if err != nil {
		t.Fatalf("LoadState() failed: %v", err)
	}
	if ok || got != nil {
		t.Errorf("Expected empty slot, got %q, %v", got, ok)
	}
}

func TestStoreDeleteState(t *testing.T) {
	store := openTestStore(t)

	store.SaveState("a", []byte("x"))
	store.SaveState("b", []byte("y"))
	store.RecordFind("a", FindEntry{ItemID: "gold_1", Metal: "gold", Tier: 5, Value: 200})
	store.RecordFind("b", FindEntry{ItemID: "gold_2", Metal: "gold", Tier: 5, Value: 200})

	if err := store.DeleteState("a"); err != nil {
		t.Fatalf("DeleteState() failed: %v", err)
	}

	if _, ok, _ := store.LoadState("a"); ok {
		t.Error("Slot a should be gone")
	}
	if finds, _ := store.AllFinds("a"); len(finds) != 0 {
		t.Errorf("Expected finds of a to be cleared, got %d", len(finds))
	}
	if _, ok, _ := store.LoadState("b"); !ok {
		t.Error("Slot b should not be affected")
	}
	if finds, _ := store.AllFinds("b"); len(finds) != 1 {
		t.Error("Finds of b should not be affected")
	}
}

func TestStoreSlotsOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveState("old", []byte("1"))
	time.Sleep(5 * time.Millisecond)
	store.SaveState("new", []byte("2"))

	slots, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots() failed: %v", err)
	}
	if len(slots) != 2 || slots[0].Slot != "new" || slots[1].Slot != "old" {
		t.Errorf("Unexpected slot order: %+v", slots)
	}
	if slots[0].UpdatedAt.IsZero() {
		t.Error("UpdatedAt not set")
	}
}

func TestStoreTopFinds(t *testing.T) {
	store := openTestStore(t)

	values := []int64{200, 50, 4000, 600, 1200}
	for i, v := range values {
		_, err := store.RecordFind("main", FindEntry{
			ItemID:   "item",
			Metal:    "gold",
			Variants: []string{"shiny"},
			Tier:     5 + i%2,
			Value:    v,
			Area:     "farm",
			Signal:   0.9,
		})
		if err != nil {
			t.Fatalf("RecordFind() failed: %v", err)
		}
	}
	store.RecordFind("other", FindEntry{ItemID: "x", Metal: "rhodium", Tier: 8, Value: 99999})

	top, err := store.TopFinds("main", 3)
	if err != nil {
		t.Fatalf("TopFinds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 finds with limit, got %d", len(top))
	}
	if top[0].Value != 4000 || top[1].Value != 1200 || top[2].Value != 600 {
		t.Errorf("Finds not in expected order: %+v", top)
	}
	if !reflect.DeepEqual(top[0].Variants, []string{"shiny"}) || top[0].Area != "farm" {
		t.Errorf("Fields not round-tripped: %+v", top[0])
	}
}

func TestStoreFindsWithoutVariants(t *testing.T) {
	store := openTestStore(t)

	foundAt := time.UnixMilli(1_700_000_000_000)
	store.RecordFind("s", FindEntry{ItemID: "gold_1", Metal: "gold", Tier: 5, Value: 200, FoundAt: foundAt})

	all, err := store.AllFinds("s")
	if err != nil {
		t.Fatalf("AllFinds() failed: %v", err)
	}
	if len(all) != 1 || all[0].Variants != nil {
		t.Fatalf("Unexpected finds: %+v", all)
	}
	if !all[0].FoundAt.Equal(foundAt) {
		t.Errorf("FoundAt = %v, want %v", all[0].FoundAt, foundAt)
	}
}

func TestStoreFindStats(t *testing.T) {
	store := openTestStore(t)

	// No finds yet
	stats, err := store.FindStats("s")
	if err != nil {
		t.Fatalf("FindStats() failed: %v", err)
	}
	if stats.Count != 0 || stats.BestValue != 0 || !stats.LastFound.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.RecordFind("s", FindEntry{ItemID: "a", Metal: "gold", Tier: 5, Value: 200})
	store.RecordFind("s", FindEntry{ItemID: "b", Metal: "rhodium", Tier: 8, Value: 5000})

	stats, err = store.FindStats("s")
	if err != nil {
		t.Fatalf("FindStats() failed: %v", err)
	}
	if stats.Count != 2 || stats.BestValue != 5000 || stats.TotalValue != 5200 || stats.BestTier != 8 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastFound.IsZero() {
		t.Error("LastFound not set")
	}
}
