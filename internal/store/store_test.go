package store_test

import (
	"testing"

	"harborview/internal/domain"
	"harborview/internal/store"
)

func open(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestPutGetRoundtrip(t *testing.T) {
	st := open(t)

	in := []domain.CartLine{{ID: 1, Name: "Burger", Price: 16.99, Quantity: 2}}
	if err := st.Put(store.CartKey("s1"), in); err != nil {
		t.Fatal(err)
	}

	out := []domain.CartLine{}
	ok, err := st.Get(store.CartKey("s1"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || len(out) != 1 || out[0] != in[0] {
		t.Fatalf("roundtrip mismatch: %+v", out)
	}

	// whole-key overwrite, no merging
	if err := st.Put(store.CartKey("s1"), []domain.CartLine{}); err != nil {
		t.Fatal(err)
	}
	out = nil
	if _, err := st.Get(store.CartKey("s1"), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("want overwritten empty value, got %+v", out)
	}
}

func TestGetAbsentKey(t *testing.T) {
	st := open(t)

	out := []domain.Order{{ID: "sentinel"}}
	ok, err := st.Get("orders:never-written", &out)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("absent key must report !ok")
	}
	if len(out) != 1 || out[0].ID != "sentinel" {
		t.Fatalf("dest must be untouched on absent key, got %+v", out)
	}
}

func TestFirstRunSeed(t *testing.T) {
	st := open(t)

	items := []domain.InventoryItem{}
	if _, err := st.Get(store.KeyInventory, &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 || items[0].Name != "Ground Beef" {
		t.Fatalf("bad seed: %+v", items)
	}

	rooms := []domain.Room{}
	if _, err := st.Get(store.KeyRooms, &rooms); err != nil {
		t.Fatal(err)
	}
	if len(rooms) != 6 {
		t.Fatalf("want 6 seeded rooms, got %d", len(rooms))
	}

	// seeded keys stay writable like any other key
	items[0].CurrentStock = 1
	if err := st.Put(store.KeyInventory, items); err != nil {
		t.Fatal(err)
	}
	check := []domain.InventoryItem{}
	if _, err := st.Get(store.KeyInventory, &check); err != nil {
		t.Fatal(err)
	}
	if check[0].CurrentStock != 1 {
		t.Fatalf("mutation lost: %+v", check[0])
	}
}
