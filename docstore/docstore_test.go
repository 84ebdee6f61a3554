package docstore

import (
	"path/filepath"
	"testing"
)

type testDoc struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	N     int    `json:"n"`
}

func openTestStore(t *testing.T, collections ...string) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"), collections...)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t, "things")

	want := testDoc{ID: "a1", Label: "first", N: 7}
	if err := Put(store, "things", want.ID, want); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found, err := Get[testDoc](store, "things", "a1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatal("Expected document to be found")
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestGetMissingDocument(t *testing.T) {
	store := openTestStore(t, "things")

	_, found, err := Get[testDoc](store, "things", "nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Error("Expected missing document to report found=false")
	}
}

func TestPutReplacesDocument(t *testing.T) {
	store := openTestStore(t, "things")

	doc := testDoc{ID: "a1", Label: "first", N: 1}
	if err := Put(store, "things", doc.ID, doc); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	doc.N = 2
	if err := Put(store, "things", doc.ID, doc); err != nil {
		t.Fatalf("Second Put failed: %v", err)
	}

	got, _, err := Get[testDoc](store, "things", "a1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.N != 2 {
		t.Errorf("Expected replaced document with N=2, got N=%d", got.N)
	}

	count, err := Count(store, "things")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 document after replace, got %d", count)
	}
}

func TestSelectFiltersByPredicate(t *testing.T) {
	store := openTestStore(t, "things")

	for i, label := range []string{"red", "blue", "red"} {
		doc := testDoc{ID: string(rune('a' + i)), Label: label, N: i}
		if err := Put(store, "things", doc.ID, doc); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	reds, err := Select(store, "things", func(d testDoc) bool { return d.Label == "red" })
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(reds) != 2 {
		t.Errorf("Expected 2 red documents, got %d", len(reds))
	}

	all, err := All[testDoc](store, "things")
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 documents, got %d", len(all))
	}
}

func TestSelectEmptyCollection(t *testing.T) {
	store := openTestStore(t, "things")

	docs, err := Select(store, "things", func(testDoc) bool { return true })
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("Expected no documents, got %d", len(docs))
	}
}

func TestUnknownCollectionErrors(t *testing.T) {
	store := openTestStore(t, "things")

	if err := Put(store, "missing", "x", testDoc{}); err == nil {
		t.Error("Expected Put to an unknown collection to fail")
	}
	if _, _, err := Get[testDoc](store, "missing", "x"); err == nil {
		t.Error("Expected Get from an unknown collection to fail")
	}
	if _, err := All[testDoc](store, "missing"); err == nil {
		t.Error("Expected All on an unknown collection to fail")
	}
	if _, err := Count(store, "missing"); err == nil {
		t.Error("Expected Count on an unknown collection to fail")
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(path, "things")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if store.Path() != path {
		t.Errorf("Expected store path %s, got %s", path, store.Path())
	}
}
