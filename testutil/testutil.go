package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/campusvoice/petition/cliparse"
	"github.com/campusvoice/petition/docstore"
	"github.com/campusvoice/petition/models"
)

// SetupTestStore opens a fresh document store in a per-test temp directory
// with all collections created. The store is closed automatically when the
// test finishes.
func SetupTestStore(t *testing.T) *docstore.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "petition.db")
	store, err := docstore.Open(path,
		models.CollectionSignatures,
		models.CollectionComments,
		models.CollectionLiked,
	)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:    3324,
		DBPath:  "unused-in-tests",
		SiteURL: "https://petition.test/",
	}
}

// SeedSignature inserts a signature document directly and returns it.
func SeedSignature(t *testing.T, store *docstore.Store, name, roll, branch, year string, timestamp int64) models.Signature {
	t.Helper()

	sig := models.Signature{
		ID:        uuid.NewString(),
		Name:      name,
		Roll:      roll,
		Course:    "B.Tech",
		Branch:    branch,
		Year:      year,
		Timestamp: timestamp,
	}
	if err := docstore.Put(store, models.CollectionSignatures, sig.ID, sig); err != nil {
		t.Fatalf("Failed to seed signature: %v", err)
	}

	return sig
}

// SeedComment inserts a comment document directly and returns it.
func SeedComment(t *testing.T, store *docstore.Store, text string, postedAt int64, likes int) models.Comment {
	t.Helper()

	comment := models.Comment{
		ID:    uuid.NewString(),
		Text:  text,
		Time:  postedAt,
		Likes: likes,
	}
	if err := docstore.Put(store, models.CollectionComments, comment.ID, comment); err != nil {
		t.Fatalf("Failed to seed comment: %v", err)
	}

	return comment
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
