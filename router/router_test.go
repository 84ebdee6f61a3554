package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusvoice/petition/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	store := testutil.SetupTestStore(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	store := testutil.SetupTestStore(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "petition API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	store := testutil.SetupTestStore(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	// Routes should be matched; 400/404/409 are valid handler responses
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/signatures"},
		{"GET", "/signatures"},
		{"GET", "/signatures/summary"},

		{"POST", "/comments"},
		{"GET", "/comments"},
		{"POST", "/comments/test-id/like"},

		{"GET", "/branches"},
		{"GET", "/share"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	store := testutil.SetupTestStore(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},   // Only GET is defined
		{"DELETE", "/comments"}, // Only GET/POST are defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPathParameterExtraction(t *testing.T) {
	store := testutil.SetupTestStore(t)
	mux := NewRouter(store, testutil.GetTestConfig())

	comment := testutil.SeedComment(t, store, "route me", 100, 0)

	req := httptest.NewRequest("POST", "/comments/"+comment.ID+"/like", nil)
	req.Header.Set("X-Client-UUID", "0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 liking via the router, got %d. Body: %s", w.Code, w.Body.String())
	}
}
