package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-marketplace/internal/distance"
	"auction-marketplace/internal/models"
	"auction-marketplace/internal/registry"
	"auction-marketplace/internal/searchindex"
	"auction-marketplace/internal/server"
	"auction-marketplace/internal/userstore"

	"github.com/gin-gonic/gin"
)

// testEnv bundles the wired pieces so tests can reach past the HTTP
// layer when they need to settle an auction or inspect balances.
type testEnv struct {
	Store    *userstore.Store
	Registry *registry.Registry
	Search   *searchindex.Index
	Router   *gin.Engine
	Now      time.Time
}

// SetupTestEnv wires a full in-memory stack with a fixed clock and
// the given users registered.
func SetupTestEnv(t *testing.T, userIDs ...string) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := userstore.New(distance.Manhattan)
	for _, id := range userIDs {
		if err := store.Add(id, "secret", "Family", "First", models.Coordinates{}, ""); err != nil {
			t.Fatalf("failed to add user %s: %v", id, err)
		}
	}

	reg := registry.NewWithClock(store, time.Hour, func() time.Time { return now })
	search := searchindex.New()
	router := server.SetupRouter(reg, search)

	return &testEnv{Store: store, Registry: reg, Search: search, Router: router, Now: now}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data unwraps the "data" envelope as a JSON object.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
