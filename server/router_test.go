package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ConceptN8/poker-study-tool/server/ranges"
)

const routerTestCSV = `position,stack_bb_bucket,vs_situation,hand_class,action,size
BTN,10-20,unopened,premium,Jam,Jam
`

func setupRanges(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranges.csv")
	if err := os.WriteFile(path, []byte(routerTestCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RANGES_CSV", path)
	ranges.Reset()
	t.Cleanup(ranges.Reset)
}

func TestHealth(t *testing.T) {
	setupRanges(t)
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["ok"] != true {
		t.Fatalf("body = %v", body)
	}
	if body["db"] != false {
		t.Fatalf("db should be false without a store, got %v", body["db"])
	}
}

func TestRecommendEndpoint(t *testing.T) {
	setupRanges(t)
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	body := `{
        "hand": {"hero_hand": "AA", "position": "BTN", "effective_bb": 15, "opener": ""},
        "metadata": {"players_left": "20/28", "places_paid": "27"}
    }`
	resp, err := http.Post(srv.URL+"/api/recommend", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Action    string  `json:"action"`
		Size      string  `json:"size"`
		Rationale string  `json:"rationale"`
		Pressure  float64 `json:"pressure"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Action != "Jam" || out.Size != "Jam" {
		t.Fatalf("got %s/%s, want Jam/Jam", out.Action, out.Size)
	}
	if out.Pressure != 1.0 {
		t.Fatalf("pressure = %v, want 1.0", out.Pressure)
	}
	if !strings.HasPrefix(out.Rationale, "Lookup match") {
		t.Fatalf("rationale = %q", out.Rationale)
	}
}

func TestRecommendEndpointMissIsNotAnError(t *testing.T) {
	setupRanges(t)
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	body := `{"hand": {"hero_hand": "72o", "position": "UTG", "effective_bb": 50}}`
	resp, err := http.Post(srv.URL+"/api/recommend", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, a table miss is a valid outcome", resp.StatusCode)
	}
	var out struct {
		Action    string `json:"action"`
		Size      string `json:"size"`
		Rationale string `json:"rationale"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Action != "Unknown" || out.Size != "N/A" {
		t.Fatalf("got %s/%s, want Unknown/N/A", out.Action, out.Size)
	}
	if strings.TrimSpace(out.Rationale) == "" {
		t.Fatal("narrative fallback must be non-empty")
	}
}

func TestRecommendEndpointBadJSON(t *testing.T) {
	setupRanges(t)
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/recommend", "application/json", strings.NewReader("{nope"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPersistenceEndpointsWithoutDB(t *testing.T) {
	setupRanges(t)
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	for _, ep := range []struct{ method, path string }{
		{http.MethodPost, "/api/hands"},
		{http.MethodGet, "/api/hands"},
		{http.MethodGet, "/api/hands/export"},
		{http.MethodGet, "/api/quiz"},
	} {
		req, _ := http.NewRequest(ep.method, srv.URL+ep.path, strings.NewReader("{}"))
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s %s: status = %d, want 503", ep.method, ep.path, resp.StatusCode)
		}
	}
}
