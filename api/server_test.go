package api

import (
	"encoding/json"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matt-g-everett/sparkle/anim"
	"github.com/matt-g-everett/sparkle/control"
	"github.com/matt-g-everett/sparkle/sprite"
)

func newTestServer(t *testing.T, static string) (*httptest.Server, *anim.Animation) {
	t.Helper()
	a := anim.NewAnimation(0)
	a.SetClock(anim.NewManualClock(time.Unix(0, 0)))
	a.Add(0, sprite.NewShape(image.Rect(0, 0, 1, 1), color.White))

	srv := httptest.NewServer(NewApi(":0", static, control.NewController(a)).Handler())
	t.Cleanup(srv.Close)
	return srv, a
}

func decodeStatus(t *testing.T, resp *http.Response) control.Status {
	t.Helper()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var s control.Status
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return s
}

func TestStatus(t *testing.T) {
	srv, _ := newTestServer(t, "")
	resp, err := http.Get(srv.URL + "/status")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}
	s := decodeStatus(t, resp)
	if s.Running || len(s.Blocks) != 1 || s.Blocks[0].State != "scheduled" {
		t.Errorf("Unexpected status %+v", s)
	}
}

func TestNamedCommands(t *testing.T) {
	srv, a := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/start", "", nil)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	if s := decodeStatus(t, resp); !s.Running {
		t.Error("Expected running status after start")
	}

	resp, _ = http.Post(srv.URL+"/pause", "", nil)
	if s := decodeStatus(t, resp); !s.Paused {
		t.Error("Expected paused status")
	}
	if !a.Paused() {
		t.Error("Expected animation paused")
	}

	resp, _ = http.Post(srv.URL+"/explode", "", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for an unknown command, got %d", resp.StatusCode)
	}

	resp, _ = http.Get(srv.URL + "/stop")
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for GET on a command, got %d", resp.StatusCode)
	}
	if !a.Running() {
		t.Error("Expected GET not to stop the animation")
	}
}

func TestJSONCommand(t *testing.T) {
	srv, a := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/command", "application/json", strings.NewReader(`{"type":"start"}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	decodeStatus(t, resp)
	if !a.Running() {
		t.Error("Expected animation started")
	}

	resp, _ = http.Post(srv.URL+"/command", "application/json", strings.NewReader(`{`))
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", resp.StatusCode)
	}
}

func TestStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>sparkle</h1>"), 0o644); err != nil {
		t.Fatal(err)
	}
	srv, _ := newTestServer(t, dir)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected index page, got %d", resp.StatusCode)
	}
}
