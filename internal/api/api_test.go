package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/termilink/termilink/internal/noteservice"
	"github.com/termilink/termilink/internal/testutil"
)

// testEnv sets up a temp vault, service, and router for testing.
// An empty authToken means auth is disabled.
func testEnv(t *testing.T, authToken string) (http.Handler, string) {
	t.Helper()

	vaultDir, store := testutil.TestVault(t)
	cfg := testutil.TestConfig(t, vaultDir)
	svc := noteservice.NewService(cfg, store)
	router := NewRouter(cfg, svc, authToken != "", authToken, nil)
	return router, vaultDir
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAppendNote(t *testing.T) {
	router, vaultDir := testEnv(t, "")

	w := postJSON(t, router, "/notes/append", map[string]any{
		"content": "ship it",
		"tags":    []string{"work"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("append status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp AppendNoteResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if !strings.HasPrefix(resp.Path, "Daily Notes"+string(filepath.Separator)) {
		t.Errorf("path = %q, want daily note", resp.Path)
	}
	if !strings.Contains(resp.Fragment, "ship it") || !strings.Contains(resp.Fragment, "#work") {
		t.Errorf("fragment = %q", resp.Fragment)
	}

	data, err := os.ReadFile(filepath.Join(vaultDir, resp.Path))
	if err != nil {
		t.Fatalf("read daily note: %v", err)
	}
	if !strings.Contains(string(data), resp.Fragment) {
		t.Errorf("fragment missing from file: %q", data)
	}
}

func TestAppendNoteToFile(t *testing.T) {
	router, _ := testEnv(t, "")

	w := postJSON(t, router, "/notes/append", map[string]any{
		"content": "scoped",
		"file":    "projects/x.md",
		"format":  "bullet",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("append status = %d", w.Code)
	}
	var resp AppendNoteResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Path != filepath.Join("projects", "x.md") {
		t.Errorf("path = %q", resp.Path)
	}
	if !strings.HasPrefix(resp.Fragment, "- ") {
		t.Errorf("fragment = %q, want bullet", resp.Fragment)
	}
}

func TestAppendNoteValidation(t *testing.T) {
	router, _ := testEnv(t, "")

	w := postJSON(t, router, "/notes/append", map[string]any{"content": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty content status = %d, want 400", w.Code)
	}

	w = postJSON(t, router, "/notes/append", map[string]any{
		"content": "x",
		"format":  "sparkles",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad format status = %d, want 400", w.Code)
	}
}

func TestCreateNote(t *testing.T) {
	router, vaultDir := testEnv(t, "")

	w := postJSON(t, router, "/notes", map[string]any{
		"filename":     "meeting",
		"content":      "# Agenda",
		"subdirectory": "work",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp CreateNoteResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Path != filepath.Join("work", "meeting.md") {
		t.Errorf("path = %q", resp.Path)
	}
	if _, err := os.Stat(filepath.Join(vaultDir, resp.Path)); err != nil {
		t.Errorf("created file missing: %v", err)
	}
}

func TestRecentNotes(t *testing.T) {
	router, vaultDir := testEnv(t, "")

	_ = os.WriteFile(filepath.Join(vaultDir, "a.md"), []byte("# A"), 0o644)
	_ = os.WriteFile(filepath.Join(vaultDir, "b.md"), []byte("# B"), 0o644)

	req := httptest.NewRequest(http.MethodGet, "/notes/recent?limit=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("recent status = %d", w.Code)
	}
	var resp RecentNotesResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Notes) != 1 {
		t.Errorf("notes = %d, want 1 (limit)", len(resp.Notes))
	}
}

func TestDailyNote(t *testing.T) {
	router, _ := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/daily", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("daily status = %d", w.Code)
	}
	var resp DailyNoteResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Path == "" {
		t.Error("daily path empty")
	}
	if resp.Exists {
		t.Error("daily note should not exist in fresh vault")
	}
}

func TestAuthRequired(t *testing.T) {
	router, _ := testEnv(t, "secret")

	w := postJSON(t, router, "/notes/append", map[string]any{"content": "x"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", w.Code)
	}

	raw, _ := json.Marshal(map[string]any{"content": "x"})
	req := httptest.NewRequest(http.MethodPost, "/notes/append", bytes.NewReader(raw))
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", rec.Code)
	}
}
