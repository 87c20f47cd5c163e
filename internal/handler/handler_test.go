package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docmap/internal/config"
	"docmap/internal/domain"
	"docmap/internal/observability"
	"docmap/internal/repository/sqlite"
	"docmap/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	docs := t.TempDir()
	for _, rel := range []string{
		"getting-started/installation.md",
		"getting-started/quick-start.md",
		"guides/configuration.md",
		"guides/deployment.md",
	} {
		path := filepath.Join(docs, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("# doc\n"), 0o644))
	}

	cfg := config.DefaultConfig()
	cfg.Docs.Dir = docs
	cfg.Database.Path = filepath.Join(t.TempDir(), "docmap.db")

	repo, err := sqlite.New(cfg.Database.Path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	metrics := observability.New()
	svc := service.NewGraphService(cfg, repo, service.NewEventBus(), zap.NewNop(), metrics)
	require.NoError(t, svc.Init(context.Background()))

	h := NewGraphHandler(svc, zap.NewNop())
	router := Router(h, http.NotFoundHandler(), metrics.Handler(), zap.NewNop())

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeSnapshot(t *testing.T, resp *http.Response) domain.Snapshot {
	t.Helper()
	defer resp.Body.Close()
	var snap domain.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	return snap
}

func createSession(t *testing.T, srv *httptest.Server, currentPath string) domain.Snapshot {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/sessions", CreateSessionRequest{
		CurrentPath: currentPath,
		Width:       800,
		Height:      600,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeSnapshot(t, resp)
}

func TestGetGraph(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/graph")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Nodes []domain.Node `json:"nodes"`
		Edges []domain.Edge `json:"edges"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Nodes, 6)
	assert.NotEmpty(t, body.Edges)
}

func TestGetNodeWithSlashID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/nodes/guides/deployment")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var node domain.Node
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&node))
	assert.Equal(t, "guides/deployment", node.ID)
	assert.Equal(t, "Deployment", node.Title)

	resp, err = http.Get(srv.URL + "/api/nodes/nope/nothing")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	snap := createSession(t, srv, "guides/configuration")
	require.NotEmpty(t, snap.SessionID)
	assert.Equal(t, domain.ModeFocus, snap.Mode)
	assert.Equal(t, "guides/configuration", snap.FocusID)

	base := srv.URL + "/api/sessions/" + snap.SessionID

	resp, err := http.Get(base + "/snapshot")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	again := decodeSnapshot(t, resp)
	assert.Equal(t, snap.SessionID, again.SessionID)

	req, err := http.NewRequest(http.MethodDelete, base+"/", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(base + "/snapshot")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSearchOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	snap := createSession(t, srv, "")
	base := srv.URL + "/api/sessions/" + snap.SessionID

	resp := doJSON(t, http.MethodPost, base+"/search", SearchRequest{Query: "config"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeSnapshot(t, resp)
	assert.Equal(t, domain.ModeSearch, result.Mode)

	var matched bool
	for _, n := range result.Nodes {
		if n.ID == "guides/configuration" {
			matched = n.Visible && n.SearchScore > 0
		}
	}
	assert.True(t, matched)

	resp = doJSON(t, http.MethodPost, base+"/search", SearchRequest{Query: ""})
	result = decodeSnapshot(t, resp)
	assert.Equal(t, domain.ModeFocus, result.Mode)
}

func TestClickAndSwitchOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	snap := createSession(t, srv, "getting-started/installation")
	base := srv.URL + "/api/sessions/" + snap.SessionID

	resp := doJSON(t, http.MethodPost, base+"/click", NodeRequest{ID: "guides/deployment"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeSnapshot(t, resp)
	assert.Equal(t, "guides/deployment", result.FocusID)

	var pending bool
	for _, n := range result.Nodes {
		if n.ID == "guides/deployment" {
			pending = n.PendingSwitch
		}
	}
	assert.True(t, pending)

	resp = doJSON(t, http.MethodPost, base+"/switch", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result = decodeSnapshot(t, resp)
	for _, n := range result.Nodes {
		assert.False(t, n.PendingSwitch)
	}
}

func TestViewportOpsOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	snap := createSession(t, srv, "")
	base := srv.URL + "/api/sessions/" + snap.SessionID + "/viewport"

	resp := doJSON(t, http.MethodPost, base+"/zoom-in", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decodeSnapshot(t, resp)
	assert.InDelta(t, 1.2, result.Viewport.Scale, 1e-9)

	resp = doJSON(t, http.MethodPost, base+"/wheel", WheelRequest{DeltaY: 120})
	result = decodeSnapshot(t, resp)
	assert.InDelta(t, 1.0, result.Viewport.Scale, 1e-9)

	resp = doJSON(t, http.MethodPost, base+"/drag-start", PointRequest{X: 0, Y: 0})
	resp.Body.Close()
	resp = doJSON(t, http.MethodPost, base+"/drag-move", PointRequest{X: 40, Y: 20})
	result = decodeSnapshot(t, resp)
	assert.InDelta(t, 40.0, result.Viewport.TranslateX, 1e-9)
	assert.InDelta(t, 20.0, result.Viewport.TranslateY, 1e-9)

	resp = doJSON(t, http.MethodPost, base+"/reset", nil)
	result = decodeSnapshot(t, resp)
	assert.Equal(t, domain.ViewportTransform{Scale: 1}, result.Viewport)

	resp = doJSON(t, http.MethodPost, base+"/teleport", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnknownSession(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/sessions/not-a-session/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Session not found", body.Error)
}

func TestStatusAndReload(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status struct {
		Nodes     int    `json:"nodes"`
		Edges     int    `json:"edges"`
		Sessions  int    `json:"sessions"`
		LastBuilt string `json:"last_built"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, 6, status.Nodes)
	assert.NotEmpty(t, status.LastBuilt)

	reload := doJSON(t, http.MethodPost, srv.URL+"/api/reload", nil)
	reload.Body.Close()
	assert.Equal(t, http.StatusOK, reload.StatusCode)
}

func TestExportEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/export/json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp, err = http.Get(srv.URL + "/api/export/yaml")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/x-yaml", resp.Header.Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
