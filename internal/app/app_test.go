package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/specialistvlad/gridkata/internal/node"
	"github.com/specialistvlad/gridkata/internal/nodeid"
	"github.com/specialistvlad/gridkata/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const puzzlesHCL = `
tree "sample" {
  match = value % 2 == 0
  root {
    value = 1
    left {
      value = 3
      left { value = 4 }
    }
    right { value = 2 }
  }
}

grid "maze" {
  rows = [".#", ".."]
}

stairs "four" {
  steps = 4
}
`

func writePuzzles(t *testing.T, content string) string {
	t.Helper()
	return testutil.WriteFile(t, "puzzles.hcl", content)
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()
	conf, err := NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &testutil.SafeBuffer{}
	a, err := NewApp(context.Background(), out, logs, conf, nil)
	require.NoError(t, err)
	return a, out, logs
}

func TestRun_TextReport(t *testing.T) {
	a, out, logs := newTestApp(t, Config{PuzzlePath: writePuzzles(t, puzzlesHCL), LogLevel: "debug", WorkerCount: 2})

	require.NoError(t, a.Run(context.Background()))

	report := out.String()
	assert.Contains(t, report, "grid.maze: completed")
	assert.Contains(t, report, `path = ["(0,0)","(1,0)","(1,1)"]`)
	assert.Contains(t, report, "stairs.four: completed")
	assert.Contains(t, report, "combinations = 7")
	assert.Contains(t, report, "breadth_first_match = 2")
	assert.Contains(t, report, "depth_first_match = 4")
	assert.Contains(t, logs.String(), "run_id=")
}

func TestRun_JSONReport(t *testing.T) {
	a, out, _ := newTestApp(t, Config{PuzzlePath: writePuzzles(t, puzzlesHCL), OutputFormat: "json", LogFormat: "json"})

	require.NoError(t, a.Run(context.Background()))

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc, 3)
	assert.Equal(t, "grid.maze", doc[0]["puzzle"])
	assert.Equal(t, "stairs.four", doc[1]["puzzle"])
	assert.Equal(t, "tree.sample", doc[2]["puzzle"])
}

func TestRun_PuzzleFailureStillReports(t *testing.T) {
	a, out, _ := newTestApp(t, Config{PuzzlePath: writePuzzles(t, `
stairs "bad" {
  steps = -1
}
grid "ok" {
  rows = ["."]
}
`)})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stairs.bad")

	assert.Contains(t, out.String(), "stairs.bad: failed")
	assert.Contains(t, out.String(), "grid.ok: completed")

	status, _ := a.Store().GetStatus(context.Background(), nodeid.MustParse("grid.ok"))
	assert.Equal(t, node.StatusCompleted, status)
}

func TestRun_LoadError(t *testing.T) {
	a, out, _ := newTestApp(t, Config{PuzzlePath: writePuzzles(t, `grid "x" {`)})

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load puzzles")
	assert.Empty(t, out.String())
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{PuzzlePath: "x", OutputFormat: "xml"})
	require.Error(t, err)

	_, err = NewConfig(Config{PuzzlePath: "x", HealthcheckPort: 70000})
	require.Error(t, err)

	cfg, err := NewConfig(Config{PuzzlePath: "x"})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, 1, cfg.WorkerCount)
}

func TestNewLogger_Levels(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger("warn", "text", buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	newLogger("bogus", "json", buf).Info("fallback")
	assert.Contains(t, buf.String(), `"msg":"fallback"`)
}

func TestHealthHandler(t *testing.T) {
	a, _, _ := newTestApp(t, Config{PuzzlePath: "x"})

	rec := httptest.NewRecorder()
	a.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())
}

func TestHealthCheckServer_ServesAndShutsDown(t *testing.T) {
	a, _, _ := newTestApp(t, Config{PuzzlePath: "x"})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	a.serveHealthCheck(ln)

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK\n", string(body))

	require.NoError(t, a.closeHealthCheckServer())
	assert.NoError(t, a.closeHealthCheckServer(), "closing twice is a no-op")
}

func TestNewLogger_DebugAddsSource(t *testing.T) {
	buf := &bytes.Buffer{}
	newLogger("DEBUG", "text", buf).Debug("traced")
	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "traced")
}
