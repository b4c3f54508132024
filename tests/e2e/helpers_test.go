//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vilyaua/AI-01/internal/adapter/postgres/testhelper"
	"github.com/vilyaua/AI-01/internal/app"
	"github.com/vilyaua/AI-01/internal/config"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application handler against a real
// PostgreSQL container. No generation or extraction credentials are set, so
// every model-backed operation takes its deterministic fallback.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{MaxUploadBytes: 1 << 20},
		LLM:    config.LLMConfig{Provider: config.ProviderOpenAI},
		CORS: config.CORSConfig{
			AllowedOrigins: "http://localhost:3000",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type",
		},
	}

	handler, stop, err := app.NewHandler(context.Background(), cfg, pool, logger)
	require.NoError(t, err)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// postJSON sends body as JSON and decodes the response into a generic map or slice.
func (ts *testServer) postJSON(t *testing.T, path string, body any) (int, []byte) {
	t.Helper()

	buf, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

func (ts *testServer) get(t *testing.T, path string) (int, []byte) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

func (ts *testServer) upload(t *testing.T, path, filename string, data []byte) int {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := ts.Client.Post(ts.URL+path, mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", body)
	return v
}

// createLearner registers a learner with a unique username and returns its id.
func createLearner(t *testing.T, ts *testServer, lang string) string {
	t.Helper()

	status, body := ts.postJSON(t, "/api/users", map[string]string{
		"username":        "e2e-" + randomSuffix(),
		"native_language": lang,
	})
	require.Equal(t, http.StatusCreated, status, "body: %s", body)
	return decode[map[string]any](t, body)["id"].(string)
}
