package integration

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"witt-interpreter-be/internal/bootstrap"
	"witt-interpreter-be/internal/config"
	"witt-interpreter-be/internal/constant"
	"witt-interpreter-be/internal/server"
)

// newTestApp builds the full HTTP stack against the in-memory vector store so
// no external services are required.
func newTestApp(t *testing.T) *server.Server {
	t.Helper()
	t.Setenv("VECTOR_STORE", "memory")
	t.Setenv("NATS_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_FILE_PATH", t.TempDir()+"/app.log")

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestHealth(t *testing.T) {
	app := newTestApp(t).GetApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestListFrameworks(t *testing.T) {
	app := newTestApp(t).GetApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/frameworks/v1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	var frameworks []struct {
		Id   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &frameworks))
	assert.Len(t, frameworks, len(constant.Frameworks))

	ids := make(map[string]bool)
	for _, fw := range frameworks {
		ids[fw.Id] = true
	}
	assert.True(t, ids["early"])
	assert.True(t, ids["transactional"])
}

func TestShowFramework(t *testing.T) {
	app := newTestApp(t).GetApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/frameworks/v1/therapeutic", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/frameworks/v1/nonexistent", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestValidationFailures(t *testing.T) {
	app := newTestApp(t).GetApp()

	cases := []struct {
		name string
		path string
	}{
		{"start run without question", "/api/interpretation/v1"},
		{"search without query", "/api/search/wittgenstein"},
		{"improve without question", "/api/question/v1/improve"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tc.path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)

			var body envelope
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, 400, body.Code)
			assert.Contains(t, body.Message, "validation failed")
		})
	}
}

func TestGetUnknownRun(t *testing.T) {
	app := newTestApp(t).GetApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interpretation/v1/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/interpretation/v1/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRetryUnknownRun(t *testing.T) {
	app := newTestApp(t).GetApp()

	req := httptest.NewRequest("POST", "/api/interpretation/v1/"+uuid.NewString()+"/retry/early", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestWebSocketRouteRequiresUpgrade(t *testing.T) {
	app := newTestApp(t).GetApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/interpretation/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, 426, resp.StatusCode)
}
