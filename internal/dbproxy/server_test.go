package dbproxy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "proxy-test-token"

// testServer builds a proxy whose database handle points at an unreachable
// address, so every real query errors at execution time.
func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlx.Open("postgres", "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cfg := &Config{Token: testToken, DatabaseURL: "postgres://unreachable/none"}
	return NewServer(cfg, db)
}

func doRequest(srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestQueryRejectsMissingToken(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodPost, "/query", "", `{"query":"SELECT 1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp, "debug")
}

func TestQueryRejectsWrongToken(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodPost, "/query", "wrong-token", `{"query":"SELECT * FROM tickets"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestQuerySelectOneFallback(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodPost, "/query", testToken, `{"query":"SELECT 1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success  bool                     `json:"success"`
		Rows     []map[string]interface{} `json:"rows"`
		RowCount int                      `json:"rowCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.RowCount)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, float64(1), resp.Rows[0]["test"])
}

func TestQueryUnreachableDatabase(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodPost, "/query", testToken, `{"query":"SELECT * FROM tickets"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["error"])
}

func TestQueryMissingBody(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodPost, "/query", testToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthReportsConfigPresence(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodGet, "/health", testToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["hasDatabaseUrl"])
	assert.Equal(t, true, resp["hasApiKey"])
}

func TestUnknownPathReturnsEndpointList(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodGet, "/nope", testToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp, "availableEndpoints")
}

func TestOptionsPreflightAllowed(t *testing.T) {
	srv := testServer(t)

	w := doRequest(srv, http.MethodOptions, "/query", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
