package main

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaughan-dsouza/jobboard/internal/handlers"
	"github.com/vaughan-dsouza/jobboard/internal/repository/postgres"
	"go.uber.org/zap/zaptest"
)

func newTestServer(t *testing.T) (*httptest.Server, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dbConn := sqlx.NewDb(mockDB, "sqlmock")
	log := zaptest.NewLogger(t)
	h := handlers.NewHandler(postgres.NewRepositories(dbConn, "public"), handlers.Options{JWTSecret: "test-secret"}, log)

	srv := httptest.NewServer(newRouter(h, dbConn, prometheus.NewRegistry(), log))
	t.Cleanup(srv.Close)
	return srv, mock
}

func TestRouter_UnknownResource(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api?resource=foo")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRouter_Preflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/auth", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "86400", resp.Header.Get("Access-Control-Max-Age"))
}

func TestRouter_Healthz(t *testing.T) {
	srv, mock := newTestServer(t)

	mock.ExpectPing()
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true}`, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"database unavailable"}`, string(body))
}

func TestRouter_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api?resource=vacancies&action=bogus")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `jobboard_http_requests_total{method="GET",route="/api:vacancies:other",status="400"} 1`)
}
