package function

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	resp := Success(http.StatusCreated, map[string]any{"id": 7})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.False(t, resp.IsBase64Encoded)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "true", resp.Headers["Access-Control-Allow-Credentials"])
	assert.JSONEq(t, `{"success":true,"data":{"id":7}}`, resp.Body)
}

func TestError(t *testing.T) {
	resp := Error(http.StatusUnauthorized, "Unauthorized")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"Unauthorized"}`, resp.Body)
}

func TestJSON_ExtraHeaders(t *testing.T) {
	resp := JSON(http.StatusOK, map[string]any{"success": true}, map[string]string{SetCookieHeader: "a=b"})

	assert.Equal(t, "a=b", resp.Headers[SetCookieHeader])
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestJSON_UnencodablePayload(t *testing.T) {
	resp := JSON(http.StatusOK, map[string]any{"bad": make(chan int)}, nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, false, body["success"])
}

func TestPreflight(t *testing.T) {
	resp := Preflight("GET, POST, OPTIONS")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Equal(t, "GET, POST, OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
	assert.Equal(t, "86400", resp.Headers["Access-Control-Max-Age"])
	assert.Contains(t, resp.Headers["Access-Control-Allow-Headers"], "X-Authorization")
}

func TestEvent_Header(t *testing.T) {
	ev := Event{Headers: map[string]string{"x-authorization": "Bearer abc", "X-Cookie": "a=b"}}

	assert.Equal(t, "Bearer abc", ev.Header("X-Authorization"))
	assert.Equal(t, "a=b", ev.Header("X-Cookie"))
	assert.Empty(t, ev.Header("X-Missing"))
	assert.Empty(t, Event{}.Header("X-Authorization"))
}

func TestEvent_QueryAndMethod(t *testing.T) {
	ev := Event{QueryStringParameters: map[string]string{"resource": "vacancies"}}

	assert.Equal(t, "vacancies", ev.Query("resource", ""))
	assert.Equal(t, "list", ev.Query("action", "list"))
	assert.Equal(t, "GET", ev.Method())
	assert.Equal(t, "POST", Event{HTTPMethod: "post"}.Method())
}
