package function

import (
	"encoding/json"
	"net/http"
)

const (
	SetCookieHeader = "X-Set-Cookie"

	allowHeaders = "Content-Type, Authorization, X-Authorization"
)

func baseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                     "application/json",
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Credentials": "true",
	}
}

// JSON encodes payload as the response body. Extra headers are merged over
// the defaults.
func JSON(status int, payload any, extra map[string]string) Response {
	headers := baseHeaders()
	for k, v := range extra {
		headers[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]any{"success": false, "error": err.Error()})
	}

	return Response{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

// Success wraps data as {"success": true, "data": data}.
func Success(status int, data any) Response {
	return JSON(status, map[string]any{"success": true, "data": data}, nil)
}

// Error wraps message as {"success": false, "error": message}.
func Error(status int, message string) Response {
	return JSON(status, map[string]any{"success": false, "error": message}, nil)
}

// Preflight is the fixed answer to OPTIONS.
func Preflight(methods string) Response {
	return Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Methods":     methods,
			"Access-Control-Allow-Headers":     allowHeaders,
			"Access-Control-Max-Age":           "86400",
			"Access-Control-Allow-Credentials": "true",
		},
	}
}
