// Package function models the request/response envelope exchanged with the
// HTTP-invocation runtime and provides the JSON and CORS conventions shared by
// every endpoint.
package function

import (
	"context"
	"strings"
)

// Event is the incoming request as delivered by the runtime.
type Event struct {
	HTTPMethod            string            `json:"httpMethod"`
	Headers               map[string]string `json:"headers"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	Body                  string            `json:"body"`
}

// Response is the value returned to the runtime.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// HandlerFunc serves one event. A returned error is turned into a 500 by the
// router that owns the handler.
type HandlerFunc func(ctx context.Context, ev Event) (Response, error)

// Header returns the named header, trying the exact key first and then a
// case-insensitive match.
func (e Event) Header(name string) string {
	if v, ok := e.Headers[name]; ok {
		return v
	}
	for k, v := range e.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Query returns the query parameter or def when it is absent.
func (e Event) Query(name, def string) string {
	if v, ok := e.QueryStringParameters[name]; ok {
		return v
	}
	return def
}

// Method defaults to GET like the runtime does when httpMethod is missing.
func (e Event) Method() string {
	if e.HTTPMethod == "" {
		return "GET"
	}
	return strings.ToUpper(e.HTTPMethod)
}
