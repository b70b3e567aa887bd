package function

import (
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Adapter exposes a HandlerFunc as an http.Handler so the functions can run
// behind a plain HTTP server.
type Adapter struct {
	Handle HandlerFunc
	Log    *zap.Logger
}

func NewAdapter(h HandlerFunc, log *zap.Logger) *Adapter {
	return &Adapter{Handle: h, Log: log}
}

func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ev, err := EventFromRequest(r)
	if err != nil {
		Write(w, Error(http.StatusBadRequest, "Request body too large or unreadable"))
		return
	}

	resp, err := a.Handle(r.Context(), ev)
	if err != nil {
		// routers never return errors, this only guards direct wiring
		a.Log.Error("unhandled function error", zap.Error(err))
		resp = Error(http.StatusInternalServerError, "Internal server error")
	}

	Write(w, resp)
}

// EventFromRequest flattens an *http.Request into an Event. Standard
// Authorization and Cookie headers stand in for X-Authorization and X-Cookie
// when those are absent.
func EventFromRequest(r *http.Request) (Event, error) {
	ev := Event{
		HTTPMethod:            r.Method,
		Headers:               make(map[string]string, len(r.Header)),
		QueryStringParameters: map[string]string{},
	}

	for k, vs := range r.Header {
		if len(vs) > 0 {
			ev.Headers[k] = vs[0]
		}
	}
	if _, ok := ev.Headers["X-Authorization"]; !ok {
		if v := r.Header.Get("Authorization"); v != "" {
			ev.Headers["X-Authorization"] = v
		}
	}
	if _, ok := ev.Headers["X-Cookie"]; !ok {
		if v := r.Header.Get("Cookie"); v != "" {
			ev.Headers["X-Cookie"] = v
		}
	}

	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			ev.QueryStringParameters[k] = vs[0]
		}
	}

	if r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil {
			return Event{}, err
		}
		if len(body) > maxBodyBytes {
			return Event{}, io.ErrShortBuffer
		}
		ev.Body = string(body)
	}

	return ev, nil
}

// Write sends resp on w, mirroring the session cookie header to Set-Cookie.
func Write(w http.ResponseWriter, resp Response) {
	h := w.Header()
	for k, v := range resp.Headers {
		h.Set(k, v)
		if k == SetCookieHeader {
			h.Add("Set-Cookie", v)
		}
	}
	h.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}

var _ http.Handler = (*Adapter)(nil)
