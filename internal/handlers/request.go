package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/vaughan-dsouza/jobboard/internal/function"
	"github.com/vaughan-dsouza/jobboard/internal/repository"
)

const (
	defaultLimit = 20

	msgUnauthorized = "Unauthorized"
	msgInvalidJSON  = "Invalid JSON body"
	msgInvalidPage  = "limit and offset must be non-negative integers"
)

var errBadPage = errors.New(msgInvalidPage)

// decodeBody reads the event body into v. An empty body decodes as {}.
func decodeBody(ev function.Event, v any) error {
	body := strings.TrimSpace(ev.Body)
	if body == "" {
		body = "{}"
	}
	return json.Unmarshal([]byte(body), v)
}

// parsePage reads limit/offset, defaulting to 20/0 and clamping limit to max.
func parsePage(ev function.Event, max int) (repository.Page, error) {
	limit, err := queryInt(ev, "limit", defaultLimit)
	if err != nil {
		return repository.Page{}, err
	}
	offset, err := queryInt(ev, "offset", 0)
	if err != nil {
		return repository.Page{}, err
	}
	if limit > max {
		limit = max
	}
	return repository.Page{Limit: limit, Offset: offset}, nil
}

func queryInt(ev function.Event, key string, def int) (int, error) {
	raw := strings.TrimSpace(ev.Query(key, ""))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errBadPage
	}
	return n, nil
}

func badRequest(msg string) (function.Response, error) {
	return function.Error(http.StatusBadRequest, msg), nil
}

func unauthorized() (function.Response, error) {
	return function.Error(http.StatusUnauthorized, msgUnauthorized), nil
}

func created(id int64, message string) (function.Response, error) {
	return function.Success(http.StatusCreated, map[string]any{"id": id, "message": message}), nil
}
