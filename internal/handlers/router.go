package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vaughan-dsouza/jobboard/internal/function"
	"go.uber.org/zap"
)

type Resource string

const (
	ResourceVacancies Resource = "vacancies"
	ResourceResumes   Resource = "resumes"
	ResourceCompanies Resource = "companies"
)

type Action string

const (
	ActionList     Action = "list"
	ActionCreate   Action = "create"
	ActionMy       Action = "my"
	ActionRegister Action = "register"
	ActionLogin    Action = "login"
	ActionMe       Action = "me"
	ActionLogout   Action = "logout"
)

const (
	msgInvalidResource = "Invalid resource. Use ?resource=vacancies|resumes|companies"
	msgInvalidRoute    = "Invalid action or method"
	msgInvalidAuth     = "Invalid action. Use ?action=register|login|me|logout"
	msgInternal        = "Internal server error"

	apiMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	authMethods = "GET, POST, OPTIONS"
)

type route struct {
	action Action
	method string
}

type routes map[route]function.HandlerFunc

// dispatcher turns handler errors and panics into 500 responses.
type dispatcher struct {
	log          *zap.Logger
	exposeErrors bool
}

func (d dispatcher) run(ctx context.Context, ev function.Event, h function.HandlerFunc) (resp function.Response) {
	defer func() {
		if rec := recover(); rec != nil {
			d.log.Error("handler panic", zap.Any("panic", rec), zap.Stack("stack"))
			resp = d.internal(fmt.Errorf("%v", rec))
		}
	}()

	resp, err := h(ctx, ev)
	if err != nil {
		return d.internal(err)
	}
	return resp
}

func (d dispatcher) internal(err error) function.Response {
	d.log.Error("request failed", zap.Error(err))
	msg := err.Error()
	if !d.exposeErrors {
		msg = msgInternal
	}
	return function.Error(http.StatusInternalServerError, msg)
}

// APIRouter serves the resource endpoint: ?resource=...&action=...
type APIRouter struct {
	dispatcher
	resources map[Resource]routes
}

func (rt *APIRouter) Handle(ctx context.Context, ev function.Event) (function.Response, error) {
	method := ev.Method()
	if method == http.MethodOptions {
		return function.Preflight(apiMethods), nil
	}

	table, ok := rt.resources[Resource(ev.Query("resource", ""))]
	if !ok {
		return function.Error(http.StatusBadRequest, msgInvalidResource), nil
	}

	h, ok := table[route{Action(ev.Query("action", string(ActionList))), method}]
	if !ok {
		return function.Error(http.StatusBadRequest, msgInvalidRoute), nil
	}

	return rt.run(ctx, ev, h), nil
}

// AuthRouter serves the account endpoint: ?action=register|login|me|logout
type AuthRouter struct {
	dispatcher
	routes routes
}

func (rt *AuthRouter) Handle(ctx context.Context, ev function.Event) (function.Response, error) {
	method := ev.Method()
	if method == http.MethodOptions {
		return function.Preflight(authMethods), nil
	}

	h, ok := rt.routes[route{Action(ev.Query("action", "")), method}]
	if !ok {
		return function.Error(http.StatusBadRequest, msgInvalidAuth), nil
	}

	return rt.run(ctx, ev, h), nil
}
