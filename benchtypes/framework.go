package benchtypes

import (
	"context"
	"net/http"
	"reflect"
)

// ScopeFactory creates child scopes of the container it was resolved from.
// Each container provides its own implementation.
type ScopeFactory interface {
	NewScope() (ServiceScope, error)
}

// ServiceScope is a child scope created by a [ScopeFactory].
type ServiceScope interface {
	Resolve(t reflect.Type) (any, error)
	Close(ctx context.Context) error
}

// Repositories are transient data access services.
type (
	Repository1 interface{ Find(id string) string }
	Repository2 interface{ Find(id string) string }
	Repository3 interface{ Find(id string) string }
)

type repository struct {
	name string
	seq  int64
}

func (r *repository) Find(id string) string { return r.name + ":" + id }

func NewRepository1() Repository1 { return &repository{name: "repository1", seq: track[Repository1]()} }
func NewRepository2() Repository2 { return &repository{name: "repository2", seq: track[Repository2]()} }
func NewRepository3() Repository3 { return &repository{name: "repository3", seq: track[Repository3]()} }

// RequestServices are created once per request scope.
type (
	RequestService1 interface{ Lookup(id string) string }
	RequestService2 interface{ Lookup(id string) string }
	RequestService3 interface{ Lookup(id string) string }
)

type requestService struct {
	find func(id string) string
	seq  int64
}

func (s *requestService) Lookup(id string) string { return s.find(id) }

func NewRequestService1(repo Repository1) RequestService1 {
	return &requestService{find: repo.Find, seq: track[RequestService1]()}
}

func NewRequestService2(repo Repository2) RequestService2 {
	return &requestService{find: repo.Find, seq: track[RequestService2]()}
}

func NewRequestService3(repo Repository3) RequestService3 {
	return &requestService{find: repo.Find, seq: track[RequestService3]()}
}

// Controller handles a request with the services of its request scope.
type Controller struct {
	lookup  func(id string) string
	request *http.Request
	scopes  ScopeFactory
	seq     int64
}

// Handle writes the result of looking up the id from the request path.
func (c *Controller) Handle(w http.ResponseWriter, id string) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(c.lookup(id)))
}

// Path returns the path of the request the controller was created for.
func (c *Controller) Path() string {
	return c.request.URL.Path
}

// Scopes returns the scope factory of the container, if the controller depends on one.
func (c *Controller) Scopes() ScopeFactory {
	return c.scopes
}

type (
	Controller1 interface{ Handler }
	Controller2 interface{ Handler }
	Controller3 interface{ Handler }
)

// Handler is implemented by every controller.
type Handler interface {
	Handle(w http.ResponseWriter, id string)
	Path() string
}

func NewController1(svc RequestService1, r *http.Request) Controller1 {
	return &Controller{lookup: svc.Lookup, request: r, seq: track[Controller1]()}
}

func NewController2(svc RequestService2, r *http.Request) Controller2 {
	return &Controller{lookup: svc.Lookup, request: r, seq: track[Controller2]()}
}

func NewController3(svc RequestService3, scopes ScopeFactory, r *http.Request) Controller3 {
	return &Controller{lookup: svc.Lookup, request: r, scopes: scopes, seq: track[Controller3]()}
}
