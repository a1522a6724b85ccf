package client

import (
	"context"
	"net/http"
	"strings"
)

// Request describes one API call whose successful response decodes into T.
//
// Requests are built by the resource packages (customer, charge, invoice,
// plan) and consumed by Execute. Query parameters are only carried by GET
// and DELETE requests, body parameters only by POST requests; the
// constructors enforce this.
type Request[T any] struct {
	method  string
	path    string
	query   any
	body    any
	account string
}

// NewGet builds a GET request for path with optional query parameters.
func NewGet[T any](path string, query any) *Request[T] {
	return &Request[T]{method: http.MethodGet, path: normalizePath(path), query: query}
}

// NewPost builds a POST request for path with optional body parameters.
func NewPost[T any](path string, body any) *Request[T] {
	return &Request[T]{method: http.MethodPost, path: normalizePath(path), body: body}
}

// NewDelete builds a DELETE request for path with optional query parameters.
func NewDelete[T any](path string, query any) *Request[T] {
	return &Request[T]{method: http.MethodDelete, path: normalizePath(path), query: query}
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// ForAccount returns a copy of the request that is sent on behalf of the
// connected account id, overriding the configuration's default account.
func (r *Request[T]) ForAccount(id string) *Request[T] {
	cp := *r
	cp.account = id
	return &cp
}

// Method returns the HTTP method.
func (r *Request[T]) Method() string {
	return r.method
}

// Path returns the path relative to the base URL.
func (r *Request[T]) Path() string {
	return r.path
}

// Account returns the per-request account override, or "".
func (r *Request[T]) Account() string {
	return r.account
}

// Send executes the request with c.
func (r *Request[T]) Send(ctx context.Context, c *Client) (*T, error) {
	return Execute(ctx, c, r)
}
