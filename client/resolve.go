package client

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/spotlease/stripe-go/form"
)

// Header names emitted by Resolve.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccount       = "Stripe-Account"
)

const formContentType = "application/x-www-form-urlencoded"

// Header is a single request header.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered header list.
type Headers []Header

// Get returns the value of the named header, or "" if absent. Names are
// compared case-insensitively.
func (h Headers) Get(name string) string {
	for _, header := range h {
		if strings.EqualFold(header.Name, name) {
			return header.Value
		}
	}
	return ""
}

// Has reports whether the named header is present.
func (h Headers) Has(name string) bool {
	for _, header := range h {
		if strings.EqualFold(header.Name, name) {
			return true
		}
	}
	return false
}

// ResolvedRequest is a request ready for the transport. Body is nil for
// GET and DELETE, and non-nil (possibly empty) for POST.
type ResolvedRequest struct {
	Method  string
	URL     string
	Headers Headers
	Body    []byte
}

// Resolve combines cfg and req into the exact URL, headers and body that
// will be sent. Identical inputs always produce identical output.
func Resolve[T any](cfg *Config, req *Request[T]) (*ResolvedRequest, error) {
	resolved := &ResolvedRequest{
		Method: req.method,
		URL:    cfg.baseURL.String() + req.path,
	}

	switch req.method {
	case http.MethodPost:
		encoded, err := form.Encode(req.body)
		if err != nil {
			return nil, &EncodeError{Err: err}
		}
		resolved.Body = append([]byte{}, encoded...)
	default:
		encoded, err := form.Encode(req.query)
		if err != nil {
			return nil, &EncodeError{Err: err}
		}
		if encoded != "" {
			resolved.URL += "?" + encoded
		}
	}

	resolved.Headers = assembleHeaders(cfg, req.method, req.account)
	return resolved, nil
}

// assembleHeaders builds the authorization, content type and account
// headers. A per-request account beats the configuration default.
func assembleHeaders(cfg *Config, method, override string) Headers {
	headers := Headers{
		{Name: HeaderAuthorization, Value: basicAuth(cfg.secretKey)},
	}
	if method == http.MethodPost {
		headers = append(headers, Header{Name: HeaderContentType, Value: formContentType})
	}

	account := cfg.account
	if override != "" {
		account = override
	}
	if account != "" {
		headers = append(headers, Header{Name: HeaderAccount, Value: account})
	}
	return headers
}

func basicAuth(secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(secretKey+":"))
}
