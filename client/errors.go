package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinels for errors.Is. Every error returned by the client matches
// exactly one of them.
var (
	// ErrInvalidConfig indicates the client configuration was rejected at construction.
	ErrInvalidConfig = errors.New("invalid client configuration")
	// ErrTransport indicates the request never produced a response.
	ErrTransport = errors.New("transport failure")
	// ErrDecode indicates a response body matched neither the expected type nor the error envelope.
	ErrDecode = errors.New("undecodable response")
	// ErrEncode indicates the request parameters could not be form encoded.
	ErrEncode = errors.New("unencodable parameters")
	// ErrAPI indicates the API reported a failure.
	ErrAPI = errors.New("api error")
)

// Error types reported in the "type" field of the error envelope.
const (
	ErrorTypeAPIConnection  = "api_connection_error"
	ErrorTypeAPI            = "api_error"
	ErrorTypeAuthentication = "authentication_error"
	ErrorTypeCard           = "card_error"
	ErrorTypeInvalidRequest = "invalid_request_error"
	ErrorTypeRateLimit      = "rate_limit_error"
)

// Codes reported in the "code" field, mostly card declines.
const (
	ErrorCodeCardDeclined       = "card_declined"
	ErrorCodeExpiredCard        = "expired_card"
	ErrorCodeIncorrectCVC       = "incorrect_cvc"
	ErrorCodeIncorrectNumber    = "incorrect_number"
	ErrorCodeIncorrectZip       = "incorrect_zip"
	ErrorCodeInvalidCVC         = "invalid_cvc"
	ErrorCodeInvalidExpiryMonth = "invalid_expiry_month"
	ErrorCodeInvalidExpiryYear  = "invalid_expiry_year"
	ErrorCodeInvalidNumber      = "invalid_number"
	ErrorCodeMissing            = "missing"
	ErrorCodeProcessingError    = "processing_error"
	ErrorCodeResourceMissing    = "resource_missing"
)

// ConfigError is returned by NewConfig when the configuration is unusable.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// TransportError wraps a failure to send a request or read its response:
// connection, DNS, TLS, timeout, or context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError means the response body could not be decoded into the
// expected success type (2xx) or into the error envelope (non-2xx).
type DecodeError struct {
	HTTPStatus int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response (status %d): %v", e.HTTPStatus, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// EncodeError means the request parameters could not be encoded. Nothing
// was sent.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode parameters: %v", e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

// APIError is a failure reported by the API in its error envelope. The
// optional fields are nil when the API left them out.
type APIError struct {
	HTTPStatus int
	Type       *string
	Code       *string
	Message    *string
	Param      *string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "stripe: status %d", e.HTTPStatus)
	if e.Type != nil {
		fmt.Fprintf(&b, " %s", *e.Type)
	}
	if e.Code != nil {
		fmt.Fprintf(&b, " [%s]", *e.Code)
	}
	if e.Message != nil {
		fmt.Fprintf(&b, ": %s", *e.Message)
	}
	if e.Param != nil {
		fmt.Fprintf(&b, " (param: %s)", *e.Param)
	}
	return b.String()
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// ErrorType returns the reported type, or "" when absent.
func (e *APIError) ErrorType() string {
	return deref(e.Type)
}

// ErrorCode returns the reported code, or "" when absent.
func (e *APIError) ErrorCode() string {
	return deref(e.Code)
}

// ErrorMessage returns the reported message, or "" when absent.
func (e *APIError) ErrorMessage() string {
	return deref(e.Message)
}

// ErrorParam returns the reported parameter name, or "" when absent.
func (e *APIError) ErrorParam() string {
	return deref(e.Param)
}

// IsCardError checks if the card was declined or rejected
func (e *APIError) IsCardError() bool {
	return e.ErrorType() == ErrorTypeCard
}

// IsInvalidRequest checks if the request had invalid parameters
func (e *APIError) IsInvalidRequest() bool {
	return e.ErrorType() == ErrorTypeInvalidRequest
}

// IsAuthentication checks if the secret key was rejected
func (e *APIError) IsAuthentication() bool {
	return e.HTTPStatus == http.StatusUnauthorized || e.ErrorType() == ErrorTypeAuthentication
}

// IsRateLimited checks if too many requests hit the API too quickly
func (e *APIError) IsRateLimited() bool {
	return e.HTTPStatus == http.StatusTooManyRequests || e.ErrorType() == ErrorTypeRateLimit
}

// IsNotFound checks if the requested object does not exist
func (e *APIError) IsNotFound() bool {
	return e.HTTPStatus == http.StatusNotFound
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
