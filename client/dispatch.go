package client

import (
	"bytes"
	"encoding/json"
	"errors"
)

// errorEnvelope is the body of every non-2xx response.
type errorEnvelope struct {
	Error *struct {
		Message *string `json:"message"`
		Type    *string `json:"type"`
		Code    *string `json:"code"`
		Param   *string `json:"param"`
	} `json:"error"`
}

var (
	errMissingEnvelope = errors.New(`error response has no "error" member`)
	errNotAnObject     = errors.New("success response is not a JSON object or array")
)

// dispatch turns a status and body into either a decoded T or an error.
// The status alone decides which shape the body is decoded as.
func dispatch[T any](status int, body []byte) (*T, error) {
	if status >= 200 && status <= 299 {
		var raw json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, &DecodeError{HTTPStatus: status, Err: err}
		}
		// null and bare scalars would otherwise decode into a zero T
		if raw = bytes.TrimSpace(raw); len(raw) == 0 || (raw[0] != '{' && raw[0] != '[') {
			return nil, &DecodeError{HTTPStatus: status, Err: errNotAnObject}
		}

		var out T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, &DecodeError{HTTPStatus: status, Err: err}
		}
		return &out, nil
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{HTTPStatus: status, Err: err}
	}
	if envelope.Error == nil {
		return nil, &DecodeError{HTTPStatus: status, Err: errMissingEnvelope}
	}

	return nil, &APIError{
		HTTPStatus: status,
		Type:       envelope.Error.Type,
		Code:       envelope.Error.Code,
		Message:    envelope.Error.Message,
		Param:      envelope.Error.Param,
	}
}
