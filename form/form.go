// Package form encodes parameter structs into the
// application/x-www-form-urlencoded bodies and query strings the API expects.
//
// Encoding is driven by `url` struct tags (github.com/google/go-querystring).
// Nested structs are scoped with brackets, so a card nested under "source"
// becomes source[number]=4242424242424242. Fields tagged omitempty are left
// out when nil, which is how parameter types tell "do not change" apart from
// an explicit empty value: a non-nil pointer to "" is still sent as "key=".
//
// Output is deterministic: keys are emitted in sorted order, so encoding the
// same value twice yields identical bytes. Keys therefore do not follow struct
// field order, and brackets are percent-escaped (source%5Bnumber%5D); the API
// decodes both forms the same way.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"

	"github.com/google/go-querystring/query"
)

// ErrUnsupportedType is returned for values that are neither structs,
// pointers to structs, nor url.Values.
var ErrUnsupportedType = errors.New("form: parameters must be a struct or url.Values")

// Values converts params into url.Values. A nil params (or nil pointer)
// yields empty values.
func Values(params any) (url.Values, error) {
	switch p := params.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		if p == nil {
			return url.Values{}, nil
		}
		return p, nil
	case map[string]string:
		values := make(url.Values, len(p))
		for k, v := range p {
			values.Set(k, v)
		}
		return values, nil
	}

	if !isStruct(reflect.ValueOf(params)) {
		return nil, fmt.Errorf("%w, got %T", ErrUnsupportedType, params)
	}

	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	return values, nil
}

// Encode converts params into an encoded form string.
func Encode(params any) (string, error) {
	values, err := Values(params)
	if err != nil {
		return "", err
	}
	return values.Encode(), nil
}

func isStruct(v reflect.Value) bool {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return v.Type().Elem().Kind() == reflect.Struct
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Struct
}
