package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCustomer struct {
	ID             string  `json:"id"`
	AccountBalance int64   `json:"account_balance"`
	Email          *string `json:"email"`
}

func TestDispatch_Success(t *testing.T) {
	for _, status := range []int{200, 201, 299} {
		out, err := dispatch[testCustomer](status, []byte(`{"id":"cus_1","account_balance":0,"email":null}`))
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, "cus_1", out.ID)
		assert.Nil(t, out.Email)
	}
}

func TestDispatch_APIError(t *testing.T) {
	body := `{"error":{"message":"Your card was declined.","type":"card_error","code":"card_declined"}}`

	out, err := dispatch[testCustomer](402, []byte(body))
	assert.Nil(t, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAPI))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 402, apiErr.HTTPStatus)
	require.NotNil(t, apiErr.Code)
	assert.Equal(t, "card_declined", *apiErr.Code)
	require.NotNil(t, apiErr.Message)
	assert.Equal(t, "Your card was declined.", *apiErr.Message)
	assert.Equal(t, "card_error", apiErr.ErrorType())
	assert.Nil(t, apiErr.Param)
	assert.True(t, apiErr.IsCardError())
	assert.False(t, apiErr.IsInvalidRequest())
}

func TestDispatch_AbsentFieldsStayAbsent(t *testing.T) {
	_, err := dispatch[testCustomer](400, []byte(`{"error":{}}`))

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Nil(t, apiErr.Type)
	assert.Nil(t, apiErr.Code)
	assert.Nil(t, apiErr.Message)
	assert.Nil(t, apiErr.Param)
	assert.Equal(t, "stripe: status 400", apiErr.Error())
}

func TestDispatch_DecodeFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unparseable error body", status: 500, body: "<html>Internal Server Error</html>"},
		{name: "envelope without error member", status: 404, body: `{"message":"not found"}`},
		{name: "null error body", status: 503, body: "null"},
		{name: "empty error body", status: 502, body: ""},
		{name: "unparseable success body", status: 200, body: "not json"},
		{name: "success body with wrong shape", status: 200, body: `{"id":42}`},
		{name: "null success body", status: 200, body: "null"},
		{name: "null success body with whitespace", status: 201, body: " null\n"},
		{name: "scalar success body", status: 200, body: `"cus_1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				out *testCustomer
				err error
			)
			assert.NotPanics(t, func() {
				out, err = dispatch[testCustomer](tt.status, []byte(tt.body))
			})
			assert.Nil(t, out)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode))
			assert.False(t, errors.Is(err, ErrAPI))

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.status, decodeErr.HTTPStatus)
		})
	}
}

func TestAPIError_Classification(t *testing.T) {
	tests := []struct {
		name  string
		err   *APIError
		check func(*APIError) bool
	}{
		{"not found", &APIError{HTTPStatus: 404}, (*APIError).IsNotFound},
		{"unauthorized status", &APIError{HTTPStatus: 401}, (*APIError).IsAuthentication},
		{"authentication type", &APIError{HTTPStatus: 403, Type: str(ErrorTypeAuthentication)}, (*APIError).IsAuthentication},
		{"rate limited", &APIError{HTTPStatus: 429}, (*APIError).IsRateLimited},
		{"invalid request", &APIError{HTTPStatus: 400, Type: str(ErrorTypeInvalidRequest)}, (*APIError).IsInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}
}

func TestErrorSentinels(t *testing.T) {
	cause := errors.New("boom")

	assert.ErrorIs(t, &TransportError{Method: "GET", URL: "u", Err: cause}, ErrTransport)
	assert.ErrorIs(t, &TransportError{Method: "GET", URL: "u", Err: cause}, cause)
	assert.ErrorIs(t, &DecodeError{HTTPStatus: 200, Err: cause}, cause)
	assert.ErrorIs(t, &EncodeError{Err: cause}, ErrEncode)
	assert.NotErrorIs(t, &EncodeError{Err: cause}, ErrTransport)

	_, ok := AsAPIError(&TransportError{Err: cause})
	assert.False(t, ok)
}
