package charge

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/customer"
	"github.com/spotlease/stripe-go/params"
)

func newTestClient(t *testing.T, opts ...client.ConfigOption) (*client.Client, *httpmock.MockTransport) {
	t.Helper()
	cfg, err := client.NewConfig("sk_test_123", opts...)
	require.NoError(t, err)

	transport := httpmock.NewMockTransport()
	return client.New(cfg, client.WithHTTPClient(&http.Client{Transport: transport})), transport
}

func TestCreate_Body(t *testing.T) {
	cfg, err := client.NewConfig("sk_test_123")
	require.NoError(t, err)
	usd := params.CurrencyUSD

	resolved, err := client.Resolve(cfg, Create(&Params{
		Amount:      params.Int64(2000),
		Currency:    &usd,
		Capture:     params.Bool(false),
		Source:      customer.SourceToken("tok_visa"),
		Destination: &DestinationParams{Account: "acct_1", Amount: params.Int64(1500)},
		Metadata:    params.Metadata{"order_id": "6735"},
	}))
	require.NoError(t, err)

	body, err := url.ParseQuery(string(resolved.Body))
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"amount":               {"2000"},
		"currency":             {"usd"},
		"capture":              {"false"},
		"source":               {"tok_visa"},
		"destination[account]": {"acct_1"},
		"destination[amount]":  {"1500"},
		"metadata[order_id]":   {"6735"},
	}, body)
}

func TestList_UsesQueryString(t *testing.T) {
	cfg, err := client.NewConfig("sk_test_123")
	require.NoError(t, err)

	resolved, err := client.Resolve(cfg, List(&ListParams{
		ListParams: params.ListParams{Limit: params.Int64(3), StartingAfter: params.String("ch_0")},
		Customer:   params.String("cus_1"),
		Source:     &SourceFilter{Object: SourceTypeCard},
		Created:    &params.RangeQuery{GT: ptr(params.Timestamp(100))},
	}))
	require.NoError(t, err)
	assert.Nil(t, resolved.Body)

	u, err := url.Parse(resolved.URL)
	require.NoError(t, err)
	assert.Equal(t, "/v1/charges", u.Path)
	assert.Equal(t, url.Values{
		"limit":          {"3"},
		"starting_after": {"ch_0"},
		"customer":       {"cus_1"},
		"source[object]": {"card"},
		"created[gt]":    {"100"},
	}, u.Query())
}

func ptr[T any](v T) *T { return &v }

func TestCapture(t *testing.T) {
	c, transport := newTestClient(t, client.WithAccount("acct_1"))
	transport.RegisterResponder(http.MethodPost, "https://api.stripe.com/v1/charges/ch_1/capture",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "acct_1", req.Header.Get("Stripe-Account"))
			return httpmock.NewStringResponse(http.StatusOK, `{
				"id": "ch_1",
				"object": "charge",
				"amount": 2000,
				"amount_refunded": 0,
				"captured": true,
				"created": 1690000000,
				"currency": "usd",
				"fraud_details": {},
				"livemode": false,
				"metadata": {},
				"outcome": {"network_status": "approved_by_network", "type": "authorized", "risk_level": "normal"},
				"paid": true,
				"refunded": false,
				"refunds": {"object": "list", "data": [], "has_more": false, "total_count": 0, "url": "/v1/charges/ch_1/refunds"},
				"source": {"id": "card_1", "object": "card", "brand": "Visa", "country": "US", "exp_month": 8, "exp_year": 2030, "fingerprint": "fp", "funding": "credit", "last4": "4242", "metadata": {}},
				"status": "succeeded"
			}`), nil
		})

	ch, err := Capture("ch_1", &CaptureParams{Amount: params.Int64(2000)}).Send(context.Background(), c)
	require.NoError(t, err)

	assert.True(t, ch.Captured)
	assert.Equal(t, StatusSucceeded, ch.Status)
	require.NotNil(t, ch.Outcome)
	assert.Equal(t, "authorized", ch.Outcome.Type)
	require.NotNil(t, ch.Refunds)
	require.NotNil(t, ch.Refunds.TotalCount)
	assert.Zero(t, *ch.Refunds.TotalCount)
	require.NotNil(t, ch.Source)
	require.NotNil(t, ch.Source.Card)
	assert.Equal(t, "4242", ch.Source.Card.Last4)
	assert.Nil(t, ch.FraudDetails.UserReport)
}

func TestRetrieve_ForAccount(t *testing.T) {
	c, transport := newTestClient(t, client.WithAccount("acct_default"))
	transport.RegisterResponder(http.MethodGet, "https://api.stripe.com/v1/charges/ch_1",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "acct_override", req.Header.Get("Stripe-Account"))
			return httpmock.NewStringResponse(http.StatusOK, `{"id":"ch_1","object":"charge","status":"pending"}`), nil
		})

	ch, err := Retrieve("ch_1").ForAccount("acct_override").Send(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, ch.Status)
}

func TestUpdate_FraudDetails(t *testing.T) {
	cfg, err := client.NewConfig("sk_test_123")
	require.NoError(t, err)

	resolved, err := client.Resolve(cfg, Update("ch_1", &Params{
		FraudDetails: &FraudDetailsParams{UserReport: FraudReportFraudulent},
	}))
	require.NoError(t, err)
	assert.Equal(t, "https://api.stripe.com/v1/charges/ch_1", resolved.URL)
	assert.Equal(t, "fraud_details%5Buser_report%5D=fraudulent", string(resolved.Body))
}

func TestCreate_CardDeclined(t *testing.T) {
	c, transport := newTestClient(t)
	transport.RegisterResponder(http.MethodPost, "https://api.stripe.com/v1/charges",
		httpmock.NewStringResponder(http.StatusPaymentRequired,
			`{"error":{"message":"Your card has expired.","type":"card_error","code":"expired_card","param":"exp_month"}}`))

	ch, err := Create(&Params{Amount: params.Int64(100), Source: customer.SourceToken("tok_chargeDeclinedExpiredCard")}).
		Send(context.Background(), c)
	assert.Nil(t, ch)

	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, client.ErrorCodeExpiredCard, apiErr.ErrorCode())
	assert.Equal(t, "exp_month", apiErr.ErrorParam())
}
