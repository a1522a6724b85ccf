package invoice

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/params"
)

func testConfig(t *testing.T) *client.Config {
	t.Helper()
	cfg, err := client.NewConfig("sk_test_123")
	require.NoError(t, err)
	return cfg
}

func TestUpcoming_Query(t *testing.T) {
	tax, err := params.NewDecimal("8.25")
	require.NoError(t, err)
	prorationDate := params.Timestamp(1690000000)

	resolved, err := client.Resolve(testConfig(t), Upcoming(&UpcomingParams{
		Customer: "cus_1",
		SubscriptionItems: SubscriptionItems{
			{ID: params.String("si_1"), Deleted: params.Bool(true)},
			{Plan: params.String("gold"), Quantity: params.Int64(2), Metadata: params.Metadata{"seat": "a"}},
		},
		SubscriptionProrationDate: &prorationDate,
		SubscriptionTaxPercent:    tax,
	}))
	require.NoError(t, err)
	assert.Nil(t, resolved.Body)

	u, err := url.Parse(resolved.URL)
	require.NoError(t, err)
	assert.Equal(t, "/v1/invoices/upcoming", u.Path)

	assert.Equal(t, url.Values{
		"customer":                          {"cus_1"},
		"subscription_items[0][id]":         {"si_1"},
		"subscription_items[0][deleted]":    {"true"},
		"subscription_items[1][plan]":       {"gold"},
		"subscription_items[1][quantity]":   {"2"},
		"subscription_items[1][metadata][seat]": {"a"},
		"subscription_proration_date":       {"1690000000"},
		"subscription_tax_percent":          {"8.25"},
	}, u.Query())
}

func TestBuilders(t *testing.T) {
	cfg := testConfig(t)

	tests := []struct {
		name   string
		req    func() (*client.ResolvedRequest, error)
		method string
		url    string
		body   string
	}{
		{
			name:   "create",
			req:    func() (*client.ResolvedRequest, error) { return client.Resolve(cfg, Create(&Params{Customer: params.String("cus_1")})) },
			method: http.MethodPost,
			url:    "https://api.stripe.com/v1/invoices",
			body:   "customer=cus_1",
		},
		{
			name:   "retrieve",
			req:    func() (*client.ResolvedRequest, error) { return client.Resolve(cfg, Retrieve("in_1")) },
			method: http.MethodGet,
			url:    "https://api.stripe.com/v1/invoices/in_1",
		},
		{
			name:   "pay has an empty body",
			req:    func() (*client.ResolvedRequest, error) { return client.Resolve(cfg, Pay("in_1")) },
			method: http.MethodPost,
			url:    "https://api.stripe.com/v1/invoices/in_1/pay",
			body:   "",
		},
		{
			name:   "update",
			req:    func() (*client.ResolvedRequest, error) { return client.Resolve(cfg, Update("in_1", &Params{Closed: params.Bool(true)})) },
			method: http.MethodPost,
			url:    "https://api.stripe.com/v1/invoices/in_1",
			body:   "closed=true",
		},
		{
			name: "list",
			req: func() (*client.ResolvedRequest, error) {
				return client.Resolve(cfg, List(&ListParams{Customer: params.String("cus_1"), Date: params.Exactly(1690000000)}))
			},
			method: http.MethodGet,
			url:    "https://api.stripe.com/v1/invoices?customer=cus_1&date=1690000000",
		},
		{
			name: "list lines",
			req: func() (*client.ResolvedRequest, error) {
				return client.Resolve(cfg, ListLines("in_1", &params.ListParams{Limit: params.Int64(10)}))
			},
			method: http.MethodGet,
			url:    "https://api.stripe.com/v1/invoices/in_1/lines?limit=10",
		},
		{
			name: "create line item",
			req: func() (*client.ResolvedRequest, error) {
				usd := params.CurrencyUSD
				return client.Resolve(cfg, CreateLineItem(&LineItemParams{
					Amount:   params.Int64(1500),
					Currency: &usd,
					Customer: params.String("cus_1"),
				}))
			},
			method: http.MethodPost,
			url:    "https://api.stripe.com/v1/invoiceitems",
			body:   "amount=1500&currency=usd&customer=cus_1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := tt.req()
			require.NoError(t, err)
			assert.Equal(t, tt.method, resolved.Method)
			assert.Equal(t, tt.url, resolved.URL)
			if tt.method == http.MethodPost {
				require.NotNil(t, resolved.Body)
				assert.Equal(t, tt.body, string(resolved.Body))
			} else {
				assert.Nil(t, resolved.Body)
			}
		})
	}
}

func TestUpcoming_Decode(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://api.stripe.com/v1/invoices/upcoming?customer=cus_1",
		httpmock.NewStringResponder(http.StatusOK, `{
			"object": "invoice",
			"amount_due": 2000,
			"attempt_count": 0,
			"attempted": false,
			"closed": false,
			"currency": "usd",
			"customer": "cus_1",
			"date": 1690000000,
			"forgiven": false,
			"lines": {
				"object": "list",
				"url": "/v1/invoices/upcoming/lines?customer=cus_1",
				"has_more": false,
				"data": [{
					"id": "sub_1",
					"object": "line_item",
					"amount": 2000,
					"currency": "usd",
					"discountable": true,
					"livemode": false,
					"metadata": {},
					"period": {"start": 1690000000, "end": 1692678400},
					"plan": {"id": "gold", "object": "plan", "amount": 2000, "currency": "usd", "interval": "month", "interval_count": 1, "created": 1680000000, "livemode": false, "metadata": {}},
					"proration": false,
					"quantity": 1,
					"subscription": null,
					"type": "subscription"
				}]
			},
			"livemode": false,
			"metadata": {},
			"paid": false,
			"period_end": 1690000000,
			"period_start": 1687321600,
			"starting_balance": 0,
			"subtotal": 2000,
			"tax": null,
			"tax_percent": 8.25,
			"total": 2000
		}`))

	c := client.New(testConfig(t), client.WithHTTPClient(&http.Client{Transport: transport}))

	inv, err := Upcoming(&UpcomingParams{Customer: "cus_1"}).Send(context.Background(), c)
	require.NoError(t, err)

	assert.Nil(t, inv.ID)
	assert.Equal(t, int64(2000), inv.AmountDue)
	assert.Nil(t, inv.Tax)
	require.NotNil(t, inv.TaxPercent)
	assert.Equal(t, "8.25", inv.TaxPercent.String())
	require.Len(t, inv.Lines.Data, 1)

	line := inv.Lines.Data[0]
	assert.Equal(t, "subscription", line.Type)
	assert.Equal(t, params.Timestamp(1692678400), line.Period.End)
	require.NotNil(t, line.Plan)
	assert.Equal(t, "gold", line.Plan.ID)
}

func TestPay_CardDeclined(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodPost, "https://api.stripe.com/v1/invoices/in_1/pay",
		httpmock.NewStringResponder(http.StatusPaymentRequired,
			`{"error":{"message":"Your card was declined.","type":"card_error","code":"card_declined"}}`))

	c := client.New(testConfig(t), client.WithHTTPClient(&http.Client{Transport: transport}))

	_, err := Pay("in_1").Send(context.Background(), c)
	apiErr, ok := client.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.HTTPStatus)
	assert.Equal(t, client.ErrorCodeCardDeclined, apiErr.ErrorCode())
	assert.True(t, apiErr.IsCardError())
}
