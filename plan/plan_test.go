package plan

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

func TestBuilders(t *testing.T) {
	cfg := testConfig(t)
	month := IntervalMonth
	usd := params.CurrencyUSD

	tests := []struct {
		name     string
		resolve  func() (*client.ResolvedRequest, error)
		method   string
		url      string
		wantBody url.Values
	}{
		{
			name: "create",
			resolve: func() (*client.ResolvedRequest, error) {
				return client.Resolve(cfg, Create(&Params{
					ID:       params.String("gold"),
					Amount:   params.Int64(2000),
					Currency: &usd,
					Interval: &month,
					Name:     params.String("Gold"),
				}))
			},
			method: http.MethodPost,
			url:    "https://api.stripe.com/v1/plans",
			wantBody: url.Values{
				"id":       {"gold"},
				"amount":   {"2000"},
				"currency": {"usd"},
				"interval": {"month"},
				"name":     {"Gold"},
			},
		},
		{
			name: "retrieve",
			resolve: func() (*client.ResolvedRequest, error) {
				return client.Resolve(cfg, Retrieve("gold"))
			},
			method: http.MethodGet,
			url:    "https://api.stripe.com/v1/plans/gold",
		},
		{
			name: "update",
			resolve: func() (*client.ResolvedRequest, error) {
				return client.Resolve(cfg, Update("gold", &Params{TrialPeriodDays: params.Int64(14)}))
			},
			method:   http.MethodPost,
			url:      "https://api.stripe.com/v1/plans/gold",
			wantBody: url.Values{"trial_period_days": {"14"}},
		},
		{
			name: "delete",
			resolve: func() (*client.ResolvedRequest, error) {
				return client.Resolve(cfg, Delete("gold"))
			},
			method: http.MethodDelete,
			url:    "https://api.stripe.com/v1/plans/gold",
		},
		{
			name: "list",
			resolve: func() (*client.ResolvedRequest, error) {
				return client.Resolve(cfg, List(&ListParams{
					ListParams: params.ListParams{Limit: params.Int64(5)},
					Active:     params.Bool(true),
				}))
			},
			method: http.MethodGet,
			url:    "https://api.stripe.com/v1/plans?active=true&limit=5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, err := tt.resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.method, resolved.Method)
			assert.Equal(t, tt.url, resolved.URL)

			if tt.method != http.MethodPost {
				assert.Nil(t, resolved.Body)
				return
			}
			body, err := url.ParseQuery(string(resolved.Body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestRetrieve_Decode(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodGet, "https://api.stripe.com/v1/plans/gold",
		httpmock.NewStringResponder(http.StatusOK, `{
			"id": "gold",
			"object": "plan",
			"active": true,
			"amount": 2000,
			"created": 1690000000,
			"currency": "usd",
			"interval": "month",
			"interval_count": 1,
			"livemode": false,
			"metadata": {"tier": "3"},
			"nickname": null,
			"trial_period_days": 14
		}`))

	c := client.New(testConfig(t), client.WithHTTPClient(&http.Client{Transport: transport}))

	p, err := Retrieve("gold").Send(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "gold", p.ID)
	assert.Equal(t, int64(2000), p.Amount)
	assert.Equal(t, params.CurrencyUSD, p.Currency)
	assert.Equal(t, IntervalMonth, p.Interval)
	assert.Equal(t, params.Timestamp(1690000000), p.Created)
	assert.Equal(t, "3", p.Metadata["tier"])
	assert.Nil(t, p.Nickname)
	require.NotNil(t, p.TrialPeriodDays)
	assert.Equal(t, int64(14), *p.TrialPeriodDays)
}

func TestDelete_Decode(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder(http.MethodDelete, "https://api.stripe.com/v1/plans/gold",
		httpmock.NewStringResponder(http.StatusOK, `{"id":"gold","object":"plan","deleted":true}`))

	c := client.New(testConfig(t), client.WithHTTPClient(&http.Client{Transport: transport}))

	deleted, err := Delete("gold").Send(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, params.Deleted{ID: "gold", Deleted: true}, *deleted)
}
