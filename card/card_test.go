package card

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spotlease/stripe-go/params"
)

func TestParams_EncodeValues(t *testing.T) {
	values := url.Values{}
	p := Params{Number: "4242424242424242", ExpMonth: "02", ExpYear: "21"}
	require.NoError(t, p.EncodeValues("source", &values))

	assert.Equal(t, url.Values{
		"source[object]":    {"card"},
		"source[number]":    {"4242424242424242"},
		"source[exp_month]": {"02"},
		"source[exp_year]":  {"21"},
	}, values)
}

func TestParams_OptionalFields(t *testing.T) {
	values := url.Values{}
	p := Params{Number: "4000056655665556", ExpMonth: "12", ExpYear: "2030", CVC: params.String("123"), Name: params.String("J Doe")}
	require.NoError(t, p.EncodeValues("card", &values))

	assert.Equal(t, "123", values.Get("card[cvc]"))
	assert.Equal(t, "J Doe", values.Get("card[name]"))
}

func TestCard_Decode(t *testing.T) {
	body := `{
		"id": "card_1",
		"object": "card",
		"brand": "American Express",
		"country": "US",
		"customer": "cus_1",
		"cvc_check": "pass",
		"address_zip_check": null,
		"exp_month": 2,
		"exp_year": 2031,
		"fingerprint": "Xt5EWLLDS7FJjR1c",
		"funding": "credit",
		"last4": "0005",
		"metadata": {},
		"tokenization_method": "apple_pay"
	}`

	var c Card
	require.NoError(t, json.Unmarshal([]byte(body), &c))

	assert.Equal(t, BrandAmericanExpress, c.Brand)
	assert.Equal(t, FundingCredit, c.Funding)
	require.NotNil(t, c.CVCCheck)
	assert.Equal(t, CheckPass, *c.CVCCheck)
	assert.Nil(t, c.AddressZipCheck)
	assert.Equal(t, uint32(2), c.ExpMonth)
	require.NotNil(t, c.TokenizationMethod)
	assert.Equal(t, TokenizationApplePay, *c.TokenizationMethod)
	assert.Nil(t, c.Name)
}
