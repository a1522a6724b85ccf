// Package card holds the card object and the parameters for sending raw
// card details as a payment source.
package card

import (
	"net/url"

	"github.com/spotlease/stripe-go/params"
)

// Check is the result of an address or CVC verification.
type Check string

const (
	CheckPass        Check = "pass"
	CheckFail        Check = "fail"
	CheckUnavailable Check = "unavailable"
	CheckUnchecked   Check = "unchecked"
)

// Brand is the card network.
type Brand string

const (
	BrandAmericanExpress Brand = "American Express"
	BrandDinersClub      Brand = "Diners Club"
	BrandDiscover        Brand = "Discover"
	BrandJCB             Brand = "JCB"
	BrandMasterCard      Brand = "MasterCard"
	BrandUnionPay        Brand = "UnionPay"
	BrandVisa            Brand = "Visa"
	BrandUnknown         Brand = "Unknown"
)

// Funding is the kind of account behind the card.
type Funding string

const (
	FundingCredit  Funding = "credit"
	FundingDebit   Funding = "debit"
	FundingPrepaid Funding = "prepaid"
	FundingUnknown Funding = "unknown"
)

// TokenizationMethod names the wallet that tokenized the card.
type TokenizationMethod string

const (
	TokenizationApplePay   TokenizationMethod = "apple_pay"
	TokenizationAndroidPay TokenizationMethod = "android_pay"
)

// Card is a payment card attached to a customer or account.
type Card struct {
	ID                 string              `json:"id"`
	Object             string              `json:"object"`
	Account            *string             `json:"account"`
	AddressCity        *string             `json:"address_city"`
	AddressCountry     *string             `json:"address_country"`
	AddressLine1       *string             `json:"address_line1"`
	AddressLine1Check  *Check              `json:"address_line1_check"`
	AddressLine2       *string             `json:"address_line2"`
	AddressState       *string             `json:"address_state"`
	AddressZip         *string             `json:"address_zip"`
	AddressZipCheck    *Check              `json:"address_zip_check"`
	Brand              Brand               `json:"brand"`
	Country            string              `json:"country"`
	Currency           *params.Currency    `json:"currency"`
	Customer           *string             `json:"customer"`
	CVCCheck           *Check              `json:"cvc_check"`
	DefaultForCurrency *bool               `json:"default_for_currency"`
	DynamicLast4       *string             `json:"dynamic_last4"`
	ExpMonth           uint32              `json:"exp_month"`
	ExpYear            uint32              `json:"exp_year"`
	Fingerprint        string              `json:"fingerprint"`
	Funding            Funding             `json:"funding"`
	Last4              string              `json:"last4"`
	Metadata           params.Metadata     `json:"metadata"`
	Name               *string             `json:"name"`
	Recipient          *string             `json:"recipient"`
	TokenizationMethod *TokenizationMethod `json:"tokenization_method"`
}

// Params are raw card details sent as a source. They are always encoded
// under a parent key together with object=card, for example
// source[object]=card&source[number]=4242424242424242.
type Params struct {
	Number   string  `url:"number"`
	ExpMonth string  `url:"exp_month"`
	ExpYear  string  `url:"exp_year"`
	Name     *string `url:"name,omitempty"`
	CVC      *string `url:"cvc,omitempty"`
}

// EncodeValues implements query.Encoder.
func (p Params) EncodeValues(key string, v *url.Values) error {
	type fields Params
	v.Set(key+"[object]", "card")
	return params.EncodeNested(key, fields(p), v)
}
