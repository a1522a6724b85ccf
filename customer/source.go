package customer

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/spotlease/stripe-go/card"
	"github.com/spotlease/stripe-go/params"
	"github.com/spotlease/stripe-go/plan"
)

// ErrAmbiguousSource is returned when SourceParams sets more than one of
// ID, Token and Card.
var ErrAmbiguousSource = errors.New("source must set exactly one of ID, Token or Card")

// SourceParams identify a payment source. Exactly one field is set: an
// existing source ID, a token from Stripe.js, or raw card details. IDs and
// tokens are sent as a plain value, cards as a nested object.
type SourceParams struct {
	ID    string
	Token string
	Card  *card.Params
}

// SourceID refers to an existing source.
func SourceID(id string) *SourceParams {
	return &SourceParams{ID: id}
}

// SourceToken refers to a card or bank account token.
func SourceToken(token string) *SourceParams {
	return &SourceParams{Token: token}
}

// SourceCard sends raw card details.
func SourceCard(c *card.Params) *SourceParams {
	return &SourceParams{Card: c}
}

// EncodeValues implements query.Encoder.
func (s SourceParams) EncodeValues(key string, v *url.Values) error {
	set := 0
	for _, ok := range []bool{s.ID != "", s.Token != "", s.Card != nil} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return ErrAmbiguousSource
	}

	switch {
	case s.Card != nil:
		return s.Card.EncodeValues(key, v)
	case s.Token != "":
		v.Set(key, s.Token)
	case s.ID != "":
		v.Set(key, s.ID)
	}
	return nil
}

// Source is a payment source attached to a customer. Card is populated
// when Object is "card"; other source kinds only carry their ID and Object.
type Source struct {
	ID     string
	Object string
	Card   *card.Card
}

// UnmarshalJSON decodes the source according to its object type.
func (s *Source) UnmarshalJSON(data []byte) error {
	var head struct {
		ID     string `json:"id"`
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	s.ID = head.ID
	s.Object = head.Object
	s.Card = nil

	if head.Object == "card" {
		var c card.Card
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		s.Card = &c
	}
	return nil
}

// Coupon is a discount that can be applied to customers and invoices.
type Coupon struct {
	ID               string            `json:"id"`
	Object           string            `json:"object"`
	AmountOff        *int64            `json:"amount_off"`
	Created          params.Timestamp  `json:"created"`
	Currency         *params.Currency  `json:"currency"`
	Duration         string            `json:"duration"`
	DurationInMonths *int64            `json:"duration_in_months"`
	Livemode         bool              `json:"livemode"`
	MaxRedemptions   *int64            `json:"max_redemptions"`
	Metadata         params.Metadata   `json:"metadata"`
	PercentOff       *params.Decimal   `json:"percent_off"`
	RedeemBy         *params.Timestamp `json:"redeem_by"`
	TimesRedeemed    int64             `json:"times_redeemed"`
	Valid            bool              `json:"valid"`
}

// Discount is a coupon applied to a customer or subscription.
type Discount struct {
	Object       string            `json:"object"`
	Coupon       Coupon            `json:"coupon"`
	Customer     *string           `json:"customer"`
	End          *params.Timestamp `json:"end"`
	Start        params.Timestamp  `json:"start"`
	Subscription *string           `json:"subscription"`
}

// Subscription is a customer's recurring charge for a plan.
type Subscription struct {
	ID                 string            `json:"id"`
	Object             string            `json:"object"`
	CancelAtPeriodEnd  bool              `json:"cancel_at_period_end"`
	CanceledAt         *params.Timestamp `json:"canceled_at"`
	Created            params.Timestamp  `json:"created"`
	CurrentPeriodEnd   params.Timestamp  `json:"current_period_end"`
	CurrentPeriodStart params.Timestamp  `json:"current_period_start"`
	Customer           string            `json:"customer"`
	Discount           *Discount         `json:"discount"`
	EndedAt            *params.Timestamp `json:"ended_at"`
	Livemode           bool              `json:"livemode"`
	Metadata           params.Metadata   `json:"metadata"`
	Plan               *plan.Plan        `json:"plan"`
	Quantity           *int64            `json:"quantity"`
	Start              params.Timestamp  `json:"start"`
	Status             string            `json:"status"`
	TaxPercent         *params.Decimal   `json:"tax_percent"`
	TrialEnd           *params.Timestamp `json:"trial_end"`
	TrialStart         *params.Timestamp `json:"trial_start"`
}
