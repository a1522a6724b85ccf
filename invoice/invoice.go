// Package invoice builds requests for the /invoices and /invoiceitems
// endpoints.
package invoice

import (
	"fmt"
	"net/url"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/customer"
	"github.com/spotlease/stripe-go/params"
	"github.com/spotlease/stripe-go/plan"
)

// Params are used to create or update an invoice. Closed and Forgiven can
// only be set on update.
type Params struct {
	ApplicationFee      *int64          `url:"application_fee,omitempty"`
	Customer            *string         `url:"customer,omitempty"`
	Description         *string         `url:"description,omitempty"`
	Metadata            params.Metadata `url:"metadata,omitempty"`
	StatementDescriptor *string         `url:"statement_descriptor,omitempty"`
	Subscription        *string         `url:"subscription,omitempty"`
	TaxPercent          *params.Decimal `url:"tax_percent,omitempty"`
	Closed              *bool           `url:"closed,omitempty"`
	Forgiven            *bool           `url:"forgiven,omitempty"`
}

// LineItemParams create a pending invoice item, added to the customer's
// next invoice unless Invoice is set.
type LineItemParams struct {
	Amount       *int64           `url:"amount,omitempty"`
	Currency     *params.Currency `url:"currency,omitempty"`
	Customer     *string          `url:"customer,omitempty"`
	Description  *string          `url:"description,omitempty"`
	Discountable *bool            `url:"discountable,omitempty"`
	Invoice      *string          `url:"invoice,omitempty"`
	Metadata     params.Metadata  `url:"metadata,omitempty"`
	Subscription *string          `url:"subscription,omitempty"`
}

// SubscriptionItemParams describe one item of a hypothetical subscription
// change previewed by Upcoming.
type SubscriptionItemParams struct {
	ID       *string         `url:"id,omitempty"`
	Deleted  *bool           `url:"deleted,omitempty"`
	Metadata params.Metadata `url:"metadata,omitempty"`
	Plan     *string         `url:"plan,omitempty"`
	Quantity *int64          `url:"quantity,omitempty"`
}

// SubscriptionItems are sent indexed, as subscription_items[0][plan]=gold.
type SubscriptionItems []SubscriptionItemParams

// EncodeValues implements query.Encoder.
func (items SubscriptionItems) EncodeValues(key string, v *url.Values) error {
	for i, item := range items {
		if err := params.EncodeNested(fmt.Sprintf("%s[%d]", key, i), item, v); err != nil {
			return err
		}
	}
	return nil
}

// UpcomingParams select the customer whose upcoming invoice is previewed,
// optionally with a subscription change applied.
type UpcomingParams struct {
	Customer                  string            `url:"customer"`
	Coupon                    *string           `url:"coupon,omitempty"`
	Subscription              *string           `url:"subscription,omitempty"`
	SubscriptionItems         SubscriptionItems `url:"subscription_items,omitempty"`
	SubscriptionProrate       *bool             `url:"subscription_prorate,omitempty"`
	SubscriptionProrationDate *params.Timestamp `url:"subscription_proration_date,omitempty"`
	SubscriptionTaxPercent    *params.Decimal   `url:"subscription_tax_percent,omitempty"`
	SubscriptionTrialEnd      *params.Timestamp `url:"subscription_trial_end,omitempty"`
}

// ListParams filter the invoice list.
type ListParams struct {
	params.ListParams
	Customer     *string            `url:"customer,omitempty"`
	Date         *params.RangeQuery `url:"date,omitempty"`
	Subscription *string            `url:"subscription,omitempty"`
}

// Period is a start and end date.
type Period struct {
	Start params.Timestamp `json:"start"`
	End   params.Timestamp `json:"end"`
}

// LineItem is one line of an invoice.
type LineItem struct {
	ID               string          `json:"id"`
	Object           string          `json:"object"`
	Amount           int64           `json:"amount"`
	Currency         params.Currency `json:"currency"`
	Description      *string         `json:"description"`
	Discountable     bool            `json:"discountable"`
	Livemode         bool            `json:"livemode"`
	Metadata         params.Metadata `json:"metadata"`
	Period           Period          `json:"period"`
	Plan             *plan.Plan      `json:"plan"`
	Proration        bool            `json:"proration"`
	Quantity         *int64          `json:"quantity"`
	Subscription     *string         `json:"subscription"`
	SubscriptionItem *string         `json:"subscription_item"`

	// Type is "invoiceitem" or "subscription". Empty in the response to
	// CreateLineItem.
	Type string `json:"type"`
}

// Invoice is a statement of amounts owed by a customer.
type Invoice struct {
	// ID is nil for upcoming invoices.
	ID                        *string               `json:"id"`
	Object                    string                `json:"object"`
	AmountDue                 int64                 `json:"amount_due"`
	ApplicationFee            *int64                `json:"application_fee"`
	AttemptCount              int64                 `json:"attempt_count"`
	Attempted                 bool                  `json:"attempted"`
	Charge                    *string               `json:"charge"`
	Closed                    bool                  `json:"closed"`
	Currency                  params.Currency       `json:"currency"`
	Customer                  string                `json:"customer"`
	Date                      params.Timestamp      `json:"date"`
	Description               *string               `json:"description"`
	Discount                  *customer.Discount    `json:"discount"`
	EndingBalance             *int64                `json:"ending_balance"`
	Forgiven                  bool                  `json:"forgiven"`
	Lines                     params.List[LineItem] `json:"lines"`
	Livemode                  bool                  `json:"livemode"`
	Metadata                  params.Metadata       `json:"metadata"`
	NextPaymentAttempt        *params.Timestamp     `json:"next_payment_attempt"`
	Paid                      bool                  `json:"paid"`
	PeriodEnd                 params.Timestamp      `json:"period_end"`
	PeriodStart               params.Timestamp      `json:"period_start"`
	ReceiptNumber             *string               `json:"receipt_number"`
	StartingBalance           int64                 `json:"starting_balance"`
	StatementDescriptor       *string               `json:"statement_descriptor"`
	Subscription              *string               `json:"subscription"`
	SubscriptionProrationDate *params.Timestamp     `json:"subscription_proration_date"`
	Subtotal                  int64                 `json:"subtotal"`
	Tax                       *int64                `json:"tax"`
	TaxPercent                *params.Decimal       `json:"tax_percent"`
	Total                     int64                 `json:"total"`
	WebhooksDeliveredAt       *params.Timestamp     `json:"webhooks_delivered_at"`
}

// Create creates an invoice from the customer's pending invoice items.
func Create(p *Params) *client.Request[Invoice] {
	return client.NewPost[Invoice]("/invoices", p)
}

// Retrieve fetches an invoice by id.
func Retrieve(id string) *client.Request[Invoice] {
	return client.NewGet[Invoice](fmt.Sprintf("/invoices/%s", id), nil)
}

// Upcoming previews the next invoice for a customer.
func Upcoming(p *UpcomingParams) *client.Request[Invoice] {
	return client.NewGet[Invoice]("/invoices/upcoming", p)
}

// Pay attempts payment of an open invoice outside the normal collection
// schedule.
func Pay(id string) *client.Request[Invoice] {
	return client.NewPost[Invoice](fmt.Sprintf("/invoices/%s/pay", id), nil)
}

// Update changes an invoice. Closing it stops further payment attempts.
func Update(id string, p *Params) *client.Request[Invoice] {
	return client.NewPost[Invoice](fmt.Sprintf("/invoices/%s", id), p)
}

// List returns a page of invoices.
func List(p *ListParams) *client.Request[params.List[Invoice]] {
	return client.NewGet[params.List[Invoice]]("/invoices", p)
}

// ListLines returns a page of an invoice's line items.
func ListLines(id string, p *params.ListParams) *client.Request[params.List[LineItem]] {
	return client.NewGet[params.List[LineItem]](fmt.Sprintf("/invoices/%s/lines", id), p)
}

// CreateLineItem adds a pending invoice item.
func CreateLineItem(p *LineItemParams) *client.Request[LineItem] {
	return client.NewPost[LineItem]("/invoiceitems", p)
}
