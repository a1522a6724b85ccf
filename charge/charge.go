// Package charge builds requests for the /charges endpoints.
package charge

import (
	"fmt"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/customer"
	"github.com/spotlease/stripe-go/params"
)

// Status of a charge.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// FraudReport is a fraud assessment of a charge.
type FraudReport string

const (
	FraudReportSafe       FraudReport = "safe"
	FraudReportFraudulent FraudReport = "fraudulent"
)

// SourceType restricts a charge list to one kind of payment source.
type SourceType string

const (
	SourceTypeAll             SourceType = "all"
	SourceTypeAlipayAccount   SourceType = "alipay_account"
	SourceTypeBankAccount     SourceType = "bank_account"
	SourceTypeBitcoinReceiver SourceType = "bitcoin_receiver"
	SourceTypeCard            SourceType = "card"
)

// SourceFilter is encoded as source[object]=<type>.
type SourceFilter struct {
	Object SourceType `url:"object"`
}

// DestinationParams route funds to a connected account.
type DestinationParams struct {
	Account string `url:"account"`
	Amount  *int64 `url:"amount,omitempty"`
}

// FraudDetailsParams let the caller report a charge as safe or fraudulent.
type FraudDetailsParams struct {
	UserReport FraudReport `url:"user_report"`
}

// Params are used to create or update a charge. Amount, currency,
// capture, destination, source, customer, on_behalf_of and
// application_fee only apply at creation.
type Params struct {
	Amount              *int64                 `url:"amount,omitempty"`
	Currency            *params.Currency       `url:"currency,omitempty"`
	ApplicationFee      *int64                 `url:"application_fee,omitempty"`
	Capture             *bool                  `url:"capture,omitempty"`
	Customer            *string                `url:"customer,omitempty"`
	Description         *string                `url:"description,omitempty"`
	Destination         *DestinationParams     `url:"destination,omitempty"`
	FraudDetails        *FraudDetailsParams    `url:"fraud_details,omitempty"`
	Metadata            params.Metadata        `url:"metadata,omitempty"`
	OnBehalfOf          *string                `url:"on_behalf_of,omitempty"`
	ReceiptEmail        *string                `url:"receipt_email,omitempty"`
	Shipping            *params.Shipping       `url:"shipping,omitempty"`
	Source              *customer.SourceParams `url:"source,omitempty"`
	StatementDescriptor *string                `url:"statement_descriptor,omitempty"`
	TransferGroup       *string                `url:"transfer_group,omitempty"`
}

// CaptureParams capture an uncaptured charge, optionally for less than the
// authorized amount.
type CaptureParams struct {
	Amount              *int64  `url:"amount,omitempty"`
	ApplicationFee      *int64  `url:"application_fee,omitempty"`
	ReceiptEmail        *string `url:"receipt_email,omitempty"`
	StatementDescriptor *string `url:"statement_descriptor,omitempty"`
}

// ListParams filter the charge list.
type ListParams struct {
	params.ListParams
	Created       *params.RangeQuery `url:"created,omitempty"`
	Customer      *string            `url:"customer,omitempty"`
	Source        *SourceFilter      `url:"source,omitempty"`
	TransferGroup *string            `url:"transfer_group,omitempty"`
}

// FraudDetails as reported by the user and by Stripe.
type FraudDetails struct {
	UserReport   *FraudReport `json:"user_report"`
	StripeReport *FraudReport `json:"stripe_report"`
}

// Outcome explains how a charge was processed.
type Outcome struct {
	NetworkStatus *string `json:"network_status"`
	Reason        *string `json:"reason"`
	RiskLevel     *string `json:"risk_level"`
	SellerMessage *string `json:"seller_message"`
	Type          string  `json:"type"`
}

// Refund is a refund of part or all of a charge.
type Refund struct {
	ID                 string           `json:"id"`
	Object             string           `json:"object"`
	Amount             int64            `json:"amount"`
	BalanceTransaction *string          `json:"balance_transaction"`
	Charge             string           `json:"charge"`
	Created            params.Timestamp `json:"created"`
	Currency           params.Currency  `json:"currency"`
	Metadata           params.Metadata  `json:"metadata"`
	Reason             *string          `json:"reason"`
	ReceiptNumber      *string          `json:"receipt_number"`
	Status             *string          `json:"status"`
}

// Charge is a charge against a card or other payment source.
type Charge struct {
	ID                  string               `json:"id"`
	Object              string               `json:"object"`
	Amount              int64                `json:"amount"`
	AmountRefunded      int64                `json:"amount_refunded"`
	Application         *string              `json:"application"`
	ApplicationFee      *string              `json:"application_fee"`
	BalanceTransaction  *string              `json:"balance_transaction"`
	Captured            bool                 `json:"captured"`
	Created             params.Timestamp     `json:"created"`
	Currency            params.Currency      `json:"currency"`
	Customer            *string              `json:"customer"`
	Description         *string              `json:"description"`
	Destination         *string              `json:"destination"`
	Dispute             *string              `json:"dispute"`
	FailureCode         *string              `json:"failure_code"`
	FailureMessage      *string              `json:"failure_message"`
	FraudDetails        FraudDetails         `json:"fraud_details"`
	Invoice             *string              `json:"invoice"`
	Livemode            bool                 `json:"livemode"`
	Metadata            params.Metadata      `json:"metadata"`
	OnBehalfOf          *string              `json:"on_behalf_of"`
	Outcome             *Outcome             `json:"outcome"`
	Paid                bool                 `json:"paid"`
	ReceiptEmail        *string              `json:"receipt_email"`
	ReceiptNumber       *string              `json:"receipt_number"`
	Refunded            bool                 `json:"refunded"`
	Refunds             *params.List[Refund] `json:"refunds"`
	Shipping            *params.Shipping     `json:"shipping"`
	Source              *customer.Source     `json:"source"`
	StatementDescriptor *string              `json:"statement_descriptor"`
	Status              Status               `json:"status"`
	TransferGroup       *string              `json:"transfer_group"`
}

// Create charges a payment source.
func Create(p *Params) *client.Request[Charge] {
	return client.NewPost[Charge]("/charges", p)
}

// Retrieve fetches a charge by id.
func Retrieve(id string) *client.Request[Charge] {
	return client.NewGet[Charge](fmt.Sprintf("/charges/%s", id), nil)
}

// Update changes a charge's description, metadata, receipt email, fraud
// details, shipping or transfer group.
func Update(id string, p *Params) *client.Request[Charge] {
	return client.NewPost[Charge](fmt.Sprintf("/charges/%s", id), p)
}

// Capture captures a charge created with Capture set to false.
func Capture(id string, p *CaptureParams) *client.Request[Charge] {
	return client.NewPost[Charge](fmt.Sprintf("/charges/%s/capture", id), p)
}

// List returns a page of charges. The filters travel in the query string.
func List(p *ListParams) *client.Request[params.List[Charge]] {
	return client.NewGet[params.List[Charge]]("/charges", p)
}

