// Package customer builds requests for the /customers endpoints.
//
// Every function returns a *client.Request that is sent with Send or
// client.Execute:
//
//	cus, err := customer.Create(&customer.Params{
//		Email:  params.String("jdoe@example.org"),
//		Source: customer.SourceCard(&card.Params{Number: "4242424242424242", ExpMonth: "02", ExpYear: "21"}),
//	}).Send(ctx, c)
//
// To remove a customer's default source, send Params.DefaultSource set to
// params.Clear(). Leaving it nil keeps the current value.
package customer

import (
	"fmt"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/params"
)

// Params are used to create or update a customer.
type Params struct {
	AccountBalance *int64           `url:"account_balance,omitempty"`
	BusinessVATID  *string          `url:"business_vat_id,omitempty"`
	Coupon         *string          `url:"coupon,omitempty"`
	DefaultSource  *string          `url:"default_source,omitempty"`
	Description    *string          `url:"description,omitempty"`
	Email          *string          `url:"email,omitempty"`
	Metadata       params.Metadata  `url:"metadata,omitempty"`
	Shipping       *params.Shipping `url:"shipping,omitempty"`
	Source         *SourceParams    `url:"source,omitempty"`
}

// ListParams filter the customer list.
type ListParams struct {
	params.ListParams
	Created *params.RangeQuery `url:"created,omitempty"`
	Email   *string            `url:"email,omitempty"`
}

// Customer is a customer object.
type Customer struct {
	ID             string                     `json:"id"`
	Object         string                     `json:"object"`
	AccountBalance int64                      `json:"account_balance"`
	BusinessVATID  *string                    `json:"business_vat_id"`
	Created        params.Timestamp           `json:"created"`
	Currency       *params.Currency           `json:"currency"`
	DefaultSource  *string                    `json:"default_source"`
	Delinquent     bool                       `json:"delinquent"`
	Description    *string                    `json:"description"`
	Discount       *Discount                  `json:"discount"`
	Email          *string                    `json:"email"`
	Livemode       bool                       `json:"livemode"`
	Metadata       params.Metadata            `json:"metadata"`
	Shipping       *params.Shipping           `json:"shipping"`
	Sources        *params.List[Source]       `json:"sources"`
	Subscriptions  *params.List[Subscription] `json:"subscriptions"`
}

// Create creates a customer.
func Create(p *Params) *client.Request[Customer] {
	return client.NewPost[Customer]("/customers", p)
}

// Retrieve fetches a customer by id.
func Retrieve(id string) *client.Request[Customer] {
	return client.NewGet[Customer](fmt.Sprintf("/customers/%s", id), nil)
}

// Update changes the fields set in p. Nil fields are left unchanged.
func Update(id string, p *Params) *client.Request[Customer] {
	return client.NewPost[Customer](fmt.Sprintf("/customers/%s", id), p)
}

// Delete permanently deletes a customer and cancels its subscriptions.
func Delete(id string) *client.Request[params.Deleted] {
	return client.NewDelete[params.Deleted](fmt.Sprintf("/customers/%s", id), nil)
}

// List returns a page of customers, newest first.
func List(p *ListParams) *client.Request[params.List[Customer]] {
	return client.NewGet[params.List[Customer]]("/customers", p)
}

type attachSourceParams struct {
	Source SourceParams `url:"source"`
}

// AttachSource adds a payment source to a customer.
func AttachSource(id string, source SourceParams) *client.Request[Source] {
	return client.NewPost[Source](fmt.Sprintf("/customers/%s/sources", id), &attachSourceParams{Source: source})
}

// DetachSource removes a payment source from a customer.
func DetachSource(id, sourceID string) *client.Request[params.Deleted] {
	return client.NewDelete[params.Deleted](fmt.Sprintf("/customers/%s/sources/%s", id, sourceID), nil)
}
