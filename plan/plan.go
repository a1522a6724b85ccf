// Package plan builds requests for the /plans endpoints.
package plan

import (
	"fmt"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/params"
)

// Interval is the billing frequency unit of a plan.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

// Params are used to create or update a plan. Amount, currency, interval
// and id can only be set at creation.
type Params struct {
	ID                  *string          `url:"id,omitempty"`
	Amount              *int64           `url:"amount,omitempty"`
	Currency            *params.Currency `url:"currency,omitempty"`
	Interval            *Interval        `url:"interval,omitempty"`
	IntervalCount       *int64           `url:"interval_count,omitempty"`
	Name                *string          `url:"name,omitempty"`
	Nickname            *string          `url:"nickname,omitempty"`
	Metadata            params.Metadata  `url:"metadata,omitempty"`
	StatementDescriptor *string          `url:"statement_descriptor,omitempty"`
	TrialPeriodDays     *int64           `url:"trial_period_days,omitempty"`
}

// ListParams filter the plan list.
type ListParams struct {
	params.ListParams
	Active  *bool              `url:"active,omitempty"`
	Created *params.RangeQuery `url:"created,omitempty"`
	Product *string            `url:"product,omitempty"`
}

// Plan is a recurring price customers can subscribe to.
type Plan struct {
	ID                  string           `json:"id"`
	Object              string           `json:"object"`
	Active              bool             `json:"active"`
	Amount              int64            `json:"amount"`
	Created             params.Timestamp `json:"created"`
	Currency            params.Currency  `json:"currency"`
	Interval            Interval         `json:"interval"`
	IntervalCount       int64            `json:"interval_count"`
	Livemode            bool             `json:"livemode"`
	Metadata            params.Metadata  `json:"metadata"`
	Name                *string          `json:"name"`
	Nickname            *string          `json:"nickname"`
	StatementDescriptor *string          `json:"statement_descriptor"`
	TrialPeriodDays     *int64           `json:"trial_period_days"`
}

// Create creates a plan.
func Create(p *Params) *client.Request[Plan] {
	return client.NewPost[Plan]("/plans", p)
}

// Retrieve fetches a plan by id.
func Retrieve(id string) *client.Request[Plan] {
	return client.NewGet[Plan](fmt.Sprintf("/plans/%s", id), nil)
}

// Update changes a plan's nickname, metadata, statement descriptor or
// trial period.
func Update(id string, p *Params) *client.Request[Plan] {
	return client.NewPost[Plan](fmt.Sprintf("/plans/%s", id), p)
}

// Delete deletes a plan. Existing subscriptions are not affected.
func Delete(id string) *client.Request[params.Deleted] {
	return client.NewDelete[params.Deleted](fmt.Sprintf("/plans/%s", id), nil)
}

// List returns a page of plans.
func List(p *ListParams) *client.Request[params.List[Plan]] {
	return client.NewGet[params.List[Plan]]("/plans", p)
}
