package params

import (
	"net/url"
	"slices"
	"time"

	"github.com/google/go-querystring/query"
)

// String returns a pointer to s, for use in optional parameter fields.
func String(s string) *string {
	return &s
}

// Int64 returns a pointer to n.
func Int64(n int64) *int64 {
	return &n
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Clear returns a pointer to the empty string. A field set to Clear() is
// sent as "key=", which the API reads as "unset this value", while a nil
// field is left out of the request entirely.
func Clear() *string {
	return String("")
}

// Timestamp is a unix timestamp in seconds as used throughout the API.
type Timestamp int64

// Time converts the timestamp to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// TimestampOf converts t to a Timestamp.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp(t.Unix())
}

// Currency is a lowercase three-letter ISO currency code.
type Currency string

const (
	CurrencyAUD Currency = "aud"
	CurrencyCAD Currency = "cad"
	CurrencyCHF Currency = "chf"
	CurrencyEUR Currency = "eur"
	CurrencyGBP Currency = "gbp"
	CurrencyJPY Currency = "jpy"
	CurrencyNZD Currency = "nzd"
	CurrencyUSD Currency = "usd"
)

// Metadata is the set of key/value pairs attached to most objects. It is
// sent as metadata[key]=value, keys in sorted order.
type Metadata map[string]string

// EncodeValues implements query.Encoder.
func (m Metadata) EncodeValues(key string, v *url.Values) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		v.Set(key+"["+k+"]", m[k])
	}
	return nil
}

// Address is a postal address.
type Address struct {
	Line1      string `json:"line1" url:"line1,omitempty"`
	Line2      string `json:"line2,omitempty" url:"line2,omitempty"`
	City       string `json:"city,omitempty" url:"city,omitempty"`
	State      string `json:"state,omitempty" url:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty" url:"postal_code,omitempty"`
	Country    string `json:"country,omitempty" url:"country,omitempty"`
}

// Shipping is the delivery address and contact attached to customers and
// charges. Carrier and TrackingNumber only apply to charges.
type Shipping struct {
	Address        Address `json:"address" url:"address"`
	Name           string  `json:"name" url:"name"`
	Phone          *string `json:"phone,omitempty" url:"phone,omitempty"`
	Carrier        *string `json:"carrier,omitempty" url:"carrier,omitempty"`
	TrackingNumber *string `json:"tracking_number,omitempty" url:"tracking_number,omitempty"`
}

// ListParams are the cursor parameters shared by every list endpoint.
type ListParams struct {
	EndingBefore  *string `url:"ending_before,omitempty"`
	Limit         *int64  `url:"limit,omitempty"`
	StartingAfter *string `url:"starting_after,omitempty"`
}

// List is a single page of a list endpoint's results.
type List[T any] struct {
	Object     string `json:"object"`
	Data       []T    `json:"data"`
	HasMore    bool   `json:"has_more"`
	TotalCount *int64 `json:"total_count,omitempty"`
	URL        string `json:"url"`
}

// Deleted is returned by delete endpoints.
type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// EncodeNested encodes a parameter struct under key, so that its fields
// become key[field]=value. It is the building block for list-valued and
// union-valued parameters that go-querystring cannot express by tags alone.
func EncodeNested(key string, item any, v *url.Values) error {
	nested, err := query.Values(item)
	if err != nil {
		return err
	}
	for name, values := range nested {
		for _, value := range values {
			v.Add(key+"["+bracketed(name), value)
		}
	}
	return nil
}

// bracketed turns "a[b][c]" into "a][b][c]" so it can be appended after an
// opening bracket, yielding key[a][b][c].
func bracketed(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == '[' {
			return name[:i] + "]" + name[i:]
		}
	}
	return name + "]"
}
