package params

import (
	"net/url"
	"strconv"
)

// RangeQuery filters a list endpoint on a timestamp field. Either Exact is
// set, producing key=N, or any combination of the bounds, producing
// key[gt]=N and friends.
type RangeQuery struct {
	Exact *Timestamp
	GT    *Timestamp
	GTE   *Timestamp
	LT    *Timestamp
	LTE   *Timestamp
}

// Exactly matches a single timestamp.
func Exactly(t Timestamp) *RangeQuery {
	return &RangeQuery{Exact: &t}
}

// Between matches timestamps in [from, to).
func Between(from, to Timestamp) *RangeQuery {
	return &RangeQuery{GTE: &from, LT: &to}
}

// EncodeValues implements query.Encoder.
func (r RangeQuery) EncodeValues(key string, v *url.Values) error {
	if r.Exact != nil {
		v.Set(key, formatTimestamp(*r.Exact))
		return nil
	}

	bounds := []struct {
		name  string
		value *Timestamp
	}{
		{"gt", r.GT},
		{"gte", r.GTE},
		{"lt", r.LT},
		{"lte", r.LTE},
	}
	for _, b := range bounds {
		if b.value != nil {
			v.Set(key+"["+b.name+"]", formatTimestamp(*b.value))
		}
	}
	return nil
}

func formatTimestamp(t Timestamp) string {
	return strconv.FormatInt(int64(t), 10)
}
