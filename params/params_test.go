package params

import (
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	ts := Timestamp(1690000000)
	assert.Equal(t, time.Date(2023, time.July, 22, 4, 26, 40, 0, time.UTC), ts.Time())
	assert.Equal(t, ts, TimestampOf(ts.Time()))
}

func TestClear(t *testing.T) {
	cleared := Clear()
	require.NotNil(t, cleared)
	assert.Equal(t, "", *cleared)
}

func TestMetadata_EncodeValues(t *testing.T) {
	values := url.Values{}
	require.NoError(t, Metadata{"order_id": "6735", "channel": "web"}.EncodeValues("metadata", &values))

	assert.Equal(t, "metadata%5Bchannel%5D=web&metadata%5Border_id%5D=6735", values.Encode())
}

func TestRangeQuery_ExactWins(t *testing.T) {
	from := Timestamp(10)
	values := url.Values{}
	r := RangeQuery{Exact: &from, GT: &from}
	require.NoError(t, r.EncodeValues("created", &values))

	assert.Equal(t, url.Values{"created": {"10"}}, values)
}

func TestDecimal(t *testing.T) {
	d, err := NewDecimal("8.25")
	require.NoError(t, err)

	values := url.Values{}
	require.NoError(t, d.EncodeValues("tax_percent", &values))
	assert.Equal(t, "8.25", values.Get("tax_percent"))

	var decoded struct {
		TaxPercent *Decimal `json:"tax_percent"`
		Missing    *Decimal `json:"missing"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"tax_percent": 8.25, "missing": null}`), &decoded))
	require.NotNil(t, decoded.TaxPercent)
	assert.True(t, decoded.TaxPercent.Equal(d.Decimal))
	assert.Nil(t, decoded.Missing)

	_, err = NewDecimal("eight")
	assert.Error(t, err)
}

func TestList_Decode(t *testing.T) {
	body := `{"object":"list","url":"/v1/customers","has_more":true,"data":[{"id":"cus_1","deleted":true}]}`

	var list List[Deleted]
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	assert.Equal(t, "list", list.Object)
	assert.True(t, list.HasMore)
	assert.Nil(t, list.TotalCount)
	require.Len(t, list.Data, 1)
	assert.Equal(t, Deleted{ID: "cus_1", Deleted: true}, list.Data[0])
}
