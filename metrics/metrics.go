// Package metrics records request outcomes and latencies for API calls.
package metrics

import "time"

// Recorder receives one counter increment per API call and, for calls that
// reached the network, one latency observation.
type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

// Label names used by the client.
const (
	LabelMethod  = "method"
	LabelOutcome = "outcome"
)

// Outcomes reported under LabelOutcome.
const (
	OutcomeSuccess        = "success"
	OutcomeAPIError       = "api_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeEncodeError    = "encode_error"
	OutcomeTransportError = "transport_error"
)
