package metrics

import "time"

// Noop discards everything.
type Noop struct{}

func (Noop) IncCounter(string, map[string]string)                    {}
func (Noop) ObserveLatency(string, time.Duration, map[string]string) {}
