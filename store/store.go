package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/initia-labs/bridgeinfo/metrics"
)

// Store is the read contract the RPC handlers need. A missing key is reported
// as found == false with a nil error.
type Store interface {
	Get(ctx context.Context, key Key) (value json.RawMessage, found bool, err error)
}

func observeRead(backend string, key Key, found bool, err error, start time.Time) {
	outcome := "absent"
	switch {
	case err != nil:
		outcome = "error"
	case found:
		outcome = "found"
	}
	metrics.SetComponentHealth("store", err == nil)
	metrics.StoreReadsTotal().WithLabelValues(backend, key.Namespace(), outcome).Inc()
	metrics.StoreReadDuration().WithLabelValues(backend).Observe(time.Since(start).Seconds())
}
