package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuckets_SweepsIdleKeys(t *testing.T) {
	b := newBuckets(RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})
	start := b.lastSweep

	first := b.get("a", start)
	require.Same(t, first, b.get("a", start.Add(time.Minute)))
	b.get("b", start.Add(9*time.Minute))

	// Sweep at 15m: "a" has been idle 14m, "b" only 6m.
	b.get("c", start.Add(15*time.Minute))
	require.NotContains(t, b.byKey, "a")
	require.Contains(t, b.byKey, "b")
	require.Contains(t, b.byKey, "c")
}
