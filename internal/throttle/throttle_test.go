package throttle

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFirstInvokeFiresImmediately(t *testing.T) {
	var calls atomic.Int32
	th := New(50*time.Millisecond, func() { calls.Add(1) })
	defer th.Stop()

	th.Invoke()
	assert.Equal(t, int32(1), calls.Load())
}

func TestBurstCoalescesIntoTrailingCall(t *testing.T) {
	var calls atomic.Int32
	th := New(50*time.Millisecond, func() { calls.Add(1) })
	defer th.Stop()

	for i := 0; i < 10; i++ {
		th.Invoke()
	}
	assert.Equal(t, int32(1), calls.Load(), "burst must not fire repeatedly")

	// The trailing invocation delivers the tail of the burst
	assert.Eventually(t, func() bool { return calls.Load() == 2 },
		time.Second, 5*time.Millisecond)
}

func TestQuietPeriodsFireEachTime(t *testing.T) {
	var calls atomic.Int32
	th := New(10*time.Millisecond, func() { calls.Add(1) })
	defer th.Stop()

	th.Invoke()
	time.Sleep(30 * time.Millisecond)
	th.Invoke()
	assert.Equal(t, int32(2), calls.Load())
}

func TestStopCancelsTrailingAndFutureCalls(t *testing.T) {
	var calls atomic.Int32
	th := New(20*time.Millisecond, func() { calls.Add(1) })

	th.Invoke()
	th.Invoke() // schedules trailing
	th.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	th.Invoke()
	assert.Equal(t, int32(1), calls.Load())
}
