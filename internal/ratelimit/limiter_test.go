package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Consume_BudgetExhaustion(t *testing.T) {
	limiter := New(DefaultPoints, DefaultWindow)

	for i := 0; i < DefaultPoints; i++ {
		assert.NoError(t, limiter.Consume("1.2.3.4"))
	}
	assert.ErrorIs(t, limiter.Consume("1.2.3.4"), ErrLimitExceeded)

	// Other keys keep their own budget.
	assert.NoError(t, limiter.Consume("5.6.7.8"))
}

func TestLimiter_Consume_WindowReset(t *testing.T) {
	limiter := New(2, time.Minute)
	current := time.Now()
	limiter.now = func() time.Time { return current }

	assert.NoError(t, limiter.Consume("1.2.3.4"))
	assert.NoError(t, limiter.Consume("1.2.3.4"))
	assert.ErrorIs(t, limiter.Consume("1.2.3.4"), ErrLimitExceeded)

	// Budget stays exhausted inside the window.
	current = current.Add(30 * time.Second)
	assert.ErrorIs(t, limiter.Consume("1.2.3.4"), ErrLimitExceeded)

	// A fresh window restores the full budget.
	current = current.Add(31 * time.Second)
	assert.NoError(t, limiter.Consume("1.2.3.4"))
}

func TestLimiter_Remaining(t *testing.T) {
	limiter := New(3, time.Minute)

	assert.Equal(t, 3, limiter.Remaining("1.2.3.4"))
	assert.NoError(t, limiter.Consume("1.2.3.4"))
	assert.Equal(t, 2, limiter.Remaining("1.2.3.4"))

	assert.NoError(t, limiter.Consume("1.2.3.4"))
	assert.NoError(t, limiter.Consume("1.2.3.4"))
	assert.ErrorIs(t, limiter.Consume("1.2.3.4"), ErrLimitExceeded)
	assert.Equal(t, 0, limiter.Remaining("1.2.3.4"))
}

func TestLimiter_SweepDropsExpiredWindows(t *testing.T) {
	limiter := New(10, time.Minute)
	current := time.Now()
	limiter.now = func() time.Time { return current }

	assert.NoError(t, limiter.Consume("a"))
	assert.NoError(t, limiter.Consume("b"))
	assert.Len(t, limiter.buckets, 2)

	current = current.Add(2 * time.Minute)
	assert.NoError(t, limiter.Consume("c"))
	assert.Len(t, limiter.buckets, 1)
}
